package collections

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
//
// Every sort is stable and returns a new collection. Mappings keep each
// item's key; sequences are re-indexed.
// ─────────────────────────────────────────────────────────────────────────────

// sorted returns c reordered by cmp over key/item pairs.
func (c *Collection[T]) sorted(cmp func(a, b Pair[any, T]) int) *Collection[T] {
	entries := c.Entries()
	slices.SortStableFunc(entries, cmp)
	out := like[T](c, len(entries))
	for _, e := range entries {
		out.keep(e.First, e.Second)
	}
	return out
}

// Sort returns the items in ascending order. Without a comparator the items
// are compared numerically when all of them are numbers and by their string
// form otherwise, and nil items sort last.
//
//	collections.New(10, 9, 1).Sort()                              // → [1, 9, 10]
//	collections.New("b", "a").Sort(func(a, b string) int { ... }) // custom order
func (c *Collection[T]) Sort(cmp ...func(a, b T) int) *Collection[T] {
	fn := c.defaultOrder()
	if len(cmp) > 0 && cmp[0] != nil {
		fn = cmp[0]
	}
	return c.sorted(func(a, b Pair[any, T]) int { return fn(a.Second, b.Second) })
}

// SortDesc returns the items in descending order (see [Collection.Sort]).
// Nil items still sort last without a comparator.
func (c *Collection[T]) SortDesc(cmp ...func(a, b T) int) *Collection[T] {
	if len(cmp) > 0 && cmp[0] != nil {
		fn := cmp[0]
		return c.sorted(func(a, b Pair[any, T]) int { return fn(b.Second, a.Second) })
	}
	fn := c.defaultOrder()
	return c.sorted(func(a, b Pair[any, T]) int {
		if arr.IsNil(a.Second) || arr.IsNil(b.Second) {
			return fn(a.Second, b.Second)
		}
		return fn(b.Second, a.Second)
	})
}

// defaultOrder compares by number when every non-nil item is a number and
// by string form otherwise. Nil items compare after everything else.
func (c *Collection[T]) defaultOrder() func(a, b T) int {
	numeric := true
	c.each(func(_ any, item T) bool {
		if arr.IsNil(item) {
			return true
		}
		_, numeric = arr.Number(item)
		return numeric
	})
	order := func(a, b T) int { return strings.Compare(keyString(a), keyString(b)) }
	if numeric {
		order = func(a, b T) int {
			fa, _ := arr.Number(a)
			fb, _ := arr.Number(b)
			return cmp.Compare(fa, fb)
		}
	}
	return nilsLast(order)
}

func nilsLast[T any](fn func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		an, bn := arr.IsNil(a), arr.IsNil(b)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		}
		return fn(a, b)
	}
}

// SortBy sorts the items by the resolved selector value (see package docs).
// Items whose value is nil always sort last.
func (c *Collection[T]) SortBy(by ...any) *Collection[T] {
	return c.sortByCriteria([]selectFunc[T]{selector[T](by)}, false)
}

// SortByDesc sorts the items by the resolved selector value in descending
// order. Items whose value is nil still sort last.
func (c *Collection[T]) SortByDesc(by ...any) *Collection[T] {
	return c.sortByCriteria([]selectFunc[T]{selector[T](by)}, true)
}

// SortByMany sorts by several selectors: later criteria break ties of
// earlier ones. Items whose value for a criterion is nil sort last for that
// criterion.
//
//	people.SortByMany("last_name", "first_name")
func (c *Collection[T]) SortByMany(criteria ...any) *Collection[T] {
	sels := make([]selectFunc[T], len(criteria))
	for i, cr := range criteria {
		sels[i] = selector[T]([]any{cr})
	}
	return c.sortByCriteria(sels, false)
}

func (c *Collection[T]) sortByCriteria(sels []selectFunc[T], desc bool) *Collection[T] {
	return c.sorted(func(a, b Pair[any, T]) int {
		for _, sel := range sels {
			va, vb := sel(a.Second, a.First), sel(b.Second, b.First)
			an, bn := arr.IsNil(va), arr.IsNil(vb)
			switch {
			case an && bn:
				continue
			case an:
				return 1
			case bn:
				return -1
			}
			n := compareSort(va, vb)
			if desc {
				n = -n
			}
			if n != 0 {
				return n
			}
		}
		return 0
	})
}

// SortKeys orders a mapping by key. A sequence is returned copied.
func (c *Collection[T]) SortKeys() *Collection[T] {
	if c.vals == nil {
		return c.clone()
	}
	return c.sorted(func(a, b Pair[any, T]) int {
		return strings.Compare(keyString(a.First), keyString(b.First))
	})
}

// SortKeysDesc orders a mapping by key in descending order. A sequence is
// returned reversed.
func (c *Collection[T]) SortKeysDesc() *Collection[T] {
	if c.vals == nil {
		return c.Reverse()
	}
	return c.sorted(func(a, b Pair[any, T]) int {
		return strings.Compare(keyString(b.First), keyString(a.First))
	})
}

// Reverse returns the items in reversed order. Mappings keep their keys.
func (c *Collection[T]) Reverse() *Collection[T] {
	entries := c.Entries()
	slices.Reverse(entries)
	out := like[T](c, len(entries))
	for _, e := range entries {
		out.keep(e.First, e.Second)
	}
	return out
}
