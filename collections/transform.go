package collections

import (
	"strings"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
//
// These methods return *Collection[any]. Use the package-level [Map],
// [FlatMap] and [Reduce] for typed results.
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new collection with every item replaced by fn(item, key),
// keeping the mode and keys of c.
func (c *Collection[T]) Map(fn func(T, any) any) *Collection[any] {
	out := like[any](c, c.Count())
	c.each(func(k any, item T) bool {
		out.keep(k, fn(item, k))
		return true
	})
	return out
}

// MapWithKeys builds a mapping from the key/value pairs returned by fn.
// Later pairs overwrite earlier ones with the same key.
func (c *Collection[T]) MapWithKeys(fn func(T, any) (string, any)) *Collection[any] {
	out := mapOf[any](c.cfg, c.Count())
	c.each(func(k any, item T) bool {
		key, v := fn(item, k)
		out.set(key, v)
		return true
	})
	return out
}

// MapToGroups builds a mapping from the key/value pairs returned by fn,
// collecting the values of each key into a list.
//
//	byDept := people.MapToGroups(func(p Person, _ any) (string, any) {
//	    return p.Department, p.Name
//	})
func (c *Collection[T]) MapToGroups(fn func(T, any) (string, any)) *Collection[[]any] {
	out := mapOf[[]any](c.cfg, 0)
	c.each(func(k any, item T) bool {
		key, v := fn(item, k)
		out.set(key, append(out.vals[key], v))
		return true
	})
	return out
}

// MapToDictionary is an alias for [Collection.MapToGroups].
func (c *Collection[T]) MapToDictionary(fn func(T, any) (string, any)) *Collection[[]any] {
	return c.MapToGroups(fn)
}

// MapSpread calls fn with the elements of every (list-shaped) item spread
// as arguments, followed by the key, and collects the results.
func (c *Collection[T]) MapSpread(fn func(args ...any) any) *Collection[any] {
	return c.Map(func(item T, k any) any { return fn(append(spreadArgs(item), k)...) })
}

// FlatMap maps every item with fn and collapses list results one level.
func (c *Collection[T]) FlatMap(fn func(T, any) any) *Collection[any] {
	return c.Map(fn).Collapse()
}

// Collapse returns a sequence where list-shaped items (slices, arrays and
// sequence collections) are replaced by their elements. Other items are
// kept as they are.
//
//	collections.Wrap([]any{[]int{1, 2}, []int{3}, 4}).Collapse() // → [1, 2, 3, 4]
func (c *Collection[T]) Collapse() *Collection[any] {
	out := seqOf(c.cfg, make([]any, 0, c.Count()))
	c.each(func(_ any, item T) bool {
		if arr.ShapeOf(item) == arr.List {
			out.list = append(out.list, arr.Values(item)...)
		} else {
			out.list = append(out.list, item)
		}
		return true
	})
	return out
}

// Flatten flattens nested lists and mappings into a sequence of leaf
// values, one level per pass, for at most depth passes (all levels when
// depth is omitted or not positive). Mappings contribute their values.
func (c *Collection[T]) Flatten(depth ...int) *Collection[any] {
	limit := 0
	if len(depth) > 0 {
		limit = depth[0]
	}
	items := make([]any, 0, c.Count())
	c.each(func(_ any, item T) bool {
		items = append(items, item)
		return true
	})
	for pass := 0; limit <= 0 || pass < limit; pass++ {
		next := make([]any, 0, len(items))
		nested := false
		for _, item := range items {
			if arr.ShapeOf(item) == arr.Scalar {
				next = append(next, item)
				continue
			}
			nested = true
			next = append(next, arr.Values(item)...)
		}
		items = next
		if !nested {
			break
		}
	}
	return seqOf(c.cfg, items)
}

// Pluck resolves the dot-notation path value for every item. Missing values
// are nil and a "*" segment collects every child.
//
// With a key path the result is a mapping keyed by the resolved key (blank
// keys other than 0 become "").
//
//	users.Pluck("name")          // → [Alice, Bob]
//	users.Pluck("name", "id")    // → {1: Alice, 2: Bob}
//	users.Pluck("roles.*.name")  // → [[admin ops] [dev]]
func (c *Collection[T]) Pluck(value string, key ...string) *Collection[any] {
	if len(key) == 0 {
		out := seqOf(c.cfg, make([]any, 0, c.Count()))
		c.each(func(_ any, item T) bool {
			out.list = append(out.list, arr.Get(item, value))
			return true
		})
		return out
	}
	out := mapOf[any](c.cfg, c.Count())
	c.each(func(_ any, item T) bool {
		out.set(pathKey(arr.Get(item, key[0])), arr.Get(item, value))
		return true
	})
	return out
}

// pathKey renders a value resolved from a path selector as a mapping key:
// blank values other than the number 0 become "".
func pathKey(v any) string {
	if f, ok := arr.Number(v); ok && f == 0 {
		return "0"
	}
	if !arr.Truthy(v) {
		return ""
	}
	return keyString(v)
}

// groupKey returns the key function used by GroupBy and KeyBy: callbacks
// are rendered as they are, path selectors go through pathKey.
func groupKey[T any](by []any) func(T, any) string {
	sel := selector[T](by)
	if len(by) > 0 {
		if _, isPath := by[0].(string); !isPath {
			return func(item T, k any) string { return keyString(sel(item, k)) }
		}
	}
	return func(item T, k any) string { return pathKey(sel(item, k)) }
}

// Reduce folds the items into a single value, calling
// fn(carry, item, key) for every item in order.
func (c *Collection[T]) Reduce(fn func(carry any, item T, key any) any, initial any) any {
	carry := initial
	c.each(func(k any, item T) bool {
		carry = fn(carry, item, k)
		return true
	})
	return carry
}

// Flip swaps keys and items: the result maps every item (rendered as a key)
// to its key (an int for sequences).
func (c *Collection[T]) Flip() *Collection[any] {
	out := mapOf[any](c.cfg, c.Count())
	c.each(func(k any, item T) bool {
		out.set(keyString(item), k)
		return true
	})
	return out
}

// Implode joins the items with glue. With a key path the resolved values
// are joined instead. nil renders as an empty string.
func (c *Collection[T]) Implode(glue string, key ...string) string {
	var values []any
	if len(key) > 0 {
		values = c.Pluck(key[0]).list
	} else {
		values = toAny(c.Values()).list
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = displayString(v)
	}
	return strings.Join(parts, glue)
}

// Join joins the items with glue, using finalGlue before the last item when
// given.
//
//	collections.New("a", "b", "c").Join(", ", " and ") // → "a, b and c"
func (c *Collection[T]) Join(glue string, finalGlue ...string) string {
	if len(finalGlue) == 0 {
		return c.Implode(glue)
	}
	items := c.Values()
	switch items.Count() {
	case 0:
		return ""
	case 1:
		return displayString(items.list[0])
	}
	last, _ := items.Pop()
	return items.Implode(glue) + finalGlue[0] + displayString(last)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups the items by the resolved selector value (see package
// docs) into a mapping of *Collection[T] sequences, in order of first
// occurrence.
//
//	byDept := employees.GroupBy("department")
//	byParity := ints.GroupBy(func(n int) string {
//	    if n%2 == 0 { return "even" }
//	    return "odd"
//	})
func (c *Collection[T]) GroupBy(by ...any) *Collection[any] {
	keyOf := groupKey[T](by)
	groups := make(map[string]*Collection[T])
	out := mapOf[any](c.cfg, 0)
	c.each(func(k any, item T) bool {
		key := keyOf(item, k)
		group, ok := groups[key]
		if !ok {
			group = seqOf[T](c.cfg, nil)
			groups[key] = group
			out.set(key, group)
		}
		group.list = append(group.list, item)
		return true
	})
	return out
}

// KeyBy returns a mapping of the items keyed by the resolved selector
// value. When several items share a key the last one wins.
func (c *Collection[T]) KeyBy(by ...any) *Collection[T] {
	keyOf := groupKey[T](by)
	out := mapOf[T](c.cfg, c.Count())
	c.each(func(k any, item T) bool {
		out.set(keyOf(item, k), item)
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Dotted keys
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens the nested mappings of a mapping into a single level of
// dot-notation keys. Lists are kept as leaf values. A sequence is returned
// as it is.
//
//	collections.Wrap(map[string]any{"a": map[string]any{"b": 1}}).Dot() // → {"a.b": 1}
func (c *Collection[T]) Dot() *Collection[any] {
	if c.vals == nil {
		return toAny(c)
	}
	entries := arr.Dot(c)
	out := mapOf[any](c.cfg, len(entries))
	for _, e := range entries {
		out.set(e.Key, e.Value)
	}
	return out
}

// Undot expands dot-notation keys of a mapping into nested mapping
// collections, merging keys that share a prefix. It is the inverse of
// [Collection.Dot]. A sequence is returned as it is.
func (c *Collection[T]) Undot() *Collection[any] {
	if c.vals == nil {
		return toAny(c)
	}
	out := mapOf[any](c.cfg, 0)
	for _, k := range c.keys {
		undotSet(out, strings.Split(k, "."), c.vals[k])
	}
	return out
}

func undotSet(m *Collection[any], path []string, v any) {
	if len(path) == 1 {
		m.set(path[0], v)
		return
	}
	child, ok := m.vals[path[0]].(*Collection[any])
	if !ok || child.vals == nil {
		child = mapOf[any](m.cfg, 0)
		m.set(path[0], child)
	}
	undotSet(child, path[1:], v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Combine uses the items of c as keys for the values of other (a list,
// mapping or collection). Keys without a matching value map to nil.
//
//	collections.New("name", "age").Combine([]any{"Alice", 30}) // → {name: Alice, age: 30}
func (c *Collection[T]) Combine(other any) *Collection[any] {
	values := arr.Values(other)
	out := mapOf[any](c.cfg, c.Count())
	i := 0
	c.each(func(_ any, item T) bool {
		var v any
		if i < len(values) {
			v = values[i]
		}
		out.set(keyString(item), v)
		i++
		return true
	})
	return out
}

// Zip pairs every item with the value of other at the same position (nil
// when other is shorter), as two-item sequences.
//
//	collections.New("a", "b").Zip([]int{1, 2}) // → [[a 1] [b 2]]
func (c *Collection[T]) Zip(other any) *Collection[*Collection[any]] {
	values := arr.Values(other)
	items := c.values()
	out := seqOf(c.cfg, make([]*Collection[any], len(items)))
	for i, item := range items {
		var v any
		if i < len(values) {
			v = values[i]
		}
		out.list[i] = seqOf[any](c.cfg, []any{item, v})
	}
	return out
}

// CrossJoin returns the cartesian product of the items of c and the given
// lists.
//
//	collections.New(1, 2).CrossJoin([]string{"a", "b"})
//	// → [[1 a] [1 b] [2 a] [2 b]]
func (c *Collection[T]) CrossJoin(lists ...any) *Collection[[]any] {
	product := [][]any{{}}
	factors := [][]any{toAny(c.Values()).list}
	for _, l := range lists {
		factors = append(factors, arr.Values(l))
	}
	for _, factor := range factors {
		next := make([][]any, 0, len(product)*len(factor))
		for _, prefix := range product {
			for _, v := range factor {
				row := make([]any, len(prefix), len(prefix)+1)
				copy(row, prefix)
				next = append(next, append(row, v))
			}
		}
		product = next
	}
	return seqOf(c.cfg, product)
}
