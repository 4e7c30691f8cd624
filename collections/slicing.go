package collections

import (
	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
//
// Positions count items in order, so every method here works the same on
// sequences and mappings and keeps the mode (and mapping keys) of c.
// ─────────────────────────────────────────────────────────────────────────────

// span returns positions [from, to) of c as a new collection, clamped to
// the valid range.
func (c *Collection[T]) span(from, to int) *Collection[T] {
	n := c.Count()
	from = min(max(from, 0), n)
	to = min(max(to, from), n)
	if c.vals == nil {
		out := make([]T, to-from)
		copy(out, c.list[from:to])
		return seqOf(c.cfg, out)
	}
	out := mapOf[T](c.cfg, to-from)
	for _, k := range c.keys[from:to] {
		out.set(k, c.vals[k])
	}
	return out
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return c.span(c.Count()+n, c.Count())
	}
	return c.span(0, n)
}

// TakeUntil returns items from the start until target matches (exclusive).
// target is a predicate func(T, any) bool / func(T) bool or a value
// compared with strict equality.
func (c *Collection[T]) TakeUntil(target any) *Collection[T] {
	match := matcher[T](target)
	return c.span(0, c.position(match))
}

// TakeWhile returns items from the start while target matches (see
// [Collection.TakeUntil]).
func (c *Collection[T]) TakeWhile(target any) *Collection[T] {
	match := matcher[T](target)
	return c.span(0, c.position(func(item T, k any) bool { return !match(item, k) }))
}

// Skip returns a new collection without the first n items.
// A non-positive n skips nothing.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	return c.span(n, c.Count())
}

// SkipUntil skips items until target matches, then returns the rest
// (including the matching item).
func (c *Collection[T]) SkipUntil(target any) *Collection[T] {
	match := matcher[T](target)
	return c.span(c.position(match), c.Count())
}

// SkipWhile skips items while target matches, then returns the rest.
func (c *Collection[T]) SkipWhile(target any) *Collection[T] {
	match := matcher[T](target)
	return c.span(c.position(func(item T, k any) bool { return !match(item, k) }), c.Count())
}

// position returns the position of the first item satisfying fn, or
// Count() when none does.
func (c *Collection[T]) position(fn func(T, any) bool) int {
	pos, i := c.Count(), 0
	c.each(func(k any, item T) bool {
		if fn(item, k) {
			pos = i
			return false
		}
		i++
		return true
	})
	return pos
}

// Slice returns the items starting at offset, optionally limited to
// length[0] items. A negative offset counts from the end; a negative length
// stops that many items before the end.
func (c *Collection[T]) Slice(offset int, length ...int) *Collection[T] {
	n := c.Count()
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	end := n
	if len(length) > 0 {
		if length[0] < 0 {
			end = n + length[0]
		} else {
			end = offset + length[0]
		}
	}
	return c.span(offset, end)
}

// Nth returns every n-th item as a sequence, starting at the optional
// offset.
//
//	collections.New("a", "b", "c", "d", "e").Nth(2) // → [a, c, e]
func (c *Collection[T]) Nth(n int, offset ...int) *Collection[T] {
	out := seqOf[T](c.cfg, nil)
	if n <= 0 {
		return out
	}
	start := 0
	if len(offset) > 0 {
		start = max(offset[0], 0)
	}
	items := c.values()
	for i := start; i < len(items); i += n {
		out.list = append(out.list, items[i])
	}
	return out
}

// ForPage returns the items displayed on the 1-based page when showing
// perPage items per page.
func (c *Collection[T]) ForPage(page, perPage int) *Collection[T] {
	if perPage <= 0 {
		return like[T](c, 0)
	}
	from := (page - 1) * perPage
	return c.span(from, from+perPage)
}

// Only keeps the given keys of a mapping, in the order of c. On a sequence
// it keeps the items strictly equal to one of keys. A single list argument
// is expanded.
func (c *Collection[T]) Only(keys ...any) *Collection[T] {
	return c.pick(arr.Variadic(keys), true)
}

// Except drops the given keys of a mapping. On a sequence it drops the
// items strictly equal to one of keys. A single list argument is expanded.
func (c *Collection[T]) Except(keys ...any) *Collection[T] {
	return c.pick(arr.Variadic(keys), false)
}

func (c *Collection[T]) pick(keys []any, keep bool) *Collection[T] {
	if c.vals == nil {
		set := identitySet(keys)
		return c.Filter(func(item T, _ any) bool {
			_, ok := set[arr.Identity(item)]
			return ok == keep
		})
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[keyString(k)] = struct{}{}
	}
	return c.Filter(func(_ T, k any) bool {
		_, ok := set[keyString(k)]
		return ok == keep
	})
}

// Pad fills the collection with value up to |size| items. A positive size
// pads at the end, a negative size at the start of a sequence. Mappings
// are padded with the next numeric keys. c is returned copied and unchanged
// when it already holds |size| items.
func (c *Collection[T]) Pad(size int, value T) *Collection[T] {
	abs := size
	if abs < 0 {
		abs = -abs
	}
	out := c.clone()
	missing := abs - c.Count()
	if missing <= 0 {
		return out
	}
	fill := make([]T, missing)
	for i := range fill {
		fill[i] = value
	}
	if size < 0 && out.vals == nil {
		out.list = append(fill, out.list...)
		return out
	}
	return out.Push(fill...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits the collection into consecutive groups of size, each a
// *Collection[T] in the mode of c. The last group may contain fewer than
// size items; a collection of length L yields ceil(L/size) chunks. Returns
// an empty sequence when size <= 0.
//
// The result is a Collection[any]; use [Chunks] for a typed result.
func (c *Collection[T]) Chunk(size int) *Collection[any] {
	out := seqOf[any](c.cfg, nil)
	if size <= 0 {
		return out
	}
	n := c.Count()
	for i := 0; i < n; i += size {
		out.list = append(out.list, c.span(i, i+size))
	}
	return out
}

// Split divides the collection into at most groups chunks of near-equal
// size; the first chunks receive the extra items. Each chunk is a
// *Collection[T].
//
//	collections.New(1, 2, 3, 4, 5, 6, 7).Split(3) // → [[1 2 3] [4 5] [6 7]]
func (c *Collection[T]) Split(groups int) *Collection[any] {
	out := seqOf[any](c.cfg, nil)
	n := c.Count()
	if groups <= 0 || n == 0 {
		return out
	}
	base, extra := n/groups, n%groups
	from := 0
	for g := 0; g < groups && from < n; g++ {
		size := base
		if g < extra {
			size++
		}
		out.list = append(out.list, c.span(from, from+size))
		from += size
	}
	return out
}

// Partition splits the collection into the items for which fn returns true
// and the rest. Both halves keep the mode and keys of c.
func (c *Collection[T]) Partition(fn func(T, any) bool) (*Collection[T], *Collection[T]) {
	pass, fail := like[T](c, 0), like[T](c, 0)
	c.each(func(k any, item T) bool {
		if fn(item, k) {
			pass.keep(k, item)
		} else {
			fail.keep(k, item)
		}
		return true
	})
	return pass, fail
}
