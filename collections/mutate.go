package collections

import (
	"slices"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutators
//
// Every method in this file changes the receiver and returns it (or the
// removed items) instead of allocating a derived collection.
// ─────────────────────────────────────────────────────────────────────────────

// Add appends a single item. On a mapping the item is stored under the next
// numeric key.
func (c *Collection[T]) Add(item T) *Collection[T] { return c.Push(item) }

// Push appends items. On a mapping each item is stored under the next
// numeric key.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	if c.vals == nil {
		c.list = append(c.list, items...)
		return c
	}
	for _, item := range items {
		c.set(c.nextKey(), item)
	}
	return c
}

// Put stores item under key.
//
// On a sequence an index key replaces or appends (positions past the end
// are padded with zero values); any other key promotes the sequence to a
// mapping first.
func (c *Collection[T]) Put(key any, item T) *Collection[T] {
	if c.vals == nil {
		if i, ok := toIndex(key); ok && i >= 0 {
			for len(c.list) <= i {
				var zero T
				c.list = append(c.list, zero)
			}
			c.list[i] = item
			return c
		}
		c.promote()
	}
	c.set(keyString(key), item)
	return c
}

// Prepend inserts item at the front. With a key the item is stored under
// that key: on a sequence an index key behaves like [Collection.Put], any
// other key promotes the sequence to a mapping with the new key first.
func (c *Collection[T]) Prepend(item T, key ...any) *Collection[T] {
	if len(key) == 0 {
		if c.vals == nil {
			c.list = slices.Insert(c.list, 0, item)
			return c
		}
		key = []any{c.nextKey()}
	}
	if c.vals == nil {
		if _, ok := toIndex(key[0]); ok {
			return c.Put(key[0], item)
		}
		c.promote()
	}
	k := keyString(key[0])
	if _, ok := c.vals[k]; ok {
		c.keys = slices.DeleteFunc(c.keys, func(s string) bool { return s == k })
	}
	c.keys = slices.Insert(c.keys, 0, k)
	c.vals[k] = item
	return c
}

// Forget removes the given keys. Sequence positions refer to the items
// before any removal and the remaining items shift down.
func (c *Collection[T]) Forget(keys ...any) *Collection[T] {
	keys = arr.Variadic(keys)
	if c.vals != nil {
		for _, k := range keys {
			ks := keyString(k)
			if _, ok := c.vals[ks]; ok {
				delete(c.vals, ks)
				c.keys = slices.DeleteFunc(c.keys, func(s string) bool { return s == ks })
			}
		}
		return c
	}
	drop := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		if i, ok := toIndex(k); ok {
			drop[i] = struct{}{}
		}
	}
	out := c.list[:0]
	for i, item := range c.list {
		if _, ok := drop[i]; !ok {
			out = append(out, item)
		}
	}
	clear(c.list[len(out):])
	c.list = out
	return c
}

// Pull removes the item under key and returns it.
func (c *Collection[T]) Pull(key any) (T, bool) {
	item, ok := c.Get(key)
	if ok {
		c.Forget(key)
	}
	return item, ok
}

// PullOr removes the item under key and returns it, or def when absent.
func (c *Collection[T]) PullOr(key any, def T) T {
	if item, ok := c.Pull(key); ok {
		return item
	}
	return def
}

// Pop removes and returns the last item.
func (c *Collection[T]) Pop() (T, bool) {
	var zero T
	n := c.Count()
	if n == 0 {
		return zero, false
	}
	if c.vals == nil {
		item := c.list[n-1]
		c.list[n-1] = zero
		c.list = c.list[:n-1]
		return item, true
	}
	k := c.keys[n-1]
	item := c.vals[k]
	delete(c.vals, k)
	c.keys = c.keys[:n-1]
	return item, true
}

// PopN removes the last n items and returns them, in their original order
// and mode, as a new collection.
func (c *Collection[T]) PopN(n int) *Collection[T] {
	total := c.Count()
	n = min(max(n, 0), total)
	return c.cut(total-n, total)
}

// Shift removes and returns the first item.
func (c *Collection[T]) Shift() (T, bool) {
	var zero T
	if c.Count() == 0 {
		return zero, false
	}
	removed := c.cut(0, 1)
	item, _ := removed.First()
	return item, true
}

// ShiftN removes the first n items and returns them, in order and mode, as
// a new collection.
func (c *Collection[T]) ShiftN(n int) *Collection[T] {
	n = min(max(n, 0), c.Count())
	return c.cut(0, n)
}

// cut removes positions [from, to) and returns them in the mode of c.
func (c *Collection[T]) cut(from, to int) *Collection[T] {
	if c.vals == nil {
		removed := make([]T, to-from)
		copy(removed, c.list[from:to])
		c.list = slices.Delete(c.list, from, to)
		return seqOf(c.cfg, removed)
	}
	removed := mapOf[T](c.cfg, to-from)
	for _, k := range c.keys[from:to] {
		removed.set(k, c.vals[k])
		delete(c.vals, k)
	}
	c.keys = slices.Delete(c.keys, from, to)
	return removed
}

// Splice removes up to length items starting at index and inserts
// replacement in their place. A negative index counts from the end and a
// negative length removes everything to the end. The removed items are
// returned as a sequence.
//
// On a mapping, inserted items are stored under the next numeric keys.
func (c *Collection[T]) Splice(index, length int, replacement ...T) *Collection[T] {
	total := c.Count()
	if index < 0 {
		index = max(total+index, 0)
	}
	index = min(index, total)
	end := total
	if length >= 0 {
		end = min(index+length, total)
	}
	removed := c.cut(index, end)
	if c.vals == nil {
		c.list = slices.Insert(c.list, index, replacement...)
		return removed
	}
	keys := make([]string, len(replacement))
	for i, item := range replacement {
		keys[i] = c.nextKey()
		c.vals[keys[i]] = item
		c.keys = append(c.keys, keys[i])
	}
	c.keys = c.keys[:len(c.keys)-len(keys)]
	c.keys = slices.Insert(c.keys, index, keys...)
	return removed.Values()
}

// Shuffle randomly reorders the items in place (Fisher–Yates) using
// [Config.Rand]. A mapping becomes a sequence of its values.
func (c *Collection[T]) Shuffle() *Collection[T] {
	items := c.values()
	for i := len(items) - 1; i > 0; i-- {
		j := c.cfg.intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	c.list, c.keys, c.vals = items, nil, nil
	return c
}

// Transform replaces every item with fn(item, key) in place.
func (c *Collection[T]) Transform(fn func(T, any) T) *Collection[T] {
	if c.vals == nil {
		for i, item := range c.list {
			c.list[i] = fn(item, i)
		}
		return c
	}
	for _, k := range c.keys {
		c.vals[k] = fn(c.vals[k], k)
	}
	return c
}

// Times appends fn(1) … fn(n) to c.
func (c *Collection[T]) Times(n int, fn func(int) T) *Collection[T] {
	for i := 1; i <= n; i++ {
		c.Push(fn(i))
	}
	return c
}
