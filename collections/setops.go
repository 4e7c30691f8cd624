package collections

import (
	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
//
// Arguments typed as any accept a slice, array, map or collection. Values are
// compared with strict equality: numbers compare across Go numeric kinds,
// slices, maps and pointers compare by identity.
// ─────────────────────────────────────────────────────────────────────────────

// Diff returns the items of c that are not present in other.
//
//	collections.New(1, 2, 3, 4, 5).Diff([]int{1, 2, 3, 9}) // → [4, 5]
func (c *Collection[T]) Diff(other any) *Collection[T] {
	set := identitySet(arr.Values(other))
	return c.Filter(func(item T, _ any) bool {
		_, ok := set[arr.Identity(item)]
		return !ok
	})
}

// DiffUsing returns the items of c for which fn reports no match (a zero
// result) against any value of other.
func (c *Collection[T]) DiffUsing(other any, fn func(item T, other any) int) *Collection[T] {
	values := arr.Values(other)
	return c.Filter(func(item T, _ any) bool {
		for _, v := range values {
			if fn(item, v) == 0 {
				return false
			}
		}
		return true
	})
}

// DiffAssoc returns a mapping of the entries of c whose key is missing from
// other or whose value differs from other's value under that key.
func (c *Collection[T]) DiffAssoc(other any) *Collection[T] {
	theirs := entryMap(other)
	out := mapOf[T](c.cfg, 0)
	c.each(func(k any, item T) bool {
		key := keyString(k)
		v, ok := theirs[key]
		if !ok || !arr.Same(v, item) {
			out.set(key, item)
		}
		return true
	})
	return out
}

// DiffKeys returns a mapping of the entries of c whose key is not present
// in other.
func (c *Collection[T]) DiffKeys(other any) *Collection[T] {
	theirs := entryMap(other)
	out := mapOf[T](c.cfg, 0)
	c.each(func(k any, item T) bool {
		key := keyString(k)
		if _, ok := theirs[key]; !ok {
			out.set(key, item)
		}
		return true
	})
	return out
}

// Intersect returns the items of c that are also present in other.
func (c *Collection[T]) Intersect(other any) *Collection[T] {
	set := identitySet(arr.Values(other))
	return c.Filter(func(item T, _ any) bool {
		_, ok := set[arr.Identity(item)]
		return ok
	})
}

// IntersectByKeys returns a mapping of the entries of c whose key is also
// present in other.
func (c *Collection[T]) IntersectByKeys(other any) *Collection[T] {
	theirs := entryMap(other)
	out := mapOf[T](c.cfg, 0)
	c.each(func(k any, item T) bool {
		key := keyString(k)
		if _, ok := theirs[key]; ok {
			out.set(key, item)
		}
		return true
	})
	return out
}

func entryMap(v any) map[string]any {
	return arr.ToMap(arr.Entries(v))
}

// Union adds the entries of other whose key is not already present in c.
// Two sequences stay a sequence: items of other past the length of c are
// appended.
func (c *Collection[T]) Union(other *Collection[T]) *Collection[T] {
	if c.vals == nil && other.vals == nil {
		out := seqOf(c.cfg, c.values())
		if len(other.list) > len(c.list) {
			out.list = append(out.list, other.list[len(c.list):]...)
		}
		return out
	}
	out := c.clone()
	out.promote()
	other.each(func(k any, item T) bool {
		key := keyString(k)
		if _, ok := out.vals[key]; !ok {
			out.set(key, item)
		}
		return true
	})
	return out
}

// Merge combines c with other. Two sequences are concatenated; otherwise the
// entries of other overwrite the entries of c with the same key and new
// keys are appended.
func (c *Collection[T]) Merge(other *Collection[T]) *Collection[T] {
	if c.vals == nil && other.vals == nil {
		return c.Concat(other)
	}
	return c.overwrite(other)
}

// Replace overwrites the items of c with the items of other under the same
// key. Two sequences stay a sequence: positions present in other replace
// those of c and extra positions are appended.
func (c *Collection[T]) Replace(other *Collection[T]) *Collection[T] {
	if c.vals == nil && other.vals == nil {
		out := seqOf(c.cfg, c.values())
		for i, item := range other.list {
			if i < len(out.list) {
				out.list[i] = item
				continue
			}
			out.list = append(out.list, item)
		}
		return out
	}
	return c.overwrite(other)
}

func (c *Collection[T]) overwrite(other *Collection[T]) *Collection[T] {
	out := c.clone()
	out.promote()
	other.each(func(k any, item T) bool {
		out.set(keyString(k), item)
		return true
	})
	return out
}

// Concat returns a new collection with the items of other appended. On a
// mapping the appended items receive the next numeric keys.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.clone().Push(other.values()...)
}

// MergeRecursive merges other (a map or collection) into c: keys present on
// one side are kept, equal values are kept once, two mappings are merged
// recursively and any other pair is collected into a list.
//
// The value graphs must be acyclic.
func (c *Collection[T]) MergeRecursive(other any) *Collection[any] {
	if arr.IsNil(other) {
		return toAny(c)
	}
	return fromEntries(c.cfg, arr.MergeRecursive(c, other), c.IsSequence())
}

// ReplaceRecursive replaces the entries of c with those of other (a map or
// collection), descending into nested mappings.
//
// The value graphs must be acyclic.
func (c *Collection[T]) ReplaceRecursive(other any) *Collection[any] {
	if arr.IsNil(other) {
		return toAny(c)
	}
	return fromEntries(c.cfg, arr.ReplaceRecursive(c, other), c.IsSequence())
}
