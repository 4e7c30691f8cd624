package collections

import (
	"fmt"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally the first one matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T, any) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	c.each(func(k any, item T) bool {
		if len(fns) == 0 || fns[0] == nil || fns[0](item, k) {
			found, ok = item, true
			return false
		}
		return true
	})
	return found, ok
}

// FirstOrElse returns the first item matching fn (any item when fn is nil),
// or the result of def when there is none.
func (c *Collection[T]) FirstOrElse(fn func(T, any) bool, def func() T) T {
	if item, ok := c.First(fn); ok {
		return item
	}
	return def()
}

// Last returns the last item, optionally the last one matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) Last(fns ...func(T, any) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	c.each(func(k any, item T) bool {
		if len(fns) == 0 || fns[0] == nil || fns[0](item, k) {
			found, ok = item, true
		}
		return true
	})
	return found, ok
}

// LastOrElse returns the last item matching fn (any item when fn is nil),
// or the result of def when there is none.
func (c *Collection[T]) LastOrElse(fn func(T, any) bool, def func() T) T {
	if item, ok := c.Last(fn); ok {
		return item
	}
	return def()
}

// FirstWhere returns the first item matching [Collection.Where] arguments.
// Like every other lookup it returns the zero value and false on a miss.
func (c *Collection[T]) FirstWhere(key string, args ...any) (T, bool) {
	return c.First(c.whereFunc(key, args))
}

// FirstOrFail returns the first item matching the condition, or
// [ErrItemNotFound]. The condition is either empty (any item), a predicate
// func(T, any) bool / func(T) bool, or [Collection.Where] arguments.
//
//	user, err := users.FirstOrFail("email", "a@example.com")
func (c *Collection[T]) FirstOrFail(args ...any) (T, error) {
	fn, err := c.condition(args)
	if err != nil {
		var zero T
		return zero, err
	}
	item, ok := c.First(fn)
	if !ok {
		return item, ErrItemNotFound
	}
	return item, nil
}

// Sole returns the only item matching the condition (see
// [Collection.FirstOrFail]). It fails with [ErrItemNotFound] when nothing
// matches and [ErrMultipleItemsFound] when more than one item does.
func (c *Collection[T]) Sole(args ...any) (T, error) {
	var zero T
	fn, err := c.condition(args)
	if err != nil {
		return zero, err
	}
	matches := c.Filter(fn)
	switch matches.Count() {
	case 0:
		return zero, ErrItemNotFound
	case 1:
		item, _ := matches.First()
		return item, nil
	}
	return zero, fmt.Errorf("%w: %d items match", ErrMultipleItemsFound, matches.Count())
}

func (c *Collection[T]) condition(args []any) (func(T, any) bool, error) {
	if len(args) == 0 {
		return func(T, any) bool { return true }, nil
	}
	if fn, ok := predicate[T](args[0]); ok {
		return fn, nil
	}
	key, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("collections: condition key must be a string, got %T", args[0])
	}
	return c.whereFunc(key, args[1:]), nil
}

// Search returns the key of the first item loosely equal to needle
// ("1" matches 1), or false when there is none.
func (c *Collection[T]) Search(needle any) (any, bool) {
	return c.SearchFunc(func(item T, _ any) bool { return looseEqual(item, needle) })
}

// SearchStrict returns the key of the first item strictly equal to needle.
func (c *Collection[T]) SearchStrict(needle any) (any, bool) {
	want := arr.Identity(needle)
	return c.SearchFunc(func(item T, _ any) bool { return arr.Identity(item) == want })
}

// SearchFunc returns the key of the first item for which fn returns true.
func (c *Collection[T]) SearchFunc(fn func(T, any) bool) (any, bool) {
	var (
		key any
		ok  bool
	)
	c.each(func(k any, item T) bool {
		if fn(item, k) {
			key, ok = k, true
			return false
		}
		return true
	})
	return key, ok
}

// Random returns a randomly selected item, or false for an empty
// collection. The source is [Config.Rand].
func (c *Collection[T]) Random() (T, bool) {
	var zero T
	n := c.Count()
	if n == 0 {
		return zero, false
	}
	return c.values()[c.cfg.intn(n)], true
}

// RandomN returns a sequence of n distinct randomly selected items (all
// items, shuffled, when n >= Count()).
func (c *Collection[T]) RandomN(n int) *Collection[T] {
	return c.Values().Shuffle().Take(n)
}
