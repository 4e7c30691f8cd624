package collections

// Enumerable is the read-mostly surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, key) for every item until fn returns false.
	Each(fn func(T, any) bool) *Collection[T]

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T, any) bool) *Collection[T]

	// First returns the first item, optionally matching fns[0].
	// Returns the zero value and false when the collection is empty or
	// no item matches.
	First(fns ...func(T, any) bool) (T, bool)

	// Get returns the item stored under key together with a presence flag.
	Get(key any) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection contains at least one item.
	IsNotEmpty() bool

	// IsMapping reports whether the collection is in mapping mode.
	IsMapping() bool

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T, any) bool) (T, bool)

	// Reject returns a new collection with items for which fn returns
	// true removed.
	Reject(fn func(T, any) bool) *Collection[T]

	// ToSlice is an alias for All.
	ToSlice() []T
}

var _ Enumerable[any] = (*Collection[any])(nil)
