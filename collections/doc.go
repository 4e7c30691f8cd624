// Package collections provides a generic, fluent Collection type that holds
// either an ordered sequence or an insertion-ordered string-keyed mapping,
// modelled on Laravel's Illuminate\Support\Collection.
//
// # Overview
//
// The central type is [Collection][T]. Every operation honours the current
// mode of the container: sequences are re-indexed, mappings keep their keys.
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n int, _ any) bool { return n%2 == 0 }).
//	    SortDesc().
//	    Take(3).
//	    Implode(", ") // → "10, 8, 6"
//
//	prices := collections.FromPairs(
//	    collections.Pair[string, float64]{First: "apple", Second: 1.2},
//	    collections.Pair[string, float64]{First: "pear", Second: 0.8},
//	)
//	prices.Filter(func(p float64, _ any) bool { return p > 1 }) // → {apple: 1.2}
//
// [Wrap] ingests arbitrary runtime values (a nil, a slice, a map, another
// collection or a single scalar) and [ParseJSON] decodes JSON while keeping
// object key order.
//
// # Selectors
//
// Methods taking a by ...any argument (SortBy, GroupBy, KeyBy, Unique, Sum,
// Min, Max, CountBy, ...) resolve a value per item from:
//
//   - nothing or "": the item itself
//   - a string: a dot-notation path (see [arr.Get]), "*" fans out
//   - func(T) any, func(T, any) any or func(T) float64/int/string/bool
//
// # Mutation
//
// Most methods return a *new* Collection. The mutators (Add, Push, Put,
// Prepend, Forget, Pull, Pop, Shift, Splice, Shuffle, Transform, Times)
// change the receiver in place.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int, _ any) any { return n * 2 })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int, _ any) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [Reduce], [Pluck], [MapInto],
// [GroupBy], [Chunks], [KeyBy], [Zip], [Collapse].
//
// # Macros (runtime extension)
//
// Named functions live in a [Registry] attached through [Config]. There is
// no process-wide registry:
//
//	c := collections.New(1, 2, 3, 4).Macro("evens", func(col any, _ ...any) any {
//	    return col.(*collections.Collection[int]).
//	        Filter(func(n int, _ any) bool { return n%2 == 0 })
//	})
//	evens, _ := c.Call("evens")
//
// # Configuration
//
// [Config] carries the collaborators of a pipeline: the macro registry, the
// random source used by Shuffle and Random, the Dump writer and exit hook,
// a [zap.Logger] and the Dump color mode.
//
// # Serialization
//
// Collections implement json.Marshaler, json.Unmarshaler and
// yaml.Marshaler. Mappings encode as objects with their keys in insertion
// order.
package collections
