// Package arr provides stateless helpers for inspecting and reshaping plain
// Go values: lists, string-keyed mappings, structs and any [Container].
// They are the leaf utilities beneath package collections.
//
// # Shapes
//
// Every value is a [Scalar], a [List] (slices and arrays, except []byte) or
// a [Mapping] (maps). [Entries] and [Values] visit the children of a
// container in order; Go maps are visited in sorted key order so results
// are deterministic.
//
// # Dot-notation access
//
// [Get] resolves dotted paths through nested maps, slices, struct fields and
// containers. Resolution is tolerant: a path that runs into a missing value
// before it is exhausted resolves to the original value instead of failing.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")  // → "London"
//	arr.Set(m, "user.address.postcode", "EC1")
//	arr.Dot(m)                       // → [{user.address.city London} ...]
//
// # Equality and truthiness
//
// [Same] implements strict equality (numbers compare across Go numeric
// kinds, maps and slices compare by identity). [Truthy] and [Blank] are the
// two boolean readings of a value used by filters.
//
// # Recursive merge
//
// [MergeRecursive] and [ReplaceRecursive] combine nested mappings. They
// assume acyclic value graphs.
package arr
