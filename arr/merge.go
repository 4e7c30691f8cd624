package arr

// Clone returns a shallow copy of []any and map[string]any values; any other
// value is returned unchanged.
func Clone(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		copy(out, t)
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = val
		}
		return out
	}
	return v
}

// Variadic normalizes variadic arguments: a single list argument is
// expanded into its values, anything else is returned as given.
//
//	Variadic([]any{[]string{"a", "b"}}) // → []any{"a", "b"}
//	Variadic([]any{"a", "b"})           // → []any{"a", "b"}
func Variadic(args []any) []any {
	if len(args) == 1 && ShapeOf(args[0]) == List {
		return Values(args[0])
	}
	return args
}

// ToMap converts entries into a map[string]any.
func ToMap(entries []Entry) map[string]any {
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// index maps the children of v by key and remembers their order.
func index(v any) ([]string, map[string]any) {
	entries := Entries(v)
	keys := make([]string, len(entries))
	vals := make(map[string]any, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		vals[e.Key] = e.Value
	}
	return keys, vals
}

// unionKeys returns the keys of the target followed by keys only present in
// the source.
func unionKeys(tk []string, sk []string, tv map[string]any) []string {
	keys := make([]string, 0, len(tk)+len(sk))
	keys = append(keys, tk...)
	for _, k := range sk {
		if _, ok := tv[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// MergeRecursive merges the children of source into those of target.
//
// Keys present on one side only are taken as-is. Strictly equal values are
// kept once, two mappings are merged recursively and any other pair is
// concatenated into a []any (list values are spread).
//
// Both value graphs must be acyclic.
func MergeRecursive(target, source any) []Entry {
	tk, tv := index(target)
	sk, sv := index(source)
	keys := unionKeys(tk, sk, tv)

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		t, tok := tv[k]
		s, sok := sv[k]
		var val any
		switch {
		case !tok:
			val = s
		case !sok:
			val = t
		case Same(t, s):
			val = t
		case ShapeOf(t) == Mapping && ShapeOf(s) == Mapping:
			val = ToMap(MergeRecursive(t, s))
		default:
			val = append(spread(t), spread(s)...)
		}
		out = append(out, Entry{Key: k, Value: val})
	}
	return out
}

func spread(v any) []any {
	if ShapeOf(v) == List {
		return Values(v)
	}
	return []any{v}
}

// ReplaceRecursive replaces the children of target with those of source.
// Mappings in source are descended into; every other source value replaces
// the target value outright. Containers in the result are shallow copies.
//
// Both value graphs must be acyclic.
func ReplaceRecursive(target, source any) []Entry {
	tk, tv := index(target)
	sk, sv := index(source)
	keys := unionKeys(tk, sk, tv)

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		s, sok := sv[k]
		var val any
		switch {
		case sok && ShapeOf(s) == Mapping:
			val = ToMap(ReplaceRecursive(tv[k], s))
		case sok:
			val = Clone(s)
		default:
			val = Clone(tv[k])
		}
		out = append(out, Entry{Key: k, Value: val})
	}
	return out
}
