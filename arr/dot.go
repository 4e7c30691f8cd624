package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// Paths are dot-separated segments resolved one step at a time with
// [Lookup], so they walk Go maps, slices, structs and any [Container]:
//
//	item := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	Get(item, "user.name")    → "Alice"
//	Get(item, "user.tags.1")  → "ops"
//	Get(item, "user.tags.*")  → []any{"admin", "ops"}
// ─────────────────────────────────────────────────────────────────────────────

// Get resolves a dot-notation path against v.
//
// An empty path returns v itself. A missing final segment yields nil. When an
// intermediate step yields nil while segments remain, v itself is returned
// rather than nil, so scalar items resolve to themselves:
//
//	Get(5, "price")        // nil
//	Get(5, "price.amount") // 5
//
// A "*" segment fans out over every child of the current value and returns
// the per-child results as a []any.
func Get(v any, path string) any {
	if path == "" {
		return v
	}
	return walk(v, strings.Split(path, "."))
}

// Find resolves a dotted path like [Get] but reports whether every segment
// was present. A present nil value is found; a missing key is not.
// Wildcards are not expanded.
func Find(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	current := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := Lookup(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func walk(root any, segments []string) any {
	current := root
	for i, seg := range segments {
		if IsNil(current) {
			return root
		}
		if seg == "*" {
			rest := segments[i+1:]
			children := Entries(current)
			out := make([]any, len(children))
			for j, child := range children {
				if len(rest) == 0 {
					out[j] = child.Value
					continue
				}
				out[j] = walk(child.Value, rest)
			}
			return out
		}
		current, _ = Lookup(current, seg)
	}
	return current
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. Non-map intermediate values are replaced.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	seg, rest, nested := strings.Cut(key, ".")
	if !nested {
		m[key] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Dot flattens nested mappings under v into a single level of dot-notation
// entries, in order. Lists are leaves and are not recursed into.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}, "c": []any{1, 2}})
//	// → [{a.b 1} {c [1 2]}]
func Dot(v any) []Entry {
	out := make([]Entry, 0)
	dotFlatten("", v, &out)
	return out
}

func dotFlatten(prefix string, v any, out *[]Entry) {
	for _, e := range Entries(v) {
		key := e.Key
		if prefix != "" {
			key = prefix + "." + e.Key
		}
		if ShapeOf(e.Value) == Mapping {
			dotFlatten(key, e.Value, out)
			continue
		}
		*out = append(*out, Entry{Key: key, Value: e.Value})
	}
}
