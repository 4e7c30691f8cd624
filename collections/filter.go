package collections

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which
// fn(item, key) returns true. Mapping keys are preserved.
//
// A nil fn removes blank items: nil, false, zero numbers, empty strings and
// empty lists or mappings.
func (c *Collection[T]) Filter(fn func(T, any) bool) *Collection[T] {
	if fn == nil {
		fn = func(item T, _ any) bool { return !arr.Blank(item) }
	}
	out := like[T](c, c.Count())
	c.each(func(k any, item T) bool {
		if fn(item, k) {
			out.keep(k, item)
		}
		return true
	})
	return out
}

// Reject returns a new collection with items for which fn returns true
// removed. It is the complement of [Collection.Filter]; a nil fn keeps only
// blank items.
func (c *Collection[T]) Reject(fn func(T, any) bool) *Collection[T] {
	if fn == nil {
		return c.Filter(func(item T, _ any) bool { return arr.Blank(item) })
	}
	return c.Filter(func(item T, k any) bool { return !fn(item, k) })
}

// Where filters items by the value resolved from key (a dot-notation path,
// "" for the item itself):
//
//	Where("active")              // truthy values
//	Where("active", false)       // falsy values
//	Where("price", 100)          // strictly equal to 100
//	Where("price", ">=", 100)    // operator comparison
//
// Supported operators are "===", "==", "!==", "!=", "<>", ">", "<", ">="
// and "<="; "==" and "!=" coerce numeric strings and bools, the relational
// operators compare numbers numerically and strings lexically. Unknown
// operators behave like "===".
//
// The result is always a sequence.
func (c *Collection[T]) Where(key string, args ...any) *Collection[T] {
	return c.Values().Filter(c.whereFunc(key, args))
}

func (c *Collection[T]) whereFunc(key string, args []any) func(T, any) bool {
	resolve := func(item T) any { return arr.Get(item, key) }
	switch len(args) {
	case 0:
		return func(item T, _ any) bool { return arr.Truthy(resolve(item)) }
	case 1:
		if b, ok := args[0].(bool); ok {
			return func(item T, _ any) bool { return arr.Truthy(resolve(item)) == b }
		}
		want := arr.Identity(args[0])
		return func(item T, _ any) bool { return arr.Identity(resolve(item)) == want }
	}
	op := fmt.Sprint(args[0])
	want := args[1]
	return func(item T, _ any) bool { return compareOp(resolve(item), op, want) }
}

// WhereIn keeps items whose value at key is strictly equal to one of values
// (a list or collection).
func (c *Collection[T]) WhereIn(key string, values any) *Collection[T] {
	set := identitySet(arr.Values(values))
	return c.Values().Filter(func(item T, _ any) bool {
		_, ok := set[arr.Identity(arr.Get(item, key))]
		return ok
	})
}

// WhereNotIn keeps items whose value at key is not one of values.
func (c *Collection[T]) WhereNotIn(key string, values any) *Collection[T] {
	set := identitySet(arr.Values(values))
	return c.Values().Filter(func(item T, _ any) bool {
		_, ok := set[arr.Identity(arr.Get(item, key))]
		return !ok
	})
}

// WhereBetween keeps items whose value at key lies within [lo, hi].
func (c *Collection[T]) WhereBetween(key string, lo, hi any) *Collection[T] {
	return c.Where(key, ">=", lo).Where(key, "<=", hi)
}

// WhereNotBetween keeps items whose value at key lies outside [lo, hi].
func (c *Collection[T]) WhereNotBetween(key string, lo, hi any) *Collection[T] {
	return c.Values().Filter(func(item T, _ any) bool {
		v := arr.Get(item, key)
		return compareOp(v, "<", lo) || compareOp(v, ">", hi)
	})
}

// WhereNull keeps items whose value at key (the item itself when omitted)
// is nil.
func (c *Collection[T]) WhereNull(key ...string) *Collection[T] {
	path := optionalKey(key)
	return c.Values().Filter(func(item T, _ any) bool { return arr.IsNil(arr.Get(item, path)) })
}

// WhereNotNull keeps items whose value at key (the item itself when
// omitted) is not nil.
func (c *Collection[T]) WhereNotNull(key ...string) *Collection[T] {
	path := optionalKey(key)
	return c.Values().Filter(func(item T, _ any) bool { return !arr.IsNil(arr.Get(item, path)) })
}

// WhereInstanceOf keeps items whose dynamic type is assignable to typ.
// Interface types match every implementation:
//
//	c.WhereInstanceOf(reflect.TypeFor[fmt.Stringer]())
func (c *Collection[T]) WhereInstanceOf(typ reflect.Type) *Collection[T] {
	return c.Filter(func(item T, _ any) bool {
		v := any(item)
		if v == nil {
			return false
		}
		return reflect.TypeOf(v).AssignableTo(typ)
	})
}

func optionalKey(key []string) string {
	if len(key) == 0 {
		return ""
	}
	return key[0]
}

func identitySet(values []any) map[any]struct{} {
	set := make(map[any]struct{}, len(values))
	for _, v := range values {
		set[arr.Identity(v)] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new collection keeping the first item for every distinct
// value. The optional selector (see package docs) picks the compared value.
// Values are compared with strict equality.
func (c *Collection[T]) Unique(by ...any) *Collection[T] {
	sel := selector[T](by)
	seen := make(map[any]struct{}, c.Count())
	return c.Filter(func(item T, k any) bool {
		id := arr.Identity(sel(item, k))
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
		return true
	})
}

// Duplicates returns the items whose value already occurred earlier, as a
// mapping keyed by their original key. Lists and mappings are compared by
// content.
func (c *Collection[T]) Duplicates() *Collection[T] {
	seen := make(map[any]struct{}, c.Count())
	out := mapOf[T](c.cfg, 0)
	c.each(func(k any, item T) bool {
		id := fingerprint(item)
		if _, ok := seen[id]; ok {
			out.set(keyString(k), item)
			return true
		}
		seen[id] = struct{}{}
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports membership in one of three forms:
//
//	Contains(func(item T, key any) bool { ... }) // some item satisfies fn
//	Contains(3)                                   // 3 is an item (or a mapping key)
//	Contains("name", "Alice")                     // some item has name == "Alice"
//
// Values are compared with strict equality. In the key/value form an item
// that lacks the key never matches, while a present nil matches nil.
func (c *Collection[T]) Contains(args ...any) bool {
	switch len(args) {
	case 0:
		return false
	case 1:
		if fn, ok := predicate[T](args[0]); ok {
			found := false
			c.each(func(k any, item T) bool {
				found = fn(item, k)
				return !found
			})
			return found
		}
		want := arr.Identity(args[0])
		found := false
		c.each(func(k any, item T) bool {
			found = arr.Identity(item) == want || (c.vals != nil && arr.Identity(k) == want)
			return !found
		})
		return found
	}
	key := keyString(args[0])
	want := arr.Identity(args[1])
	if c.vals != nil {
		item, ok := c.vals[key]
		return ok && arr.Identity(item) == want
	}
	for _, item := range c.list {
		if v, ok := arr.Find(item, key); ok && arr.Identity(v) == want {
			return true
		}
	}
	return false
}

// DoesntContain is the negation of [Collection.Contains].
func (c *Collection[T]) DoesntContain(args ...any) bool { return !c.Contains(args...) }

// Some is an alias for [Collection.Contains].
func (c *Collection[T]) Some(args ...any) bool { return c.Contains(args...) }

// Every reports whether fn returns true for every item. It is true for an
// empty collection.
func (c *Collection[T]) Every(fn func(T, any) bool) bool {
	ok := true
	c.each(func(k any, item T) bool {
		ok = fn(item, k)
		return ok
	})
	return ok
}
