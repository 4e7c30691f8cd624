package arr

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Shape classifies a value as a leaf, an ordered list or a keyed mapping.
type Shape int

const (
	// Scalar is any value that is not a container.
	Scalar Shape = iota
	// List is an integer-indexed, order-significant container.
	List
	// Mapping is a string-keyed container.
	Mapping
)

// String returns the lower-case name of the shape.
func (s Shape) String() string {
	switch s {
	case List:
		return "list"
	case Mapping:
		return "mapping"
	default:
		return "scalar"
	}
}

// Entry is a single key/value child of a container.
// List children carry their decimal index as Key.
type Entry struct {
	Key   string
	Value any
}

// Container is implemented by ordered containers that want to be treated as
// first-class nested values by this package (collections.Collection does).
type Container interface {
	// IsSequence reports whether the container is in list mode.
	IsSequence() bool

	// Lookup resolves a single key (a decimal index for lists).
	Lookup(key string) (any, bool)

	// Range calls fn for every child in order until fn returns false.
	Range(fn func(key string, value any) bool)
}

var bytesType = reflect.TypeOf([]byte(nil))

// ShapeOf classifies v. Byte slices are scalars.
func ShapeOf(v any) Shape {
	switch t := v.(type) {
	case nil:
		return Scalar
	case Container:
		if t.IsSequence() {
			return List
		}
		return Mapping
	case []any:
		return List
	case map[string]any:
		return Mapping
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type() == bytesType {
			return Scalar
		}
		return List
	case reflect.Array:
		return List
	case reflect.Map:
		return Mapping
	}
	return Scalar
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func or
// interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Entries returns the ordered children of v; nil when v is a scalar.
// Go maps are visited in sorted key order.
func Entries(v any) []Entry {
	switch t := v.(type) {
	case nil:
		return nil
	case Container:
		out := make([]Entry, 0)
		t.Range(func(key string, value any) bool {
			out = append(out, Entry{Key: key, Value: value})
			return true
		})
		return out
	case []any:
		out := make([]Entry, len(t))
		for i, item := range t {
			out[i] = Entry{Key: strconv.Itoa(i), Value: item}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Entry, len(keys))
		for i, k := range keys {
			out[i] = Entry{Key: k, Value: t[k]}
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type() == bytesType {
			return nil
		}
		out := make([]Entry, rv.Len())
		for i := range out {
			out[i] = Entry{Key: strconv.Itoa(i), Value: rv.Index(i).Interface()}
		}
		return out
	case reflect.Map:
		out := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Entry{Key: fmt.Sprint(iter.Key().Interface()), Value: iter.Value().Interface()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out
	}
	return nil
}

// Values returns the children of v in order, or an empty slice for scalars.
func Values(v any) []any {
	entries := Entries(v)
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// Lookup resolves one path segment against v. Lists accept decimal indices,
// structs accept an exported field name or its json tag name.
func Lookup(v any, segment string) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case Container:
		return t.Lookup(segment)
	case map[string]any:
		val, ok := t[segment]
		return val, ok
	case []any:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	}
	return lookupValue(reflect.ValueOf(v), segment)
}

func lookupValue(rv reflect.Value, segment string) (any, bool) {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		var key reflect.Value
		switch kt.Kind() {
		case reflect.String:
			key = reflect.ValueOf(segment).Convert(kt)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(segment, 10, 64)
			if err != nil {
				return nil, false
			}
			key = reflect.ValueOf(n).Convert(kt)
		default:
			return nil, false
		}
		val := rv.MapIndex(key)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		return structField(rv, segment)
	}
	return nil, false
}

func structField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if f.Name == name || (tag != "" && tag != "-" && tag == name) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
