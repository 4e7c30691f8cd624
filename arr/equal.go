package arr

import (
	"fmt"
	"reflect"
)

type ref struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

// Identity returns a comparable key for v under strict equality:
// numbers of any Go kind collapse to float64, other comparable values are
// returned as-is, and maps, slices and funcs are keyed by the identity of
// their backing storage. Non-comparable structs and arrays are keyed by
// their printed value.
//
// Two values are strictly equal exactly when their identities are ==.
func Identity(v any) any {
	if v == nil {
		return nil
	}
	if f, ok := Number(v); ok {
		return f
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan:
		return ref{typ: rv.Type(), ptr: rv.Pointer()}
	case reflect.Slice:
		return ref{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}
	}
	if rv.Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%#v", v, v)
}

// Same reports whether a and b are strictly equal (see [Identity]).
func Same(a, b any) bool {
	return Identity(a) == Identity(b)
}

// Number converts Go numeric kinds to float64. Strings and bools are not
// numbers.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case nil, string, bool:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
