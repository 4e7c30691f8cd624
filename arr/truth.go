package arr

import (
	"math"
	"reflect"
)

// Truthy reports whether v counts as true in a boolean context: nil, false,
// zero numbers, NaN and the empty string are false, everything else
// (including empty containers) is true.
func Truthy(v any) bool {
	if IsNil(v) {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	}
	return true
}

// Blank reports whether v is falsy or an empty list or mapping.
func Blank(v any) bool {
	switch ShapeOf(v) {
	case List, Mapping:
		return len(Entries(v)) == 0
	}
	return !Truthy(v)
}
