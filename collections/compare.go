package collections

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Selectors
//
// Many operations accept an optional selector that resolves a value from
// each item:
//
//	nil or ""                  the item itself
//	"user.address.city"        a dot-notation path resolved with arr.Get
//	func(T) any                a callback over the item
//	func(T, any) any           a callback over the item and its key
//	func(T) float64 / int / string / bool
// ─────────────────────────────────────────────────────────────────────────────

type selectFunc[T any] func(item T, key any) any

func selector[T any](by []any) selectFunc[T] {
	if len(by) == 0 {
		return func(item T, _ any) any { return item }
	}
	switch f := by[0].(type) {
	case nil:
		return func(item T, _ any) any { return item }
	case string:
		if f == "" {
			return func(item T, _ any) any { return item }
		}
		return func(item T, _ any) any { return arr.Get(item, f) }
	case func(T) any:
		return func(item T, _ any) any { return f(item) }
	case func(T, any) any:
		return selectFunc[T](f)
	case selectFunc[T]:
		return f
	case func(T) float64:
		return func(item T, _ any) any { return f(item) }
	case func(T) int:
		return func(item T, _ any) any { return f(item) }
	case func(T) string:
		return func(item T, _ any) any { return f(item) }
	case func(T) bool:
		return func(item T, _ any) any { return f(item) }
	}
	panic(fmt.Sprintf("collections: unsupported selector of type %T", by[0]))
}

// predicate converts a callback argument into an item predicate.
// The second result is false when v is not a predicate.
func predicate[T any](v any) (func(T, any) bool, bool) {
	switch f := v.(type) {
	case func(T, any) bool:
		return f, true
	case func(T) bool:
		return func(item T, _ any) bool { return f(item) }, true
	}
	return nil, false
}

// matcher returns a predicate for a "value or callback" argument: callbacks
// are used directly, other values are compared with strict equality.
func matcher[T any](v any) func(T, any) bool {
	if fn, ok := predicate[T](v); ok {
		return fn
	}
	want := arr.Identity(v)
	return func(item T, _ any) bool { return arr.Identity(item) == want }
}

// ─────────────────────────────────────────────────────────────────────────────
// Loose comparison
// ─────────────────────────────────────────────────────────────────────────────

// toNumber converts numbers, bools and numeric strings to float64.
// An empty or blank string converts to 0.
func toNumber(v any) (float64, bool) {
	if f, ok := arr.Number(v); ok {
		return f, true
	}
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		if hexLiteral.MatchString(s) {
			n, err := strconv.ParseUint(s[2:], 16, 64)
			return float64(n), err == nil
		}
		if decimalPrefix.FindString(s) != s {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// decimalPrefix matches a signed decimal number or Infinity. strconv accepts
// more spellings (hex floats, "inf", "nan", digit underscores) that are not
// numbers here.
var (
	decimalPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	hexLiteral    = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
)

// parseFloat reads the longest numeric prefix of the string form of v,
// NaN when there is none.
func parseFloat(v any) float64 {
	if f, ok := arr.Number(v); ok {
		return f
	}
	s, ok := v.(string)
	if !ok {
		if v == nil {
			return math.NaN()
		}
		s = keyString(v)
	}
	m := decimalPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	// out-of-range input still yields ±Inf
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// looseEqual reports a == b with numeric coercion between numbers, bools
// and numeric strings.
func looseEqual(a, b any) bool {
	if arr.Same(a, b) {
		return true
	}
	if arr.IsNil(a) || arr.IsNil(b) {
		return arr.IsNil(a) && arr.IsNil(b)
	}
	_, as := a.(string)
	_, bs := b.(string)
	if as && bs {
		return false
	}
	fa, aok := toNumber(a)
	fb, bok := toNumber(b)
	return aok && bok && fa == fb
}

// compareLoose orders two values: numerically when both convert to
// numbers, lexically when both are strings. ok is false when the values are
// not ordered relative to each other (nil, NaN, composites).
func compareLoose(a, b any) (int, bool) {
	if arr.IsNil(a) || arr.IsNil(b) {
		return 0, false
	}
	sa, as := a.(string)
	sb, bs := b.(string)
	if as && bs {
		return strings.Compare(sa, sb), true
	}
	fa, aok := toNumber(a)
	fb, bok := toNumber(b)
	if !aok || !bok || math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	}
	return 0, true
}

// compareOp applies a where operator to a resolved value and an operand.
// Unknown operators behave like "===".
func compareOp(v any, op string, want any) bool {
	switch op {
	case "==":
		return looseEqual(v, want)
	case "!=", "<>":
		return !looseEqual(v, want)
	case "!==":
		return !arr.Same(v, want)
	case "<", "<=", ">", ">=":
		n, ok := compareLoose(v, want)
		if !ok {
			return false
		}
		switch op {
		case "<":
			return n < 0
		case "<=":
			return n <= 0
		case ">":
			return n > 0
		}
		return n >= 0
	}
	return arr.Same(v, want)
}

// compareSort orders two resolved sort values. Unordered pairs compare as
// their string forms.
func compareSort(a, b any) int {
	if n, ok := compareLoose(a, b); ok {
		return n
	}
	return strings.Compare(keyString(a), keyString(b))
}

// displayString renders an item the way Implode and Join do: nil is empty.
func displayString(v any) string {
	if arr.IsNil(v) {
		return ""
	}
	return keyString(v)
}
