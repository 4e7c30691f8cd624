package collections

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
//
// Every aggregate accepts an optional selector (see package docs) that
// resolves the value aggregated for each item.
// ─────────────────────────────────────────────────────────────────────────────

// sumPrecision is the number of significant digits Sum rounds to.
const sumPrecision = 12

// Sum adds up the resolved values. Each value is read like parseFloat (the
// longest numeric prefix of its string form) and accumulated in decimal
// arithmetic, so New(0.1, 0.2).Sum() is exactly 0.3. The total is rounded to
// 12 significant digits. Sum returns NaN when a value is not numeric.
func (c *Collection[T]) Sum(by ...any) float64 {
	sel := selector[T](by)
	total := decimal.Zero
	special := 0.0
	c.each(func(k any, item T) bool {
		f := parseFloat(sel(item, k))
		switch {
		case math.IsNaN(f):
			special = math.NaN()
			return false
		case math.IsInf(f, 0):
			special += f
		default:
			total = total.Add(decimal.NewFromFloat(f))
		}
		return true
	})
	if special != 0 {
		return special
	}
	return roundSignificant(total, sumPrecision)
}

func roundSignificant(d decimal.Decimal, digits int) float64 {
	if d.IsZero() {
		return 0
	}
	abs, _ := d.Abs().Float64()
	magnitude := int(math.Floor(math.Log10(abs)))
	f, _ := d.Round(int32(digits - 1 - magnitude)).Float64()
	return f
}

// Avg returns the arithmetic mean of the resolved values, or 0 for an empty
// collection.
func (c *Collection[T]) Avg(by ...any) float64 {
	n := c.Count()
	if n == 0 {
		return 0
	}
	return c.Sum(by...) / float64(n)
}

// Average is an alias for [Collection.Avg].
func (c *Collection[T]) Average(by ...any) float64 { return c.Avg(by...) }

// numbers returns the resolved values that convert to numbers, skipping nil
// and non-numeric values.
func (c *Collection[T]) numbers(by []any) []float64 {
	sel := selector[T](by)
	out := make([]float64, 0, c.Count())
	c.each(func(k any, item T) bool {
		v := sel(item, k)
		if arr.IsNil(v) {
			return true
		}
		if f, ok := toNumber(v); ok {
			out = append(out, f)
		}
		return true
	})
	return out
}

// Min returns the smallest resolved numeric value, or false when there is
// none.
func (c *Collection[T]) Min(by ...any) (float64, bool) {
	nums := c.numbers(by)
	if len(nums) == 0 {
		return 0, false
	}
	m := nums[0]
	for _, f := range nums[1:] {
		m = math.Min(m, f)
	}
	return m, true
}

// Max returns the largest resolved numeric value, or false when there is
// none.
func (c *Collection[T]) Max(by ...any) (float64, bool) {
	nums := c.numbers(by)
	if len(nums) == 0 {
		return 0, false
	}
	m := nums[0]
	for _, f := range nums[1:] {
		m = math.Max(m, f)
	}
	return m, true
}

// Median returns the middle resolved value, or the mean of the two middle
// values for an even count. The collection must already be sorted; Median
// does not sort. It returns false for an empty collection or when a middle
// value is not numeric.
func (c *Collection[T]) Median(by ...any) (float64, bool) {
	n := c.Count()
	if n == 0 {
		return 0, false
	}
	sel := selector[T](by)
	items := c.values()
	at := func(i int) (float64, bool) { return toNumber(sel(items[i], i)) }
	if n%2 == 1 {
		return at(n / 2)
	}
	a, aok := at(n/2 - 1)
	b, bok := at(n / 2)
	if !aok || !bok {
		return 0, false
	}
	return (a + b) / 2, true
}

// Mode returns every resolved value tied for the highest frequency, in
// order of first occurrence, or nil for an empty collection.
//
//	collections.New(1, 1, 2, 2, 3).Mode() // → [1, 2]
func (c *Collection[T]) Mode(by ...any) []any {
	if c.IsEmpty() {
		return nil
	}
	sel := selector[T](by)
	type tally struct {
		value any
		count int
	}
	order := make([]*tally, 0)
	index := make(map[any]*tally)
	highest := 0
	c.each(func(k any, item T) bool {
		v := sel(item, k)
		id := arr.Identity(v)
		t, ok := index[id]
		if !ok {
			t = &tally{value: v}
			index[id] = t
			order = append(order, t)
		}
		t.count++
		highest = max(highest, t.count)
		return true
	})
	out := make([]any, 0)
	for _, t := range order {
		if t.count == highest {
			out = append(out, t.value)
		}
	}
	return out
}

// CountBy counts the items per resolved value and returns a mapping from
// the value (rendered as a key) to its count, in order of first occurrence.
func (c *Collection[T]) CountBy(by ...any) *Collection[int] {
	sel := selector[T](by)
	out := mapOf[int](c.cfg, 0)
	c.each(func(k any, item T) bool {
		key := keyString(sel(item, k))
		out.set(key, out.vals[key]+1)
		return true
	})
	return out
}
