package collections_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collect/collections"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, ints(1, 2, 3).Sum())
	assert.Equal(t, 0.0, ints().Sum())
	assert.Equal(t, 0.3, collections.New(0.1, 0.2).Sum())
	assert.Equal(t, 425.0, products().Sum("price"))
	assert.Equal(t, 12.0, ints(1, 2, 3).Sum(func(n int) int { return n * 2 }))
}

func TestSumParsesNumericPrefix(t *testing.T) {
	assert.Equal(t, 14.5, collections.New[any]("12px", 2.5).Sum())
	assert.True(t, math.IsNaN(collections.New[any](1, "abc").Sum()))
	assert.True(t, math.IsNaN(collections.New[any](1, nil).Sum()))
}

func TestSumDecimalSyntaxOnly(t *testing.T) {
	assert.Equal(t, 0.0, collections.New("0x10").Sum())
	assert.Equal(t, 1.0, collections.New("1_000").Sum())
	assert.Equal(t, 150.0, collections.New("1.5e2").Sum())
	assert.True(t, math.IsNaN(collections.New("inf").Sum()))
	assert.True(t, math.IsNaN(collections.New("0x10", "inf").Sum()))
	assert.True(t, math.IsNaN(collections.New("nan").Sum()))
	assert.True(t, math.IsInf(collections.New("Infinity", "2").Sum(), 1))
}

func TestAvg(t *testing.T) {
	assert.Equal(t, 2.5, ints(1, 2, 3, 4).Avg())
	assert.Equal(t, 106.25, products().Average("price"))
	assert.Equal(t, 0.0, ints().Avg())
}

func TestMinMax(t *testing.T) {
	c := collections.New[any](3, "x", 1, nil, "7")

	lo, ok := c.Min()
	assert.True(t, ok)
	assert.Equal(t, 1.0, lo)

	hi, ok := c.Max()
	assert.True(t, ok)
	assert.Equal(t, 7.0, hi)

	hi, ok = products().Max("price")
	assert.True(t, ok)
	assert.Equal(t, 200.0, hi)

	_, ok = ints().Min()
	assert.False(t, ok)
	_, ok = collections.New("a", "b").Max()
	assert.False(t, ok)
}

func TestMedian(t *testing.T) {
	m, ok := ints(1, 2, 3).Median()
	assert.True(t, ok)
	assert.Equal(t, 2.0, m)

	m, ok = ints(1, 2, 3, 4).Median()
	assert.True(t, ok)
	assert.Equal(t, 2.5, m)

	m, ok = products().Median("price")
	assert.True(t, ok)
	assert.Equal(t, 75.0, m)

	_, ok = ints().Median()
	assert.False(t, ok)

	_, ok = collections.New[any](1, "x", 3).Median()
	assert.False(t, ok)
}

func TestMode(t *testing.T) {
	assert.Equal(t, []any{1, 2}, ints(1, 1, 2, 2, 3).Mode())
	assert.Equal(t, []any{3}, ints(3, 1, 3).Mode())
	assert.Equal(t, []any{"office", "home"}, products().Mode("dept"))
	assert.Nil(t, ints().Mode())
}

func TestCountBy(t *testing.T) {
	c := collections.New("a", "b", "a").CountBy()
	assert.True(t, c.IsMapping())
	assert.Equal(t, []any{"a", "b"}, c.Keys().All())
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, c.ToMap())

	parity := ints(1, 2, 3).CountBy(func(n int) bool { return n%2 == 0 })
	assert.Equal(t, map[string]int{"false": 2, "true": 1}, parity.ToMap())

	assert.Equal(t, map[string]int{"office": 2, "home": 2}, products().CountBy("dept").ToMap())
}
