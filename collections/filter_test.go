package collections_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collect/collections"
)

type label string

func (l label) String() string { return string(l) }

// ─────────────────────────────────────────────────────────────────────────────
// Filter & Reject
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	evens := ints(1, 2, 3, 4, 5, 6).Filter(func(n int, _ any) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens.All())

	m := pairs(kv{"a", 1}, kv{"b", 2}, kv{"c", 3}).Filter(func(n int, _ any) bool { return n != 2 })
	assert.Equal(t, []any{"a", "c"}, m.Keys().All())
}

func TestFilterNilDropsBlankItems(t *testing.T) {
	c := collections.New[any](0, 1, "", "a", nil, false, []any{}, 2)
	assert.Equal(t, []any{1, "a", 2}, c.Filter(nil).All())
	assert.Equal(t, 5, c.Reject(nil).Count())
}

func TestReject(t *testing.T) {
	odds := ints(1, 2, 3, 4).Reject(func(n int, _ any) bool { return n%2 == 0 })
	assert.Equal(t, []int{1, 3}, odds.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Where
// ─────────────────────────────────────────────────────────────────────────────

func TestWhere(t *testing.T) {
	p := products()
	assert.Equal(t, []any{"Desk", "Chair"}, names(p.Where("price", ">=", 100)))
	assert.Equal(t, []any{"Chair"}, names(p.Where("price", 100)))
	assert.Equal(t, []any{"Lamp"}, names(p.Where("price", "==", 50)))
	assert.Equal(t, []any{"Desk", "Lamp", "Rug"}, names(p.Where("price", "!==", 100)))
	assert.Equal(t, []any{"Desk", "Lamp", "Rug"}, names(p.Where("price", "<>", 100)))
	assert.Equal(t, []any{"Lamp", "Rug"}, names(p.Where("price", "<", 100)))
	assert.Equal(t, []any{"Desk", "Chair"}, names(p.Where("dept", "===", "office")))
}

func TestWhereBoolShortcut(t *testing.T) {
	p := products()
	assert.Equal(t, []any{"Desk", "Lamp"}, names(p.Where("active", true)))
	assert.Equal(t, []any{"Chair", "Rug"}, names(p.Where("active", false)))
	assert.Equal(t, []any{"Desk", "Lamp"}, names(p.Where("active")))
}

func TestWhereOnMappingReturnsSequence(t *testing.T) {
	got := pairs(kv{"a", 1}, kv{"b", 5}).Where("", ">", 2)
	assert.True(t, got.IsSequence())
	assert.Equal(t, []int{5}, got.All())
}

func TestWhereNilIsUnordered(t *testing.T) {
	c := collections.New[any](map[string]any{"v": nil}, map[string]any{"v": 1})
	assert.Equal(t, 1, c.Where("v", ">=", 0).Count())
	assert.Equal(t, 1, c.Where("v", "<", 5).Count())
}

func TestWhereIn(t *testing.T) {
	p := products()
	assert.Equal(t, []any{"Desk", "Chair"}, names(p.WhereIn("price", []int{100, 200})))
	assert.Equal(t, []any{"Lamp", "Rug"}, names(p.WhereNotIn("price", []int{100, 200})))
	assert.Equal(t, []any{"Lamp"}, names(p.WhereIn("name", collections.New("Lamp"))))
}

func TestWhereBetween(t *testing.T) {
	p := products()
	assert.Equal(t, []any{"Desk", "Chair"}, names(p.WhereBetween("price", 100, 200)))
	assert.Equal(t, []any{"Desk", "Lamp", "Rug"}, names(p.WhereNotBetween("price", 100, 150)))
}

func TestWhereNull(t *testing.T) {
	c := collections.New(
		map[string]any{"name": "a", "discount": nil},
		map[string]any{"name": "b"},
		map[string]any{"name": "c", "discount": 10},
	)
	assert.Equal(t, []any{"a", "b"}, names(c.WhereNull("discount")))
	assert.Equal(t, []any{"c"}, names(c.WhereNotNull("discount")))

	plain := collections.New[any](1, nil, 2)
	assert.Equal(t, 1, plain.WhereNull().Count())
	assert.Equal(t, []any{1, 2}, plain.WhereNotNull().All())
}

func TestWhereInstanceOf(t *testing.T) {
	c := collections.New[any](1, "a", 2.5, label("x"), nil)
	assert.Equal(t, []any{label("x")}, c.WhereInstanceOf(reflect.TypeFor[fmt.Stringer]()).All())
	assert.Equal(t, []any{1}, c.WhereInstanceOf(reflect.TypeFor[int]()).All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ints(1, 1, 2, 2, 3).Unique().All())
	assert.Equal(t, []any{1, "1"}, collections.New[any](1, 1.0, "1").Unique().All())
}

func TestUniqueBy(t *testing.T) {
	assert.Equal(t, []any{"Desk", "Lamp"}, names(products().Unique("dept")))

	byParity := ints(1, 2, 3, 4).Unique(func(n int) int { return n % 2 })
	assert.Equal(t, []int{1, 2}, byParity.All())

	m := pairs(kv{"a", 1}, kv{"b", 1}, kv{"c", 2}).Unique()
	assert.Equal(t, []any{"a", "c"}, m.Keys().All())
}

func TestDuplicates(t *testing.T) {
	d := collections.New("a", "b", "a", "c", "b").Duplicates()
	assert.True(t, d.IsMapping())
	assert.Equal(t, []any{"2", "4"}, d.Keys().All())
	assert.Equal(t, []string{"a", "b"}, d.All())

	nested := collections.New[any]([]any{1}, []any{1}, []any{2}).Duplicates()
	assert.Equal(t, []any{"1"}, nested.Keys().All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	c := ints(1, 2, 3)
	assert.True(t, c.Contains(2))
	assert.False(t, c.Contains(9))
	assert.True(t, c.Contains(2.0))
	assert.True(t, c.Contains(func(n int, _ any) bool { return n > 2 }))
	assert.True(t, c.Contains(func(n int) bool { return n == 1 }))
	assert.False(t, c.Contains())

	assert.True(t, products().Contains("name", "Desk"))
	assert.False(t, products().Contains("name", "Sofa"))

	m := pairs(kv{"a", 1})
	assert.True(t, m.Contains("a", 1))
	assert.False(t, m.Contains("a", 2))
	assert.True(t, m.Contains("a"))
	assert.True(t, m.Contains(1))
}

func TestContainsNilValue(t *testing.T) {
	seq := collections.New(
		map[string]any{"a": nil},
		map[string]any{"b": 2},
	)
	assert.True(t, seq.Contains("a", nil))
	assert.False(t, seq.Contains("c", nil))

	m := collections.Wrap(map[string]any{"a": nil})
	assert.True(t, m.Contains("a", nil))
	assert.False(t, m.Contains("c", nil))
}

func TestDoesntContain(t *testing.T) {
	assert.True(t, ints(1, 2).DoesntContain(3))
	assert.False(t, ints(1, 2).DoesntContain(2))
	assert.True(t, ints(1, 2).Some(2))
}

func TestEvery(t *testing.T) {
	assert.True(t, ints(2, 4).Every(func(n int, _ any) bool { return n%2 == 0 }))
	assert.False(t, ints(2, 3).Every(func(n int, _ any) bool { return n%2 == 0 }))
	assert.True(t, ints().Every(func(int, any) bool { return false }))
}
