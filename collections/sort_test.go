package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collect/collections"
)

func TestSortDefault(t *testing.T) {
	assert.Equal(t, []int{1, 9, 10}, ints(10, 9, 1).Sort().All())
	assert.Equal(t, []int{10, 9, 1}, ints(1, 10, 9).SortDesc().All())
	assert.Equal(t, []string{"10", "9", "b"}, collections.New("b", "9", "10").Sort().All())
	assert.Equal(t, []int{3, 1}, ints(3, 1).All())
}

func TestSortNilLast(t *testing.T) {
	assert.Equal(t, []any{1, 3, nil}, collections.New[any](3, nil, 1).Sort().All())
	assert.Equal(t, []any{3, 1, nil}, collections.New[any](nil, 1, 3).SortDesc().All())
	assert.Equal(t, []any{"a", "b", nil, nil}, collections.New[any](nil, "b", nil, "a").Sort().All())
}

func TestSortComparator(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }
	words := collections.New("ccc", "a", "bb")
	assert.Equal(t, []string{"a", "bb", "ccc"}, words.Sort(byLen).All())
	assert.Equal(t, []string{"ccc", "bb", "a"}, words.SortDesc(byLen).All())
}

func TestSortKeepsMappingKeys(t *testing.T) {
	m := pairs(kv{"a", 3}, kv{"b", 1}, kv{"c", 2}).Sort()
	assert.Equal(t, []any{"b", "c", "a"}, m.Keys().All())
	assert.Equal(t, []int{1, 2, 3}, m.All())
}

func TestSortIsStable(t *testing.T) {
	ws := collections.New("bb", "a", "cc", "b", "aa")
	got := ws.Sort(func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, []string{"a", "b", "bb", "cc", "aa"}, got.All())
}

func TestSortBy(t *testing.T) {
	assert.Equal(t, []any{"Lamp", "Rug", "Chair", "Desk"}, names(products().SortBy("price")))
	assert.Equal(t, []any{"Desk", "Chair", "Rug", "Lamp"}, names(products().SortByDesc("price")))

	byLen := collections.New("ccc", "a", "bb").SortBy(func(s string) int { return len(s) })
	assert.Equal(t, []string{"a", "bb", "ccc"}, byLen.All())
}

func TestSortByNilLast(t *testing.T) {
	c := collections.New(
		map[string]any{"name": "x"},
		map[string]any{"name": "b", "rank": 2},
		map[string]any{"name": "a", "rank": 1},
	)
	assert.Equal(t, []any{"a", "b", "x"}, names(c.SortBy("rank")))
	assert.Equal(t, []any{"b", "a", "x"}, names(c.SortByDesc("rank")))
}

func TestSortByMany(t *testing.T) {
	people := collections.New(
		map[string]any{"name": "Zed", "last": "Smith"},
		map[string]any{"name": "Amy", "last": "Jones"},
		map[string]any{"name": "Bob", "last": "Smith"},
		map[string]any{"name": "Cid"},
	)
	got := people.SortByMany("last", "name")
	assert.Equal(t, []any{"Amy", "Bob", "Zed", "Cid"}, names(got))

	byGroup := people.SortByMany(func(p map[string]any) any { return p["last"] }, func(p map[string]any) string {
		return strings.ToLower(p["name"].(string))
	})
	assert.Equal(t, names(got), names(byGroup))
}

func TestSortKeys(t *testing.T) {
	m := pairs(kv{"b", 1}, kv{"c", 2}, kv{"a", 3})
	assert.Equal(t, []any{"a", "b", "c"}, m.SortKeys().Keys().All())
	assert.Equal(t, []any{"c", "b", "a"}, m.SortKeysDesc().Keys().All())

	assert.Equal(t, []int{3, 1, 2}, ints(3, 1, 2).SortKeys().All())
	assert.Equal(t, []int{2, 1, 3}, ints(3, 1, 2).SortKeysDesc().All())
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, ints(1, 2, 3).Reverse().All())

	m := pairs(kv{"a", 1}, kv{"b", 2}).Reverse()
	assert.Equal(t, []any{"b", "a"}, m.Keys().All())
	assert.Equal(t, []int{2, 1}, m.All())
}
