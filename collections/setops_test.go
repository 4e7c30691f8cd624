package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collect/collections"
)

type anyKV = collections.Pair[string, any]

func TestDiff(t *testing.T) {
	assert.Equal(t, []int{4, 5}, ints(1, 2, 3, 4, 5).Diff([]int{1, 2, 3, 9}).All())
	assert.Equal(t, []int{1, 3}, ints(1, 2, 3).Diff(collections.New(2.0)).All())

	m := pairs(kv{"a", 1}, kv{"b", 2}).Diff([]int{1})
	assert.Equal(t, map[string]int{"b": 2}, m.ToMap())
}

func TestDiffIsSubsetOfReceiver(t *testing.T) {
	a := ints(5, 1, 9, 3, 3, 7)
	b := ints(3, 9, 2)
	d := a.Diff(b.All())
	assert.Subset(t, a.All(), d.All())
	for _, n := range d.All() {
		assert.NotContains(t, b.All(), n)
	}
}

func TestDiffUsing(t *testing.T) {
	foldCmp := func(item string, other any) int {
		if strings.EqualFold(item, other.(string)) {
			return 0
		}
		return 1
	}
	got := collections.New("a", "B", "c").DiffUsing([]string{"A", "b"}, foldCmp)
	assert.Equal(t, []string{"c"}, got.All())
}

func TestDiffAssoc(t *testing.T) {
	got := pairs(kv{"a", 1}, kv{"b", 2}, kv{"c", 3}).DiffAssoc(map[string]int{"a": 1, "b": 5})
	assert.Equal(t, []any{"b", "c"}, got.Keys().All())
	assert.Equal(t, []int{2, 3}, got.All())

	seq := ints(1, 2, 3).DiffAssoc([]int{1, 5})
	assert.True(t, seq.IsMapping())
	assert.Equal(t, map[string]int{"1": 2, "2": 3}, seq.ToMap())
}

func TestDiffKeys(t *testing.T) {
	got := pairs(kv{"a", 1}, kv{"b", 2}).DiffKeys(map[string]int{"a": 9})
	assert.Equal(t, map[string]int{"b": 2}, got.ToMap())
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []int{2, 4}, ints(1, 2, 3, 4).Intersect([]any{2, 4.0, "3"}).All())

	m := pairs(kv{"a", 1}, kv{"b", 2}).Intersect(collections.New(2))
	assert.Equal(t, []any{"b"}, m.Keys().All())
}

func TestIntersectByKeys(t *testing.T) {
	got := pairs(kv{"a", 1}, kv{"b", 2}, kv{"c", 3}).IntersectByKeys(map[string]any{"c": 0, "a": 0})
	assert.Equal(t, []any{"a", "c"}, got.Keys().All())
}

func TestUnion(t *testing.T) {
	m := pairs(kv{"a", 1}, kv{"b", 2}).Union(pairs(kv{"b", 9}, kv{"c", 3}))
	assert.Equal(t, []any{"a", "b", "c"}, m.Keys().All())
	assert.Equal(t, []int{1, 2, 3}, m.All())

	assert.Equal(t, []int{1, 2, 9}, ints(1, 2).Union(ints(7, 8, 9)).All())
}

func TestMerge(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ints(1, 2).Merge(ints(3)).All())

	m := pairs(kv{"a", 1}, kv{"b", 2}).Merge(pairs(kv{"b", 5}, kv{"c", 3}))
	assert.Equal(t, []any{"a", "b", "c"}, m.Keys().All())
	assert.Equal(t, []int{1, 5, 3}, m.All())

	mixed := ints(1, 2).Merge(pairs(kv{"x", 9}))
	assert.Equal(t, []any{"0", "1", "x"}, mixed.Keys().All())
}

func TestReplace(t *testing.T) {
	assert.Equal(t, []int{9, 2, 3}, ints(1, 2, 3).Replace(ints(9)).All())
	assert.Equal(t, []int{7, 8}, ints(1).Replace(ints(7, 8)).All())

	m := pairs(kv{"a", 1}).Replace(pairs(kv{"a", 2}, kv{"b", 3}))
	assert.Equal(t, map[string]int{"a": 2, "b": 3}, m.ToMap())
}

func TestConcat(t *testing.T) {
	assert.Equal(t, []int{1, 2}, ints(1).Concat(pairs(kv{"z", 2})).All())

	m := pairs(kv{"a", 1}).Concat(ints(2, 3))
	assert.Equal(t, []any{"a", "0", "1"}, m.Keys().All())
}

func TestMergeRecursive(t *testing.T) {
	c := collections.FromPairs(
		anyKV{First: "a", Second: 1},
		anyKV{First: "b", Second: map[string]any{"x": 1}},
		anyKV{First: "same", Second: "v"},
	)
	got := c.MergeRecursive(map[string]any{
		"a":    2,
		"b":    map[string]any{"y": 2},
		"c":    3,
		"same": "v",
	})
	assert.Equal(t, []any{"a", "b", "same", "c"}, got.Keys().All())
	assert.Equal(t, []any{1, 2}, got.GetOr("a", nil))
	assert.Equal(t, map[string]any{"x": 1, "y": 2}, got.GetOr("b", nil))
	assert.Equal(t, "v", got.GetOr("same", nil))
	assert.Equal(t, 3, got.GetOr("c", nil))

	assert.Equal(t, 3, c.MergeRecursive(nil).Count())
}

func TestReplaceRecursive(t *testing.T) {
	c := collections.FromPairs(
		anyKV{First: "a", Second: 1},
		anyKV{First: "b", Second: map[string]any{"x": 1, "z": 0}},
	)
	got := c.ReplaceRecursive(map[string]any{"b": map[string]any{"x": 2}})
	assert.Equal(t, 1, got.GetOr("a", nil))
	assert.Equal(t, map[string]any{"x": 2, "z": 0}, got.GetOr("b", nil))

	seq := collections.New[any](1, 2, 3).ReplaceRecursive([]any{9})
	assert.True(t, seq.IsSequence())
	assert.Equal(t, []any{9, 2, 3}, seq.All())
}

func TestCrossJoin(t *testing.T) {
	got := ints(1, 2).CrossJoin([]string{"a", "b"})
	assert.Equal(t, [][]any{{1, "a"}, {1, "b"}, {2, "a"}, {2, "b"}}, got.All())

	assert.Equal(t, [][]any{{1}, {2}}, ints(1, 2).CrossJoin().All())
	assert.True(t, ints(1, 2).CrossJoin([]int{}).IsEmpty())
}

func TestCombine(t *testing.T) {
	got := collections.New("name", "age").Combine([]any{"Alice", 30})
	assert.Equal(t, []any{"name", "age"}, got.Keys().All())
	assert.Equal(t, []any{"Alice", 30}, got.All())

	short := collections.New("a", "b").Combine([]int{1})
	v, ok := short.Get("b")
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestZipMethod(t *testing.T) {
	got := collections.New("a", "b").Zip([]int{1})
	require.Equal(t, 2, got.Count())
	first, _ := got.Get(0)
	second, _ := got.Get(1)
	assert.Equal(t, []any{"a", 1}, first.All())
	assert.Equal(t, []any{"b", nil}, second.All())
}
