package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collect/collections"
)

func TestMapMethod(t *testing.T) {
	assert.Equal(t, []any{2, 4}, ints(1, 2).Map(func(n int, _ any) any { return n * 2 }).All())

	m := pairs(kv{"a", 1}, kv{"b", 2}).Map(func(n int, k any) any { return k.(string) + strings.Repeat("!", n) })
	assert.Equal(t, map[string]any{"a": "a!", "b": "b!!"}, m.ToMap())
}

func TestMapWithKeys(t *testing.T) {
	got := products().MapWithKeys(func(p map[string]any, _ any) (string, any) {
		return p["name"].(string), p["price"]
	})
	assert.Equal(t, []any{"Desk", "Chair", "Lamp", "Rug"}, got.Keys().All())
	assert.Equal(t, "50", got.GetOr("Lamp", nil))
}

func TestMapToGroups(t *testing.T) {
	got := products().MapToGroups(func(p map[string]any, _ any) (string, any) {
		return p["dept"].(string), p["name"]
	})
	assert.Equal(t, []any{"office", "home"}, got.Keys().All())
	assert.Equal(t, map[string][]any{
		"office": {"Desk", "Chair"},
		"home":   {"Lamp", "Rug"},
	}, got.ToMap())
	assert.Equal(t, got.ToMap(), products().MapToDictionary(func(p map[string]any, _ any) (string, any) {
		return p["dept"].(string), p["name"]
	}).ToMap())
}

func TestMapSpread(t *testing.T) {
	c := collections.New([]any{1, 2}, []any{3, 4})
	got := c.MapSpread(func(args ...any) any { return args[0].(int) + args[1].(int) + args[2].(int) })
	assert.Equal(t, []any{3, 8}, got.All())
}

func TestFlatMapMethod(t *testing.T) {
	got := collections.New("a b", "c").FlatMap(func(s string, _ any) any { return strings.Fields(s) })
	assert.Equal(t, []any{"a", "b", "c"}, got.All())
}

func TestCollapseMethod(t *testing.T) {
	got := collections.Wrap([]any{[]int{1, 2}, []int{3}, 4}).Collapse()
	assert.Equal(t, []any{1, 2, 3, 4}, got.All())
}

func TestFlatten(t *testing.T) {
	nested := collections.Wrap([]any{1, []any{2, []any{3, []any{4}}}})
	assert.Equal(t, []any{1, 2, 3, 4}, nested.Flatten().All())
	assert.Equal(t, []any{1, 2, []any{3, []any{4}}}, nested.Flatten(1).All())

	m := collections.Wrap(map[string]any{"a": 1, "b": map[string]any{"c": 2}})
	assert.Equal(t, []any{1, 2}, m.Flatten().All())
}

func TestPluck(t *testing.T) {
	assert.Equal(t, []any{"Desk", "Chair", "Lamp", "Rug"}, products().Pluck("name").All())
	assert.Equal(t, []any{true, false, true, nil}, products().Pluck("active").All())

	byDept := products().Pluck("name", "dept")
	assert.Equal(t, map[string]any{"office": "Chair", "home": "Rug"}, byDept.ToMap())
}

func TestPluckWildcard(t *testing.T) {
	users := collections.New(
		map[string]any{"roles": []any{map[string]any{"name": "admin"}, map[string]any{"name": "ops"}}},
		map[string]any{"roles": []any{map[string]any{"name": "dev"}}},
	)
	got := users.Pluck("roles.*.name")
	assert.Equal(t, []any{[]any{"admin", "ops"}, []any{"dev"}}, got.All())
	assert.Equal(t, []any{"admin", "ops", "dev"}, got.Collapse().All())
}

func TestGroupByMethod(t *testing.T) {
	byDept := products().GroupBy("dept")
	assert.Equal(t, []any{"office", "home"}, byDept.Keys().All())
	office, ok := byDept.Get("office")
	require.True(t, ok)
	require.IsType(t, &collections.Collection[map[string]any]{}, office)
	assert.Equal(t, []any{"Desk", "Chair"}, names(office.(*collections.Collection[map[string]any])))

	parity := ints(1, 2, 3).GroupBy(func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	odd, _ := parity.Get("odd")
	assert.Equal(t, []int{1, 3}, odd.(*collections.Collection[int]).All())
}

func TestGroupByFalsyPathValues(t *testing.T) {
	byActive := products().GroupBy("active")
	assert.Equal(t, []any{"true", ""}, byActive.Keys().All())
	blank, _ := byActive.Get("")
	assert.Equal(t, []any{"Chair", "Rug"}, names(blank.(*collections.Collection[map[string]any])))
}

func TestKeyByMethod(t *testing.T) {
	byName := products().KeyBy("name")
	assert.Equal(t, []any{"Desk", "Chair", "Lamp", "Rug"}, byName.Keys().All())

	byDept := products().KeyBy("dept")
	assert.Equal(t, []any{"Chair", "Rug"}, names(byDept))
}

func TestReduceMethod(t *testing.T) {
	sum := ints(1, 2, 3).Reduce(func(carry any, n int, _ any) any { return carry.(int) + n }, 0)
	assert.Equal(t, 6, sum)

	keys := pairs(kv{"a", 1}, kv{"b", 2}).Reduce(func(carry any, _ int, k any) any {
		return carry.(string) + k.(string)
	}, "")
	assert.Equal(t, "ab", keys)
}

func TestFlip(t *testing.T) {
	assert.Equal(t, map[string]any{"a": 0, "b": 1}, collections.New("a", "b").Flip().ToMap())
	assert.Equal(t, map[string]any{"1": "x"}, pairs(kv{"x", 1}).Flip().ToMap())
}

func TestImplode(t *testing.T) {
	assert.Equal(t, "1, 2, 3", ints(1, 2, 3).Implode(", "))
	assert.Equal(t, "Desk/Chair/Lamp/Rug", products().Implode("/", "name"))
	assert.Equal(t, "a--b", collections.New[any]("a", nil, "b").Implode("-"))
	assert.Equal(t, "", ints().Implode(","))
}

func TestJoin(t *testing.T) {
	abc := collections.New("a", "b", "c")
	assert.Equal(t, "a, b and c", abc.Join(", ", " and "))
	assert.Equal(t, "a, b, c", abc.Join(", "))
	assert.Equal(t, "a", collections.New("a").Join(", ", " and "))
	assert.Equal(t, "", collections.New[string]().Join(", ", " and "))
	assert.Equal(t, 3, abc.Count())
}

func TestDotUndot(t *testing.T) {
	source := map[string]any{
		"a": map[string]any{"b": 1, "c": map[string]any{"d": 2}},
		"e": []any{1},
	}
	dotted := collections.Wrap(source).Dot()
	assert.Equal(t, []any{"a.b", "a.c.d", "e"}, dotted.Keys().All())
	assert.Equal(t, 2, dotted.GetOr("a.c.d", nil))

	assert.Equal(t, source, dotted.Undot().ToNative())

	seq := ints(1, 2).Dot()
	assert.True(t, seq.IsSequence())
	assert.Equal(t, []any{1, 2}, seq.All())
}
