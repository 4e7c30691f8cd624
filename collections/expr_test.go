package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collect/collections"
)

type stock struct {
	Name string
	Qty  int
}

func TestFilterExpr(t *testing.T) {
	got, err := ints(1, 2, 3, 4).FilterExpr(`item % 2 == 0`)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got.All())

	got, err = ints(5, 6, 7).FilterExpr(`key >= 1`)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, got.All())
}

func TestFilterExprFields(t *testing.T) {
	rows := collections.New(
		map[string]any{"name": "pen", "price": 2, "tag": "office"},
		map[string]any{"name": "lamp", "price": 40, "tag": "home"},
		map[string]any{"name": "desk", "price": 250, "tag": "office"},
	)
	got, err := rows.FilterExpr(`price < 100 && tag == "office"`)
	require.NoError(t, err)
	assert.Equal(t, []any{"pen"}, names(got))

	got, err = rows.FilterExpr(`note == nil`)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count())
}

func TestFilterExprParsedJSON(t *testing.T) {
	c, err := collections.ParseJSON([]byte(`[{"n": 1}, {"n": 3}]`))
	require.NoError(t, err)
	got, err := c.FilterExpr(`n > 2`)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count())
}

func TestFilterExprMapping(t *testing.T) {
	got, err := pairs(kv{"a", 1}, kv{"b", 2}).FilterExpr(`key == "b"`)
	require.NoError(t, err)
	assert.True(t, got.IsMapping())
	assert.Equal(t, map[string]int{"b": 2}, got.ToMap())
}

func TestFilterExprStruct(t *testing.T) {
	c := collections.New(stock{"a", 1}, stock{"b", 5})
	got, err := c.FilterExpr(`item.Qty > 1`)
	require.NoError(t, err)
	assert.Equal(t, []stock{{"b", 5}}, got.All())
}

func TestFilterExprErrors(t *testing.T) {
	_, err := ints(1).FilterExpr(`item >`)
	assert.ErrorIs(t, err, collections.ErrInvalidExpression)

	_, err = ints(1).FilterExpr(`item + 1`)
	assert.ErrorIs(t, err, collections.ErrInvalidExpression)

	_, err = collections.New[any]("x").FilterExpr(`item > 1`)
	assert.ErrorIs(t, err, collections.ErrInvalidExpression)
}

func TestRejectExpr(t *testing.T) {
	got, err := ints(1, 2, 3, 4).RejectExpr(`item > 2`)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.All())

	_, err = ints(1).RejectExpr(`(`)
	assert.ErrorIs(t, err, collections.ErrInvalidExpression)
}
