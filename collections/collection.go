package collections

import (
	"fmt"
	"iter"
	"math"
	"sort"
	"strconv"

	"github.com/hasbyte1/go-collect/arr"
)

// Collection is a generic container holding either an ordered sequence of T
// or a string-keyed mapping of T that remembers insertion order.
//
// The mode is read from the current container on every call: most
// operations return a *new* Collection in the same mode, while the mutators
// (Add, Push, Put, Prepend, Forget, Pull, Pop, Shift, Splice, Shuffle,
// Transform, Times, Macro) change the receiver in place and return it for
// chaining. Mutators may change the mode; putting a non-index key into a
// sequence promotes it to a mapping and shuffling a mapping turns it into a
// sequence of its values.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	m := collections.FromMap(map[string]int{"a": 1, "b": 2})
//	w := collections.Wrap(anyValue)
//
// # Keys
//
// Callbacks receive the item and its key as an any: an int in sequence
// mode, a string in mapping mode. Lookups accept either form, so "2"
// addresses the third item of a sequence and 7 addresses the key "7" of a
// mapping.
//
// # Method chaining
//
//	result := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int, _ any) bool { return n%2 == 0 }).
//	    SortDesc().
//	    Take(2)
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Methods that change the element type return *Collection[any]; the typed
// variants are package-level functions:
//
//	labels := collections.Map(c, func(n int, _ any) string {
//	    return strconv.Itoa(n * 2)
//	})
//
// A Collection is not safe for concurrent mutation.
type Collection[T any] struct {
	list []T
	keys []string
	vals map[string]T
	cfg  *Config
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a sequence Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{list: dst}
}

// From creates a sequence Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{list: dst}
}

// FromMap creates a mapping Collection from m. Go maps are unordered, so
// keys are inserted in sorted order.
func FromMap[T any](m map[string]T) *Collection[T] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := mapOf[T](nil, len(keys))
	for _, k := range keys {
		out.set(k, m[k])
	}
	return out
}

// FromPairs creates a mapping Collection with the pairs in the given order.
// A repeated key keeps its first position and its last value.
func FromPairs[T any](pairs ...Pair[string, T]) *Collection[T] {
	out := mapOf[T](nil, len(pairs))
	for _, p := range pairs {
		out.set(p.First, p.Second)
	}
	return out
}

// Empty creates an empty sequence Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{list: []T{}}
}

// EmptyMap creates an empty mapping Collection of type T.
func EmptyMap[T any]() *Collection[T] {
	return mapOf[T](nil, 0)
}

// Wrap ingests an arbitrary value:
//
//   - nil gives an empty sequence
//   - a collection (of any element type) is copied in its own mode
//   - a slice or array gives a sequence of its elements
//   - a map gives a mapping (Go maps in sorted key order)
//   - any other value gives a one-item sequence
func Wrap(v any) *Collection[any] {
	if v == nil {
		return Empty[any]()
	}
	if c, ok := v.(*Collection[any]); ok {
		return c.clone()
	}
	switch arr.ShapeOf(v) {
	case arr.List:
		return From(arr.Values(v))
	case arr.Mapping:
		entries := arr.Entries(v)
		out := mapOf[any](nil, len(entries))
		for _, e := range entries {
			out.set(e.Key, e.Value)
		}
		return out
	}
	return New(v)
}

// Times creates a sequence by calling fn with 1 … n.
//
//	collections.Times(3, func(i int) int { return i * i }) // → [1, 4, 9]
func Times[T any](n int, fn func(int) T) *Collection[T] {
	return Empty[T]().Times(n, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mode internals
// ─────────────────────────────────────────────────────────────────────────────

func seqOf[T any](cfg *Config, items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{list: items, cfg: cfg}
}

func mapOf[T any](cfg *Config, n int) *Collection[T] {
	return &Collection[T]{keys: make([]string, 0, n), vals: make(map[string]T, n), cfg: cfg}
}

// like returns an empty collection of element type U in the mode of c.
func like[U, T any](c *Collection[T], n int) *Collection[U] {
	if c.vals != nil {
		return mapOf[U](c.cfg, n)
	}
	return seqOf(c.cfg, make([]U, 0, n))
}

// set writes item under key in a mapping, appending new keys at the end.
func (c *Collection[T]) set(key string, item T) {
	if _, ok := c.vals[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.vals[key] = item
}

// keep appends item to a sequence or writes it under key in a mapping.
func (c *Collection[T]) keep(key any, item T) {
	if c.vals == nil {
		c.list = append(c.list, item)
		return
	}
	c.set(keyString(key), item)
}

// each visits every key/item pair in order until fn returns false.
func (c *Collection[T]) each(fn func(key any, item T) bool) {
	if c.vals == nil {
		for i, item := range c.list {
			if !fn(i, item) {
				return
			}
		}
		return
	}
	for _, k := range c.keys {
		if !fn(k, c.vals[k]) {
			return
		}
	}
}

func (c *Collection[T]) values() []T {
	if c.vals == nil {
		out := make([]T, len(c.list))
		copy(out, c.list)
		return out
	}
	out := make([]T, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.vals[k]
	}
	return out
}

func (c *Collection[T]) clone() *Collection[T] {
	if c.vals == nil {
		return seqOf(c.cfg, c.values())
	}
	out := mapOf[T](c.cfg, len(c.keys))
	for _, k := range c.keys {
		out.set(k, c.vals[k])
	}
	return out
}

// promote turns a sequence into a mapping keyed by decimal indices.
func (c *Collection[T]) promote() {
	if c.vals != nil {
		return
	}
	c.keys = make([]string, 0, len(c.list))
	c.vals = make(map[string]T, len(c.list))
	for i, item := range c.list {
		c.set(strconv.Itoa(i), item)
	}
	c.list = nil
}

// nextKey returns the PHP-style next numeric key of a mapping: one past the
// largest non-negative integer key, or "0".
func (c *Collection[T]) nextKey() string {
	next := 0
	for _, k := range c.keys {
		if n, ok := toIndex(k); ok && n >= next {
			next = n + 1
		}
	}
	return strconv.Itoa(next)
}

// fromEntries builds a collection from ordered entries. When seq is set and
// the keys are exactly 0 … n-1 the result is a sequence, a mapping otherwise.
func fromEntries(cfg *Config, entries []arr.Entry, seq bool) *Collection[any] {
	sequential := seq
	for i := 0; sequential && i < len(entries); i++ {
		sequential = entries[i].Key == strconv.Itoa(i)
	}
	if sequential {
		items := make([]any, len(entries))
		for i, e := range entries {
			items[i] = e.Value
		}
		return seqOf(cfg, items)
	}
	out := mapOf[any](cfg, len(entries))
	for _, e := range entries {
		out.set(e.Key, e.Value)
	}
	return out
}

// keyString renders a key or grouping value as a mapping key.
func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}
	if f, ok := arr.Number(k); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(k)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toIndex converts a key to a sequence position. Strings must be canonical
// decimal integers.
func toIndex(k any) (int, bool) {
	switch t := k.(type) {
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil || strconv.Itoa(n) != t {
			return 0, false
		}
		return n, true
	}
	if f, ok := arr.Number(k); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int(f), true
	}
	return 0, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the items in order. Mapping keys are dropped; use
// [Collection.Entries] or [Collection.ToMap] to keep them.
func (c *Collection[T]) All() []T { return c.values() }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.values() }

// Entries returns the key/item pairs in order.
func (c *Collection[T]) Entries() []Pair[any, T] {
	out := make([]Pair[any, T], 0, c.Count())
	c.each(func(k any, item T) bool {
		out = append(out, Pair[any, T]{First: k, Second: item})
		return true
	})
	return out
}

// ToMap returns the items keyed by their string key. Sequence positions
// become decimal keys.
func (c *Collection[T]) ToMap() map[string]T {
	out := make(map[string]T, c.Count())
	c.each(func(k any, item T) bool {
		out[keyString(k)] = item
		return true
	})
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int {
	if c.vals != nil {
		return len(c.keys)
	}
	return len(c.list)
}

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return c.Count() > 0 }

// ContainsOneItem reports whether the collection holds exactly one item.
func (c *Collection[T]) ContainsOneItem() bool { return c.Count() == 1 }

// IsMapping reports whether the collection is currently in mapping mode.
func (c *Collection[T]) IsMapping() bool { return c.vals != nil }

// IsSequence reports whether the collection is currently in sequence mode.
func (c *Collection[T]) IsSequence() bool { return c.vals == nil }

// Get returns the item stored under key together with a presence flag.
func (c *Collection[T]) Get(key any) (T, bool) {
	var zero T
	if c.vals != nil {
		item, ok := c.vals[keyString(key)]
		return item, ok
	}
	i, ok := toIndex(key)
	if !ok || i < 0 || i >= len(c.list) {
		return zero, false
	}
	return c.list[i], true
}

// GetOr returns the item stored under key, or def when absent.
func (c *Collection[T]) GetOr(key any, def T) T {
	if item, ok := c.Get(key); ok {
		return item
	}
	return def
}

// GetOrElse returns the item stored under key, or the result of fn when
// absent. fn is only called on a miss.
func (c *Collection[T]) GetOrElse(key any, fn func() T) T {
	if item, ok := c.Get(key); ok {
		return item
	}
	return fn()
}

// Has reports whether every given key is present. A single list argument is
// expanded into its elements.
func (c *Collection[T]) Has(keys ...any) bool {
	for _, k := range arr.Variadic(keys) {
		if _, ok := c.Get(k); !ok {
			return false
		}
	}
	return true
}

// Keys returns the keys in order: ints for a sequence, strings for a mapping.
func (c *Collection[T]) Keys() *Collection[any] {
	out := make([]any, 0, c.Count())
	c.each(func(k any, _ T) bool {
		out = append(out, k)
		return true
	})
	return seqOf(c.cfg, out)
}

// Values returns the items as a sequence, dropping mapping keys.
func (c *Collection[T]) Values() *Collection[T] { return seqOf(c.cfg, c.values()) }

// ─────────────────────────────────────────────────────────────────────────────
// Container implementation
// ─────────────────────────────────────────────────────────────────────────────

// Lookup resolves a single key for nested path access.
func (c *Collection[T]) Lookup(key string) (any, bool) {
	item, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	return item, true
}

// Range calls fn for every key/item pair in order until fn returns false.
// Sequence keys are rendered as decimal strings.
func (c *Collection[T]) Range(fn func(key string, value any) bool) {
	c.each(func(k any, item T) bool { return fn(keyString(k), item) })
}

var _ arr.Container = (*Collection[any])(nil)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns an iterator over a snapshot of the key/item pairs taken when
// Iter is called, so mutating c during the loop does not affect it.
//
//	for key, item := range c.Iter() { ... }
func (c *Collection[T]) Iter() iter.Seq2[any, T] {
	entries := c.Entries()
	return func(yield func(any, T) bool) {
		for _, e := range entries {
			if !yield(e.First, e.Second) {
				return
			}
		}
	}
}

// Each calls fn(item, key) for every item until fn returns false.
// Returns c for chaining.
func (c *Collection[T]) Each(fn func(T, any) bool) *Collection[T] {
	for _, e := range c.Entries() {
		if !fn(e.Second, e.First) {
			break
		}
	}
	return c
}

// EachSpread calls fn with the elements of every (list-shaped) item spread
// as arguments, followed by the key. Iteration stops when fn returns false.
//
//	collections.New([]any{"a", 1}, []any{"b", 2}).
//	    EachSpread(func(args ...any) bool { fmt.Println(args...); return true })
func (c *Collection[T]) EachSpread(fn func(args ...any) bool) *Collection[T] {
	return c.Each(func(item T, key any) bool {
		return fn(append(spreadArgs(item), key)...)
	})
}

func spreadArgs(v any) []any {
	if arr.ShapeOf(v) == arr.Scalar {
		return []any{v}
	}
	return arr.Values(v)
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Pipe passes c to fn and returns its result.
func (c *Collection[T]) Pipe(fn func(*Collection[T]) any) any {
	return fn(c)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.values())
	}
	return string(b)
}

// toAny converts c into a collection of any in the same mode.
func toAny[T any](c *Collection[T]) *Collection[any] {
	out := like[any](c, c.Count())
	c.each(func(k any, item T) bool {
		out.keep(k, item)
		return true
	})
	return out
}
