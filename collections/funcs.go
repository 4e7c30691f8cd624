package collections

// Typed counterparts of the methods that change the element type. A method
// cannot declare type parameters of its own, so these take the collection
// as their first argument:
//
//	labels := collections.Map(
//	    scores.Filter(func(n int, _ any) bool { return n >= 50 }),
//	    func(n int, _ any) string { return "pass:" + strconv.Itoa(n) },
//	)

// Map returns fn(item, key) for every item as a Collection[U] in the mode
// of c. Mapping keys are kept.
func Map[T, U any](c *Collection[T], fn func(T, any) U) *Collection[U] {
	out := like[U](c, c.Count())
	c.each(func(k any, item T) bool {
		out.keep(k, fn(item, k))
		return true
	})
	return out
}

// FlatMap concatenates the slices returned by fn into one sequence.
//
//	words := collections.FlatMap(lines, func(s string, _ any) []string {
//	    return strings.Fields(s)
//	})
func FlatMap[T, U any](c *Collection[T], fn func(T, any) []U) *Collection[U] {
	out := seqOf(c.cfg, make([]U, 0, c.Count()))
	c.each(func(k any, item T) bool {
		out.list = append(out.list, fn(item, k)...)
		return true
	})
	return out
}

// Reduce folds c into a U, starting from initial.
//
//	total := collections.Reduce(orders, func(acc float64, o Order, _ any) float64 {
//	    return acc + o.Amount
//	}, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, any) U, initial U) U {
	acc := initial
	c.each(func(k any, item T) bool {
		acc = fn(acc, item, k)
		return true
	})
	return acc
}

// Pluck is [Map] without the key argument, typically used to read one field.
//
//	emails := collections.Pluck(users, func(u User) string { return u.Email })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ any) U { return fn(item) })
}

// MapInto decodes every item into a U, keeping the mode of c. Items that
// already are a U are kept as they are; others are converted through their
// JSON encoding, so mapping items fill the matching struct fields.
//
//	users, err := collections.MapInto[User](rows)
func MapInto[U, T any](c *Collection[T]) (*Collection[U], error) {
	out := like[U](c, c.Count())
	var err error
	c.each(func(k any, item T) bool {
		var u U
		if u, err = decodeAs[U](item); err != nil {
			return false
		}
		out.keep(k, u)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupBy buckets the items into sequences by the key fn returns. Each
// bucket keeps the relative order of its items.
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	buckets := make(map[K]*Collection[T])
	c.each(func(_ any, item T) bool {
		key := fn(item)
		bucket, ok := buckets[key]
		if !ok {
			bucket = seqOf[T](c.cfg, nil)
			buckets[key] = bucket
		}
		bucket.list = append(bucket.list, item)
		return true
	})
	return buckets
}

// Chunks splits c into consecutive groups of size, like [Collection.Chunk],
// but returns the groups typed. Returns nil when size <= 0.
func Chunks[T any](c *Collection[T], size int) []*Collection[T] {
	if size <= 0 {
		return nil
	}
	n := c.Count()
	out := make([]*Collection[T], 0, (n+size-1)/size)
	for i := 0; i < n; i += size {
		out = append(out, c.span(i, i+size))
	}
	return out
}

// KeyBy indexes the items by the key fn returns; later items overwrite
// earlier ones with the same key.
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, c.Count())
	c.each(func(_ any, item T) bool {
		out[fn(item)] = item
		return true
	})
	return out
}

// Zip pairs the items of a and b by position. The result is as long as
// the shorter input.
//
//	collections.Zip(collections.New("a", "b"), collections.New(1, 2, 3)) // → [(a, 1) (b, 2)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	av, bv := a.values(), b.values()
	n := min(len(av), len(bv))
	out := seqOf(a.cfg, make([]Pair[A, B], 0, n))
	for i := range n {
		out.list = append(out.list, Pair[A, B]{First: av[i], Second: bv[i]})
	}
	return out
}

// Collapse joins the slices held by c into a single sequence.
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	size := 0
	c.each(func(_ any, chunk []T) bool {
		size += len(chunk)
		return true
	})
	out := seqOf(c.cfg, make([]T, 0, size))
	c.each(func(_ any, chunk []T) bool {
		out.list = append(out.list, chunk...)
		return true
	})
	return out
}
