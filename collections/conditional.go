package collections

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipelines
//
// A callback returning nil leaves the pipeline on the receiver.
// ─────────────────────────────────────────────────────────────────────────────

func (c *Collection[T]) apply(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if fn == nil {
		return c
	}
	if out := fn(c); out != nil {
		return out
	}
	return c
}

// When calls fn(c) when cond is true, or def[0](c) when it is false, and
// returns the result.
//
//	c.When(onlyActive, func(c *collections.Collection[User]) *collections.Collection[User] {
//	    return c.Where("active", true)
//	})
func (c *Collection[T]) When(cond bool, fn func(*Collection[T]) *Collection[T], def ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	if cond {
		return c.apply(fn)
	}
	if len(def) > 0 {
		return c.apply(def[0])
	}
	return c
}

// Unless is the inverse of [Collection.When].
func (c *Collection[T]) Unless(cond bool, fn func(*Collection[T]) *Collection[T], def ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!cond, fn, def...)
}

// WhenEmpty calls fn(c) when the collection is empty.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T], def ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn, def...)
}

// WhenNotEmpty calls fn(c) when the collection has items.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T], def ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn, def...)
}

// UnlessEmpty is an alias for [Collection.WhenNotEmpty].
func (c *Collection[T]) UnlessEmpty(fn func(*Collection[T]) *Collection[T], def ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.WhenNotEmpty(fn, def...)
}

// UnlessNotEmpty is an alias for [Collection.WhenEmpty].
func (c *Collection[T]) UnlessNotEmpty(fn func(*Collection[T]) *Collection[T], def ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.WhenEmpty(fn, def...)
}
