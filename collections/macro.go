package collections

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// MacroFunc is the function signature for a registered macro.
//
// The collection is passed as an any so that macros can be registered once
// and used across any Collection[T] instantiation. Type-assert inside the
// macro to the concrete *Collection[YourType].
type MacroFunc func(collection any, args ...any) any

// Registry is a goroutine-safe table of named macros.
//
// There is no process-wide registry: a Registry is attached to collections
// through [Config.Macros] and shared by every collection derived from them.
//
//	reg := collections.NewRegistry()
//	_ = reg.Register("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int, _ any) bool { return n%2 == 0 })
//	})
//
//	cfg := collections.DefaultConfig()
//	cfg.Macros = reg
//	res, _ := collections.New(1, 2, 3, 4).WithConfig(cfg).Call("evens")
type Registry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{macros: make(map[string]MacroFunc)}
}

// Register adds a named macro. If a macro with that name already exists it
// is replaced.
func (r *Registry) Register(name string, fn MacroFunc) error {
	if name == "" {
		return ErrEmptyMacroName
	}
	if fn == nil {
		return ErrNilMacro
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.macros[name] = fn
	return nil
}

// Has reports whether a macro with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.macros[name]
	return ok
}

// Names returns the registered macro names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.macros))
	for name := range r.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Flush removes all registered macros.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.macros = make(map[string]MacroFunc)
}

// Call invokes the named macro with the supplied collection and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func (r *Registry) Call(name string, collection any, args ...any) (any, error) {
	r.mu.RLock()
	fn, ok := r.macros[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(collection, args...), nil
}

// Macro registers fn under name on the registry of c and returns c.
// When c has no registry yet, one is created and attached to its
// configuration, so collections derived from c afterwards see the macro too.
// An empty name or nil fn is ignored.
func (c *Collection[T]) Macro(name string, fn MacroFunc) *Collection[T] {
	if c.cfg == nil {
		c.cfg = &Config{}
	}
	if c.cfg.Macros == nil {
		c.cfg.Macros = NewRegistry()
	}
	replaced := c.cfg.Macros.Has(name)
	if err := c.cfg.Macros.Register(name, fn); err != nil {
		c.cfg.logger().Debug("macro rejected", zap.String("name", name), zap.Error(err))
		return c
	}
	c.cfg.logger().Debug("macro registered", zap.String("name", name), zap.Bool("replaced", replaced))
	return c
}

// Call invokes the named macro from the registry of c.
// Returns (nil, ErrMacroNotFound) when c has no registry or the macro is
// not registered.
func (c *Collection[T]) Call(name string, args ...any) (any, error) {
	reg := c.cfg.registry()
	if reg == nil {
		c.cfg.logger().Debug("macro not found", zap.String("name", name))
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	res, err := reg.Call(name, c, args...)
	if err != nil {
		c.cfg.logger().Debug("macro not found", zap.String("name", name))
	}
	return res, err
}
