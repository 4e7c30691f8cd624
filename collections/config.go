package collections

import (
	"io"
	"math/rand"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// ColorMode controls whether [Collection.Dump] colors its output.
type ColorMode int

const (
	// ColorAuto colors output only when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways always emits ANSI color sequences.
	ColorAlways
	// ColorNever never emits ANSI color sequences.
	ColorNever
)

// Config holds the runtime collaborators of a [Collection].
//
// A Config is attached with [Collection.WithConfig] and inherited by every
// collection derived from the receiver, so a registry or logger configured
// once follows the whole pipeline. Zero fields fall back to their defaults.
type Config struct {
	// Macros is the registry consulted by [Collection.Call].
	// When nil, [Collection.Macro] creates one on first registration.
	Macros *Registry

	// Rand is the source used by Shuffle and Random.
	// Defaults to the math/rand top-level source.
	Rand *rand.Rand

	// Output receives Dump and DD output. Defaults to os.Stderr.
	Output io.Writer

	// Exit terminates the process after DD. Defaults to os.Exit.
	Exit func(code int)

	// Logger receives debug events (macro registration, macro misses) and
	// the DD termination warning. Defaults to a no-op logger.
	Logger *zap.Logger

	// Color selects colored Dump output. Defaults to [ColorAuto].
	Color ColorMode
}

// DefaultConfig returns a [Config] populated with sensible defaults and a
// fresh macro registry.
func DefaultConfig() Config {
	return Config{
		Macros: NewRegistry(),
		Output: os.Stderr,
		Exit:   os.Exit,
		Logger: zap.NewNop(),
		Color:  ColorAuto,
	}
}

var nopLogger = zap.NewNop()

func (cfg *Config) logger() *zap.Logger {
	if cfg == nil || cfg.Logger == nil {
		return nopLogger
	}
	return cfg.Logger
}

func (cfg *Config) intn(n int) int {
	if cfg == nil || cfg.Rand == nil {
		return rand.Intn(n)
	}
	return cfg.Rand.Intn(n)
}

func (cfg *Config) output() io.Writer {
	if cfg == nil || cfg.Output == nil {
		return os.Stderr
	}
	return cfg.Output
}

func (cfg *Config) exit(code int) {
	if cfg == nil || cfg.Exit == nil {
		os.Exit(code)
		return
	}
	cfg.Exit(code)
}

func (cfg *Config) registry() *Registry {
	if cfg == nil {
		return nil
	}
	return cfg.Macros
}

// colored reports whether Dump output written to w should be colored.
func (cfg *Config) colored(w io.Writer) bool {
	mode := ColorAuto
	if cfg != nil {
		mode = cfg.Color
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithConfig attaches a copy of cfg to c and returns c.
// Collections derived from c afterwards share the same configuration.
func (c *Collection[T]) WithConfig(cfg Config) *Collection[T] {
	c.cfg = &cfg
	return c
}

// Config returns the configuration attached to c, or [DefaultConfig] when
// none is attached.
func (c *Collection[T]) Config() Config {
	if c.cfg == nil {
		return DefaultConfig()
	}
	return *c.cfg
}
