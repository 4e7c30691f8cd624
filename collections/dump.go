package collections

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-collect/arr"
)

// dumpDepth is the number of nesting levels rendered below the top value.
const dumpDepth = 2

// Dump writes an inspection of the collection, followed by one line for
// every extra argument, to the configured output (os.Stderr by default).
// Containers nested deeper than two levels are abbreviated.
//
//	collections.New(1, 2).Dump() // Collection [ 1, 2 ]
func (c *Collection[T]) Dump(args ...any) *Collection[T] {
	w := c.cfg.output()
	in := newInspector(c.cfg.colored(w))
	in.writeLine(w, c)
	for _, a := range args {
		in.writeLine(w, a)
	}
	return c
}

// DD dumps the collection and the arguments like [Collection.Dump], then
// terminates through the configured exit function with status 1.
func (c *Collection[T]) DD(args ...any) {
	c.Dump(args...)
	c.cfg.logger().Warn("collection dumped, exiting", zap.Int("status", 1), zap.Int("count", c.Count()))
	c.cfg.exit(1)
}

type inspector struct {
	number func(a ...any) string
	str    func(a ...any) string
	null   func(a ...any) string
	label  func(a ...any) string
}

func newInspector(colored bool) *inspector {
	paint := func(attrs ...color.Attribute) func(a ...any) string {
		col := color.New(attrs...)
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
		return col.SprintFunc()
	}
	return &inspector{
		number: paint(color.FgYellow),
		str:    paint(color.FgGreen),
		null:   paint(color.Bold),
		label:  paint(color.FgCyan),
	}
}

func (in *inspector) writeLine(w io.Writer, v any) {
	var b strings.Builder
	in.write(&b, v, 0)
	b.WriteByte('\n')
	_, _ = io.WriteString(w, b.String())
}

func (in *inspector) write(b *strings.Builder, v any, level int) {
	shape := arr.ShapeOf(v)
	if shape == arr.Scalar {
		b.WriteString(in.scalar(v))
		return
	}
	_, isCollection := v.(arr.Container)
	if level > dumpDepth {
		switch {
		case isCollection:
			b.WriteString(in.label("[Collection]"))
		case shape == arr.List:
			b.WriteString(in.label("[Array]"))
		default:
			b.WriteString(in.label("[Object]"))
		}
		return
	}
	if isCollection {
		b.WriteString(in.label("Collection"))
		b.WriteByte(' ')
	}
	entries := arr.Entries(v)
	open, closing := "[", "]"
	if shape == arr.Mapping {
		open, closing = "{", "}"
	}
	if len(entries) == 0 {
		b.WriteString(open + closing)
		return
	}
	b.WriteString(open + " ")
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		if shape == arr.Mapping {
			b.WriteString(inspectKey(e.Key))
			b.WriteString(": ")
		}
		in.write(b, e.Value, level+1)
	}
	b.WriteString(" " + closing)
}

func (in *inspector) scalar(v any) string {
	if arr.IsNil(v) {
		return in.null("null")
	}
	switch t := v.(type) {
	case string:
		return in.str(quoteSingle(t))
	case bool:
		return in.number(strconv.FormatBool(t))
	}
	if f, ok := arr.Number(v); ok {
		return in.number(formatNumber(f))
	}
	return fmt.Sprintf("%+v", v)
}

func inspectKey(k string) string {
	if k == "" {
		return "''"
	}
	for i, r := range k {
		if r != '_' && r != '$' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return quoteSingle(k)
		}
	}
	return k
}

func quoteSingle(s string) string {
	q := strconv.Quote(s)
	q = strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`)
	return "'" + strings.ReplaceAll(q, "'", `\'`) + "'"
}
