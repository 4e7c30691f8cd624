package collections

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

type arrayer interface{ ToArray() []any }

type nativer interface{ ToNative() any }

// ToArray returns the items as a plain slice. Nested collections and plain
// []any values are converted recursively, so the result holds no
// collection wrappers. Mapping keys are dropped.
func (c *Collection[T]) ToArray() []any {
	out := make([]any, 0, c.Count())
	c.each(func(_ any, item T) bool {
		out = append(out, plainArray(item))
		return true
	})
	return out
}

func plainArray(v any) any {
	switch t := v.(type) {
	case arrayer:
		return t.ToArray()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainArray(e)
		}
		return out
	}
	return v
}

// ToNative converts the collection into plain Go values: a sequence becomes
// []any and a mapping becomes map[string]any. Nested collections are
// converted recursively.
func (c *Collection[T]) ToNative() any {
	if c.vals == nil {
		out := make([]any, len(c.list))
		for i, item := range c.list {
			out[i] = plainNative(item)
		}
		return out
	}
	out := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		out[k] = plainNative(c.vals[k])
	}
	return out
}

func plainNative(v any) any {
	switch t := v.(type) {
	case nativer:
		return t.ToNative()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainNative(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainNative(e)
		}
		return out
	}
	return v
}

// ToJSON encodes the collection as JSON. A sequence becomes an array and a
// mapping an object with its keys in insertion order.
func (c *Collection[T]) ToJSON() ([]byte, error) { return c.MarshalJSON() }

// MarshalJSON implements [json.Marshaler].
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	open, closing := byte('['), byte(']')
	if c.vals != nil {
		open, closing = '{', '}'
	}
	buf.WriteByte(open)
	var err error
	i := 0
	c.each(func(k any, item T) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if c.vals != nil {
			var key []byte
			if key, err = json.Marshal(k); err != nil {
				return false
			}
			buf.Write(key)
			buf.WriteByte(':')
		}
		var b []byte
		if b, err = json.Marshal(item); err != nil {
			return false
		}
		buf.Write(b)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte(closing)
	return buf.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. An array gives a sequence and
// an object a mapping in document order; any other value gives a one-item
// sequence.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	out := like[T](parsed, parsed.Count())
	parsed.each(func(k any, v any) bool {
		var item T
		if item, err = decodeAs[T](v); err != nil {
			return false
		}
		out.keep(k, item)
		return true
	})
	if err != nil {
		return err
	}
	c.list, c.keys, c.vals = out.list, out.keys, out.vals
	return nil
}

// decodeAs converts a parsed JSON value into T, re-encoding it when it does
// not already hold a T.
func decodeAs[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var item T
	b, err := json.Marshal(v)
	if err != nil {
		return item, err
	}
	err = json.Unmarshal(b, &item)
	return item, err
}

// ParseJSON decodes data into a collection while keeping object keys in
// document order. Nested objects become mapping collections, arrays become
// []any and numbers float64. A top-level scalar gives a one-item sequence
// and a top-level null an empty one.
//
//	c, err := collections.ParseJSON([]byte(`{"b": 1, "a": [1, 2]}`))
//	c.Keys().All() // → [b a]
func ParseJSON(data []byte) (*Collection[any], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("collections: parse json: %w", err)
	}
	v, err := readJSON(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("collections: parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("collections: parse json: unexpected data after top-level value")
	}
	switch t := v.(type) {
	case nil:
		return Empty[any](), nil
	case *Collection[any]:
		return t, nil
	case []any:
		return seqOf[any](nil, t), nil
	}
	return New(v), nil
}

func readJSON(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := mapOf[any](nil, 0)
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", kt)
				}
				vt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := readJSON(dec, vt)
				if err != nil {
					return nil, err
				}
				m.set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			list := []any{}
			for dec.More() {
				vt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := readJSON(dec, vt)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case json.Number:
		return t.Float64()
	}
	return tok, nil
}

// ToYAML encodes the collection as YAML. Mapping keys keep their insertion
// order.
func (c *Collection[T]) ToYAML() ([]byte, error) { return yaml.Marshal(c) }

// MarshalYAML implements [yaml.Marshaler].
func (c *Collection[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if c.vals != nil {
		node.Kind, node.Tag = yaml.MappingNode, "!!map"
	}
	var err error
	c.each(func(k any, item T) bool {
		value := &yaml.Node{}
		if err = value.Encode(item); err != nil {
			return false
		}
		if c.vals != nil {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyString(k)})
		}
		node.Content = append(node.Content, value)
		return true
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}
