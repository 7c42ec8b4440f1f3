package lootgen

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/reoring/lootgen/document"
)

// Serializer is implemented by every value that knows its own document shape:
// conditions, entries, functions, ranges and the other loot records.
type Serializer interface {
	Serialize(ctx *Context) (document.Value, error)
}

// Enum is implemented by enumerations whose wire form is their lowercased
// constant name, e.g. DIRECT_KILLER renders as "direct_killer".
type Enum interface {
	EnumName() string
}

// Context renders nested values while a document is serialized. It carries
// no per-call state, so one Context may serve concurrent Serialize calls on
// distinct trees. A nil *Context renders nothing and fails with ErrNoContext.
type Context struct {
	_ struct{}
}

// NewContext returns a Context for one or more top-level Serialize calls.
func NewContext() *Context { return &Context{} }

// Render converts v into a document value. Supported inputs are nil,
// document values (deep-copied), Identifier, Serializer, Enum,
// encoding.TextMarshaler, bool, string, every integer and float kind, and
// slices, arrays and string-keyed maps of those. float32 keeps 32-bit
// precision; map keys are emitted in sorted order.
func (c *Context) Render(v any) (document.Value, error) {
	if c == nil {
		return nil, ErrNoContext
	}
	if v == nil || isNilPointer(v) {
		return document.Null, nil
	}
	switch tv := v.(type) {
	case document.Value:
		return document.Clone(tv), nil
	case Identifier:
		if tv.IsZero() {
			return document.Null, nil
		}
		return document.String(tv.String()), nil
	case Serializer:
		return tv.Serialize(c)
	case Enum:
		name := tv.EnumName()
		if name == "" {
			return nil, &UnsupportedValueError{Value: v}
		}
		return document.String(strings.ToLower(name)), nil
	case encoding.TextMarshaler:
		b, err := tv.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("lootgen: render %T: %w", v, err)
		}
		return document.String(b), nil
	case string:
		return document.String(tv), nil
	case bool:
		return document.Bool(tv), nil
	case int:
		return document.Int(int64(tv)), nil
	case int8:
		return document.Int(int64(tv)), nil
	case int16:
		return document.Int(int64(tv)), nil
	case int32:
		return document.Int(int64(tv)), nil
	case int64:
		return document.Int(tv), nil
	case uint:
		return document.Uint(uint64(tv)), nil
	case uint8:
		return document.Uint(uint64(tv)), nil
	case uint16:
		return document.Uint(uint64(tv)), nil
	case uint32:
		return document.Uint(uint64(tv)), nil
	case uint64:
		return document.Uint(tv), nil
	case float32:
		return document.Float32(tv), nil
	case float64:
		return document.Float64(tv), nil
	}
	return c.renderReflect(v)
}

// RenderAll renders each element of items into one array.
func RenderAll[T any](c *Context, items []T) (document.Array, error) {
	if c == nil {
		return nil, ErrNoContext
	}
	out := make(document.Array, 0, len(items))
	for i, it := range items {
		v, err := c.Render(it)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
