// Package document provides the generic tree value emitted by lootgen
// serializers: objects with insertion-ordered keys, arrays, strings, numbers
// kept in their exact textual form, booleans and null.
//
// Encoding goes through goccy/go-json (Marshal/MarshalIndent), decoding
// through its token stream (Parse), and yaml.go bridges the same tree to and
// from gopkg.in/yaml.v3 nodes.
package document

import (
	"strconv"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node of the document tree. The set of implementations is closed:
// Null, Bool, Number, String, Array and *Object.
type Value interface {
	Kind() Kind
	clone() Value
}

type null struct{}

// Null is the JSON null value.
var Null Value = null{}

func (null) Kind() Kind     { return KindNull }
func (null) clone() Value   { return Null }
func (null) String() string { return "null" }

// Bool is a JSON boolean.
type Bool bool

func (Bool) Kind() Kind     { return KindBool }
func (b Bool) clone() Value { return b }

// String is a JSON string.
type String string

func (String) Kind() Kind     { return KindString }
func (s String) clone() Value { return s }

// Number is a JSON number stored as its literal text, so values keep the
// precision they were produced with.
type Number string

func (Number) Kind() Kind     { return KindNumber }
func (n Number) clone() Value { return n }

// Int returns the Number for a signed integer.
func Int(i int64) Number { return Number(strconv.FormatInt(i, 10)) }

// Uint returns the Number for an unsigned integer.
func Uint(u uint64) Number { return Number(strconv.FormatUint(u, 10)) }

// Float32 renders f with the shortest representation that round-trips at
// 32-bit precision (0.1 stays "0.1" instead of "0.10000000149011612").
func Float32(f float32) Number { return Number(strconv.FormatFloat(float64(f), 'g', -1, 32)) }

// Float64 renders f with the shortest representation that round-trips at
// 64-bit precision.
func Float64(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// Int64 parses the number as a signed integer.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Float64 parses the number as a float.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Array is a JSON array.
type Array []Value

func (Array) Kind() Kind { return KindArray }

func (a Array) clone() Value {
	if a == nil {
		return Array(nil)
	}
	out := make(Array, len(a))
	for i, v := range a {
		out[i] = Clone(v)
	}
	return out
}

// Clone returns a deep copy of v. Objects and arrays are copied recursively;
// scalar values are returned as is. Clone(nil) is nil.
func Clone(v Value) Value {
	if v == nil {
		return nil
	}
	return v.clone()
}

// Equal reports whether a and b hold the same tree. Object key order is
// significant. A nil Value equals Null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null
	}
	if b == nil {
		b = Null
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		return av.Equal(b.(*Object))
	default:
		return a == b
	}
}
