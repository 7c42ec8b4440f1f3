package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateKeyError reports an object key that occurs twice. Path is the JSON
// Pointer of the duplicated member.
type DuplicateKeyError struct {
	Path string
}

func (e *DuplicateKeyError) Error() string {
	return "document: duplicate key at " + e.Path
}

// ErrTrailingData is returned by Parse when the input holds more than one
// top-level value.
var ErrTrailingData = errors.New("document: trailing data after top-level value")

// Parse decodes a single JSON value, keeping object key order and number
// literals as written.
func Parse(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader is like Parse but reads from r.
func ParseReader(r io.Reader) (Value, error) {
	src := newTokenSource(r)
	tok, err := src.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := decodeValue(src, tok, nil)
	if err != nil {
		return nil, err
	}
	if _, err := src.next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

type tokenKind int

const (
	tokBeginObject tokenKind = iota
	tokEndObject
	tokBeginArray
	tokEndArray
	tokKey
	tokString
	tokNumber
	tokBool
	tokNull
)

type token struct {
	kind tokenKind
	str  string
	num  string
	b    bool
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// tokenSource classifies go-json tokens into keys and values, which the
// decoder itself reports identically as strings.
type tokenSource struct {
	dec   *j.Decoder
	stack []frame
}

func newTokenSource(r io.Reader) *tokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &tokenSource{dec: dec}
}

// valueDone flips the enclosing object back to expecting a key.
func (s *tokenSource) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *tokenSource) next() (token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return token{kind: tokBeginObject}, nil
		case '}':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			return token{kind: tokEndObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return token{kind: tokBeginArray}, nil
		case ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			return token{kind: tokEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return token{kind: tokKey, str: v}, nil
			}
		}
		s.valueDone()
		return token{kind: tokString, str: v}, nil
	case bool:
		s.valueDone()
		return token{kind: tokBool, b: v}, nil
	case j.Number:
		s.valueDone()
		return token{kind: tokNumber, num: string(v)}, nil
	case float64:
		s.valueDone()
		return token{kind: tokNumber, num: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case nil:
		s.valueDone()
		return token{kind: tokNull}, nil
	}
	return token{}, fmt.Errorf("document: unexpected token %v", tok)
}

func decodeValue(src *tokenSource, tok token, path []string) (Value, error) {
	switch tok.kind {
	case tokBeginObject:
		return decodeObject(src, path)
	case tokBeginArray:
		return decodeArray(src, path)
	case tokString:
		return String(tok.str), nil
	case tokNumber:
		return Number(tok.num), nil
	case tokBool:
		return Bool(tok.b), nil
	case tokNull:
		return Null, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func decodeObject(src *tokenSource, path []string) (Value, error) {
	o := NewObject()
	for {
		tok, err := src.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEndObject {
			return o, nil
		}
		if tok.kind != tokKey {
			return nil, io.ErrUnexpectedEOF
		}
		child := appendPath(path, escapePointer(tok.str))
		if o.Has(tok.str) {
			return nil, &DuplicateKeyError{Path: pointer(child)}
		}
		vt, err := src.next()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt, child)
		if err != nil {
			return nil, err
		}
		o.Set(tok.str, v)
	}
}

func decodeArray(src *tokenSource, path []string) (Value, error) {
	arr := Array{}
	for {
		tok, err := src.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok, appendPath(path, strconv.Itoa(len(arr))))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func appendPath(parts []string, p string) []string {
	return append(append([]string{}, parts...), p)
}

// escapePointer applies RFC 6901 escaping to a single reference token.
func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func pointer(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}
