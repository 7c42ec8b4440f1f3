package lootgen

import (
	"errors"
	"fmt"
)

// ErrNoContext is returned when a Serialize or Render call runs without a
// Context. No partial document is produced.
var ErrNoContext = errors.New("lootgen: serialize requires a Context")

// ErrLookup matches every *LookupError via errors.Is.
var ErrLookup = errors.New("lootgen: lookup failed")

// LookupError reports a live object reference that has no canonical name in
// the named registry.
type LookupError struct {
	Registry string
	Ref      any
}

func (e *LookupError) Error() string {
	if e.Registry == "" {
		return fmt.Sprintf("lootgen: don't know how to serialize %v", e.Ref)
	}
	return fmt.Sprintf("lootgen: don't know how to serialize %s %v", e.Registry, e.Ref)
}

func (e *LookupError) Is(target error) bool { return target == ErrLookup }

// IdentifierError reports a malformed identifier string.
type IdentifierError struct {
	Input string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("lootgen: invalid identifier %q", e.Input)
}

// UnsupportedValueError reports a value the Context has no rendering for.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("lootgen: cannot render value of type %T", e.Value)
}
