package lootgen

import (
	"reflect"
	"sync"
)

// Resolver maps a live object reference to its canonical Identifier. It
// fails with a *LookupError when the reference has no registered name.
type Resolver interface {
	IdentifierOf(ref any) (Identifier, error)
}

// Registry is a named, concurrency-safe Resolver backed by an in-memory
// table. References must be comparable.
type Registry struct {
	name string

	mu  sync.RWMutex
	ids map[any]Identifier
}

// NewRegistry returns an empty registry; name appears in lookup errors
// (e.g. "enchantment").
func NewRegistry(name string) *Registry {
	return &Registry{name: name, ids: map[any]Identifier{}}
}

// Name returns the registry name.
func (r *Registry) Name() string { return r.name }

// Register associates ref with id, replacing any earlier association. It
// panics when ref is not comparable.
func (r *Registry) Register(ref any, id Identifier) *Registry {
	if !isComparable(ref) {
		panic("lootgen: registry reference must be comparable")
	}
	r.mu.Lock()
	r.ids[ref] = id
	r.mu.Unlock()
	return r
}

// IdentifierOf implements Resolver.
func (r *Registry) IdentifierOf(ref any) (Identifier, error) {
	if r == nil {
		return Identifier{}, &LookupError{Ref: ref}
	}
	if !isComparable(ref) {
		return Identifier{}, &LookupError{Registry: r.name, Ref: ref}
	}
	r.mu.RLock()
	id, ok := r.ids[ref]
	r.mu.RUnlock()
	if !ok {
		return Identifier{}, &LookupError{Registry: r.name, Ref: ref}
	}
	return id, nil
}

// Resolve returns ref itself when it already is an Identifier and asks r
// otherwise. A nil r fails every non-Identifier reference.
func Resolve(r Resolver, ref any) (Identifier, error) {
	if id, ok := ref.(Identifier); ok {
		return id, nil
	}
	if r == nil {
		return Identifier{}, &LookupError{Ref: ref}
	}
	return r.IdentifierOf(ref)
}

func isComparable(ref any) bool {
	return ref == nil || reflect.TypeOf(ref).Comparable()
}
