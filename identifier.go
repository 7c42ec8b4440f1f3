package lootgen

import "strings"

// DefaultNamespace is assumed when an identifier string has no namespace.
const DefaultNamespace = "minecraft"

// Identifier is a namespaced reference such as "minecraft:iron_ingot".
// The zero value is the unset identifier.
type Identifier struct {
	namespace string
	path      string
}

// NewIdentifier validates both parts and returns the identifier.
func NewIdentifier(namespace, path string) (Identifier, error) {
	if !validNamespace(namespace) || !validPath(path) {
		return Identifier{}, &IdentifierError{Input: namespace + ":" + path}
	}
	return Identifier{namespace: namespace, path: path}, nil
}

// ParseIdentifier parses "namespace:path" or a bare "path", which lands in
// DefaultNamespace.
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		ns, path = DefaultNamespace, s
	} else if ns == "" {
		ns = DefaultNamespace
	}
	if !validNamespace(ns) || !validPath(path) {
		return Identifier{}, &IdentifierError{Input: s}
	}
	return Identifier{namespace: ns, path: path}, nil
}

// MustParseIdentifier is like ParseIdentifier but panics on error. It is meant
// for identifiers known at compile time.
func MustParseIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Identifier) Namespace() string { return id.namespace }
func (id Identifier) Path() string      { return id.path }

// IsZero reports whether id is the unset identifier.
func (id Identifier) IsZero() bool { return id.namespace == "" && id.path == "" }

func (id Identifier) String() string {
	if id.IsZero() {
		return ""
	}
	return id.namespace + ":" + id.path
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(b []byte) error {
	parsed, err := ParseIdentifier(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validNamespace(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '.' || c == '-') {
			return false
		}
	}
	return true
}

func validPath(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '.' || c == '-' || c == '/') {
			return false
		}
	}
	return true
}
