// Package pack stores rendered documents in a data pack: an in-memory pack
// for tests and pregeneration, or a directory on disk.
package pack

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sync"
)

// ErrInvalidPath is returned for pack paths that are absolute, empty or
// climb out of the pack root.
var ErrInvalidPath = errors.New("pack: invalid path")

// Writer receives encoded files keyed by slash-separated pack path. Put must
// be safe for concurrent use.
type Writer interface {
	Put(path string, data []byte) error
}

// Memory is an in-memory Writer.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemory() *Memory { return &Memory{files: map[string][]byte{}} }

// Put stores a copy of data, replacing an earlier file at the same path.
func (m *Memory) Put(p string, data []byte) error {
	if err := checkPath(p); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[p] = slices.Clone(data)
	return nil
}

// Get returns the file stored at p.
func (m *Memory) Get(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.files[p]
	return slices.Clone(b), ok
}

// Paths lists every stored path in sorted order.
func (m *Memory) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Dir writes files below a root directory, creating parents as needed.
type Dir struct {
	root string
}

func NewDir(root string) *Dir { return &Dir{root: root} }

// Root returns the pack root directory.
func (d *Dir) Root() string { return d.root }

func (d *Dir) Put(p string, data []byte) error {
	if err := checkPath(p); err != nil {
		return err
	}
	full := filepath.Join(d.root, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	return nil
}

func checkPath(p string) error {
	if p == "" || path.IsAbs(p) || !filepath.IsLocal(filepath.FromSlash(p)) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return nil
}
