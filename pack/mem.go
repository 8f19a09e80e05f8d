package pack

import (
	"sort"

	"github.com/pkg/errors"
)

// Mem is an in-memory resource pack. It records how often each path was
// written, which makes it useful for dry runs and tests.
type Mem struct {
	name   string
	files  map[string][]byte
	writes map[string]int

	// FailWrites makes every WriteFile call fail with this error when set.
	FailWrites error
}

// NewMem returns an empty in-memory pack.
func NewMem(name string) *Mem {
	return &Mem{
		name:   name,
		files:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

// Name implements Target.
func (m *Mem) Name() string { return m.name }

// TexturePath implements Target.
func (m *Mem) TexturePath(key Key) string { return TexturePath(key) }

// Exists implements Target.
func (m *Mem) Exists(p string) bool {
	_, ok := m.files[p]
	return ok
}

// EnsureParentDirs implements Target. Mem has no directories.
func (m *Mem) EnsureParentDirs(string) error { return nil }

// WriteFile implements Target. The data is copied.
func (m *Mem) WriteFile(p string, data []byte) error {
	if m.FailWrites != nil {
		return errors.WithStack(m.FailWrites)
	}
	m.files[p] = append([]byte(nil), data...)
	m.writes[p]++
	return nil
}

// ReadFile implements Target.
func (m *Mem) ReadFile(p string) ([]byte, error) {
	data, ok := m.files[p]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "pack %s: %s", m.name, p)
	}
	return append([]byte(nil), data...), nil
}

// Writes returns how many times path has been written.
func (m *Mem) Writes(p string) int { return m.writes[p] }

// Paths returns all stored paths in sorted order.
func (m *Mem) Paths() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
