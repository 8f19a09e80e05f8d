package pack

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by targets.
var (
	// ErrNotFound is returned when no target holds a requested asset.
	ErrNotFound = errors.New("pack: asset not found")

	// ErrOutsideRoot is returned by Dir for paths that would resolve
	// outside the pack directory.
	ErrOutsideRoot = errors.New("pack: path outside pack root")
)

// Target is one independent asset store. Paths are pack-relative and slash
// separated, as returned by TexturePath.
type Target interface {
	// Name identifies the target in logs and errors.
	Name() string

	// TexturePath resolves the location of a texture inside this target.
	TexturePath(key Key) string

	// Exists reports whether a file is stored at path.
	Exists(path string) bool

	// EnsureParentDirs creates any directories needed to write path.
	EnsureParentDirs(path string) error

	// WriteFile stores data at path, replacing existing content.
	WriteFile(path string, data []byte) error

	// ReadFile returns the content stored at path.
	ReadFile(path string) ([]byte, error)
}

// WriteError reports a failed write to one target of a multi-target write.
// Writes to targets before it in the list are not rolled back.
type WriteError struct {
	Target string
	Key    Key
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("pack: write %s to %s: %v", e.Key, e.Target, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
