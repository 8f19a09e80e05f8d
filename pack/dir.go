package pack

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dir is a resource pack stored as a directory tree on disk.
type Dir struct {
	root string
}

// NewDir returns a target rooted at the given directory. The directory is
// created on first write.
func NewDir(root string) *Dir {
	return &Dir{root: filepath.Clean(root)}
}

// Root returns the directory the pack is stored in.
func (d *Dir) Root() string { return d.root }

// Name returns the root directory.
func (d *Dir) Name() string { return d.root }

// TexturePath implements Target.
func (d *Dir) TexturePath(key Key) string { return TexturePath(key) }

// abs maps a pack-relative slash path onto the file system. Paths that are
// absolute or leave the root are rejected with ErrOutsideRoot.
func (d *Dir) abs(p string) (string, error) {
	local := filepath.FromSlash(p)
	if !filepath.IsLocal(local) {
		return "", errors.Wrapf(ErrOutsideRoot, "pack %s: %q", d.root, p)
	}
	return filepath.Join(d.root, local), nil
}

// Exists implements Target. Paths outside the root never exist.
func (d *Dir) Exists(p string) bool {
	name, err := d.abs(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

// EnsureParentDirs implements Target.
func (d *Dir) EnsureParentDirs(p string) error {
	name, err := d.abs(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return errors.Wrapf(err, "pack %s: create directories for %s", d.root, p)
	}
	return nil
}

// WriteFile implements Target.
func (d *Dir) WriteFile(p string, data []byte) error {
	name, err := d.abs(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return errors.Wrapf(err, "pack %s: write %s", d.root, p)
	}
	return nil
}

// ReadFile implements Target. A missing file is reported as ErrNotFound.
func (d *Dir) ReadFile(p string) ([]byte, error) {
	name, err := d.abs(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "pack %s: %s", d.root, p)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s: read %s", d.root, p)
	}
	return data, nil
}
