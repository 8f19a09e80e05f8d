package pack

import (
	"path"
	"strings"

	"github.com/pkg/errors"
)

// DefaultNamespace is used when a resource location has no namespace.
const DefaultNamespace = "minecraft"

// ErrInvalidKey is returned for malformed resource locations.
var ErrInvalidKey = errors.New("pack: invalid resource location")

// Key is a namespaced resource location. Path is slash separated and, for
// textures, includes the file extension.
type Key struct {
	Namespace string
	Path      string
}

// NewKey returns a validated key.
func NewKey(namespace, p string) (Key, error) {
	k := Key{Namespace: namespace, Path: p}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// ParseKey parses "namespace:path". A location without a colon is placed in
// [DefaultNamespace].
func ParseKey(s string) (Key, error) {
	ns, p, ok := strings.Cut(s, ":")
	if !ok {
		ns, p = DefaultNamespace, s
	}
	return NewKey(ns, p)
}

// MustParseKey is like ParseKey but panics on malformed input.
// It is meant for constants and tests.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns "namespace:path".
func (k Key) String() string {
	return k.Namespace + ":" + k.Path
}

// WithPath returns a key in the same namespace with a different path.
func (k Key) WithPath(p string) Key {
	return Key{Namespace: k.Namespace, Path: p}
}

// Ext returns the extension of the path including the dot, or "".
func (k Key) Ext() string {
	return path.Ext(k.Path)
}

// Validate reports whether k is a well-formed resource location.
// The namespace may contain [a-z0-9_.-]; the path may additionally contain
// '/' but no empty, "." or ".." segments.
func (k Key) Validate() error {
	if k.Namespace == "" || k.Path == "" {
		return errors.Wrapf(ErrInvalidKey, "%q", k.String())
	}
	for _, r := range k.Namespace {
		if !isKeyRune(r) {
			return errors.Wrapf(ErrInvalidKey, "namespace %q: character %q", k.Namespace, r)
		}
	}
	for _, seg := range strings.Split(k.Path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return errors.Wrapf(ErrInvalidKey, "path %q: bad segment %q", k.Path, seg)
		}
		for _, r := range seg {
			if !isKeyRune(r) {
				return errors.Wrapf(ErrInvalidKey, "path %q: character %q", k.Path, r)
			}
		}
	}
	return nil
}

func isKeyRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '.'
}

// TexturePath returns the pack-relative path of a texture.
func TexturePath(k Key) string {
	return "assets/" + k.Namespace + "/textures/" + k.Path
}

// FontPath returns the pack-relative path of a font definition.
func FontPath(k Key) string {
	return "assets/" + k.Namespace + "/font/" + k.Path + ".json"
}
