package pack

import (
	"archive/zip"
	"crypto/sha1" //nolint:gosec // resource pack hashes are SHA-1 by protocol
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Bake writes the pack as a zip archive to w and returns the hex SHA-1 of the
// archive, the hash clients use to identify a downloaded pack.
//
// Entries are stored in lexical path order with zeroed timestamps, so baking
// the same tree twice yields identical bytes. Nothing checks that a client
// re-fetching the archive later receives the same content.
func (d *Dir) Bake(w io.Writer) (string, error) {
	h := sha1.New() //nolint:gosec
	zw := zip.NewWriter(io.MultiWriter(w, h))

	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		return addZipEntry(zw, filepath.ToSlash(rel), p)
	})
	if err != nil {
		return "", errors.Wrapf(err, "pack %s: bake", d.root)
	}
	if err := zw.Close(); err != nil {
		return "", errors.Wrapf(err, "pack %s: bake", d.root)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func addZipEntry(zw *zip.Writer, name, file string) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(fw, f)
	return err
}
