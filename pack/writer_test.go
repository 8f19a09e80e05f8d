package pack

import (
	"errors"
	"testing"
)

func TestWriteAll(t *testing.T) {
	a, b := NewMem("a"), NewMem("b")
	l := NewList(a, b)
	key := MustParseKey("generated:minecraft/icon_6.png")
	p := TexturePath(key)

	n, err := WriteAll(l, key, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if n != 2 {
		t.Errorf("WriteAll() wrote %d targets, want 2", n)
	}

	// Second write of the same key is a no-op everywhere.
	n, err = WriteAll(l, key, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if n != 0 {
		t.Errorf("repeated WriteAll() wrote %d targets, want 0", n)
	}
	for _, m := range []*Mem{a, b} {
		if m.Writes(p) != 1 {
			t.Errorf("%s: Writes(%s) = %d, want 1", m.Name(), p, m.Writes(p))
		}
	}
}

func TestWriteAllSkipsExistingWithoutComparing(t *testing.T) {
	a := NewMem("a")
	key := MustParseKey("ns:x.png")
	_ = a.WriteFile(TexturePath(key), []byte("old"))

	n, err := WriteAll(NewList(a), key, []byte("new"))
	if err != nil || n != 0 {
		t.Fatalf("WriteAll() = (%d, %v), want (0, nil)", n, err)
	}
	got, _ := a.ReadFile(TexturePath(key))
	if string(got) != "old" {
		t.Errorf("content = %q, existing file must be kept", got)
	}
}

func TestWriteAllPartialFailure(t *testing.T) {
	errDisk := errors.New("disk full")
	a, b, c := NewMem("a"), NewMem("b"), NewMem("c")
	b.FailWrites = errDisk
	key := MustParseKey("ns:x.png")

	n, err := WriteAll(NewList(a, b, c), key, []byte("x"))
	if n != 1 {
		t.Errorf("WriteAll() wrote %d targets, want 1", n)
	}

	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("WriteAll() error = %v, want *WriteError", err)
	}
	if we.Target != "b" || we.Key != key {
		t.Errorf("WriteError = %+v, want target b key %v", we, key)
	}
	if !errors.Is(err, errDisk) {
		t.Errorf("WriteAll() error = %v, want it to wrap disk full", err)
	}

	// No rollback on a, nothing attempted on c.
	if !a.Exists(TexturePath(key)) {
		t.Error("target a lost its successful write")
	}
	if c.Exists(TexturePath(key)) {
		t.Error("target c written after an earlier failure")
	}
}

func TestWriteAllDir(t *testing.T) {
	d1, d2 := NewDir(t.TempDir()), NewDir(t.TempDir())
	key := MustParseKey("generated:ns/deep/icon_8.png")

	if _, err := WriteAll(NewList(d1, d2), key, []byte("png")); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	for _, d := range []*Dir{d1, d2} {
		if !d.Exists(d.TexturePath(key)) {
			t.Errorf("%s: texture missing after WriteAll", d.Name())
		}
	}
}
