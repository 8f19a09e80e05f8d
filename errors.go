package fontseq

import "errors"

// Errors returned by Builder. Use errors.Is to test for them; the underlying
// cause stays reachable through errors.As and errors.Unwrap.
var (
	// ErrSourceRead is returned when a source texture is missing or cannot
	// be decoded. The draw call has no effect on the glyph list.
	ErrSourceRead = errors.New("fontseq: read source texture")

	// ErrTargetWrite is returned when a generated texture could not be
	// stored in an output target. It wraps a *pack.WriteError. Targets
	// written before the failing one are not rolled back.
	ErrTargetWrite = errors.New("fontseq: write generated texture")

	// ErrRegister is returned when a glyph registry rejects a glyph.
	ErrRegister = errors.New("fontseq: register glyph")

	// ErrUnsupported is returned by drawing operations the builder cannot
	// express as glyphs.
	ErrUnsupported = errors.New("fontseq: unsupported operation")
)
