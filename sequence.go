package fontseq

import "strings"

// Sequence is an immutable, ordered list of glyphs produced by Builder.Build.
// The zero value is an empty sequence.
type Sequence struct {
	glyphs []Glyph
}

// Len returns the number of glyphs.
func (s Sequence) Len() int { return len(s.glyphs) }

// At returns the i-th glyph.
func (s Sequence) At(i int) Glyph { return s.glyphs[i] }

// Glyphs returns a copy of the glyph list.
func (s Sequence) Glyphs() []Glyph {
	return append([]Glyph(nil), s.glyphs...)
}

// Advance returns the net horizontal displacement of rendering the whole
// sequence. A sequence made only of DrawImage calls has an advance of 0.
func (s Sequence) Advance() int {
	total := 0
	for _, g := range s.glyphs {
		total += g.Advance()
	}
	return total
}

// Bitmaps returns the distinct bitmap glyphs of the sequence in order of
// first use.
func (s Sequence) Bitmaps() []BitmapGlyph {
	var out []BitmapGlyph
	seen := make(map[BitmapGlyph]bool)
	for _, g := range s.glyphs {
		if bg, ok := g.(BitmapGlyph); ok && !seen[bg] {
			seen[bg] = true
			out = append(out, bg)
		}
	}
	return out
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range s.glyphs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
