// Package font maps glyph sequences onto the characters of a bitmap font
// and emits the font definition an output target needs to render them.
//
// Every output target keeps its own Font: glyphs are assigned characters
// from the Unicode Private Use Area in the order they are registered, and
// the same glyph always maps to the same character.
package font

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tnze/go-mc/chat"

	"github.com/gogpu/fontseq"
	"github.com/gogpu/fontseq/pack"
)

// Private Use Area characters handed out to glyphs.
const (
	FirstChar rune = 0xE000
	LastChar  rune = 0xF8FF
)

// Errors returned by Font.
var (
	// ErrCharsExhausted is returned when every Private Use Area character
	// is already assigned.
	ErrCharsExhausted = errors.New("font: no characters left")

	// ErrUnregistered is returned when rendering a glyph the font has
	// never seen.
	ErrUnregistered = errors.New("font: glyph not registered")
)

// Font assigns characters to glyphs for one output target.
// A Font is not safe for concurrent use.
type Font struct {
	key   pack.Key
	chars map[fontseq.Glyph]rune
	order []fontseq.Glyph
	next  rune
}

var _ fontseq.GlyphRegistry = (*Font)(nil)

// New returns an empty font stored under key, e.g. "minecraft:gui".
func New(key pack.Key) *Font {
	return &Font{
		key:   key,
		chars: make(map[fontseq.Glyph]rune),
		next:  FirstChar,
	}
}

// ForList returns one empty font per target of the list, all with the same key.
func ForList(l *pack.List, key pack.Key) []*Font {
	fonts := make([]*Font, l.Len())
	for i := range fonts {
		fonts[i] = New(key)
	}
	return fonts
}

// Registries adapts fonts for fontseq.WithRegistries.
func Registries(fonts []*Font) []fontseq.GlyphRegistry {
	regs := make([]fontseq.GlyphRegistry, len(fonts))
	for i, f := range fonts {
		regs[i] = f
	}
	return regs
}

// Key returns the font's resource location.
func (f *Font) Key() pack.Key { return f.key }

// Len returns the number of assigned characters.
func (f *Font) Len() int { return len(f.order) }

// Register assigns a character to g unless it already has one.
func (f *Font) Register(g fontseq.Glyph) error {
	if _, ok := f.chars[g]; ok {
		return nil
	}
	if f.next > LastChar {
		return fmt.Errorf("%w: %s", ErrCharsExhausted, f.key)
	}
	f.chars[g] = f.next
	f.order = append(f.order, g)
	f.next++
	return nil
}

// Char returns the character assigned to g.
func (f *Font) Char(g fontseq.Glyph) (rune, bool) {
	r, ok := f.chars[g]
	return r, ok
}

// Text returns the string that renders seq with this font.
func (f *Font) Text(seq fontseq.Sequence) (string, error) {
	var sb strings.Builder
	for i := range seq.Len() {
		g := seq.At(i)
		r, ok := f.chars[g]
		if !ok {
			return "", fmt.Errorf("%w: %s in %s", ErrUnregistered, g, f.key)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// Component returns a chat component that renders seq, for use in titles,
// item names and other text shown by the client.
func (f *Font) Component(seq fontseq.Sequence) (chat.Message, error) {
	text, err := f.Text(seq)
	if err != nil {
		return chat.Message{}, err
	}
	return chat.Message{Text: text, Font: f.key.String()}, nil
}
