package fontseq

import (
	"fmt"

	"github.com/gogpu/fontseq/pack"
)

// Glyph is one character of a font sequence: either a SpaceGlyph or a
// BitmapGlyph. Glyphs are comparable values and can be used as map keys.
type Glyph interface {
	fmt.Stringer

	// Advance is how far the renderer moves the cursor after the glyph.
	Advance() int

	isGlyph()
}

// SpaceGlyph moves the cursor without drawing anything.
// A negative Shift moves it to the left.
type SpaceGlyph struct {
	Shift int
}

// Advance returns Shift.
func (g SpaceGlyph) Advance() int { return g.Shift }

func (SpaceGlyph) isGlyph() {}

func (g SpaceGlyph) String() string {
	return fmt.Sprintf("space(%+d)", g.Shift)
}

// BitmapGlyph draws a square texture.
//
// The texture is Size×Size pixels and its top edge sits Ascent pixels above
// the baseline. Ascent never exceeds Size for glyphs produced by a Builder.
type BitmapGlyph struct {
	Texture pack.Key
	Size    int
	Ascent  int

	// Width is the effective width of the drawn image. Renderers advance
	// by Width plus one pixel of spacing.
	Width int
}

// Advance returns Width + 1.
func (g BitmapGlyph) Advance() int { return g.Width + 1 }

func (BitmapGlyph) isGlyph() {}

func (g BitmapGlyph) String() string {
	return fmt.Sprintf("bitmap(%s size=%d ascent=%d width=%d)", g.Texture, g.Size, g.Ascent, g.Width)
}
