package fontseq

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"golang.org/x/image/font"

	intImage "github.com/gogpu/fontseq/internal/image"
	"github.com/gogpu/fontseq/pack"
)

// ImageSource loads decoded source textures.
type ImageSource interface {
	LoadImage(key pack.Key) (image.Image, error)
}

// GlyphRegistry receives every glyph appended to a builder, in order.
// A font for one output target is the usual implementation: it assigns the
// glyph a character code of its own.
type GlyphRegistry interface {
	Register(g Glyph) error
}

// Drawable is implemented by surfaces that accept positioned drawing
// commands relative to an origin anchor.
type Drawable interface {
	Origin() Origin
	SetOrigin(o Origin)
	DrawImage(texture pack.Key, x, y int) error
	DrawPixels(img image.Image, x, y int) error
	DrawText(text string, x, y int, c color.Color, face font.Face) error
}

var _ Drawable = (*Builder)(nil)

// Builder compiles drawing commands into a Sequence of glyphs.
//
// The builder keeps a virtual cursor: a horizontal pixel position relative
// to the start of the sequence. Cursor movement is recorded as SpaceGlyphs.
//
// Generated textures are written to every target of the builder's pack list
// as they are needed.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	packs      *pack.List
	source     ImageSource
	resolver   OriginResolver
	origin     Origin
	registries []GlyphRegistry

	generatedNS string
	imageExt    string

	glyphs []Glyph
	cursor int
}

// NewBuilder creates a builder writing generated textures to packs.
func NewBuilder(packs *pack.List, opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = pack.NewSource(packs, o.sourceCache)
	}

	return &Builder{
		packs:       packs,
		source:      o.source,
		resolver:    o.resolver,
		origin:      o.origin,
		registries:  o.registries,
		generatedNS: o.generatedNS,
		imageExt:    o.imageExt,
	}
}

// Origin returns the anchor draw coordinates are currently relative to.
func (b *Builder) Origin() Origin { return b.origin }

// SetOrigin changes the anchor for subsequent draw calls.
func (b *Builder) SetOrigin(o Origin) { b.origin = o }

// Cursor returns the current horizontal cursor position.
func (b *Builder) Cursor() int { return b.cursor }

// Len returns the number of glyphs appended so far.
func (b *Builder) Len() int { return len(b.glyphs) }

// ShiftRight moves the cursor right by pixels. Negative values move it left.
func (b *Builder) ShiftRight(pixels int) error {
	return b.appendGlyphs(SpaceGlyph{Shift: pixels})
}

// ShiftLeft moves the cursor left by pixels. It is ShiftRight(-pixels).
func (b *Builder) ShiftLeft(pixels int) error {
	return b.ShiftRight(-pixels)
}

// DrawImage draws the texture with its top-left corner at (x, y) relative
// to the current origin.
//
// The y axis points down: y is the row of the image's top edge measured
// from the baseline, so the glyph ascent is -y. An image drawn at y = -6
// rises 6 pixels above the baseline.
//
// The texture key gets the image extension appended if it lacks it and must
// then be a valid resource location (see pack.Key.Validate). When the
// image is not square, or is shorter than its ascent, it is padded into a
// square canvas stored as "<generated>:<namespace>/<stem>_<size><ext>" in
// every pack that does not have it yet.
//
// On success the cursor is back where it was before the call. On failure the
// glyph list is unchanged; generated textures already written to some packs
// stay there.
func (b *Builder) DrawImage(texture pack.Key, x, y int) error {
	dx, dy := b.resolver.ResolveOrigin(b.origin)
	x += dx
	y += dy

	if !strings.HasSuffix(texture.Path, b.imageExt) {
		texture = texture.WithPath(texture.Path + b.imageExt)
	}
	if err := texture.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceRead, texture, err)
	}

	ascent := -y

	src, err := b.source.LoadImage(texture)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceRead, texture, err)
	}

	g := intImage.Synthesize(src, ascent)
	final := texture
	if g.Created {
		final, err = b.storeGenerated(texture, g)
		if err != nil {
			return err
		}
	}

	width := intImage.EffectiveWidth(src)

	return b.appendGlyphs(
		SpaceGlyph{Shift: x},
		BitmapGlyph{Texture: final, Size: g.Size, Ascent: ascent, Width: width},
		SpaceGlyph{Shift: -(x + width + 1)},
	)
}

// DrawPixels is not supported: glyphs can only reference stored textures.
func (b *Builder) DrawPixels(img image.Image, x, y int) error {
	return fmt.Errorf("%w: draw raw pixels", ErrUnsupported)
}

// DrawText is not supported: text with arbitrary glyph metrics cannot be
// expressed as a bitmap sequence.
func (b *Builder) DrawText(text string, x, y int, c color.Color, face font.Face) error {
	return fmt.Errorf("%w: draw text", ErrUnsupported)
}

// Build returns a snapshot of the glyphs appended so far. The builder can
// keep being used; later calls do not affect returned sequences.
func (b *Builder) Build() Sequence {
	return Sequence{glyphs: append([]Glyph(nil), b.glyphs...)}
}

// GeneratedKey returns the key a padded copy of texture with the given
// canvas size is stored under.
func (b *Builder) GeneratedKey(texture pack.Key, size int) pack.Key {
	return generatedKey(b.generatedNS, texture, size)
}

func generatedKey(ns string, texture pack.Key, size int) pack.Key {
	ext := path.Ext(texture.Path)
	stem := strings.TrimSuffix(texture.Path, ext)
	return pack.Key{
		Namespace: ns,
		Path:      texture.Namespace + "/" + stem + "_" + strconv.Itoa(size) + ext,
	}
}

// storeGenerated writes a padded texture to every pack and returns its key.
func (b *Builder) storeGenerated(texture pack.Key, g intImage.Glyph) (pack.Key, error) {
	key := b.GeneratedKey(texture, g.Size)

	data, err := intImage.EncodeToBytes(g.Image)
	if err != nil {
		return pack.Key{}, fmt.Errorf("%w: %s: %w", ErrTargetWrite, key, err)
	}

	n, err := pack.WriteAll(b.packs, key, data)
	if err != nil {
		return pack.Key{}, fmt.Errorf("%w: %w", ErrTargetWrite, err)
	}

	log := Logger()
	if n > 0 {
		log.Info("fontseq: generated texture written",
			slog.String("key", key.String()),
			slog.String("source", texture.String()),
			slog.Int("size", g.Size),
			slog.Int("targets", n))
	} else {
		log.Debug("fontseq: generated texture already present",
			slog.String("key", key.String()))
	}
	return key, nil
}

// appendGlyphs registers glyphs with every registry, then appends them.
// Nothing is appended if a registry fails.
func (b *Builder) appendGlyphs(glyphs ...Glyph) error {
	for _, g := range glyphs {
		for _, r := range b.registries {
			if err := r.Register(g); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrRegister, g, err)
			}
		}
	}

	log := Logger()
	for _, g := range glyphs {
		b.glyphs = append(b.glyphs, g)
		b.cursor += g.Advance()
		log.Debug("fontseq: glyph appended",
			slog.String("glyph", g.String()),
			slog.Int("cursor", b.cursor))
	}
	return nil
}
