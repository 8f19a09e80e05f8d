package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Glyph is the result of fitting a source image into a square glyph canvas.
type Glyph struct {
	// Image is the glyph texture. It is the source image itself when
	// Created is false.
	Image image.Image

	// Size is the side length of the square canvas.
	Size int

	// Created reports whether Image is a new canvas that has to be stored
	// under a derived texture identifier.
	Created bool
}

// Synthesize fits src into a square canvas able to hold a glyph raised
// ascent pixels above the baseline.
//
// The canvas side is max(width, height, ascent). Bitmap font glyphs must be
// square and their ascent can never exceed their height, so an image that
// violates either rule is copied into the top-left corner of a transparent
// canvas of that size. The image is never scaled. An image that already fits
// is returned as is.
func Synthesize(src image.Image, ascent int) Glyph {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	size := max(w, h, ascent)
	if size == w && size == h {
		return Glyph{Image: src, Size: size}
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, image.Rect(0, 0, w, h), src, b.Min, draw.Src)

	return Glyph{Image: canvas, Size: size, Created: true}
}
