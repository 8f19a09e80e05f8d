package image

import "image"

// EffectiveWidth returns the number of columns from the left edge up to and
// including the rightmost column that has a pixel with non-zero alpha.
// Alpha is judged at 8 bits, the depth textures are rendered at, so a 16-bit
// alpha below 0x0100 counts as transparent.
//
// Trailing transparent columns are not counted, so padding an image on the
// right never changes its effective width. A fully transparent or empty image
// has an effective width of 0. The result is never larger than the image width.
func EffectiveWidth(img image.Image) int {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return effectiveWidthPix(nrgba.Pix, nrgba.Stride, nrgba.Rect)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return effectiveWidthPix(rgba.Pix, rgba.Stride, rgba.Rect)
	}

	b := img.Bounds()
	for x := b.Max.X - 1; x >= b.Min.X; x-- {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a>>8 != 0 {
				return x - b.Min.X + 1
			}
		}
	}
	return 0
}

// effectiveWidthPix scans 4-byte-per-pixel buffers directly.
// Alpha is the fourth byte for both RGBA and NRGBA.
func effectiveWidthPix(pix []uint8, stride int, r image.Rectangle) int {
	w, h := r.Dx(), r.Dy()
	for x := w - 1; x >= 0; x-- {
		for y := 0; y < h; y++ {
			if pix[y*stride+x*4+3] != 0 {
				return x + 1
			}
		}
	}
	return 0
}
