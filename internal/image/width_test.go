package image

import (
	"image"
	"image/color"
	"testing"
)

func TestEffectiveWidth(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		opaque []image.Point
		want   int
	}{
		{"fully transparent", 4, 4, nil, 0},
		{"empty", 0, 0, nil, 0},
		{"rightmost column", 4, 4, []image.Point{{3, 0}}, 4},
		{"leftmost column", 4, 4, []image.Point{{0, 3}}, 1},
		{"trailing transparency", 8, 2, []image.Point{{1, 0}, {4, 1}}, 5},
		{"bottom row only", 5, 5, []image.Point{{2, 4}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			for _, p := range tt.opaque {
				img.SetNRGBA(p.X, p.Y, color.NRGBA{A: 1})
			}
			if got := EffectiveWidth(img); got != tt.want {
				t.Errorf("EffectiveWidth() = %d, want %d", got, tt.want)
			}
			if got := EffectiveWidth(img); got > tt.w {
				t.Errorf("EffectiveWidth() = %d exceeds width %d", got, tt.w)
			}
		})
	}
}

func TestEffectiveWidth_ImageTypes(t *testing.T) {
	rect := image.Rect(0, 0, 6, 3)

	rgba := image.NewRGBA(rect)
	rgba.SetRGBA(3, 2, color.RGBA{R: 255, A: 255})

	gray := image.NewGray(rect) // no alpha channel: every pixel is opaque

	pal := image.NewPaletted(rect, color.Palette{color.Transparent, color.Black})
	pal.SetColorIndex(1, 1, 1)

	rgba64 := image.NewNRGBA64(rect)
	rgba64.SetNRGBA64(2, 1, color.NRGBA64{A: 0x0100})
	rgba64.SetNRGBA64(4, 0, color.NRGBA64{A: 0x00ff}) // zero at 8 bits

	faint := image.NewNRGBA64(rect)
	faint.SetNRGBA64(5, 2, color.NRGBA64{R: 0xffff, A: 1})

	tests := []struct {
		name string
		img  image.Image
		want int
	}{
		{"RGBA", rgba, 4},
		{"Gray", gray, 6},
		{"Paletted", pal, 2},
		{"NRGBA64", rgba64, 3},
		{"NRGBA64 below 8-bit alpha", faint, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveWidth(tt.img); got != tt.want {
				t.Errorf("EffectiveWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectiveWidth_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 20, 12))
	img.SetNRGBA(13, 11, color.NRGBA{A: 255})

	if got := EffectiveWidth(img); got != 4 {
		t.Errorf("EffectiveWidth() = %d, want 4", got)
	}

	// Sub-images keep the parent stride.
	sub := img.SubImage(image.Rect(12, 10, 20, 12))
	if got := EffectiveWidth(sub); got != 2 {
		t.Errorf("EffectiveWidth(sub) = %d, want 2", got)
	}
}
