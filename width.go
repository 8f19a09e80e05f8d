package fontseq

import (
	"image"

	intImage "github.com/gogpu/fontseq/internal/image"
)

// EffectiveWidth returns the number of columns from the left edge of img up
// to and including its rightmost column with a non-transparent pixel.
// It returns 0 for empty or fully transparent images.
func EffectiveWidth(img image.Image) int {
	return intImage.EffectiveWidth(img)
}
