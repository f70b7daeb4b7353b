package bitmap

import (
	"image"
)

// Threshold converts the alpha plane of src into a Mono image: a pixel is set
// when its 8 bit alpha is strictly greater than threshold.
func Threshold(src image.Image, threshold int) *Mono {
	b := src.Bounds()
	m := NewMono(b, threshold)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.Set(x, y, src.At(x, y))
		}
	}

	return m
}
