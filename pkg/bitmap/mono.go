package bitmap

import (
	"image"
	"image/color"
)

// DefaultThreshold is the alpha cutoff used when none is configured.
const DefaultThreshold = 128

func NewMono(r image.Rectangle, threshold int) *Mono {
	return &Mono{
		bits:      make([]byte, r.Dx()*r.Dy()),
		stride:    r.Dx(),
		bounds:    r,
		threshold: threshold,
	}
}

// Mono is a one bit per pixel image derived from an alpha plane. Each pixel
// is stored as a full byte holding 0 or 1; packing happens on output.
// It implements the image.Image interface.
type Mono struct {
	bits      []byte
	stride    int
	bounds    image.Rectangle
	threshold int
}

// Bounds implements the image.Image interface.
func (m *Mono) Bounds() image.Rectangle {
	return m.bounds
}

// ColorModel implements the image.Image interface.
func (m *Mono) ColorModel() color.Model {
	return monoModel{threshold: m.threshold}
}

// At implements the image.Image interface.
func (m *Mono) At(x, y int) color.Color {
	return bit(m.Bit(x, y))
}

// Bit returns 0 or 1 for the pixel at (x, y). Points outside the bounds are 0.
func (m *Mono) Bit(x, y int) byte {
	if !(image.Point{X: x, Y: y}).In(m.bounds) {
		return 0
	}
	return m.bits[m.offset(x, y)]
}

// Set stores c thresholded on its alpha channel.
func (m *Mono) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(m.bounds) {
		return
	}
	m.bits[m.offset(x, y)] = byte(toBit(c, m.threshold))
}

// Width is the number of columns.
func (m *Mono) Width() int {
	return m.bounds.Dx()
}

// Height is the number of rows.
func (m *Mono) Height() int {
	return m.bounds.Dy()
}

// Row returns the bits of the i-th row counted from the top of the bounds.
// The returned slice aliases the image.
func (m *Mono) Row(i int) []byte {
	start := i * m.stride
	return m.bits[start : start+m.stride : start+m.stride]
}

// Rows returns every row, top to bottom.
func (m *Mono) Rows() [][]byte {
	rows := make([][]byte, m.Height())
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// Packed packs every row, see PackRow.
func (m *Mono) Packed() [][]byte {
	packed := make([][]byte, m.Height())
	for i := range packed {
		packed[i] = PackRow(m.Row(i))
	}
	return packed
}

func (m *Mono) offset(x, y int) int {
	return (y-m.bounds.Min.Y)*m.stride + (x - m.bounds.Min.X)
}

// alpha8 reduces the 16 bit alpha of c to the 0..255 range.
func alpha8(c color.Color) int {
	_, _, _, a := c.RGBA()
	return int(a >> 8)
}

func toBit(c color.Color, threshold int) bit {
	if alpha8(c) > threshold {
		return 1
	}
	return 0
}

// monoModel converts any color to a bit by comparing its alpha with threshold.
type monoModel struct {
	threshold int
}

func (m monoModel) Convert(c color.Color) color.Color {
	if b, ok := c.(bit); ok {
		return b
	}
	return toBit(c, m.threshold)
}

// bit implements the color.Color interface. A set bit is opaque black, a
// cleared bit is fully transparent.
type bit uint8

// RGBA implements the color.Color interface.
func (b bit) RGBA() (r, g, bb, a uint32) {
	if b != 0 {
		return 0, 0, 0, 0xFFFF
	}
	return 0, 0, 0, 0
}
