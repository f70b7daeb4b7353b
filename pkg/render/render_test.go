package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monobmp/pkg/bitmap"
)

func mono(t *testing.T, rows ...[]uint8) *bitmap.Mono {
	t.Helper()
	require.NotEmpty(t, rows)

	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		require.Len(t, row, len(rows[0]))
		for x, a := range row {
			img.SetNRGBA(x, y, color.NRGBA{A: a})
		}
	}
	return bitmap.Threshold(img, bitmap.DefaultThreshold)
}

func TestRenderOpaqueByte(t *testing.T) {
	m := mono(t, []uint8{255, 255, 255, 255, 255, 255, 255, 255})

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, m))

	assert.Equal(t, ". . . . . . . .\n    255,\n", buf.String())
}

func TestRenderShortRow(t *testing.T) {
	m := mono(t, []uint8{0, 200, 128})

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, m))

	assert.Equal(t, "  .  \n    64,\n", buf.String())
}

func TestRenderBlocksOrder(t *testing.T) {
	m := mono(t,
		[]uint8{255, 0, 0, 0, 0, 0, 0, 0, 0, 255},
		[]uint8{0, 0, 0, 0, 0, 0, 0, 0, 255, 0},
	)

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, m))

	want := strings.Join([]string{
		".                 .",
		"                .  ",
		"    128, 64,",
		"    0, 128,",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderPreviewShape(t *testing.T) {
	const w, h = 13, 5
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = make([]uint8, w)
		for x := range rows[y] {
			rows[y][x] = uint8((x * y * 37) % 256)
		}
	}
	m := mono(t, rows...)

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, m))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2*h)
	for _, line := range lines[:h] {
		assert.Len(t, line, 2*w-1)
		for i := 1; i < len(line); i += 2 {
			assert.Equal(t, byte(' '), line[i])
		}
	}
	for _, line := range lines[h:] {
		assert.True(t, strings.HasPrefix(line, "    "))
		assert.True(t, strings.HasSuffix(line, ","))
		assert.Len(t, strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "    "), ","), ", "), bitmap.PackedLen(w))
	}
}

func TestRenderOptions(t *testing.T) {
	m := mono(t, []uint8{255, 0, 255, 0, 255, 0, 255, 0, 255})

	var buf bytes.Buffer
	require.NoError(t, New(WithoutPreview(), WithHex()).Render(&buf, m))
	assert.Equal(t, "    0xAA, 0x80,\n", buf.String())

	buf.Reset()
	require.NoError(t, New(WithSymbols("#", "-")).Render(&buf, m))
	assert.Equal(t, "# - # - # - # - #\n    170, 128,\n", buf.String())
}

func TestArrayLine(t *testing.T) {
	r := New()
	assert.Equal(t, "    ,", r.ArrayLine(nil))
	assert.Equal(t, "    0,", r.ArrayLine([]byte{0}))
	assert.Equal(t, "    1, 2, 3,", r.ArrayLine([]byte{1, 2, 3}))
}
