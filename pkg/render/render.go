package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"monobmp/pkg/bitmap"
)

const indent = "    "

type valueFormat func(v byte) string

func formatDecimal(v byte) string {
	return fmt.Sprintf("%d", v)
}

func formatHex(v byte) string {
	return fmt.Sprintf("0x%02X", v)
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		preview: true,
		format:  formatDecimal,
		on:      ".",
		off:     " ",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Renderer prints a Mono bitmap as an ASCII preview followed by the rows of
// an array initializer.
type Renderer struct {
	preview bool
	format  valueFormat
	on      string
	off     string
}

// Render writes the preview block (unless disabled) and the array block.
func (r *Renderer) Render(w io.Writer, m *bitmap.Mono) error {
	bw := bufio.NewWriter(w)

	if r.preview {
		for _, row := range m.Rows() {
			if _, err := fmt.Fprintln(bw, r.PreviewLine(row)); err != nil {
				return err
			}
		}
	}

	for _, packed := range m.Packed() {
		if _, err := fmt.Fprintln(bw, r.ArrayLine(packed)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// PreviewLine renders one bitmap row as symbols separated by a space.
func (r *Renderer) PreviewLine(row []byte) string {
	return strings.Join(lo.Map(row, func(b byte, _ int) string {
		return lo.Ternary(b == 1, r.on, r.off)
	}), " ")
}

// ArrayLine renders one packed row as an indented, comma terminated list.
func (r *Renderer) ArrayLine(packed []byte) string {
	values := lo.Map(packed, func(v byte, _ int) string {
		return r.format(v)
	})
	return fmt.Sprintf("%s%s,", indent, strings.Join(values, ", "))
}
