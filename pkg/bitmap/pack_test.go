package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackRow(t *testing.T) {
	tests := []struct {
		name string
		row  []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"all set", []byte{1, 1, 1, 1, 1, 1, 1, 1}, []byte{255}},
		{"all clear", []byte{0, 0, 0, 0, 0, 0, 0, 0}, []byte{0}},
		{"msb only", []byte{1, 0, 0, 0, 0, 0, 0, 0}, []byte{0x80}},
		{"lsb only", []byte{0, 0, 0, 0, 0, 0, 0, 1}, []byte{0x01}},
		{"short group", []byte{0, 1, 0}, []byte{64}},
		{"single bit", []byte{1}, []byte{0x80}},
		{"ten bits", []byte{1, 0, 1, 0, 1, 0, 1, 0, 1, 1}, []byte{0xAA, 0xC0}},
		{"two full groups", []byte{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0}, []byte{0x0F, 0xF0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackRow(tt.row))
		})
	}
}

func TestPackRowLength(t *testing.T) {
	for w := 0; w <= 33; w++ {
		row := make([]byte, w)
		assert.Len(t, PackRow(row), PackedLen(w), "width %d", w)
	}
}

func TestPackRowPaddingIsZero(t *testing.T) {
	row := []byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	packed := PackRow(row)

	assert.Len(t, packed, 2)
	assert.Equal(t, byte(0), packed[1]&0x3F, "low 6 bits of the trailing byte")
	assert.Equal(t, byte(0xC0), packed[1])
}

func TestUnpackRoundTrip(t *testing.T) {
	rows := [][]byte{
		{},
		{1},
		{0, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 1, 0, 1, 1, 0, 1, 1},
		{0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 1, 0, 1, 0, 1},
	}

	for _, row := range rows {
		assert.Equal(t, row, Unpack(PackRow(row), len(row)))
	}
}

func TestPackedLen(t *testing.T) {
	assert.Equal(t, 0, PackedLen(0))
	assert.Equal(t, 1, PackedLen(1))
	assert.Equal(t, 1, PackedLen(8))
	assert.Equal(t, 2, PackedLen(9))
	assert.Equal(t, 2, PackedLen(10))
	assert.Equal(t, 40, PackedLen(320))
}
