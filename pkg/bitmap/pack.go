package bitmap

import (
	"github.com/samber/lo"
)

const bitsPerByte = 8

// PackedLen is the number of bytes a row of width bits packs into.
func PackedLen(width int) int {
	return (width + bitsPerByte - 1) / bitsPerByte
}

// PackRow splits row into groups of 8 bits and folds each group into a byte,
// most significant bit first. A short trailing group leaves the low bits 0.
func PackRow(row []byte) []byte {
	groups := lo.Chunk(row, bitsPerByte)
	return lo.Map(groups, func(group []byte, _ int) byte {
		return fold(group)
	})
}

// fold computes sum(bit[i] << (7-i)).
func fold(group []byte) byte {
	return lo.Reduce(group, func(acc byte, b byte, i int) byte {
		return acc | (b&1)<<(bitsPerByte-1-i)
	}, 0)
}

// Unpack expands packed back into width bits, MSB first, dropping the padding.
func Unpack(packed []byte, width int) []byte {
	row := make([]byte, 0, len(packed)*bitsPerByte)
	for _, v := range packed {
		for i := bitsPerByte - 1; i >= 0; i-- {
			row = append(row, (v>>i)&1)
		}
	}
	if width < len(row) {
		row = row[:width]
	}
	return row
}
