package bitpacking

import (
	"encoding/binary"
	"math/bits"
)

// The scalar backend mirrors the SIMD kernels over a plain [4]uint32 word so
// both emit the same byte stream. A block is 32 rows of 4 lanes; packing
// walks the rows once, OR-accumulating each row into the current output word
// at a running bit position and spilling the excess bits into the next word
// whenever the position crosses 32.

var bo = binary.LittleEndian

// word is the scalar surrogate for a 128-bit SIMD register: four 32-bit
// lanes. All arithmetic on it wraps.
type word [laneCount]uint32

func set1(x uint32) word {
	return word{x, x, x, x}
}

func or(a, b word) word {
	return word{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

func and(a, b word) word {
	return word{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

func shiftLeft32(v word, k int) word {
	return word{v[0] << k, v[1] << k, v[2] << k, v[3] << k}
}

func shiftRight32(v word, k int) word {
	return word{v[0] >> k, v[1] >> k, v[2] >> k, v[3] >> k}
}

func orCollapse(v word) uint32 {
	return (v[0] | v[1]) | (v[2] | v[3])
}

// computeDelta forms one row of lane differences: lane 0 subtracts the last
// lane of the previous row, the others subtract their left neighbor.
func computeDelta(curr, prev word) word {
	return word{
		curr[0] - prev[3],
		curr[1] - curr[0],
		curr[2] - curr[1],
		curr[3] - curr[2],
	}
}

// integrateDelta is the inverse of computeDelta: a prefix sum across the four
// lanes, offset by the last lane of the previous reconstructed row.
func integrateDelta(offset, delta word) word {
	el0 := offset[3] + delta[0]
	el1 := el0 + delta[1]
	el2 := el1 + delta[2]
	el3 := el2 + delta[3]
	return word{el0, el1, el2, el3}
}

func loadRow(values []uint32, r int) word {
	return word{values[laneCount*r], values[laneCount*r+1], values[laneCount*r+2], values[laneCount*r+3]}
}

func storeRow(values []uint32, r int, v word) {
	values[laneCount*r] = v[0]
	values[laneCount*r+1] = v[1]
	values[laneCount*r+2] = v[2]
	values[laneCount*r+3] = v[3]
}

// loadWord and storeWord move one packed 128-bit word through its
// little-endian wire form, so the scalar backend emits the same bytes on any
// host.
func loadWord(buf []byte) word {
	return word{bo.Uint32(buf), bo.Uint32(buf[4:]), bo.Uint32(buf[8:]), bo.Uint32(buf[12:])}
}

func storeWord(buf []byte, v word) {
	bo.PutUint32(buf, v[0])
	bo.PutUint32(buf[4:], v[1])
	bo.PutUint32(buf[8:], v[2])
	bo.PutUint32(buf[12:], v[3])
}

func widthMask(numBits int) uint32 {
	if numBits >= 32 {
		return ^uint32(0)
	}
	return 1<<numBits - 1
}

// packBlockScalar packs 128 values at numBits (1..32) into dst. Values are
// masked to numBits bits, so oversized values truncate instead of corrupting
// their neighbors' bits.
func packBlockScalar(values []uint32, dst []byte, numBits int) {
	m := set1(widthMask(numBits))
	var acc word
	pos, w := 0, 0
	for r := 0; r < rowCount; r++ {
		row := and(loadRow(values, r), m)
		if pos == 0 {
			acc = row
		} else {
			acc = or(acc, shiftLeft32(row, pos))
		}
		if pos+numBits >= 32 {
			storeWord(dst[16*w:], acc)
			w++
			if pos+numBits > 32 {
				acc = shiftRight32(row, 32-pos)
			}
		}
		pos = (pos + numBits) % 32
	}
}

// unpackBlockScalar is the exact inverse of packBlockScalar: it reads the
// numBits packed words in order and reassembles each row, joining the two
// word halves whenever a row straddles a word boundary.
func unpackBlockScalar(src []byte, dst []uint32, numBits int) {
	m := set1(widthMask(numBits))
	var cur word
	pos, w := 0, 0
	for r := 0; r < rowCount; r++ {
		if pos == 0 {
			cur = loadWord(src[16*w:])
			w++
		}
		row := shiftRight32(cur, pos)
		if pos+numBits > 32 {
			next := loadWord(src[16*w:])
			w++
			row = or(row, shiftLeft32(next, 32-pos))
			cur = next
		}
		storeRow(dst, r, and(row, m))
		pos = (pos + numBits) % 32
	}
}

// deltaBlockScalar rewrites a block as lane-structured differences, seeded by
// initial broadcast into all four lanes of the row before the first.
func deltaBlockScalar(initial uint32, src, dst []uint32) {
	prev := set1(initial)
	for r := 0; r < rowCount; r++ {
		curr := loadRow(src, r)
		storeRow(dst, r, computeDelta(curr, prev))
		prev = curr
	}
}

// prefixSumScalar integrates a block of deltas back into values.
func prefixSumScalar(initial uint32, deltas, dst []uint32) {
	prev := set1(initial)
	for r := 0; r < rowCount; r++ {
		prev = integrateDelta(prev, loadRow(deltas, r))
		storeRow(dst, r, prev)
	}
}

// maxBits folds the whole block with OR, row by row, and measures the result.
// An all-zero block reports 0.
func maxBits(values []uint32) int {
	var acc word
	for r := 0; r < rowCount; r++ {
		acc = or(acc, loadRow(values, r))
	}
	return bits.Len32(orCollapse(acc))
}
