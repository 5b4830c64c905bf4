package bitpacking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDelta(t *testing.T) {
	prev := word{100, 200, 300, 400}
	curr := word{401, 403, 406, 410}
	assert.Equal(t, word{1, 2, 3, 4}, computeDelta(curr, prev))
}

func TestComputeDeltaWraps(t *testing.T) {
	prev := word{0, 0, 0, 10}
	curr := word{4, 3, 2, 1}
	// Descending lanes wrap instead of going negative.
	got := computeDelta(curr, prev)
	assert.Equal(t, word{0xFFFFFFFA, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}, got)
	assert.Equal(t, curr, integrateDelta(prev, got))
}

func TestIntegrateDeltaInvertsComputeDelta(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	prev := word{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
	for i := 0; i < 100; i++ {
		curr := word{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
		assert.Equal(t, curr, integrateDelta(prev, computeDelta(curr, prev)))
		prev = curr
	}
}

func TestDeltaBlockScalarRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32()
	}
	const initial = 0x01020304

	deltas := make([]uint32, BlockLen)
	deltaBlockScalar(initial, values, deltas)

	// Lane structure reduces to plain consecutive differences.
	prev := uint32(initial)
	for i, d := range deltas {
		assert.Equalf(t, values[i]-prev, d, "delta %d", i)
		prev = values[i]
	}

	got := make([]uint32, BlockLen)
	prefixSumScalar(initial, deltas, got)
	assert.Equal(t, values, got)
}

func TestScalarPackUnpackDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for numBits := 1; numBits <= 32; numBits++ {
		values := make([]uint32, BlockLen)
		for i := range values {
			values[i] = rng.Uint32() & widthMask(numBits)
		}
		dst := make([]byte, CompressedBlockSize(numBits))
		packBlockScalar(values, dst, numBits)

		got := make([]uint32, BlockLen)
		unpackBlockScalar(dst, got, numBits)
		assert.Equalf(t, values, got, "width %d", numBits)
	}
}

// TestScalarPackWidth32IsReinterpretation checks the degenerate layout: at 32
// bits every packed word is the corresponding input row, so the stream is the
// little-endian input verbatim.
func TestScalarPackWidth32IsReinterpretation(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32()
	}
	dst := make([]byte, CompressedBlockSize(32))
	packBlockScalar(values, dst, 32)
	for i, v := range values {
		assert.Equalf(t, v, bo.Uint32(dst[4*i:]), "value %d", i)
	}
}

func TestWidthMask(t *testing.T) {
	assert.Equal(t, uint32(0), widthMask(0))
	assert.Equal(t, uint32(1), widthMask(1))
	assert.Equal(t, uint32(0x3F), widthMask(6))
	assert.Equal(t, uint32(0x7FFFFFFF), widthMask(31))
	assert.Equal(t, ^uint32(0), widthMask(32))
}

func TestMaxBits(t *testing.T) {
	values := make([]uint32, BlockLen)
	assert.Equal(t, 0, maxBits(values))

	values[127] = 1
	assert.Equal(t, 1, maxBits(values))

	values[64] = 0x70
	assert.Equal(t, 7, maxBits(values))

	values[3] = 0x80000000
	assert.Equal(t, 32, maxBits(values))
}
