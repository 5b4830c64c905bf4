//go:build (amd64 || arm64) && !noasm

package bitpacking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simdAvailable() bool {
	return bestInstructionSet() != setScalar
}

// TestSIMDMatchesScalarPack is the byte-compatibility contract: for every
// width, the SIMD kernels must emit exactly the bytes the scalar backend
// emits.
func TestSIMDMatchesScalarPack(t *testing.T) {
	if !simdAvailable() {
		t.Skip("SIMD disabled")
	}
	rng := rand.New(rand.NewSource(20))
	for numBits := 1; numBits <= 32; numBits++ {
		values := make([]uint32, BlockLen)
		for i := range values {
			values[i] = rng.Uint32() & widthMask(numBits)
		}

		want := make([]byte, CompressedBlockSize(numBits))
		packBlockScalar(values, want, numBits)
		got := make([]byte, CompressedBlockSize(numBits))
		packBlockSIMD(values, got, numBits)
		assert.Equalf(t, want, got, "packed bytes at width %d", numBits)

		wantValues := make([]uint32, BlockLen)
		unpackBlockScalar(want, wantValues, numBits)
		gotValues := make([]uint32, BlockLen)
		unpackBlockSIMD(want, gotValues, numBits)
		assert.Equalf(t, wantValues, gotValues, "unpacked values at width %d", numBits)
	}
}

// TestSIMDPackMasksOversizedValues ensures the pack wrapper truncates values
// wider than the declared width before the kernels OR rows together.
func TestSIMDPackMasksOversizedValues(t *testing.T) {
	if !simdAvailable() {
		t.Skip("SIMD disabled")
	}
	rng := rand.New(rand.NewSource(21))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32() // full 32-bit values packed at width 5
	}

	want := make([]byte, CompressedBlockSize(5))
	packBlockScalar(values, want, 5)
	got := make([]byte, CompressedBlockSize(5))
	packBlockSIMD(values, got, 5)
	assert.Equal(t, want, got)

	decoded := make([]uint32, BlockLen)
	unpackBlockSIMD(got, decoded, 5)
	for i, v := range values {
		assert.Equalf(t, v&0x1F, decoded[i], "index %d", i)
	}
}

func TestSIMDDeltaMatchesScalar(t *testing.T) {
	if !simdAvailable() {
		t.Skip("SIMD disabled")
	}
	rng := rand.New(rand.NewSource(22))
	for i := 0; i < 16; i++ {
		initial := rng.Uint32()
		values := make([]uint32, BlockLen)
		for j := range values {
			values[j] = rng.Uint32()
		}

		want := make([]uint32, BlockLen)
		deltaBlockScalar(initial, values, want)
		got := make([]uint32, BlockLen)
		deltaBlockSIMD(initial, values, got)
		require.Equal(t, want, got)

		back := make([]uint32, BlockLen)
		prefixSumSIMD(initial, got, back)
		assert.Equal(t, values, back)
	}
}

func TestSIMDPrefixSumMatchesScalar(t *testing.T) {
	if !simdAvailable() {
		t.Skip("SIMD disabled")
	}
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 16; i++ {
		initial := rng.Uint32()
		deltas := make([]uint32, BlockLen)
		for j := range deltas {
			deltas[j] = rng.Uint32()
		}

		want := make([]uint32, BlockLen)
		prefixSumScalar(initial, deltas, want)
		got := make([]uint32, BlockLen)
		prefixSumSIMD(initial, deltas, got)
		assert.Equal(t, want, got)
	}
}

// TestNewPrefersSIMD pins the selection contract on hosts with the kernels
// built in.
func TestNewPrefersSIMD(t *testing.T) {
	if !simdAvailable() {
		t.Skip("SIMD disabled")
	}
	assert.NotEqual(t, setScalar, New().set)
}

func BenchmarkPackSIMD(b *testing.B) {
	if !simdAvailable() {
		b.Skip("SIMD disabled")
	}
	rng := rand.New(rand.NewSource(24))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32() & widthMask(12)
	}
	dst := make([]byte, CompressedBlockSize(12))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		packBlockSIMD(values, dst, 12)
	}
}

func BenchmarkPackScalar(b *testing.B) {
	rng := rand.New(rand.NewSource(24))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32() & widthMask(12)
	}
	dst := make([]byte, CompressedBlockSize(12))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		packBlockScalar(values, dst, 12)
	}
}

func BenchmarkUnpackSIMD(b *testing.B) {
	if !simdAvailable() {
		b.Skip("SIMD disabled")
	}
	rng := rand.New(rand.NewSource(25))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32() & widthMask(12)
	}
	block := make([]byte, CompressedBlockSize(12))
	packBlockScalar(values, block, 12)
	dst := make([]uint32, BlockLen)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		unpackBlockSIMD(block, dst, 12)
	}
}

func BenchmarkUnpackScalar(b *testing.B) {
	rng := rand.New(rand.NewSource(25))
	values := make([]uint32, BlockLen)
	for i := range values {
		values[i] = rng.Uint32() & widthMask(12)
	}
	block := make([]byte, CompressedBlockSize(12))
	packBlockScalar(values, block, 12)
	dst := make([]uint32, BlockLen)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		unpackBlockScalar(block, dst, 12)
	}
}
