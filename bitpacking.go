// Package bitpacking implements a fixed-width bit-packing codec for blocks of
// 128 unsigned 32-bit integers.
//
// Every value in a block is stored at a uniform bit width chosen by the
// caller (NumBits computes the smallest width that fits), producing exactly
// 16*numBits bytes per block with no header, checksum or framing. A sorted
// mode packs the consecutive differences instead of the raw values, seeded by
// an initial value the caller persists out of band. The packed layout
// interleaves the block into four 32-bit lanes so that a scalar
// implementation and a 128-bit SIMD implementation (SSE on amd64, NEON on
// arm64) emit byte-identical output. Callers provide all destination slices,
// so no operation allocates on the packing path. The package keeps no global
// mutable state: the backend chosen by New lives in the returned value, and
// every operation is safe for concurrent use as long as the input and output
// buffers do not alias.
package bitpacking

import (
	"errors"
	"fmt"
)

// Block configuration constants. The codec always operates on exactly 128
// integers, viewed as 32 rows of 4 lanes to match the 128-bit SIMD layout.
const (
	// BlockLen is the number of integers in one block.
	BlockLen = 128

	laneCount = 4
	rowCount  = BlockLen / laneCount

	// bytesPerBit is the packed size contributed by one bit of width:
	// 128 values * 1 bit = 16 bytes.
	bytesPerBit = BlockLen / 8

	maxNumBits = 32
)

// ErrInvalidArgument is returned when an operation is called with a slice of
// the wrong length or a bit width outside [0, 32]. It is always wrapped with
// a message describing the violated precondition.
var ErrInvalidArgument = errors.New("bitpacking: invalid argument")

// CompressedBlockSize returns the packed size in bytes of one block encoded
// at the given width: 16*numBits. The result for out-of-range widths is
// meaningless; the codec operations reject those before packing.
func CompressedBlockSize(numBits int) int {
	return numBits * bytesPerBit
}

// instructionSet identifies the kernel family a BitPacker4x dispatches to.
type instructionSet uint8

const (
	setScalar instructionSet = iota
	setSSE
	setNEON
)

// BitPacker4x packs integers in groups of 4 lanes, one 128-integer block at a
// time. The zero value uses the scalar backend; New returns a value bound to
// the best backend the CPU supports. BitPacker4x is a plain value and may be
// copied freely.
type BitPacker4x struct {
	set instructionSet
}

// New probes the CPU once and returns a BitPacker4x bound to the fastest
// available backend: SSE on amd64, NEON on arm64, scalar otherwise. All
// backends produce identical bytes, so blocks packed on one machine decode on
// any other.
func New() BitPacker4x {
	return BitPacker4x{set: bestInstructionSet()}
}

// Compress packs one block of 128 values at the given width into compressed
// and returns the number of bytes written, always 16*numBits. Values wider
// than numBits bits are silently truncated to their low numBits bits; use
// NumBits to pick a width that preserves everything.
func (p BitPacker4x) Compress(decompressed []uint32, compressed []byte, numBits int) (int, error) {
	if err := checkBlockArgs(len(decompressed), len(compressed), numBits); err != nil {
		return 0, err
	}
	if numBits == 0 {
		return 0, nil
	}
	if p.set == setScalar {
		packBlockScalar(decompressed, compressed, numBits)
	} else {
		packBlockSIMD(decompressed, compressed, numBits)
	}
	return CompressedBlockSize(numBits), nil
}

// CompressSorted packs one block in sorted (delta) mode: the consecutive
// differences from initial are packed instead of the raw values. All
// differences are computed with wrapping arithmetic, so any block round-trips
// as long as numBits covers every delta (NumBitsSorted reports the smallest
// such width). Returns the number of bytes written, always 16*numBits.
func (p BitPacker4x) CompressSorted(initial uint32, decompressed []uint32, compressed []byte, numBits int) (int, error) {
	if err := checkBlockArgs(len(decompressed), len(compressed), numBits); err != nil {
		return 0, err
	}
	if numBits == 0 {
		return 0, nil
	}
	var deltas [BlockLen]uint32
	if p.set == setScalar {
		deltaBlockScalar(initial, decompressed, deltas[:])
		packBlockScalar(deltas[:], compressed, numBits)
	} else {
		deltaBlockSIMD(initial, decompressed, deltas[:])
		packBlockSIMD(deltas[:], compressed, numBits)
	}
	return CompressedBlockSize(numBits), nil
}

// Decompress unpacks one block previously packed at the given width and
// returns the number of bytes consumed, always 16*numBits. With numBits == 0
// the block decodes to 128 zeros and no bytes are read.
func (p BitPacker4x) Decompress(compressed []byte, decompressed []uint32, numBits int) (int, error) {
	if err := checkBlockArgs(len(decompressed), len(compressed), numBits); err != nil {
		return 0, err
	}
	if numBits == 0 {
		clear(decompressed)
		return 0, nil
	}
	if p.set == setScalar {
		unpackBlockScalar(compressed, decompressed, numBits)
	} else {
		unpackBlockSIMD(compressed, decompressed, numBits)
	}
	return CompressedBlockSize(numBits), nil
}

// DecompressSorted reverses CompressSorted: it unpacks the deltas and
// integrates them into values with a running prefix sum seeded by initial.
// With numBits == 0 the block decodes to 128 copies of initial. Returns the
// number of bytes consumed, always 16*numBits.
func (p BitPacker4x) DecompressSorted(initial uint32, compressed []byte, decompressed []uint32, numBits int) (int, error) {
	if err := checkBlockArgs(len(decompressed), len(compressed), numBits); err != nil {
		return 0, err
	}
	if numBits == 0 {
		for i := range decompressed {
			decompressed[i] = initial
		}
		return 0, nil
	}
	var deltas [BlockLen]uint32
	if p.set == setScalar {
		unpackBlockScalar(compressed, deltas[:], numBits)
		prefixSumScalar(initial, deltas[:], decompressed)
	} else {
		unpackBlockSIMD(compressed, deltas[:], numBits)
		prefixSumSIMD(initial, deltas[:], decompressed)
	}
	return CompressedBlockSize(numBits), nil
}

// NumBits returns the smallest width that represents every value in the
// block: 0 for an all-zero block, up to 32.
func (p BitPacker4x) NumBits(decompressed []uint32) (int, error) {
	if err := checkBlockLen(len(decompressed)); err != nil {
		return 0, err
	}
	return maxBits(decompressed), nil
}

// NumBitsSorted returns the smallest width that represents every wrapping
// difference between consecutive values, starting from initial. A decreasing
// or wildly jumping block simply reports a large width, up to 32.
func (p BitPacker4x) NumBitsSorted(initial uint32, decompressed []uint32) (int, error) {
	if err := checkBlockLen(len(decompressed)); err != nil {
		return 0, err
	}
	var deltas [BlockLen]uint32
	deltaBlockScalar(initial, decompressed, deltas[:])
	return maxBits(deltas[:]), nil
}

func checkBlockLen(n int) error {
	if n != BlockLen {
		return fmt.Errorf("%w: block length %d, must be exactly %d", ErrInvalidArgument, n, BlockLen)
	}
	return nil
}

func checkBlockArgs(blockLen, packedLen, numBits int) error {
	if err := checkBlockLen(blockLen); err != nil {
		return err
	}
	if numBits < 0 || numBits > maxNumBits {
		return fmt.Errorf("%w: numBits %d out of range [0, %d]", ErrInvalidArgument, numBits, maxNumBits)
	}
	if need := CompressedBlockSize(numBits); packedLen < need {
		return fmt.Errorf("%w: packed buffer too small (need %d bytes, got %d)", ErrInvalidArgument, need, packedLen)
	}
	return nil
}
