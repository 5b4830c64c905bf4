//go:build (!amd64 && !arm64) || noasm

package bitpacking

// Without the SIMD kernels every BitPacker4x runs the scalar backend. The
// SIMD entry points below keep the facade compiling; they are unreachable
// because bestInstructionSet never hands out a SIMD tag here.

func bestInstructionSet() instructionSet {
	return setScalar
}

func packBlockSIMD(values []uint32, dst []byte, numBits int) {
	packBlockScalar(values, dst, numBits)
}

func unpackBlockSIMD(src []byte, dst []uint32, numBits int) {
	unpackBlockScalar(src, dst, numBits)
}

func deltaBlockSIMD(initial uint32, src, dst []uint32) {
	deltaBlockScalar(initial, src, dst)
}

func prefixSumSIMD(initial uint32, deltas, dst []uint32) {
	prefixSumScalar(initial, deltas, dst)
}
