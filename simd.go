//go:build (amd64 || arm64) && !noasm

package bitpacking

// packBlockSIMD packs 128 values at numBits (1..32) through the specialized
// kernel for that width. The input is copied into a fixed scratch buffer and
// masked to numBits bits first, so the kernels themselves never mask on the
// pack side.
// Note: We use a switch instead of a dispatch table to allow the compiler to
// prove that the stack-allocated scratch doesn't escape (function pointers
// break escape analysis).
func packBlockSIMD(values []uint32, dst []byte, numBits int) {
	var scratch [BlockLen]uint32
	m := widthMask(numBits)
	for i, v := range values {
		scratch[i] = v & m
	}
	in, out := &scratch[0], &dst[0]
	switch numBits {
	case 1:
		pack32_1(in, out)
	case 2:
		pack32_2(in, out)
	case 3:
		pack32_3(in, out)
	case 4:
		pack32_4(in, out)
	case 5:
		pack32_5(in, out)
	case 6:
		pack32_6(in, out)
	case 7:
		pack32_7(in, out)
	case 8:
		pack32_8(in, out)
	case 9:
		pack32_9(in, out)
	case 10:
		pack32_10(in, out)
	case 11:
		pack32_11(in, out)
	case 12:
		pack32_12(in, out)
	case 13:
		pack32_13(in, out)
	case 14:
		pack32_14(in, out)
	case 15:
		pack32_15(in, out)
	case 16:
		pack32_16(in, out)
	case 17:
		pack32_17(in, out)
	case 18:
		pack32_18(in, out)
	case 19:
		pack32_19(in, out)
	case 20:
		pack32_20(in, out)
	case 21:
		pack32_21(in, out)
	case 22:
		pack32_22(in, out)
	case 23:
		pack32_23(in, out)
	case 24:
		pack32_24(in, out)
	case 25:
		pack32_25(in, out)
	case 26:
		pack32_26(in, out)
	case 27:
		pack32_27(in, out)
	case 28:
		pack32_28(in, out)
	case 29:
		pack32_29(in, out)
	case 30:
		pack32_30(in, out)
	case 31:
		pack32_31(in, out)
	case 32:
		pack32_32(in, out)
	}
}

// unpackBlockSIMD unpacks one block through the width-specialized kernel.
// The kernels read and write with unaligned moves, so src and dst are used in
// place; masking to numBits bits happens inside each unpack kernel.
func unpackBlockSIMD(src []byte, dst []uint32, numBits int) {
	in, out := &src[0], &dst[0]
	switch numBits {
	case 1:
		unpack32_1(in, out)
	case 2:
		unpack32_2(in, out)
	case 3:
		unpack32_3(in, out)
	case 4:
		unpack32_4(in, out)
	case 5:
		unpack32_5(in, out)
	case 6:
		unpack32_6(in, out)
	case 7:
		unpack32_7(in, out)
	case 8:
		unpack32_8(in, out)
	case 9:
		unpack32_9(in, out)
	case 10:
		unpack32_10(in, out)
	case 11:
		unpack32_11(in, out)
	case 12:
		unpack32_12(in, out)
	case 13:
		unpack32_13(in, out)
	case 14:
		unpack32_14(in, out)
	case 15:
		unpack32_15(in, out)
	case 16:
		unpack32_16(in, out)
	case 17:
		unpack32_17(in, out)
	case 18:
		unpack32_18(in, out)
	case 19:
		unpack32_19(in, out)
	case 20:
		unpack32_20(in, out)
	case 21:
		unpack32_21(in, out)
	case 22:
		unpack32_22(in, out)
	case 23:
		unpack32_23(in, out)
	case 24:
		unpack32_24(in, out)
	case 25:
		unpack32_25(in, out)
	case 26:
		unpack32_26(in, out)
	case 27:
		unpack32_27(in, out)
	case 28:
		unpack32_28(in, out)
	case 29:
		unpack32_29(in, out)
	case 30:
		unpack32_30(in, out)
	case 31:
		unpack32_31(in, out)
	case 32:
		unpack32_32(in, out)
	}
}

// deltaBlockSIMD rewrites a block as lane-structured differences with the
// 128-bit lane-shift kernel.
func deltaBlockSIMD(initial uint32, src, dst []uint32) {
	deltaBlockAsm(initial, &src[0], &dst[0])
}

// prefixSumSIMD integrates a block of deltas back into values with the
// two-stage shift-and-add prefix sum kernel.
func prefixSumSIMD(initial uint32, deltas, dst []uint32) {
	prefixSumAsm(initial, &deltas[0], &dst[0])
}
