//go:build (amd64 || arm64) && !noasm

package bitpacking

//go:generate go run -tags avogen ./internal/avo -component pack -out pack_amd64.s
//go:generate go run -tags avogen ./internal/avo -component unpack -out unpack_amd64.s
//go:generate go run -tags avogen ./internal/avo -component delta -out delta_amd64.s
//go:generate go run -tags neongen ./internal/neon -component pack -out pack_arm64.s
//go:generate go run -tags neongen ./internal/neon -component unpack -out unpack_arm64.s
//go:generate go run -tags neongen ./internal/neon -component delta -out delta_arm64.s

// Kernel entry points provided by pack_*.s, unpack_*.s and delta_*.s. Each
// pack/unpack kernel handles exactly one bit width over one 128-value block;
// src and dst never alias.

//go:noescape
func pack32_1(src *uint32, dst *byte)

//go:noescape
func pack32_2(src *uint32, dst *byte)

//go:noescape
func pack32_3(src *uint32, dst *byte)

//go:noescape
func pack32_4(src *uint32, dst *byte)

//go:noescape
func pack32_5(src *uint32, dst *byte)

//go:noescape
func pack32_6(src *uint32, dst *byte)

//go:noescape
func pack32_7(src *uint32, dst *byte)

//go:noescape
func pack32_8(src *uint32, dst *byte)

//go:noescape
func pack32_9(src *uint32, dst *byte)

//go:noescape
func pack32_10(src *uint32, dst *byte)

//go:noescape
func pack32_11(src *uint32, dst *byte)

//go:noescape
func pack32_12(src *uint32, dst *byte)

//go:noescape
func pack32_13(src *uint32, dst *byte)

//go:noescape
func pack32_14(src *uint32, dst *byte)

//go:noescape
func pack32_15(src *uint32, dst *byte)

//go:noescape
func pack32_16(src *uint32, dst *byte)

//go:noescape
func pack32_17(src *uint32, dst *byte)

//go:noescape
func pack32_18(src *uint32, dst *byte)

//go:noescape
func pack32_19(src *uint32, dst *byte)

//go:noescape
func pack32_20(src *uint32, dst *byte)

//go:noescape
func pack32_21(src *uint32, dst *byte)

//go:noescape
func pack32_22(src *uint32, dst *byte)

//go:noescape
func pack32_23(src *uint32, dst *byte)

//go:noescape
func pack32_24(src *uint32, dst *byte)

//go:noescape
func pack32_25(src *uint32, dst *byte)

//go:noescape
func pack32_26(src *uint32, dst *byte)

//go:noescape
func pack32_27(src *uint32, dst *byte)

//go:noescape
func pack32_28(src *uint32, dst *byte)

//go:noescape
func pack32_29(src *uint32, dst *byte)

//go:noescape
func pack32_30(src *uint32, dst *byte)

//go:noescape
func pack32_31(src *uint32, dst *byte)

//go:noescape
func pack32_32(src *uint32, dst *byte)

//go:noescape
func unpack32_1(src *byte, dst *uint32)

//go:noescape
func unpack32_2(src *byte, dst *uint32)

//go:noescape
func unpack32_3(src *byte, dst *uint32)

//go:noescape
func unpack32_4(src *byte, dst *uint32)

//go:noescape
func unpack32_5(src *byte, dst *uint32)

//go:noescape
func unpack32_6(src *byte, dst *uint32)

//go:noescape
func unpack32_7(src *byte, dst *uint32)

//go:noescape
func unpack32_8(src *byte, dst *uint32)

//go:noescape
func unpack32_9(src *byte, dst *uint32)

//go:noescape
func unpack32_10(src *byte, dst *uint32)

//go:noescape
func unpack32_11(src *byte, dst *uint32)

//go:noescape
func unpack32_12(src *byte, dst *uint32)

//go:noescape
func unpack32_13(src *byte, dst *uint32)

//go:noescape
func unpack32_14(src *byte, dst *uint32)

//go:noescape
func unpack32_15(src *byte, dst *uint32)

//go:noescape
func unpack32_16(src *byte, dst *uint32)

//go:noescape
func unpack32_17(src *byte, dst *uint32)

//go:noescape
func unpack32_18(src *byte, dst *uint32)

//go:noescape
func unpack32_19(src *byte, dst *uint32)

//go:noescape
func unpack32_20(src *byte, dst *uint32)

//go:noescape
func unpack32_21(src *byte, dst *uint32)

//go:noescape
func unpack32_22(src *byte, dst *uint32)

//go:noescape
func unpack32_23(src *byte, dst *uint32)

//go:noescape
func unpack32_24(src *byte, dst *uint32)

//go:noescape
func unpack32_25(src *byte, dst *uint32)

//go:noescape
func unpack32_26(src *byte, dst *uint32)

//go:noescape
func unpack32_27(src *byte, dst *uint32)

//go:noescape
func unpack32_28(src *byte, dst *uint32)

//go:noescape
func unpack32_29(src *byte, dst *uint32)

//go:noescape
func unpack32_30(src *byte, dst *uint32)

//go:noescape
func unpack32_31(src *byte, dst *uint32)

//go:noescape
func unpack32_32(src *byte, dst *uint32)

//go:noescape
func deltaBlockAsm(initial uint32, src *uint32, dst *uint32)

//go:noescape
func prefixSumAsm(initial uint32, src *uint32, dst *uint32)
