//go:build neongen
// +build neongen

package main

import (
	"bytes"
	"fmt"
)

const rowCount = 32

func widthMask(bitWidth int) uint32 {
	if bitWidth >= 32 {
		return ^uint32(0)
	}
	return 1<<bitWidth - 1
}

// genPackKernels emits one pack kernel per width. The walk is identical to
// the amd64 generator: OR each row into the accumulator at the running bit
// position, store when the position crosses 32, carry the spilled high bits.
// V0 is the current row, V1 the accumulator, V2 scratch.
func genPackKernels(buf *bytes.Buffer) {
	for bitWidth := 1; bitWidth <= 32; bitWidth++ {
		fmt.Fprintf(buf, "\n// func pack32_%d(src *uint32, dst *byte)\n", bitWidth)
		fmt.Fprintf(buf, "TEXT ·pack32_%d(SB), NOSPLIT, $0-16\n", bitWidth)
		fmt.Fprintln(buf, "\tMOVD src+0(FP), R0")
		fmt.Fprintln(buf, "\tMOVD dst+8(FP), R1")
		pos := 0
		for r := 0; r < rowCount; r++ {
			fmt.Fprintln(buf, "\tVLD1.P 16(R0), [V0.B16]")
			if pos == 0 {
				fmt.Fprintln(buf, "\tVORR V0.B16, V0.B16, V1.B16")
			} else {
				fmt.Fprintf(buf, "\tVSHL $%d, V0.S4, V2.S4\n", pos)
				fmt.Fprintln(buf, "\tVORR V2.B16, V1.B16, V1.B16")
			}
			if pos+bitWidth >= 32 {
				fmt.Fprintln(buf, "\tVST1.P [V1.B16], 16(R1)")
				if pos+bitWidth > 32 {
					// Spill the bits that didn't fit into the stored word.
					fmt.Fprintf(buf, "\tVUSHR $%d, V0.S4, V1.S4\n", 32-pos)
				}
			}
			pos = (pos + bitWidth) % 32
		}
		fmt.Fprintln(buf, "\tRET")
	}
}

// genUnpackKernels emits the inverse kernels. V0 holds the current packed
// word, V1 the row being assembled, V2/V3 the straddle scratch and V7 the
// width mask broadcast from R2.
func genUnpackKernels(buf *bytes.Buffer) {
	for bitWidth := 1; bitWidth <= 32; bitWidth++ {
		fmt.Fprintf(buf, "\n// func unpack32_%d(src *byte, dst *uint32)\n", bitWidth)
		fmt.Fprintf(buf, "TEXT ·unpack32_%d(SB), NOSPLIT, $0-16\n", bitWidth)
		fmt.Fprintln(buf, "\tMOVD src+0(FP), R0")
		fmt.Fprintln(buf, "\tMOVD dst+8(FP), R1")
		if bitWidth < 32 {
			fmt.Fprintf(buf, "\tMOVD $%d, R2\n", widthMask(bitWidth))
			fmt.Fprintln(buf, "\tVDUP R2, V7.S4")
		}
		pos := 0
		for r := 0; r < rowCount; r++ {
			if pos == 0 {
				fmt.Fprintln(buf, "\tVLD1.P 16(R0), [V0.B16]")
				fmt.Fprintln(buf, "\tVORR V0.B16, V0.B16, V1.B16")
			} else {
				fmt.Fprintf(buf, "\tVUSHR $%d, V0.S4, V1.S4\n", pos)
			}
			if pos+bitWidth > 32 {
				// The row straddles a word boundary; join the low bits of
				// the next word.
				fmt.Fprintln(buf, "\tVLD1.P 16(R0), [V2.B16]")
				fmt.Fprintf(buf, "\tVSHL $%d, V2.S4, V3.S4\n", 32-pos)
				fmt.Fprintln(buf, "\tVORR V3.B16, V1.B16, V1.B16")
				fmt.Fprintln(buf, "\tVORR V2.B16, V2.B16, V0.B16")
			}
			if bitWidth < 32 {
				fmt.Fprintln(buf, "\tVAND V7.B16, V1.B16, V1.B16")
			}
			fmt.Fprintln(buf, "\tVST1.P [V1.B16], 16(R1)")
			pos = (pos + bitWidth) % 32
		}
		fmt.Fprintln(buf, "\tRET")
	}
}
