//go:build neongen
// +build neongen

package main

import (
	"bytes"
	"fmt"
)

// The sorted-mode row transforms. VEXT replaces the amd64 PSLLDQ/PSRLDQ
// pair: a single extract over the (previous row : current row) register pair
// builds the lane-shifted prior directly, and extracts against a zero
// register express the prefix-sum byte shifts.

// genDeltaBlockKernel emits the delta transform: V3 carries the previous row
// (seeded with the broadcast initial value), V0 the current row, and the
// prior row [prev3, c0, c1, c2] comes out of one VEXT.
func genDeltaBlockKernel(buf *bytes.Buffer) {
	fmt.Fprintln(buf, "\n// func deltaBlockAsm(initial uint32, src *uint32, dst *uint32)")
	fmt.Fprintln(buf, "TEXT ·deltaBlockAsm(SB), NOSPLIT, $0-24")
	fmt.Fprintln(buf, "\tMOVWU initial+0(FP), R2")
	fmt.Fprintln(buf, "\tMOVD src+8(FP), R0")
	fmt.Fprintln(buf, "\tMOVD dst+16(FP), R1")
	fmt.Fprintln(buf, "\tVDUP R2, V3.S4")
	for r := 0; r < rowCount; r++ {
		fmt.Fprintln(buf, "\tVLD1.P 16(R0), [V0.B16]")
		fmt.Fprintln(buf, "\tVEXT $12, V0.B16, V3.B16, V1.B16")
		fmt.Fprintln(buf, "\tVSUB V1.S4, V0.S4, V2.S4")
		fmt.Fprintln(buf, "\tVST1.P [V2.B16], 16(R1)")
		fmt.Fprintln(buf, "\tVORR V0.B16, V0.B16, V3.B16")
	}
	fmt.Fprintln(buf, "\tRET")
}

// genPrefixSumKernel emits the two-stage shift-and-add prefix sum: shift one
// lane and add, shift two lanes and add, then add the previous row's last
// lane broadcast with VDUP.
func genPrefixSumKernel(buf *bytes.Buffer) {
	fmt.Fprintln(buf, "\n// func prefixSumAsm(initial uint32, src *uint32, dst *uint32)")
	fmt.Fprintln(buf, "TEXT ·prefixSumAsm(SB), NOSPLIT, $0-24")
	fmt.Fprintln(buf, "\tMOVWU initial+0(FP), R2")
	fmt.Fprintln(buf, "\tMOVD src+8(FP), R0")
	fmt.Fprintln(buf, "\tMOVD dst+16(FP), R1")
	fmt.Fprintln(buf, "\tVDUP R2, V3.S4")
	fmt.Fprintln(buf, "\tVEOR V4.B16, V4.B16, V4.B16")
	for r := 0; r < rowCount; r++ {
		fmt.Fprintln(buf, "\tVLD1.P 16(R0), [V0.B16]")
		fmt.Fprintln(buf, "\tVEXT $12, V0.B16, V4.B16, V1.B16")
		fmt.Fprintln(buf, "\tVADD V1.S4, V0.S4, V0.S4")
		fmt.Fprintln(buf, "\tVEXT $8, V0.B16, V4.B16, V1.B16")
		fmt.Fprintln(buf, "\tVADD V1.S4, V0.S4, V0.S4")
		fmt.Fprintln(buf, "\tVDUP V3.S[3], V2.S4")
		fmt.Fprintln(buf, "\tVADD V2.S4, V0.S4, V0.S4")
		fmt.Fprintln(buf, "\tVST1.P [V0.B16], 16(R1)")
		fmt.Fprintln(buf, "\tVORR V0.B16, V0.B16, V3.B16")
	}
	fmt.Fprintln(buf, "\tRET")
}
