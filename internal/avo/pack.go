//go:build avogen
// +build avogen

package main

import (
	"fmt"

	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the per-width pack and unpack kernels.
//
// A block is 32 rows of 4 lanes, one row per 128-bit load. Packing walks the
// rows in order, OR-accumulating each row into the current output word at the
// running bit position (PSLLL by a constant), and whenever the position
// crosses 32 it stores the completed word and carries the row's spilled high
// bits into the next one (PSRLL). Because the shift amounts depend only on
// the width, each of the 32 widths unrolls into a branch-free kernel.
// Unpacking runs the same walk in reverse: PSRLL at the running position,
// joined with the next word's low bits when a row straddles a boundary, then
// masked down to the width.

const rowCount = 32

func widthMask(bitWidth int) uint32 {
	if bitWidth >= 32 {
		return ^uint32(0)
	}
	return 1<<bitWidth - 1
}

func genPackKernels() {
	for bitWidth := 1; bitWidth <= 32; bitWidth++ {
		genPackKernel(bitWidth)
	}
}

func genPackKernel(bitWidth int) {
	TEXT(fmt.Sprintf("pack32_%d", bitWidth), NOSPLIT, "func(src *uint32, dst *byte)")

	srcParam := Load(Param("src"), GP64())
	src := srcParam.(reg.GPVirtual)
	dstParam := Load(Param("dst"), GP64())
	dst := dstParam.(reg.GPVirtual)

	row := XMM()
	acc := XMM()
	shifted := XMM()

	pos, word := 0, 0
	for r := 0; r < rowCount; r++ {
		MOVOU(op.Mem{Base: src, Disp: 16 * r}, row)
		if pos == 0 {
			MOVO(row, acc)
		} else {
			MOVO(row, shifted)
			PSLLL(op.Imm(uint64(pos)), shifted)
			POR(shifted, acc)
		}
		if pos+bitWidth >= 32 {
			MOVOU(acc, op.Mem{Base: dst, Disp: 16 * word})
			word++
			if pos+bitWidth > 32 {
				// Spill the bits that didn't fit into the stored word.
				MOVO(row, acc)
				PSRLL(op.Imm(uint64(32-pos)), acc)
			}
		}
		pos = (pos + bitWidth) % 32
	}
	RET()
}

func genUnpackKernels() {
	for bitWidth := 1; bitWidth <= 32; bitWidth++ {
		genUnpackKernel(bitWidth)
	}
}

func genUnpackKernel(bitWidth int) {
	TEXT(fmt.Sprintf("unpack32_%d", bitWidth), NOSPLIT, "func(src *byte, dst *uint32)")

	srcParam := Load(Param("src"), GP64())
	src := srcParam.(reg.GPVirtual)
	dstParam := Load(Param("dst"), GP64())
	dst := dstParam.(reg.GPVirtual)

	mask := XMM()
	cur := XMM()
	out := XMM()
	next := XMM()
	carried := XMM()

	if bitWidth < 32 {
		maskScalar := GP32()
		MOVL(op.U32(widthMask(bitWidth)), maskScalar)
		MOVD(maskScalar, mask)
		PSHUFL(op.Imm(0x00), mask, mask)
	}

	pos, word := 0, 0
	for r := 0; r < rowCount; r++ {
		if pos == 0 {
			MOVOU(op.Mem{Base: src, Disp: 16 * word}, cur)
			word++
			MOVO(cur, out)
		} else {
			MOVO(cur, out)
			PSRLL(op.Imm(uint64(pos)), out)
		}
		if pos+bitWidth > 32 {
			// The row straddles a word boundary; join the low bits of the
			// next word.
			MOVOU(op.Mem{Base: src, Disp: 16 * word}, next)
			word++
			MOVO(next, carried)
			PSLLL(op.Imm(uint64(32-pos)), carried)
			POR(carried, out)
			MOVO(next, cur)
		}
		if bitWidth < 32 {
			PAND(mask, out)
		}
		MOVOU(out, op.Mem{Base: dst, Disp: 16 * r})
		pos = (pos + bitWidth) % 32
	}
	RET()
}
