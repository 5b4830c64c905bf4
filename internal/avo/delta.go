//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the sorted-mode row transforms.
//
// Deltas are formed one row at a time but amount to a straight D1 stream in
// input order: within a row, lanes 1..3 subtract their left neighbor, and
// lane 0 subtracts the last lane of the previous row (or the broadcast
// initial value for row 0). The prior
// row is built with whole-register byte shifts (PSLLDQ/PSRLDQ), so the four
// subtractions happen in one PSUBL. The decoder inverts this with the
// shift-and-add prefix-sum tree — shift one lane and add, shift two lanes and
// add — then adds the previous row's last lane broadcast with PSHUFL, as in
// [1].
//
// [1] D. Lemire, L. Boytsov, and N. Kurz (2016): "SIMD compression and the
// intersection of sorted integers", Software: Practice and Experience,
// vol. 46, no. 6, pp. 723-749, doi: 10.1002/spe.2326.

func genDeltaBlockKernel() {
	TEXT("deltaBlockAsm", NOSPLIT, "func(initial uint32, src *uint32, dst *uint32)")

	initial := Load(Param("initial"), GP32())
	srcParam := Load(Param("src"), GP64())
	src := srcParam.(reg.GPVirtual)
	dstParam := Load(Param("dst"), GP64())
	dst := dstParam.(reg.GPVirtual)

	prev := XMM()
	curr := XMM()
	prior := XMM()
	spill := XMM()

	// Row -1 is the initial value in every lane; only its last lane is ever
	// consumed.
	MOVD(initial, prev)
	PSHUFL(op.Imm(0x00), prev, prev)

	for r := 0; r < rowCount; r++ {
		MOVOU(op.Mem{Base: src, Disp: 16 * r}, curr)
		MOVO(curr, prior)
		PSLLDQ(op.Imm(4), prior)
		MOVO(prev, spill)
		PSRLDQ(op.Imm(12), spill)
		POR(spill, prior)
		MOVO(curr, spill)
		PSUBL(prior, spill)
		MOVOU(spill, op.Mem{Base: dst, Disp: 16 * r})
		MOVO(curr, prev)
	}
	RET()
}

func genPrefixSumKernel() {
	TEXT("prefixSumAsm", NOSPLIT, "func(initial uint32, src *uint32, dst *uint32)")

	initial := Load(Param("initial"), GP32())
	srcParam := Load(Param("src"), GP64())
	src := srcParam.(reg.GPVirtual)
	dstParam := Load(Param("dst"), GP64())
	dst := dstParam.(reg.GPVirtual)

	prev := XMM()
	row := XMM()
	tmp := XMM()

	MOVD(initial, prev)
	PSHUFL(op.Imm(0x00), prev, prev)

	for r := 0; r < rowCount; r++ {
		MOVOU(op.Mem{Base: src, Disp: 16 * r}, row)

		// Stage 1 — shift by one delta.
		MOVO(row, tmp)
		PSLLDQ(op.Imm(4), tmp)
		PADDL(tmp, row)

		// Stage 2 — shift by two deltas.
		MOVO(row, tmp)
		PSLLDQ(op.Imm(8), tmp)
		PADDL(tmp, row)

		// Add the previous row's last lane, broadcast to all four.
		PSHUFL(op.Imm(0xFF), prev, tmp)
		PADDL(tmp, row)

		MOVOU(row, op.Mem{Base: dst, Disp: 16 * r})
		MOVO(row, prev)
	}
	RET()
}
