//go:build arm64 && !noasm

package bitpacking

import "golang.org/x/sys/cpu"

// bestInstructionSet selects the NEON kernels. ASIMD is part of the ARMv8-A
// base architecture, so on arm64 this effectively always fires.
func bestInstructionSet() instructionSet {
	if cpu.ARM64.HasASIMD {
		return setNEON
	}
	return setScalar
}
