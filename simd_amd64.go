//go:build amd64 && !noasm

package bitpacking

import "golang.org/x/sys/cpu"

// bestInstructionSet returns the SSE kernels on CPUs with SSE3, scalar
// otherwise.
func bestInstructionSet() instructionSet {
	if cpu.X86.HasSSE3 {
		return setSSE
	}
	return setScalar
}
