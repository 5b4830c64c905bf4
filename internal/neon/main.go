//go:build neongen
// +build neongen

// Command neon emits the arm64 NEON kernels as Go assembly text. avo (which
// generates the amd64 kernels) has no arm64 backend, so this program mirrors
// the avo program's row walk instruction by instruction: VSHL/VUSHR for the
// per-lane shifts, VORR/VAND for the bitwise ops, VEXT for the
// whole-register byte shifts and VDUP for the broadcasts. Loads and stores
// use post-incremented VLD1.P/VST1.P because every kernel touches its words
// in strictly ascending order.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	component = flag.String("component", "all", "component to generate")
	out       = flag.String("out", "", "output file (default stdout)")
)

func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by command: go run github.com/mpetri/bitpacking/internal/neon %s. DO NOT EDIT.\n", strings.Join(os.Args[1:], " "))
	buf.WriteString("\n//go:build arm64 && !noasm\n\n")
	buf.WriteString("#include \"textflag.h\"\n")

	if comp == "pack" || comp == "all" {
		genPackKernels(&buf)
	}

	if comp == "unpack" || comp == "all" {
		genUnpackKernels(&buf)
	}

	if comp == "delta" || comp == "all" {
		genDeltaBlockKernel(&buf)
		genPrefixSumKernel(&buf)
	}

	if *out == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
