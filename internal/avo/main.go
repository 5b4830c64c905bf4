//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the pack, unpack and delta kernels so go:generate stays simple.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/mpetri/bitpacking")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "pack" || comp == "all" {
		genPackKernels()
	}

	if comp == "unpack" || comp == "all" {
		genUnpackKernels()
	}

	if comp == "delta" || comp == "all" {
		genDeltaBlockKernel()
		genPrefixSumKernel()
	}

	Generate()
}
