// Command genfield is the go:generate entry point for
// field/addchain_gen.go. It is a build-time tool only; nothing in the
// shipped library imports it.
//
//	go:generate go run ./internal/codegen/cmd/genfield -out field/addchain_gen.go -modulus 5
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/mratsim/constantine-core/internal/codegen"
)

func main() {
	out := flag.String("out", "", "output file path (required)")
	modulus := flag.String("modulus", "", "decimal modulus to register an addition chain for (required)")
	bits := flag.Int("bits", 0, "declared bit width, for validation only")
	flag.Parse()

	if *out == "" || *modulus == "" {
		fmt.Fprintln(os.Stderr, "usage: genfield -out <path> -modulus <decimal> [-bits <n>]")
		os.Exit(2)
	}

	m, ok := new(big.Int).SetString(*modulus, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "genfield: %q is not a valid decimal integer\n", *modulus)
		os.Exit(1)
	}
	if *bits != 0 && m.BitLen() != *bits {
		fmt.Fprintf(os.Stderr, "genfield: modulus bit length %d does not match -bits %d\n", m.BitLen(), *bits)
		os.Exit(1)
	}

	src, err := codegen.GenerateAddChainTable([]codegen.ModulusSpec{{Name: m.String(), M: m}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "genfield: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "genfield: %v\n", err)
		os.Exit(1)
	}
}
