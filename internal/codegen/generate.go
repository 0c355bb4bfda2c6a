package codegen

import (
	"bytes"
	"fmt"
	"math/big"
)

// ModulusSpec names one modulus this generator should emit an addition
// chain entry for: its decimal key (matching field.Modulus.decimalKey,
// which is how field/addchain_gen.go's namedChains map is keyed) and the
// modulus value itself, from which the Fermat exponent M-2 is derived.
type ModulusSpec struct {
	Name string // decimal key, e.g. "5"
	M    *big.Int
}

// GenerateAddChainTable renders the field/addchain_gen.go source: one
// namedChains entry per spec, each computed from scratch via
// FindAdditionChain(M-2), plus the generated-file header.
func GenerateAddChainTable(specs []ModulusSpec) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGeneratedHeader(&buf, "field", "go generate ./field/..."); err != nil {
		return nil, err
	}

	buf.WriteString(chainTypesPreamble)

	fmt.Fprintln(&buf, "var namedChains = map[string]additionChain{")
	for _, spec := range specs {
		exponent := new(big.Int).Sub(spec.M, big.NewInt(2))
		ops, err := FindAdditionChain(exponent)
		if err != nil {
			return nil, fmt.Errorf("codegen: modulus %s: %w", spec.Name, err)
		}

		fmt.Fprintf(&buf, "\t%q: {\n\t\tOps: []chainOp{\n", spec.Name)
		for _, op := range ops {
			fmt.Fprintf(&buf, "\t\t\t{Squarings: %d, Multiply: %d, Save: %t},\n",
				op.Squarings, op.Multiply, op.Save)
		}
		fmt.Fprintf(&buf, "\t\t},\n\t\tScratchLen: %d,\n\t},\n", countSaves(ops))
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

func countSaves(ops []ChainOp) int {
	n := 1 // scratch[0] is always seeded with the base
	for _, op := range ops {
		if op.Save {
			n++
		}
	}
	return n
}

const chainTypesPreamble = `
// chainOp is one step of an addition-chain program.
type chainOp struct {
	Squarings int
	Multiply  int
	Save      bool
}

// additionChain is a named, pre-generated inversion program for one
// modulus (keyed by its decimal string).
type additionChain struct {
	Ops        []chainOp
	ScratchLen int
}
`
