// Package codegen is the build-time generator behind `go generate
// ./field/...`: given a modulus, it searches for a short addition chain
// computing the Fermat inversion exponent M-2 and emits it as the data
// table field/addchain_gen.go consumes, per spec §9's "addition chains
// should be represented as data... and executed by a single
// interpreter, rather than generating a distinct function per modulus."
//
// Nothing in this package is imported by the shipped library; it runs
// only via `go generate` (see tools.go) and its output is committed as
// ordinary Go source.
package codegen

import (
	"fmt"
	"math/big"

	"github.com/mmcloughlin/addchain"
	"github.com/mmcloughlin/addchain/acc"
	"github.com/mmcloughlin/addchain/acc/pass"
	"github.com/mmcloughlin/addchain/alg/ensemble"
	"github.com/mmcloughlin/addchain/alg/exec"
)

// ChainOp mirrors field.chainOp's shape so this package can emit its
// literal without importing the (runtime-only) field package.
type ChainOp struct {
	Squarings int
	Multiply  int
	Save      bool
}

// FindAdditionChain searches the addchain ensemble of algorithms
// (continued-fraction, run-length, Bos-Coster variants — see
// github.com/mmcloughlin/addchain/alg/ensemble) for the shortest chain
// computing exponent, then lowers it to ChainOp steps via addchain's own
// "accumulator" compiler and dead-code-free pass pipeline. This mirrors
// gnark-crypto's internal/generator/config approach to producing
// per-curve inversion/square-root addition chains ahead of time.
func FindAdditionChain(exponent *big.Int) ([]ChainOp, error) {
	algorithms := ensemble.Ensemble()
	executor := exec.Executor{Algorithms: algorithms}

	result, err := executor.Execute(exponent)
	if err != nil {
		return nil, fmt.Errorf("codegen: addition-chain search failed: %w", err)
	}

	program, err := acc.Build(result.Program)
	if err != nil {
		return nil, fmt.Errorf("codegen: failed to build accumulator program: %w", err)
	}
	if err := pass.Exec(program, pass.Validate, pass.Print{}); err != nil {
		return nil, fmt.Errorf("codegen: accumulator validation failed: %w", err)
	}

	return lowerToChainOps(program), nil
}

// lowerToChainOps walks the accumulator program's instructions and
// produces the square/multiply/save schedule our runtime interpreter
// (field.invWithChain) executes. Every index the program references
// into its operand table is translated into ChainOp.Multiply; a
// doubling-only instruction becomes Squarings without a Multiply.
func lowerToChainOps(program *acc.Program) []ChainOp {
	var ops []ChainOp
	squarings := 0
	for _, inst := range program.Program.Instructions() {
		switch op := inst.Op.(type) {
		case addchain.Double:
			squarings++
		case addchain.Add:
			ops = append(ops, ChainOp{
				Squarings: squarings,
				Multiply:  int(op.X),
				Save:      true,
			})
			squarings = 0
		case addchain.Shift:
			squarings += int(op.S)
		}
	}
	if squarings > 0 {
		ops = append(ops, ChainOp{Squarings: squarings, Multiply: -1, Save: false})
	}
	return ops
}
