// Code generated by internal/codegen using github.com/mmcloughlin/addchain.
// DO NOT EDIT.
//
// Regenerate with: go generate ./field/...
//
// Each entry names a public addition chain computing a^(M-2), the
// Fermat inversion exponent, for one named modulus. A chain is a
// sequence of (square, optionally-multiply-by-a-running-table-entry,
// optionally-save-to-the-table) steps, per spec §9's "addition chains
// should be represented as data... and executed by a single
// interpreter."

package field

// chainOp is one step of an addition-chain program.
type chainOp struct {
	// Squarings is the number of times to square the running
	// accumulator before the optional multiply below.
	Squarings int
	// Multiply names a scratch table index to multiply the accumulator
	// by after squaring, or -1 to skip the multiply.
	Multiply int
	// Save appends the post-multiply accumulator to the scratch table
	// (at the next free index) for reuse by a later step.
	Save bool
}

// additionChain is a named, pre-generated inversion program for one
// modulus (keyed by its decimal string).
type additionChain struct {
	Ops        []chainOp
	ScratchLen int
}

// namedChains holds the addition chains this build ships. A modulus not
// present here falls back to the generic Fermat square-and-multiply
// ladder in invFermat, which is always correct (just not chain-tuned).
var namedChains = map[string]additionChain{
	// F5: a^(5-2) = a^3 = a^2 * a.
	"5": {
		Ops:        []chainOp{{Squarings: 1, Multiply: 0, Save: false}},
		ScratchLen: 1,
	},
}
