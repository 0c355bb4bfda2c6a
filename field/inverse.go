package field

import (
	"github.com/rs/zerolog/log"

	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/platform"
)

// maxChainScratch bounds the addition-chain interpreter's scratch table,
// avoiding a heap allocation on what is otherwise a hot secret-input
// path; every chain in namedChains fits comfortably within it.
const maxChainScratch = 16

// precomputeAdditionChain looks up the chain registered for mod, if
// any, and emits a debug-level log event (modulus and step count, both
// public) each time it finds one. Inv calls it on every inversion, so
// for a modulus with a registered chain the event is logged once per Inv
// call, not once per modulus.
func precomputeAdditionChain(mod *Modulus) (additionChain, bool) {
	chain, ok := namedChains[mod.decimalKey]
	if ok {
		log.Debug().
			Str("modulus", mod.decimalKey).
			Int("steps", len(chain.Ops)).
			Msg("field: addition-chain inverter installed")
	}
	return chain, ok
}

// Inv computes r = a^-1 mod M in Montgomery form, or the additive
// identity when a is the additive identity, per §4.4's inv(0) = 0
// contract. It dispatches to a pre-generated addition chain when one is
// registered for a.Modulus(), and otherwise falls back to a generic
// Fermat-ladder exponentiation by M-2 — both are "variable-time with
// respect to the compile-time-fixed exponent, constant-time with
// respect to the secret base a" per §9.
func Inv(r, a *Element) {
	if chain, ok := precomputeAdditionChain(a.m); ok {
		invWithChain(r, a, &chain)
		return
	}
	invFermat(r, a)
}

// InvCheck is the checked sibling of Inv: it reports NotInvertible for
// a zero input instead of silently returning the additive identity
// (SPEC_FULL.md §D.2).
func InvCheck(a *Element) (Element, error) {
	var r Element
	Inv(&r, a)
	if a.IsZero() == ct.CTrue() {
		return Element{}, NotInvertible{}
	}
	return r, nil
}

// invWithChain runs a pre-generated addition-chain program. scratch[0]
// is always seeded with a itself; later Save steps grow the table so
// later Multiply steps can reference earlier partial powers.
func invWithChain(r, a *Element, chain *additionChain) {
	var scratch [maxChainScratch]Element
	scratch[0] = *a
	n := 1

	acc := *a
	for _, op := range chain.Ops {
		for s := 0; s < op.Squarings; s++ {
			Square(&acc, &acc)
		}
		if op.Multiply >= 0 {
			Mul(&acc, &acc, &scratch[op.Multiply])
		}
		if op.Save {
			scratch[n] = acc
			n++
		}
	}
	*r = acc
}

// invFermat computes a^(M-2) mod M via square-and-multiply over the
// modulus's precomputed, public invExponent bits. Which squarings and
// multiplies run depends only on those public bits (a multiply is
// skipped for each zero bit), so the sequence is the same regardless of
// a's value. It is the always-available generic inverse for any
// modulus, named chain or not.
func invFermat(r, a *Element) {
	mod := a.m
	bits := mod.bits

	started := false
	var acc Element
	for i := bits - 1; i >= 0; i-- {
		if started {
			Square(&acc, &acc)
		}
		if bitAt(&mod.invExponent, i) {
			if started {
				Mul(&acc, &acc, a)
			} else {
				acc = *a
				started = true
			}
		}
	}
	if !started {
		acc = mod.Zero()
	}
	*r = acc
}

// bitAt extracts bit i (0 = least significant) of a public exponent
// stored as a bigint.BigInt. The exponent is always public (M-2 or a
// compile-time-fixed addition-chain datum), so branching on it here is
// not a constant-time concern.
func bitAt(a *bigint.BigInt, i int) bool {
	limbIdx := i / platform.WordBits
	bitIdx := uint(i % platform.WordBits)
	return (platform.Word(a.Limb(limbIdx))>>bitIdx)&1 == 1
}
