package field

import (
	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
)

// mulMontgomery computes r = a*b*R^-1 mod M via Coarsely Integrated
// Operand Scanning (CIOS), following the same per-iteration overflow
// bookkeeping as the Go standard library's math/big nat.montgomery
// (see Gueron, "Efficient Software Implementations of Modular
// Exponentiation", and other_examples/...bford-go__src-math-big-nat.go
// in the retrieved pack, lines ~277-320).
func mulMontgomery(r, a, b *bigint.BigInt, mod *Modulus) {
	n := mod.limbs
	var z [bigint.MaxLimbs]ct.SecretWord
	var outerCarry ct.SecretWord

	aWords := a.Words()
	mWords := mod.m.Words()

	for i := 0; i < n; i++ {
		d := b.Limb(i)
		c2 := bigint.MulAddRow(z[:n], aWords, d)
		t0 := z[0].Mul(mod.m0ninv)
		c3 := bigint.MulAddRow(z[:n], mWords, t0)

		for j := 0; j < n-1; j++ {
			z[j] = z[j+1]
		}

		cx, carryA := ct.AddC(0, outerCarry, c2)
		cy, carryB := ct.AddC(0, cx, c3)
		z[n-1] = cy
		outerCarry = carryA.Or(carryB)
	}

	var t bigint.BigInt
	t.SetN(n)
	for i := 0; i < n; i++ {
		t.SetLimb(i, z[i])
	}
	finalSub(r, &t, outerCarry, mod)
}

// redc reduces a 2n-limb wide value (such as the product from
// bigint.Prod) into Montgomery domain: r = wide * R^-1 mod M. This is
// the reduction-only half of CIOS, folding mod.m * m0ninv-derived
// multiples into the running window instead of interleaving a second
// operand's row products.
func redc(r *bigint.BigInt, wide *bigint.BigInt, mod *Modulus) {
	n := mod.limbs
	var z [bigint.MaxLimbs]ct.SecretWord
	for i := 0; i < n; i++ {
		z[i] = wide.Limb(i)
	}
	var outerCarry ct.SecretWord
	mWords := mod.m.Words()

	for i := 0; i < n; i++ {
		t0 := z[0].Mul(mod.m0ninv)
		c3 := bigint.MulAddRow(z[:n], mWords, t0)

		for j := 0; j < n-1; j++ {
			z[j] = z[j+1]
		}

		hi := wide.Limb(n + i)
		cx, carryA := ct.AddC(0, outerCarry, hi)
		cy, carryB := ct.AddC(0, cx, c3)
		z[n-1] = cy
		outerCarry = carryA.Or(carryB)
	}

	var t bigint.BigInt
	t.SetN(n)
	for i := 0; i < n; i++ {
		t.SetLimb(i, z[i])
	}
	finalSub(r, &t, outerCarry, mod)
}

// finalSub commits the conditional subtraction of M that both
// mulMontgomery and redc's CIOS loops leave pending: the running value
// t (with an implicit extra overflow bit when mod has no spare bits) may
// still be >= M and must be reduced into [0, M).
func finalSub(r, t *bigint.BigInt, overflow ct.SecretWord, mod *Modulus) {
	if mod.spareBits >= 1 {
		finalSubNoOverflow(r, t, mod)
	} else {
		finalSubMayOverflow(r, t, overflow, mod)
	}
}

// finalSubNoOverflow handles the common case where the modulus has at
// least one spare bit: t is guaranteed < 2M and fits in mod.limbs words
// with no implicit leading bit, so a plain borrow-detecting subtraction
// decides canonicality.
func finalSubNoOverflow(r, t *bigint.BigInt, mod *Modulus) {
	var diff bigint.BigInt
	borrow := bigint.Sub(&diff, t, &mod.m)
	cond := ct.SecretBool(borrow).Not()
	*r = *t
	bigint.CCopy(cond, r, &diff)
}

// finalSubMayOverflow handles the tight case where the modulus occupies
// every bit of its limb array: t may have produced a genuine carry out
// of the top limb (the overflow parameter), which must be folded into
// the >= M decision even though it has no explicit limb to live in.
func finalSubMayOverflow(r, t *bigint.BigInt, overflow ct.SecretWord, mod *Modulus) {
	var diff bigint.BigInt
	borrow := bigint.Sub(&diff, t, &mod.m)
	cond := ct.SecretBool(overflow).Or(ct.SecretBool(borrow).Not())
	*r = *t
	bigint.CCopy(cond, r, &diff)
}
