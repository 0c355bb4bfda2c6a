package field

import (
	"math/big"

	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
)

// precomputeSqrt derives, once at modulus-construction time (public
// data only), the Tonelli-Shanks parameters Sqrt needs: M-1 = q*2^s
// with q odd, a fixed quadratic non-residue raised to the q'th power
// (c0, in Montgomery form), and the exponent (q+1)/2. When M ≡ 3 mod 4,
// this degenerates to s=1 and Sqrt reduces to the familiar
// a^((M+1)/4) shortcut automatically — no special case is needed.
func (mod *Modulus) precomputeSqrt(mBig *big.Int, limbs int) {
	mMinus1 := new(big.Int).Sub(mBig, big.NewInt(1))
	s := 0
	q := new(big.Int).Set(mMinus1)
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	mod.s = s
	mod.qBits = bigIntFromBig(q, limbs)

	rExp := new(big.Int).Add(q, big.NewInt(1))
	rExp.Rsh(rExp, 1)
	mod.rExpBits = bigIntFromBig(rExp, limbs)

	nonResidue := findNonResidue(mBig)
	c0Big := new(big.Int).Exp(nonResidue, q, mBig)
	c0Limbs := bigIntFromBig(c0Big, limbs)
	var c0Mres bigint.BigInt
	mulMontgomery(&c0Mres, &c0Limbs, &mod.r2ModM, mod)
	mod.c0 = Element{v: c0Mres, m: mod}
}

// findNonResidue returns the smallest small positive integer that is a
// quadratic non-residue modulo mBig, via trial and Euler's criterion.
// This runs once per modulus, on public data, at load time.
func findNonResidue(mBig *big.Int) *big.Int {
	exp := new(big.Int).Sub(mBig, big.NewInt(1))
	exp.Rsh(exp, 1)
	for candidate := int64(2); ; candidate++ {
		c := big.NewInt(candidate)
		if c.Cmp(mBig) >= 0 {
			// Every modulus has a non-residue below itself; this bound
			// is only a safety net against a malformed modulus.
			panic(InvariantError{Msg: "no quadratic non-residue found below the modulus"})
		}
		euler := new(big.Int).Exp(c, exp, mBig)
		if euler.Cmp(new(big.Int).Sub(mBig, big.NewInt(1))) == 0 {
			return c
		}
	}
}

// Sqrt computes a square root of a modulo M via constant-time
// Tonelli-Shanks, returning the root and a SecretBool reporting whether
// a was in fact a quadratic residue. The returned root is the one
// meaningful value only when the flag is true, per §4.4.
//
// The algorithm runs exactly mod.s-1 outer rounds and, within each
// round, exactly mod.s-1 inner squarings twice over (once to locate the
// order of t, once to build the matching power of c) — a fixed amount
// of work per modulus, independent of a, since mod.s is public and
// fixed once the modulus is built. A round whose effect would be
// incorrect because the algorithm has already converged (t == 1) is
// masked out with CCopy rather than skipped with a branch, so the
// control flow itself never depends on a.
func Sqrt(a *Element) (root Element, isSquare ct.SecretBool) {
	mod := a.m

	// A zero a yields t = r = 0, which the rounds below leave at 0; it is
	// reported as a square without a branch.
	isZero := a.IsZero()

	c := mod.c0
	t := powPublicExp(a, &mod.qBits, mod.bits)
	r := powPublicExp(a, &mod.rExpBits, mod.bits)

	s := mod.s
	mCur := ct.SecretWord(s)
	done := t.IsOne()

	for round := 0; round < s-1; round++ {
		// Find the least i in [1, s) with t^(2^i) == 1. Scanning the
		// fixed public range [1, s) rather than [1, mCur) still finds
		// the correct (secret) least i: once t's true order is
		// reached, every later probe also reports "one", so the first
		// hit is unaffected by scanning past it.
		found := ct.CFalse()
		foundI := ct.SecretWord(0)
		probe := t
		for i := 1; i < s; i++ {
			Square(&probe, &probe)
			isOne := probe.IsOne()
			takeNow := found.Not().And(isOne)
			foundI = ct.Mux(takeNow, ct.SecretWord(i), foundI)
			found = found.Or(takeNow)
		}

		// b = c^(2^(mCur-foundI-1)). Every possible shift in [0, s-1]
		// is computed by repeatedly squaring c and the matching
		// checkpoint is latched via CCopy, so the number of squarings
		// performed never depends on the (secret) target shift.
		target := mCur.Sub(foundI).Sub(ct.SecretWord(1))
		b := c
		cur := c
		for j := 1; j <= s-1; j++ {
			Square(&cur, &cur)
			isTarget := ct.Eq(ct.SecretWord(j), target)
			b.CCopy(isTarget, &cur)
		}

		var newR, newC, newT Element
		Mul(&newR, &r, &b)
		Square(&newC, &b)
		Mul(&newT, &t, &newC)

		apply := done.Not()
		r.CCopy(apply, &newR)
		c.CCopy(apply, &newC)
		t.CCopy(apply, &newT)
		mCur = ct.Mux(apply, foundI, mCur)

		done = done.Or(t.IsOne())
	}

	isSquare = t.IsOne().Or(isZero)
	return r, isSquare
}

// SqrtCheck is the checked sibling of Sqrt, reporting NotSquare for a
// non-residue instead of a boolean flag (mirrors InvCheck's relationship
// to Inv, per SPEC_FULL.md §D.2's pattern applied to §4.4's sqrt).
func SqrtCheck(a *Element) (Element, error) {
	r, isSquare := Sqrt(a)
	if isSquare != ct.CTrue() {
		return Element{}, NotSquare{}
	}
	return r, nil
}

// powPublicExp raises a to the power described by the public exponent
// bits (an exponent bound to the given bit width), via square-and
// -multiply. Used only for the Tonelli-Shanks q and (q+1)/2 exponents,
// both of which are fixed, public, per-modulus constants.
func powPublicExp(a *Element, exp *bigint.BigInt, bits int) Element {
	mod := a.m
	started := false
	var acc Element
	for i := bits - 1; i >= 0; i-- {
		if started {
			Square(&acc, &acc)
		}
		if bitAt(exp, i) {
			if started {
				Mul(&acc, &acc, a)
			} else {
				acc = *a
				started = true
			}
		}
	}
	if !started {
		acc = mod.One()
	}
	return acc
}
