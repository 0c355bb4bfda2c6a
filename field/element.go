// Package field implements C4 (modular limb operations), C5 (Montgomery
// metadata) and C6 (the field element API): constant-time arithmetic
// modulo an arbitrary odd modulus, represented internally in Montgomery
// form.
package field

import (
	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
)

// Element is a value in Fp for some *Modulus, stored internally in
// Montgomery form (v = a*R mod M for the represented value a). Every
// arithmetic operation on an Element keeps its internal representative
// in [0, M), so two Elements over the same Modulus compare equal with a
// plain limb-wise comparison (Equal) and never need an explicit
// normalization step.
type Element struct {
	v bigint.BigInt
	m *Modulus
}

// Modulus returns the field this element belongs to.
func (e *Element) Modulus() *Modulus { return e.m }

// Zero returns the additive identity of m.
func (m *Modulus) Zero() Element {
	return Element{v: bigint.New(m.limbs), m: m}
}

// One returns the multiplicative identity of m.
func (m *Modulus) One() Element {
	return Element{v: m.rModM, m: m}
}

// FromUint64 returns the Montgomery-domain Element representing the
// small public value u.
func (m *Modulus) FromUint64(u uint64) Element {
	t := bigint.FromUint64(u, m.limbs)
	var r bigint.BigInt
	mulMontgomery(&r, &t, &m.r2ModM, m)
	return Element{v: r, m: m}
}

// FromCanonical decodes the canonical byte encoding of a value strictly
// less than M and returns its Montgomery-domain Element. It returns
// ValueError if the encoding is malformed or represents a value >= M.
func (m *Modulus) FromCanonical(in []byte, endian bigint.Endian) (Element, error) {
	var t bigint.BigInt
	if err := bigint.FromBytes(&t, in, m.bits, endian); err != nil {
		return Element{}, ValueError{Msg: err.Error()}
	}
	less, _ := bigint.Compare(&t, &m.m)
	if less != ct.CTrue() {
		return Element{}, ValueError{Msg: "value is not strictly less than the modulus"}
	}
	var r bigint.BigInt
	mulMontgomery(&r, &t, &m.r2ModM, m)
	return Element{v: r, m: m}, nil
}

// FromMontgomeryLimbs wraps an already-Montgomery-form limb array
// (produced by a collaborator package that manages its own limbs, such
// as a curve-arithmetic layer) as an Element. Callers are responsible
// for the invariant that limbs already represent a*R mod M.
func (m *Modulus) FromMontgomeryLimbs(limbs bigint.BigInt) Element {
	return Element{v: limbs, m: m}
}

// ToCanonical writes the canonical big/little-endian encoding of e
// (ceil(bits/8) bytes) into out.
func (e *Element) ToCanonical(out []byte, endian bigint.Endian) error {
	var t bigint.BigInt
	wide := wideFromNarrow(&e.v)
	redc(&t, &wide, e.m)
	return bigint.ToBytes(out, &t, e.m.bits, endian)
}

// MontgomeryLimbs exposes e's raw Montgomery-domain limbs, for
// collaborator packages (curve arithmetic, pairings) that need to manage
// limb storage themselves.
func (e *Element) MontgomeryLimbs() bigint.BigInt { return e.v }

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() ct.SecretBool {
	return bigint.IsZero(&e.v)
}

// IsOne reports whether e is the multiplicative identity.
func (e *Element) IsOne() ct.SecretBool {
	return bigint.Equal(&e.v, &e.m.rModM)
}

// Equal reports whether a and b represent the same field value. a and b
// must share the same Modulus.
func Equal(a, b *Element) ct.SecretBool {
	return bigint.Equal(&a.v, &b.v)
}

// EqualVartime is the variable-time sibling of Equal, for test and
// property-oracle code only (SPEC_FULL.md §D.4).
func EqualVartime(a, b *Element) bool {
	return bigint.CompareVartime(&a.v, &b.v) == 0
}

// CCopy overwrites *e with *src when cond is true, leaving e unchanged
// otherwise.
func (e *Element) CCopy(cond ct.SecretBool, src *Element) {
	bigint.CCopy(cond, &e.v, &src.v)
}

// Add computes r = a+b mod M.
func Add(r, a, b *Element) {
	var sum bigint.BigInt
	carry := bigint.Add(&sum, &a.v, &b.v)
	finalSub(&r.v, &sum, carry, a.m)
	r.m = a.m
}

// Sub computes r = a-b mod M.
func Sub(r, a, b *Element) {
	var diff bigint.BigInt
	borrow := bigint.Sub(&diff, &a.v, &b.v)
	var corrected bigint.BigInt
	bigint.Add(&corrected, &diff, &a.m.m)
	r.v = diff
	bigint.CCopy(ct.SecretBool(borrow), &r.v, &corrected)
	r.m = a.m
}

// Neg computes r = -a mod M.
func Neg(r, a *Element) {
	zero := a.m.Zero()
	Sub(r, &zero, a)
}

// CNeg computes r = -a mod M when cond is true, r = a otherwise.
func CNeg(cond ct.SecretBool, r, a *Element) {
	var neg Element
	Neg(&neg, a)
	r.v = a.v
	r.m = a.m
	bigint.CCopy(cond, &r.v, &neg.v)
}

// Double computes r = 2*a mod M.
func Double(r, a *Element) {
	Add(r, a, a)
}

// TimesThree computes r = 3*a mod M, per SPEC_FULL.md §D.3.
func TimesThree(r, a *Element) {
	var twice Element
	Double(&twice, a)
	Add(r, &twice, a)
}

// TimesFour computes r = 4*a mod M, per SPEC_FULL.md §D.3.
func TimesFour(r, a *Element) {
	var twice Element
	Double(&twice, a)
	Double(r, &twice)
}

// Scale computes r = k*a mod M for a small public multiplier k, via
// square-and-multiply style repeated doubling/addition over k's public
// binary expansion.
func Scale(r *Element, a *Element, k uint64) {
	acc := a.m.Zero()
	base := *a
	for k > 0 {
		if k&1 == 1 {
			Add(&acc, &acc, &base)
		}
		Double(&base, &base)
		k >>= 1
	}
	*r = acc
}

// Mul computes r = a*b mod M (Montgomery-domain multiplication via
// CIOS).
func Mul(r, a, b *Element) {
	mulMontgomery(&r.v, &a.v, &b.v, a.m)
	r.m = a.m
}

// Square computes r = a*a mod M. It is expressed via bigint.Square (a
// plain Prod(a, a) that does not exploit the a==b symmetry) followed by a
// reduction-only REDC pass, distinct from Mul's interleaved CIOS path.
func Square(r, a *Element) {
	var wide bigint.BigInt
	bigint.Square(&wide, &a.v)
	redc(&r.v, &wide, a.m)
	r.m = a.m
}

// SquareRepeated computes r = a^(2^k) mod M via k repeated squarings. k
// is a public iteration count.
func SquareRepeated(r, a *Element, k int) {
	*r = *a
	for i := 0; i < k; i++ {
		Square(r, r)
	}
}

// Prod computes r as the product of every element in factors.
func Prod(r *Element, factors []Element) {
	if len(factors) == 0 {
		return
	}
	acc := factors[0]
	for i := 1; i < len(factors); i++ {
		Mul(&acc, &acc, &factors[i])
	}
	*r = acc
}

// wideFromNarrow pads a's limbs with a zero high half so it can be fed
// to redc, which always expects a 2n-limb input (the REDC reduction
// formula treats an n-limb value as a 2n-limb one with a zero top half).
func wideFromNarrow(a *bigint.BigInt) bigint.BigInt {
	n := a.NumLimbs()
	wide := bigint.New(2 * n)
	for i := 0; i < n; i++ {
		wide.SetLimb(i, a.Limb(i))
	}
	for i := n; i < 2*n; i++ {
		wide.SetLimb(i, 0)
	}
	return wide
}
