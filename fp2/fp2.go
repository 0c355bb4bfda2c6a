// Package fp2 implements C7: the quadratic extension tower Fp2 = Fp[u]/(u^2 - beta)
// for a small non-residue beta, built entirely out of field.Element operations.
// Every Fp2 arithmetic primitive inherits its constant-timeness from the
// underlying field package; nothing in this package branches on secret data.
package fp2

import (
	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/field"
)

// Element is a value c0 + c1*u in Fp2<M, beta>, where u^2 = beta and beta
// is a fixed non-residue recorded on the Tower this element belongs to.
type Element struct {
	C0, C1 field.Element
}

// Tower names the irreducible x^2 - beta over a given base Modulus. A
// *Tower is immutable after construction and, like *field.Modulus, safe
// for concurrent use by any number of goroutines.
type Tower struct {
	base *field.Modulus
	beta field.Element
}

// NewTower builds the Fp2 tower x^2 - beta over base, where beta is
// given as a small public integer (a negative value is folded mod the
// base modulus by negating FromUint64(-beta), since betas in practice
// are tiny constants such as -1 or -2).
func NewTower(base *field.Modulus, beta int64) *Tower {
	var b field.Element
	if beta >= 0 {
		b = base.FromUint64(uint64(beta))
	} else {
		pos := base.FromUint64(uint64(-beta))
		field.Neg(&b, &pos)
	}
	return &Tower{base: base, beta: b}
}

// Base returns the tower's base field modulus.
func (t *Tower) Base() *field.Modulus { return t.base }

// Zero returns the additive identity of t.
func (t *Tower) Zero() Element {
	return Element{C0: t.base.Zero(), C1: t.base.Zero()}
}

// One returns the multiplicative identity of t.
func (t *Tower) One() Element {
	return Element{C0: t.base.One(), C1: t.base.Zero()}
}

// FromBase lifts a base-field element into Fp2 as c0 + 0*u.
func (t *Tower) FromBase(c0 field.Element) Element {
	return Element{C0: c0, C1: t.base.Zero()}
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() ct.SecretBool {
	return e.C0.IsZero().And(e.C1.IsZero())
}

// IsOne reports whether e is the multiplicative identity.
func (e *Element) IsOne() ct.SecretBool {
	return e.C0.IsOne().And(e.C1.IsZero())
}

// Equal reports whether a and b represent the same Fp2 value.
func Equal(a, b *Element) ct.SecretBool {
	return field.Equal(&a.C0, &b.C0).And(field.Equal(&a.C1, &b.C1))
}

// CCopy overwrites *e with *src when cond is true, leaving e unchanged
// otherwise.
func (e *Element) CCopy(cond ct.SecretBool, src *Element) {
	e.C0.CCopy(cond, &src.C0)
	e.C1.CCopy(cond, &src.C1)
}

// Add computes r = a+b component-wise, per §4.7.
func Add(r, a, b *Element) {
	field.Add(&r.C0, &a.C0, &b.C0)
	field.Add(&r.C1, &a.C1, &b.C1)
}

// Sub computes r = a-b component-wise.
func Sub(r, a, b *Element) {
	field.Sub(&r.C0, &a.C0, &b.C0)
	field.Sub(&r.C1, &a.C1, &b.C1)
}

// Neg computes r = -a component-wise.
func Neg(r, a *Element) {
	field.Neg(&r.C0, &a.C0)
	field.Neg(&r.C1, &a.C1)
}

// Double computes r = 2*a component-wise.
func Double(r, a *Element) {
	field.Double(&r.C0, &a.C0)
	field.Double(&r.C1, &a.C1)
}

// Conjugate computes r = c0 - c1*u, the Frobenius conjugate over Fp.
func Conjugate(r, a *Element) {
	r.C0 = a.C0
	field.Neg(&r.C1, &a.C1)
}

// Mul computes r = a*b via the Karatsuba schedule from §4.7:
//
//	v0   = a.c0*b.c0
//	v1   = a.c1*b.c1
//	r.c1 = (a.c0+a.c1)*(b.c0+b.c1) - v0 - v1
//	r.c0 = v0 + beta*v1
//
// using three base-field multiplications instead of the schoolbook four.
func Mul(r *Element, tower *Tower, a, b *Element) {
	var v0, v1 field.Element
	field.Mul(&v0, &a.C0, &b.C0)
	field.Mul(&v1, &a.C1, &b.C1)

	var sumA, sumB, cross field.Element
	field.Add(&sumA, &a.C0, &a.C1)
	field.Add(&sumB, &b.C0, &b.C1)
	field.Mul(&cross, &sumA, &sumB)

	var c1 field.Element
	field.Sub(&c1, &cross, &v0)
	field.Sub(&c1, &c1, &v1)

	var betaV1, c0 field.Element
	field.Mul(&betaV1, &tower.beta, &v1)
	field.Add(&c0, &v0, &betaV1)

	r.C0, r.C1 = c0, c1
}

// Square computes r = a*a via the complex-squaring identity from §4.7:
// (c0+c1)*(c0-c1) + 2*c0*c1, plus a (1+beta)*c1^2 correction to c0 so
// that it holds for any beta. It uses four base-field multiplications
// (including the one by beta), the same count as Mul.
func Square(r *Element, tower *Tower, a *Element) {
	var sum, diff field.Element
	field.Add(&sum, &a.C0, &a.C1)
	field.Sub(&diff, &a.C0, &a.C1)

	var prod, c0 field.Element
	field.Mul(&prod, &sum, &diff)
	// (c0+c1)(c0-c1) = c0^2 - c1^2, so the result's c0 = c0^2 + beta*c1^2
	// needs c1^2*(1+beta) folded back in; it does not cancel unless
	// beta = -1, so the general tower must compute it explicitly.
	var c1sq, betaC1sq field.Element
	field.Mul(&c1sq, &a.C1, &a.C1)
	field.Mul(&betaC1sq, &tower.beta, &c1sq)
	field.Add(&c0, &prod, &c1sq)
	field.Add(&c0, &c0, &betaC1sq)

	var c0c1, c1 field.Element
	field.Mul(&c0c1, &a.C0, &a.C1)
	field.Double(&c1, &c0c1)

	r.C0, r.C1 = c0, c1
}

// MulByNonResidue computes r = a*u, the multiplication-by-beta shortcut
// elliptic-curve code over Fp2 needs for twisting: (c0 + c1*u)*u =
// beta*c1 + c0*u.
func MulByNonResidue(r *Element, tower *Tower, a *Element) {
	var newC0 field.Element
	field.Mul(&newC0, &tower.beta, &a.C1)
	r.C0, r.C1 = newC0, a.C0
}

// Norm computes c0^2 - beta*c1^2, the base-field norm used by Inv.
func Norm(tower *Tower, a *Element) field.Element {
	var c0sq, c1sq, betaC1sq, norm field.Element
	field.Square(&c0sq, &a.C0)
	field.Square(&c1sq, &a.C1)
	field.Mul(&betaC1sq, &tower.beta, &c1sq)
	field.Sub(&norm, &c0sq, &betaC1sq)
	return norm
}

// Inv computes r = a^-1 via the norm c0^2 - beta*c1^2, per §4.7:
// (c0 + c1*u)^-1 = (c0 - c1*u) / (c0^2 - beta*c1^2). inv(0) = 0,
// inherited from field.Inv's contract on the zero norm.
func Inv(r *Element, tower *Tower, a *Element) {
	norm := Norm(tower, a)
	var normInv field.Element
	field.Inv(&normInv, &norm)

	field.Mul(&r.C0, &a.C0, &normInv)
	var negC1 field.Element
	field.Neg(&negC1, &a.C1)
	field.Mul(&r.C1, &negC1, &normInv)
}

// Scale computes r = k*a for a small public multiplier k, component-wise.
func Scale(r *Element, a *Element, k uint64) {
	field.Scale(&r.C0, &a.C0, k)
	field.Scale(&r.C1, &a.C1, k)
}

// ToCanonical writes a's two components back to back (c0 then c1), each
// ceil(bits/8) bytes, into out.
func (e *Element) ToCanonical(out []byte, endian bigint.Endian) error {
	half := len(out) / 2
	if err := e.C0.ToCanonical(out[:half], endian); err != nil {
		return err
	}
	return e.C1.ToCanonical(out[half:], endian)
}

// FromCanonical decodes the back-to-back encoding ToCanonical produces.
func (t *Tower) FromCanonical(in []byte, endian bigint.Endian) (Element, error) {
	half := len(in) / 2
	c0, err := t.base.FromCanonical(in[:half], endian)
	if err != nil {
		return Element{}, err
	}
	c1, err := t.base.FromCanonical(in[half:], endian)
	if err != nil {
		return Element{}, err
	}
	return Element{C0: c0, C1: c1}, nil
}
