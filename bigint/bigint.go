// Package bigint implements C3: fixed-capacity, constant-time
// multi-precision integers built on top of ct's carry/borrow chain. Go
// 1.21 has no const generics, so a BigInt<N> parametrized on its limb
// count cannot be expressed directly; instead BigInt carries a fixed
// backing array sized to the largest modulus this module is expected to
// support (MaxLimbs) plus an active limb count, the same fixed-capacity
// approach fiat-crypto-generated code and filippo.io/nistec take for a
// concrete modulus. See DESIGN.md Open Question O2.
package bigint

import (
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/platform"
)

// MaxLimbs bounds the number of limbs any BigInt in this module can
// hold. A single operand up to 384 bits (e.g. BLS12-381's Fp) needs 6
// 64-bit limbs or 12 32-bit limbs; Prod/Square need a double-width
// result for the widest of those operands, so MaxLimbs must cover 2x
// the 32-bit single-operand count, not just the single-operand count
// itself.
const MaxLimbs = 24

// BigInt is an unsigned, fixed-capacity multi-precision integer stored
// little-endian (limbs[0] is least significant). Only the first N
// limbs, where N = NumLimbs(), are significant; limbs beyond N must be
// kept zero by every operation in this package.
type BigInt struct {
	limbs [MaxLimbs]ct.SecretWord
	n     int
}

// New returns a zero-valued BigInt with n active limbs.
func New(n int) BigInt {
	return BigInt{n: n}
}

// NumLimbs returns the number of active limbs.
func (a *BigInt) NumLimbs() int { return a.n }

// SetN sets the active limb count. Callers must zero any limbs beyond
// the new count themselves if shrinking.
func (a *BigInt) SetN(n int) { a.n = n }

// Limb returns the i'th limb (0 = least significant).
func (a *BigInt) Limb(i int) ct.SecretWord { return a.limbs[i] }

// SetLimb sets the i'th limb.
func (a *BigInt) SetLimb(i int, w ct.SecretWord) { a.limbs[i] = w }

// Words returns the active limbs as a slice backed by a's own array.
// Callers must not retain the slice past a's next mutation.
func (a *BigInt) Words() []ct.SecretWord { return a.limbs[:a.n] }

// FromUint64 returns an n-limb BigInt holding the small public value u.
func FromUint64(u uint64, n int) BigInt {
	r := New(n)
	r.limbs[0] = ct.SecretWord(u)
	if platform.WordBits < 64 {
		r.limbs[1] = ct.SecretWord(u >> 32)
	}
	return r
}

// Add computes r = a+b and returns the carry-out (0 or 1). a, b and r
// must share the same active limb count.
func Add(r, a, b *BigInt) ct.SecretWord {
	n := a.n
	r.n = n
	var carry ct.SecretWord
	for i := 0; i < n; i++ {
		r.limbs[i], carry = ct.AddC(carry, a.limbs[i], b.limbs[i])
	}
	return carry
}

// Sub computes r = a-b and returns the borrow-out (0 or 1). a, b and r
// must share the same active limb count.
func Sub(r, a, b *BigInt) ct.SecretWord {
	n := a.n
	r.n = n
	var borrow ct.SecretWord
	for i := 0; i < n; i++ {
		r.limbs[i], borrow = ct.SubB(borrow, a.limbs[i], b.limbs[i])
	}
	return borrow
}

// CAdd computes r = a+b when cond is true, r = a otherwise, returning
// the carry-out of the addition regardless (the caller decides whether
// to honor it, matching the conditional-accumulate pattern used
// throughout field arithmetic).
func CAdd(cond ct.SecretBool, r, a, b *BigInt) ct.SecretWord {
	var sum BigInt
	carry := Add(&sum, a, b)
	*r = *a
	CCopy(cond, r, &sum)
	return carry
}

// CSub is the conditional sibling of Sub.
func CSub(cond ct.SecretBool, r, a, b *BigInt) ct.SecretWord {
	var diff BigInt
	borrow := Sub(&diff, a, b)
	*r = *a
	CCopy(cond, r, &diff)
	return borrow
}

// Double computes r = 2*a and returns the carry-out.
func Double(r, a *BigInt) ct.SecretWord {
	return Add(r, a, a)
}

// CCopy overwrites *dst with *src, limb by limb, when cond is true,
// leaving dst unchanged otherwise. dst and src must share the same
// active limb count.
func CCopy(cond ct.SecretBool, dst, src *BigInt) {
	for i := 0; i < dst.n; i++ {
		ct.CMov(cond, &dst.limbs[i], src.limbs[i])
	}
}

// CNeg computes r = -a mod 2^(WordBits*n) when cond is true, r = a
// otherwise (two's-complement negation of the limb array, used to
// implement modular negation one level up in field.Neg/CNeg).
func CNeg(cond ct.SecretBool, r, a *BigInt) {
	n := a.n
	r.n = n
	var borrow ct.SecretWord
	for i := 0; i < n; i++ {
		d, bw := ct.SubB(borrow, 0, a.limbs[i])
		r.limbs[i] = ct.Mux(cond, d, a.limbs[i])
		borrow = bw
	}
}

// IsZero reports whether a is the zero value.
func IsZero(a *BigInt) ct.SecretBool {
	acc := ct.SecretWord(0)
	for i := 0; i < a.n; i++ {
		acc = acc.Or(a.limbs[i])
	}
	return ct.IsZero(acc)
}

// Equal reports whether a == b. a and b must share the same active limb
// count.
func Equal(a, b *BigInt) ct.SecretBool {
	acc := ct.SecretWord(0)
	for i := 0; i < a.n; i++ {
		acc = acc.Or(a.limbs[i].Xor(b.limbs[i]))
	}
	return ct.IsZero(acc)
}

// Compare reports whether a < b and whether a == b, scanning every limb
// from most to least significant so that the number of limbs examined
// never depends on where a and b first differ.
func Compare(a, b *BigInt) (less, equal ct.SecretBool) {
	n := a.n
	equal = ct.CTrue()
	less = ct.CFalse()
	decided := ct.CFalse()
	for i := n - 1; i >= 0; i-- {
		eqWord := ct.Eq(a.limbs[i], b.limbs[i])
		ltWord := ct.Lt(a.limbs[i], b.limbs[i])
		takeNow := decided.Not()
		less = ct.SecretBool(ct.Mux(takeNow, ct.SecretWord(ltWord), ct.SecretWord(less)))
		equal = equal.And(eqWord)
		decided = decided.Or(takeNow.And(eqWord.Not()))
	}
	return less, equal
}

// CompareVartime is the variable-time sibling of Compare, for use only
// by test and property-oracle code where operands are fixtures, not
// secrets (SPEC_FULL.md §D.4).
func CompareVartime(a, b *BigInt) int {
	for i := a.n - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Prod computes the full double-width product r = a*b. r must have
// 2*a.n active limbs; a and b must share the same active limb count,
// which must be at most MaxLimbs/2.
func Prod(r, a, b *BigInt) {
	n := a.n
	r.n = 2 * n
	for i := 0; i < r.n; i++ {
		r.limbs[i] = 0
	}
	for i := 0; i < n; i++ {
		carry := mulAddRow(r.limbs[i:i+n], a.limbs[:n], b.limbs[i])
		r.limbs[i+n] = carry
	}
}

// Square computes r = a*a. It is expressed in terms of Prod rather than
// exploiting the symmetry of squaring, which the one-level-up
// field.Square is free to do instead when it matters for performance.
func Square(r, a *BigInt) {
	Prod(r, a, a)
}

// mulAddRow computes z[i] += x[i]*d for every i, propagating carry
// across the row via ct.MulAcc, and returns the final carry-out. This
// is the generalization of C2's mulAcc primitive to a whole limb
// vector, and is the core building block of both Prod and field's CIOS
// multiplication.
func mulAddRow(z []ct.SecretWord, x []ct.SecretWord, d ct.SecretWord) ct.SecretWord {
	var carry ct.SecretWord
	for i := range x {
		hi := ct.SecretWord(0)
		lo := z[i]
		ct.MulAcc(&hi, &lo, x[i], d)
		sum, c := ct.AddC(0, lo, carry)
		z[i] = sum
		carry = hi.Add(c)
	}
	return carry
}

// MulAddRow exports mulAddRow for use by the field package's CIOS
// Montgomery multiplication, which needs the same row-accumulate
// primitive operating on a shared scratch buffer.
func MulAddRow(z []ct.SecretWord, x []ct.SecretWord, d ct.SecretWord) ct.SecretWord {
	return mulAddRow(z, x, d)
}
