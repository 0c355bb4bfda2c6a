package ct

import "github.com/mratsim/constantine-core/platform"

// IsMsbSet reports whether the most significant bit of w is set, as a
// SecretBool.
func IsMsbSet(w SecretWord) SecretBool {
	return SecretBool(w.Shr(platform.WordBits - 1))
}

// IsZero reports whether w is the zero word.
func IsZero(w SecretWord) SecretBool {
	// w is nonzero iff w or -w has its msb set: for nonzero w, w and -w
	// agree up to and including w's lowest set bit and are complements
	// above it, so at least one of them has the msb set (both do when
	// that lowest set bit is the msb itself). For w = 0 both are zero.
	return IsMsbSet(w.Or(w.Neg())).Not()
}

// Eq reports whether x == y.
func Eq(x, y SecretWord) SecretBool {
	return IsZero(x.Xor(y))
}

// Lt reports whether x < y, as the msb of x ^ ((x ^ y) | ((x - y) ^ y)).
func Lt(x, y SecretWord) SecretBool {
	return IsMsbSet(x.Xor(x.Xor(y).Or(x.Sub(y).Xor(y))))
}

// Mux selects x when cond is true, y otherwise, without branching:
// y ^ ((-cond) & (x ^ y)).
func Mux(cond SecretBool, x, y SecretWord) SecretWord {
	mask := SecretWord(0).Sub(SecretWord(cond))
	return y.Xor(mask.And(x.Xor(y)))
}

// CMov overwrites *dst with src when cond is true, leaving it unchanged
// otherwise.
func CMov(cond SecretBool, dst *SecretWord, src SecretWord) {
	*dst = Mux(cond, src, *dst)
}

// CSwap exchanges *a and *b when cond is true, leaving them unchanged
// otherwise.
func CSwap(cond SecretBool, a, b *SecretWord) {
	mask := SecretWord(0).Sub(SecretWord(cond))
	t := mask.And(a.Xor(*b))
	*a = a.Xor(t)
	*b = b.Xor(t)
}

// CNeg returns -w mod 2^WordBits when cond is true, w otherwise.
func CNeg(cond SecretBool, w SecretWord) SecretWord {
	return Mux(cond, w.Neg(), w)
}

// MulAcc computes (*hi, *lo) += a*b, propagating the carry out of the
// low-word addition into hi. This is C2's scalar mulAcc primitive;
// bigint's mulAddRow is its generalization to a whole limb row.
//
// Safety: with hi = 0 on entry (as mulAddRow passes it), lo < 2^W and
// a*b <= (2^W-1)^2, the combined value lo+a*b is at most (2^W-1) +
// (2^W-1)^2 = 2^(2W)-2^W, which fits in 2*W bits, so the resulting hi
// does not overflow a word. For a nonzero hi on entry, the addition into
// hi wraps modulo 2^W.
func MulAcc(hi, lo *SecretWord, a, b SecretWord) {
	h, l := MulHiLo(a, b)
	sum, carry := AddC(0, *lo, l)
	*lo = sum
	*hi = hi.Add(h).Add(carry)
}

// SecretLookup scans every entry of table and returns table[index],
// touching every element so that memory-access patterns do not depend
// on index. index must be < len(table); table is assumed small (a few
// dozen entries at most — this is a linear scan, not a hash lookup).
func SecretLookup(table []SecretWord, index SecretWord) SecretWord {
	var result SecretWord
	for i, entry := range table {
		hit := Eq(index, SecretWord(i))
		result = Mux(hit, entry, result)
	}
	return result
}
