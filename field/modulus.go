package field

import (
	"math/big"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/platform"
)

// Modulus holds the Montgomery metadata (C5) for one prime (or, for
// Fp2's purposes, prime-power-free) modulus M: its canonical value, its
// Montgomery radix constants, and the precomputed data the inversion and
// square-root algorithms need. A *Modulus is immutable after
// construction and safe for concurrent use by any number of goroutines,
// per §5.
type Modulus struct {
	bits       int
	limbs      int
	spareBits  int
	decimalKey string

	m      bigint.BigInt // M itself, plain (not Montgomery) form
	m0ninv ct.SecretWord // -M[0]^-1 mod 2^WordBits

	rModM  bigint.BigInt // R mod M        (Montgomery form of 1)
	r2ModM bigint.BigInt // R^2 mod M      (used to enter Montgomery form)
	r3ModM bigint.BigInt // R^3 mod M      (precomputed; not read by this package's arithmetic)

	invExponent bigint.BigInt // M-2, the Fermat inversion exponent

	// Tonelli-Shanks precomputation: M-1 = q * 2^s, q odd.
	s        int
	qBits    bigint.BigInt // q, as an exponent
	rExpBits bigint.BigInt // (q+1)/2
	c0       Element       // a fixed quadratic non-residue raised to the q'th power, in Montgomery form
}

// NewModulus parses a modulus given in decimal or 0x-prefixed
// hexadecimal, validates it against the declared bit width, and
// precomputes its Montgomery metadata. bits must equal the modulus's own
// bit length (the position of its most significant set bit, 1-indexed).
//
// A malformed numeral or a modulus failing the §4.5 validity check
// (odd, greater than 1, MSB at the declared position) is a programmer
// error: NewModulus panics with an InvariantError, it does not return
// one, per §7 and SPEC_FULL.md §D.1.
func NewModulus(decimalOrHex string, bits int) *Modulus {
	mBig, ok := parseBig(decimalOrHex)
	if !ok {
		panic(InvariantError{Msg: "modulus string \"" + decimalOrHex + "\" is not a valid integer literal"})
	}
	if mBig.Sign() <= 0 || mBig.Cmp(big.NewInt(1)) <= 0 {
		panic(InvariantError{Msg: "modulus must be greater than 1"})
	}
	if mBig.Bit(0) == 0 {
		panic(InvariantError{Msg: "modulus must be odd"})
	}
	if mBig.BitLen() != bits {
		panic(InvariantError{Msg: "modulus bit length does not match the declared bit width"})
	}

	limbs := (bits + platform.WordBits - 1) / platform.WordBits
	// Montgomery multiplication's double-width scratch (bigint.Prod,
	// exercised via redc) needs 2*limbs limbs, not just limbs.
	if 2*limbs > bigint.MaxLimbs {
		panic(InvariantError{Msg: "modulus needs more limbs than MaxLimbs supports"})
	}

	mod := &Modulus{
		bits:       bits,
		limbs:      limbs,
		spareBits:  limbs*platform.WordBits - bits,
		decimalKey: mBig.String(),
	}
	mod.m = bigIntFromBig(mBig, limbs)
	mod.m0ninv = computeM0Inv(ct.SecretWord(platform.Word(mod.m.Limb(0))))

	mod.rModM, mod.r2ModM, mod.r3ModM = montgomeryConstants(mBig, bits, limbs)

	m2 := new(big.Int).Sub(mBig, big.NewInt(2))
	mod.invExponent = bigIntFromBig(m2, limbs)

	mod.precomputeSqrt(mBig, limbs)

	log.Debug().
		Int("bits", bits).
		Int("limbs", limbs).
		Int("spareBits", mod.spareBits).
		Str("modulus", mod.decimalKey).
		Msg("field: Montgomery metadata precomputed")

	return mod
}

// Bits returns the modulus's declared bit width.
func (m *Modulus) Bits() int { return m.bits }

// NumLimbs returns the modulus's limb count.
func (m *Modulus) NumLimbs() int { return m.limbs }

// SpareBits returns the number of leading zero bits above the modulus's
// own bit width within its limb array (wordBits*limbs - bits).
func (m *Modulus) SpareBits() int { return m.spareBits }

func parseBig(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(s, base)
	return v, ok
}

func bigIntFromBig(x *big.Int, limbs int) bigint.BigInt {
	r := bigint.New(limbs)
	wb := platform.WordBytes
	buf := make([]byte, limbs*wb)
	bytesBE := x.Bytes()
	copy(buf[len(buf)-len(bytesBE):], bytesBE)
	// buf is big-endian, word-aligned; decode each word from the tail.
	for i := 0; i < limbs; i++ {
		start := len(buf) - (i+1)*wb
		le := make([]byte, wb)
		for j := 0; j < wb; j++ {
			le[j] = buf[start+wb-1-j]
		}
		r.SetLimb(i, ct.SecretWord(platform.GetWordLE(le)))
	}
	return r
}

// computeM0Inv computes -(m0^-1) mod 2^WordBits via Hensel lifting:
// each iteration of x <- x*(2 - m0*x) doubles the number of correct
// low-order bits, starting from the single correct bit given by m0 being
// odd.
func computeM0Inv(m0 ct.SecretWord) ct.SecretWord {
	x := ct.SecretWord(1)
	for i := 0; i < platform.WordBitsLog2; i++ {
		x = x.Mul(ct.SecretWord(2).Sub(m0.Mul(x)))
	}
	return x.Neg()
}

// montgomeryConstants computes R mod M, R^2 mod M and R^3 mod M by
// iterated modular doubling, per §9's description, where
// R = 2^(WordBits*limbs).
func montgomeryConstants(mBig *big.Int, bits, limbs int) (r, r2, r3 bigint.BigInt) {
	wn := platform.WordBits * limbs

	acc := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	acc.Mod(acc, mBig)
	doublings := wn - (bits - 1)
	doubleModBig(acc, mBig, doublings)
	rBig := new(big.Int).Set(acc)

	r2Big := new(big.Int).Set(rBig)
	doubleModBig(r2Big, mBig, wn)

	r3Big := new(big.Int).Set(r2Big)
	doubleModBig(r3Big, mBig, wn)

	return bigIntFromBig(rBig, limbs), bigIntFromBig(r2Big, limbs), bigIntFromBig(r3Big, limbs)
}

func doubleModBig(acc, mBig *big.Int, times int) {
	for i := 0; i < times; i++ {
		acc.Lsh(acc, 1)
		if acc.Cmp(mBig) >= 0 {
			acc.Sub(acc, mBig)
		}
	}
}
