package field_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/field"
)

// TestS4_BN254RandomPairs exercises scenario S4 (§8): 1000 random pairs
// over BN254 Fr, checking (a+b)(a-b) == a^2-b^2 and (a*b)*inv(b) == a
// for nonzero b.
func TestS4_BN254RandomPairs(t *testing.T) {
	m := field.NewModulus(bn254FrModulus, 254)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("(a+b)(a-b) == a*a - b*b", prop.ForAll(
		func(au, bu uint64) bool {
			a := m.FromUint64(au)
			b := m.FromUint64(bu)

			var sum, diff, lhs field.Element
			field.Add(&sum, &a, &b)
			field.Sub(&diff, &a, &b)
			field.Mul(&lhs, &sum, &diff)

			var aa, bb, rhs field.Element
			field.Square(&aa, &a)
			field.Square(&bb, &b)
			field.Sub(&rhs, &aa, &bb)

			return field.Equal(&lhs, &rhs) == ct.CTrue()
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("(a*b)*inv(b) == a for nonzero b", prop.ForAll(
		func(au, buRaw uint64) bool {
			a := m.FromUint64(au)
			b := m.FromUint64(buRaw)
			if b.IsZero() == ct.CTrue() {
				return true // only buRaw == 0 gives a zero b; a uint64 cannot reach the 254-bit modulus
			}

			var ab, bInv, rhs field.Element
			field.Mul(&ab, &a, &b)
			field.Inv(&bInv, &b)
			field.Mul(&rhs, &ab, &bInv)

			return field.Equal(&rhs, &a) == ct.CTrue()
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	mBig, _ := new(big.Int).SetString(bn254FrModulus[2:], 16)
	var mLimbs bigint.BigInt
	if err := bigint.FromBytes(&mLimbs, mBig.FillBytes(make([]byte, 32)), 254, bigint.BigEndian); err != nil {
		t.Fatal(err)
	}

	properties.Property("every arithmetic result is held in [0, M)", prop.ForAll(
		func(au, bu uint64) bool {
			a := m.FromUint64(au)
			b := m.FromUint64(bu)
			var sum, prod field.Element
			field.Add(&sum, &a, &b)
			field.Mul(&prod, &a, &b)

			sumLimbs, prodLimbs := sum.MontgomeryLimbs(), prod.MontgomeryLimbs()
			if bigint.CompareVartime(&sumLimbs, &mLimbs) >= 0 || bigint.CompareVartime(&prodLimbs, &mLimbs) >= 0 {
				return false
			}

			var sumBytes [32]byte
			var prodBytes [32]byte
			return sum.ToCanonical(sumBytes[:], 0) == nil && prod.ToCanonical(prodBytes[:], 0) == nil
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestSquareRootProperty checks property 4 (§8) across random residues:
// if Sqrt reports true, the root squares back to the input.
func TestSquareRootProperty(t *testing.T) {
	m := field.NewModulus(bn254FrModulus, 254)

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("sqrt(a*a) squares back to a*a", prop.ForAll(
		func(au uint64) bool {
			a := m.FromUint64(au)
			var asq field.Element
			field.Square(&asq, &a)

			root, isSquare := field.Sqrt(&asq)
			if isSquare != ct.CTrue() {
				return false // a*a is always a residue
			}
			var back field.Element
			field.Square(&back, &root)
			return field.Equal(&back, &asq) == ct.CTrue()
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
