package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/field"
)

// TestS1_F5 exercises scenario S1 (§8): modulus 5, a=3, b=4.
func TestS1_F5(t *testing.T) {
	m := field.NewModulus("5", 3)
	a := m.FromUint64(3)
	b := m.FromUint64(4)
	two := m.FromUint64(2)

	var sum, prod field.Element
	field.Add(&sum, &a, &b)
	field.Mul(&prod, &a, &b)

	require.Equal(t, ct.CTrue(), field.Equal(&sum, &two))
	require.Equal(t, ct.CTrue(), field.Equal(&prod, &two))

	var inv field.Element
	field.Inv(&inv, &a)
	require.Equal(t, ct.CTrue(), field.Equal(&inv, &two))

	four := m.FromUint64(4)
	root, isSquare := field.Sqrt(&four)
	require.Equal(t, ct.CTrue(), isSquare)
	var check field.Element
	field.Square(&check, &root)
	require.Equal(t, ct.CTrue(), field.Equal(&check, &four))

	_, isSquare = field.Sqrt(&two)
	require.Equal(t, ct.CFalse(), isSquare)
}

// TestS2_Secp256k1Overflow exercises scenario S2 (§8): spareBits=0
// forces finalSubMayOverflow on both add and multiply, for a=1,
// b=p-1.
func TestS2_Secp256k1Overflow(t *testing.T) {
	m := field.NewModulus(secp256k1Modulus, 256)
	require.Equal(t, 0, m.SpareBits())

	one := m.One()
	zero := m.Zero()
	var pMinus1 field.Element
	field.Neg(&pMinus1, &one)

	var sum field.Element
	field.Add(&sum, &one, &pMinus1)
	require.Equal(t, ct.CTrue(), field.Equal(&sum, &zero))

	var prod field.Element
	field.Mul(&prod, &one, &pMinus1)
	require.Equal(t, ct.CTrue(), field.Equal(&prod, &pMinus1))

	pBig, _ := new(big.Int).SetString(secp256k1Modulus[2:], 16)
	pMinus1Big := new(big.Int).Sub(pBig, big.NewInt(1))
	buf := make([]byte, 32)
	require.NoError(t, pMinus1.ToCanonical(buf, bigint.BigEndian))
	require.Equal(t, pMinus1Big.Bytes(), buf)
}

func TestRingAxioms(t *testing.T) {
	m := field.NewModulus(bn254FrModulus, 254)
	a := m.FromUint64(17)
	b := m.FromUint64(23)
	c := m.FromUint64(31)
	zero := m.Zero()
	one := m.One()

	var ab, ba field.Element
	field.Add(&ab, &a, &b)
	field.Add(&ba, &b, &a)
	require.Equal(t, ct.CTrue(), field.Equal(&ab, &ba))

	var abc1, bc, abc2 field.Element
	field.Add(&abc1, &ab, &c)
	field.Add(&bc, &b, &c)
	field.Add(&abc2, &a, &bc)
	require.Equal(t, ct.CTrue(), field.Equal(&abc1, &abc2))

	var lhs, bPlusC, ab2, ac2 field.Element
	field.Add(&bPlusC, &b, &c)
	field.Mul(&lhs, &a, &bPlusC)
	field.Mul(&ab2, &a, &b)
	field.Mul(&ac2, &a, &c)
	var rhs field.Element
	field.Add(&rhs, &ab2, &ac2)
	require.Equal(t, ct.CTrue(), field.Equal(&lhs, &rhs), "distributivity")

	var mulAB, mulBA field.Element
	field.Mul(&mulAB, &a, &b)
	field.Mul(&mulBA, &b, &a)
	require.Equal(t, ct.CTrue(), field.Equal(&mulAB, &mulBA), "commutativity")

	var aTimesOne field.Element
	field.Mul(&aTimesOne, &a, &one)
	require.Equal(t, ct.CTrue(), field.Equal(&aTimesOne, &a))

	var aPlusZero field.Element
	field.Add(&aPlusZero, &a, &zero)
	require.Equal(t, ct.CTrue(), field.Equal(&aPlusZero, &a))

	var negA, aPlusNegA field.Element
	field.Neg(&negA, &a)
	field.Add(&aPlusNegA, &a, &negA)
	require.Equal(t, ct.CTrue(), field.Equal(&aPlusNegA, &zero))
}

const bn254FrModulus = "0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001"

func TestInvZeroIsZero(t *testing.T) {
	m := field.NewModulus("5", 3)
	zero := m.Zero()
	var inv field.Element
	field.Inv(&inv, &zero)
	require.Equal(t, ct.CTrue(), field.Equal(&inv, &zero))

	_, err := field.InvCheck(&zero)
	require.ErrorIs(t, err, field.NotInvertible{})
}

func TestMarshalRoundTripS5(t *testing.T) {
	// S5: BLS12-381 Fr (255 bits, spareBits=1); serialize -a and verify
	// its little-endian encoding equals p-a in bytes.
	m := field.NewModulus(bls12381FrModulus, 255)
	require.Equal(t, 1, m.SpareBits())

	a := m.FromUint64(123456789)
	var negA field.Element
	field.Neg(&negA, &a)

	buf := make([]byte, 32)
	require.NoError(t, negA.ToCanonical(buf, bigint.LittleEndian))

	pBig, _ := new(big.Int).SetString(bls12381FrModulus[2:], 16)
	want := new(big.Int).Sub(pBig, big.NewInt(123456789))
	wantBytes := want.Bytes()
	wantLE := make([]byte, 32)
	for i, b := range wantBytes {
		wantLE[len(wantBytes)-1-i] = b
	}
	require.Equal(t, wantLE, buf)
}

func TestNonCanonicalRejection(t *testing.T) {
	m := field.NewModulus("5", 3)
	_, err := m.FromCanonical([]byte{5}, bigint.BigEndian)
	require.Error(t, err)

	v, err := m.FromCanonical([]byte{4}, bigint.BigEndian)
	require.NoError(t, err)
	require.Equal(t, ct.CTrue(), field.Equal(&v, refElem(m, 4)))
}

func refElem(m *field.Modulus, u uint64) *field.Element {
	e := m.FromUint64(u)
	return &e
}
