package fp2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-core/bigint"
	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/field"
	"github.com/mratsim/constantine-core/fp2"
)

// blsFpModulus is the BLS12-381 base field prime, spareBits=3, used by
// scenario S6 (§8): Fp2 over BLS12-381 with beta=-1.
const blsFpModulus = "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab"

func bls12381Fp() *field.Modulus { return field.NewModulus(blsFpModulus, 381) }

// smallFp is F7: 7 is 3 mod 4, so -1 is a quadratic non-residue and
// x^2+1 is irreducible, making beta=-1 a valid tower over it.
func smallFp() *field.Modulus { return field.NewModulus("7", 3) }

func TestS6_Fp2OverBLS12381(t *testing.T) {
	base := bls12381Fp()
	tower := fp2.NewTower(base, -1)

	one := tower.One()
	u := fp2.Element{C0: base.Zero(), C1: base.One()}

	var onePlusU, oneMinusU fp2.Element
	fp2.Add(&onePlusU, &one, &u)
	fp2.Sub(&oneMinusU, &one, &u)

	var product fp2.Element
	fp2.Mul(&product, tower, &onePlusU, &oneMinusU)

	var two fp2.Element
	fp2.Double(&two, &one)
	require.Equal(t, ct.CTrue(), fp2.Equal(&product, &two), "(1+u)(1-u) must equal 2")

	var inv, check fp2.Element
	fp2.Inv(&inv, tower, &onePlusU)
	fp2.Mul(&check, tower, &inv, &onePlusU)
	require.Equal(t, ct.CTrue(), fp2.Equal(&check, &one), "inv(1+u)*(1+u) must equal 1")
}

func TestSquareMatchesMul(t *testing.T) {
	base := smallFp()
	tower := fp2.NewTower(base, -1)

	a := fp2.Element{C0: base.FromUint64(3), C1: base.FromUint64(4)}

	var bySquare, byMul fp2.Element
	fp2.Square(&bySquare, tower, &a)
	fp2.Mul(&byMul, tower, &a, &a)

	require.Equal(t, ct.CTrue(), fp2.Equal(&bySquare, &byMul))
}

func TestZeroOneIdentities(t *testing.T) {
	base := smallFp()
	tower := fp2.NewTower(base, -1)

	zero := tower.Zero()
	one := tower.One()
	require.Equal(t, ct.CTrue(), zero.IsZero())
	require.Equal(t, ct.CTrue(), one.IsOne())

	a := fp2.Element{C0: base.FromUint64(2), C1: base.FromUint64(3)}
	var sum fp2.Element
	fp2.Add(&sum, &a, &zero)
	require.Equal(t, ct.CTrue(), fp2.Equal(&sum, &a))

	var prod fp2.Element
	fp2.Mul(&prod, tower, &a, &one)
	require.Equal(t, ct.CTrue(), fp2.Equal(&prod, &a))
}

func TestMarshalRoundTrip(t *testing.T) {
	base := smallFp()
	tower := fp2.NewTower(base, -1)

	a := fp2.Element{C0: base.FromUint64(2), C1: base.FromUint64(4)}

	buf := make([]byte, 2)
	require.NoError(t, a.ToCanonical(buf, bigint.BigEndian))

	back, err := tower.FromCanonical(buf, bigint.BigEndian)
	require.NoError(t, err)
	require.Equal(t, ct.CTrue(), fp2.Equal(&a, &back))
}

func TestMulByNonResidueMatchesMulByU(t *testing.T) {
	base := smallFp()
	tower := fp2.NewTower(base, -1)

	a := fp2.Element{C0: base.FromUint64(5), C1: base.FromUint64(6)}
	u := fp2.Element{C0: base.Zero(), C1: base.One()}

	var byMul, byShortcut fp2.Element
	fp2.Mul(&byMul, tower, &a, &u)
	fp2.MulByNonResidue(&byShortcut, tower, &a)

	require.Equal(t, ct.CTrue(), fp2.Equal(&byMul, &byShortcut))
}
