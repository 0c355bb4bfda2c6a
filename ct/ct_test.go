package ct_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/platform"
)

func TestIsZero(t *testing.T) {
	require.Equal(t, ct.CTrue(), ct.IsZero(0))
	require.Equal(t, ct.CFalse(), ct.IsZero(1))
	require.Equal(t, ct.CFalse(), ct.IsZero(^ct.SecretWord(0)))
}

func TestMulAcc(t *testing.T) {
	hi, lo := ct.SecretWord(0), ct.SecretWord(3)
	ct.MulAcc(&hi, &lo, 5, 7)
	require.Equal(t, ct.SecretWord(0), hi)
	require.Equal(t, ct.SecretWord(38), lo) // 3 + 5*7

	// A low-word addition that carries must land in hi.
	hi, lo = 0, ^ct.SecretWord(0)
	ct.MulAcc(&hi, &lo, 1, 1)
	require.Equal(t, ct.SecretWord(1), hi)
	require.Equal(t, ct.SecretWord(0), lo)
}

func TestEqLt(t *testing.T) {
	require.Equal(t, ct.CTrue(), ct.Eq(7, 7))
	require.Equal(t, ct.CFalse(), ct.Eq(7, 8))
	require.Equal(t, ct.CTrue(), ct.Lt(3, 5))
	require.Equal(t, ct.CFalse(), ct.Lt(5, 3))
	require.Equal(t, ct.CFalse(), ct.Lt(5, 5))
}

func TestMux(t *testing.T) {
	require.Equal(t, ct.SecretWord(11), ct.Mux(ct.CTrue(), 11, 22))
	require.Equal(t, ct.SecretWord(22), ct.Mux(ct.CFalse(), 11, 22))
}

func TestCSwap(t *testing.T) {
	a, b := ct.SecretWord(1), ct.SecretWord(2)
	ct.CSwap(ct.CFalse(), &a, &b)
	require.Equal(t, ct.SecretWord(1), a)
	require.Equal(t, ct.SecretWord(2), b)
	ct.CSwap(ct.CTrue(), &a, &b)
	require.Equal(t, ct.SecretWord(2), a)
	require.Equal(t, ct.SecretWord(1), b)
}

func TestSecretLookup(t *testing.T) {
	table := []ct.SecretWord{10, 20, 30, 40}
	for i, want := range table {
		require.Equal(t, want, ct.SecretLookup(table, ct.SecretWord(i)))
	}
}

func TestAddCSubBProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("AddC then SubB recovers the original operand", prop.ForAll(
		func(a, b uint64) bool {
			sum, _ := ct.AddC(0, ct.SecretWord(a), ct.SecretWord(b))
			back, _ := ct.SubB(0, sum, ct.SecretWord(b))
			return back == ct.SecretWord(a)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("MulHiLo low word matches wraparound multiplication", prop.ForAll(
		func(a, b uint64) bool {
			if platform.WordBits != 64 {
				return true // property only meaningful at native word width
			}
			_, lo := ct.MulHiLo(ct.SecretWord(a), ct.SecretWord(b))
			return uint64(lo) == a*b
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
