//go:build !(amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm)

package ct

import "math/bits"

// AddC adds a, b and an incoming carry (0 or 1), returning the sum word
// and the outgoing carry (0 or 1). It lowers directly to the hardware
// ADC instruction via math/bits.
func AddC(carryIn, a, b SecretWord) (sum, carryOut SecretWord) {
	s, c := bits.Add32(uint32(a), uint32(b), uint32(carryIn))
	return SecretWord(s), SecretWord(c)
}

// SubB subtracts b and an incoming borrow (0 or 1) from a, returning the
// difference and the outgoing borrow (0 or 1). It lowers directly to the
// hardware SBB instruction via math/bits.
func SubB(borrowIn, a, b SecretWord) (diff, borrowOut SecretWord) {
	d, bw := bits.Sub32(uint32(a), uint32(b), uint32(borrowIn))
	return SecretWord(d), SecretWord(bw)
}

// MulHiLo returns the full 2·WordBits product of a and b as (hi, lo).
func MulHiLo(a, b SecretWord) (hi, lo SecretWord) {
	h, l := bits.Mul32(uint32(a), uint32(b))
	return SecretWord(h), SecretWord(l)
}
