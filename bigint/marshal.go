package bigint

import (
	"fmt"

	"github.com/mratsim/constantine-core/ct"
	"github.com/mratsim/constantine-core/platform"
)

// Endian selects the byte order used by ToBytes and FromBytes.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

// ToBytes writes the canonical encoding of a (ceil(bits/8) bytes, high
// bits of the top byte zero) into out, which must be exactly that
// length.
func ToBytes(out []byte, a *BigInt, bits int, endian Endian) error {
	byteLen := (bits + 7) / 8
	if len(out) != byteLen {
		return fmt.Errorf("bigint: output buffer is %d bytes, want %d", len(out), byteLen)
	}
	wb := platform.WordBytes
	for i := 0; i < a.n; i++ {
		var buf [platform.WordBytes]byte
		platform.PutWordLE(buf[:], platform.Word(a.limbs[i]))
		for j := 0; j < wb; j++ {
			pos := i*wb + j // offset within the little-endian layout
			if pos >= byteLen {
				continue
			}
			if endian == LittleEndian {
				out[pos] = buf[j]
			} else {
				out[byteLen-1-pos] = buf[j]
			}
		}
	}
	return nil
}

// FromBytes decodes in (exactly ceil(bits/8) bytes) into a, which is
// given n = ceil(bits/WordBits) active limbs. It rejects inputs whose
// extraneous high bits (above the declared bit width) are set, per
// §4.3's canonical-encoding contract. This check operates on public
// format metadata, not secret field values, so branching on it (as the
// teacher's own SetCanonicalBytes/isReduced does) is not a constant-time
// violation.
func FromBytes(a *BigInt, in []byte, bits int, endian Endian) error {
	byteLen := (bits + 7) / 8
	if len(in) != byteLen {
		return fmt.Errorf("bigint: input is %d bytes, want %d", len(in), byteLen)
	}
	n := (bits + platform.WordBits - 1) / platform.WordBits
	if n > MaxLimbs {
		return fmt.Errorf("bigint: %d bits needs %d limbs, exceeds MaxLimbs=%d", bits, n, MaxLimbs)
	}

	var le [MaxLimbs * platform.WordBytes]byte
	for i := 0; i < byteLen; i++ {
		if endian == LittleEndian {
			le[i] = in[i]
		} else {
			le[i] = in[byteLen-1-i]
		}
	}

	a.n = n
	wb := platform.WordBytes
	for i := 0; i < n; i++ {
		a.limbs[i] = ct.SecretWord(platform.GetWordLE(le[i*wb:]))
	}
	for i := n; i < MaxLimbs; i++ {
		a.limbs[i] = 0
	}

	if topBits := bits % platform.WordBits; topBits != 0 {
		mask := platform.Word(1)<<uint(topBits) - 1
		if platform.Word(a.limbs[n-1])&^mask != 0 {
			return fmt.Errorf("bigint: input has extraneous high bits set beyond the declared %d-bit width", bits)
		}
	}
	return nil
}
