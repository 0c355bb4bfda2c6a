// Package ct provides the constant-time secret-word primitives (C1) and
// the carry/borrow chain (C2) that every higher layer in this module is
// built from. Every exported function here must execute the same
// sequence of machine instructions regardless of its secret inputs: no
// branch, loop bound, or memory address may depend on a SecretWord or
// SecretBool value.
package ct

import "github.com/mratsim/constantine-core/platform"

// SecretWord holds one machine word of secret data. It is a distinct
// type from platform.Word so that the compiler flags accidental mixing
// with plain (public) integers; Go does not enforce the constant-time
// discipline itself, so this is a documentation and review aid, not a
// hard guarantee.
type SecretWord platform.Word

// SecretBool is a SecretWord holding only 0 (false) or 1 (true) in its
// low bit, with all other bits clear. Every function that returns a
// SecretBool maintains this invariant; a conversion from a SecretWord
// keeps it only when that word is known to be 0 or 1, such as a carry or
// borrow from AddC/SubB.
type SecretBool SecretWord

// CTrue returns the canonical true SecretBool.
func CTrue() SecretBool { return SecretBool(1) }

// CFalse returns the canonical false SecretBool.
func CFalse() SecretBool { return SecretBool(0) }

// And returns a & b.
func (w SecretWord) And(o SecretWord) SecretWord { return w & o }

// Or returns a | b.
func (w SecretWord) Or(o SecretWord) SecretWord { return w | o }

// Xor returns a ^ b.
func (w SecretWord) Xor(o SecretWord) SecretWord { return w ^ o }

// Not returns ^a.
func (w SecretWord) Not() SecretWord { return ^w }

// Add returns a+b mod 2^WordBits, with no carry-out (use AddC for that).
func (w SecretWord) Add(o SecretWord) SecretWord { return w + o }

// Sub returns a-b mod 2^WordBits, with no borrow-out (use SubB for that).
func (w SecretWord) Sub(o SecretWord) SecretWord { return w - o }

// Mul returns the low word of a*b (use MulHiLo for the full product).
func (w SecretWord) Mul(o SecretWord) SecretWord { return w * o }

// Neg returns -a mod 2^WordBits.
func (w SecretWord) Neg() SecretWord { return -w }

// Shl returns a<<n. n must be a public shift amount in [0, WordBits).
func (w SecretWord) Shl(n uint) SecretWord { return w << n }

// Shr returns a>>n (logical, not arithmetic). n must be a public shift
// amount in [0, WordBits).
func (w SecretWord) Shr(n uint) SecretWord { return w >> n }

// And returns a && b.
func (b SecretBool) And(o SecretBool) SecretBool { return b & o }

// Or returns a || b.
func (b SecretBool) Or(o SecretBool) SecretBool { return b | o }

// Xor returns a xor b.
func (b SecretBool) Xor(o SecretBool) SecretBool { return b ^ o }

// Not returns !a.
func (b SecretBool) Not() SecretBool { return b ^ 1 }
