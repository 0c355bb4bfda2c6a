package field

import "fmt"

// ValueError reports a fallible, caller-supplied value that failed a
// validity check: a malformed or non-canonical byte encoding (§7). An
// invalid modulus string is not reported this way; NewModulus panics
// with InvariantError for it.
type ValueError struct {
	Msg string
}

func (e ValueError) Error() string { return fmt.Sprintf("field: %s", e.Msg) }

// InvariantError reports a programmer error detectable at construction
// time: NewModulus raises it for a modulus descriptor that is not a
// valid integer, is not odd and greater than 1, is inconsistent with its
// own declared bit width, or needs more limbs than MaxLimbs allows. No
// operation checks that its operands share a limb count, so a mismatch
// there is not reported.
// Per §7 these are not recoverable at runtime and are raised via panic,
// mirroring the teacher's own precedent (scalar.go's nonAdjacentForm
// panics on an invalid width rather than returning an error).
type InvariantError struct {
	Msg string
}

func (e InvariantError) Error() string { return fmt.Sprintf("field: invariant violated: %s", e.Msg) }

// NotInvertible is returned by InvCheck when the input is the additive
// identity, which has no multiplicative inverse.
type NotInvertible struct{}

func (NotInvertible) Error() string { return "field: value has no multiplicative inverse" }

// NotSquare is returned by SqrtCheck when the input is not a quadratic
// residue modulo the field's modulus.
type NotSquare struct{}

func (NotSquare) Error() string { return "field: value is not a quadratic residue" }
