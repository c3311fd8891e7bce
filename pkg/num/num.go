// Package num provides value types for fixed width integers and IEEE-754 floats
// with the arithmetic semantics of a language that checks overflow.
//
// The default operators (Add, Sub, Mul, Shl, ...) panic on overflow
// while overflow checks are enabled, and wrap around when they are disabled.
// Every operator also comes in explicit flavours which ignore that policy:
// Checked*, Overflowing*, Saturating* and Wrapping*.
//
// Division by zero and MIN / -1 always panic, regardless of the policy.
//
// Panics carry one of the package's error values,
// so a recovered panic can be inspected with errors.Is.
package num

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/subspace/internal/config"
	"golang.org/x/exp/constraints"
)

const (
	ErrOverflow       errorkit.Error = "arithmetic overflow"
	ErrShiftOverflow  errorkit.Error = "shift amount exceeds the bit width"
	ErrDivideByZero   errorkit.Error = "division by zero"
	ErrInvalidLiteral errorkit.Error = "invalid numeric literal"
	ErrOutOfRange     errorkit.Error = "value out of range for the target type"
	ErrNonPositiveLog errorkit.Error = "logarithm of a non-positive value"
	ErrInvalidClamp   errorkit.Error = "clamp range has its minimum above its maximum"
)

// Number is the set of primitive types the facade types are built on.
type Number interface {
	constraints.Integer | constraints.Float
}

var overflowChecks = config.Load(context.Background(), config.Logger).OverflowChecks

// OverflowChecks reports whether the default operators panic on overflow.
//
// The value is decided once at start up from the SUBSPACE_OVERFLOW_CHECKS environment variable,
// and it does not change during the life of the process.
func OverflowChecks() bool { return overflowChecks }
