package num

import (
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/must"
	"go.llib.dev/subspace/pkg/bitkit"
	"go.llib.dev/subspace/pkg/floatkit"
	"go.llib.dev/subspace/pkg/mathkit"
	"golang.org/x/exp/constraints"
)

// ParseLiteral parses an integer literal into T.
//
// Accepted forms are decimal, 0x/0X hexadecimal, 0b/0B binary, 0o/0O octal,
// and octal with a bare leading zero.
// Digit groups may be separated by ' or _, but only between two digits.
// A leading minus sign is accepted for signed types.
// A literal that does not fit into T is rejected, it is never truncated.
func ParseLiteral[T constraints.Integer](lit string) (T, error) {
	digits, negative := lit, false
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		if !bitkit.IsSigned[T]() {
			return 0, ErrInvalidLiteral.F("%q: negative literal for an unsigned type", lit)
		}
		digits, negative = rest, true
	}
	radix, digits := literalRadix(digits)
	if digits == "" {
		return 0, ErrInvalidLiteral.F("%q: no digits", lit)
	}

	limit := bitkit.ZeroExtend(bitkit.Max[T]())
	if negative {
		limit++
	}
	var (
		acc       uint64
		prevDigit bool
	)
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '\'' || c == '_' {
			if !prevDigit || i == len(digits)-1 {
				return 0, ErrInvalidLiteral.F("%q: misplaced digit separator", lit)
			}
			prevDigit = false
			continue
		}
		d, ok := digitValue(c, radix)
		if !ok {
			return 0, ErrInvalidLiteral.F("%q: invalid digit %q for base %d", lit, c, radix)
		}
		mul := mathkit.MulWithOverflow(acc, radix)
		sum := mathkit.AddWithOverflow(mul.Value, d)
		if mul.Overflow || sum.Overflow || limit < sum.Value {
			return 0, ErrInvalidLiteral.F("%q: out of range for a %d bit integer", lit, bitkit.Bits[T]())
		}
		acc, prevDigit = sum.Value, true
	}
	if negative {
		acc = ^acc + 1
	}
	return T(acc), nil
}

// Lit is the checked literal constructor, it panics on any literal ParseLiteral rejects.
//
//	var mask = num.Lit[uint32]("0xffff'0000")
func Lit[T constraints.Integer](lit string) Int[T] {
	return Of(must.Must(ParseLiteral[T](lit)))
}

// ParseFloatLiteral parses a decimal or hexadecimal float literal, ' and _ group separators included.
// Values beyond the range of T are rejected.
func ParseFloatLiteral[T constraints.Float](lit string) (T, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(lit, "'", "_"), int(floatkit.Bits[T]()))
	if err != nil {
		return 0, ErrInvalidLiteral.Wrap(err)
	}
	return T(f), nil
}

func FloatLit[T constraints.Float](lit string) Float[T] {
	return FloatOf(must.Must(ParseFloatLiteral[T](lit)))
}

func literalRadix(s string) (uint64, string) {
	if len(s) < 2 || s[0] != '0' {
		return 10, s
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:]
	case 'b', 'B':
		return 2, s[2:]
	case 'o', 'O':
		return 8, s[2:]
	default:
		return 8, s
	}
}

func digitValue(c byte, radix uint64) (uint64, bool) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < radix
}
