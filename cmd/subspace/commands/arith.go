package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/subspace/pkg/num"
	"golang.org/x/exp/constraints"
)

type arithmetic interface {
	arith(op string, m mode, x, y string) (string, error)
}

// result is the outcome of an operation and whether it overflowed.
type result[T constraints.Integer] struct {
	value    num.Int[T]
	overflow bool
}

type binaryOp[T constraints.Integer] func(x, y num.Int[T]) result[T]

// countOp takes a bit count or an exponent as its right hand side.
type countOp[T constraints.Integer] func(x num.Int[T], n uint32) result[T]

func flagged[T constraints.Integer, Y any](fn func(num.Int[T], Y) (num.Int[T], bool)) func(num.Int[T], Y) result[T] {
	return func(x num.Int[T], y Y) result[T] {
		v, overflow := fn(x, y)
		return result[T]{value: v, overflow: overflow}
	}
}

func exact[T constraints.Integer, Y any](fn func(num.Int[T], Y) num.Int[T]) func(num.Int[T], Y) result[T] {
	return func(x num.Int[T], y Y) result[T] { return result[T]{value: fn(x, y)} }
}

func binaryOps[T constraints.Integer]() map[mode]map[string]binaryOp[T] {
	// checked operators report success, not overflow
	checked := func(fn func(x, y num.Int[T]) (num.Int[T], bool)) binaryOp[T] {
		return func(x, y num.Int[T]) result[T] {
			v, ok := fn(x, y)
			return result[T]{value: v, overflow: !ok}
		}
	}
	return map[mode]map[string]binaryOp[T]{
		modeChecked: {
			"add": checked(num.Int[T].CheckedAdd),
			"sub": checked(num.Int[T].CheckedSub),
			"mul": checked(num.Int[T].CheckedMul),
			"div": checked(num.Int[T].CheckedDiv),
			"rem": checked(num.Int[T].CheckedRem),
		},
		modeOverflowing: {
			"add": flagged(num.Int[T].OverflowingAdd),
			"sub": flagged(num.Int[T].OverflowingSub),
			"mul": flagged(num.Int[T].OverflowingMul),
			"div": flagged(num.Int[T].OverflowingDiv),
			"rem": flagged(num.Int[T].OverflowingRem),
		},
		modeWrapping: {
			"add": exact(num.Int[T].WrappingAdd),
			"sub": exact(num.Int[T].WrappingSub),
			"mul": exact(num.Int[T].WrappingMul),
			"div": exact(num.Int[T].WrappingDiv),
			"rem": exact(num.Int[T].WrappingRem),
		},
		modeSaturating: {
			"add": exact(num.Int[T].SaturatingAdd),
			"sub": exact(num.Int[T].SaturatingSub),
			"mul": exact(num.Int[T].SaturatingMul),
			"div": exact(num.Int[T].SaturatingDiv),
		},
	}
}

func countOps[T constraints.Integer]() map[mode]map[string]countOp[T] {
	checked := func(fn func(x num.Int[T], n uint32) (num.Int[T], bool)) countOp[T] {
		return func(x num.Int[T], n uint32) result[T] {
			v, ok := fn(x, n)
			return result[T]{value: v, overflow: !ok}
		}
	}
	return map[mode]map[string]countOp[T]{
		modeChecked: {
			"pow": checked(num.Int[T].CheckedPow),
			"shl": checked(num.Int[T].CheckedShl),
			"shr": checked(num.Int[T].CheckedShr),
		},
		modeOverflowing: {
			"pow": flagged(num.Int[T].OverflowingPow),
			"shl": flagged(num.Int[T].OverflowingShl),
			"shr": flagged(num.Int[T].OverflowingShr),
		},
		modeWrapping: {
			"pow": exact(num.Int[T].WrappingPow),
			"shl": exact(num.Int[T].WrappingShl),
			"shr": exact(num.Int[T].WrappingShr),
		},
		modeSaturating: {
			"pow": exact(num.Int[T].SaturatingPow),
		},
	}
}

func (integer[T]) arith(op string, m mode, xs, ys string) (string, error) {
	x, err := num.ParseLiteral[T](xs)
	if err != nil {
		return "", err
	}

	var out result[T]
	if fn, ok := countOps[T]()[m][op]; ok {
		n, err := num.ParseLiteral[uint32](ys)
		if err != nil {
			return "", err
		}
		out = fn(num.Of(x), n)
	} else if fn, ok := binaryOps[T]()[m][op]; ok {
		y, err := num.ParseLiteral[T](ys)
		if err != nil {
			return "", err
		}
		if y == 0 && (op == "div" || op == "rem") {
			return "", num.ErrDivideByZero
		}
		out = fn(num.Of(x), num.Of(y))
	} else if slices.Contains(knownOps, op) {
		return "", ErrUnsupported.F("%s in %s mode", op, m)
	} else {
		return "", ErrUnknownOp.F("%q", op)
	}

	switch {
	case m == modeOverflowing:
		return fmt.Sprintf("%s overflow=%t", out.value, out.overflow), nil
	case out.overflow:
		return "", num.ErrOverflow.F("%s %s %s", xs, op, ys)
	default:
		return out.value.String(), nil
	}
}

var knownOps = []string{"add", "sub", "mul", "div", "rem", "pow", "shl", "shr"}

func (a *app) arithCmd() *cobra.Command {
	m := modeChecked
	cmd := &cobra.Command{
		Use:   "arith <add|sub|mul|div|rem|pow|shl|shr> <type> <x> <y>",
		Short: "apply an integer operator with an explicit overflow behaviour",
		Long: `checked fails on overflow, wrapping wraps around the bit width,
saturating clamps at the bounds of the type, overflowing prints the wrapped value with an overflow flag.
The right hand side of pow, shl and shr is an unsigned 32 bit count.`,
		Example: `  subspace arith add u8 250 10 --mode saturating
  subspace arith mul i32 0x10000 0x10000 --mode overflowing
  subspace arith shl i8 1 7 --mode wrapping`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, x, y := args[0], args[2], args[3]
			var typ typeFlag
			if err := typ.Set(args[1]); err != nil {
				return err
			}
			ar, ok := typ.numeric().(arithmetic)
			if !ok {
				return ErrNotAnInteger.F("%s", typ.name)
			}
			out, err := ar.arith(op, m, x, y)
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "operator applied",
				logging.Field("op", op),
				logging.Field("type", typ.name),
				logging.Field("mode", string(m)))
			a.print(cmd, out)
			return nil
		},
	}
	cmd.Flags().VarP(&m, "mode", "m", "overflow behaviour: checked, wrapping, saturating or overflowing")
	return cmd
}
