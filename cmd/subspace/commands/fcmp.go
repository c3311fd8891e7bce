package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/subspace/pkg/compare"
	"go.llib.dev/subspace/pkg/floatkit"
	"go.llib.dev/subspace/pkg/num"
	"golang.org/x/exp/constraints"
)

func (a *app) fcmpCmd() *cobra.Command {
	var (
		bits int
		raw  bool
	)
	cmd := &cobra.Command{
		Use:   "fcmp <a> <b>",
		Short: "compare two floats by the IEEE-754 total order and by the partial order",
		Long: `The total order ranks every bit pattern, so NaN is comparable and -0 is less than +0.
The partial order follows the comparison operators, where NaN is unordered.`,
		Example: `  subspace fcmp -- -0 0
  subspace fcmp NaN Inf --bits 32
  subspace fcmp 0x7ff8000000000001 0x7ff8000000000000 --raw`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out string
				err error
			)
			switch bits {
			case 32:
				out, err = fcmp[float32](args[0], args[1], raw)
			case 64:
				out, err = fcmp[float64](args[0], args[1], raw)
			default:
				return ErrInvalidBits.F("got %d", bits)
			}
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "floats compared",
				logging.Field("bits", bits),
				logging.Field("raw", raw))
			a.print(cmd, out)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 64, "float width, 32 or 64")
	cmd.Flags().BoolVar(&raw, "raw", false, "read the operands as bit patterns")
	return cmd
}

func fcmp[T constraints.Float](as, bs string, raw bool) (string, error) {
	a, err := parseFloat[T](as, raw)
	if err != nil {
		return "", err
	}
	b, err := parseFloat[T](bs, raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("total=%s partial=%s", floatkit.StrongOrder(a, b), compare.Partial(a, b)), nil
}

func parseFloat[T constraints.Float](s string, raw bool) (T, error) {
	if !raw {
		return num.ParseFloatLiteral[T](s)
	}
	bits, err := num.ParseLiteral[uint64](s)
	if err != nil {
		return 0, err
	}
	if bits>>floatkit.Bits[T]() != 0 {
		return 0, num.ErrOutOfRange.F("%s does not fit into %d bits", s, floatkit.Bits[T]())
	}
	return floatkit.FromBits[T](bits), nil
}
