package commands

import (
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"
)

func (a *app) castCmd() *cobra.Command {
	var (
		from = &typeFlag{name: "f64"}
		to   = &typeFlag{name: "i32"}
	)
	cmd := &cobra.Command{
		Use:   "cast <value>",
		Short: "convert a value between numeric types",
		Long: `Float to integer casts saturate at the bounds of the target and map NaN to zero.
Integer casts keep the low bits of the value, float narrowing rounds to the nearest value.`,
		Example: `  subspace cast NaN --from f32 --to u16
  subspace cast 1e9 --from f32 --to u16
  subspace cast 300 --from i32 --to u8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := from.numeric().parse(args[0])
			if err != nil {
				return err
			}
			out, err := to.numeric().cast(v)
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "value cast",
				logging.Field("from", from.name),
				logging.Field("to", to.name))
			a.print(cmd, to.numeric().format(out))
			return nil
		},
	}
	cmd.Flags().Var(from, "from", "source type, one of "+joinedTypeNames())
	cmd.Flags().Var(to, "to", "target type, one of "+joinedTypeNames())
	return cmd
}
