package commands

import (
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"
)

func (a *app) parseCmd() *cobra.Command {
	typ := &typeFlag{name: "i32"}
	cmd := &cobra.Command{
		Use:   "parse <literal>",
		Short: "parse a numeric literal, rejecting anything out of range",
		Example: `  subspace parse 0xFF --type u8
  subspace parse "1'000'000" --type i32
  subspace parse 0b1000_0000 --type i8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := typ.numeric()
			v, err := n.parse(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "literal parsed",
				logging.Field("literal", args[0]),
				logging.Field("type", typ.name))
			a.print(cmd, n.format(v))
			return nil
		},
	}
	cmd.Flags().VarP(typ, "type", "t", "target type, one of "+joinedTypeNames())
	return cmd
}
