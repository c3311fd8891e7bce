// Package commands implements the subspace command line,
// a thin shell over the num and floatkit packages for trying out their semantics.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/subspace/internal/config"
)

const (
	ErrUnknownType  errorkit.Error = "unknown numeric type"
	ErrUnknownOp    errorkit.Error = "unknown operation"
	ErrUnknownMode  errorkit.Error = "unknown arithmetic mode"
	ErrUnsupported  errorkit.Error = "operation is not supported in this mode"
	ErrInvalidBits  errorkit.Error = "float width must be 32 or 64"
	ErrNotAnInteger errorkit.Error = "type is not an integer type"
)

type app struct {
	verbose bool
	logger  *logging.Logger
}

// NewRootCmd builds the command tree.
// Results are written to the command's output, logs to its error output.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "subspace",
		Short:         "checked integer and IEEE-754 float arithmetic",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = &logging.Logger{Out: cmd.ErrOrStderr(), Level: logging.LevelInfo}
			if a.verbose {
				a.logger.Level = logging.LevelDebug
			}
			c := config.Load(cmd.Context(), a.logger)
			a.logger.Debug(cmd.Context(), "command started",
				logging.Field("command", cmd.Name()),
				logging.Field("overflow_checks", c.OverflowChecks))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.AddCommand(
		a.parseCmd(),
		a.arithCmd(),
		a.castCmd(),
		a.fcmpCmd(),
	)
	return root
}

// Execute runs the command line and exits with a non-zero status on failure.
func Execute() {
	ctx := context.Background()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "subspace:", err)
		os.Exit(1)
	}
}

func (a *app) print(cmd *cobra.Command, out string) {
	fmt.Fprintln(cmd.OutOrStdout(), out)
}
