package cli

import (
	"github.com/spf13/cobra"
)

// NewDimsCommand creates the dims command.
func NewDimsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dims <file>",
		Short: "Print the (rows, cols) pair of a matrix",
		Args:  cobra.ExactArgs(1),
		// We handle our own error output.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDims(rootOpts, args[0], cmd)
		},
	}
}

func runDims(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ms, err := loadAll(formatter, opts, path)
	if err != nil {
		return formatter.Fail("dims", err)
	}

	return formatter.Success(&DimsResult{Dims: ms[0].Dims()})
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a matrix with fixed precision",
		Long: `Print a matrix one row per line, elements separated by a single space
and rounded to --precision fractional digits.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
}

func runShow(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ms, err := loadAll(formatter, opts, path)
	if err != nil {
		return formatter.Fail("show", err)
	}

	res, err := newMatrixResult(ms[0], opts.Precision)
	if err != nil {
		return formatter.Fail("show", err)
	}
	return formatter.Success(res)
}
