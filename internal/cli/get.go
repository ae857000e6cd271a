package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixlib/matrix"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <rows> <cols>",
		Short: "Select elements with 1-based indices or ranges",
		Long: `Select rows, then columns, of a matrix.

Each request is an integer ("2") or a range ("start:stop[:step]", any part
optional). Ranges start at 1; the stop is passed through unchanged, so "1:2"
selects the first two positions. Put "--" before requests that begin with "-".

Selecting exactly one row and one column prints a bare number.`,
		Example: `  matrixlib get a.yaml 2 3
  matrixlib get a.yaml : 1
  matrixlib get a.yaml -- -1: ::2`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], args[1], args[2], cmd)
		},
	}
}

func runGet(opts *RootOptions, path, rowsArg, colsArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	rows, err := matrix.ParseIndex(rowsArg)
	if err != nil {
		return formatter.Fail("get", err)
	}
	cols, err := matrix.ParseIndex(colsArg)
	if err != nil {
		return formatter.Fail("get", err)
	}

	ms, err := loadAll(formatter, opts, path)
	if err != nil {
		return formatter.Fail("get", err)
	}

	view, err := ms[0].Select(rows)
	if err != nil {
		return formatter.Fail("get", err)
	}
	formatter.VerboseLog("Rows %s selected %d of %d", rows, view.Len(), ms[0].Rows())

	sel, err := view.Select(cols)
	if err != nil {
		return formatter.Fail("get", err)
	}

	return formatter.Success(newSelectionResult(sel, opts.Precision))
}
