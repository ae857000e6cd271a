package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixlib/matrix"
)

// MulOptions holds flags for the mul command.
type MulOptions struct {
	*RootOptions
	Scalar float64
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "add <a> <b>",
		Short:         "Add two matrices of equal shape",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args, cmd)
		},
	}
}

func runAdd(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ms, err := loadAll(formatter, opts, paths...)
	if err != nil {
		return formatter.Fail("add", err)
	}

	sum, err := matrix.Add(ms[0], ms[1])
	if err != nil {
		return formatter.Fail("add", err)
	}
	return writeMatrix(formatter, "add", sum, opts.Precision)
}

// NewMulCommand creates the mul command.
func NewMulCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MulOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mul <a> [<b>]",
		Short: "Multiply a matrix by another matrix or a scalar",
		Long: `Multiply two matrices, or scale one matrix with --scalar.

By default the product follows the legacy rule: the row count of <a> must
equal the column count of <b> and the result is square. Pass
--standard-product for the usual rows-by-columns product.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMul(opts, args, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Scalar, "scalar", "s", 0, "scale <a> by this value instead of multiplying by <b>")

	return cmd
}

func runMul(opts *MulOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	useScalar := cmd.Flags().Changed("scalar")
	switch {
	case useScalar && len(paths) != 1:
		return usageError(formatter, "mul: --scalar takes exactly one matrix file")
	case !useScalar && len(paths) != 2:
		return usageError(formatter, "mul: need two matrix files or --scalar")
	}

	ms, err := loadAll(formatter, opts.RootOptions, paths...)
	if err != nil {
		return formatter.Fail("mul", err)
	}

	var right matrix.Operand = matrix.Scalar(opts.Scalar)
	if !useScalar {
		right = ms[1]
		formatter.VerboseLog("Product rule: %s", ms[0].Options().ProductRule())
	}

	product, err := matrix.Mul(ms[0], right)
	if err != nil {
		return formatter.Fail("mul", err)
	}
	return writeMatrix(formatter, "mul", product, opts.Precision)
}

// NewNegCommand creates the neg command.
func NewNegCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "neg <a>",
		Short:         "Negate every element of a matrix",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNeg(rootOpts, args[0], cmd)
		},
	}
}

func runNeg(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ms, err := loadAll(formatter, opts, path)
	if err != nil {
		return formatter.Fail("neg", err)
	}

	neg, err := matrix.Negate(ms[0])
	if err != nil {
		return formatter.Fail("neg", err)
	}
	return writeMatrix(formatter, "neg", neg, opts.Precision)
}

// writeMatrix reports m as the command's success payload.
func writeMatrix(f *OutputFormatter, name string, m *matrix.Matrix, precision int) error {
	res, err := newMatrixResult(m, precision)
	if err != nil {
		return f.Fail(name, err)
	}
	return f.Success(res)
}

// usageError reports a bad flag combination as a command error.
func usageError(f *OutputFormatter, message string) error {
	_ = f.Error(ErrCodeInvalidArgument, message, nil)
	return NewExitError(ExitCommandError, message)
}
