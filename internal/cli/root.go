package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixlib/matrix"
)

// DefaultPrecision is the number of fractional digits used when --precision
// is not given.
const DefaultPrecision = 2

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose         bool
	Format          string // "json" | "text"
	Precision       int    // fractional digits for text output
	StandardProduct bool   // use the rows-by-columns product instead of the legacy rule
	RejectNaN       bool   // refuse NaN and ±Inf elements in matrix files
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the matrixlib CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "matrixlib",
		Short: "matrixlib - 1-indexed dense matrices",
		Long: `Inspect and combine small dense matrices stored as YAML or JSON files.

Indices are 1-based. A matrix file is a sequence of equal-length rows:

  - [1, 2]
  - [3, 4]`,
		// Execute reports errors so none is printed twice.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRootOptions(opts); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return err
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVarP(&opts.Precision, "precision", "p", DefaultPrecision, "fractional digits in text output")
	cmd.PersistentFlags().BoolVar(&opts.StandardProduct, "standard-product", false, "multiply with the rows-by-columns rule")
	cmd.PersistentFlags().BoolVar(&opts.RejectNaN, "reject-nan", false, "reject NaN and Inf elements when loading")

	// Add subcommands
	cmd.AddCommand(NewDimsCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewMulCommand(opts))
	cmd.AddCommand(NewNegCommand(opts))

	return cmd
}

// Execute runs cmd and returns the process exit code.
// Errors that are not an ExitError come from cobra itself (unknown flags,
// wrong argument count) and have not been reported yet.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		err = WrapExitError(ExitCommandError, "command", err)
	}
	return GetExitCode(err)
}

// validateRootOptions rejects global flag values no command can use.
func validateRootOptions(opts *RootOptions) error {
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if opts.Precision < 0 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid precision %d: must be >= 0", opts.Precision))
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// matrixOptions translates global flags into matrix construction options.
func (o *RootOptions) matrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithLegacyProduct()}
	if o.StandardProduct {
		opts = append(opts, matrix.WithStandardProduct())
	}
	if o.RejectNaN {
		opts = append(opts, matrix.WithValidateNaNInf())
	}
	return opts
}

// newFormatter builds the formatter every command writes through.
// Verbose logs go to stderr to avoid corrupting JSON.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadAll loads every path in order, logging each shape in verbose mode.
func loadAll(f *OutputFormatter, opts *RootOptions, paths ...string) ([]*matrix.Matrix, error) {
	ms := make([]*matrix.Matrix, 0, len(paths))
	for _, p := range paths {
		m, err := LoadMatrix(p, opts.matrixOptions()...)
		if err != nil {
			return nil, err
		}
		f.VerboseLog("Loaded %s: %s", p, m.Dims())
		ms = append(ms, m)
	}
	return ms, nil
}
