package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/matrixlib/matrix"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Matrix operation failed (shape, index, operand errors)
	ExitCommandError = 2 // Command error (bad flags, file not found, unreadable YAML)
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeNotFound          = "E002" // Matrix file not found
	ErrCodeParse             = "E003" // Matrix file is not valid YAML/JSON
	ErrCodeShape             = "E004" // Ragged or empty rows
	ErrCodeElementType       = "E005" // Non-numeric element
	ErrCodeOutOfRange        = "E006" // Index outside 1..n
	ErrCodeType              = "E007" // Bad index notation or operand kind
	ErrCodeDimensionMismatch = "E008" // Incompatible operand shapes
	ErrCodeInvalidArgument   = "E009" // Bad precision, zero step, bad flag combination
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// errorCode maps a library error onto its CLI error code.
func errorCode(err error) string {
	switch matrix.KindOf(err) {
	case matrix.KindShape:
		return ErrCodeShape
	case matrix.KindElementType:
		return ErrCodeElementType
	case matrix.KindIndexOutOfRange:
		return ErrCodeOutOfRange
	case matrix.KindType:
		return ErrCodeType
	case matrix.KindDimensionMismatch:
		return ErrCodeDimensionMismatch
	case matrix.KindInvalidArgument:
		return ErrCodeInvalidArgument
	default:
		return ErrCodeGeneric
	}
}

// errorDetails extracts structured context from err, if any.
func errorDetails(err error) interface{} {
	var dm *matrix.DimensionMismatchError
	if errors.As(err, &dm) {
		return map[string]interface{}{
			"op": dm.Op,
			"a":  dm.A,
			"b":  dm.B,
		}
	}
	return nil
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		// Encode marshals fully before writing, so a failed payload leaves
		// room for the error envelope.
		err := json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
		if err != nil {
			_ = f.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitFailure, "encoding result", err)
		}
		return nil
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err through Error and returns it wrapped with the exit code
// matching its origin: load failures exit with ExitCommandError, matrix
// failures with ExitFailure.
func (f *OutputFormatter) Fail(message string, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Code != "" {
		_ = f.Error(loadErr.Code, err.Error(), nil)
		return WrapExitError(ExitCommandError, message, err)
	}

	_ = f.Error(errorCode(err), err.Error(), errorDetails(err))
	return WrapExitError(ExitFailure, message, err)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
