// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the dimension-mismatch error type.
// All operations return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is / errors.As. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Call sites wrap with matrixErrorf("<Op>", ErrX); callers still use errors.Is.

var (
	// ErrBadShape is returned when constructor input is not a non-empty rectangle.
	ErrBadShape = errors.New("matrix: rows must be equal length")

	// ErrElementType signals an element that is not an integer or floating-point value.
	ErrElementType = errors.New("matrix: elements must be numeric")

	// ErrOutOfRange indicates that an integer row or column index is outside 1..n.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrIndexType is returned for a request that is neither an integer nor a range.
	ErrIndexType = errors.New("matrix: index must be integer or range")

	// ErrZeroStep is returned when a range step is zero.
	ErrZeroStep = errors.New("matrix: range step cannot be zero")

	// ErrUnsupportedOperand is returned when an operator receives an operand kind it cannot combine.
	ErrUnsupportedOperand = errors.New("matrix: unsupported operand")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	// DimensionMismatchError matches it via errors.Is.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadPrecision is returned by the formatters for a negative precision.
	ErrBadPrecision = errors.New("matrix: precision must be non-negative")

	// ErrNaNInf signals a NaN or ±Inf element under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// DimensionMismatchError carries both operand shapes of a failed Add/Sub/Mul.
type DimensionMismatchError struct {
	Op string // operation tag, e.g. "Add"
	A  Dims   // left operand
	B  Dims   // right operand
}

// Error renders "matrix: <Op>: dimension mismatch: (r, c) and (r, c) are not matching".
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("matrix: %s: dimension mismatch: %s and %s are not matching", e.Op, e.A, e.B)
}

// Is reports ErrDimensionMismatch as the matching sentinel.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// Kind is the closed classification of package errors.
type Kind int

const (
	KindNone              Kind = iota // nil error
	KindShape                         // ErrBadShape
	KindElementType                   // ErrElementType, ErrNaNInf
	KindIndexOutOfRange               // ErrOutOfRange
	KindType                          // ErrIndexType, ErrUnsupportedOperand
	KindDimensionMismatch             // *DimensionMismatchError
	KindInvalidArgument               // ErrZeroStep, ErrBadPrecision, ErrNilMatrix, foreign errors
)

var kindNames = [...]string{
	KindNone:              "none",
	KindShape:             "shape",
	KindElementType:       "element_type",
	KindIndexOutOfRange:   "index_out_of_range",
	KindType:              "type",
	KindDimensionMismatch: "dimension_mismatch",
	KindInvalidArgument:   "invalid_argument",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// KindOf classifies err. Errors not produced by this package map to KindInvalidArgument.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrBadShape):
		return KindShape
	case errors.Is(err, ErrElementType), errors.Is(err, ErrNaNInf):
		return KindElementType
	case errors.Is(err, ErrOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrIndexType), errors.Is(err, ErrUnsupportedOperand):
		return KindType
	case errors.Is(err, ErrDimensionMismatch):
		return KindDimensionMismatch
	default:
		return KindInvalidArgument
	}
}

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
