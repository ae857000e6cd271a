// SPDX-License-Identifier: MIT

// Package matrix: small value types shared across files.
// This file contains ONLY plain value types (shape pair, scalar operand,
// selection kind). Errors and options live in errors.go and options.go.
package matrix

import "fmt"

// Dims is the (rows, columns) pair of a matrix.
// It is the compatibility key for Add (exact match) and Mul (see ProductRule).
type Dims struct {
	Rows int `json:"rows"` // row count, >= 1 for any constructed Matrix
	Cols int `json:"cols"` // column count, >= 1 for any constructed Matrix
}

// String renders the pair as "(r, c)".
func (d Dims) String() string {
	return fmt.Sprintf("(%d, %d)", d.Rows, d.Cols)
}

// Scalar is a real-number operand for Mul.
type Scalar float64

// SelectionKind tells which variant a Selection holds.
type SelectionKind int

const (
	// KindGrid marks a nested [][]float64 result.
	KindGrid SelectionKind = iota
	// KindScalar marks a single element result (one row and one column selected).
	KindScalar
)

// String returns "grid" or "scalar".
func (k SelectionKind) String() string {
	if k == KindScalar {
		return "scalar"
	}

	return "grid"
}
