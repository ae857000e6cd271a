// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & construction.
//
// Purpose:
//   - Keep a flat row-major buffer with the explicit offset formula i*c + j.
//   - Validate the rectangle once at construction; never mutate afterwards.
//   - Copy the caller's input so no slice is ever shared with the outside.
//
// Complexity quicksheet:
//   - New/NewFromValues: O(r*c); Dims/Rows/Cols: O(1); ToSlices/Equal: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxNew       = "New"
	ctxNewValues = "NewFromValues"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable dense matrix of float64 values addressed 1-based.
//   - r,c hold dimensions (both >= 1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the policy resolved at construction and inherited by results.
type Matrix struct {
	r, c int
	data []float64
	opts Options
}

// Compile-time assertions for Operand & fmt.Stringer conformance.
var (
	_ Operand      = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// New builds a Matrix from a rectangular slice of rows.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate the rectangle (non-empty, equal row lengths).
//   - Stage 2: copy elements into a fresh flat buffer, enforcing the NaN/Inf policy.
//
// Errors:
//   - ErrBadShape (empty input or ragged rows), ErrNaNInf (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	lens := make([]int, len(rows))
	for i, row := range rows {
		lens[i] = len(row)
	}
	r, c, err := validateRect(lens)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	m := newMatrix(r, c, o)
	for i, row := range rows {
		for j, v := range row {
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, i+1, j+1, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewFromValues builds a Matrix from dynamically typed rows, as produced by
// decoders (YAML, JSON) or reflection. Every element must be a Go integer
// kind, float32 or float64; it is converted to float64.
//
// Errors:
//   - ErrBadShape (empty input or ragged rows), ErrElementType (bool, string,
//     nil, anything non-numeric), ErrNaNInf (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromValues(rows [][]any, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	lens := make([]int, len(rows))
	for i, row := range rows {
		lens[i] = len(row)
	}
	r, c, err := validateRect(lens)
	if err != nil {
		return nil, matrixErrorf(ctxNewValues, err)
	}

	m := newMatrix(r, c, o)
	for i, row := range rows {
		for j, raw := range row {
			v, ok := toFloat(raw)
			if !ok {
				return nil, fmt.Errorf("%s(%d,%d): %T: %w", ctxNewValues, i+1, j+1, raw, ErrElementType)
			}
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewValues, i+1, j+1, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// newMatrix allocates a zeroed r×c Matrix; callers guarantee r,c >= 1.
func newMatrix(r, c int, o Options) *Matrix {
	return &Matrix{r: r, c: c, data: make([]float64, r*c), opts: o}
}

// Dims returns (rows, columns) as observed at construction. O(1).
func (m *Matrix) Dims() Dims { return Dims{Rows: m.r, Cols: m.c} }

// Rows returns the row count. O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. O(1).
func (m *Matrix) Cols() int { return m.c }

// Options returns the policy this matrix was built with.
func (m *Matrix) Options() Options { return m.opts }

// ToSlices returns a fresh nested copy of all elements, equal to
// selecting All() rows and then All() columns.
func (m *Matrix) ToSlices() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// row returns the storage of 0-based row i without copying.
func (m *Matrix) row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// Equal reports whether a and b have the same dimensions and exactly equal
// elements. Two nil matrices are equal; NaN never equals NaN.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// String dumps rows for diagnostics as "[a, b]\n" lines using %g.
// For fixed-precision output use Format or Display.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
