// SPDX-License-Identifier: MIT

// Package matrix - two-step selection: Matrix.Select → SliceView.Select → Selection.
//
// Purpose:
//   - First step picks rows and returns a SliceView that borrows the matrix
//     (row offsets only, no element copy).
//   - Second step picks columns across the chosen rows and copies them out.
//   - A single selected element comes back as a scalar; everything else,
//     including a lone row or column, comes back as a nested grid.
package matrix

import "fmt"

const (
	ctxSelect     = "Select"
	ctxViewSelect = "SliceView.Select"
	ctxGet        = "Get"
)

// SliceView is the transient result of selecting rows from a Matrix.
// It references the matrix storage and must not outlive the expression that
// created it. It is not comparable to plain data; call Select to finish.
type SliceView struct {
	base *Matrix
	rows []int // 0-based row offsets into base, in selection order
}

// Select picks rows of m (first step of m[rows][cols]).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrZeroStep, ErrIndexType.
// Complexity: O(rows selected).
func (m *Matrix) Select(idx Index) (SliceView, error) {
	if err := validateNotNil(m); err != nil {
		return SliceView{}, matrixErrorf(ctxSelect, err)
	}
	rows, err := idx.resolve(m.r)
	if err != nil {
		return SliceView{}, fmt.Errorf("%s(%s): rows: %w", ctxSelect, idx, err)
	}

	return SliceView{base: m, rows: rows}, nil
}

// Len returns the number of selected rows.
func (v SliceView) Len() int { return len(v.rows) }

// Select picks columns of every selected row (second step of m[rows][cols])
// and returns a copy of the chosen elements.
// Errors: ErrNilMatrix (zero SliceView), ErrOutOfRange, ErrZeroStep, ErrIndexType.
// Complexity: O(rows selected * columns selected).
func (v SliceView) Select(idx Index) (Selection, error) {
	if v.base == nil {
		return Selection{}, matrixErrorf(ctxViewSelect, ErrNilMatrix)
	}
	cols, err := idx.resolve(v.base.c)
	if err != nil {
		return Selection{}, fmt.Errorf("%s(%s): cols: %w", ctxViewSelect, idx, err)
	}

	grid := make([][]float64, len(v.rows))
	for i, ri := range v.rows {
		src := v.base.row(ri)
		out := make([]float64, len(cols))
		for j, cj := range cols {
			out[j] = src[cj]
		}
		grid[i] = out
	}

	if len(grid) == 1 && len(grid[0]) == 1 {
		return Selection{kind: KindScalar, value: grid[0][0]}, nil
	}

	return Selection{kind: KindGrid, grid: grid}, nil
}

// Selection is the finished result of a two-step access: either a scalar or
// a grid of copied values.
type Selection struct {
	kind  SelectionKind
	value float64
	grid  [][]float64
}

// Kind reports which variant s holds.
func (s Selection) Kind() SelectionKind { return s.kind }

// IsScalar reports whether exactly one element was selected.
func (s Selection) IsScalar() bool { return s.kind == KindScalar }

// Scalar returns the single element and true, or (0, false) for a grid.
func (s Selection) Scalar() (float64, bool) {
	if s.kind != KindScalar {
		return 0, false
	}

	return s.value, true
}

// Grid returns the selected values as rows. A scalar comes back as [[v]].
// The returned slices belong to the caller.
func (s Selection) Grid() [][]float64 {
	if s.kind == KindScalar {
		return [][]float64{{s.value}}
	}

	return s.grid
}

// Get is the m[i][j] shortcut: 1-based row i, column j, as a bare float.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Get(i, j int) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(ctxGet, err)
	}
	if i < 1 || i > m.r || j < 1 || j > m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxGet, i, j, ErrOutOfRange)
	}

	return m.data[(i-1)*m.c+(j-1)], nil
}

// Slice composes both selection steps: m.Select(rows) then Select(cols).
func (m *Matrix) Slice(rows, cols Index) (Selection, error) {
	v, err := m.Select(rows)
	if err != nil {
		return Selection{}, err
	}

	return v.Select(cols)
}
