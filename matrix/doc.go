// SPDX-License-Identifier: MIT

// Package matrix provides an immutable, 1-indexed dense matrix of float64
// values with two-step row/column selection and basic algebra.
//
// What & Why:
//
//	Matrix stores a rectangular grid in a flat row-major buffer and never
//	changes after construction. Element access mirrors the mathematical
//	m[i][j] notation: the first Select picks rows and yields a SliceView,
//	the second Select on that view picks columns and yields a Selection,
//	which is either a bare scalar (exactly one row and one column) or a
//	nested grid.
//
//	    m, _ := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
//	    v, _ := m.Select(matrix.At(2))           // row 2
//	    s, _ := v.Select(matrix.Span(1, 2).Index()) // columns 1..2
//	    s.Grid()                                 // [[4 5]]
//
// Indexing rules:
//
//   - Integers are 1-based and must lie in 1..n, otherwise ErrOutOfRange.
//   - Ranges default their start to 1; an explicit start is shifted by one,
//     while the stop is used as given (exclusive, 0-based). Span(1, 2)
//     therefore selects positions 1 and 2.
//   - Anything else (the zero Index) fails with ErrIndexType.
//
// Algebra:
//
//   - Add/Sub require identical shapes (DimensionMismatchError otherwise).
//   - Mul dispatches on the closed Operand union: Scalar×Matrix and
//     Matrix×Scalar scale; Matrix×Matrix uses the left operand's ProductRule.
//   - Negate is Scale by -1.
//
// Complexity:
//
//	Dims/Rows/Cols: O(1). Select on a matrix: O(rows selected).
//	Select on a view, Add, Scale: O(r*c). Mul: O(r*n*c).
//
// Concurrency:
//
//	Matrices are read-only after New, so any number of goroutines may share
//	one without locking. A SliceView borrows its matrix and should not be
//	kept past the expression that produced it.
package matrix
