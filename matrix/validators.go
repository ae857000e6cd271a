// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, nil and element checks.
//  - Return plain sentinel errors (or *DimensionMismatchError) so call sites
//    can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package matrix

// validateRect checks that the row lengths describe a non-empty rectangle and
// returns its dimensions.
// Errors: ErrBadShape for zero rows, zero columns or unequal lengths.
// Complexity: O(r).
func validateRect(lens []int) (rows, cols int, err error) {
	if len(lens) == 0 {
		return 0, 0, ErrBadShape
	}
	cols = lens[0]
	for _, n := range lens[1:] {
		if n != cols {
			return 0, 0, ErrBadShape
		}
	}
	if cols == 0 {
		return 0, 0, ErrBadShape
	}

	return len(lens), cols, nil
}

// validateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func validateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil. Complexity: O(1).
func validateSameShape(op string, a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return &DimensionMismatchError{Op: op, A: a.Dims(), B: b.Dims()}
	}

	return nil
}

// validateProduct checks the Matrix×Matrix contract of rule and returns the
// result shape (rows, cols) and the length of the summation range.
// Complexity: O(1).
func validateProduct(rule ProductRule, a, b *Matrix) (rows, cols, inner int, err error) {
	switch rule {
	case ProductStandard:
		if a.c != b.r {
			return 0, 0, 0, &DimensionMismatchError{Op: opMul, A: a.Dims(), B: b.Dims()}
		}

		return a.r, b.c, a.c, nil
	default:
		if a.r != b.c {
			return 0, 0, 0, &DimensionMismatchError{Op: opMul, A: a.Dims(), B: b.Dims()}
		}
		n := min(a.r, b.c)

		return n, n, min(a.c, b.r), nil
	}
}

// toFloat converts any Go integer or floating-point kind to float64.
// Booleans, strings, nil and every other type are rejected.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case Scalar:
		return float64(x), true
	default:
		return 0, false
	}
}
