// SPDX-License-Identifier: MIT

// Package matrix: arithmetic over the Operand union.
// All functions validate fail-fast, never mutate their operands and return a
// freshly allocated Matrix that inherits the left matrix operand's options.
package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opNegate = "Negate"
)

// Add returns the element-wise sum a + b.
// Stage 1 (Validate): a non-nil; b must be a non-nil *Matrix of the same shape.
// Stage 2 (Execute): single flat loop over both buffers.
// Errors: ErrNilMatrix, ErrUnsupportedOperand, *DimensionMismatchError.
// Complexity: O(r·c) time and memory.
func Add(a *Matrix, b Operand) (*Matrix, error) {
	return addSub(opAdd, "+", a, b, 1)
}

// Sub returns the element-wise difference a - b under the same rules as Add.
// Complexity: O(r·c) time and memory.
func Sub(a *Matrix, b Operand) (*Matrix, error) {
	return addSub(opSub, "-", a, b, -1)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(tag, symbol string, a *Matrix, b Operand, sign float64) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	bm, ok := b.(*Matrix)
	if !ok {
		return nil, unsupportedf(tag, symbol, a, b)
	}
	if err := validateNotNil(bm); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := validateSameShape(tag, a, bm); err != nil {
		return nil, err
	}

	res := newMatrix(a.r, a.c, a.opts)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*bm.data[idx]
	}

	return res, nil
}

// Mul multiplies two operands.
//   - Matrix × Scalar and Scalar × Matrix scale every element; both orders
//     give identical results.
//   - Matrix × Matrix follows a's ProductRule (see WithStandardProduct).
//   - Any other combination fails with ErrUnsupportedOperand.
//
// Errors: ErrNilMatrix, ErrUnsupportedOperand, *DimensionMismatchError.
// Complexity: O(r·c) for scaling, O(rows·inner·cols) for the product.
func Mul(a, b Operand) (*Matrix, error) {
	switch x := a.(type) {
	case *Matrix:
		if err := validateNotNil(x); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		switch y := b.(type) {
		case *Matrix:
			if err := validateNotNil(y); err != nil {
				return nil, matrixErrorf(opMul, err)
			}

			return product(x, y)
		case Scalar:
			return scale(x, float64(y)), nil
		}
	case Scalar:
		if y, ok := b.(*Matrix); ok {
			if err := validateNotNil(y); err != nil {
				return nil, matrixErrorf(opMul, err)
			}

			return scale(y, float64(x)), nil
		}
	}

	return nil, unsupportedf(opMul, "*", a, b)
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return scale(m, alpha), nil
}

// Negate returns -m, i.e. Scale(m, -1).
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Negate(m *Matrix) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return scale(m, -1), nil
}

func scale(m *Matrix, alpha float64) *Matrix {
	res := newMatrix(m.r, m.c, m.opts)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res
}

// product computes a × b under a's ProductRule.
// Stage 1 (Validate): shape contract via validateProduct.
// Stage 2 (Execute): i-k-j loop over the flat buffers.
//
// Legacy rule: out is n×n with n = a.Rows (== b.Cols) and the sum runs over
// k < min(a.Cols, b.Rows); this reproduces the historical shape check.
func product(a, b *Matrix) (*Matrix, error) {
	rows, cols, inner, err := validateProduct(a.opts.productRule, a, b)
	if err != nil {
		return nil, err
	}

	res := newMatrix(rows, cols, a.opts)
	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < rows; i++ {
		rowA = i * a.c
		rowR = i * cols
		for k = 0; k < inner; k++ {
			av = a.data[rowA+k]
			rowB = k * b.c
			for j = 0; j < cols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}
