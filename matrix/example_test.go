package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixlib/matrix"
)

// ExampleMatrix_Select shows the two-step m[row][col] access.
func ExampleMatrix_Select() {
	m, _ := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})

	// m[2][3] → bare scalar
	row, _ := m.Select(matrix.At(2))
	s, _ := row.Select(matrix.At(3))
	v, _ := s.Scalar()
	fmt.Println(v)

	// m[:][1] → first column as single-element rows
	col, _ := m.Slice(matrix.All().Index(), matrix.At(1))
	fmt.Println(col.Grid())

	// Output:
	// 6
	// [[1] [4]]
}

// ExampleAdd shows element-wise addition and its shape check.
func ExampleAdd() {
	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.New([][]float64{{1, 2}, {3, 4}})

	sum, _ := matrix.Add(a, b)
	fmt.Print(sum)

	c, _ := matrix.New([][]float64{{1, 2, 1}, {3, 4, 4}})
	_, err := matrix.Add(c, a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// [2, 4]
	// [6, 8]
	// true
}

// ExampleMul shows scalar scaling from either side and a matrix product.
func ExampleMul() {
	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}})

	left, _ := matrix.Mul(matrix.Scalar(2), a)
	right, _ := matrix.Mul(a, matrix.Scalar(2))
	fmt.Println(matrix.Equal(left, right))

	p, _ := matrix.Mul(a, a)
	fmt.Print(p)

	// Output:
	// true
	// [7, 10]
	// [15, 22]
}

// ExampleMatrix_Display prints fixed-precision rows to standard output.
func ExampleMatrix_Display() {
	m, _ := matrix.New([][]float64{{1, 0.5}, {-2, 3.14}})

	_ = m.Display(2)

	// Output:
	// 1.00 0.50
	// -2.00 3.14
}
