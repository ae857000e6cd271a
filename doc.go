// Package matrixlib is a small dense-matrix toolkit with 1-based indexing:
// build a matrix from rectangular rows, pick elements the way you would
// write them on paper (m[row][col], counted from 1), and combine matrices
// with addition, scaling and products.
//
// What is inside?
//
//	matrix/         immutable Matrix, two-step Select (rows, then columns),
//	                Add/Sub/Mul/Scale/Negate, fixed-precision Display
//	internal/cli/   YAML/JSON matrix files, text and JSON output
//	cmd/matrixlib/  the matrixlib command
//
// Quick example:
//
//	m, _ := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
//	v, _ := m.Get(2, 3)                                  // 6
//	col, _ := m.Slice(matrix.All().Index(), matrix.At(1)) // [[1] [4]]
//
// Every failure is a wrapped sentinel from matrix/errors.go; match it with
// errors.Is or classify it with matrix.KindOf.
//
//	go install github.com/katalvlaran/matrixlib/cmd/matrixlib@latest
package matrixlib
