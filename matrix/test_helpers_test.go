// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep all generated data integer-valued so products are exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixlib/matrix"
)

// MustNew BUILDS a Matrix from rows or fails the test (fatal on error).
// Implementation:
//   - Stage 1: matrix.New(rows, opts...).
//   - Stage 2: t.Fatalf on error to abort the test early.
func MustNew(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", rows, err)
	}

	return m
}

// RandomInts RETURNS an r×c grid of integers in [-5, 5] drawn from seed.
// Integer data keeps every sum exact regardless of accumulation order.
func RandomInts(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			out[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return out
}

// MustSlice RUNS m.Slice(rows, cols) or fails the test.
func MustSlice(t testing.TB, m *matrix.Matrix, rows, cols matrix.Index) matrix.Selection {
	t.Helper()
	s, err := m.Slice(rows, cols)
	if err != nil {
		t.Fatalf("Slice(%s, %s): %v", rows, cols, err)
	}

	return s
}

// all is shorthand for matrix.All().Index().
func all() matrix.Index { return matrix.All().Index() }
