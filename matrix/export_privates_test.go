// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported resolution logic to matrix_test only.

// ResolveIndex returns the 0-based offsets x selects on an axis of length n.
func ResolveIndex(x Index, n int) ([]int, error) { return x.resolve(n) }

// ValidateRect exposes the rectangular-rows check.
func ValidateRect(lens []int) (int, int, error) { return validateRect(lens) }

// ValidateProduct exposes the Matrix×Matrix shape contract of rule.
func ValidateProduct(rule ProductRule, a, b *Matrix) (int, int, int, error) {
	return validateProduct(rule, a, b)
}

// ToFloat exposes element conversion used by NewFromValues.
func ToFloat(v any) (float64, bool) { return toFloat(v) }
