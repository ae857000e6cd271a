// SPDX-License-Identifier: MIT

// Package matrix: fixed-precision rendering (Format, Fprint, Display).
package matrix

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	ctxFormat  = "Format"
	ctxFprint  = "Fprint"
	ctxDisplay = "Display"
)

// Format renders m as one line per row. Every element is written in
// fixed-point notation with exactly precision fractional digits, elements
// are separated by a single space, and each line ends with '\n'.
// Precision 0 writes rounded integers without a decimal point.
//
// Errors: ErrNilMatrix, ErrBadPrecision (precision < 0).
// Complexity: O(r·c).
func Format(m *Matrix, precision int) (string, error) {
	if err := validateNotNil(m); err != nil {
		return "", matrixErrorf(ctxFormat, err)
	}
	if precision < 0 {
		return "", fmt.Errorf("%s(%d): %w", ctxFormat, precision, ErrBadPrecision)
	}

	var b strings.Builder
	buf := make([]byte, 0, 32)
	for i := 0; i < m.r; i++ {
		for j, v := range m.row(i) {
			if j > 0 {
				b.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], v, 'f', precision, 64)
			b.Write(buf)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// Fprint writes Format(m, precision) to w.
func Fprint(w io.Writer, m *Matrix, precision int) error {
	s, err := Format(m, precision)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, s); err != nil {
		return matrixErrorf(ctxFprint, err)
	}

	return nil
}

// Display prints m to standard output with the given precision.
func (m *Matrix) Display(precision int) error {
	if err := Fprint(os.Stdout, m, precision); err != nil {
		return matrixErrorf(ctxDisplay, err)
	}

	return nil
}
