package cli

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixlib/matrix"
)

// Float is a matrix element in JSON output. Finite values encode as JSON
// numbers; NaN and ±Inf, which JSON numbers cannot hold, encode as the
// strings "NaN", "+Inf" and "-Inf".
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// toFloats copies grid into its JSON element type.
func toFloats(grid [][]float64) [][]Float {
	out := make([][]Float, len(grid))
	for i, row := range grid {
		out[i] = make([]Float, len(row))
		for j, v := range row {
			out[i][j] = Float(v)
		}
	}
	return out
}

// MatrixResult is the success payload of commands that produce a matrix.
type MatrixResult struct {
	Dims matrix.Dims `json:"dims"`
	Rows [][]Float   `json:"rows"`

	text string
}

// String returns the fixed-precision rendering used in text mode.
func (r *MatrixResult) String() string {
	return r.text
}

// newMatrixResult renders m once for text mode and snapshots its rows for JSON.
func newMatrixResult(m *matrix.Matrix, precision int) (*MatrixResult, error) {
	s, err := matrix.Format(m, precision)
	if err != nil {
		return nil, err
	}
	return &MatrixResult{
		Dims: m.Dims(),
		Rows: toFloats(m.ToSlices()),
		text: strings.TrimSuffix(s, "\n"),
	}, nil
}

// DimsResult is the success payload of the dims command.
type DimsResult struct {
	matrix.Dims
}

// SelectionResult is the success payload of the get command.
// Exactly one of Scalar and Rows is set.
type SelectionResult struct {
	Kind   string    `json:"kind"` // "scalar" | "grid"
	Scalar *Float    `json:"scalar,omitempty"`
	Rows   [][]Float `json:"rows,omitempty"`

	text string
}

// String returns the fixed-precision rendering used in text mode.
func (r *SelectionResult) String() string {
	return r.text
}

// newSelectionResult converts a Selection into its CLI payload.
func newSelectionResult(s matrix.Selection, precision int) *SelectionResult {
	if v, ok := s.Scalar(); ok {
		f := Float(v)
		return &SelectionResult{
			Kind:   s.Kind().String(),
			Scalar: &f,
			text:   strconv.FormatFloat(v, 'f', precision, 64),
		}
	}

	grid := s.Grid()
	return &SelectionResult{
		Kind: s.Kind().String(),
		Rows: toFloats(grid),
		text: formatGrid(grid, precision),
	}
}

// formatGrid renders a selection that may be empty or hold empty rows,
// which a Matrix cannot represent.
func formatGrid(grid [][]float64, precision int) string {
	if len(grid) == 0 {
		return "(empty selection)"
	}

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'f', precision, 64))
		}
	}
	return b.String()
}
