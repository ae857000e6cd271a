// SPDX-License-Identifier: MIT

// Package matrix: the closed Operand union consumed by Add, Sub and Mul.
//
// Variants:
//   - Scalar      : a real number.
//   - *Matrix     : a matrix.
//   - invalid     : produced by OperandOf for any other dynamic value; every
//     operator rejects it with ErrUnsupportedOperand.
package matrix

import "fmt"

// Operand is a value an arithmetic operator accepts. The interface is sealed:
// only Scalar, *Matrix and the package's invalid variant implement it.
type Operand interface {
	operandName() string
}

func (Scalar) operandName() string { return "Scalar" }

func (*Matrix) operandName() string { return "Matrix" }

// invalidOperand remembers the Go type of a rejected dynamic value.
type invalidOperand struct {
	typ string
}

func (o invalidOperand) operandName() string { return o.typ }

// OperandOf lifts a dynamic value into the Operand union.
//   - any Go integer or float kind → Scalar
//   - *Matrix                      → itself
//   - anything else                → invalid variant naming its type
func OperandOf(v any) Operand {
	switch x := v.(type) {
	case *Matrix:
		return x
	case Operand:
		return x
	}
	if f, ok := toFloat(v); ok {
		return Scalar(f)
	}

	return invalidOperand{typ: fmt.Sprintf("%T", v)}
}

// operandTypeName names op for error messages; nil interfaces become "<nil>".
func operandTypeName(op Operand) string {
	if op == nil {
		return "<nil>"
	}

	return op.operandName()
}

// unsupportedf builds the operator type error, e.g.
// `Add: operand "+" is not supported for Matrix and string: matrix: unsupported operand`.
func unsupportedf(tag, symbol string, a, b Operand) error {
	return fmt.Errorf("%s: operand %q is not supported for %s and %s: %w",
		tag, symbol, operandTypeName(a), operandTypeName(b), ErrUnsupportedOperand)
}
