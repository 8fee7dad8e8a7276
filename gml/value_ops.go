package gml

import (
	"math"
	"strings"

	"github.com/isgasho/gsl8engine/values"
)

// Call evaluates a binary operator against two already-evaluated operands
//. String and number operands never mix: arithmetic, bitwise
// and comparison operators reject a type mismatch with
// InvalidOperandsBinary. The logical And/Or/Xor accept any operands and
// convert each through IsTruthy (a string is never true).
func (op BinaryOperator) Call(lhs, rhs values.Value) (values.Value, error) {
	switch op {
	case Add:
		return binaryAdd(op, lhs, rhs)
	case Subtract, Multiply, Divide, IntDivide, Modulo,
		BitwiseAnd, BitwiseOr, BitwiseXor, BinaryShiftLeft, BinaryShiftRight:
		return binaryNumeric(op, lhs, rhs)
	case And, Or, Xor:
		return binaryLogical(op, lhs, rhs)
	case Equal, NotEqual, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		return binaryCompare(op, lhs, rhs)
	default:
		return values.Zero, InvalidBinaryOperatorError(op)
	}
}

func binaryAdd(op BinaryOperator, lhs, rhs values.Value) (values.Value, error) {
	if lhs.IsString() && rhs.IsString() {
		return values.NewString(lhs.Str() + rhs.Str()), nil
	}
	if lhs.IsReal() && rhs.IsReal() {
		return values.NewReal(lhs.Real() + rhs.Real()), nil
	}
	return values.Zero, InvalidOperandsBinary(op, lhs, rhs)
}

func binaryNumeric(op BinaryOperator, lhs, rhs values.Value) (values.Value, error) {
	if !lhs.IsReal() || !rhs.IsReal() {
		return values.Zero, InvalidOperandsBinary(op, lhs, rhs)
	}
	a, b := float64(lhs.Real()), float64(rhs.Real())
	switch op {
	case Subtract:
		return values.NewFloat(a - b), nil
	case Multiply:
		return values.NewFloat(a * b), nil
	case Divide:
		if b == 0 {
			return values.Zero, divisionByZero("/")
		}
		return values.NewFloat(a / b), nil
	case IntDivide:
		if b == 0 {
			return values.Zero, divisionByZero("div")
		}
		return values.NewFloat(math.Trunc(a / b)), nil
	case Modulo:
		if b == 0 {
			return values.Zero, divisionByZero("mod")
		}
		return values.NewFloat(math.Mod(a, b)), nil
	case BitwiseAnd:
		return values.NewInt(lhs.ToInt32() & rhs.ToInt32()), nil
	case BitwiseOr:
		return values.NewInt(lhs.ToInt32() | rhs.ToInt32()), nil
	case BitwiseXor:
		return values.NewInt(lhs.ToInt32() ^ rhs.ToInt32()), nil
	case BinaryShiftLeft:
		return values.NewInt(lhs.ToInt32() << uint32(rhs.ToInt32())), nil
	case BinaryShiftRight:
		return values.NewInt(lhs.ToInt32() >> uint32(rhs.ToInt32())), nil
	default:
		return values.Zero, InvalidBinaryOperatorError(op)
	}
}

func binaryLogical(op BinaryOperator, lhs, rhs values.Value) (values.Value, error) {
	a, b := lhs.IsTruthy(), rhs.IsTruthy()
	switch op {
	case And:
		return values.NewBool(a && b), nil
	case Or:
		return values.NewBool(a || b), nil
	case Xor:
		return values.NewBool(a != b), nil
	default:
		return values.Zero, InvalidBinaryOperatorError(op)
	}
}

func binaryCompare(op BinaryOperator, lhs, rhs values.Value) (values.Value, error) {
	if lhs.IsString() != rhs.IsString() {
		return values.Zero, InvalidOperandsBinary(op, lhs, rhs)
	}
	if lhs.IsString() {
		cmp := strings.Compare(lhs.Str(), rhs.Str())
		switch op {
		case Equal:
			return values.NewBool(cmp == 0), nil
		case NotEqual:
			return values.NewBool(cmp != 0), nil
		case GreaterThan:
			return values.NewBool(cmp > 0), nil
		case GreaterThanOrEqual:
			return values.NewBool(cmp >= 0), nil
		case LessThan:
			return values.NewBool(cmp < 0), nil
		case LessThanOrEqual:
			return values.NewBool(cmp <= 0), nil
		}
	}
	a, b := float64(lhs.Real()), float64(rhs.Real())
	switch op {
	case Equal:
		return values.NewBool(lhs.Real().AlmostEquals(rhs.Real())), nil
	case NotEqual:
		return values.NewBool(!lhs.Real().AlmostEquals(rhs.Real())), nil
	case GreaterThan:
		return values.NewBool(a > b), nil
	case GreaterThanOrEqual:
		return values.NewBool(a >= b), nil
	case LessThan:
		return values.NewBool(a < b), nil
	case LessThanOrEqual:
		return values.NewBool(a <= b), nil
	}
	return values.Zero, InvalidBinaryOperatorError(op)
}

func divisionByZero(symbol string) *Error {
	return FunctionError(symbol, "division by zero")
}

// Call evaluates a unary operator against an already-evaluated operand.
// Not and Complement reject strings; Neg is numeric-only.
func (op UnaryOperator) Call(v values.Value) (values.Value, error) {
	switch op {
	case Neg:
		if !v.IsReal() {
			return values.Zero, InvalidOperandsUnary(op, v)
		}
		return values.NewFloat(-float64(v.Real())), nil
	case Not:
		if !v.IsReal() {
			return values.Zero, InvalidOperandsUnary(op, v)
		}
		return values.NewBool(!v.IsTruthy()), nil
	case Complement:
		if !v.IsReal() {
			return values.Zero, InvalidOperandsUnary(op, v)
		}
		return values.NewInt(^v.ToInt32()), nil
	default:
		return values.Zero, InvalidUnaryOperatorError(op)
	}
}

func InvalidBinaryOperatorError(op BinaryOperator) *Error {
	return &Error{Kind: KindInvalidBinaryOperator, Op: op}
}

func InvalidUnaryOperatorError(op UnaryOperator) *Error {
	return &Error{Kind: KindInvalidUnaryOperator, Op: op}
}
