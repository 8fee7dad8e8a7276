package gml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/gsl8engine/values"
)

func TestBinaryAddStringConcat(t *testing.T) {
	v, err := Add.Call(values.NewString("hi"), values.NewString("!"))
	require.NoError(t, err)
	assert.True(t, v.IsString())
	assert.Equal(t, "hi!", v.Str())
}

func TestBinaryAddMixedTypesFails(t *testing.T) {
	_, err := Add.Call(values.NewString("hi"), values.NewInt(1))
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, KindInvalidOperandsBinary, gerr.Kind)
}

func TestDivide(t *testing.T) {
	v, err := Divide.Call(values.NewInt(7), values.NewInt(2))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, float64(v.Real()), 1e-12)
}

func TestIntDivide(t *testing.T) {
	v, err := IntDivide.Call(values.NewInt(7), values.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.ToInt32())
}

func TestIntDivideByZero(t *testing.T) {
	_, err := IntDivide.Call(values.NewInt(7), values.NewInt(0))
	require.Error(t, err)
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, KindFunctionError, gerr.Kind)
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide.Call(values.NewInt(1), values.NewInt(0))
	require.Error(t, err)
}

func TestModuloByZero(t *testing.T) {
	_, err := Modulo.Call(values.NewInt(1), values.NewInt(0))
	require.Error(t, err)
}

func TestBitwiseAndShiftCoerceThroughInt32(t *testing.T) {
	tests := []struct {
		name string
		op   BinaryOperator
		a, b int32
		want int32
	}{
		{"and", BitwiseAnd, 0b1100, 0b1010, 0b1000},
		{"or", BitwiseOr, 0b1100, 0b1010, 0b1110},
		{"xor", BitwiseXor, 0b1100, 0b1010, 0b0110},
		{"shl", BinaryShiftLeft, 1, 4, 16},
		{"shr", BinaryShiftRight, 16, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.op.Call(values.NewInt(tt.a), values.NewInt(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.ToInt32())
		})
	}
}

func TestLogicalOperatorsConvertViaTruthiness(t *testing.T) {
	truthy, falsy := values.NewInt(1), values.NewInt(0)
	v, err := And.Call(truthy, falsy)
	require.NoError(t, err)
	assert.False(t, v.IsTruthy())

	v, err = Or.Call(truthy, falsy)
	require.NoError(t, err)
	assert.True(t, v.IsTruthy())

	v, err = Xor.Call(truthy, truthy)
	require.NoError(t, err)
	assert.False(t, v.IsTruthy())
}

func TestEqualityToleranceAndMixedTypes(t *testing.T) {
	v, err := Equal.Call(values.NewFloat(1.0), values.NewFloat(1.0+1e-14))
	require.NoError(t, err)
	assert.True(t, v.IsTruthy())

	_, err = Equal.Call(values.NewString("1"), values.NewInt(1))
	require.Error(t, err)
}

func TestCompareRejectsMixedTypes(t *testing.T) {
	_, err := GreaterThan.Call(values.NewString("a"), values.NewInt(1))
	require.Error(t, err)
}

func TestUnaryNotAndComplementRejectStrings(t *testing.T) {
	_, err := Not.Call(values.NewString("x"))
	require.Error(t, err)
	_, err = Complement.Call(values.NewString("x"))
	require.Error(t, err)
	_, err = Neg.Call(values.NewString("x"))
	require.Error(t, err)
}

func TestUnaryComplementIsBitwiseNot(t *testing.T) {
	v, err := Complement.Call(values.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v.ToInt32())
}
