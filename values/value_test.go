package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealRoundBankers(t *testing.T) {
	tests := []struct {
		name string
		in   Real
		want int32
	}{
		{"round down", Real(2.4), 2},
		{"round up", Real(2.6), 3},
		{"tie rounds to even (down)", Real(2.5), 2},
		{"tie rounds to even (up)", Real(3.5), 4},
		{"negative tie", Real(-2.5), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Round())
		})
	}
}

func TestRealTruthy(t *testing.T) {
	assert.True(t, Real(0.5).Truthy())
	assert.True(t, Real(1.0).Truthy())
	assert.False(t, Real(0.49999).Truthy())
	assert.False(t, Real(0.0).Truthy())
}

func TestAlmostEquals(t *testing.T) {
	a := NewReal(Real(1.0))
	b := NewReal(Real(1.0 + 1e-14))
	assert.True(t, a.AlmostEquals(b))

	c := NewReal(Real(1.0 + 1e-10))
	assert.False(t, a.AlmostEquals(c))

	// Mixed type never equal, never errors.
	s := NewString("1")
	assert.False(t, a.AlmostEquals(s))
}

func TestValueToInt32String(t *testing.T) {
	assert.Equal(t, int32(0), NewString("5").ToInt32())
	assert.Equal(t, int32(5), NewReal(Real(5.4)).ToInt32())
}

func TestValueIsTruthy(t *testing.T) {
	assert.True(t, NewBool(true).IsTruthy())
	assert.False(t, NewBool(false).IsTruthy())
	assert.False(t, NewString("1").IsTruthy())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "hi", NewString("hi").String())
	assert.Equal(t, "3", NewInt(3).String())
	assert.Equal(t, "3.5", NewFloat(3.5).String())
}
