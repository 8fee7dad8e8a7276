package gml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/gsl8engine/values"
)

func TestEncodeArrayIndexBounds(t *testing.T) {
	_, err := EncodeArrayIndex(0, 0)
	require.NoError(t, err)

	_, err = EncodeArrayIndex(31999, 31999)
	require.NoError(t, err)

	_, err = EncodeArrayIndex(32000, 0)
	require.Error(t, err)
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, KindInvalidArrayIndex, gerr.Kind)

	_, err = EncodeArrayIndex(-1, 0)
	require.Error(t, err)

	_, err = EncodeArrayIndex(0, 32000)
	require.Error(t, err)

	_, err = EncodeArrayIndex(0, -1)
	require.Error(t, err)
}

func TestEncodeArrayIndexPacking(t *testing.T) {
	idx, err := EncodeArrayIndex(2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(2*ArrayDimension+3), idx)
}

func TestFieldHolderRoundTrip(t *testing.T) {
	h := NewFieldHolder()
	_, ok := h.getField(5, 0)
	assert.False(t, ok)

	h.setField(5, 0, values.NewInt(10))
	v, ok := h.getField(5, 0)
	require.True(t, ok)
	assert.Equal(t, int32(10), v.ToInt32())

	h.setField(5, 1, values.NewInt(20))
	v, ok = h.getField(5, 1)
	require.True(t, ok)
	assert.Equal(t, int32(20), v.ToInt32())

	// The scalar slot (index 0) is untouched by writing index 1.
	v, ok = h.getField(5, 0)
	require.True(t, ok)
	assert.Equal(t, int32(10), v.ToInt32())
}
