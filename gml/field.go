package gml

import "github.com/isgasho/gsl8engine/values"

// ArrayDimension is the per-axis bound for a Field's 2-D encoding
//: both dimensions of a `[i][j]` access must lie in
// [0, ArrayDimension).
const ArrayDimension = 32000

// Field is sparse 1-D indexed storage mapping a non-negative integer index
// to a Value. A scalar access uses index 0. A 2-D access
// `[i][j]` is encoded by the caller (see EncodeArrayIndex) as the single
// index `i*32000 + j` before reaching Field.
type Field struct {
	values map[int32]values.Value
}

// NewField constructs a Field with one initial entry, mirroring the
// reference engine's `Field::new(index, value)` constructor used whenever
// a field map doesn't yet have an entry for a given id.
func NewField(index int32, value values.Value) *Field {
	f := &Field{values: map[int32]values.Value{index: value}}
	return f
}

// Get returns the value at index, or false if it was never written.
func (f *Field) Get(index int32) (values.Value, bool) {
	if f == nil {
		return values.Zero, false
	}
	v, ok := f.values[index]
	return v, ok
}

// Set writes value at index, growing the sparse map as needed.
func (f *Field) Set(index int32, value values.Value) {
	if f.values == nil {
		f.values = make(map[int32]values.Value)
	}
	f.values[index] = value
}

// EncodeArrayIndex resolves a 1-D or 2-D array index to the flat index a
// Field is keyed by, enforcing the [0, ArrayDimension) bound on each
// dimension.
func EncodeArrayIndex(i, j int32) (int32, error) {
	if i < 0 || i >= ArrayDimension {
		return 0, InvalidArrayIndex(i)
	}
	if j < 0 || j >= ArrayDimension {
		return 0, InvalidArrayIndex(j)
	}
	return i*ArrayDimension + j, nil
}

// FieldHolder owns a set of fields keyed by field-id, used both for an
// instance's user fields and for globals/locals.
type FieldHolder struct {
	fields map[int]*Field
}

// NewFieldHolder constructs an empty holder, as used for a fresh script
// call's locals and for the engine's Globals.
func NewFieldHolder() *FieldHolder {
	return &FieldHolder{fields: make(map[int]*Field)}
}

func (h *FieldHolder) getField(id int, index int32) (values.Value, bool) {
	f, ok := h.fields[id]
	if !ok {
		return values.Zero, false
	}
	return f.Get(index)
}

func (h *FieldHolder) setField(id int, index int32, v values.Value) {
	if f, ok := h.fields[id]; ok {
		f.Set(index, v)
		return
	}
	h.fields[id] = NewField(index, v)
}
