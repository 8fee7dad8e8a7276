package gml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMagicConstants(t *testing.T) {
	eng := testEngine(nil)
	this := mustSpawn(eng, 0, 0)
	other := mustSpawn(eng, 0, 0)
	ctx := &Context{This: this, Other: other, Locals: NewFieldHolder()}

	tests := []struct {
		name string
		n    int32
		want Target
	}{
		{"self", Self, singleTarget(this)},
		{"other", Other, singleTarget(other)},
		{"all", All, allTarget()},
		{"noone", Noone, noneTarget()},
		{"global", Global, globalTarget()},
		{"local", Local, localTarget()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.resolveMagic(tt.n, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInstanceIDAndObjectClass(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	inst := eng.Instances.Get(h)
	ctx := NewContext(h)

	got, err := eng.resolveMagic(inst.ID, ctx)
	require.NoError(t, err)
	assert.Equal(t, TargetSingle, got.Kind)
	assert.True(t, got.Valid)
	assert.Equal(t, h, got.Handle)

	got, err = eng.resolveMagic(inst.ID+1, ctx) // no instance with this id
	require.NoError(t, err)
	assert.Equal(t, TargetSingle, got.Kind)
	assert.False(t, got.Valid)

	got, err = eng.resolveMagic(0, ctx) // object class 0
	require.NoError(t, err)
	assert.Equal(t, TargetObjects, got.Kind)
	assert.Equal(t, int32(0), got.Class)

	got, err = eng.resolveMagic(-100, ctx) // negative, non-magic
	require.NoError(t, err)
	assert.Equal(t, TargetSingle, got.Kind)
	assert.False(t, got.Valid)
}

func TestResolveFieldHonorsGlobalVarsSet(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	target, err := eng.ResolveField(IdentUnknown{}, ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, TargetSingle, target.Kind)
	assert.Equal(t, h, target.Handle)

	eng.GlobalVars[7] = true
	target, err = eng.ResolveField(IdentUnknown{}, ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, TargetGlobal, target.Kind)

	// An unrelated field id is unaffected.
	target, err = eng.ResolveField(IdentUnknown{}, ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, TargetSingle, target.Kind)
}
