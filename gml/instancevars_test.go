package gml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/gsl8engine/values"
)

func varAcc(v InstanceVariable) VariableAccessor {
	return VariableAccessor{Var: v, Array: ArrayNone{}, Owner: IdentOwn{}}
}

// TestBboxStalenessOnMotionWrite checks that moving x marks the bbox
// stale, and that bbox_left shifts by exactly the movement delta on a
// static sprite.
func TestBboxStalenessOnMotionWrite(t *testing.T) {
	eng := testEngine(nil)
	assets := eng.Assets.(*MemoryAssets)
	assets.AddSprite(0, &Sprite{
		Width: 10, Height: 10,
		OriginX: 0, OriginY: 0,
		BboxLeft: 0, BboxTop: 0, BboxRight: 9, BboxBottom: 9,
		FrameCount: 1,
	})

	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)
	require.NoError(t, eng.WriteVariable(varAcc(MaskIndex), ctx, values.NewInt(0)))

	before, err := eng.ReadVariable(varAcc(BboxLeft), ctx)
	require.NoError(t, err)

	inst := eng.Instances.Get(h)
	assert.False(t, inst.BboxStale, "reading bbox_left must clear the stale flag")

	require.NoError(t, eng.WriteVariable(varAcc(X), ctx, values.NewInt(5)))
	assert.True(t, inst.BboxStale, "writing x must mark the bbox stale")

	after, err := eng.ReadVariable(varAcc(BboxLeft), ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(5), after.ToInt32()-before.ToInt32())
}

func TestBboxStaysFreshWhenValueUnchanged(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)
	inst := eng.Instances.Get(h)
	inst.BboxStale = false

	require.NoError(t, eng.WriteVariable(varAcc(X), ctx, values.NewInt(0))) // unchanged (already 0)
	assert.False(t, inst.BboxStale)
}

// TestLivesCrossingTriggersEventOnce checks the lives-crossing event:
// 1 -> 0 fires once; 0 -> -1 fires zero times; 3 -> -1 fires once.
func TestLivesCrossingTriggersEventOnce(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	var calls []int32
	eng.Dispatch = func(e *Engine, eventType, eventNumber int32, target Handle) error {
		calls = append(calls, eventNumber)
		return nil
	}

	require.NoError(t, eng.WriteVariable(varAcc(Lives), ctx, values.NewInt(1)))
	require.NoError(t, eng.WriteVariable(varAcc(Lives), ctx, values.NewInt(0)))
	assert.Equal(t, []int32{6}, calls)

	require.NoError(t, eng.WriteVariable(varAcc(Lives), ctx, values.NewInt(-1)))
	assert.Equal(t, []int32{6}, calls, "0 -> -1 must not re-trigger")

	require.NoError(t, eng.WriteVariable(varAcc(Lives), ctx, values.NewInt(3)))
	require.NoError(t, eng.WriteVariable(varAcc(Lives), ctx, values.NewInt(-1)))
	assert.Equal(t, []int32{6, 6}, calls)
}

func TestHealthCrossingTriggersEvent9(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	var calls []int32
	eng.Dispatch = func(e *Engine, eventType, eventNumber int32, target Handle) error {
		calls = append(calls, eventNumber)
		return nil
	}

	require.NoError(t, eng.WriteVariable(varAcc(Health), ctx, values.NewFloat(10)))
	require.NoError(t, eng.WriteVariable(varAcc(Health), ctx, values.NewFloat(0)))
	assert.Equal(t, []int32{9}, calls)
}

func TestRoomSpeedRejectsNonPositive(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	err := eng.WriteVariable(varAcc(RoomSpeed), ctx, values.NewInt(0))
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindInvalidRoomSpeed, gerr.Kind)

	err = eng.WriteVariable(varAcc(RoomSpeed), ctx, values.NewInt(-5))
	require.Error(t, err)

	require.NoError(t, eng.WriteVariable(varAcc(RoomSpeed), ctx, values.NewInt(30)))
	v, err := eng.ReadVariable(varAcc(RoomSpeed), ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(30), v.ToInt32())
}

func TestReadOnlyVariableRejectsAssignment(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	err := eng.WriteVariable(varAcc(BboxLeft), ctx, values.NewInt(1))
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindReadOnlyVariable, gerr.Kind)
}

func TestAlarmDefaultsToNegativeOne(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	acc := VariableAccessor{Var: Alarm, Array: ArraySingle{Index: litInt(0)}, Owner: IdentOwn{}}
	v, err := eng.ReadVariable(acc, ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v.ToInt32())
}

func TestArgumentsReadWriteAndUninitPolicy(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)
	ctx.Args[0] = values.NewInt(42)
	ctx.ArgCount = 1

	v, err := eng.ReadVariable(varAcc(Argument0), ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v.ToInt32())

	_, err = eng.ReadVariable(varAcc(Argument1), ctx)
	require.Error(t, err, "reading an unsupplied argument fails under the default uninit policy")
}

func TestArgumentsZeroFillPolicy(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.UninitArgsAreZero = true
	eng := testEngine(cfg)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	v, err := eng.ReadVariable(varAcc(Argument5), ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v.ToInt32())
}
