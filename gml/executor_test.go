package gml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/gsl8engine/values"
)

// TestSwitchFallthrough covers input 2 against cases
// (1,2,3) with no breaks running body B then body C.
func TestSwitchFallthrough(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	accA, accB, accC := fieldAcc(1, IdentOwn{}), fieldAcc(2, IdentOwn{}), fieldAcc(3, IdentOwn{})
	sw := Switch{
		Input: litInt(2),
		Cases: []SwitchCase{
			{Value: litInt(1), BodyOffset: 0},
			{Value: litInt(2), BodyOffset: 1},
			{Value: litInt(3), BodyOffset: 2},
		},
		Body: []Instruction{
			SetField{Accessor: accA, Value: litInt(1)},
			SetField{Accessor: accB, Value: litInt(1)},
			SetField{Accessor: accC, Value: litInt(1)},
		},
	}
	rk, err := eng.execOne(sw, ctx)
	require.NoError(t, err)
	assert.Equal(t, ReturnNormal, rk)

	_, aSet := eng.fieldHolderOf(h).getField(1, 0)
	bVal, bSet := eng.fieldHolderOf(h).getField(2, 0)
	cVal, cSet := eng.fieldHolderOf(h).getField(3, 0)
	assert.False(t, aSet, "case A's body must not run when matching from case B")
	require.True(t, bSet)
	require.True(t, cSet)
	assert.Equal(t, int32(1), bVal.ToInt32())
	assert.Equal(t, int32(1), cVal.ToInt32())
}

func TestSwitchBreakStopsFallthrough(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	accB, accC := fieldAcc(2, IdentOwn{}), fieldAcc(3, IdentOwn{})
	sw := Switch{
		Input: litInt(2),
		Cases: []SwitchCase{
			{Value: litInt(2), BodyOffset: 0},
			{Value: litInt(3), BodyOffset: 2},
		},
		Body: []Instruction{
			SetField{Accessor: accB, Value: litInt(1)},
			Return{Kind: ReturnBreak},
			SetField{Accessor: accC, Value: litInt(1)},
		},
	}
	_, err := eng.execOne(sw, ctx)
	require.NoError(t, err)
	_, cSet := eng.fieldHolderOf(h).getField(3, 0)
	assert.False(t, cSet)
}

// TestRepeatRoundsCount covers Repeat(count=2.6) with
// x starting at 0 running 3 times (banker's-adjacent rounding of 2.6 is 3).
func TestRepeatRoundsCount(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	xAcc := fieldAcc(1, IdentOwn{})
	require.NoError(t, eng.WriteField(xAcc, ctx, values.NewInt(0)))

	rep := Repeat{Count: litFloat(2.6), Body: []Instruction{incrField(1)}}
	_, err := eng.execOne(rep, ctx)
	require.NoError(t, err)

	v, err := eng.ReadField(xAcc, ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.ToInt32())
}

// TestWithAllVisitsEveryLiveInstanceOnce checks that a with(all) body runs
// exactly once against every live instance.
func TestWithAllVisitsEveryLiveInstanceOnce(t *testing.T) {
	eng := testEngine(nil)
	var handles []Handle
	for i := 0; i < 3; i++ {
		h := mustSpawn(eng, 0, 0)
		ctx := NewContext(h)
		require.NoError(t, eng.WriteField(fieldAcc(1, IdentOwn{}), ctx, values.NewInt(0)))
		handles = append(handles, h)
	}

	driver := NewContext(handles[0])
	w := With{Target: litInt(All), Body: []Instruction{incrField(1)}}
	_, err := eng.execOne(w, driver)
	require.NoError(t, err)

	for _, h := range handles {
		ctx := NewContext(h)
		v, err := eng.ReadField(fieldAcc(1, IdentOwn{}), ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(1), v.ToInt32())
	}
}

// TestWithAllToleratesDestructionMidIteration destroys the currently
// iterated instance from inside the With body and checks every instance,
// including the destroyed one, was still visited exactly once and that
// iteration completes without a crash.
func TestWithAllToleratesDestructionMidIteration(t *testing.T) {
	eng := testEngine(nil)
	var handles []Handle
	for i := 0; i < 3; i++ {
		handles = append(handles, mustSpawn(eng, 0, 0))
	}
	targetID := eng.Instances.Get(handles[1]).ID

	driver := NewContext(handles[0])
	idAcc := VariableAccessor{Var: Id, Array: ArrayNone{}, Owner: IdentOwn{}}
	destroyFn := Function{Name: "instance_destroy", Call: BuiltinInstanceDestroy}
	visits := fieldAcc(9, IdentOwn{})
	w := With{
		Target: litInt(All),
		Body: []Instruction{
			incrField(9),
			IfElse{
				Cond: Binary{Left: Variable{Accessor: idAcc}, Right: litInt(targetID), Op: Equal},
				Then: []Instruction{EvalExpression{Node: FunctionCall{Fn: destroyFn}}},
			},
		},
	}
	_, err := eng.execOne(w, driver)
	require.NoError(t, err)

	for _, h := range handles {
		ctx := NewContext(h)
		v, err := eng.ReadField(visits, ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(1), v.ToInt32())
	}
}

// TestWithScopeSaveRestore checks this/other are restored after a with block.
func TestWithScopeSaveRestore(t *testing.T) {
	eng := testEngine(nil)
	a := mustSpawn(eng, 0, 0)
	b := mustSpawn(eng, 0, 0)

	ctx := NewContext(a)
	ctx.Other = b
	savedThis, savedOther := ctx.This, ctx.Other

	w := With{Target: litInt(All), Body: nil}
	_, err := eng.execOne(w, ctx)
	require.NoError(t, err)

	assert.Equal(t, savedThis, ctx.This)
	assert.Equal(t, savedOther, ctx.Other)
}

func TestWithOtherRebindsThis(t *testing.T) {
	eng := testEngine(nil)
	a := mustSpawn(eng, 0, 0)
	b := mustSpawn(eng, 0, 0)
	ctx := NewContext(a)
	ctx.Other = b

	var seenThis Handle
	marker := fieldAcc(1, IdentOwn{})
	w := With{
		Target: litInt(Other),
		Body: []Instruction{
			SetField{Accessor: marker, Value: litInt(42)},
		},
	}
	_, err := eng.execOne(w, ctx)
	require.NoError(t, err)
	seenThis = ctx.This
	assert.Equal(t, a, seenThis) // restored after the With

	bCtx := NewContext(b)
	v, err := eng.ReadField(fieldAcc(1, IdentOwn{}), bCtx)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v.ToInt32())
}

func TestLoopForStepRunsOnContinue(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	counterAcc := fieldAcc(1, IdentOwn{})
	require.NoError(t, eng.WriteField(counterAcc, ctx, values.NewInt(0)))

	loop := LoopFor{
		Cond: Binary{Left: Field{Accessor: counterAcc}, Right: litInt(3), Op: LessThan},
		Body: []Instruction{Return{Kind: ReturnContinue}},
		Step: []Instruction{incrField(1)},
	}
	_, err := eng.execOne(loop, ctx)
	require.NoError(t, err)

	v, err := eng.ReadField(counterAcc, ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.ToInt32())
}
