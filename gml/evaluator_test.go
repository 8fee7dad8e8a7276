package gml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/gsl8engine/values"
)

// TestUninitFieldRejectedByDefault checks that, with the default config,
// reading a field that was never written fails.
func TestUninitFieldRejectedByDefault(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	_, err := eng.Eval(Field{Accessor: fieldAcc(1, IdentOwn{})}, ctx)
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUninitializedVariable, gerr.Kind)
}

func TestUninitFieldZeroFillPolicy(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.UninitFieldsAreZero = true
	eng := testEngine(cfg)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	v, err := eng.Eval(Field{Accessor: fieldAcc(1, IdentOwn{})}, ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v.ToInt32())
}

// TestScriptCallLocalsAreIsolated checks that locals a called script
// writes are invisible to the caller's frame.
func TestScriptCallLocalsAreIsolated(t *testing.T) {
	eng := testEngine(nil)
	assets := eng.Assets.(*MemoryAssets)

	localAcc := FieldAccessor{Index: 1, Array: ArrayNone{}, Owner: IdentLocal{}}
	assets.AddScript(0, &Script{
		Name: "scr_set_local",
		Body: []Instruction{
			SetField{Accessor: localAcc, Value: litInt(99)},
		},
	})

	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	_, err := eng.Eval(ScriptCall{ScriptID: 0, Args: nil}, ctx)
	require.NoError(t, err)

	_, ok := ctx.Locals.getField(1, 0)
	assert.False(t, ok, "the script's local write must not leak into the caller's frame")
}

// TestScriptCallReturnsSetReturnValue checks a called script's return
// value propagates back as the ScriptCall expression's result.
func TestScriptCallReturnsSetReturnValue(t *testing.T) {
	eng := testEngine(nil)
	assets := eng.Assets.(*MemoryAssets)
	assets.AddScript(1, &Script{
		Name: "scr_add_args",
		Body: []Instruction{
			SetReturnValue{Value: Binary{
				Left:  Variable{Accessor: VariableAccessor{Var: Argument0, Array: ArrayNone{}, Owner: IdentOwn{}}},
				Right: Variable{Accessor: VariableAccessor{Var: Argument1, Array: ArrayNone{}, Owner: IdentOwn{}}},
				Op:    Add,
			}},
		},
	})

	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	v, err := eng.Eval(ScriptCall{ScriptID: 1, Args: []Node{litInt(3), litInt(4)}}, ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v.ToInt32())
}

func TestEvalNonexistentConstantFails(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	_, err := eng.Eval(Constant{ID: 12345}, ctx)
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindNonexistentAsset, gerr.Kind)
}

func TestEvalArgsTruncatesBeyondMaxArguments(t *testing.T) {
	eng := testEngine(nil)
	h := mustSpawn(eng, 0, 0)
	ctx := NewContext(h)

	nodes := make([]Node, MaxArguments+4)
	for i := range nodes {
		nodes[i] = litInt(int32(i))
	}
	buf, err := eng.evalArgs(nodes, ctx)
	require.NoError(t, err)
	assert.Equal(t, values.NewInt(int32(MaxArguments-1)), buf[MaxArguments-1])
}
