package gml

import (
	"io"
	"log"

	"github.com/isgasho/gsl8engine/values"
)

// testEngine builds a minimal engine with one object class (id 0) ready to
// spawn scratch instances, mirroring the fixtures cmd/gsldebug builds by
// hand. Tests that need a custom EngineConfig pass it in; nil picks the
// engine's own defaults.
func testEngine(cfg *EngineConfig) *Engine {
	assets := NewMemoryAssets()
	assets.AddObject(0, &Object{Name: "obj_test", Parent: -1})
	eng := NewEngine(assets, cfg, log.New(io.Discard, "", 0))
	eng.Input = NewDefaultInputManager()
	return eng
}

func mustSpawn(eng *Engine, x, y Real) Handle {
	h, err := eng.CreateInstance(0, x, y)
	if err != nil {
		panic(err)
	}
	return h
}

func fieldAcc(id int, owner InstanceIdentifier) FieldAccessor {
	return FieldAccessor{Index: id, Array: ArrayNone{}, Owner: owner}
}

func litInt(n int32) Node   { return Literal{Value: values.NewInt(n)} }
func litFloat(f float64) Node { return Literal{Value: values.NewFloat(f)} }

// incrField compiles `field[id] = field[id] + 1`.
func incrField(id int) Instruction {
	acc := fieldAcc(id, IdentOwn{})
	return SetField{
		Accessor: acc,
		Value: Binary{
			Left:  Field{Accessor: acc},
			Right: litInt(1),
			Op:    Add,
		},
	}
}
