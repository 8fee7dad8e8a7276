package gml

import (
	"github.com/dustin/go-humanize"

	"github.com/isgasho/gsl8engine/values"
)

// CreateInstance places a new instance of an object class at (x, y) and
// registers it in the instance list, the way the outer world's factory
// does before ever handing control to the engine.
func (eng *Engine) CreateInstance(objectIndex int32, x, y Real) (Handle, error) {
	if _, ok := eng.Assets.Object(objectIndex); !ok {
		return 0, NonexistentAsset(AssetObject, objectIndex)
	}
	eng.nextInstanceID++
	id := FirstRuntimeInstanceID + eng.nextInstanceID - 1
	inst := NewInstance(id, objectIndex, x, y)
	return eng.Instances.Insert(inst), nil
}

// DestroyInstance logically removes an instance.
func (eng *Engine) DestroyInstance(h Handle) {
	eng.Instances.Destroy(h)
}

// BuiltinInstanceCreate is a minimal `instance_create(x, y, object)`
// registered as a Function node the way a runtime stdlib registry would:
// the engine core itself never calls it, but a project loader wires it
// in for scripts to use.
func BuiltinInstanceCreate(eng *Engine, ctx *Context, args []values.Value) (values.Value, error) {
	if len(args) < 3 {
		return values.Zero, WrongArgumentCount(3, len(args))
	}
	h, err := eng.CreateInstance(args[2].ToInt32(), args[0].Real(), args[1].Real())
	if err != nil {
		return values.Zero, err
	}
	return values.NewInt(eng.Instances.Get(h).ID), nil
}

// BuiltinInstanceDestroy is `instance_destroy()`: destroys ctx.This.
func BuiltinInstanceDestroy(eng *Engine, ctx *Context, args []values.Value) (values.Value, error) {
	eng.DestroyInstance(ctx.This)
	return values.Zero, nil
}

// BuiltinShowDebugMessage formats a diagnostic line through go-humanize,
// logging live instance count alongside the message the script passed.
func BuiltinShowDebugMessage(eng *Engine, ctx *Context, args []values.Value) (values.Value, error) {
	msg := ""
	if len(args) > 0 {
		msg = args[0].String()
	}
	eng.Logger.Printf("%s (live instances: %s)", msg, humanize.Comma(int64(eng.Instances.CountAll())))
	return values.Zero, nil
}
