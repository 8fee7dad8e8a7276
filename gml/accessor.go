package gml

import (
	"strconv"

	"github.com/isgasho/gsl8engine/values"
)

// evalArrayIndex resolves a compiled ArrayAccessor to the flat Field index
//.
func (eng *Engine) evalArrayIndex(acc ArrayAccessor, ctx *Context) (int32, error) {
	switch a := acc.(type) {
	case ArrayNone:
		return 0, nil
	case ArraySingle:
		v, err := eng.Eval(a.Index, ctx)
		if err != nil {
			return 0, err
		}
		i := v.Real().Round()
		if i < 0 || i >= ArrayDimension {
			return 0, InvalidArrayIndex(i)
		}
		return i, nil
	case ArrayDouble:
		v1, err := eng.Eval(a.Index1, ctx)
		if err != nil {
			return 0, err
		}
		v2, err := eng.Eval(a.Index2, ctx)
		if err != nil {
			return 0, err
		}
		return EncodeArrayIndex(v1.Real().Round(), v2.Real().Round())
	default:
		return 0, InvalidArrayAccessor("array accessor")
	}
}

func (eng *Engine) fieldHolderOf(h Handle) *FieldHolder {
	inst := eng.Instances.Get(h)
	if inst == nil {
		return nil
	}
	return inst.Fields
}

// ReadField implements Field(accessor) evaluation: a
// Objects/All target reads the first insertion-order match; a missing
// value (or target) falls back to the uninit policy.
func (eng *Engine) ReadField(acc FieldAccessor, ctx *Context) (values.Value, error) {
	idx, err := eng.evalArrayIndex(acc.Array, ctx)
	if err != nil {
		return values.Zero, err
	}
	target, err := eng.ResolveField(acc.Owner, ctx, acc.Index)
	if err != nil {
		return values.Zero, err
	}
	name := fieldDisplayName(acc.Index)

	switch target.Kind {
	case TargetSingle:
		if !target.Valid {
			return eng.uninit(name, idx)
		}
		fh := eng.fieldHolderOf(target.Handle)
		if fh == nil {
			return eng.uninit(name, idx)
		}
		v, ok := fh.getField(acc.Index, idx)
		if !ok {
			return eng.uninit(name, idx)
		}
		return v, nil
	case TargetObjects:
		h, ok := eng.Instances.FirstByIdentity(eng.Assets.ObjectDescendants(target.Class))
		if !ok {
			return eng.uninit(name, idx)
		}
		v, ok := eng.fieldHolderOf(h).getField(acc.Index, idx)
		if !ok {
			return eng.uninit(name, idx)
		}
		return v, nil
	case TargetAll:
		h, ok := eng.Instances.First()
		if !ok {
			return eng.uninit(name, idx)
		}
		v, ok := eng.fieldHolderOf(h).getField(acc.Index, idx)
		if !ok {
			return eng.uninit(name, idx)
		}
		return v, nil
	case TargetGlobal:
		v, ok := eng.Globals.getField(acc.Index, idx)
		if !ok {
			return eng.uninit(name, idx)
		}
		return v, nil
	case TargetLocal:
		v, ok := ctx.Locals.getField(acc.Index, idx)
		if !ok {
			return eng.uninit(name, idx)
		}
		return v, nil
	default:
		return eng.uninit(name, idx)
	}
}

// WriteField implements SetField: an Objects/All target
// writes through to every matching live instance; Single(None) is a no-op.
func (eng *Engine) WriteField(acc FieldAccessor, ctx *Context, v values.Value) error {
	idx, err := eng.evalArrayIndex(acc.Array, ctx)
	if err != nil {
		return err
	}
	target, err := eng.ResolveField(acc.Owner, ctx, acc.Index)
	if err != nil {
		return err
	}
	switch target.Kind {
	case TargetSingle:
		if !target.Valid {
			return nil
		}
		if fh := eng.fieldHolderOf(target.Handle); fh != nil {
			fh.setField(acc.Index, idx, v)
		}
	case TargetObjects:
		it := eng.Instances.IterByIdentity(eng.Assets.ObjectDescendants(target.Class))
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			eng.fieldHolderOf(h).setField(acc.Index, idx, v)
		}
	case TargetAll:
		it := eng.Instances.IterByInsertion()
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			eng.fieldHolderOf(h).setField(acc.Index, idx, v)
		}
	case TargetGlobal:
		eng.Globals.setField(acc.Index, idx, v)
	case TargetLocal:
		ctx.Locals.setField(acc.Index, idx, v)
	}
	return nil
}

// fieldDisplayName stands in for the host `Compiler.get_field_name(id)`
// collaborator, which requires project-file parsing this
// repo doesn't implement; it is only ever used to format an
// UninitializedVariable diagnostic.
func fieldDisplayName(id int) string {
	return "field_" + strconv.Itoa(id)
}

// ReadVariable implements Variable(accessor) evaluation, routed through
// the instance-variable getter table.
func (eng *Engine) ReadVariable(acc VariableAccessor, ctx *Context) (values.Value, error) {
	idx, err := eng.evalArrayIndex(acc.Array, ctx)
	if err != nil {
		return values.Zero, err
	}
	info := variableScopeTable[acc.Var]
	switch info.scope {
	case scopeContext:
		return eng.getContextVar(acc.Var, ctx, idx)
	case scopeGlobal:
		return eng.getGlobalVar(acc.Var, ctx, idx)
	default:
		target, err := eng.Resolve(acc.Owner, ctx)
		if err != nil {
			return values.Zero, err
		}
		inst, ok := eng.firstInstanceFor(target)
		if !ok {
			return eng.uninit(acc.Var.Name(), idx)
		}
		return eng.getInstanceVar(acc.Var, inst, ctx, idx)
	}
}

// WriteVariable implements SetVariable, dispatching to the
// instance-variable setter; read-only variables fail with
// ReadOnlyVariable before any target is touched.
func (eng *Engine) WriteVariable(acc VariableAccessor, ctx *Context, v values.Value) error {
	if acc.Var.ReadOnly() {
		return ReadOnlyVariable(acc.Var.Name())
	}
	idx, err := eng.evalArrayIndex(acc.Array, ctx)
	if err != nil {
		return err
	}
	info := variableScopeTable[acc.Var]
	switch info.scope {
	case scopeContext:
		return eng.setContextVar(acc.Var, ctx, idx, v)
	case scopeGlobal:
		return eng.setGlobalVar(acc.Var, ctx, idx, v)
	default:
		target, err := eng.Resolve(acc.Owner, ctx)
		if err != nil {
			return err
		}
		switch target.Kind {
		case TargetSingle:
			if !target.Valid {
				return nil
			}
			inst := eng.Instances.Get(target.Handle)
			if inst == nil {
				return nil
			}
			return eng.setInstanceVar(acc.Var, inst, ctx, idx, v)
		case TargetObjects:
			it := eng.Instances.IterByIdentity(eng.Assets.ObjectDescendants(target.Class))
			for h, ok := it.Next(); ok; h, ok = it.Next() {
				if err := eng.setInstanceVar(acc.Var, eng.Instances.Get(h), ctx, idx, v); err != nil {
					return err
				}
			}
			return nil
		case TargetAll:
			it := eng.Instances.IterByInsertion()
			for h, ok := it.Next(); ok; h, ok = it.Next() {
				if err := eng.setInstanceVar(acc.Var, eng.Instances.Get(h), ctx, idx, v); err != nil {
					return err
				}
			}
			return nil
		default:
			return nil
		}
	}
}

func (eng *Engine) firstInstanceFor(t Target) (*Instance, bool) {
	switch t.Kind {
	case TargetSingle:
		if !t.Valid {
			return nil, false
		}
		inst := eng.Instances.Get(t.Handle)
		return inst, inst != nil
	case TargetObjects:
		h, ok := eng.Instances.FirstByIdentity(eng.Assets.ObjectDescendants(t.Class))
		if !ok {
			return nil, false
		}
		return eng.Instances.Get(h), true
	case TargetAll:
		h, ok := eng.Instances.First()
		if !ok {
			return nil, false
		}
		return eng.Instances.Get(h), true
	default:
		return nil, false
	}
}
