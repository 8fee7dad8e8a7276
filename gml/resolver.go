package gml

// TargetKind is the kind of storage a resolved InstanceIdentifier names
//.
type TargetKind byte

const (
	TargetSingle TargetKind = iota
	TargetObjects
	TargetAll
	TargetGlobal
	TargetLocal
)

// Target is the resolved storage set for one field/variable access
//. For TargetSingle, Valid distinguishes Some(handle) from
// None (e.g. a stale or nonexistent instance id).
type Target struct {
	Kind   TargetKind
	Handle Handle
	Valid  bool
	Class  int32
}

func singleTarget(h Handle) Target  { return Target{Kind: TargetSingle, Handle: h, Valid: true} }
func noneTarget() Target            { return Target{Kind: TargetSingle} }
func objectsTarget(class int32) Target { return Target{Kind: TargetObjects, Class: class} }
func allTarget() Target              { return Target{Kind: TargetAll} }
func globalTarget() Target           { return Target{Kind: TargetGlobal} }
func localTarget() Target            { return Target{Kind: TargetLocal} }

// Resolve maps an InstanceIdentifier with no associated field-id to a
// Target: used for VariableAccessor owners, where the
// globalvars set never applies.
func (eng *Engine) Resolve(ident InstanceIdentifier, ctx *Context) (Target, error) {
	return eng.resolveIdentifier(ident, ctx, -1, false)
}

// ResolveField maps a FieldAccessor's owner to a Target, honoring the
// globalvars-set redirect for an Unknown owner.
func (eng *Engine) ResolveField(ident InstanceIdentifier, ctx *Context, fieldID int) (Target, error) {
	return eng.resolveIdentifier(ident, ctx, fieldID, true)
}

func (eng *Engine) resolveIdentifier(ident InstanceIdentifier, ctx *Context, fieldID int, isField bool) (Target, error) {
	switch id := ident.(type) {
	case IdentOwn:
		return singleTarget(ctx.This), nil
	case IdentOther:
		return singleTarget(ctx.Other), nil
	case IdentGlobal:
		return globalTarget(), nil
	case IdentLocal:
		return localTarget(), nil
	case IdentUnknown:
		if isField && eng.GlobalVars[fieldID] {
			return globalTarget(), nil
		}
		return singleTarget(ctx.This), nil
	case IdentExpression:
		v, err := eng.Eval(id.Node, ctx)
		if err != nil {
			return Target{}, err
		}
		return eng.resolveMagic(v.ToInt32(), ctx)
	default:
		return Target{}, UnexpectedASTExpr("instance identifier")
	}
}

// resolveMagic applies the magic instance-identifier constants
// (Self/Other/All/Noone/Global/Local and raw ids) to an already-evaluated
// int32.
func (eng *Engine) resolveMagic(n int32, ctx *Context) (Target, error) {
	switch n {
	case Self: // == Self2
		return singleTarget(ctx.This), nil
	case Other:
		return singleTarget(ctx.Other), nil
	case All:
		return allTarget(), nil
	case Noone:
		return noneTarget(), nil
	case Global:
		return globalTarget(), nil
	case Local:
		return localTarget(), nil
	}
	switch {
	case n >= FirstRuntimeInstanceID:
		h, ok := eng.Instances.GetByInstID(n)
		if !ok {
			return noneTarget(), nil
		}
		return singleTarget(h), nil
	case n >= 0:
		return objectsTarget(n), nil
	default:
		return noneTarget(), nil
	}
}
