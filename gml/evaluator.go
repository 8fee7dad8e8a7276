package gml

import "github.com/isgasho/gsl8engine/values"

// Eval evaluates one expression node against a call frame.
// It is the single recursive entry point the executor, the resolver and
// host-side introspection all share.
func (eng *Engine) Eval(n Node, ctx *Context) (values.Value, error) {
	switch node := n.(type) {
	case Literal:
		return node.Value, nil

	case Constant:
		v, ok := eng.Assets.Constant(node.ID)
		if !ok {
			return values.Zero, NonexistentAsset(AssetConstant, node.ID)
		}
		return v, nil

	case FunctionCall:
		args, err := eng.evalArgs(node.Args, ctx)
		if err != nil {
			return values.Zero, err
		}
		n := len(node.Args)
		if n > MaxArguments {
			n = MaxArguments
		}
		return node.Fn.Call(eng, ctx, args[:n])

	case ScriptCall:
		script, ok := eng.Assets.Script(node.ScriptID)
		if !ok {
			return values.Zero, NonexistentAsset(AssetScript, node.ScriptID)
		}
		argVals, err := eng.evalArgsSlice(node.Args, ctx)
		if err != nil {
			return values.Zero, err
		}
		sub := NewScriptContext(ctx.This, ctx.Other, argVals)
		sub.EventType, sub.EventNumber = ctx.EventType, ctx.EventNumber
		sub.EventObject, sub.EventAction = ctx.EventObject, ctx.EventAction
		sub.Relative = ctx.Relative
		if _, err := eng.Execute(script.Body, sub); err != nil {
			return values.Zero, err
		}
		return sub.ReturnValue, nil

	case Field:
		return eng.ReadField(node.Accessor, ctx)

	case Variable:
		return eng.ReadVariable(node.Accessor, ctx)

	case Binary:
		lhs, err := eng.Eval(node.Left, ctx)
		if err != nil {
			return values.Zero, err
		}
		rhs, err := eng.Eval(node.Right, ctx)
		if err != nil {
			return values.Zero, err
		}
		return node.Op.Call(lhs, rhs)

	case Unary:
		v, err := eng.Eval(node.Child, ctx)
		if err != nil {
			return values.Zero, err
		}
		return node.Op.Call(v)

	case RuntimeErrorNode:
		return values.Zero, node.Err

	default:
		return values.Zero, UnexpectedASTExpr("node")
	}
}

// evalArgs evaluates up to MaxArguments nodes into a fixed buffer, matching
// the evaluator's Function node contract: excess args beyond
// the fixed size are simply not passed.
func (eng *Engine) evalArgs(nodes []Node, ctx *Context) ([MaxArguments]values.Value, error) {
	var buf [MaxArguments]values.Value
	n := len(nodes)
	if n > MaxArguments {
		n = MaxArguments
	}
	for i := 0; i < n; i++ {
		v, err := eng.Eval(nodes[i], ctx)
		if err != nil {
			return buf, err
		}
		buf[i] = v
	}
	return buf, nil
}

// evalArgsSlice is the Script-call counterpart: scripts accept an
// arbitrary argument count, so arguments are collected
// into a slice rather than truncated to MaxArguments (NewScriptContext
// does the truncation into the fixed frame).
func (eng *Engine) evalArgsSlice(nodes []Node, ctx *Context) ([]values.Value, error) {
	out := make([]values.Value, len(nodes))
	for i, n := range nodes {
		v, err := eng.Eval(n, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
