package gml

// Execute runs a compiled instruction list in order against a call frame,
// returning the ReturnKind that stopped it. A non-Normal
// return or an error short-circuits the remaining instructions.
func (eng *Engine) Execute(instrs []Instruction, ctx *Context) (ReturnKind, error) {
	for _, instr := range instrs {
		rk, err := eng.execOne(instr, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if rk != ReturnNormal {
			return rk, nil
		}
	}
	return ReturnNormal, nil
}

func (eng *Engine) execOne(instr Instruction, ctx *Context) (ReturnKind, error) {
	switch ins := instr.(type) {
	case SetField:
		v, err := eng.Eval(ins.Value, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		ctx.ReturnValue = v
		return ReturnNormal, eng.WriteField(ins.Accessor, ctx, v)

	case SetVariable:
		v, err := eng.Eval(ins.Value, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		ctx.ReturnValue = v
		return ReturnNormal, eng.WriteVariable(ins.Accessor, ctx, v)

	case EvalExpression:
		v, err := eng.Eval(ins.Node, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		ctx.ReturnValue = v
		return ReturnNormal, nil

	case SetReturnValue:
		v, err := eng.Eval(ins.Value, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		ctx.ReturnValue = v
		return ReturnNormal, nil

	case IfElse:
		cond, err := eng.Eval(ins.Cond, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if cond.IsTruthy() {
			return eng.Execute(ins.Then, ctx)
		}
		return eng.Execute(ins.Else, ctx)

	case LoopUntil:
		return eng.execLoopUntil(ins, ctx)

	case LoopWhile:
		return eng.execLoopWhile(ins, ctx)

	case LoopFor:
		return eng.execLoopFor(ins, ctx)

	case Repeat:
		return eng.execRepeat(ins, ctx)

	case Switch:
		return eng.execSwitch(ins, ctx)

	case With:
		return eng.execWith(ins, ctx)

	case GlobalVar:
		for _, f := range ins.Fields {
			eng.GlobalVars[f] = true
		}
		return ReturnNormal, nil

	case RuntimeErrorInstruction:
		return ReturnNormal, ins.Err

	case Return:
		return ins.Kind, nil

	default:
		return ReturnNormal, UnexpectedASTExpr("instruction")
	}
}

func (eng *Engine) execLoopUntil(ins LoopUntil, ctx *Context) (ReturnKind, error) {
	for {
		rk, err := eng.Execute(ins.Body, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		switch rk {
		case ReturnBreak:
			return ReturnNormal, nil
		case ReturnExit:
			return ReturnExit, nil
		}
		cond, err := eng.Eval(ins.Cond, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if cond.IsTruthy() {
			return ReturnNormal, nil
		}
	}
}

func (eng *Engine) execLoopWhile(ins LoopWhile, ctx *Context) (ReturnKind, error) {
	for {
		cond, err := eng.Eval(ins.Cond, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if !cond.IsTruthy() {
			return ReturnNormal, nil
		}
		rk, err := eng.Execute(ins.Body, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		switch rk {
		case ReturnBreak:
			return ReturnNormal, nil
		case ReturnExit:
			return ReturnExit, nil
		}
	}
}

func (eng *Engine) execLoopFor(ins LoopFor, ctx *Context) (ReturnKind, error) {
	for {
		cond, err := eng.Eval(ins.Cond, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if !cond.IsTruthy() {
			return ReturnNormal, nil
		}
		rk, err := eng.Execute(ins.Body, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		switch rk {
		case ReturnBreak:
			return ReturnNormal, nil
		case ReturnExit:
			return ReturnExit, nil
		}
		// Normal and Continue both run the step block.
		if _, err := eng.Execute(ins.Step, ctx); err != nil {
			return ReturnNormal, err
		}
	}
}

func (eng *Engine) execRepeat(ins Repeat, ctx *Context) (ReturnKind, error) {
	v, err := eng.Eval(ins.Count, ctx)
	if err != nil {
		return ReturnNormal, err
	}
	count := v.Real().Round()
	for i := int32(0); i < count; i++ {
		rk, err := eng.Execute(ins.Body, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		switch rk {
		case ReturnBreak:
			return ReturnNormal, nil
		case ReturnExit:
			return ReturnExit, nil
		}
	}
	return ReturnNormal, nil
}

// execSwitch evaluates case values in source order until one compares
// almost-equal to the input, then falls through the shared body from that
// offset. A `Break` inside the body ends the switch
// normally; any other non-Normal return propagates.
func (eng *Engine) execSwitch(s Switch, ctx *Context) (ReturnKind, error) {
	input, err := eng.Eval(s.Input, ctx)
	if err != nil {
		return ReturnNormal, err
	}
	offset := -1
	for _, c := range s.Cases {
		cv, err := eng.Eval(c.Value, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if input.AlmostEquals(cv) {
			offset = c.BodyOffset
			break
		}
	}
	if offset < 0 {
		if s.Default == nil {
			return ReturnNormal, nil
		}
		offset = *s.Default
	}
	rk, err := eng.Execute(s.Body[offset:], ctx)
	if err != nil {
		return ReturnNormal, err
	}
	if rk == ReturnBreak {
		return ReturnNormal, nil
	}
	return rk, nil
}

// execWith evaluates the target expression, saves this/other, and runs
// the body once per matching instance, restoring this/other on every exit
// path.
func (eng *Engine) execWith(w With, ctx *Context) (ReturnKind, error) {
	v, err := eng.Eval(w.Target, ctx)
	if err != nil {
		return ReturnNormal, err
	}
	n := v.ToInt32()

	savedThis, savedOther := ctx.This, ctx.Other
	ctx.Other = ctx.This
	restore := func() { ctx.This, ctx.Other = savedThis, savedOther }

	switch {
	case n == Self: // Self and Self2 share the magic value -1.
		rk, err := eng.Execute(w.Body, ctx)
		restore()
		if err != nil {
			return ReturnNormal, err
		}
		if rk == ReturnExit {
			return ReturnExit, nil
		}
		return ReturnNormal, nil

	case n == Other:
		ctx.This = savedOther
		rk, err := eng.Execute(w.Body, ctx)
		restore()
		if err != nil {
			return ReturnNormal, err
		}
		if rk == ReturnExit {
			return ReturnExit, nil
		}
		return ReturnNormal, nil

	case n == All:
		defer restore()
		it := eng.Instances.IterByInsertion()
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			ctx.This = h
			rk, err := eng.Execute(w.Body, ctx)
			if err != nil {
				return ReturnNormal, err
			}
			if rk == ReturnBreak {
				break
			}
			if rk == ReturnExit {
				return ReturnExit, nil
			}
		}
		return ReturnNormal, nil

	case n >= FirstRuntimeInstanceID:
		defer restore()
		h, ok := eng.Instances.GetByInstID(n)
		if !ok {
			return ReturnNormal, nil
		}
		ctx.This = h
		rk, err := eng.Execute(w.Body, ctx)
		if err != nil {
			return ReturnNormal, err
		}
		if rk == ReturnExit {
			return ReturnExit, nil
		}
		return ReturnNormal, nil

	case n >= 0:
		defer restore()
		members := eng.Assets.ObjectDescendants(n)
		it := eng.Instances.IterByIdentity(members)
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			ctx.This = h
			rk, err := eng.Execute(w.Body, ctx)
			if err != nil {
				return ReturnNormal, err
			}
			if rk == ReturnBreak {
				break
			}
			if rk == ReturnExit {
				return ReturnExit, nil
			}
		}
		return ReturnNormal, nil

	default:
		// Noone, Global, Local and any other negative non-magic value: no-op.
		restore()
		return ReturnNormal, nil
	}
}
