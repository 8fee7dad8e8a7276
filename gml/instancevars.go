package gml

import (
	"math"

	"github.com/isgasho/gsl8engine/values"
)

// varScope says which storage an InstanceVariable's getter/setter operates
// on: a per-instance field, an engine-wide slot, or the current call
// frame. It is the jump-table key used alongside the InstanceVariable
// enum itself.
type varScope byte

const (
	scopeInstance varScope = iota
	scopeGlobal
	scopeContext
)

type variableScopeInfo struct {
	scope varScope
}

var variableScopeTable = buildVariableScopeTable()

func buildVariableScopeTable() [instanceVariableCount]variableScopeInfo {
	var t [instanceVariableCount]variableScopeInfo
	fill := func(scope varScope, from, to InstanceVariable) {
		for v := from; v <= to; v++ {
			t[v] = variableScopeInfo{scope: scope}
		}
	}
	fill(scopeInstance, X, TimelineLoop)
	fill(scopeContext, Argument0, ArgumentCount)
	fill(scopeGlobal, Room, ErrorLast)
	// room_persistent is modeled as a per-instance flag, not an
	// engine-global room property, so it is carved out of the Room/scene
	// range above.
	t[RoomPersistent] = variableScopeInfo{scope: scopeInstance}
	return t
}

// getInstanceVar dispatches a per-instance variable read.
func (eng *Engine) getInstanceVar(v InstanceVariable, inst *Instance, ctx *Context, idx int32) (values.Value, error) {
	switch v {
	case X:
		return values.NewReal(inst.X), nil
	case Y:
		return values.NewReal(inst.Y), nil
	case Xprevious:
		return values.NewReal(inst.Xprevious), nil
	case Yprevious:
		return values.NewReal(inst.Yprevious), nil
	case Xstart:
		return values.NewReal(inst.Xstart), nil
	case Ystart:
		return values.NewReal(inst.Ystart), nil
	case Hspeed:
		return values.NewReal(inst.Hspeed), nil
	case Vspeed:
		return values.NewReal(inst.Vspeed), nil
	case Direction:
		return values.NewReal(inst.Direction), nil
	case Speed:
		return values.NewReal(inst.Speed), nil
	case Friction:
		return values.NewReal(inst.Friction), nil
	case Gravity:
		return values.NewReal(inst.Gravity), nil
	case GravityDirection:
		return values.NewReal(inst.GravityDirection), nil
	case ObjectIndex:
		return values.NewInt(inst.ObjectIndex), nil
	case Id:
		return values.NewInt(inst.ID), nil
	case Alarm:
		a, ok := inst.Alarms[idx]
		if !ok {
			return values.NewInt(-1), nil
		}
		return values.NewInt(a), nil
	case Solid:
		return values.NewBool(inst.Solid), nil
	case Visible:
		return values.NewBool(inst.Visible), nil
	case Persistent:
		return values.NewBool(inst.Persistent), nil
	case Depth:
		return values.NewReal(inst.Depth), nil
	case BboxLeft:
		eng.UpdateBbox(inst)
		return values.NewInt(inst.BboxLeft), nil
	case BboxRight:
		eng.UpdateBbox(inst)
		return values.NewInt(inst.BboxRight), nil
	case BboxTop:
		eng.UpdateBbox(inst)
		return values.NewInt(inst.BboxTop), nil
	case BboxBottom:
		eng.UpdateBbox(inst)
		return values.NewInt(inst.BboxBottom), nil
	case SpriteIndex:
		return values.NewInt(inst.SpriteIndex), nil
	case ImageIndex:
		return values.NewReal(inst.ImageIndex), nil
	case ImageSingle:
		if inst.ImageSpeed == 0 {
			return values.NewReal(inst.ImageIndex), nil
		}
		return values.NewInt(-1), nil
	case ImageNumber:
		spr, ok := eng.Assets.Sprite(inst.SpriteIndex)
		if !ok {
			return values.NewInt(0), nil
		}
		return values.NewInt(spr.FrameCount), nil
	case SpriteWidth:
		return eng.spriteDim(inst, func(s *Sprite) int32 { return s.Width }), nil
	case SpriteHeight:
		return eng.spriteDim(inst, func(s *Sprite) int32 { return s.Height }), nil
	case SpriteXoffset:
		return eng.spriteDim(inst, func(s *Sprite) int32 { return s.OriginX }), nil
	case SpriteYoffset:
		return eng.spriteDim(inst, func(s *Sprite) int32 { return s.OriginY }), nil
	case ImageXscale:
		return values.NewReal(inst.ImageXscale), nil
	case ImageYscale:
		return values.NewReal(inst.ImageYscale), nil
	case ImageAngle:
		return values.NewReal(inst.ImageAngle), nil
	case ImageAlpha:
		return values.NewReal(inst.ImageAlpha), nil
	case ImageBlend:
		return values.NewInt(inst.ImageBlend), nil
	case ImageSpeed:
		return values.NewReal(inst.ImageSpeed), nil
	case MaskIndex:
		return values.NewInt(inst.MaskIndex), nil
	case PathIndex:
		return values.NewInt(inst.PathIndex), nil
	case PathPosition:
		return values.NewReal(inst.PathPosition), nil
	case PathPositionprevious:
		return values.NewReal(inst.PathPositionPrevious), nil
	case PathSpeed:
		return values.NewReal(inst.PathSpeed), nil
	case PathScale:
		return values.NewReal(inst.PathScale), nil
	case PathOrientation:
		return values.NewReal(inst.PathOrientation), nil
	case PathEndaction:
		return values.NewInt(inst.PathEndAction), nil
	case TimelineIndex:
		return values.NewInt(inst.TimelineIndex), nil
	case TimelinePosition:
		return values.NewReal(inst.TimelinePosition), nil
	case TimelineSpeed:
		return values.NewReal(inst.TimelineSpeed), nil
	case TimelineRunning:
		return values.NewBool(inst.TimelineRunning), nil
	case TimelineLoop:
		return values.NewBool(inst.TimelineLoop), nil
	case RoomPersistent:
		return values.NewBool(eng.RoomPersistent[inst.ID]), nil
	default:
		return values.Zero, UnexpectedASTExpr(v.Name())
	}
}

func (eng *Engine) spriteDim(inst *Instance, pick func(*Sprite) int32) values.Value {
	spr, ok := eng.Assets.Sprite(inst.SpriteIndex)
	if !ok {
		return values.NewInt(0)
	}
	return values.NewInt(pick(spr))
}

// setInstanceVar dispatches a per-instance variable write. ReadOnlyVariable
// is already checked by the caller (WriteVariable) before this runs.
func (eng *Engine) setInstanceVar(v InstanceVariable, inst *Instance, ctx *Context, idx int32, val values.Value) error {
	switch v {
	case X:
		inst.markBboxStaleIfChanged(val.Real() != inst.X)
		inst.X = val.Real()
	case Y:
		inst.markBboxStaleIfChanged(val.Real() != inst.Y)
		inst.Y = val.Real()
	case Xprevious:
		inst.Xprevious = val.Real()
	case Yprevious:
		inst.Yprevious = val.Real()
	case Xstart:
		inst.Xstart = val.Real()
	case Ystart:
		inst.Ystart = val.Real()
	case Hspeed:
		inst.SetHspeed(val.Real())
	case Vspeed:
		inst.SetVspeed(val.Real())
	case Direction:
		inst.SetDirection(val.Real())
	case Speed:
		inst.SetSpeed(val.Real())
	case Friction:
		inst.Friction = val.Real()
	case Gravity:
		inst.Gravity = val.Real()
	case GravityDirection:
		inst.GravityDirection = val.Real()
	case Alarm:
		inst.Alarms[idx] = val.ToInt32()
	case Solid:
		inst.Solid = val.IsTruthy()
	case Visible:
		inst.Visible = val.IsTruthy()
	case Persistent:
		inst.Persistent = val.IsTruthy()
	case Depth:
		inst.Depth = val.Real()
	case SpriteIndex:
		n := val.ToInt32()
		inst.markBboxStaleIfChanged(inst.SpriteIndex != n)
		inst.SpriteIndex = n
		if spr, ok := eng.Assets.Sprite(n); ok && spr.FrameCount <= int32(math.Floor(float64(inst.ImageIndex))) {
			inst.ImageIndex = 0
		}
	case ImageIndex:
		inst.ImageIndex = val.Real()
	case ImageSingle:
		// Non-negative pins the displayed frame and freezes animation;
		// negative restores animation and leaves image_index untouched.
		if val.Real() >= 0 {
			inst.ImageIndex = val.Real()
			inst.ImageSpeed = 0
		} else {
			inst.ImageSpeed = 1
		}
	case ImageXscale:
		inst.markBboxStaleIfChanged(val.Real() != inst.ImageXscale)
		inst.ImageXscale = val.Real()
	case ImageYscale:
		inst.markBboxStaleIfChanged(val.Real() != inst.ImageYscale)
		inst.ImageYscale = val.Real()
	case ImageAngle:
		inst.markBboxStaleIfChanged(val.Real() != inst.ImageAngle)
		inst.ImageAngle = val.Real()
	case ImageAlpha:
		inst.ImageAlpha = val.Real()
	case ImageBlend:
		inst.ImageBlend = val.ToInt32()
	case ImageSpeed:
		inst.ImageSpeed = val.Real()
	case MaskIndex:
		inst.markBboxStaleIfChanged(inst.MaskIndex != val.ToInt32())
		inst.MaskIndex = val.ToInt32()
	case PathIndex:
		inst.PathIndex = val.ToInt32()
	case PathPosition:
		inst.PathPositionPrevious = inst.PathPosition
		inst.PathPosition = val.Real()
	case PathSpeed:
		inst.PathSpeed = val.Real()
	case PathScale:
		inst.PathScale = val.Real()
	case PathOrientation:
		inst.PathOrientation = val.Real()
	case PathEndaction:
		inst.PathEndAction = val.ToInt32()
	case TimelineIndex:
		inst.TimelineIndex = val.ToInt32()
	case TimelinePosition:
		inst.TimelinePosition = val.Real()
	case TimelineSpeed:
		inst.TimelineSpeed = val.Real()
	case TimelineRunning:
		inst.TimelineRunning = val.IsTruthy()
	case TimelineLoop:
		inst.TimelineLoop = val.IsTruthy()
	case RoomPersistent:
		eng.RoomPersistent[inst.ID] = val.IsTruthy()
	default:
		return UnexpectedASTExpr(v.Name())
	}
	return nil
}

// getContextVar dispatches the Arguments category, which reads from the
// current call frame rather than an instance or the engine.
func (eng *Engine) getContextVar(v InstanceVariable, ctx *Context, idx int32) (values.Value, error) {
	n := argumentSlot(v, idx)
	if n < 0 {
		switch v {
		case ArgumentRelative:
			return values.NewBool(ctx.Relative), nil
		case ArgumentCount:
			return values.NewInt(int32(ctx.ArgCount)), nil
		}
		return values.Zero, UnexpectedASTExpr(v.Name())
	}
	val, supplied := ctx.Argument(n)
	if !supplied {
		if eng.Config.UninitArgsAreZero {
			return values.NewReal(0), nil
		}
		return values.Zero, UninitializedArgument(n)
	}
	return val, nil
}

func (eng *Engine) setContextVar(v InstanceVariable, ctx *Context, idx int32, val values.Value) error {
	n := argumentSlot(v, idx)
	if n < 0 {
		if v == ArgumentRelative {
			ctx.Relative = val.IsTruthy()
			return nil
		}
		return UnexpectedASTExpr(v.Name())
	}
	if n >= MaxArguments {
		if eng.Config.UninitArgsAreZero {
			return nil
		}
		return UninitializedArgument(n)
	}
	ctx.Args[n] = val
	if n >= ctx.ArgCount {
		ctx.ArgCount = n + 1
	}
	return nil
}

// argumentSlot resolves which of the 16 argument slots a variable access
// names: -1 for argument0..15 is never returned (those always have a slot);
// -1 is returned for argument_relative/argument_count, which aren't slots.
func argumentSlot(v InstanceVariable, idx int32) int {
	switch v {
	case Argument0, Argument1, Argument2, Argument3, Argument4, Argument5, Argument6, Argument7,
		Argument8, Argument9, Argument10, Argument11, Argument12, Argument13, Argument14, Argument15:
		return int(v - Argument0)
	case Argument:
		return int(idx)
	default:
		return -1
	}
}
