package gml

import "github.com/isgasho/gsl8engine/values"

// clampSlot redirects an out-of-range background/view index to slot 0:
// index overflow on read or write silently redirects to index 0.
func clampSlot(idx int32) int32 {
	if idx < 0 || idx >= 8 {
		return 0
	}
	return idx
}

func (eng *Engine) getBackgroundOrView(v InstanceVariable, idx int32) (values.Value, error) {
	switch v {
	case BackgroundColor:
		return values.NewInt(0), nil // room background color, not a per-slot layer; no renderer owns a palette here
	case BackgroundShowcolor:
		return values.NewBool(false), nil
	case BackgroundVisible:
		return values.NewBool(eng.Backgrounds[clampSlot(idx)].Visible), nil
	case BackgroundForeground:
		return values.NewBool(eng.Backgrounds[clampSlot(idx)].Foreground), nil
	case BackgroundIndex:
		return values.NewInt(eng.Backgrounds[clampSlot(idx)].Index), nil
	case BackgroundX:
		return values.NewReal(eng.Backgrounds[clampSlot(idx)].X), nil
	case BackgroundY:
		return values.NewReal(eng.Backgrounds[clampSlot(idx)].Y), nil
	case BackgroundWidth:
		return values.NewInt(eng.Backgrounds[clampSlot(idx)].Width), nil
	case BackgroundHeight:
		return values.NewInt(eng.Backgrounds[clampSlot(idx)].Height), nil
	case BackgroundHtiled:
		return values.NewBool(eng.Backgrounds[clampSlot(idx)].HTiled), nil
	case BackgroundVtiled:
		return values.NewBool(eng.Backgrounds[clampSlot(idx)].VTiled), nil
	case BackgroundXspeed:
		return values.NewReal(eng.Backgrounds[clampSlot(idx)].Xspeed), nil
	case BackgroundYspeed:
		return values.NewReal(eng.Backgrounds[clampSlot(idx)].Yspeed), nil
	case BackgroundAlpha:
		return values.NewReal(eng.Backgrounds[clampSlot(idx)].Alpha), nil

	case ViewEnabled:
		return values.NewBool(eng.Views[clampSlot(idx)].Enabled), nil
	case ViewCurrent:
		return values.NewInt(0), nil
	case ViewVisible:
		return values.NewBool(eng.Views[clampSlot(idx)].Visible), nil
	case ViewXview:
		return values.NewReal(eng.Views[clampSlot(idx)].Xview), nil
	case ViewYview:
		return values.NewReal(eng.Views[clampSlot(idx)].Yview), nil
	case ViewWview:
		return values.NewReal(eng.Views[clampSlot(idx)].Wview), nil
	case ViewHview:
		return values.NewReal(eng.Views[clampSlot(idx)].Hview), nil
	case ViewXport:
		return values.NewReal(eng.Views[clampSlot(idx)].Xport), nil
	case ViewYport:
		return values.NewReal(eng.Views[clampSlot(idx)].Yport), nil
	case ViewWport:
		return values.NewReal(eng.Views[clampSlot(idx)].Wport), nil
	case ViewHport:
		return values.NewReal(eng.Views[clampSlot(idx)].Hport), nil
	case ViewAngle:
		return values.NewReal(eng.Views[clampSlot(idx)].Angle), nil
	case ViewHborder:
		return values.NewReal(eng.Views[clampSlot(idx)].Hborder), nil
	case ViewVborder:
		return values.NewReal(eng.Views[clampSlot(idx)].Vborder), nil
	case ViewHspeed:
		return values.NewReal(eng.Views[clampSlot(idx)].Hspeed), nil
	case ViewVspeed:
		return values.NewReal(eng.Views[clampSlot(idx)].Vspeed), nil
	case ViewObject:
		return values.NewInt(eng.Views[clampSlot(idx)].Object), nil

	default:
		return values.Zero, UnexpectedASTExpr(v.Name())
	}
}

func (eng *Engine) setBackgroundOrView(v InstanceVariable, idx int32, val values.Value) error {
	slot := clampSlot(idx)
	switch v {
	case BackgroundVisible:
		eng.Backgrounds[slot].Visible = val.IsTruthy()
	case BackgroundForeground:
		eng.Backgrounds[slot].Foreground = val.IsTruthy()
	case BackgroundIndex:
		eng.Backgrounds[slot].Index = val.ToInt32()
	case BackgroundX:
		eng.Backgrounds[slot].X = val.Real()
	case BackgroundY:
		eng.Backgrounds[slot].Y = val.Real()
	case BackgroundHtiled:
		eng.Backgrounds[slot].HTiled = val.IsTruthy()
	case BackgroundVtiled:
		eng.Backgrounds[slot].VTiled = val.IsTruthy()
	case BackgroundXspeed:
		eng.Backgrounds[slot].Xspeed = val.Real()
	case BackgroundYspeed:
		eng.Backgrounds[slot].Yspeed = val.Real()
	case BackgroundAlpha:
		eng.Backgrounds[slot].Alpha = val.Real()
	case BackgroundColor:
		// room background color has no dedicated slot in this engine.
	case BackgroundShowcolor:

	case ViewEnabled:
		eng.Views[slot].Enabled = val.IsTruthy()
	case ViewVisible:
		eng.Views[slot].Visible = val.IsTruthy()
	case ViewXview:
		eng.Views[slot].Xview = val.Real()
	case ViewYview:
		eng.Views[slot].Yview = val.Real()
	case ViewWview:
		eng.Views[slot].Wview = val.Real()
	case ViewHview:
		eng.Views[slot].Hview = val.Real()
	case ViewXport:
		eng.Views[slot].Xport = val.Real()
	case ViewYport:
		eng.Views[slot].Yport = val.Real()
	case ViewWport:
		eng.Views[slot].Wport = val.Real()
	case ViewHport:
		eng.Views[slot].Hport = val.Real()
	case ViewAngle:
		eng.Views[slot].Angle = val.Real()
	case ViewHborder:
		eng.Views[slot].Hborder = val.Real()
	case ViewVborder:
		eng.Views[slot].Vborder = val.Real()
	case ViewHspeed:
		eng.Views[slot].Hspeed = val.Real()
	case ViewVspeed:
		eng.Views[slot].Vspeed = val.Real()
	case ViewObject:
		eng.Views[slot].Object = val.ToInt32()

	default:
		return UnexpectedASTExpr(v.Name())
	}
	return nil
}
