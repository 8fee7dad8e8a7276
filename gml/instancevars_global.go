package gml

import "github.com/isgasho/gsl8engine/values"

// getGlobalVar dispatches a variable whose storage is the engine itself
// rather than any one instance: room/scene, score/lives/
// health, backgrounds/views, input, timekeeping, environment,
// introspection, version/registration constants.
func (eng *Engine) getGlobalVar(v InstanceVariable, ctx *Context, idx int32) (values.Value, error) {
	switch v {
	case Room:
		return values.NewInt(eng.Room), nil
	case RoomFirst:
		return values.NewInt(eng.RoomFirst), nil
	case RoomLast:
		return values.NewInt(eng.RoomLast), nil
	case RoomWidth:
		return values.NewInt(eng.RoomWidth), nil
	case RoomHeight:
		return values.NewInt(eng.RoomHeight), nil
	case RoomCaption:
		return values.NewString(eng.RoomCaption), nil
	case RoomSpeed:
		return values.NewInt(eng.RoomSpeed), nil
	case TransitionKind:
		return values.NewInt(eng.TransitionKind), nil
	case TransitionSteps:
		return values.NewInt(eng.TransitionSteps), nil

	case Score:
		return values.NewReal(eng.Score), nil
	case Lives:
		return values.NewInt(eng.Lives), nil
	case Health:
		return values.NewReal(eng.Health), nil

	case MouseX:
		return values.NewInt(0), nil // no renderer/viewport in this engine to project mouse into room space
	case MouseY:
		return values.NewInt(0), nil
	case MouseButton:
		return values.NewInt(eng.Input.MouseButton()), nil
	case MouseLastbutton:
		return values.NewInt(eng.Input.MouseLastButton()), nil
	case KeyboardKey:
		return values.NewInt(eng.Input.KeyKey()), nil
	case KeyboardLastkey:
		return values.NewInt(eng.Input.KeyLastKey()), nil
	case KeyboardLastchar:
		return values.NewString(eng.Input.KeyboardLastChar()), nil
	case KeyboardString:
		return values.NewString(eng.Input.KeyboardString()), nil

	case CurrentTime:
		return values.NewInt(eng.currentTimeMillis()), nil
	case CurrentYear:
		return values.NewInt(int32(eng.calendarSource().Year())), nil
	case CurrentMonth:
		return values.NewInt(int32(eng.calendarSource().Month())), nil
	case CurrentDay:
		return values.NewInt(int32(eng.calendarSource().Day())), nil
	case CurrentWeekday:
		return values.NewInt(int32(eng.calendarSource().Weekday())), nil
	case CurrentHour:
		return values.NewInt(int32(eng.calendarSource().Hour())), nil
	case CurrentMinute:
		return values.NewInt(int32(eng.calendarSource().Minute())), nil
	case CurrentSecond:
		return values.NewInt(int32(eng.calendarSource().Second())), nil
	case FPS:
		return values.NewInt(eng.RoomSpeed), nil

	case WorkingDirectory:
		enc, ok := eng.encodeDirectory(eng.WorkingDirectory)
		if !ok {
			return values.Zero, BadDirectoryError(eng.WorkingDirectory)
		}
		return values.NewString(enc), nil
	case ProgramDirectory:
		return values.NewString(eng.ProgramDirectory), nil
	case TempDirectory:
		return values.NewString(eng.TempDirectory), nil

	case InstanceCount:
		return values.NewInt(int32(eng.Instances.CountAll())), nil
	case InstanceId:
		id, ok := eng.Instances.InstanceAt(int(idx))
		if !ok {
			return values.NewInt(Noone), nil
		}
		return values.NewInt(id), nil

	case GamemakerRegistered:
		return values.NewBool(true), nil
	case GamemakerPro:
		return values.NewBool(true), nil
	case GamemakerVersion:
		return values.NewInt(800), nil
	case SecureMode:
		return values.NewBool(false), nil
	case DebugMode:
		return values.NewBool(false), nil
	case OsType:
		return values.NewInt(osTypeWindows), nil
	case OsBrowser:
		return values.NewInt(-1), nil
	case OsVersion:
		return values.NewInt(-1), nil
	case BrowserWidth:
		return values.NewInt(-1), nil
	case BrowserHeight:
		return values.NewInt(-1), nil
	case AsyncLoad:
		return values.NewInt(-1), nil
	case DisplayAa:
		return values.NewInt(14), nil

	case ErrorOccurred:
		return values.NewBool(eng.ErrorOccurred), nil
	case ErrorLast:
		return values.NewString(eng.ErrorLast), nil

	default:
		return eng.getBackgroundOrView(v, idx)
	}
}

// osTypeWindows is the constant the reference engine reports for os_type
//: it only ever targeted Windows.
const osTypeWindows = 0

func (eng *Engine) encodeDirectory(dir string) (string, bool) {
	if eng.Encode == nil {
		return dir, true
	}
	b, ok := eng.Encode(dir)
	if !ok {
		return "", false
	}
	return string(b), true
}

func (eng *Engine) setGlobalVar(v InstanceVariable, ctx *Context, idx int32, val values.Value) error {
	switch v {
	case Room:
		room := val.ToInt32()
		eng.PendingRoom = &room
		return nil
	case RoomCaption:
		eng.RoomCaption = val.Str()
		eng.RoomCaptionStale = true
		return nil
	case RoomSpeed:
		n := val.ToInt32()
		if n <= 0 {
			return InvalidRoomSpeed(n)
		}
		eng.RoomSpeed = n
		return nil
	case TransitionKind:
		eng.TransitionKind = val.ToInt32()
		return nil
	case TransitionSteps:
		eng.TransitionSteps = val.ToInt32()
		return nil

	case Score:
		eng.Score = val.Real()
		return nil
	case Lives:
		return eng.setLives(ctx, val.ToInt32())
	case Health:
		return eng.setHealth(ctx, val.Real())

	case MouseButton:
		if val.ToInt32() > 0 {
			eng.Input.SetMouseButton(val.ToInt32())
		}
		return nil
	case MouseLastbutton:
		if val.ToInt32() > 0 {
			eng.Input.SetMouseLastButton(val.ToInt32())
		}
		return nil
	case KeyboardKey:
		if val.ToInt32() > 0 {
			eng.Input.SetKeyKey(val.ToInt32())
		}
		return nil
	case KeyboardLastkey:
		if val.ToInt32() > 0 {
			eng.Input.SetKeyLastKey(val.ToInt32())
		}
		return nil
	case KeyboardLastchar:
		eng.Input.SetKeyboardLastChar(val.Str())
		return nil
	case KeyboardString:
		eng.Input.SetKeyboardString(val.Str())
		return nil

	case ErrorOccurred:
		eng.ErrorOccurred = val.IsTruthy()
		return nil
	case ErrorLast:
		eng.ErrorLast = val.Str()
		return nil

	default:
		return eng.setBackgroundOrView(v, idx, val)
	}
}

// setLives implements the lives-crossing event trigger: a transition from
// > 0 to <= 0 fires event (7,6) synchronously, exactly once per crossing.
func (eng *Engine) setLives(ctx *Context, n int32) error {
	prev := eng.Lives
	eng.Lives = n
	if prev > 0 && n <= 0 {
		return eng.dispatch(ctx, 7, 6)
	}
	return nil
}

// setHealth is the health counterpart, firing event (7,9).
func (eng *Engine) setHealth(ctx *Context, h Real) error {
	prev := eng.Health
	eng.Health = h
	if prev > 0 && h <= 0 {
		return eng.dispatch(ctx, 7, 9)
	}
	return nil
}

func (eng *Engine) dispatch(ctx *Context, eventType, eventNumber int32) error {
	if eng.Dispatch == nil {
		return nil
	}
	return eng.Dispatch(eng, eventType, eventNumber, ctx.This)
}
