package gml

// RunEvent looks up the script bound to (eventType, eventNumber) on
// target's object (inheriting through its parent chain) and executes it
// with a fresh call frame bound to target. A miss is not an error:
// GameMaker objects with no handler for an event simply do nothing.
func (eng *Engine) RunEvent(target Handle, eventType, eventNumber int32) error {
	inst := eng.Instances.Get(target)
	if inst == nil {
		return nil
	}
	scriptID, ok := eng.Assets.ResolveEvent(inst.ObjectIndex, EventKey{Type: eventType, Number: eventNumber})
	if !ok {
		return nil
	}
	script, ok := eng.Assets.Script(scriptID)
	if !ok {
		return NonexistentAsset(AssetScript, scriptID)
	}
	ctx := NewContext(target)
	ctx.EventType = eventType
	ctx.EventNumber = eventNumber
	ctx.EventObject = inst.ObjectIndex
	_, err := eng.Execute(script.Body, ctx)
	return err
}

// DefaultDispatch builds the concrete EventDispatcher this repo supplies
// for Engine.Dispatch: it just re-enters RunEvent. A host
// embedding the engine in a real project runner can substitute its own
// EventDispatcher (e.g. one that also drives rendering) without the
// engine core depending on it.
func DefaultDispatch() EventDispatcher {
	return func(eng *Engine, eventType, eventNumber int32, target Handle) error {
		return eng.RunEvent(target, eventType, eventNumber)
	}
}
