package gml

import "github.com/isgasho/gsl8engine/values"

// MaxArguments is the fixed size of a call frame's argument slots
//: GSL scripts and events read argument0..argument15 and the
// indexed `argument[n]` form, but never more than sixteen of them.
const MaxArguments = 16

// Context is one call frame: the `this`/`other` instance
// pair a With-scope or event dispatch is currently executing under, the
// argument slots a script call was invoked with, a private FieldHolder for
// that call's local variables, which event is running (for event_* reads),
// whether indices should be read relative to the current value, and the
// slot a `return` statement's value lands in.
type Context struct {
	This, Other Handle

	Args     [MaxArguments]values.Value
	ArgCount int

	Locals *FieldHolder

	EventType   int32
	EventNumber int32
	EventObject int32
	EventAction int32

	Relative bool

	ReturnValue values.Value
}

// NewContext builds the call frame for an event or action invocation:
// `this` and `other` start out equal, as they do at the top of every event
//; a With block later rebinds them independently.
func NewContext(this Handle) *Context {
	return &Context{
		This:   this,
		Other:  this,
		Locals: NewFieldHolder(),
	}
}

// NewScriptContext builds the call frame for a script invocation
//: `this`/`other` carry over from the caller, a
// fresh Locals map isolates the script's own variables, and args are
// copied into the fixed slots (slots beyond len(args) stay uninitialized).
func NewScriptContext(this, other Handle, args []values.Value) *Context {
	ctx := &Context{
		This:   this,
		Other:  other,
		Locals: NewFieldHolder(),
	}
	n := len(args)
	if n > MaxArguments {
		n = MaxArguments
	}
	copy(ctx.Args[:n], args[:n])
	ctx.ArgCount = len(args)
	return ctx
}

// Argument returns the n-th argument value and whether it was supplied by
// the caller.
func (c *Context) Argument(n int) (values.Value, bool) {
	if n < 0 || n >= MaxArguments {
		return values.Zero, false
	}
	return c.Args[n], n < c.ArgCount
}
