package gml

// InputManager is the host collaborator the engine reads mouse/keyboard
// state from and writes "lastbutton/lastkey" latches to. The default
// implementation below is a plain in-memory latch store; a real front-end
// implements the same interface over its window system's event queue.
type InputManager interface {
	MouseButton() int32
	SetMouseButton(int32)
	MouseLastButton() int32
	SetMouseLastButton(int32)

	KeyKey() int32
	SetKeyKey(int32)
	KeyLastKey() int32
	SetKeyLastKey(int32)

	// KeyboardLastChar/KeyboardString are modeled as a plain read/write
	// string buffer, appended to by whatever feeds
	// keypress events into the engine (run_event_keypress in the outer
	// loop), with no OS text-input semantics modeled here.
	KeyboardLastChar() string
	SetKeyboardLastChar(string)
	KeyboardString() string
	SetKeyboardString(string)
}

// DefaultInputManager is the in-memory InputManager used by the repo's own
// CLI front-ends and tests.
type DefaultInputManager struct {
	mouseButton     int32
	mouseLastButton int32
	keyKey          int32
	keyLastKey      int32
	lastChar        string
	stringBuffer    string
}

// NewDefaultInputManager constructs an InputManager with nothing held.
func NewDefaultInputManager() *DefaultInputManager { return &DefaultInputManager{} }

func (m *DefaultInputManager) MouseButton() int32         { return m.mouseButton }
func (m *DefaultInputManager) SetMouseButton(v int32)     { m.mouseButton = v }
func (m *DefaultInputManager) MouseLastButton() int32     { return m.mouseLastButton }
func (m *DefaultInputManager) SetMouseLastButton(v int32) { m.mouseLastButton = v }

func (m *DefaultInputManager) KeyKey() int32         { return m.keyKey }
func (m *DefaultInputManager) SetKeyKey(v int32)     { m.keyKey = v }
func (m *DefaultInputManager) KeyLastKey() int32     { return m.keyLastKey }
func (m *DefaultInputManager) SetKeyLastKey(v int32) { m.keyLastKey = v }

func (m *DefaultInputManager) KeyboardLastChar() string     { return m.lastChar }
func (m *DefaultInputManager) SetKeyboardLastChar(s string) { m.lastChar = s }
func (m *DefaultInputManager) KeyboardString() string       { return m.stringBuffer }
func (m *DefaultInputManager) SetKeyboardString(s string)   { m.stringBuffer = s }
