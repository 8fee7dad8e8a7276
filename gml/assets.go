package gml

import "github.com/isgasho/gsl8engine/values"

// Object is a compiled object class: instances
// reference one by ObjectIndex, and `with`/`instance_create` scoping and
// the class hierarchy both resolve through it.
type Object struct {
	Name       string
	Parent     int32 // -1 if this object has no parent
	Sprite     int32
	Solid      bool
	Visible    bool
	Persistent bool
	Depth      int32

	// Events is this object's own event table: the script bound to each
	// (type, number) pair. A lookup that misses here falls back to Parent's
	// table, matching GameMaker's event inheritance.
	Events map[EventKey]int32
}

// EventKey identifies one event slot:
// the GameMaker event type (Create, Step, Collision, ...) and its
// sub-number (which alarm, which key, which "other" event).
type EventKey struct {
	Type, Number int32
}

// Sprite is a compiled sprite asset: enough geometry to answer the
// read-only sprite_width/height/xoffset/yoffset instance variables and to
// recompute a stale bounding box.
type Sprite struct {
	Width, Height                     int32
	OriginX, OriginY                  int32
	BboxLeft, BboxTop, BboxRight, BboxBottom int32
	FrameCount                        int32
}

// Script is a compiled user script: a flat instruction body plus the
// argument count it was authored against. The engine never checks calls
// against ArgCount, since GSL scripts accept any number of arguments.
type Script struct {
	Name     string
	Body     []Instruction
	ArgCount int
}

// Assets is the read-only project data the engine executes against
//: objects, sprites, scripts and the constant pool. The
// engine never mutates it at runtime.
type Assets interface {
	Object(id int32) (*Object, bool)
	Sprite(id int32) (*Sprite, bool)
	Script(id int32) (*Script, bool)
	Constant(id int32) (values.Value, bool)

	// ObjectDescendants returns the set of object ids that `class`
	// resolves to for `with`/`instance_create`/`instance_number` purposes:
	// the class itself plus every object whose parent chain reaches it
	//).
	ObjectDescendants(class int32) map[int32]bool

	// ResolveEvent finds the script bound to an object's (type, number)
	// event slot, inheriting from its parent chain when unset.
	ResolveEvent(objID int32, key EventKey) (int32, bool)
}

// MemoryAssets is the default in-memory Assets implementation, built by a
// loader (e.g. from a control-panel session or a test fixture) and handed
// to the Engine at construction.
type MemoryAssets struct {
	objects   map[int32]*Object
	sprites   map[int32]*Sprite
	scripts   map[int32]*Script
	constants map[int32]values.Value
}

// NewMemoryAssets constructs an empty asset set ready for registration.
func NewMemoryAssets() *MemoryAssets {
	return &MemoryAssets{
		objects:   make(map[int32]*Object),
		sprites:   make(map[int32]*Sprite),
		scripts:   make(map[int32]*Script),
		constants: make(map[int32]values.Value),
	}
}

func (a *MemoryAssets) AddObject(id int32, obj *Object)      { a.objects[id] = obj }
func (a *MemoryAssets) AddSprite(id int32, spr *Sprite)      { a.sprites[id] = spr }
func (a *MemoryAssets) AddScript(id int32, scr *Script)      { a.scripts[id] = scr }
func (a *MemoryAssets) AddConstant(id int32, v values.Value) { a.constants[id] = v }

func (a *MemoryAssets) Object(id int32) (*Object, bool) {
	o, ok := a.objects[id]
	return o, ok
}

func (a *MemoryAssets) Sprite(id int32) (*Sprite, bool) {
	s, ok := a.sprites[id]
	return s, ok
}

func (a *MemoryAssets) Script(id int32) (*Script, bool) {
	s, ok := a.scripts[id]
	return s, ok
}

func (a *MemoryAssets) Constant(id int32) (values.Value, bool) {
	v, ok := a.constants[id]
	return v, ok
}

// ObjectDescendants walks every registered object's parent chain, so it
// costs O(objects) per call; the resolver caches nothing, matching the
// reference engine's decision to keep class membership a pure function of
// the static object table rather than an invalidatable cache.
func (a *MemoryAssets) ObjectDescendants(class int32) map[int32]bool {
	set := make(map[int32]bool)
	if _, ok := a.objects[class]; !ok {
		return set
	}
	for id := range a.objects {
		if id == class || a.isDescendant(id, class) {
			set[id] = true
		}
	}
	return set
}

// ResolveEvent finds the script bound to key on objID, walking up the
// parent chain when objID's own event table has no entry (event
// inheritance).
func (a *MemoryAssets) ResolveEvent(objID int32, key EventKey) (int32, bool) {
	seen := make(map[int32]bool)
	for {
		obj, ok := a.objects[objID]
		if !ok {
			return 0, false
		}
		if scriptID, ok := obj.Events[key]; ok {
			return scriptID, true
		}
		if obj.Parent < 0 || seen[obj.Parent] {
			return 0, false
		}
		seen[objID] = true
		objID = obj.Parent
	}
}

func (a *MemoryAssets) isDescendant(id, class int32) bool {
	seen := make(map[int32]bool)
	for {
		obj, ok := a.objects[id]
		if !ok || obj.Parent < 0 {
			return false
		}
		if obj.Parent == class {
			return true
		}
		if seen[obj.Parent] {
			return false // cyclic parent chain; treat as no match rather than loop forever
		}
		seen[obj.Parent] = true
		id = obj.Parent
	}
}
