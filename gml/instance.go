package gml

import (
	"math"

	"github.com/isgasho/gsl8engine/values"
)

// Handle is a stable integer identifying a live instance in the arena
//: scoping code carries handles, never pointers, so an
// instance can be logically destroyed without leaving dangling references.
type Handle int32

// FirstRuntimeInstanceID is the lowest id assigned to an instance created
// while the game runs; ids below it are reserved for instances placed at
// room-design time.
const FirstRuntimeInstanceID int32 = 100000

// Instance is a live game object. Every field the original
// engine exposes through cell-based interior mutability is a plain Go
// field here: the engine is single-threaded, so there is no
// need for atomics — only the *bbox staleness* invariant requires explicit
// bookkeeping, which BboxStale captures directly.
type Instance struct {
	ID           int32
	ObjectIndex  int32
	Destroyed    bool

	X, Y                       Real
	Xprevious, Yprevious       Real
	Xstart, Ystart             Real
	Hspeed, Vspeed             Real
	Direction, Speed           Real
	Friction, Gravity          Real
	GravityDirection           Real

	SpriteIndex  int32
	MaskIndex    int32
	ImageIndex   Real
	ImageSpeed   Real
	ImageXscale  Real
	ImageYscale  Real
	ImageAngle   Real
	ImageAlpha   Real
	ImageBlend   int32
	Depth        Real
	Visible      bool
	Solid        bool
	Persistent   bool

	PathIndex            int32
	PathPosition         Real
	PathPositionPrevious Real
	PathSpeed            Real
	PathScale            Real
	PathOrientation      Real
	PathEndAction        int32

	TimelineIndex    int32
	TimelinePosition Real
	TimelineSpeed    Real
	TimelineRunning  bool
	TimelineLoop     bool

	Alarms map[int32]int32

	BboxStale             bool
	BboxLeft, BboxRight   int32
	BboxTop, BboxBottom   int32

	Fields *FieldHolder
}

// Real is an alias so instance.go doesn't need to import values for the
// scalar motion/visual fields, which are always numeric.
type Real = values.Real

// NewInstance constructs an instance the way the outer world's factory
// does when placing or spawning one: fresh field map, no
// alarms set, bbox marked stale so the first read recomputes it.
func NewInstance(id, objectIndex int32, x, y Real) *Instance {
	return &Instance{
		ID:          id,
		ObjectIndex: objectIndex,
		X:           x,
		Y:           y,
		Xstart:      x,
		Ystart:      y,
		Xprevious:   x,
		Yprevious:   y,
		SpriteIndex: -1,
		MaskIndex:   -1,
		Visible:     true,
		Solid:       false,
		Persistent:  false,
		ImageXscale: 1,
		ImageYscale: 1,
		ImageBlend:  0xFFFFFF,
		ImageAlpha:  1,
		Alarms:      make(map[int32]int32),
		BboxStale:   true,
		Fields:      NewFieldHolder(),
	}
}

// recomputeFromCartesian re-derives direction/speed after hspeed or vspeed
// is written directly, matching the reference engine's reconciliation
//.
func (inst *Instance) recomputeFromCartesian() {
	hs, vs := float64(inst.Hspeed), float64(inst.Vspeed)
	inst.Speed = Real(math.Hypot(hs, vs))
	if hs != 0 || vs != 0 {
		inst.Direction = Real(normalizeDegrees(math.Atan2(-vs, hs) * 180 / math.Pi))
	}
}

// recomputeFromPolar re-derives hspeed/vspeed after direction or speed is
// written directly.
func (inst *Instance) recomputeFromPolar() {
	dirRad := float64(inst.Direction) * math.Pi / 180
	speed := float64(inst.Speed)
	inst.Hspeed = Real(speed * math.Cos(dirRad))
	inst.Vspeed = Real(-speed * math.Sin(dirRad))
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SetHspeed implements the `hspeed` setter: writes the cartesian component
// and re-derives direction/speed.
func (inst *Instance) SetHspeed(v Real) {
	inst.Hspeed = v
	inst.recomputeFromCartesian()
}

func (inst *Instance) SetVspeed(v Real) {
	inst.Vspeed = v
	inst.recomputeFromCartesian()
}

func (inst *Instance) SetDirection(v Real) {
	inst.Direction = Real(normalizeDegrees(float64(v)))
	inst.recomputeFromPolar()
}

func (inst *Instance) SetSpeed(v Real) {
	inst.Speed = v
	inst.recomputeFromPolar()
}

// markBboxStaleIfChanged sets the staleness flag iff the written value
// actually differs from the current one.
func (inst *Instance) markBboxStaleIfChanged(changed bool) {
	if changed {
		inst.BboxStale = true
	}
}
