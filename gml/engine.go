package gml

import (
	"log"

	"github.com/isgasho/gsl8engine/values"
)

// EngineConfig carries the handful of engine-wide policy knobs the
// specification leaves to host configuration rather than hard-coding
//.
type EngineConfig struct {
	UninitFieldsAreZero bool `yaml:"uninit_fields_are_zero"`
	UninitArgsAreZero   bool `yaml:"uninit_args_are_zero"`
	Codepage            string `yaml:"codepage"`
	AtlasPageSize        int  `yaml:"atlas_page_size"`
	ControlPanelPort     int  `yaml:"control_panel_port"`
}

// DefaultEngineConfig mirrors the original engine's documented defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		UninitFieldsAreZero: false,
		UninitArgsAreZero:   false,
		Codepage:            "windows-1252",
		AtlasPageSize:        1024,
		ControlPanelPort:     0,
	}
}

// Background is one of the engine's eight fixed background-layer slots
//.
type Background struct {
	Visible    bool
	Foreground bool
	ShowColor  bool
	Color      int32
	Index      int32
	X, Y       Real
	Width, Height int32
	HTiled, VTiled bool
	Xspeed, Yspeed Real
	Alpha      Real
}

// View is one of the engine's eight fixed viewport slots.
type View struct {
	Enabled  bool
	Visible  bool
	Xview, Yview Real
	Wview, Hview Real
	Xport, Yport Real
	Wport, Hport Real
	Angle    Real
	Hborder, Vborder Real
	Hspeed, Vspeed   Real
	Object   int32
}

// EventDispatcher re-enters the outer event dispatcher from inside a
// setter. The
// engine core never dispatches events itself; it only calls back out.
type EventDispatcher func(eng *Engine, eventType, eventNumber int32, target Handle) error

// Engine is the full mutable game state the executor and evaluator run
// against. It owns no goroutines and takes
// no locks: every operation runs to completion before the next begins
//.
type Engine struct {
	Instances  *InstanceList
	Assets     Assets
	Globals    *FieldHolder
	GlobalVars map[int]bool

	Config *EngineConfig
	Logger *log.Logger
	Input  InputManager

	Dispatch EventDispatcher

	Room             int32
	RoomFirst        int32
	RoomLast         int32
	RoomWidth        int32
	RoomHeight       int32
	RoomCaption      string
	RoomCaptionStale bool
	RoomSpeed        int32
	RoomPersistent   map[int32]bool // room_persistent flag per instance, keyed by instance id
	PendingRoom      *int32         // scene-change flag, consumed by the outer loop

	Score  Real
	Lives  int32
	Health Real

	TransitionKind  int32
	TransitionSteps int32

	Backgrounds [8]Background
	Views       [8]View

	WorkingDirectory string
	ProgramDirectory string
	TempDirectory    string

	// Encode converts a host string to the project's codepage
	//; nil means "always succeeds, identity".
	Encode func(s string) ([]byte, bool)

	// SpoofMillis overrides current_time/date getters when non-nil
	//.
	SpoofMillis *int64

	nowMillis func() int64

	// nextInstanceID allocates runtime instance ids for CreateInstance,
	// starting at FirstRuntimeInstanceID.
	nextInstanceID int32

	ErrorOccurred bool
	ErrorLast     string
}

// NewEngine wires the instance list, asset table and config into a ready
// engine. Input starts as an in-memory DefaultInputManager; Dispatch
// starts nil, in which case a lives/health crossing runs no event until
// the caller sets one.
func NewEngine(assets Assets, cfg *EngineConfig, logger *log.Logger) *Engine {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		Instances:      NewInstanceList(),
		Assets:         assets,
		Globals:        NewFieldHolder(),
		GlobalVars:     make(map[int]bool),
		Config:         cfg,
		Logger:         logger,
		Input:          NewDefaultInputManager(),
		RoomPersistent: make(map[int32]bool),
	}
}

func (eng *Engine) uninit(name string, index int32) (values.Value, error) {
	if eng.Config.UninitFieldsAreZero {
		return values.NewReal(0), nil
	}
	return values.Zero, UninitializedVariable(name, index)
}

func (eng *Engine) wallMillis() int64 {
	if eng.nowMillis != nil {
		return eng.nowMillis()
	}
	return defaultNowMillis()
}
