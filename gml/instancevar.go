package gml

// InstanceVariable is the closed set of ~150 built-in names the engine
// dispatches on. It is represented as an enum rather than a
// string so that accessor resolution, field storage and the getter/setter
// jump tables are all O(1) array/map lookups keyed by a small integer.
type InstanceVariable uint16

const (
	// Motion
	X InstanceVariable = iota
	Y
	Xprevious
	Yprevious
	Xstart
	Ystart
	Hspeed
	Vspeed
	Direction
	Speed
	Friction
	Gravity
	GravityDirection

	// Identity
	ObjectIndex
	Id

	// Alarms
	Alarm

	// Visual flags
	Solid
	Visible
	Persistent
	Depth

	// Bounding box
	BboxLeft
	BboxRight
	BboxTop
	BboxBottom

	// Sprite
	SpriteIndex
	ImageIndex
	ImageSingle
	ImageNumber
	SpriteWidth
	SpriteHeight
	SpriteXoffset
	SpriteYoffset
	ImageXscale
	ImageYscale
	ImageAngle
	ImageAlpha
	ImageBlend
	ImageSpeed
	MaskIndex

	// Path
	PathIndex
	PathPosition
	PathPositionprevious
	PathSpeed
	PathScale
	PathOrientation
	PathEndaction

	// Timeline
	TimelineIndex
	TimelinePosition
	TimelineSpeed
	TimelineRunning
	TimelineLoop

	// Arguments
	Argument0
	Argument1
	Argument2
	Argument3
	Argument4
	Argument5
	Argument6
	Argument7
	Argument8
	Argument9
	Argument10
	Argument11
	Argument12
	Argument13
	Argument14
	Argument15
	Argument
	ArgumentRelative
	ArgumentCount

	// Room / scene
	Room
	RoomFirst
	RoomLast
	RoomWidth
	RoomHeight
	RoomCaption
	RoomSpeed
	RoomPersistent
	TransitionKind
	TransitionSteps

	// Score / lives / health
	Score
	Lives
	Health

	// Background / view
	BackgroundColor
	BackgroundShowcolor
	BackgroundVisible
	BackgroundForeground
	BackgroundIndex
	BackgroundX
	BackgroundY
	BackgroundWidth
	BackgroundHeight
	BackgroundHtiled
	BackgroundVtiled
	BackgroundXspeed
	BackgroundYspeed
	BackgroundAlpha
	ViewEnabled
	ViewCurrent
	ViewVisible
	ViewXview
	ViewYview
	ViewWview
	ViewHview
	ViewXport
	ViewYport
	ViewWport
	ViewHport
	ViewAngle
	ViewHborder
	ViewVborder
	ViewHspeed
	ViewVspeed
	ViewObject

	// Input
	MouseX
	MouseY
	MouseButton
	MouseLastbutton
	KeyboardKey
	KeyboardLastkey
	KeyboardLastchar
	KeyboardString

	// Timekeeping
	CurrentTime
	CurrentYear
	CurrentMonth
	CurrentDay
	CurrentWeekday
	CurrentHour
	CurrentMinute
	CurrentSecond
	FPS

	// Environment
	WorkingDirectory
	ProgramDirectory
	TempDirectory

	// Introspection
	InstanceCount
	InstanceId

	// Version / registration / capability constants
	GamemakerRegistered
	GamemakerPro
	GamemakerVersion
	SecureMode
	DebugMode
	OsType
	OsBrowser
	OsVersion
	BrowserWidth
	BrowserHeight
	AsyncLoad
	DisplayAa

	// Error reporting globals
	ErrorOccurred
	ErrorLast

	instanceVariableCount
)

type instanceVariableInfo struct {
	name     string
	readOnly bool
}

// instanceVariableTable is the generated jump-table key: name + whether an
// assignment should raise ReadOnlyVariable.
var instanceVariableTable = [instanceVariableCount]instanceVariableInfo{
	X:                    {"x", false},
	Y:                    {"y", false},
	Xprevious:            {"xprevious", false},
	Yprevious:            {"yprevious", false},
	Xstart:               {"xstart", false},
	Ystart:               {"ystart", false},
	Hspeed:               {"hspeed", false},
	Vspeed:               {"vspeed", false},
	Direction:            {"direction", false},
	Speed:                {"speed", false},
	Friction:             {"friction", false},
	Gravity:              {"gravity", false},
	GravityDirection:     {"gravity_direction", false},
	ObjectIndex:          {"object_index", true},
	Id:                   {"id", true},
	Alarm:                {"alarm", false},
	Solid:                {"solid", false},
	Visible:              {"visible", false},
	Persistent:           {"persistent", false},
	Depth:                {"depth", false},
	BboxLeft:             {"bbox_left", true},
	BboxRight:            {"bbox_right", true},
	BboxTop:              {"bbox_top", true},
	BboxBottom:           {"bbox_bottom", true},
	SpriteIndex:          {"sprite_index", false},
	ImageIndex:           {"image_index", false},
	ImageSingle:          {"image_single", false},
	ImageNumber:          {"image_number", true},
	SpriteWidth:          {"sprite_width", true},
	SpriteHeight:         {"sprite_height", true},
	SpriteXoffset:        {"sprite_xoffset", true},
	SpriteYoffset:        {"sprite_yoffset", true},
	ImageXscale:          {"image_xscale", false},
	ImageYscale:          {"image_yscale", false},
	ImageAngle:           {"image_angle", false},
	ImageAlpha:           {"image_alpha", false},
	ImageBlend:           {"image_blend", false},
	ImageSpeed:           {"image_speed", false},
	MaskIndex:            {"mask_index", false},
	PathIndex:            {"path_index", false},
	PathPosition:         {"path_position", false},
	PathPositionprevious: {"path_positionprevious", true},
	PathSpeed:            {"path_speed", false},
	PathScale:            {"path_scale", false},
	PathOrientation:      {"path_orientation", false},
	PathEndaction:        {"path_endaction", false},
	TimelineIndex:        {"timeline_index", false},
	TimelinePosition:     {"timeline_position", false},
	TimelineSpeed:        {"timeline_speed", false},
	TimelineRunning:      {"timeline_running", false},
	TimelineLoop:         {"timeline_loop", false},
	Argument0:            {"argument0", false},
	Argument1:            {"argument1", false},
	Argument2:            {"argument2", false},
	Argument3:            {"argument3", false},
	Argument4:            {"argument4", false},
	Argument5:            {"argument5", false},
	Argument6:            {"argument6", false},
	Argument7:            {"argument7", false},
	Argument8:            {"argument8", false},
	Argument9:            {"argument9", false},
	Argument10:           {"argument10", false},
	Argument11:           {"argument11", false},
	Argument12:           {"argument12", false},
	Argument13:           {"argument13", false},
	Argument14:           {"argument14", false},
	Argument15:           {"argument15", false},
	Argument:             {"argument", false},
	ArgumentRelative:     {"argument_relative", true},
	ArgumentCount:        {"argument_count", true},
	Room:                 {"room", false},
	RoomFirst:            {"room_first", true},
	RoomLast:             {"room_last", true},
	RoomWidth:            {"room_width", true},
	RoomHeight:           {"room_height", true},
	RoomCaption:          {"room_caption", false},
	RoomSpeed:            {"room_speed", false},
	RoomPersistent:       {"room_persistent", false},
	TransitionKind:       {"transition_kind", false},
	TransitionSteps:      {"transition_steps", false},
	Score:                {"score", false},
	Lives:                {"lives", false},
	Health:               {"health", false},
	BackgroundColor:      {"background_color", false},
	BackgroundShowcolor:  {"background_showcolor", false},
	BackgroundVisible:    {"background_visible", false},
	BackgroundForeground: {"background_foreground", false},
	BackgroundIndex:      {"background_index", false},
	BackgroundX:          {"background_x", false},
	BackgroundY:          {"background_y", false},
	BackgroundWidth:      {"background_width", true},
	BackgroundHeight:     {"background_height", true},
	BackgroundHtiled:     {"background_htiled", false},
	BackgroundVtiled:     {"background_vtiled", false},
	BackgroundXspeed:     {"background_xspeed", false},
	BackgroundYspeed:     {"background_yspeed", false},
	BackgroundAlpha:      {"background_alpha", false},
	ViewEnabled:          {"view_enabled", false},
	ViewCurrent:          {"view_current", true},
	ViewVisible:          {"view_visible", false},
	ViewXview:            {"view_xview", false},
	ViewYview:            {"view_yview", false},
	ViewWview:            {"view_wview", false},
	ViewHview:            {"view_hview", false},
	ViewXport:            {"view_xport", false},
	ViewYport:            {"view_yport", false},
	ViewWport:            {"view_wport", false},
	ViewHport:            {"view_hport", false},
	ViewAngle:            {"view_angle", false},
	ViewHborder:          {"view_hborder", false},
	ViewVborder:          {"view_vborder", false},
	ViewHspeed:           {"view_hspeed", false},
	ViewVspeed:           {"view_vspeed", false},
	ViewObject:           {"view_object", false},
	MouseX:               {"mouse_x", true},
	MouseY:               {"mouse_y", true},
	MouseButton:          {"mouse_button", false},
	MouseLastbutton:      {"mouse_lastbutton", false},
	KeyboardKey:          {"keyboard_key", false},
	KeyboardLastkey:      {"keyboard_lastkey", false},
	KeyboardLastchar:     {"keyboard_lastchar", false},
	KeyboardString:       {"keyboard_string", false},
	CurrentTime:          {"current_time", true},
	CurrentYear:          {"current_year", true},
	CurrentMonth:         {"current_month", true},
	CurrentDay:           {"current_day", true},
	CurrentWeekday:       {"current_weekday", true},
	CurrentHour:          {"current_hour", true},
	CurrentMinute:        {"current_minute", true},
	CurrentSecond:        {"current_second", true},
	FPS:                  {"fps", true},
	WorkingDirectory:     {"working_directory", true},
	ProgramDirectory:     {"program_directory", true},
	TempDirectory:        {"temp_directory", true},
	InstanceCount:        {"instance_count", true},
	InstanceId:           {"instance_id", true},
	GamemakerRegistered:  {"gamemaker_registered", true},
	GamemakerPro:         {"gamemaker_pro", true},
	GamemakerVersion:     {"gamemaker_version", true},
	SecureMode:           {"secure_mode", true},
	DebugMode:            {"debug_mode", true},
	OsType:               {"os_type", true},
	OsBrowser:            {"os_browser", true},
	OsVersion:            {"os_version", true},
	BrowserWidth:         {"browser_width", true},
	BrowserHeight:        {"browser_height", true},
	AsyncLoad:            {"async_load", true},
	DisplayAa:            {"display_aa", true},
	ErrorOccurred:        {"error_occurred", false},
	ErrorLast:            {"error_last", false},
}

// Name returns the GSL source name of the variable.
func (v InstanceVariable) Name() string {
	if int(v) < len(instanceVariableTable) {
		return instanceVariableTable[v].name
	}
	return "<unknown variable>"
}

func (v InstanceVariable) String() string { return v.Name() }

// ReadOnly reports whether assigning to v must fail with ReadOnlyVariable.
func (v InstanceVariable) ReadOnly() bool {
	if int(v) < len(instanceVariableTable) {
		return instanceVariableTable[v].readOnly
	}
	return true
}

var instanceVariableByName = func() map[string]InstanceVariable {
	m := make(map[string]InstanceVariable, len(instanceVariableTable))
	for i, info := range instanceVariableTable {
		m[info.name] = InstanceVariable(i)
	}
	return m
}()

// LookupInstanceVariable resolves a GSL source name to its enum value, for
// host-side introspection.
func LookupInstanceVariable(name string) (InstanceVariable, bool) {
	v, ok := instanceVariableByName[name]
	return v, ok
}
