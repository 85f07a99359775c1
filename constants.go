package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeMove
	ModeConnect
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSaveSVG
	FileOpSavePNG
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmDeleteConnection
	ConfirmOverwriteFile
)

// Layout geometry, in canvas pixels.
const (
	eventWidth      = 160.0
	collapsedHeight = 40.0
	expandedHeight  = 120.0
	indentStep      = 20.0 // horizontal offset per same-day stacking level
	maxIndent       = 10
	canvasPadding   = 40.0
	dayGap          = 48.0 // gap between day columns
	stackGap        = 16.0 // vertical gap between same-day events in a lane
	linkedStackGap  = 40.0 // widened gap when the pair is connected
	lanePadding     = 30.0
	minLaneHeight   = 160.0
	minCanvasWidth  = 800.0
	minCanvasHeight = 400.0
)

// paletteSize is the number of distinct highlight colors for edges of a
// hovered component.
const paletteSize = 7
