package parameter

// Palette Layout (world units)
const (
	PaletteEntrySize = 48.0
	PaletteEntryGap  = 12.0
	PaletteIconSize  = CellSize
)

// Palette Animation
const (
	PalettePopupHover = 6.0
	PalettePopupDrag  = 14.0
	PalettePopupAccel = 300.0

	PaletteDragAccel  = 400.0
	PaletteAngleAccel = 400.0

	// PaletteCountPulse is the velocity kick on the count label when stock changes
	PaletteCountPulse = 6.0
	PaletteCountAccel = 400.0
)
