package parameter

// View (world units)
const (
	ViewWidth  = 640
	ViewHeight = 512

	HUDHeight = 32.0

	// BoardTop is the world y of the board band, BoardLeft the x of the first slot
	BoardTop  = 40.0
	BoardLeft = 16.0

	// PaletteTop is the world y of the palette row
	PaletteTop = BoardTop + CellSize*BoardHeight + 12
)

// Terminal Raster
const (
	// TerminalCellWidth and TerminalCellHeight are world units per terminal cell
	TerminalCellWidth  = 8
	TerminalCellHeight = 16
)

// Desktop Window
const (
	DesktopScale = 2
	DesktopTitle = "vi-towers"
)

// Health Bar
const (
	HealthBarWidth  = 0.8 // cells
	HealthBarHeight = 3.0 // world units
	HealthBarOffset = 0.55
)
