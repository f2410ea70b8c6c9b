package render

// Priority determines draw order. Lower values draw first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityBoards
	PriorityPalette
	PriorityHUD
	PriorityMenu
	PriorityDebug
)
