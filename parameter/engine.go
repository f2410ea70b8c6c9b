package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the terminal loop rate offered by the --fps flag
	DefaultFPS = 60

	// MaxFrameDelta clamps simulation steps for integrator stability
	MaxFrameDelta = 1.0 / 30.0
)

// Input Inbox
const (
	// InboxSize is the fixed capacity of the raw input ring buffer
	InboxSize = 512

	// InboxMask is the bitmask for fast modulo operations (512 - 1)
	InboxMask = 511
)
