package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 256
)
