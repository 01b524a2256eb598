package protocol

import "time"

const (
	// World map is a single fixed-size image.
	WorldW = 2048
	WorldH = 2048

	// Default drawing surface; the window may be resized at runtime.
	ScreenW = 800
	ScreenH = 600

	// Sprites are drawn in a fixed square box centered on the player position.
	SpriteSize = 64

	// Input cadence
	MoveInterval = 100 * time.Millisecond

	// Jump gesture
	JumpDuration  = 600 * time.Millisecond
	JumpAmplitude = 20.0
)
