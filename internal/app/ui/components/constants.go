package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for the viewer
	UITickInterval = 100 * time.Millisecond

	// Derived FPS for animations (ticks per second)
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Layout constants
const (
	HeaderHeight = 2
	SearchHeight = 2
	FooterHeight = 2

	DefaultViewportWidth = 80
	LevelBadgeWidth      = 8
	ModuleMaxWidth       = 20
)
