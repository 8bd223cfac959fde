package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	empty = "◯"
	full  = "◉"

	// Spring physics parameters
	blinkAngularFrequency = 8.0
	blinkDampingRatio     = 0.7

	// Pulse pattern: hold empty, beat full, recover
	blinkIdleTicks = 3
	blinkBeatTicks = 2

	blinkFrameThreshold = 0.3

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

type blinkPhase int

const (
	idlePhase blinkPhase = iota
	beatPhase
)

// Blink renders a pulsing activity indicator driven by spring physics
type Blink struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
	phase     blinkPhase
}

// NewBlink creates a new blink animator
func NewBlink() *Blink {
	return &Blink{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), blinkAngularFrequency, blinkDampingRatio),
	}
}

// Start begins the pulsing animation
func (b *Blink) Start() {
	b.active = true
}

// Stop ends the animation and resets to the empty frame
func (b *Blink) Stop() {
	b.active = false
	b.target = blinkPositionEmpty
	b.position = blinkPositionEmpty
	b.velocity = blinkPositionEmpty
	b.tickCount = 0
	b.phase = idlePhase
}

// Update advances the animation, called on each UI tick
func (b *Blink) Update() {
	if !b.active {
		return
	}

	b.tickCount++

	switch b.phase {
	case idlePhase:
		b.target = blinkPositionEmpty
		if b.tickCount >= blinkIdleTicks {
			b.phase = beatPhase
			b.target = blinkPositionFull
			b.tickCount = 0
		}

	case beatPhase:
		b.target = blinkPositionFull
		if b.tickCount >= blinkBeatTicks {
			b.phase = idlePhase
			b.target = blinkPositionEmpty
			b.tickCount = 0
		}
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)
}

// Frame returns the current frame based on the spring position
func (b *Blink) Frame() string {
	if !b.active || b.position < blinkFrameThreshold {
		return empty
	}

	return full
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the animation is currently running
func (b *Blink) IsActive() bool {
	return b.active
}
