package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Blink_InactiveShowsEmptyFrame(t *testing.T) {
	b := NewBlink()

	assert.False(t, b.IsActive())
	assert.Equal(t, empty, b.Frame())

	b.Update()
	assert.Equal(t, empty, b.Frame())
}

func Test_Blink_PulsesWhenActive(t *testing.T) {
	b := NewBlink()
	b.Start()

	assert.True(t, b.IsActive())

	sawFull := false

	for i := 0; i < 50; i++ {
		b.Update()

		if b.Frame() == full {
			sawFull = true
		}
	}

	assert.True(t, sawFull)
}

func Test_Blink_StopResets(t *testing.T) {
	b := NewBlink()
	b.Start()

	for i := 0; i < 10; i++ {
		b.Update()
	}

	b.Stop()

	assert.False(t, b.IsActive())
	assert.Equal(t, empty, b.Frame())
}
