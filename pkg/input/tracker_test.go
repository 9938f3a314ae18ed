package input

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPressRelease(t *testing.T) {
	tests := []struct {
		key  Key
		flag func(Movement) bool
	}{
		{KeyW, func(m Movement) bool { return m.Forward }},
		{KeyS, func(m Movement) bool { return m.Backward }},
		{KeyA, func(m Movement) bool { return m.Left }},
		{KeyD, func(m Movement) bool { return m.Right }},
	}

	for _, tt := range tests {
		tr := NewTracker(0, 0, DefaultSensitivity)

		tr.KeyDown(tt.key)
		assert.True(t, tt.flag(tr.Movement()), "key %d down", tt.key)
		assert.False(t, tr.Movement().Idle())

		tr.KeyUp(tt.key)
		assert.False(t, tt.flag(tr.Movement()), "key %d up", tt.key)
		assert.True(t, tr.Movement().Idle())
	}
}

func TestKeyDownIsIdempotent(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.KeyDown(KeyW)
	tr.KeyDown(KeyW)
	tr.KeyDown(KeyW)
	tr.KeyUp(KeyW)
	assert.True(t, tr.Movement().Idle())
}

func TestUnknownKeyIgnored(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.KeyDown(KeyUnknown)
	tr.KeyDown(Key(42))
	assert.Equal(t, Movement{}, tr.Movement())
}

func TestSimultaneousKeys(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.KeyDown(KeyW)
	tr.KeyDown(KeyA)
	assert.Equal(t, Movement{Forward: true, Left: true}, tr.Movement())

	tr.KeyUp(KeyW)
	assert.Equal(t, Movement{Left: true}, tr.Movement())
}

func TestDragRotates(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.DragStart(100, 100)
	assert.True(t, tr.Dragging())

	tr.MouseMove(110, 90)
	yaw, pitch := tr.Orientation()
	assert.InDelta(t, -10*DefaultSensitivity, yaw, 1e-12)
	assert.InDelta(t, 10*DefaultSensitivity, pitch, 1e-12)

	// Deltas are taken from the last recorded position, not the drag origin.
	tr.MouseMove(110, 90)
	yaw2, pitch2 := tr.Orientation()
	assert.Equal(t, yaw, yaw2)
	assert.Equal(t, pitch, pitch2)

	tr.DragEnd()
	assert.False(t, tr.Dragging())
}

func TestDragStartRecordsPointer(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.DragStart(500, 300)
	tr.MouseMove(500, 300)

	yaw, pitch := tr.Orientation()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
}

func TestMoveWithoutDragIgnored(t *testing.T) {
	tr := NewTracker(0.3, -0.2, DefaultSensitivity)
	tr.MouseMove(10, 10)
	tr.MouseMove(400, -250)

	yaw, pitch := tr.Orientation()
	assert.Equal(t, 0.3, yaw)
	assert.Equal(t, -0.2, pitch)

	tr.DragStart(0, 0)
	tr.DragEnd()
	tr.MouseMove(1000, 1000)
	yaw, pitch = tr.Orientation()
	assert.Equal(t, 0.3, yaw)
	assert.Equal(t, -0.2, pitch)
}

func TestPitchClamped(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.DragStart(0, 0)

	tr.MouseMove(0, -100000)
	_, pitch := tr.Orientation()
	assert.Equal(t, MaxPitch, pitch)

	tr.MouseMove(0, 100000)
	_, pitch = tr.Orientation()
	assert.Equal(t, MinPitch, pitch)
}

func TestPitchStaysInRangeUnderRandomDrags(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := NewTracker(0, 0, DefaultSensitivity)

	for i := 0; i < 10000; i++ {
		switch rng.Intn(10) {
		case 0:
			tr.DragStart(rng.Float64()*2000, rng.Float64()*2000)
		case 1:
			tr.DragEnd()
		default:
			tr.MouseMove(rng.Float64()*4000-1000, rng.Float64()*4000-1000)
		}

		_, pitch := tr.Orientation()
		assert.GreaterOrEqual(t, pitch, -math.Pi/2)
		assert.LessOrEqual(t, pitch, math.Pi/2)
	}
}

func TestYawUnbounded(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.DragStart(0, 0)
	tr.MouseMove(-10000, 0)

	yaw, _ := tr.Orientation()
	assert.InDelta(t, 50.0, yaw, 1e-9)
}

func TestNewTrackerDefaults(t *testing.T) {
	tr := NewTracker(0, 5, 0)
	_, pitch := tr.Orientation()
	assert.Equal(t, MaxPitch, pitch)

	tr.DragStart(0, 0)
	tr.MouseMove(1, 0)
	yaw, _ := tr.Orientation()
	assert.InDelta(t, -DefaultSensitivity, yaw, 1e-12)
}

func TestReset(t *testing.T) {
	tr := NewTracker(0, 0, DefaultSensitivity)
	tr.KeyDown(KeyW)
	tr.KeyDown(KeyD)
	tr.DragStart(1, 1)

	tr.Reset()
	assert.True(t, tr.Movement().Idle())
	assert.False(t, tr.Dragging())
}
