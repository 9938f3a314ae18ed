// Package input tracks keyboard movement flags and mouse-drag look angles.
package input

import "math"

// Key identifies a keyboard key the tracker cares about
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
)

// Look constants
const (
	// DefaultSensitivity is the number of radians per pixel of drag
	DefaultSensitivity = 0.005

	MaxPitch = math.Pi / 2
	MinPitch = -math.Pi / 2
)

// Movement is a snapshot of the four movement flags
type Movement struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Idle reports whether no movement flag is set
func (m Movement) Idle() bool {
	return !m.Forward && !m.Backward && !m.Left && !m.Right
}

// Tracker holds movement key state and the yaw/pitch accumulated from
// mouse drags. It is not safe for concurrent use; events and frames are
// expected to arrive on the same thread.
type Tracker struct {
	movement Movement

	// Euler angles in radians
	yaw   float64
	pitch float64

	sensitivity float64

	// Drag state
	dragging bool
	lastX    float64
	lastY    float64
}

// NewTracker creates a tracker starting at the given orientation
func NewTracker(yaw, pitch, sensitivity float64) *Tracker {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Tracker{
		yaw:         yaw,
		pitch:       clampPitch(pitch),
		sensitivity: sensitivity,
	}
}

// KeyDown sets the flag bound to key. Unbound keys are ignored.
func (t *Tracker) KeyDown(key Key) {
	t.setKey(key, true)
}

// KeyUp clears the flag bound to key. Unbound keys are ignored.
func (t *Tracker) KeyUp(key Key) {
	t.setKey(key, false)
}

func (t *Tracker) setKey(key Key, down bool) {
	switch key {
	case KeyW:
		t.movement.Forward = down
	case KeyS:
		t.movement.Backward = down
	case KeyA:
		t.movement.Left = down
	case KeyD:
		t.movement.Right = down
	}
}

// Movement returns the current movement flags
func (t *Tracker) Movement() Movement {
	return t.movement
}

// DragStart begins a look drag at pointer position (x, y)
func (t *Tracker) DragStart(x, y float64) {
	t.dragging = true
	t.lastX = x
	t.lastY = y
}

// DragEnd stops the current look drag
func (t *Tracker) DragEnd() {
	t.dragging = false
}

// Dragging reports whether a look drag is in progress
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// MouseMove rotates the view by the pointer delta since the last recorded
// position. Moves outside a drag are ignored.
func (t *Tracker) MouseMove(x, y float64) {
	if !t.dragging {
		return
	}

	dx := x - t.lastX
	dy := y - t.lastY
	t.lastX = x
	t.lastY = y

	t.yaw -= dx * t.sensitivity
	t.pitch = clampPitch(t.pitch - dy*t.sensitivity)
}

// Orientation returns the accumulated yaw and pitch in radians
func (t *Tracker) Orientation() (yaw, pitch float64) {
	return t.yaw, t.pitch
}

// SetOrientation overrides the accumulated angles. Pitch is clamped.
func (t *Tracker) SetOrientation(yaw, pitch float64) {
	t.yaw = yaw
	t.pitch = clampPitch(pitch)
}

// Reset clears all movement flags and ends any drag
func (t *Tracker) Reset() {
	t.movement = Movement{}
	t.dragging = false
}

func clampPitch(pitch float64) float64 {
	return math.Max(MinPitch, math.Min(MaxPitch, pitch))
}
