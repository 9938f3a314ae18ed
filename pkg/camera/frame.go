package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/go-walkabout/pkg/input"
)

// DefaultMoveSpeed is the distance travelled per frame along an axis
const DefaultMoveSpeed = 0.1

// Renderer draws the scene as seen from a camera
type Renderer interface {
	Render(cam *Camera)
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(cam *Camera)

// Render calls f(cam)
func (f RendererFunc) Render(cam *Camera) { f(cam) }

// FrameUpdater advances the camera once per animation frame from the
// tracker's key state and look angles, then renders.
type FrameUpdater struct {
	camera   *Camera
	tracker  *input.Tracker
	renderer Renderer
	speed    float64
	frames   uint64
}

// NewFrameUpdater creates an updater moving cam at speed units per frame.
// A non-positive speed falls back to DefaultMoveSpeed.
func NewFrameUpdater(cam *Camera, tracker *input.Tracker, renderer Renderer, speed float64) *FrameUpdater {
	if speed <= 0 {
		speed = DefaultMoveSpeed
	}
	return &FrameUpdater{
		camera:   cam,
		tracker:  tracker,
		renderer: renderer,
		speed:    speed,
	}
}

// Frame runs one update: derive forward and strafe from the current
// orientation, apply movement, pose the camera and render.
func (f *FrameUpdater) Frame() {
	yaw, pitch := f.tracker.Orientation()

	forward := ForwardVector(yaw, pitch)
	strafe := StrafeVector(yaw, pitch)
	position := Move(f.camera.Position(), forward, strafe, f.tracker.Movement(), f.speed)

	f.camera.SetPose(position, yaw, pitch)
	if f.renderer != nil {
		f.renderer.Render(f.camera)
	}
	f.frames++
}

// Frames returns the number of frames run so far
func (f *FrameUpdater) Frames() uint64 {
	return f.frames
}

// Speed returns the per-frame movement distance
func (f *FrameUpdater) Speed() float64 {
	return f.speed
}

// Move applies one frame of movement. Simultaneous flags add up, so
// diagonal movement is faster than movement along a single axis.
func Move(position, forward, strafe mgl64.Vec3, m input.Movement, speed float64) mgl64.Vec3 {
	if m.Forward {
		position = position.Add(forward.Mul(speed))
	}
	if m.Backward {
		position = position.Sub(forward.Mul(speed))
	}
	if m.Left {
		position = position.Add(strafe.Mul(speed))
	}
	if m.Right {
		position = position.Sub(strafe.Mul(speed))
	}
	return position
}
