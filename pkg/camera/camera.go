// Package camera implements a first-person perspective camera driven by
// Euler yaw/pitch angles, and the per-frame update that moves it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/go-walkabout/pkg/input"
)

// Camera constants
const (
	DefaultFOV  = 75.0 // Vertical field of view in degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0

	DefaultWidth  = 800
	DefaultHeight = 600
)

// WorldUp is the world's up axis (Y-up coordinate system)
var WorldUp = mgl64.Vec3{0, 1, 0}

// degenerateEpsilon bounds the strafe cross product length below which
// forward is treated as parallel to WorldUp.
const degenerateEpsilon = 1e-9

// Camera is a perspective camera with a position and yaw/pitch orientation.
// At yaw = pitch = 0 it looks down -Z.
type Camera struct {
	position mgl64.Vec3

	// Euler angles in radians
	yaw   float64
	pitch float64

	// Projection
	fov    float64
	near   float64
	far    float64
	width  int
	height int
}

// NewCamera creates a camera at position with the given vertical field of
// view in degrees and clip planes. Non-positive values fall back to defaults.
func NewCamera(position mgl64.Vec3, fov, near, far float64) *Camera {
	if fov <= 0 {
		fov = DefaultFOV
	}
	if near <= 0 {
		near = DefaultNear
	}
	if far <= near {
		far = DefaultFar
	}
	return &Camera{
		position: position,
		fov:      fov,
		near:     near,
		far:      far,
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

// Position returns the current camera position
func (c *Camera) Position() mgl64.Vec3 {
	return c.position
}

// Orientation returns the current yaw and pitch in radians
func (c *Camera) Orientation() (yaw, pitch float64) {
	return c.yaw, c.pitch
}

// SetPose sets position and orientation in one step. Pitch is clamped to
// [-π/2, π/2].
func (c *Camera) SetPose(position mgl64.Vec3, yaw, pitch float64) {
	c.position = position
	c.yaw = yaw
	c.pitch = math.Max(input.MinPitch, math.Min(input.MaxPitch, pitch))
}

// Forward returns the unit view direction for the current orientation
func (c *Camera) Forward() mgl64.Vec3 {
	return ForwardVector(c.yaw, c.pitch)
}

// Strafe returns the unit vector pointing to the camera's left
func (c *Camera) Strafe() mgl64.Vec3 {
	return StrafeVector(c.yaw, c.pitch)
}

// ForwardVector converts yaw/pitch to a unit direction: yaw about world Y,
// then pitch about the local X axis, applied to -Z.
func ForwardVector(yaw, pitch float64) mgl64.Vec3 {
	rot := mgl64.Rotate3DY(yaw).Mul3(mgl64.Rotate3DX(pitch))
	return rot.Mul3x1(mgl64.Vec3{0, 0, -1})
}

// StrafeVector returns normalize(cross(WorldUp, forward)). When forward is
// parallel to WorldUp the result is derived from yaw alone.
func StrafeVector(yaw, pitch float64) mgl64.Vec3 {
	strafe := WorldUp.Cross(ForwardVector(yaw, pitch))
	if strafe.Len() < degenerateEpsilon {
		return mgl64.Vec3{-math.Cos(yaw), 0, math.Sin(yaw)}
	}
	return strafe.Normalize()
}

// SetViewport updates the aspect ratio for a framebuffer of the given size.
// A zero-sized framebuffer leaves the camera unchanged.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
}

// Aspect returns the viewport aspect ratio
func (c *Camera) Aspect() float64 {
	return float64(c.width) / float64(c.height)
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float64 {
	return c.fov
}

// ViewMatrix returns the world-to-camera transform
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	view := mgl64.HomogRotate3DX(-c.pitch).
		Mul4(mgl64.HomogRotate3DY(-c.yaw)).
		Mul4(mgl64.Translate3D(-c.position.X(), -c.position.Y(), -c.position.Z()))
	return toMat4f(view)
}

// ProjectionMatrix returns the perspective projection for the current viewport
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(
		mgl32.DegToRad(float32(c.fov)),
		float32(c.Aspect()),
		float32(c.near),
		float32(c.far),
	)
}

func toMat4f(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
