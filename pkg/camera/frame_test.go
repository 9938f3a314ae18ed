package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/go-walkabout/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	poses []mgl64.Vec3
}

func (r *recordingRenderer) Render(cam *Camera) {
	r.poses = append(r.poses, cam.Position())
}

func newTestUpdater(start mgl64.Vec3) (*FrameUpdater, *Camera, *input.Tracker, *recordingRenderer) {
	cam := NewCamera(start, DefaultFOV, DefaultNear, DefaultFar)
	tracker := input.NewTracker(0, 0, input.DefaultSensitivity)
	rec := &recordingRenderer{}
	return NewFrameUpdater(cam, tracker, rec, DefaultMoveSpeed), cam, tracker, rec
}

func TestFrameRendersEveryFrame(t *testing.T) {
	u, _, _, rec := newTestUpdater(mgl64.Vec3{0, 1.7, 5})
	for i := 0; i < 5; i++ {
		u.Frame()
	}
	assert.Len(t, rec.poses, 5)
	assert.Equal(t, uint64(5), u.Frames())
}

func TestNoKeysNoMovement(t *testing.T) {
	start := mgl64.Vec3{0, 1.7, 5}
	u, cam, tracker, _ := newTestUpdater(start)

	tracker.DragStart(0, 0)
	for i := 0; i < 100; i++ {
		tracker.MouseMove(float64(i*3), float64(-i))
		u.Frame()
	}
	assert.Equal(t, start, cam.Position())
}

func TestForwardMovesAlongView(t *testing.T) {
	start := mgl64.Vec3{0, 1.7, 5}
	u, cam, tracker, _ := newTestUpdater(start)
	tracker.SetOrientation(0.4, -0.2)
	tracker.KeyDown(input.KeyW)

	const n = 37
	for i := 0; i < n; i++ {
		u.Frame()
	}

	want := start.Add(ForwardVector(0.4, -0.2).Mul(n * DefaultMoveSpeed))
	got := cam.Position()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
	assert.InDelta(t, n*DefaultMoveSpeed, got.Sub(start).Len(), 1e-9)
}

func TestForwardFollowsOrientationPerFrame(t *testing.T) {
	start := mgl64.Vec3{}
	u, cam, tracker, _ := newTestUpdater(start)
	tracker.KeyDown(input.KeyW)
	tracker.DragStart(0, 0)

	want := start
	x := 0.0
	for i := 0; i < 20; i++ {
		x += 15
		tracker.MouseMove(x, 0)
		yaw, pitch := tracker.Orientation()
		want = want.Add(ForwardVector(yaw, pitch).Mul(DefaultMoveSpeed))
		u.Frame()
	}

	got := cam.Position()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestBackwardAndStrafe(t *testing.T) {
	tests := []struct {
		key  input.Key
		want mgl64.Vec3
	}{
		{input.KeyW, mgl64.Vec3{0, 0, -DefaultMoveSpeed}},
		{input.KeyS, mgl64.Vec3{0, 0, DefaultMoveSpeed}},
		{input.KeyA, mgl64.Vec3{-DefaultMoveSpeed, 0, 0}},
		{input.KeyD, mgl64.Vec3{DefaultMoveSpeed, 0, 0}},
	}

	for _, tt := range tests {
		u, cam, tracker, _ := newTestUpdater(mgl64.Vec3{})
		tracker.KeyDown(tt.key)
		u.Frame()

		got := cam.Position()
		for i := range tt.want {
			assert.InDelta(t, tt.want[i], got[i], 1e-12, "key %d", tt.key)
		}
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	u, cam, tracker, _ := newTestUpdater(mgl64.Vec3{1, 2, 3})
	tracker.KeyDown(input.KeyW)
	tracker.KeyDown(input.KeyS)
	tracker.KeyDown(input.KeyA)
	tracker.KeyDown(input.KeyD)
	u.Frame()

	got := cam.Position()
	assert.InDelta(t, 1, got.X(), 1e-12)
	assert.InDelta(t, 2, got.Y(), 1e-12)
	assert.InDelta(t, 3, got.Z(), 1e-12)
}

func TestDiagonalIsUnnormalized(t *testing.T) {
	u, cam, tracker, _ := newTestUpdater(mgl64.Vec3{})
	tracker.KeyDown(input.KeyW)
	tracker.KeyDown(input.KeyA)
	u.Frame()

	assert.InDelta(t, math.Sqrt2*DefaultMoveSpeed, cam.Position().Len(), 1e-12)
}

func TestFrameAppliesOrientation(t *testing.T) {
	u, cam, tracker, _ := newTestUpdater(mgl64.Vec3{})
	tracker.DragStart(0, 0)
	tracker.MouseMove(-40, 20)
	u.Frame()

	yaw, pitch := cam.Orientation()
	tyaw, tpitch := tracker.Orientation()
	assert.Equal(t, tyaw, yaw)
	assert.Equal(t, tpitch, pitch)
}

func TestNewFrameUpdaterDefaults(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{}, DefaultFOV, DefaultNear, DefaultFar)
	tracker := input.NewTracker(0, 0, input.DefaultSensitivity)

	var calls int
	u := NewFrameUpdater(cam, tracker, RendererFunc(func(*Camera) { calls++ }), 0)
	require.Equal(t, DefaultMoveSpeed, u.Speed())

	u.Frame()
	assert.Equal(t, 1, calls)
}
