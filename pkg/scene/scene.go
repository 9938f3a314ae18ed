// Package scene describes the static world: meshes, materials and lights.
// It holds no GPU state; the renderer uploads what it finds here.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walkabout/pkg/config"
)

// Material is a diffuse (Lambert) surface
type Material struct {
	Color       mgl32.Vec3
	DoubleSided bool
}

// Object is a piece of geometry placed in the world
type Object struct {
	Name     string
	Geometry Geometry
	Material Material

	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
}

// ModelMatrix returns the object-to-world transform
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
		Mul4(mgl32.HomogRotate3DX(o.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(o.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(o.Rotation[2]))
}

// AmbientLight lights every surface equally
type AmbientLight struct {
	Color     mgl32.Vec3
	Intensity float32
}

// DirectionalLight shines from Position toward the origin
type DirectionalLight struct {
	Color     mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3
}

// ToLight returns the unit vector from a lit surface toward the light
func (l DirectionalLight) ToLight() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// Scene is everything the renderer draws
type Scene struct {
	Background  mgl32.Vec3
	Objects     []Object
	Ambient     AmbientLight
	Directional DirectionalLight
}

// New builds a scene from its configuration: a ground plane laid flat at
// y = 0 followed by one box per obstacle.
func New(cfg config.Scene) *Scene {
	s := &Scene{
		Background: colorVec(cfg.Background),
		Ambient: AmbientLight{
			Color:     colorVec(cfg.Ambient.Color),
			Intensity: float32(cfg.Ambient.Intensity),
		},
		Directional: DirectionalLight{
			Color:     colorVec(cfg.Directional.Color),
			Intensity: float32(cfg.Directional.Intensity),
			Position:  vec3(cfg.Directional.Position),
		},
	}

	size := float32(cfg.Ground.Size)
	s.Objects = append(s.Objects, Object{
		Name:     "ground",
		Geometry: NewPlane(size, size),
		Material: Material{Color: colorVec(cfg.Ground.Color), DoubleSided: true},
		Rotation: mgl32.Vec3{math.Pi / 2, 0, 0},
	})

	for _, o := range cfg.Obstacles {
		s.Objects = append(s.Objects, Object{
			Name:     o.Name,
			Geometry: NewBox(float32(o.Size[0]), float32(o.Size[1]), float32(o.Size[2])),
			Material: Material{Color: colorVec(o.Color)},
			Position: vec3(o.Position),
		})
	}

	return s
}

// Object returns the first object with the given name
func (s *Scene) Object(name string) (*Object, bool) {
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i], true
		}
	}
	return nil, false
}

func colorVec(c config.Color) mgl32.Vec3 {
	r, g, b := c.RGB()
	return mgl32.Vec3{r, g, b}
}

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
