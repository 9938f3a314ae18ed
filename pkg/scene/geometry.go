package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: x, y, z, nx, ny, nz
const FloatsPerVertex = 6

// Geometry is an indexed triangle list with interleaved positions and normals
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i
func (g Geometry) Position(i int) mgl32.Vec3 {
	base := i * FloatsPerVertex
	return mgl32.Vec3{g.Vertices[base], g.Vertices[base+1], g.Vertices[base+2]}
}

// Normal returns the normal of vertex i
func (g Geometry) Normal(i int) mgl32.Vec3 {
	base := i*FloatsPerVertex + 3
	return mgl32.Vec3{g.Vertices[base], g.Vertices[base+1], g.Vertices[base+2]}
}

// Direction represents an axis-aligned face direction
type Direction int

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// Directions lists every face direction of a box
var Directions = [...]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

// Normal returns the outward unit vector for a direction
func (d Direction) Normal() mgl32.Vec3 {
	switch d {
	case PosX:
		return mgl32.Vec3{1, 0, 0}
	case NegX:
		return mgl32.Vec3{-1, 0, 0}
	case PosY:
		return mgl32.Vec3{0, 1, 0}
	case NegY:
		return mgl32.Vec3{0, -1, 0}
	case PosZ:
		return mgl32.Vec3{0, 0, 1}
	case NegZ:
		return mgl32.Vec3{0, 0, -1}
	default:
		return mgl32.Vec3{0, 0, 0}
	}
}

// tangents returns in-face axes u, v with u × v equal to the face normal, so
// quads built from them wind counter-clockwise seen from outside.
func (d Direction) tangents() (u, v mgl32.Vec3) {
	switch d {
	case PosX:
		return mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}
	case NegX:
		return mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}
	case PosY:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}
	case NegY:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}
	case PosZ:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
}

// appendQuad adds four vertices and two triangles for a quad centred on
// center spanning ±u and ±v.
func appendQuad(g *Geometry, center, u, v, normal mgl32.Vec3) {
	base := uint32(g.VertexCount())
	corners := [4]mgl32.Vec3{
		center.Sub(u).Sub(v),
		center.Add(u).Sub(v),
		center.Add(u).Add(v),
		center.Sub(u).Add(v),
	}
	for _, c := range corners {
		g.Vertices = append(g.Vertices, c[0], c[1], c[2], normal[0], normal[1], normal[2])
	}
	g.Indices = append(g.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// NewPlane builds a width x height rectangle in the XY plane facing +Z,
// centred on the origin.
func NewPlane(width, height float32) Geometry {
	var g Geometry
	appendQuad(&g,
		mgl32.Vec3{},
		mgl32.Vec3{width / 2, 0, 0},
		mgl32.Vec3{0, height / 2, 0},
		PosZ.Normal(),
	)
	return g
}

// NewBox builds an axis-aligned box centred on the origin with 4 vertices
// per face so each face gets a flat normal.
func NewBox(width, height, depth float32) Geometry {
	g := Geometry{
		Vertices: make([]float32, 0, 6*4*FloatsPerVertex),
		Indices:  make([]uint32, 0, 6*6),
	}
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}

	for _, d := range Directions {
		n := d.Normal()
		u, v := d.tangents()
		appendQuad(&g,
			mul(n, half),
			mul(u, half),
			mul(v, half),
			n,
		)
	}
	return g
}

// mul multiplies two vectors component-wise
func mul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
