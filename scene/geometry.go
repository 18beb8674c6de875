package scene

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is a triangle soup: three positions and three normals per face,
// counter-clockwise winding facing outward. Vertices are not shared, so
// flat-shaded primitives and smooth-shaded primitives use the same layout.
type Geometry struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
}

func NewGeometry() *Geometry {
	return &Geometry{}
}

func (g *Geometry) NumFaces() int {
	return len(g.positions) / 3
}

// AddFace appends one triangle with a flat normal computed from the
// winding order.
func (g *Geometry) AddFace(a, b, c mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	g.addFace(a, b, c, n, n, n)
}

func (g *Geometry) addFace(a, b, c, na, nb, nc mgl32.Vec3) {
	g.positions = append(g.positions, a, b, c)
	g.normals = append(g.normals, na, nb, nc)
}

// addQuad appends the quad a-b-c-d as two triangles. Corners are given
// counter-clockwise as seen from outside.
func (g *Geometry) addQuad(a, b, c, d mgl32.Vec3) {
	g.AddFace(a, b, c)
	g.AddFace(a, c, d)
}

// VertexData returns the interleaved upload layout: position xyz followed
// by normal xyz, three vertices per face.
func (g *Geometry) VertexData() []float32 {
	data := make([]float32, 0, len(g.positions)*6)
	for i, p := range g.positions {
		n := g.normals[i]
		data = append(data, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
	}
	return data
}

// NewPlaneGeometry builds a width*depth rectangle on the xz plane,
// centered at the origin, facing +y.
func NewPlaneGeometry(width, depth float32) *Geometry {
	geo := NewGeometry()

	hw, hd := width/2, depth/2
	geo.addQuad(
		mgl32.Vec3{-hw, 0, hd},
		mgl32.Vec3{hw, 0, hd},
		mgl32.Vec3{hw, 0, -hd},
		mgl32.Vec3{-hw, 0, -hd},
	)

	return geo
}

// NewBoxGeometry builds an axis-aligned box centered at the origin.
func NewBoxGeometry(width, height, depth float32) *Geometry {
	geo := NewGeometry()

	hw, hh, hd := width/2, height/2, depth/2

	// +z / -z
	geo.addQuad(
		mgl32.Vec3{-hw, -hh, hd}, mgl32.Vec3{hw, -hh, hd},
		mgl32.Vec3{hw, hh, hd}, mgl32.Vec3{-hw, hh, hd})
	geo.addQuad(
		mgl32.Vec3{hw, -hh, -hd}, mgl32.Vec3{-hw, -hh, -hd},
		mgl32.Vec3{-hw, hh, -hd}, mgl32.Vec3{hw, hh, -hd})

	// +x / -x
	geo.addQuad(
		mgl32.Vec3{hw, -hh, hd}, mgl32.Vec3{hw, -hh, -hd},
		mgl32.Vec3{hw, hh, -hd}, mgl32.Vec3{hw, hh, hd})
	geo.addQuad(
		mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{-hw, -hh, hd},
		mgl32.Vec3{-hw, hh, hd}, mgl32.Vec3{-hw, hh, -hd})

	// +y / -y
	geo.addQuad(
		mgl32.Vec3{-hw, hh, hd}, mgl32.Vec3{hw, hh, hd},
		mgl32.Vec3{hw, hh, -hd}, mgl32.Vec3{-hw, hh, -hd})
	geo.addQuad(
		mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{hw, -hh, -hd},
		mgl32.Vec3{hw, -hh, hd}, mgl32.Vec3{-hw, -hh, hd})

	return geo
}

// NewSphereGeometry builds a uv sphere with smooth vertex normals.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	geo := NewGeometry()

	vertex := func(x, y int) mgl32.Vec3 {
		phi := 2 * m.Pi * float64(x) / float64(widthSegments)
		theta := m.Pi * float64(y) / float64(heightSegments)

		return mgl32.Vec3{
			radius * float32(m.Sin(theta)*m.Cos(phi)),
			radius * float32(m.Cos(theta)),
			radius * float32(m.Sin(theta)*m.Sin(phi)),
		}
	}
	normal := func(p mgl32.Vec3) mgl32.Vec3 {
		return p.Mul(1 / radius)
	}

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			v00 := vertex(x, y)
			v10 := vertex(x+1, y)
			v11 := vertex(x+1, y+1)
			v01 := vertex(x, y+1)

			// quad edges collapse at the poles
			if y != 0 {
				geo.addFace(v00, v10, v11, normal(v00), normal(v10), normal(v11))
			}
			if y != heightSegments-1 {
				geo.addFace(v00, v11, v01, normal(v00), normal(v11), normal(v01))
			}
		}
	}

	return geo
}

// NewCylinderGeometry builds a capped cylinder around the y axis. The side
// carries smooth normals, the caps are flat.
func NewCylinderGeometry(radius, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}

	geo := NewGeometry()

	hh := height / 2
	rim := func(x int, y float32) (mgl32.Vec3, mgl32.Vec3) {
		phi := 2 * m.Pi * float64(x) / float64(segments)
		n := mgl32.Vec3{float32(m.Cos(phi)), 0, float32(m.Sin(phi))}
		return mgl32.Vec3{radius * n.X(), y, radius * n.Z()}, n
	}

	top := mgl32.Vec3{0, hh, 0}
	bottom := mgl32.Vec3{0, -hh, 0}
	for x := 0; x < segments; x++ {
		t0, n0 := rim(x, hh)
		t1, n1 := rim(x+1, hh)
		b0, _ := rim(x, -hh)
		b1, _ := rim(x+1, -hh)

		// side
		geo.addFace(t0, t1, b1, n0, n1, n1)
		geo.addFace(t0, b1, b0, n0, n1, n0)

		// caps
		geo.AddFace(top, t1, t0)
		geo.AddFace(bottom, b0, b1)
	}

	return geo
}

// NewConeGeometry builds a capped cone around the y axis, apex up.
func NewConeGeometry(radius, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}

	geo := NewGeometry()

	hh := height / 2
	rim := func(x int) (mgl32.Vec3, mgl32.Vec3) {
		phi := 2 * m.Pi * float64(x) / float64(segments)
		c, s := float32(m.Cos(phi)), float32(m.Sin(phi))
		n := mgl32.Vec3{height * c, radius, height * s}
		return mgl32.Vec3{radius * c, -hh, radius * s}, n.Normalize()
	}

	apex := mgl32.Vec3{0, hh, 0}
	center := mgl32.Vec3{0, -hh, 0}
	for x := 0; x < segments; x++ {
		b0, n0 := rim(x)
		b1, n1 := rim(x + 1)

		geo.addFace(apex, b1, b0, n0.Add(n1).Normalize(), n1, n0)
		geo.AddFace(center, b0, b1)
	}

	return geo
}
