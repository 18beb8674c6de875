package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Object places a geometry in the world. Position, rotation and scale are
// combined into the model matrix lazily; the smoothness flag selects flat
// or smooth shading in the color pass.
type Object struct {
	geometry   *Geometry
	smoothness bool

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	matrix            mgl32.Mat4
	matrixNeedsUpdate bool
}

func NewObject(geo *Geometry) *Object {
	return &Object{
		geometry: geo,

		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},

		matrixNeedsUpdate: true,
	}
}

func (o *Object) Geometry() *Geometry {
	return o.geometry
}

func (o *Object) NumFaces() int {
	return o.geometry.NumFaces()
}

func (o *Object) VertexData() []float32 {
	return o.geometry.VertexData()
}

func (o *Object) SetPosition(p mgl32.Vec3) {
	o.position = p
	o.matrixNeedsUpdate = true
}

func (o *Object) Position() mgl32.Vec3 {
	return o.position
}

func (o *Object) SetRotation(r mgl32.Quat) {
	o.rotation = r
	o.matrixNeedsUpdate = true
}

func (o *Object) Rotation() mgl32.Quat {
	return o.rotation
}

func (o *Object) SetScale(s mgl32.Vec3) {
	o.scale = s
	o.matrixNeedsUpdate = true
}

func (o *Object) Scale() mgl32.Vec3 {
	return o.scale
}

func (o *Object) SetSmoothness(smooth bool) {
	o.smoothness = smooth
}

func (o *Object) Smoothness() bool {
	return o.smoothness
}

// ModelMatrix returns translate * rotate * scale, recomputed only after a
// transform setter was called.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	if o.matrixNeedsUpdate {
		translate := mgl32.Translate3D(o.position.X(), o.position.Y(), o.position.Z())
		rotate := o.rotation.Mat4()
		scale := mgl32.Scale3D(o.scale.X(), o.scale.Y(), o.scale.Z())

		o.matrix = translate.Mul4(rotate).Mul4(scale)
		o.matrixNeedsUpdate = false
	}

	return o.matrix
}
