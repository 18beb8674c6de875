package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the shared view and projection transforms for a render
// pass. Both fields are plain matrices so synthetic setups (identity
// view/projection) stay trivial.
type Camera struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// NewCamera returns a camera with identity view and projection.
func NewCamera() *Camera {
	return &Camera{
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
	}
}

// NewPerspectiveCamera returns a camera with identity view and a
// perspective projection. fovY is in radians.
func NewPerspectiveCamera(fovY, aspect, near, far float32) *Camera {
	c := NewCamera()
	c.SetPerspective(fovY, aspect, near, far)
	return c
}

func (c *Camera) SetPerspective(fovY, aspect, near, far float32) {
	c.Projection = mgl32.Perspective(fovY, aspect, near, far)
}

func (c *Camera) LookAt(eye, center, up mgl32.Vec3) {
	c.View = mgl32.LookAtV(eye, center, up)
}
