package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera()

	if c.View != mgl32.Ident4() {
		t.Errorf("View = %v, expected identity", c.View)
	}
	if c.Projection != mgl32.Ident4() {
		t.Errorf("Projection = %v, expected identity", c.Projection)
	}
}

func TestCamera_SetPerspective(t *testing.T) {
	c := NewPerspectiveCamera(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)

	expected := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	if !c.Projection.ApproxEqual(expected) {
		t.Errorf("Projection = %v, expected %v", c.Projection, expected)
	}
	if c.View != mgl32.Ident4() {
		t.Errorf("View = %v, expected identity", c.View)
	}
}

func TestCamera_LookAt(t *testing.T) {
	tests := []struct {
		Eye, Center, Up mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{4, 3, 5}, mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 1, 0}},
	}

	for _, c := range tests {
		cam := NewCamera()
		cam.LookAt(c.Eye, c.Center, c.Up)

		expected := mgl32.LookAtV(c.Eye, c.Center, c.Up)
		if !cam.View.ApproxEqual(expected) {
			t.Errorf("LookAt(%v, %v, %v) = %v, expected %v", c.Eye, c.Center, c.Up, cam.View, expected)
		}

		// the eye must map to the view-space origin
		eye := cam.View.Mul4x1(c.Eye.Vec4(1))
		if !vec4Near(eye, mgl32.Vec4{0, 0, 0, 1}, 1e-5) {
			t.Errorf("View * eye = %v, expected origin", eye)
		}
	}
}
