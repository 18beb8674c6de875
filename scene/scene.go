/*
	cpu-side scene description

	a Scene is an ordered list of objects. the renderer borrows the scene,
	it never owns it: the scene must outlive every render call that draws
	it, and geometry changes require re-binding the scene to the renderer.
*/

package scene

// Scene holds the objects to draw, in insertion order. Draw order is also
// the tie-break for overlapping geometry at equal depth.
type Scene struct {
	objects []*Object
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(o *Object) {
	s.objects = append(s.objects, o)
}

func (s *Scene) Objects() []*Object {
	return s.objects
}

func (s *Scene) Len() int {
	return len(s.objects)
}
