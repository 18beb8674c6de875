package engine

import (
	"testing"

	"github.com/ml-lab/generative-query-network/scene"
)

func TestStagingBufferSizes(t *testing.T) {
	tests := []struct {
		Width, Height int
	}{
		{1, 1},
		{2, 2},
		{640, 480},
		{3, 7},
	}

	for _, c := range tests {
		depth, color := newStagingBuffers(c.Width, c.Height)

		if expected := c.Width * c.Height; len(depth) != expected {
			t.Errorf("%vx%v: len(depth) = %v, expected %v", c.Width, c.Height, len(depth), expected)
		}
		if expected := c.Width * c.Height * 3; len(color) != expected {
			t.Errorf("%vx%v: len(color) = %v, expected %v", c.Width, c.Height, len(color), expected)
		}
	}
}

// a renderer whose window is gone must skip rendering without touching
// the caller's buffer and without panicking
func TestRender_ClosedWindowNoOp(t *testing.T) {
	r := &Renderer{width: 2, height: 2}
	camera := scene.NewCamera()

	rgb := make([]uint8, 2*2*3)
	for i := range rgb {
		rgb[i] = 0xaa
	}
	r.Render(camera, rgb)
	for i, v := range rgb {
		if v != 0xaa {
			t.Fatalf("Render wrote to rgb[%v] on a closed renderer", i)
		}
	}

	depth := make([]float32, 2*2)
	for i := range depth {
		depth[i] = -1
	}
	r.RenderDepthMap(camera, depth)
	for i, v := range depth {
		if v != -1 {
			t.Fatalf("RenderDepthMap wrote to depth[%v] on a closed renderer", i)
		}
	}
}

// redundant Unload calls on a dead renderer must not release the shared
// glfw handle again; otherwise two live renderers could tear each other
// down
func TestRenderer_UnloadIdempotent(t *testing.T) {
	glfwShared.Lock()
	saved := glfwShared.refs
	glfwShared.refs = 2
	glfwShared.Unlock()
	defer func() {
		glfwShared.Lock()
		glfwShared.refs = saved
		glfwShared.Unlock()
	}()

	r := &Renderer{width: 2, height: 2}
	r.Unload()
	r.Unload()

	glfwShared.Lock()
	refs := glfwShared.refs
	glfwShared.Unlock()
	if refs != 2 {
		t.Errorf("refs = %v after unloading a windowless renderer twice, expected 2", refs)
	}
}
