package engine

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ml-lab/generative-query-network/scene"
)

// Renderer draws a borrowed scene into a hidden window and reads the
// result back into caller buffers. Width and height are fixed for the
// renderer's lifetime; the staging buffers are sized once at construction
// and never resized.
//
// Errors are surfaced during construction only. Per-frame gl errors are
// left unchecked, as the pipeline issues no call whose failure this layer
// could recover from.
type Renderer struct {
	width  int
	height int
	window *glfw.Window

	// staging buffers for framebuffer readback
	depthBuffer []float32
	colorBuffer []uint8

	renderBuffer uint32
	vao          *VertexArrayObject
	depthProgram *Program
	mainProgram  *Program

	// borrowed; must outlive every render call that draws it
	scene *scene.Scene
}

// one float per pixel for the depth attachment, three bytes per pixel
// for the color attachment
func newStagingBuffers(width, height int) ([]float32, []uint8) {
	return make([]float32, width*height), make([]uint8, width*height*3)
}

// NewRenderer creates a renderer with no scene bound.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}
	r.depthBuffer, r.colorBuffer = newStagingBuffers(width, height)

	if err := r.initGLFW(); err != nil {
		return nil, err
	}

	if err := r.initGL(); err != nil {
		r.Unload()
		return nil, err
	}

	return r, nil
}

// NewSceneRenderer creates a renderer and binds scene immediately.
func NewSceneRenderer(s *scene.Scene, width, height int) (*Renderer, error) {
	r, err := NewRenderer(width, height)
	if err != nil {
		return nil, err
	}

	r.SetScene(s)
	return r, nil
}

func (r *Renderer) initGLFW() error {
	if err := acquireGLFW(); err != nil {
		return err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(r.width, r.height, "Renderer", nil, nil)
	if err != nil {
		releaseGLFW()
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	r.window = window
	return nil
}

func (r *Renderer) initGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load gl functions: %w", err)
	}

	r.vao = NewVertexArrayObject()

	var err error
	if r.depthProgram, err = NewPipelineProgram(PipelineDepth); err != nil {
		return err
	}
	if r.mainProgram, err = NewPipelineProgram(PipelineMain); err != nil {
		return err
	}

	gl.GenRenderbuffers(1, &r.renderBuffer)
	return nil
}

// Unload destroys the window and releases the shared glfw handle. The
// renderer must not be used afterwards. Redundant calls are no-ops: the
// handle is released exactly once per renderer, so unloading a renderer
// that already tore itself down cannot steal another renderer's ref.
func (r *Renderer) Unload() {
	if r.window == nil {
		return
	}

	r.window.Destroy()
	r.window = nil
	releaseGLFW()
}

func (r *Renderer) Width() int {
	return r.width
}

func (r *Renderer) Height() int {
	return r.height
}

// SetScene stores a reference to the scene and uploads its geometry. The
// upload is a full rebuild; call SetScene again whenever the scene's
// geometry changes.
func (r *Renderer) SetScene(s *scene.Scene) {
	r.window.MakeContextCurrent()
	r.scene = s
	r.vao.Build(s)
}

// closed reports whether the window received a close signal, tearing the
// renderer down as a side effect when it has.
func (r *Renderer) closed() bool {
	if r.window == nil {
		return true
	}
	if !r.window.ShouldClose() {
		return false
	}

	r.Unload()
	return true
}

// draw pass shared by both render entry points: one draw call per object,
// in scene list order, no batching, no culling beyond the depth test.
func (r *Renderer) renderObjects(prg *Program, camera *scene.Camera) {
	r.window.MakeContextCurrent()
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.scene == nil {
		return
	}

	for i, o := range r.scene.Objects() {
		r.vao.BindObject(i)

		prg.UniformMatrix("model", o.ModelMatrix())
		prg.UniformMatrix("view", camera.View)
		prg.UniformMatrix("projection", camera.Projection)

		var smoothness float32
		if o.Smoothness() {
			smoothness = 1
		}
		prg.UniformFloat("smoothness", smoothness)

		gl.DrawArrays(gl.TRIANGLES, 0, int32(3*o.NumFaces()))
	}
}

func (r *Renderer) beginPass(prg *Program, attachment uint32) {
	r.window.MakeContextCurrent()
	prg.Use()

	gl.Enable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindRenderbuffer(gl.RENDERBUFFER, r.renderBuffer)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, r.renderBuffer)
}

// leave global state clean for whoever touches the context next
func (r *Renderer) endPass() {
	gl.UseProgram(0)
	gl.BindVertexArray(0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// RenderDepthMap draws the bound scene with the depth pipeline and copies
// the depth attachment into depth, which must hold exactly Width*Height
// values, row-major with row 0 at the top. A closed window is a silent
// no-op that unloads the renderer. Panics if depth has the wrong length.
func (r *Renderer) RenderDepthMap(camera *scene.Camera, depth []float32) {
	if r.closed() {
		return
	}
	if len(depth) != r.width*r.height {
		panic(fmt.Sprintf("depth buffer holds %d values, want %d", len(depth), r.width*r.height))
	}

	r.beginPass(r.depthProgram, gl.DEPTH_ATTACHMENT)
	r.renderObjects(r.depthProgram, camera)

	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(r.depthBuffer))
	flipDepthRows(depth, r.depthBuffer, r.width, r.height)

	r.endPass()
}

// Render draws the bound scene with the main pipeline and copies the color
// attachment into rgb, which must hold exactly Width*Height*3 bytes,
// row-major with row 0 at the top and channels in r, g, b order. A closed
// window is a silent no-op that unloads the renderer. Panics if rgb has
// the wrong length.
func (r *Renderer) Render(camera *scene.Camera, rgb []uint8) {
	if r.closed() {
		return
	}
	if len(rgb) != r.width*r.height*3 {
		panic(fmt.Sprintf("rgb buffer holds %d bytes, want %d", len(rgb), r.width*r.height*3))
	}

	r.beginPass(r.mainProgram, gl.COLOR_ATTACHMENT0)
	// tight rows, no 4-byte padding on readback
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)

	r.renderObjects(r.mainProgram, camera)

	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(r.colorBuffer))
	flipColorRows(rgb, r.colorBuffer, r.width, r.height)

	r.endPass()
}

// RenderSceneDepthMap binds scene, then renders its depth map.
func (r *Renderer) RenderSceneDepthMap(s *scene.Scene, camera *scene.Camera, depth []float32) {
	r.SetScene(s)
	r.RenderDepthMap(camera, depth)
}

// RenderScene binds scene, then renders its color image.
func (r *Renderer) RenderScene(s *scene.Scene, camera *scene.Camera, rgb []uint8) {
	r.SetScene(s)
	r.Render(camera, rgb)
}
