package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked shader program with its uniform locations
// resolved up front. Attribute locations are bound by slice index before
// linking, matching the vertex layout of VertexArrayObject.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

func NewProgram(vertex, fragment string, attributes, uniforms []string) (*Program, error) {
	vshader, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader error: %w", err)
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader error: %w", err)
	}
	defer gl.DeleteShader(fshader)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vshader)
	gl.AttachShader(handle, fshader)

	for i, a := range attributes {
		name := gl.Str(a + "\x00")
		gl.BindAttribLocation(handle, uint32(i), name)
	}

	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(handle)
		return nil, fmt.Errorf("linker error: %v", programInfoLog(handle))
	}

	prg := &Program{
		handle:   handle,
		uniforms: make(map[string]int32),
	}
	for _, u := range uniforms {
		prg.uniforms[u] = gl.GetUniformLocation(handle, gl.Str(u+"\x00"))
	}

	return prg, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Dispose() {
	gl.DeleteProgram(p.handle)
}

// uniform names absent from the program resolve to -1, which gl silently
// ignores on upload
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (p *Program) UniformMatrix(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) UniformFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(shader)

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("%v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))

	return strings.TrimRight(log, "\x00")
}
