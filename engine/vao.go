package engine

import (
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/ml-lab/generative-query-network/scene"
)

// vertex layout shared with the pipeline programs: position xyz, normal
// xyz, tightly interleaved
const vertexStride = 6 * 4

// VertexArrayObject uploads scene geometry to the gpu, one vertex array
// and one buffer per object, bindable by object index.
type VertexArrayObject struct {
	vaos []uint32
	vbos []uint32
}

func NewVertexArrayObject() *VertexArrayObject {
	return &VertexArrayObject{}
}

// Build replaces any previously uploaded buffers with the scene's current
// geometry. Every call is a full rebuild; there is no dirty tracking.
func (v *VertexArrayObject) Build(s *scene.Scene) {
	v.Delete()

	n := s.Len()
	if n == 0 {
		return
	}

	v.vaos = make([]uint32, n)
	v.vbos = make([]uint32, n)
	gl.GenVertexArrays(int32(n), &v.vaos[0])
	gl.GenBuffers(int32(n), &v.vbos[0])

	for i, o := range s.Objects() {
		data := o.VertexData()

		gl.BindVertexArray(v.vaos[i])
		gl.BindBuffer(gl.ARRAY_BUFFER, v.vbos[i])
		if len(data) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		}

		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))
	}

	gl.BindVertexArray(0)
}

// BindObject binds the vertex range of the object at index i in the
// scene's object list.
func (v *VertexArrayObject) BindObject(i int) {
	gl.BindVertexArray(v.vaos[i])
}

func (v *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

func (v *VertexArrayObject) Delete() {
	if len(v.vaos) > 0 {
		gl.DeleteVertexArrays(int32(len(v.vaos)), &v.vaos[0])
		gl.DeleteBuffers(int32(len(v.vbos)), &v.vbos[0])
	}
	v.vaos = nil
	v.vbos = nil
}
