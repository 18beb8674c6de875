/*
	offscreen opengl renderer

	a Renderer owns a hidden glfw window with a 3.2 core context and draws
	a borrowed scene with a fixed two-program pipeline: a depth pass read
	back as float32 values and a color pass read back as rgb bytes. both
	readbacks land in caller-provided row-major buffers with row 0 at the
	top of the frame.

	the gl context is thread-local state; every public entry point that
	touches the gpu re-asserts it, but calls from multiple goroutines are
	the caller's problem to serialize.
*/

package engine
