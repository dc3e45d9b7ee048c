package renderer

import (
	"orbit-cubes/core"
	"orbit-cubes/math"
)

// Backend is the slice of a graphics API the cube renderer needs. The
// OpenGL implementation lives in internal/opengl; tests use a recorder.
//
// Locations follow GL conventions: a name the linker dropped or never saw
// resolves to -1, and the backend quietly ignores it.
type Backend interface {
	// CompileVertexShader and CompileFragmentShader return the compiler's
	// info log as the error text. A shader that fails is already deleted.
	CompileVertexShader(src string) (uint32, error)
	CompileFragmentShader(src string) (uint32, error)
	// LinkProgram does the same for the program info log.
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	NewVertexBuffer(data []float32) uint32
	NewIndexBuffer(data []uint16) uint32
	DeleteBuffer(buffer uint32)

	// BeginFrame clears color and depth and enables LEQUAL depth testing.
	BeginFrame(clear core.Color)
	UniformMat4(location int32, m math.Mat4)
	UniformMat3(location int32, m math.Mat3)
	UniformVec3(location int32, v math.Vec3)
	// VertexAttrib feeds attribute location from a float buffer with size
	// components per vertex.
	VertexAttrib(location int32, buffer uint32, size int32)
	// DrawIndexed draws count uint16 indices from indexBuffer as triangles.
	DrawIndexed(indexBuffer uint32, count int32)
}
