package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"orbit-cubes/core"
	"orbit-cubes/math"
	"orbit-cubes/renderer"
)

var _ renderer.Backend = (*Backend)(nil)

// Backend implements renderer.Backend on an OpenGL 4.1 core context.
type Backend struct {
	vao    uint32
	logger *slog.Logger
}

// NewBackend initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewBackend(logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// Core profile draws nothing without a bound vertex array.
	b := &Backend{logger: logger}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	return b, nil
}

// SetViewport sets the GL viewport to the framebuffer size.
func (b *Backend) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ── Shaders ───────────────────────────────────────────────────────────────────

func (b *Backend) CompileVertexShader(src string) (uint32, error) {
	return compileShader(src, gl.VERTEX_SHADER)
}

func (b *Backend) CompileFragmentShader(src string) (uint32, error) {
	return compileShader(src, gl.FRAGMENT_SHADER)
}

func (b *Backend) LinkProgram(vertex, fragment uint32) (uint32, error) {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertex)
	gl.AttachShader(prog, fragment)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func (b *Backend) DeleteShader(shader uint32)   { gl.DeleteShader(shader) }
func (b *Backend) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (b *Backend) UseProgram(program uint32)    { gl.UseProgram(program) }

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// ── Buffers ───────────────────────────────────────────────────────────────────

func (b *Backend) NewVertexBuffer(data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return buf
}

func (b *Backend) NewIndexBuffer(data []uint16) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
	return buf
}

func (b *Backend) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

// ── Per-frame ─────────────────────────────────────────────────────────────────

func (b *Backend) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (b *Backend) UniformMat4(location int32, m math.Mat4) {
	flat := m.Flatten()
	gl.UniformMatrix4fv(location, 1, false, &flat[0])
}

func (b *Backend) UniformMat3(location int32, m math.Mat3) {
	flat := m.Flatten()
	gl.UniformMatrix3fv(location, 1, false, &flat[0])
}

func (b *Backend) UniformVec3(location int32, v math.Vec3) {
	gl.Uniform3f(location, v.X, v.Y, v.Z)
}

// VertexAttrib feeds buffer to a tightly packed float attribute. Attributes
// the linker dropped report location -1 and are skipped.
func (b *Backend) VertexAttrib(location int32, buffer uint32, size int32) {
	if location < 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.EnableVertexAttribArray(uint32(location))
	gl.VertexAttribPointer(uint32(location), size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (b *Backend) DrawIndexed(indexBuffer uint32, count int32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indexBuffer)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, nil)
}

// Destroy releases the vertex array. Buffers and programs belong to the
// render engine.
func (b *Backend) Destroy() {
	gl.DeleteVertexArrays(1, &b.vao)
}
