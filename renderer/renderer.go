package renderer

import (
	"fmt"
	"log/slog"

	"orbit-cubes/scene"
)

// instanceBuffers are the GPU buffers for one cube. Position, normal and
// index data are identical across cubes; only the colors differ.
type instanceBuffers struct {
	position uint32
	color    uint32
	normal   uint32
	index    uint32
}

type locations struct {
	modelView, normal, projection, view       int32
	lightLocation, ambient, diffuse, specular int32

	position, color, normalAttrib int32
}

// RenderEngine owns the shader program and the per-cube buffers and turns
// a Frame into draw calls.
type RenderEngine struct {
	backend Backend
	program uint32
	loc     locations
	buffers [scene.InstanceCount]instanceBuffers
	logger  *slog.Logger

	// Per-frame stats (populated during Draw)
	lastObjects   int
	lastTriangles int
}

// NewRenderEngine compiles the shaders and uploads the geometry for every
// instance in sc. Must be called with the graphics context current. On a
// shader failure nothing is uploaded and the error is a *ShaderError.
func NewRenderEngine(b Backend, sc *scene.Scene, logger *slog.Logger) (*RenderEngine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	prog, err := newProgram(b, VertexShader, FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("build shader program: %w", err)
	}

	re := &RenderEngine{
		backend: b,
		program: prog,
		logger:  logger,
		loc: locations{
			modelView:     b.UniformLocation(prog, uniformModelView),
			normal:        b.UniformLocation(prog, uniformNormal),
			projection:    b.UniformLocation(prog, uniformProjection),
			view:          b.UniformLocation(prog, uniformView),
			lightLocation: b.UniformLocation(prog, uniformLightLocation),
			ambient:       b.UniformLocation(prog, uniformAmbient),
			diffuse:       b.UniformLocation(prog, uniformDiffuse),
			specular:      b.UniformLocation(prog, uniformSpecular),
			position:      b.AttribLocation(prog, attribPosition),
			color:         b.AttribLocation(prog, attribColor),
			normalAttrib:  b.AttribLocation(prog, attribNormal),
		},
	}

	normals := scene.CubeNormals()
	for i, inst := range sc.Instances {
		re.buffers[i] = instanceBuffers{
			index:    b.NewIndexBuffer(scene.CubeIndices[:]),
			position: b.NewVertexBuffer(scene.CubePositions[:]),
			color:    b.NewVertexBuffer(scene.CubeColors(inst.Color)),
			normal:   b.NewVertexBuffer(normals),
		}
	}
	logger.Debug("render engine ready", "program", prog, "instances", len(sc.Instances))
	return re, nil
}

// Draw issues one frame: clear, shared uniforms, then one indexed draw per
// cube.
func (re *RenderEngine) Draw(f Frame) {
	b := re.backend
	b.BeginFrame(f.Clear)
	b.UseProgram(re.program)

	b.UniformVec3(re.loc.lightLocation, f.Lighting.Location)
	b.UniformVec3(re.loc.ambient, f.Lighting.Ambient)
	b.UniformVec3(re.loc.diffuse, f.Lighting.Diffuse)
	b.UniformVec3(re.loc.specular, f.Lighting.Specular)
	b.UniformMat4(re.loc.projection, f.Projection)
	b.UniformMat4(re.loc.view, f.View)

	triangles := 0
	for _, d := range f.Draws {
		buf := re.buffers[d.Instance]
		b.UniformMat4(re.loc.modelView, d.ModelView)
		b.UniformMat3(re.loc.normal, d.Normal)
		b.VertexAttrib(re.loc.position, buf.position, 3)
		b.VertexAttrib(re.loc.color, buf.color, 4)
		b.VertexAttrib(re.loc.normalAttrib, buf.normal, 3)
		b.DrawIndexed(buf.index, scene.CubeIndexCount)
		triangles += scene.CubeTriangleCount
	}
	re.lastObjects = len(f.Draws)
	re.lastTriangles = triangles
}

// DrawStats returns stats from the most recent Draw call.
func (re *RenderEngine) DrawStats() (objects, triangles int) {
	return re.lastObjects, re.lastTriangles
}

// Destroy releases the buffers and the program.
func (re *RenderEngine) Destroy() {
	for _, buf := range re.buffers {
		re.backend.DeleteBuffer(buf.position)
		re.backend.DeleteBuffer(buf.color)
		re.backend.DeleteBuffer(buf.normal)
		re.backend.DeleteBuffer(buf.index)
	}
	re.backend.DeleteProgram(re.program)
}
