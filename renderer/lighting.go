package renderer

import (
	"github.com/chewxy/math32"

	"orbit-cubes/core"
	"orbit-cubes/math"
	"orbit-cubes/scene"
)

const shininess = 0.5

// LightWeighting evaluates VertexShader's lighting for one vertex on the
// CPU. position is the object-space vertex; like the shader, it doubles as
// the normal before nMatrix is applied.
func LightWeighting(view, modelView math.Mat4, normal math.Mat3, position math.Vec3, l scene.Lighting) math.Vec3 {
	eye := modelView.Mul(view).MulPoint(position)

	lightDir := l.Location.Sub(eye).Normalize()
	n := normal.MulVec3(position).Normalize()

	dist := lightDir.Length()
	intensity := 1 / (1 + 0.1*dist + 0.01*dist*dist)

	diffuseDot := math32.Max(n.Dot(lightDir), 0)
	reflection := lightDir.Negate().Reflect(n).Normalize()
	viewVec := eye.Normalize().Negate()
	specularDot := math32.Max(reflection.Dot(viewVec), 0)
	specular := math32.Pow(specularDot, shininess)

	return l.Ambient.Add(l.Diffuse.Mul(diffuseDot).Add(l.Specular.Mul(specular)).Mul(intensity))
}

// Shade applies a weighting to a vertex color the way FragmentShader does.
func Shade(c core.Color, w math.Vec3) core.Color {
	return core.Color{R: c.R * w.X, G: c.G * w.Y, B: c.B * w.Z, A: c.A}
}
