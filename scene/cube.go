package scene

import (
	"orbit-cubes/core"
	"orbit-cubes/math"
)

const (
	CubeFaceCount       = 6
	CubeVerticesPerFace = 4
	CubeVertexCount     = CubeFaceCount * CubeVerticesPerFace
	CubeIndexCount      = 36
	CubeTriangleCount   = CubeIndexCount / 3
)

// CubePositions spans [-1,1]³, four vertices per face so every face can
// carry its own flat color. Face order: front, back, top, bottom, right, left.
var CubePositions = [CubeVertexCount * 3]float32{
	// Front face
	-1.0, -1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0,

	// Back face
	-1.0, -1.0, -1.0,
	-1.0, 1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,

	// Top face
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, -1.0,

	// Bottom face
	-1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, -1.0, 1.0,
	-1.0, -1.0, 1.0,

	// Right face
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,

	// Left face
	-1.0, -1.0, -1.0,
	-1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
}

var CubeIndices = [CubeIndexCount]uint16{
	0, 1, 2, 0, 2, 3, // front
	4, 5, 6, 4, 6, 7, // back
	8, 9, 10, 8, 10, 11, // top
	12, 13, 14, 12, 14, 15, // bottom
	16, 17, 18, 16, 18, 19, // right
	20, 21, 22, 20, 22, 23, // left
}

var CubeFaceNormals = [CubeFaceCount]math.Vec3{
	{X: 0, Y: 0, Z: 1},  // front
	{X: 0, Y: 0, Z: -1}, // back
	{X: 0, Y: 1, Z: 0},  // top
	{X: 0, Y: -1, Z: 0}, // bottom
	{X: 1, Y: 0, Z: 0},  // right
	{X: -1, Y: 0, Z: 0}, // left
}

// CubeVertex returns vertex i of CubePositions.
func CubeVertex(i int) math.Vec3 {
	return math.Vec3{X: CubePositions[i*3], Y: CubePositions[i*3+1], Z: CubePositions[i*3+2]}
}

// CubeNormals expands CubeFaceNormals to one normal per vertex.
func CubeNormals() []float32 {
	out := make([]float32, 0, CubeVertexCount*3)
	for _, n := range CubeFaceNormals {
		for v := 0; v < CubeVerticesPerFace; v++ {
			out = append(out, n.X, n.Y, n.Z)
		}
	}
	return out
}

// CubeColors paints every face of the cube with c, one RGBA per vertex.
func CubeColors(c core.Color) []float32 {
	out := make([]float32, 0, CubeVertexCount*4)
	for v := 0; v < CubeVertexCount; v++ {
		out = append(out, c.R, c.G, c.B, c.A)
	}
	return out
}
