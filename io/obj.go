package io

import (
	"bufio"
	"fmt"
	"os"

	"orbit-cubes/renderer"
	"orbit-cubes/scene"
)

// ExportOBJ writes the cubes of f to a .obj file. Positions and normals are
// pre-transformed by each cube's model-view and normal matrix; the flat
// cube color rides along as the common "v x y z r g b" extension.
func ExportOBJ(path string, sc *scene.Scene, f renderer.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "# orbit-cubes snapshot")
	fmt.Fprintln(w)

	vertexOffset := 0
	for _, d := range f.Draws {
		inst := sc.Instances[d.Instance]
		fmt.Fprintf(w, "o cube%d\n", inst.Index)

		for i := 0; i < scene.CubeVertexCount; i++ {
			p := d.ModelView.MulPoint(scene.CubeVertex(i))
			fmt.Fprintf(w, "v %f %f %f %f %f %f\n", p.X, p.Y, p.Z, inst.Color.R, inst.Color.G, inst.Color.B)
		}
		for face := 0; face < scene.CubeFaceCount; face++ {
			n := d.Normal.MulVec3(scene.CubeFaceNormals[face]).Normalize()
			for j := 0; j < scene.CubeVerticesPerFace; j++ {
				fmt.Fprintf(w, "vn %f %f %f\n", n.X, n.Y, n.Z)
			}
		}

		// Faces are 1-indexed; vertex and normal indices coincide.
		for i := 0; i < len(scene.CubeIndices); i += 3 {
			a := int(scene.CubeIndices[i]) + 1 + vertexOffset
			b := int(scene.CubeIndices[i+1]) + 1 + vertexOffset
			c := int(scene.CubeIndices[i+2]) + 1 + vertexOffset
			fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}

		vertexOffset += scene.CubeVertexCount
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write OBJ file: %w", err)
	}
	return file.Close()
}
