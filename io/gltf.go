package io

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"orbit-cubes/math"
	"orbit-cubes/renderer"
	"orbit-cubes/scene"
)

// ExportGLTF writes the cubes of f as a binary glTF (.glb). Each cube gets
// its own mesh in object space and a node whose matrix is the cube's
// model-view, so the hierarchy survives in the file.
func ExportGLTF(path string, sc *scene.Scene, f renderer.Frame) error {
	doc := gltf.NewDocument()

	positions := make([][3]float32, scene.CubeVertexCount)
	normals := make([][3]float32, scene.CubeVertexCount)
	for i := range positions {
		positions[i] = scene.CubeVertex(i).Array()
		normals[i] = scene.CubeFaceNormals[i/scene.CubeVerticesPerFace].Array()
	}
	indices := scene.CubeIndices[:]

	for _, d := range f.Draws {
		inst := sc.Instances[d.Instance]
		colors := make([][4]float32, scene.CubeVertexCount)
		for i := range colors {
			colors[i] = inst.Color.Array()
		}

		mesh := &gltf.Mesh{
			Name: fmt.Sprintf("cube%d", inst.Index),
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
				Attributes: map[string]int{
					"POSITION": modeler.WritePosition(doc, positions),
					"NORMAL":   modeler.WriteNormal(doc, normals),
					"COLOR_0":  modeler.WriteColor(doc, colors),
				},
			}},
		}
		doc.Meshes = append(doc.Meshes, mesh)

		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:   mesh.Name,
			Mesh:   gltf.Index(len(doc.Meshes) - 1),
			Matrix: nodeMatrix(d.ModelView),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

// nodeMatrix converts to glTF's column-major float64 layout.
func nodeMatrix(m math.Mat4) [16]float64 {
	var out [16]float64
	for i, v := range m.Flatten() {
		out[i] = float64(v)
	}
	return out
}
