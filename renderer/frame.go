package renderer

import (
	"orbit-cubes/core"
	"orbit-cubes/math"
	"orbit-cubes/scene"
)

// DrawCommand is one cube's per-draw uniforms.
type DrawCommand struct {
	Instance  int
	ModelView math.Mat4
	Normal    math.Mat3
}

// Frame is everything one frame draws. BuildFrame produces it without
// touching any graphics API, so the transform pipeline can be tested on
// its own.
type Frame struct {
	Clear      core.Color
	Projection math.Mat4
	View       math.Mat4
	Lighting   scene.Lighting
	Draws      []DrawCommand
}

// BuildFrame recomputes every matrix from the current state.
func BuildFrame(sc *scene.Scene, s *scene.State, width, height int) Frame {
	f := Frame{
		Clear:      sc.ClearColor,
		Projection: sc.Camera.ProjectionMatrix(width, height),
		View:       sc.Camera.ViewMatrix(),
		Lighting:   sc.Lighting,
		Draws:      make([]DrawCommand, 0, len(sc.Instances)),
	}
	for _, inst := range sc.Instances {
		mv := scene.ModelView(s, inst)
		f.Draws = append(f.Draws, DrawCommand{
			Instance:  inst.Index,
			ModelView: mv,
			Normal:    mv.NormalMatrix(),
		})
	}
	return f
}
