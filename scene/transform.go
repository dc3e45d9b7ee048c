package scene

import (
	"orbit-cubes/math"
)

// ModelView composes the transform of one cube from identity, outermost
// first: jitter rotation, jitter offset, orbital rotation, the cube's own
// offset, its self rotation, then the uniform object scale. Every rotation
// is about Y. The result is rebuilt from scratch on each call.
func ModelView(s *State, inst Instance) math.Mat4 {
	return math.Mat4Identity().
		RotateY(s.Jitter.Radians()).
		Translate(s.JitterOffset).
		RotateY(s.Orbit.Radians()).
		Translate(inst.Offset).
		RotateY(s.Spin[inst.Index].Radians()).
		Scale(math.Vec3{X: ObjectScale, Y: ObjectScale, Z: ObjectScale})
}
