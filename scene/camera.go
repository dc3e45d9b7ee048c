package scene

import (
	"orbit-cubes/math"
)

// Camera is a fixed look-at camera with a perspective projection.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FOV       float32 // vertical, radians
	NearPlane float32
	FarPlane  float32
}

func DefaultCamera() Camera {
	return Camera{
		Eye:       math.Vec3{X: 0, Y: 0, Z: -2},
		Target:    math.Vec3Zero,
		Up:        math.Vec3Up,
		FOV:       math.Radians(45),
		NearPlane: 0.01,
		FarPlane:  100.0,
	}
}

func (c Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix builds the projection for a width x height surface. The
// aspect term is height/width, which the cubes have always been drawn
// with; on the default square surface it is 1.
func (c Camera) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(height) / float32(width)
	}
	return math.Mat4Perspective(c.FOV, aspect, c.NearPlane, c.FarPlane)
}
