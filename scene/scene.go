package scene

import (
	"orbit-cubes/core"
	"orbit-cubes/math"
)

// ObjectScale is the uniform scale applied to every cube.
const ObjectScale = 0.1

// Instance is one cube: its fixed offset inside the orbit and its flat color.
type Instance struct {
	Index  int
	Offset math.Vec3
	Color  core.Color
}

// Lighting holds the constant light uniforms.
type Lighting struct {
	Location math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

func DefaultLighting() Lighting {
	grey := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	return Lighting{
		Location: math.Vec3{X: 10, Y: 0, Z: 10},
		Ambient:  grey,
		Diffuse:  grey,
		Specular: grey,
	}
}

// Scene is the static part of what gets drawn; State carries the rest.
type Scene struct {
	Instances  [InstanceCount]Instance
	Camera     Camera
	Lighting   Lighting
	ClearColor core.Color
}

func NewScene() *Scene {
	return &Scene{
		Instances: [InstanceCount]Instance{
			{Index: 0, Offset: math.Vec3{X: 0.2}, Color: core.ColorRed},
			{Index: 1, Offset: math.Vec3{}, Color: core.ColorYellow},
			{Index: 2, Offset: math.Vec3{X: -0.2}, Color: core.ColorGreen},
			{Index: 3, Offset: math.Vec3{Y: 0.2}, Color: core.ColorCyan},
		},
		Camera:     DefaultCamera(),
		Lighting:   DefaultLighting(),
		ClearColor: core.ColorBlack,
	}
}
