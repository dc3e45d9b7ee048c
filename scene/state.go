package scene

import (
	"math/rand"

	"orbit-cubes/math"
)

// InstanceCount is the number of cubes in the scene.
const InstanceCount = 4

// AngleStep is the rotation, in degrees, applied by one key press.
const AngleStep = 3

// Angle is a rotation in whole degrees. Every step is reduced with Go's
// truncating %, so an Angle stays in (-360, 360) and keeps its sign.
type Angle int

func (a Angle) Inc() Angle { return (a + AngleStep) % 360 }
func (a Angle) Dec() Angle { return (a - AngleStep) % 360 }

func (a Angle) Radians() float32 {
	return math.Radians(float32(a))
}

// State is everything the keyboard can change plus the jitter offset chosen
// at startup. It is owned by the run loop and handed by pointer to both the
// key handler and the frame builder.
type State struct {
	Spin   [InstanceCount]Angle // per-cube self rotation
	Orbit  Angle                // shared orbital spin
	Jitter Angle                // shared rotation of the jitter offset

	JitterOffset math.Vec3
}

// NewState returns a zeroed state with a jitter offset drawn from rng, each
// component in [-0.5, 0.5).
func NewState(rng *rand.Rand) *State {
	return &State{
		JitterOffset: math.Vec3{
			X: rng.Float32() - 0.5,
			Y: rng.Float32() - 0.5,
			Z: rng.Float32() - 0.5,
		},
	}
}
