package kart

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the kart's complete simulation state, owned by the Kart and
// mutated once per frame by the motion model, collision resolver and
// respawn guard in that order. Only yaw is modelled for orientation.
type State struct {
	Position        rl.Vector3
	Yaw             float32 // heading around the vertical axis, radians
	Velocity        rl.Vector3
	AngularVelocity float32 // yaw rate, rad/s

	// Smoothed control signals, distinct from the raw input samples.
	ThrottleInput float32
	SteeringInput float32

	Mode     DrivingMode
	Grounded bool
	Skidding bool
}

// Forward returns the unit heading vector. Yaw zero faces +Z.
func (s *State) Forward() rl.Vector3 {
	return rl.Vector3{
		X: float32(math.Sin(float64(s.Yaw))),
		Y: 0,
		Z: float32(math.Cos(float64(s.Yaw))),
	}
}

// Right returns the unit vector to the kart's right. Increasing yaw turns
// the heading toward it.
func (s *State) Right() rl.Vector3 {
	return rl.Vector3{
		X: float32(math.Cos(float64(s.Yaw))),
		Y: 0,
		Z: -float32(math.Sin(float64(s.Yaw))),
	}
}

// Speed returns |velocity|.
func (s *State) Speed() float32 {
	return rl.Vector3Length(s.Velocity)
}

// Drifting reports whether the kart is in the sliding mode.
func (s *State) Drifting() bool {
	return s.Mode == ModeDrifting
}

// Reversing reports whether the kart is backing up.
func (s *State) Reversing() bool {
	return s.Mode == ModeReversing
}
