package kart

import (
	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GroundQuery answers nearest-hit ray queries against the track geometry.
// Satisfied by *physics.World. Calls must be synchronous; the kart fires a
// handful per frame and budgets them inside the frame.
type GroundQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool)
}

const (
	groundProbeLift   = 0.5 // probe starts this far above the kart center
	groundSnapMargin  = 0.3 // extra reach below ride height before going airborne
	wheelProbeReach   = 2.0
	wheelGroundOffset = 0.02
)

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

// snapToGround probes beneath the kart and either snaps it to ride height
// above the surface or marks it airborne. A missing ground hit is a normal
// state (jumps, track edges), not an error.
func snapToGround(s *State, body Body, ground GroundQuery, dt float32) {
	if ground == nil {
		s.Grounded = true
		return
	}

	origin := rl.Vector3Add(s.Position, rl.Vector3{Y: groundProbeLift})
	reach := groundProbeLift + body.RideHeight + groundSnapMargin

	if hit, ok := ground.Raycast(origin, down, reach); ok {
		s.Position.Y = hit.Point.Y + body.RideHeight
		if s.Velocity.Y < 0 {
			s.Velocity.Y = 0
		}
		s.Grounded = true
		return
	}

	s.Grounded = false
	s.Velocity.Y -= gravity * dt
}

// wheelGroundHeight probes straight down from a wheel anchor and returns
// the surface height to pin a skid mark to, or the anchor height when
// nothing is below.
func wheelGroundHeight(anchor rl.Vector3, ground GroundQuery) float32 {
	if ground == nil {
		return anchor.Y
	}
	origin := rl.Vector3Add(anchor, rl.Vector3{Y: groundProbeLift})
	if hit, ok := ground.Raycast(origin, down, groundProbeLift+wheelProbeReach); ok {
		return hit.Point.Y + wheelGroundOffset
	}
	return anchor.Y
}
