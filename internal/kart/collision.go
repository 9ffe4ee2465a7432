package kart

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	probeMargin  = 0.15
	wallFriction = 0.7 // tangential speed kept after a wall contact
	bounceCap    = 0.8 // post-bounce speed cap as a share of MaxSpeed
	sideHitDot   = 0.5 // below this |normal·forward| a contact counts as a side hit
	spinStrength = 1.5 // angular impulse scale on side hits
)

// collisionSample is one perimeter ray contact, consumed within the frame.
type collisionSample struct {
	normal   rl.Vector3
	distance float32
}

// Resolver pushes the kart out of world geometry and imparts a bounce and,
// on side hits, a visible spin. It keeps no state between frames; every
// frame is resolved from scratch against the ground query.
type Resolver struct {
	cfg  KartPhysicsConfig
	body Body
}

func NewResolver(cfg KartPhysicsConfig, body Body) *Resolver {
	return &Resolver{cfg: cfg.Sanitized(), body: body}
}

// SetConfig swaps the tuning constants alongside the motion model's.
func (r *Resolver) SetConfig(cfg KartPhysicsConfig) {
	r.cfg = cfg.Sanitized()
}

// probeOffsets are the perimeter probe anchors in kart-local units of
// (half-length forward, half-width right): front center/left/right, both
// sides, rear center/left/right.
var probeOffsets = [8][2]float32{
	{1, 0},
	{1, -1},
	{1, 1},
	{0, -1},
	{0, 1},
	{-1, 0},
	{-1, -1},
	{-1, 1},
}

// Resolve casts short rays from the perimeter probes along the kart's four
// horizontal axes and, when contacts exist, pushes the kart out along the
// averaged contact normal and reflects its velocity. Averaging the normals
// instead of building a contact manifold is a deliberate simplification;
// karts hit walls, not each other. Returns the number of contacts.
func (r *Resolver) Resolve(s *State, ground GroundQuery) int {
	if ground == nil {
		return 0
	}

	forward := s.Forward()
	right := s.Right()
	back := rl.Vector3Scale(forward, -1)
	left := rl.Vector3Scale(right, -1)
	directions := [4]rl.Vector3{forward, back, right, left}

	reach := r.body.HalfLength + probeMargin

	var samples []collisionSample
	for _, off := range probeOffsets {
		anchor := rl.Vector3Add(s.Position,
			rl.Vector3Add(
				rl.Vector3Scale(forward, off[0]*r.body.HalfLength),
				rl.Vector3Scale(right, off[1]*r.body.HalfWidth),
			))
		for _, dir := range directions {
			if hit, ok := ground.Raycast(anchor, dir, reach); ok {
				samples = append(samples, collisionSample{normal: hit.Normal, distance: hit.Distance})
			}
		}
	}

	if len(samples) == 0 {
		return 0
	}

	// Average the contact normals into a single push direction.
	var sum rl.Vector3
	minDistance := samples[0].distance
	for _, sample := range samples {
		sum = rl.Vector3Add(sum, sample.normal)
		if sample.distance < minDistance {
			minDistance = sample.distance
		}
	}
	normal := safeNormalize(sum)
	if rl.Vector3Length(normal) == 0 {
		// Opposing contacts cancelled out (wedged in a corner); nothing
		// sensible to push along this frame.
		return len(samples)
	}

	penetration := r.body.HalfLength - minDistance + probeMargin
	if penetration < 0 {
		penetration = 0
	}
	s.Position = rl.Vector3Add(s.Position, rl.Vector3Scale(normal, penetration))

	r.resolveVelocity(s, normal, forward)
	return len(samples)
}

// resolveVelocity splits the velocity against the contact normal, reflects
// and scales the normal component by the restitution, applies wall friction
// to the tangent, and caps the result so bounces never gain energy.
func (r *Resolver) resolveVelocity(s *State, normal, forward rl.Vector3) {
	vn := rl.Vector3DotProduct(s.Velocity, normal)
	if vn >= 0 {
		// Already separating.
		return
	}

	velNormal := rl.Vector3Scale(normal, vn)
	velTangent := rl.Vector3Subtract(s.Velocity, velNormal)

	s.Velocity = rl.Vector3Add(
		rl.Vector3Scale(velTangent, wallFriction),
		rl.Vector3Scale(velNormal, -r.cfg.BounceRestitution),
	)

	maxBounce := r.cfg.MaxSpeed * bounceCap
	if speed := s.Speed(); speed > maxBounce {
		s.Velocity = rl.Vector3Scale(s.Velocity, maxBounce/speed)
	}

	// A predominantly side-on hit spins the kart. The sign comes from
	// which side of the heading the wall faces.
	if abs32(rl.Vector3DotProduct(normal, forward)) < sideHitDot {
		impact := clamp(abs32(vn)/r.cfg.MaxSpeed, 0, 1)
		sign := float32(1)
		if normal.X*forward.Z-normal.Z*forward.X < 0 {
			sign = -1
		}
		s.AngularVelocity += sign * impact * spinStrength
	}
}
