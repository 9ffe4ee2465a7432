package kart

// KartPhysicsConfig holds the hand-tuned driving constants for one kart.
// These are arcade tunables, not derived physical quantities. The config is
// immutable once handed to a kart; swap the whole struct to retune.
type KartPhysicsConfig struct {
	MaxSpeed          float32 // hard cap on |velocity|, units/s
	Acceleration      float32 // forward thrust, units/s^2
	Deceleration      float32 // braking strength, units/s^2
	SteeringSpeed     float32 // peak yaw rate at full effectiveness, rad/s
	DriftFactor       float32 // base momentum preservation while drifting, 0..1
	GroundFriction    float32 // per-second velocity loss while grounded
	AirResistance     float32 // per-second velocity loss proportional to speed
	BounceRestitution float32 // wall bounce energy retention, 0..1
}

// Sanitized returns a copy with out-of-range tunables clamped to safe
// bounds, so a zero MaxSpeed or DriftFactor from a bad edit can never
// divide by zero or freeze the kart mid-drift.
func (c KartPhysicsConfig) Sanitized() KartPhysicsConfig {
	c.MaxSpeed = floor32(c.MaxSpeed, 1)
	c.Acceleration = floor32(c.Acceleration, 1)
	c.Deceleration = floor32(c.Deceleration, 1)
	c.SteeringSpeed = floor32(c.SteeringSpeed, 0.1)
	c.DriftFactor = clamp(c.DriftFactor, 0.1, 0.98)
	c.GroundFriction = floor32(c.GroundFriction, 0.01)
	c.AirResistance = floor32(c.AirResistance, 0.01)
	c.BounceRestitution = clamp(c.BounceRestitution, 0.05, 1)
	return c
}

func floor32(v, min float32) float32 {
	if v < min {
		return min
	}
	return v
}

// ArcadePhysics is the default tuning: quick to accelerate, forgiving
// drifts, lively wall bounces.
func ArcadePhysics() KartPhysicsConfig {
	return KartPhysicsConfig{
		MaxSpeed:          30,
		Acceleration:      28,
		Deceleration:      30,
		SteeringSpeed:     2.8,
		DriftFactor:       0.92,
		GroundFriction:    0.8,
		AirResistance:     0.12,
		BounceRestitution: 0.35,
	}
}

// SimulationPhysics trades responsiveness for weight: slower spool-up,
// stickier drifts, deader walls.
func SimulationPhysics() KartPhysicsConfig {
	return KartPhysicsConfig{
		MaxSpeed:          36,
		Acceleration:      18,
		Deceleration:      26,
		SteeringSpeed:     2.2,
		DriftFactor:       0.96,
		GroundFriction:    1.1,
		AirResistance:     0.2,
		BounceRestitution: 0.2,
	}
}

// BeginnerPhysics caps speed low and steers sharply so new players can
// recover from mistakes.
func BeginnerPhysics() KartPhysicsConfig {
	return KartPhysicsConfig{
		MaxSpeed:          20,
		Acceleration:      22,
		Deceleration:      34,
		SteeringSpeed:     3.2,
		DriftFactor:       0.85,
		GroundFriction:    1.0,
		AirResistance:     0.15,
		BounceRestitution: 0.3,
	}
}

// Body describes the kart's collision footprint and ride height. The
// perimeter probes and wheel anchors are derived from these extents.
type Body struct {
	HalfLength float32
	HalfWidth  float32
	RideHeight float32 // height of the logical center above the ground contact
}

func DefaultBody() Body {
	return Body{
		HalfLength: 1.1,
		HalfWidth:  0.65,
		RideHeight: 0.8,
	}
}
