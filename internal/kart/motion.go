package kart

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning constants shared by every kart. Per-kart feel lives in
// KartPhysicsConfig; these shape the control response itself.
const (
	gravity = 20.0

	throttleSmoothRate = 8.0 // units of input per second toward the raw target
	steeringSmoothRate = 12.0
	inputDecayRate     = 3.0 // slower decay when no input, preserves coasting

	minTurnSpeed     = 0.5  // below this the kart cannot rotate at all
	lowTurnSpeed     = 3.0  // severely reduced steering below this
	midTurnSpeed     = 8.0  // partially reduced steering below this
	turnRefSpeed     = 30.0 // full steering effectiveness at and beyond this
	steeringRampRate = 3.0  // how fast angular velocity accumulates
	angularDamping   = 0.92 // per-frame decay at 60fps when not steering

	brakeStopSpeed = 0.4  // braking below this snaps velocity to zero
	coastStopSpeed = 0.25 // coasting below this snaps velocity to zero
	brakeAirFactor = 0.5  // air resistance reduction while braking
	coastFriction  = 0.5  // ground friction reduction while coasting

	driftFrictionFactor = 0.4 // drift replaces ground friction with this share
	driftMomentumGain   = 0.5 // extra momentum preservation at full speed
	driftScrubFactor    = 0.3 // share of the grip turn scrub paid while drifting
	realignRate         = 3.0
	realignHighSpeedCut = 0.6 // realignment slows by this share at full speed
	turnScrubRate       = 4.0 // turning sheds speed with heading misalignment

	skidMinSpeed    = 4.0
	skidBrakeSpeed  = 6.0
	skidLateralSlip = 0.45
)

// MotionModel integrates smoothed control signals into kart velocity and
// orientation under the arcade driving model. It is stateless between
// frames; all per-kart state lives in State.
type MotionModel struct {
	cfg  KartPhysicsConfig
	body Body
}

func NewMotionModel(cfg KartPhysicsConfig, body Body) *MotionModel {
	return &MotionModel{cfg: cfg.Sanitized(), body: body}
}

// SetConfig swaps the tuning constants, e.g. from the live tuning panel.
func (m *MotionModel) SetConfig(cfg KartPhysicsConfig) {
	m.cfg = cfg.Sanitized()
}

func (m *MotionModel) Config() KartPhysicsConfig {
	return m.cfg
}

// Step advances the kart state by one frame. raw is nil when no input is
// active this frame. The position produced here is provisional until the
// collision resolver has run.
func (m *MotionModel) Step(s *State, raw *Controls, dt float32, ground GroundQuery) {
	if dt <= 0 {
		return
	}

	m.smoothInputs(s, raw, dt)
	snapToGround(s, m.body, ground, dt)

	driftHeld := raw != nil && raw.Drift
	s.Mode = nextMode(s.Mode, s.Speed(), s.ThrottleInput, s.SteeringInput, driftHeld)

	m.integrateLongitudinal(s, dt)
	m.integrateAngular(s, dt)
	m.applyResistance(s, dt)
	m.applyLateral(s, dt)

	m.clampSpeed(s)
	s.Position = rl.Vector3Add(s.Position, rl.Vector3Scale(s.Velocity, dt))

	m.detectSkid(s)
}

// smoothInputs moves the control signals toward the raw targets at a
// bounded rate. With no input they decay toward zero more slowly, so a
// released throttle coasts instead of stopping dead.
func (m *MotionModel) smoothInputs(s *State, raw *Controls, dt float32) {
	if raw != nil {
		s.ThrottleInput = moveToward(s.ThrottleInput, clamp(raw.Throttle, -1, 1), throttleSmoothRate*dt)
		s.SteeringInput = moveToward(s.SteeringInput, clamp(raw.Steering, -1, 1), steeringSmoothRate*dt)
		return
	}
	s.ThrottleInput = moveToward(s.ThrottleInput, 0, inputDecayRate*dt)
	s.SteeringInput = moveToward(s.SteeringInput, 0, inputDecayRate*dt)
}

func (m *MotionModel) integrateLongitudinal(s *State, dt float32) {
	switch s.Mode {
	case ModeAccelerating, ModeDrifting:
		if s.ThrottleInput > 0 {
			thrust := rl.Vector3Scale(s.Forward(), s.ThrottleInput*m.cfg.Acceleration*dt)
			s.Velocity = rl.Vector3Add(s.Velocity, thrust)
		}

	case ModeReversing:
		// Reverse throttle is full acceleration along the negative
		// forward axis; ThrottleInput is negative here.
		thrust := rl.Vector3Scale(s.Forward(), s.ThrottleInput*m.cfg.Acceleration*dt)
		s.Velocity = rl.Vector3Add(s.Velocity, thrust)

	case ModeBraking:
		m.applyBraking(s, dt)
	}
}

// applyBraking decays the whole velocity vector, not just the forward
// component, so a sliding kart keeps sliding in its travel direction while
// it sheds speed. Effectiveness comes in three speed bands: weak near
// standstill so stops stay gentle, strongest at cruising speed.
func (m *MotionModel) applyBraking(s *State, dt float32) {
	speed := s.Speed()
	if speed <= 0 {
		return
	}

	var band float32
	switch {
	case speed < lowTurnSpeed:
		band = 0.55
	case speed < 10:
		band = 1.0
	default:
		band = 1.35
	}

	loss := band * abs32(s.ThrottleInput) * m.cfg.Deceleration * dt
	newSpeed := speed - loss
	if newSpeed < brakeStopSpeed {
		s.Velocity = rl.Vector3{}
		return
	}
	s.Velocity = rl.Vector3Scale(s.Velocity, newSpeed/speed)
}

// steeringEffectiveness is a piecewise curve over speed: zero below the
// minimum turn speed (a stationary kart cannot spin in place), rising
// through two reduced bands, then interpolating to full effectiveness at
// the reference speed where it saturates.
func steeringEffectiveness(speed float32) float32 {
	switch {
	case speed < minTurnSpeed:
		return 0
	case speed < lowTurnSpeed:
		return 0.25 * (speed - minTurnSpeed) / (lowTurnSpeed - minTurnSpeed)
	case speed < midTurnSpeed:
		return lerp(0.25, 0.6, (speed-lowTurnSpeed)/(midTurnSpeed-lowTurnSpeed))
	default:
		t := clamp((speed-midTurnSpeed)/(turnRefSpeed-midTurnSpeed), 0, 1)
		return lerp(0.6, 1.0, t)
	}
}

// integrateAngular accumulates yaw rate from steering rather than setting
// it directly, giving the kart angular inertia. The rate is clamped in
// proportion to the current effectiveness and damped toward zero when the
// player is not steering or the kart is nearly stationary.
func (m *MotionModel) integrateAngular(s *State, dt float32) {
	speed := s.Speed()
	eff := steeringEffectiveness(speed)

	s.AngularVelocity += s.SteeringInput * eff * m.cfg.SteeringSpeed * steeringRampRate * dt

	maxRate := eff * m.cfg.SteeringSpeed
	s.AngularVelocity = clamp(s.AngularVelocity, -maxRate, maxRate)

	if abs32(s.SteeringInput) < steeringDeadZone || speed < minTurnSpeed {
		damping := float32(math.Pow(angularDamping, float64(dt*60)))
		s.AngularVelocity *= damping
	}

	// Yaw integrates in the kart's own frame, so steering is always
	// relative to the current heading.
	s.Yaw += s.AngularVelocity * dt
}

// applyResistance bleeds speed every frame: air resistance proportional to
// speed (reduced while braking so slides carry), plus ground friction when
// grounded and not under power. Drift skips ground friction entirely; it
// has its own in applyLateral. Coasting gets a reduced factor to keep the
// sliding feel.
func (m *MotionModel) applyResistance(s *State, dt float32) {
	air := m.cfg.AirResistance
	if s.Mode == ModeBraking {
		air *= brakeAirFactor
	}
	s.Velocity = rl.Vector3Scale(s.Velocity, clamp(1-air*dt, 0, 1))

	if !s.Grounded {
		return
	}

	switch s.Mode {
	case ModeAccelerating, ModeReversing, ModeDrifting:
		// Under power or sliding: no ground friction here.
	case ModeIdle:
		s.Velocity = rl.Vector3Scale(s.Velocity, clamp(1-m.cfg.GroundFriction*coastFriction*dt, 0, 1))
		if s.Speed() < coastStopSpeed {
			s.Velocity = rl.Vector3{}
		}
	default:
		s.Velocity = rl.Vector3Scale(s.Velocity, clamp(1-m.cfg.GroundFriction*dt, 0, 1))
	}
}

// applyLateral handles the sideways life of the velocity vector. While
// drifting, most of the current momentum is preserved and a small steering
// influence pulls it toward the heading; the blend is speed-dependent so
// high-speed drifts feel controlled and low-speed ones loose. While
// gripping, the velocity direction realigns toward the heading at a rate
// that drops with speed. Braking suppresses realignment entirely to keep
// slide momentum.
func (m *MotionModel) applyLateral(s *State, dt float32) {
	horiz := horizontal(s.Velocity)
	hspeed := rl.Vector3Length(horiz)
	if hspeed < 1e-4 {
		return
	}

	dir := rl.Vector3Scale(horiz, 1/hspeed)
	forward := s.Forward()
	speedRatio := clamp(hspeed/m.cfg.MaxSpeed, 0, 1)

	switch s.Mode {
	case ModeDrifting:
		keep := clamp(m.cfg.DriftFactor+(1-m.cfg.DriftFactor)*speedRatio*driftMomentumGain, 0, 0.98)
		blended := rl.Vector3Add(
			rl.Vector3Scale(dir, keep),
			rl.Vector3Scale(forward, 1-keep),
		)
		blended = safeNormalize(blended)
		if rl.Vector3Length(blended) == 0 {
			return
		}
		// Sliding tyres still scrub some speed against the misalignment,
		// at a fraction of the gripping rate.
		scrub := (1 - rl.Vector3DotProduct(dir, forward)) * turnScrubRate * driftScrubFactor
		hspeed *= clamp(1-scrub*dt, 0, 1)
		hspeed *= clamp(1-m.cfg.GroundFriction*driftFrictionFactor*dt, 0, 1)
		horiz = rl.Vector3Scale(blended, hspeed)

	case ModeBraking:
		return

	default:
		if !s.Grounded {
			return
		}
		target := forward
		if rl.Vector3DotProduct(dir, forward) < 0 {
			target = rl.Vector3Scale(forward, -1)
		}
		rate := realignRate * (1 - realignHighSpeedCut*speedRatio)
		t := clamp(rate*dt, 0, 1)
		newDir := safeNormalize(rl.Vector3Lerp(dir, target, t))
		if rl.Vector3Length(newDir) == 0 {
			return
		}
		// Gripping tyres scrub speed at the full rate while they drag the
		// velocity back in line with the heading.
		scrub := (1 - rl.Vector3DotProduct(dir, target)) * turnScrubRate
		hspeed *= clamp(1-scrub*dt, 0, 1)
		horiz = rl.Vector3Scale(newDir, hspeed)
	}

	s.Velocity = rl.Vector3{X: horiz.X, Y: s.Velocity.Y, Z: horiz.Z}
}

// clampSpeed enforces the hard speed cap after every integration step.
func (m *MotionModel) clampSpeed(s *State) {
	speed := s.Speed()
	if speed > m.cfg.MaxSpeed {
		s.Velocity = rl.Vector3Scale(s.Velocity, m.cfg.MaxSpeed/speed)
	}
}

// detectSkid marks the frames the trail renderer should lay rubber for:
// drifting, hard braking, or enough lateral slip between travel direction
// and heading. Only meaningful on the ground and above a minimum speed.
func (m *MotionModel) detectSkid(s *State) {
	s.Skidding = false
	if !s.Grounded {
		return
	}

	speed := s.Speed()
	if speed < skidMinSpeed {
		return
	}

	switch s.Mode {
	case ModeDrifting:
		s.Skidding = true
	case ModeBraking:
		s.Skidding = speed > skidBrakeSpeed
	default:
		dir := safeNormalize(horizontal(s.Velocity))
		slip := rl.Vector3DotProduct(dir, s.Right())
		s.Skidding = abs32(slip) > skidLateralSlip
	}
}
