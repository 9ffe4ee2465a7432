package kart

// DrivingMode is the kart's longitudinal/lateral control state. Exactly one
// mode is active per frame; transitions are decided once per frame from the
// smoothed inputs so the mode can never disagree with itself the way a set
// of independent booleans can.
type DrivingMode int

const (
	ModeIdle DrivingMode = iota
	ModeAccelerating
	ModeBraking
	ModeReversing
	ModeDrifting
)

func (m DrivingMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAccelerating:
		return "accelerating"
	case ModeBraking:
		return "braking"
	case ModeReversing:
		return "reversing"
	case ModeDrifting:
		return "drifting"
	}
	return "unknown"
}

// Transition thresholds. Inputs below the dead zones count as released.
const (
	throttleDeadZone  = 0.05
	steeringDeadZone  = 0.05
	driftSteeringMin  = 0.35
	driftSpeedMin     = 10.0
	driftThrottleMin  = 0.15
	driftHeldSpeedMin = 3.0
	reverseEntrySpeed = 2.0
	reverseThrottle   = -0.1
)

// shouldDrift reports whether the kart slides this frame: either the drift
// button is held while moving and steering, or the turn is hard enough at
// speed to break traction on its own.
func shouldDrift(speed, throttle, steering float32, driftHeld bool) bool {
	if driftHeld && speed > driftHeldSpeedMin && abs32(steering) > steeringDeadZone {
		return true
	}
	return abs32(steering) > driftSteeringMin &&
		speed > driftSpeedMin &&
		abs32(throttle) > driftThrottleMin
}

// shouldReverse reports whether negative throttle means backing up rather
// than braking: only near standstill.
func shouldReverse(speed, throttle float32) bool {
	return speed < reverseEntrySpeed && throttle < reverseThrottle
}

// nextMode evaluates the transition guards against the smoothed inputs.
// Reverse is sticky: once engaged it holds until the throttle is released
// or pushed forward, so the kart does not flicker between braking and
// reversing around the entry speed.
func nextMode(current DrivingMode, speed, throttle, steering float32, driftHeld bool) DrivingMode {
	if current == ModeReversing {
		if throttle < -throttleDeadZone {
			return ModeReversing
		}
	}
	if shouldDrift(speed, throttle, steering, driftHeld) {
		return ModeDrifting
	}
	if throttle > throttleDeadZone {
		return ModeAccelerating
	}
	if throttle < -throttleDeadZone {
		if shouldReverse(speed, throttle) {
			return ModeReversing
		}
		return ModeBraking
	}
	return ModeIdle
}
