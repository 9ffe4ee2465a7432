package kart

import rl "github.com/gen2brain/raylib-go/raylib"

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// moveToward steps v toward target by at most maxStep, landing exactly on
// the target when within one step.
func moveToward(v, target, maxStep float32) float32 {
	delta := target - v
	if abs32(delta) <= maxStep {
		return target
	}
	if delta > 0 {
		return v + maxStep
	}
	return v - maxStep
}

// horizontal returns v with its vertical component removed.
func horizontal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: 0, Z: v.Z}
}

// safeNormalize normalizes v, or returns the zero vector when v has no
// length. A stationary kart must never produce NaNs.
func safeNormalize(v rl.Vector3) rl.Vector3 {
	length := rl.Vector3Length(v)
	if length < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, 1/length)
}
