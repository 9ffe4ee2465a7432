package kart

import rl "github.com/gen2brain/raylib-go/raylib"

// SkidEmitter receives one call per frame and owns its own trail
// lifecycle: creation, fade-out and disposal all happen on its side. The
// kart only pushes data in.
type SkidEmitter interface {
	UpdateSkidMarks(skidding bool, wheels []rl.Vector3, velocity rl.Vector3)
}

// Rear wheel anchors in kart-local units of (half-length forward,
// half-width right). Only the rear wheels lay rubber.
var wheelAnchors = [2][2]float32{
	{-0.85, -0.8}, // rear left
	{-0.85, 0.8},  // rear right
}

// WheelPositions returns the rear wheel contact points in world space,
// with their height pinned to the ground surface beneath each wheel.
func (k *Kart) WheelPositions() []rl.Vector3 {
	forward := k.State.Forward()
	right := k.State.Right()

	wheels := make([]rl.Vector3, 0, len(wheelAnchors))
	for _, anchor := range wheelAnchors {
		p := rl.Vector3Add(k.State.Position,
			rl.Vector3Add(
				rl.Vector3Scale(forward, anchor[0]*k.body.HalfLength),
				rl.Vector3Scale(right, anchor[1]*k.body.HalfWidth),
			))
		p.Y = wheelGroundHeight(p, k.ground)
		wheels = append(wheels, p)
	}
	return wheels
}
