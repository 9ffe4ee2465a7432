package game

import (
	"github.com/local-optimum/kart-world/internal/kart"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyboardInput samples the driving keys once per frame. WASD and the
// arrow keys both steer; space is the drift button.
type KeyboardInput struct{}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Sample implements kart.InputSource. Returns false when no driving key is
// held, which lets the kart's smoothed inputs decay instead of snapping.
func (k *KeyboardInput) Sample() (kart.Controls, bool) {
	var c kart.Controls
	active := false

	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		c.Throttle += 1
		active = true
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		c.Throttle -= 1
		active = true
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		c.Steering += 1
		active = true
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		c.Steering -= 1
		active = true
	}
	if rl.IsKeyDown(rl.KeySpace) {
		c.Drift = true
		active = true
	}

	return c, active
}
