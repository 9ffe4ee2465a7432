package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/local-optimum/kart-world/internal/kart"
)

// drawTuningPanel shows live sliders for the physics constants. Edits are
// pushed into the kart every frame so tuning feedback is immediate.
func (g *Game) drawTuningPanel() {
	const (
		panelX = 10
		panelY = 60
		rowH   = 26
		labelW = 110
		width  = 330
	)

	rows := []struct {
		name  string
		value *float32
		min   float32
		max   float32
	}{
		{"max speed", &g.physics.MaxSpeed, 5, 60},
		{"acceleration", &g.physics.Acceleration, 5, 60},
		{"deceleration", &g.physics.Deceleration, 5, 60},
		{"steering", &g.physics.SteeringSpeed, 0.5, 6},
		{"drift factor", &g.physics.DriftFactor, 0.5, 0.98},
		{"ground friction", &g.physics.GroundFriction, 0.1, 3},
		{"air resistance", &g.physics.AirResistance, 0.01, 1},
		{"restitution", &g.physics.BounceRestitution, 0.05, 1},
	}

	rl.DrawRectangle(panelX-4, panelY-4, width, int32(len(rows)+2)*rowH+8, rl.Fade(rl.RayWhite, 0.85))

	for i, row := range rows {
		bounds := rl.NewRectangle(panelX+labelW, float32(panelY+i*rowH), width-labelW-60, rowH-8)
		*row.value = gui.Slider(bounds, row.name+" ", fmt.Sprintf(" %.2f", *row.value), *row.value, row.min, row.max)
	}

	y := float32(panelY + len(rows)*rowH)
	if gui.Button(rl.NewRectangle(panelX, y, 100, rowH-4), "arcade") {
		g.physics = kart.ArcadePhysics()
	}
	if gui.Button(rl.NewRectangle(panelX+108, y, 100, rowH-4), "simulation") {
		g.physics = kart.SimulationPhysics()
	}
	if gui.Button(rl.NewRectangle(panelX+216, y, 100, rowH-4), "beginner") {
		g.physics = kart.BeginnerPhysics()
	}

	y += rowH
	manual := gui.CheckBox(rl.NewRectangle(panelX, y, 18, 18), "manual camera", g.cam.ManualControl())
	g.cam.SetManualControl(manual)

	g.player.SetPhysics(g.physics)
}
