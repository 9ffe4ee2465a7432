package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (g *Game) drawTrack() {
	extent := g.track.Extent
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: 2 * extent, Y: 2 * extent}, rl.LightGray)
	rl.DrawGrid(int32(extent/5)*2, 5)

	for _, obstacle := range g.track.Obstacles {
		rl.DrawCubeV(obstacle.Box.Center, obstacle.Box.Size, obstacle.Color)
		rl.DrawCubeWiresV(obstacle.Box.Center, obstacle.Box.Size, rl.Gray)
	}
}

// drawKart copies the simulation pose onto the render transform, one-way.
// The physics core never reads anything back from here.
func (g *Game) drawKart(position rl.Vector3, yaw float32, color rl.Color) {
	body := g.player.Body()
	size := rl.Vector3{X: body.HalfWidth * 2, Y: 0.7, Z: body.HalfLength * 2}

	rl.PushMatrix()
	rl.Translatef(position.X, position.Y, position.Z)
	rl.Rotatef(yaw*180/float32(math.Pi), 0, 1, 0)
	rl.DrawCubeV(rl.Vector3{}, size, color)
	rl.DrawCubeWiresV(rl.Vector3{}, size, rl.Maroon)
	// Nose marker so the heading reads at a glance.
	rl.DrawCubeV(rl.Vector3{Z: body.HalfLength * 0.7, Y: 0.3}, rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}, rl.Maroon)
	rl.PopMatrix()
}

// drawGhosts renders remote karts from their replicated snapshots. The yaw
// is recovered from the two transmitted quaternion components.
func (g *Game) drawGhosts() {
	if g.net == nil {
		return
	}
	for _, snap := range g.net.Remotes() {
		position := rl.Vector3{X: snap.Position.X, Y: snap.Position.Y, Z: snap.Position.Z}
		yaw := 2 * float32(math.Atan2(float64(snap.Rotation.QuaternionY), float64(snap.Rotation.QuaternionW)))
		g.drawKart(position, yaw, rl.Fade(rl.Blue, 0.6))
	}
}
