package game

import (
	"fmt"
	"log"

	"github.com/local-optimum/kart-world/internal/camera"
	"github.com/local-optimum/kart-world/internal/kart"
	"github.com/local-optimum/kart-world/internal/netplay"
	"github.com/local-optimum/kart-world/internal/physics"
	"github.com/local-optimum/kart-world/internal/track"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// trackBuilders is the rotation cycled by the track-switch key.
var trackBuilders = []track.Builder{track.Arena, track.Practice}

// Game wires the kart, camera, track and cosmetic collaborators into the
// per-frame pipeline and owns the window loop.
type Game struct {
	world      *physics.World
	track      *track.Track
	trackIndex int

	player *kart.Kart
	cam    *camera.ChaseCamera
	trails *TrailRenderer
	net    *netplay.Client

	physics    kart.KartPhysicsConfig
	showTuning bool
}

// New builds a single-player game on the default arena. serverURL may be
// empty; when set, a failed connection degrades to single-player rather
// than aborting.
func New(serverURL string) *Game {
	world := physics.NewWorld()

	g := &Game{
		world:   world,
		track:   trackBuilders[0](world),
		physics: kart.ArcadePhysics(),
		trails:  NewTrailRenderer(),
		cam:     camera.New(camera.DefaultConfig()),
	}

	g.player = kart.New(1, g.physics, g.track.Spawn, world)
	g.player.SetInput(NewKeyboardInput())
	g.player.SetSkidEmitter(g.trails)

	if serverURL != "" {
		client, err := netplay.Dial(serverURL)
		if err != nil {
			log.Printf("netplay: %v (continuing single-player)", err)
		} else {
			log.Printf("netplay: connected as %s", client.Session())
			g.net = client
		}
	}

	return g
}

// Run opens the window and drives the frame loop until close.
func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "kart-world")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		g.update(dt)
		g.draw()
	}

	if g.net != nil {
		g.net.Close()
	}
}

func (g *Game) update(dt float32) {
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showTuning = !g.showTuning
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.cam.SetManualControl(!g.cam.ManualControl())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.switchTrack()
	}

	g.player.Update(dt)
	g.trails.Update(dt)

	s := &g.player.State
	g.cam.Follow(s.Position, s.Velocity, s.Yaw, s.Reversing(), g.physics.MaxSpeed)
	g.cam.HandleManualInput()
	g.cam.Update(dt, g.track.World)

	if g.net != nil {
		g.net.Publish(g.player.Snapshot())
	}
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.SkyBlue)

	rl.BeginMode3D(g.cam.Camera3D())
	g.drawTrack()
	g.trails.Draw()
	g.drawKart(g.player.State.Position, g.player.State.Yaw, rl.Red)
	g.drawGhosts()
	rl.EndMode3D()

	g.drawHUD()
	if g.showTuning {
		g.drawTuningPanel()
	}

	rl.EndDrawing()
}

// switchTrack rebuilds the shared physics world as the next track in the
// rotation and teleports the kart to its spawn point.
func (g *Game) switchTrack() {
	g.trackIndex = (g.trackIndex + 1) % len(trackBuilders)
	g.track = trackBuilders[g.trackIndex](g.world)
	g.player.SetSpawnConfig(g.track.Spawn)
	g.player.Respawn()
}

func (g *Game) drawHUD() {
	s := &g.player.State
	speedColor := rl.DarkGreen
	if s.Drifting() {
		speedColor = rl.Orange
	}
	rl.DrawText(fmt.Sprintf("%.0f u/s  %s", s.Speed(), s.Mode), 10, 10, 20, speedColor)
	rl.DrawText(g.track.Name, 10, 34, 10, rl.DarkGray)
	rl.DrawText("TAB tuning  C camera  R track  SPACE drift", 10, 48, 10, rl.DarkGray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)
}
