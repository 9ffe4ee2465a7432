package kart

import (
	"math/rand"
	"time"

	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpawnConfig describes where karts (re)spawn on the current track and the
// volume they must stay inside. Replaced wholesale on a track change.
type SpawnConfig struct {
	SpawnPosition rl.Vector3
	SpawnVariance rl.Vector3 // per-axis ± jitter around the spawn position
	Bounds        physics.AABB
}

// RespawnGuard is the safety net against the kart leaving the playable
// volume. Leaving the bounds is treated as "already lost", so the reset is
// a hard teleport, not a smoothed one.
type RespawnGuard struct {
	cfg SpawnConfig
	rng *rand.Rand
}

func NewRespawnGuard(cfg SpawnConfig) *RespawnGuard {
	return &RespawnGuard{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetConfig swaps the active spawn configuration, e.g. on a track change.
func (g *RespawnGuard) SetConfig(cfg SpawnConfig) {
	g.cfg = cfg
}

func (g *RespawnGuard) Config() SpawnConfig {
	return g.cfg
}

// Check tests the kart against the bounds and, when outside on any axis,
// resets it to a jittered spawn position with all motion and inputs
// cleared. Returns true when a respawn happened.
func (g *RespawnGuard) Check(s *State) bool {
	if g.cfg.Bounds.Contains(s.Position) {
		return false
	}
	g.reset(s)
	return true
}

// reset teleports the kart to a jittered spawn position and clears all
// motion and input state.
func (g *RespawnGuard) reset(s *State) {
	s.Position = rl.Vector3{
		X: g.cfg.SpawnPosition.X + g.jitter(g.cfg.SpawnVariance.X),
		Y: g.cfg.SpawnPosition.Y + g.jitter(g.cfg.SpawnVariance.Y),
		Z: g.cfg.SpawnPosition.Z + g.jitter(g.cfg.SpawnVariance.Z),
	}
	s.Velocity = rl.Vector3{}
	s.AngularVelocity = 0
	s.ThrottleInput = 0
	s.SteeringInput = 0
	s.Mode = ModeIdle
	s.Skidding = false
}

// jitter returns a uniform value in [-variance, +variance].
func (g *RespawnGuard) jitter(variance float32) float32 {
	if variance <= 0 {
		return 0
	}
	return (g.rng.Float32()*2 - 1) * variance
}
