package kart

import (
	"testing"

	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func arenaSpawn() SpawnConfig {
	return SpawnConfig{
		SpawnPosition: rl.Vector3{Y: 0.8, Z: -40},
		SpawnVariance: rl.Vector3{X: 4, Z: 2},
		Bounds: physics.AABB{
			Min: rl.Vector3{X: -70, Y: -20, Z: -70},
			Max: rl.Vector3{X: 70, Y: 60, Z: 70},
		},
	}
}

func TestRespawnOutsideBounds(t *testing.T) {
	cfg := arenaSpawn()
	g := NewRespawnGuard(cfg)

	s := State{
		Position:        rl.Vector3{X: 200, Y: -50, Z: 10},
		Velocity:        rl.Vector3{X: 5, Y: -30, Z: 2},
		AngularVelocity: 1.2,
		ThrottleInput:   1,
		SteeringInput:   -0.5,
		Mode:            ModeDrifting,
		Skidding:        true,
	}

	if !g.Check(&s) {
		t.Fatal("kart outside bounds should respawn")
	}

	if dx := abs32(s.Position.X - cfg.SpawnPosition.X); dx > cfg.SpawnVariance.X {
		t.Errorf("respawn x offset %f exceeds variance %f", dx, cfg.SpawnVariance.X)
	}
	if s.Position.Y != cfg.SpawnPosition.Y {
		t.Errorf("respawn y %f, want %f (zero variance)", s.Position.Y, cfg.SpawnPosition.Y)
	}
	if dz := abs32(s.Position.Z - cfg.SpawnPosition.Z); dz > cfg.SpawnVariance.Z {
		t.Errorf("respawn z offset %f exceeds variance %f", dz, cfg.SpawnVariance.Z)
	}

	if (s.Velocity != rl.Vector3{}) {
		t.Errorf("velocity not cleared: %+v", s.Velocity)
	}
	if s.AngularVelocity != 0 || s.ThrottleInput != 0 || s.SteeringInput != 0 {
		t.Error("motion and input state not cleared on respawn")
	}
	if s.Mode != ModeIdle {
		t.Errorf("mode after respawn is %v, want idle", s.Mode)
	}
	if s.Skidding {
		t.Error("skidding flag not cleared on respawn")
	}
}

func TestRespawnInsideBoundsNoop(t *testing.T) {
	g := NewRespawnGuard(arenaSpawn())

	s := State{
		Position: rl.Vector3{X: 10, Y: 0.8, Z: 10},
		Velocity: rl.Vector3{Z: 18},
		Mode:     ModeAccelerating,
	}
	before := s

	if g.Check(&s) {
		t.Fatal("kart inside bounds should not respawn")
	}
	if s != before {
		t.Errorf("state mutated without a respawn: %+v", s)
	}
}

func TestSpawnConfigSwapAndRespawn(t *testing.T) {
	k := New(1, ArcadePhysics(), arenaSpawn(), nil)
	k.State.Position = rl.Vector3{X: 10, Y: 0.8, Z: 10}
	k.State.Velocity = rl.Vector3{Z: 18}
	k.State.Mode = ModeAccelerating

	// Track change: new spawn rules take effect and the kart teleports
	// there immediately, well inside the old bounds or not.
	next := SpawnConfig{
		SpawnPosition: rl.Vector3{X: 50, Y: 0.8, Z: -5},
		Bounds: physics.AABB{
			Min: rl.Vector3{X: -200, Y: -20, Z: -200},
			Max: rl.Vector3{X: 200, Y: 60, Z: 200},
		},
	}
	k.SetSpawnConfig(next)
	k.Respawn()

	if k.State.Position != next.SpawnPosition {
		t.Errorf("respawn position %+v, want %+v", k.State.Position, next.SpawnPosition)
	}
	if (k.State.Velocity != rl.Vector3{}) || k.State.Mode != ModeIdle {
		t.Errorf("respawn did not clear motion state: %+v", k.State)
	}
}

func TestRespawnOnSingleAxisEscape(t *testing.T) {
	g := NewRespawnGuard(arenaSpawn())

	// Only the vertical axis is out of bounds, as after falling through
	// a gap in the floor.
	s := State{Position: rl.Vector3{X: 0, Y: -25, Z: 0}}

	if !g.Check(&s) {
		t.Error("escape on one axis should be enough to trigger a respawn")
	}
}
