package track

import (
	"testing"

	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestArenaSpawnInsideBounds(t *testing.T) {
	a := Arena(physics.NewWorld())

	if !a.Spawn.Bounds.Contains(a.Spawn.SpawnPosition) {
		t.Fatalf("spawn %+v outside the respawn bounds", a.Spawn.SpawnPosition)
	}

	// The jitter must not be able to place a kart outside the bounds or
	// inside a wall.
	v := a.Spawn.SpawnVariance
	corners := []rl.Vector3{
		{X: a.Spawn.SpawnPosition.X - v.X, Y: a.Spawn.SpawnPosition.Y, Z: a.Spawn.SpawnPosition.Z - v.Z},
		{X: a.Spawn.SpawnPosition.X + v.X, Y: a.Spawn.SpawnPosition.Y, Z: a.Spawn.SpawnPosition.Z + v.Z},
	}
	for _, corner := range corners {
		if !a.Spawn.Bounds.Contains(corner) {
			t.Errorf("jittered spawn %+v outside the respawn bounds", corner)
		}
		for _, obstacle := range a.Obstacles {
			if obstacle.Box.AABB().Contains(corner) {
				t.Errorf("jittered spawn %+v inside obstacle at %+v", corner, obstacle.Box.Center)
			}
		}
	}
}

func TestObstaclesRespectSpawnClearance(t *testing.T) {
	for _, build := range []Builder{Arena, Practice} {
		a := build(physics.NewWorld())
		clearance := a.spawnClearance()
		for _, obstacle := range a.Obstacles {
			if obstacle.Box.AABB().Intersects(clearance) {
				t.Errorf("%s: obstacle at %+v encroaches on the spawn clearance",
					a.Name, obstacle.Box.Center)
			}
		}
	}
}

func TestBuildersReplaceWorldGeometry(t *testing.T) {
	w := physics.NewWorld()

	a := Arena(w)
	if len(w.Boxes) == 0 {
		t.Fatal("arena added no boxes")
	}
	if a.World != w {
		t.Fatal("track does not share the provided world")
	}

	p := Practice(w)
	if len(w.Boxes) != 0 {
		t.Errorf("practice field should have no boxes, world kept %d", len(w.Boxes))
	}
	if len(w.Planes) != 1 {
		t.Errorf("practice field should have exactly one ground plane, got %d", len(w.Planes))
	}
	if !p.Spawn.Bounds.Contains(p.Spawn.SpawnPosition) {
		t.Errorf("practice spawn %+v outside its bounds", p.Spawn.SpawnPosition)
	}
}

func TestArenaGroundUnderSpawn(t *testing.T) {
	a := Arena(physics.NewWorld())

	origin := rl.Vector3Add(a.Spawn.SpawnPosition, rl.Vector3{Y: 1})
	hit, ok := a.World.Raycast(origin, rl.Vector3{Y: -1}, 5)
	if !ok {
		t.Fatal("no ground under the spawn point")
	}
	if hit.Point.Y != 0 {
		t.Errorf("ground under spawn at y=%f, want 0", hit.Point.Y)
	}
}

func TestArenaWallsEncloseTheField(t *testing.T) {
	a := Arena(physics.NewWorld())

	center := rl.Vector3{Y: 1.5}
	for _, dir := range []rl.Vector3{
		{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
	} {
		if _, ok := a.World.Raycast(center, dir, 2*a.Extent); !ok {
			t.Errorf("no wall along %+v within the arena extent", dir)
		}
	}
}
