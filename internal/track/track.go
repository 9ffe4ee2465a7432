package track

import (
	"github.com/local-optimum/kart-world/internal/kart"
	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Obstacle is a drawable piece of track geometry. The physics world holds
// its own copy of the shape; this list exists for the renderer.
type Obstacle struct {
	Box   physics.Box
	Color rl.Color
}

// Track bundles the collision world, the renderable geometry and the spawn
// rules for one playable arena.
type Track struct {
	Name      string
	World     *physics.World
	Obstacles []Obstacle
	Spawn     kart.SpawnConfig
	Extent    float32 // half-size of the playable square, for the ground grid
}

// Builder populates a physics world with one track's geometry. The game
// cycles through builders at runtime, reusing the same world so the karts'
// ground queries stay valid across a switch.
type Builder func(*physics.World) *Track

// Arena builds the default playable area: a flat ground plane, four border
// walls and a scattering of block obstacles to bounce off. Any geometry
// already in w is replaced.
func Arena(w *physics.World) *Track {
	const (
		half       = 60.0
		wallHeight = 3.0
		wallThick  = 1.0
	)

	w.Clear()
	t := &Track{
		Name:   "arena",
		World:  w,
		Extent: half,
	}

	t.Spawn = kart.SpawnConfig{
		SpawnPosition: rl.Vector3{X: 0, Y: 0.8, Z: -40},
		SpawnVariance: rl.Vector3{X: 4, Y: 0, Z: 2},
		Bounds: physics.AABB{
			Min: rl.Vector3{X: -half - 10, Y: -20, Z: -half - 10},
			Max: rl.Vector3{X: half + 10, Y: 60, Z: half + 10},
		},
	}

	w.AddPlane(physics.Plane{Y: 0})

	walls := []physics.Box{
		{Center: rl.Vector3{X: 0, Y: wallHeight / 2, Z: half}, Size: rl.Vector3{X: 2 * half, Y: wallHeight, Z: wallThick}},
		{Center: rl.Vector3{X: 0, Y: wallHeight / 2, Z: -half}, Size: rl.Vector3{X: 2 * half, Y: wallHeight, Z: wallThick}},
		{Center: rl.Vector3{X: half, Y: wallHeight / 2, Z: 0}, Size: rl.Vector3{X: wallThick, Y: wallHeight, Z: 2 * half}},
		{Center: rl.Vector3{X: -half, Y: wallHeight / 2, Z: 0}, Size: rl.Vector3{X: wallThick, Y: wallHeight, Z: 2 * half}},
	}
	for _, wall := range walls {
		t.addObstacle(wall, rl.DarkGray)
	}

	blocks := []physics.Box{
		{Center: rl.Vector3{X: 18, Y: 1.5, Z: 12}, Size: rl.Vector3{X: 6, Y: 3, Z: 6}},
		{Center: rl.Vector3{X: -22, Y: 1.5, Z: 20}, Size: rl.Vector3{X: 8, Y: 3, Z: 4}},
		{Center: rl.Vector3{X: -14, Y: 1.5, Z: -28}, Size: rl.Vector3{X: 5, Y: 3, Z: 10}},
		{Center: rl.Vector3{X: 30, Y: 1.5, Z: -18}, Size: rl.Vector3{X: 4, Y: 3, Z: 4}},
		{Center: rl.Vector3{X: 2, Y: 1.5, Z: 36}, Size: rl.Vector3{X: 10, Y: 3, Z: 3}},
	}
	for _, b := range blocks {
		t.addObstacle(b, rl.Beige)
	}

	return t
}

// Practice builds an open flat field with nothing to hit, for tuning runs
// and drift practice. Any geometry already in w is replaced.
func Practice(w *physics.World) *Track {
	const half = 120.0

	w.Clear()
	t := &Track{
		Name:   "practice",
		World:  w,
		Extent: half,
	}

	t.Spawn = kart.SpawnConfig{
		SpawnPosition: rl.Vector3{X: 0, Y: 0.8, Z: 0},
		SpawnVariance: rl.Vector3{X: 6, Y: 0, Z: 6},
		Bounds: physics.AABB{
			Min: rl.Vector3{X: -half, Y: -20, Z: -half},
			Max: rl.Vector3{X: half, Y: 60, Z: half},
		},
	}

	w.AddPlane(physics.Plane{Y: 0})
	return t
}

// addObstacle registers a box with both the physics world and the render
// list. Boxes that encroach on the spawn clearance are skipped so jittered
// respawns can never materialize inside geometry.
func (t *Track) addObstacle(box physics.Box, color rl.Color) {
	if box.AABB().Intersects(t.spawnClearance()) {
		return
	}
	t.World.AddBox(box)
	t.Obstacles = append(t.Obstacles, Obstacle{Box: box, Color: color})
}

// spawnClearance is the volume around the spawn point kept free of
// geometry: the full jitter range plus a kart length of margin on each
// side.
func (t *Track) spawnClearance() physics.AABB {
	v := t.Spawn.SpawnVariance
	return physics.NewAABBFromCenter(t.Spawn.SpawnPosition,
		rl.Vector3{X: 2*v.X + 4, Y: 4, Z: 2*v.Z + 4})
}
