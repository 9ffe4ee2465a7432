package kart

// Kart owns one player's simulation state and runs the per-frame pipeline:
// input sampling, motion integration, collision resolution, respawn check,
// skid emission. The camera and renderer read the resulting state by
// value and never mutate it.
//
// Kart-vs-kart contact is not modelled; remote karts are ghosts. The
// resolver's averaged-normal response would extend to an equal-mass
// impulse exchange if that ever changes.
type Kart struct {
	ID    int
	State State

	body     Body
	motion   *MotionModel
	resolver *Resolver
	guard    *RespawnGuard

	input  InputSource
	ground GroundQuery
	skid   SkidEmitter
}

// New creates a kart at the configured spawn position, facing +Z.
func New(id int, cfg KartPhysicsConfig, spawn SpawnConfig, ground GroundQuery) *Kart {
	body := DefaultBody()
	k := &Kart{
		ID:       id,
		body:     body,
		motion:   NewMotionModel(cfg, body),
		resolver: NewResolver(cfg, body),
		guard:    NewRespawnGuard(spawn),
		ground:   ground,
	}
	k.State.Position = spawn.SpawnPosition
	return k
}

// SetInput attaches the input source polled each frame. A nil source
// leaves the kart coasting.
func (k *Kart) SetInput(src InputSource) {
	k.input = src
}

// SetSkidEmitter attaches the trail collaborator. Optional.
func (k *Kart) SetSkidEmitter(emitter SkidEmitter) {
	k.skid = emitter
}

// SetPhysics swaps the tuning constants for the motion model and resolver
// together, e.g. from the live tuning panel.
func (k *Kart) SetPhysics(cfg KartPhysicsConfig) {
	k.motion.SetConfig(cfg)
	k.resolver.SetConfig(cfg)
}

// Physics returns the active (sanitized) tuning constants.
func (k *Kart) Physics() KartPhysicsConfig {
	return k.motion.Config()
}

// SetSpawnConfig swaps the spawn point and bounds, e.g. on a track change.
func (k *Kart) SetSpawnConfig(cfg SpawnConfig) {
	k.guard.SetConfig(cfg)
}

// Respawn teleports the kart to the configured spawn point immediately,
// regardless of where it currently is. Used after a track change.
func (k *Kart) Respawn() {
	k.guard.reset(&k.State)
}

// Update advances the kart by one frame. Everything runs synchronously
// inside the frame; nothing here blocks.
func (k *Kart) Update(dt float32) {
	var raw *Controls
	if k.input != nil {
		if c, ok := k.input.Sample(); ok {
			raw = &c
		}
	}

	k.motion.Step(&k.State, raw, dt, k.ground)
	k.resolver.Resolve(&k.State, k.ground)
	k.guard.Check(&k.State)

	if k.skid != nil {
		k.skid.UpdateSkidMarks(k.State.Skidding, k.WheelPositions(), k.State.Velocity)
	}
}

// Snapshot returns the replicated wire state for this frame.
func (k *Kart) Snapshot() Snapshot {
	return ProjectState(k.ID, &k.State)
}

// Body returns the collision footprint, for renderers that draw the kart.
func (k *Kart) Body() Body {
	return k.body
}
