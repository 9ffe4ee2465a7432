package kart

import "math"

// Vec3 is the wire form of a position. Field names are part of the
// replication format; remote peers key on them.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Rotation carries only the Y and W quaternion components. The kart
// rotates around the vertical axis alone, so X and Z are always zero and
// never sent.
type Rotation struct {
	QuaternionY float32 `json:"quaternionY"`
	QuaternionW float32 `json:"quaternionW"`
}

// SnapshotStateDefault is the placeholder for the reserved state field.
const SnapshotStateDefault = 0

// Snapshot is the compact replicated kart state handed to the networking
// layer once per frame. It always reflects the authoritative local values;
// no smoothing happens here.
type Snapshot struct {
	ID       int      `json:"id"`
	Position Vec3     `json:"position"`
	Rotation Rotation `json:"rotation"`
	State    int      `json:"state"`
}

// ProjectState maps the kart state to its wire form. The quaternion for a
// pure yaw rotation is (0, sin(yaw/2), 0, cos(yaw/2)).
func ProjectState(id int, s *State) Snapshot {
	half := float64(s.Yaw) / 2
	return Snapshot{
		ID: id,
		Position: Vec3{
			X: s.Position.X,
			Y: s.Position.Y,
			Z: s.Position.Z,
		},
		Rotation: Rotation{
			QuaternionY: float32(math.Sin(half)),
			QuaternionW: float32(math.Cos(half)),
		},
		State: SnapshotStateDefault,
	}
}
