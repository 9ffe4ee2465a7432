package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	markLifetime = 4.0 // seconds before a segment fades out completely
	maxMarks     = 1024
	minSegment   = 0.05 // skip segments shorter than this
)

type skidMark struct {
	from rl.Vector3
	to   rl.Vector3
	age  float32
}

// TrailRenderer implements kart.SkidEmitter: it receives wheel positions
// each frame and owns the full lifecycle of the skid marks it lays down,
// from creation through fading to disposal.
type TrailRenderer struct {
	marks []skidMark

	lastWheels  []rl.Vector3
	wasSkidding bool
}

func NewTrailRenderer() *TrailRenderer {
	return &TrailRenderer{
		marks: make([]skidMark, 0, maxMarks),
	}
}

// UpdateSkidMarks implements kart.SkidEmitter. While skidding, each wheel
// extends its trail with a segment from last frame's contact point.
func (t *TrailRenderer) UpdateSkidMarks(skidding bool, wheels []rl.Vector3, velocity rl.Vector3) {
	defer func() {
		t.lastWheels = append(t.lastWheels[:0], wheels...)
		t.wasSkidding = skidding
	}()

	if !skidding || !t.wasSkidding || len(t.lastWheels) != len(wheels) {
		return
	}

	for i, wheel := range wheels {
		from := t.lastWheels[i]
		if rl.Vector3Distance(from, wheel) < minSegment {
			continue
		}
		if len(t.marks) >= maxMarks {
			t.marks = t.marks[1:]
		}
		t.marks = append(t.marks, skidMark{from: from, to: wheel})
	}
}

// Update ages the marks and drops the expired ones.
func (t *TrailRenderer) Update(dt float32) {
	alive := t.marks[:0]
	for _, m := range t.marks {
		m.age += dt
		if m.age < markLifetime {
			alive = append(alive, m)
		}
	}
	t.marks = alive
}

// Draw renders the marks as darkening lines that fade with age. Must run
// inside a 3D drawing block.
func (t *TrailRenderer) Draw() {
	for _, m := range t.marks {
		alpha := 1 - m.age/markLifetime
		rl.DrawLine3D(m.from, m.to, rl.Fade(rl.DarkGray, alpha*0.8))
	}
}
