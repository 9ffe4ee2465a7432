package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// World holds the static collision geometry of a track and answers
// nearest-hit ray queries against it. Queries are synchronous and cheap;
// the kart fires a handful per frame.
type World struct {
	Boxes   []Box
	Spheres []Sphere
	Planes  []Plane
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddBox(box Box) {
	w.Boxes = append(w.Boxes, box)
}

func (w *World) AddSphere(sphere Sphere) {
	w.Spheres = append(w.Spheres, sphere)
}

func (w *World) AddPlane(plane Plane) {
	w.Planes = append(w.Planes, plane)
}

// Clear drops all geometry, e.g. when switching tracks.
func (w *World) Clear() {
	w.Boxes = w.Boxes[:0]
	w.Spheres = w.Spheres[:0]
	w.Planes = w.Planes[:0]
}

// Raycast returns the closest surface hit along the ray within maxDistance,
// checking every shape in the world. The direction is normalized internally.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closest Hit
	closest.Distance = maxDistance
	hit := false

	for _, box := range w.Boxes {
		if h, ok := raycastBox(origin, direction, box, maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			hit = true
		}
	}
	for _, sphere := range w.Spheres {
		if h, ok := raycastSphere(origin, direction, sphere, maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			hit = true
		}
	}
	for _, plane := range w.Planes {
		if h, ok := raycastPlane(origin, direction, plane, maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			hit = true
		}
	}

	return closest, hit
}
