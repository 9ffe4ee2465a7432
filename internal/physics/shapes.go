package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is a static axis-aligned box obstacle.
type Box struct {
	Center rl.Vector3
	Size   rl.Vector3
}

// AABB returns the box extents as a bounding volume.
func (b Box) AABB() AABB {
	return NewAABBFromCenter(b.Center, b.Size)
}

// Sphere is a static sphere obstacle.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// Plane is an infinite horizontal ground plane at height Y with an up-facing
// normal. Rays travelling upward or parallel never hit it.
type Plane struct {
	Y float32
}
