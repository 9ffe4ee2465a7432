package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit describes the nearest surface found along a ray.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

func raycastBox(origin, direction rl.Vector3, box Box, maxDistance float32) (Hit, bool) {
	halfSize := rl.Vector3{X: abs(box.Size.X) / 2, Y: abs(box.Size.Y) / 2, Z: abs(box.Size.Z) / 2}
	min := rl.Vector3Subtract(box.Center, halfSize)
	max := rl.Vector3Add(box.Center, halfSize)

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return Hit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return Hit{}, false
	}

	if tmin > tmax {
		return Hit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return Hit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from whichever face the hit point lies on
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere Sphere, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, sphere.Center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, sphere.Center))

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func raycastPlane(origin, direction rl.Vector3, plane Plane, maxDistance float32) (Hit, bool) {
	// Only downward-travelling rays can hit the ground
	if direction.Y >= -1e-6 {
		return Hit{}, false
	}
	t := (plane.Y - origin.Y) / direction.Y
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return Hit{Point: point, Normal: rl.Vector3{X: 0, Y: 1, Z: 0}, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
