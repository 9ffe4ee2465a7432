package kart

// Controls is one frame's worth of raw player input, before smoothing.
type Controls struct {
	Throttle float32 // -1..1, positive accelerates
	Steering float32 // -1..1, positive steers right
	Drift    bool
}

// InputSource is polled once per frame. The second return is false when no
// input is active this frame, which lets the smoothed signals decay toward
// zero instead of snapping.
type InputSource interface {
	Sample() (Controls, bool)
}
