package camera

import (
	"math"
	"testing"

	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const dt = float32(1.0 / 60.0)

func TestAzimuthTakesShortestArc(t *testing.T) {
	c := New(DefaultConfig())
	c.Theta = 3.0
	c.targetTheta = -3.0

	c.Update(dt, nil)

	// The short way from 3.0 to -3.0 crosses pi, so theta must move in
	// the positive direction (or already be wrapped past it), never back
	// through zero.
	if c.Theta < 3.0 && c.Theta > -3.0 {
		t.Errorf("theta %f took the long arc through zero", c.Theta)
	}
}

func TestAzimuthConvergesAcrossWrap(t *testing.T) {
	c := New(DefaultConfig())
	c.Theta = 3.0
	c.targetTheta = -3.0

	for i := 0; i < 300; i++ {
		c.Update(dt, nil)
	}

	if diff := wrapAngle(c.Theta - c.targetTheta); float32(math.Abs(float64(diff))) > 0.01 {
		t.Errorf("theta %f never converged on target %f", c.Theta, c.targetTheta)
	}
}

func TestPolarAngleAlwaysClamped(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	c.targetPhi = 3.0

	for i := 0; i < 120; i++ {
		c.Update(dt, nil)
		if c.Phi > cfg.MaxPolarAngle || c.Phi < cfg.MinPolarAngle {
			t.Fatalf("phi %f escaped bounds [%f, %f]", c.Phi, cfg.MinPolarAngle, cfg.MaxPolarAngle)
		}
	}
}

func TestFollowDistanceTracksSpeed(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	pos := rl.Vector3{Y: 0.8}

	c.Follow(pos, rl.Vector3{}, 0, false, 30)
	if c.targetDistance != cfg.NearDistance {
		t.Errorf("stationary distance %f, want %f", c.targetDistance, cfg.NearDistance)
	}

	c.Follow(pos, rl.Vector3{Z: 30}, 0, false, 30)
	if math.Abs(float64(c.targetDistance-cfg.FarDistance)) > 1e-4 {
		t.Errorf("full-speed distance %f, want %f", c.targetDistance, cfg.FarDistance)
	}

	c.Follow(pos, rl.Vector3{Z: 15}, 0, false, 30)
	if c.targetDistance <= cfg.NearDistance || c.targetDistance >= cfg.FarDistance {
		t.Errorf("half-speed distance %f should fall between %f and %f",
			c.targetDistance, cfg.NearDistance, cfg.FarDistance)
	}
}

func TestFollowClampsAzimuthSwing(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)

	// Sideways slide: the kart faces +X while its momentum carries it
	// along +Z, pulling the raw camera angle far off the movement axis.
	pos := rl.Vector3{Y: 0.8}
	vel := rl.Vector3{Z: 20}
	yaw := float32(math.Pi / 2)

	c.Follow(pos, vel, yaw, false, 30)

	optimal := float32(math.Pi) // directly behind +Z travel
	deviation := wrapAngle(c.targetTheta - optimal)
	if abs := float32(math.Abs(float64(deviation))); abs > cfg.MaxSwing+1e-4 {
		t.Errorf("azimuth deviation %f exceeds the swing limit %f", abs, cfg.MaxSwing)
	}
	if deviation == 0 {
		t.Error("sideways slide should still pull the camera off the optimal angle")
	}
}

func TestFollowReversingPlacesCameraAhead(t *testing.T) {
	c := New(DefaultConfig())

	// Reversing along -Z with the nose still on +Z: the camera belongs on
	// the +Z side, looking back over the kart.
	c.Follow(rl.Vector3{Y: 0.8}, rl.Vector3{Z: -10}, 0, true, 30)

	if abs := float32(math.Abs(float64(wrapAngle(c.targetTheta)))); abs > 0.3 {
		t.Errorf("reversing azimuth target %f, want near zero", c.targetTheta)
	}
}

func TestFollowIgnoredInManualMode(t *testing.T) {
	c := New(DefaultConfig())
	c.manual = true

	theta, phi, dist := c.targetTheta, c.targetPhi, c.targetDistance
	c.Follow(rl.Vector3{Y: 0.8}, rl.Vector3{Z: 25}, 1.2, false, 30)

	if c.targetTheta != theta || c.targetPhi != phi || c.targetDistance != dist {
		t.Error("manual mode camera targets moved on Follow")
	}
}

func TestManualReconcileRoundTrip(t *testing.T) {
	c := New(DefaultConfig())

	wantTheta, wantPhi, wantDist := float32(0.7), float32(1.1), float32(6)
	sinPhi := float32(math.Sin(float64(wantPhi)))
	c.Target = rl.Vector3{X: 2, Y: 1, Z: -3}
	c.Position = rl.Vector3Add(c.Target, rl.Vector3{
		X: wantDist * sinPhi * float32(math.Sin(float64(wantTheta))),
		Y: wantDist * float32(math.Cos(float64(wantPhi))),
		Z: wantDist * sinPhi * float32(math.Cos(float64(wantTheta))),
	})

	c.SetManualControl(true)

	if math.Abs(float64(c.Theta-wantTheta)) > 1e-4 {
		t.Errorf("reconciled theta %f, want %f", c.Theta, wantTheta)
	}
	if math.Abs(float64(c.Phi-wantPhi)) > 1e-4 {
		t.Errorf("reconciled phi %f, want %f", c.Phi, wantPhi)
	}
	if math.Abs(float64(c.Distance-wantDist)) > 1e-4 {
		t.Errorf("reconciled distance %f, want %f", c.Distance, wantDist)
	}
}

func TestManualObstacleAvoidance(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	c.manual = true
	c.Target = rl.Vector3{Y: 1}
	c.Theta, c.targetTheta = 0, 0
	c.Phi, c.targetPhi = 1.35, 1.35
	c.Distance, c.targetDistance = 10, 10

	world := physics.NewWorld()
	world.AddBox(physics.Box{
		Center: rl.Vector3{Y: 2, Z: 5},
		Size:   rl.Vector3{X: 10, Y: 10, Z: 1},
	})

	c.Update(dt, world)

	offset := rl.Vector3Subtract(c.Position, c.Target)
	if d := rl.Vector3Length(offset); d > 5 {
		t.Errorf("camera at distance %f should have been pulled in front of the wall", d)
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4 * math.Pi, 0},
	}
	for _, tc := range cases {
		if got := wrapAngle(tc.in); math.Abs(float64(got-tc.want)) > 1e-5 {
			t.Errorf("wrapAngle(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestFOVRemap(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)

	if got := c.fovForDistance(cfg.MinDistance); got != cfg.FOVNear {
		t.Errorf("fov at min distance %f, want %f", got, cfg.FOVNear)
	}
	if got := c.fovForDistance(cfg.MaxDistance); got != cfg.FOVFar {
		t.Errorf("fov at max distance %f, want %f", got, cfg.FOVFar)
	}
	mid := c.fovForDistance((cfg.MinDistance + cfg.MaxDistance) / 2)
	if mid <= cfg.FOVNear || mid >= cfg.FOVFar {
		t.Errorf("mid-range fov %f should fall between %f and %f", mid, cfg.FOVNear, cfg.FOVFar)
	}
}
