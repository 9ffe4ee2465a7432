package camera

import (
	"math"

	"github.com/local-optimum/kart-world/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycaster is the slice of the ground query the camera needs for
// obstacle avoidance in manual mode. Satisfied by *physics.World.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool)
}

// Config holds the chase camera tuning. Distances are world units, angles
// radians.
type Config struct {
	NearDistance float32 // follow distance when stationary
	FarDistance  float32 // follow distance at full speed

	MinDistance float32 // manual zoom bounds
	MaxDistance float32

	MinPolarAngle float32
	MaxPolarAngle float32

	BaseHeight float32 // camera height offset when stationary
	HeightDrop float32 // how much the camera lowers at full speed

	LookAheadFactor float32 // focus projection per unit of speed
	LookAheadMax    float32
	IdleLookAhead   float32 // fixed focus distance when nearly stationary

	MaxSwing float32 // azimuth deviation limit from the optimal angle

	FOVNear float32 // field of view at MinDistance
	FOVFar  float32 // field of view at MaxDistance

	OrbitSensitivity float32 // manual drag, radians per pixel
	ZoomSensitivity  float32 // manual wheel, units per notch
}

func DefaultConfig() Config {
	return Config{
		NearDistance:     5,
		FarDistance:      9,
		MinDistance:      2,
		MaxDistance:      18,
		MinPolarAngle:    0.35,
		MaxPolarAngle:    1.35,
		BaseHeight:       2.2,
		HeightDrop:       0.6,
		LookAheadFactor:  0.25,
		LookAheadMax:     4,
		IdleLookAhead:    1.5,
		MaxSwing:         float32(math.Pi) / 6, // 30 degrees
		FOVNear:          50,
		FOVFar:           62,
		OrbitSensitivity: 0.005,
		ZoomSensitivity:  0.8,
	}
}

// Smoothing rates, per second. Reversing flips the optimal azimuth by half
// a turn, so the camera must catch up much faster to stay behind the kart.
const (
	thetaRate        = 5.0
	thetaRateReverse = 10.0
	phiRate          = 6.0
	distanceRate     = 4.0
	fovRate          = 4.0

	followMoveSpeed = 0.5 // below this the kart counts as stationary
)

// ChaseCamera derives a stable third-person pose from kart motion. It
// holds spherical coordinates around a look-at target plus their smoothed
// targets; the actual world position is recomputed from the smoothed
// coordinates every render tick, decoupled from the follow computation
// which only moves the targets.
type ChaseCamera struct {
	cfg Config

	Theta    float32 // azimuth around the target
	Phi      float32 // polar angle from vertical, always within the config bounds
	Distance float32
	Target   rl.Vector3 // look-at point
	Position rl.Vector3

	targetTheta    float32
	targetPhi      float32
	targetDistance float32

	fov       float32
	targetFOV float32

	manual    bool
	reversing bool
}

func New(cfg Config) *ChaseCamera {
	c := &ChaseCamera{
		cfg:            cfg,
		Theta:          math.Pi,
		Phi:            1.0,
		Distance:       cfg.NearDistance,
		targetTheta:    math.Pi,
		targetPhi:      1.0,
		targetDistance: cfg.NearDistance,
		fov:            cfg.FOVNear,
		targetFOV:      cfg.FOVNear,
	}
	c.recomputePosition()
	return c
}

// ManualControl reports whether the camera is in free-orbit mode.
func (c *ChaseCamera) ManualControl() bool {
	return c.manual
}

// SetManualControl switches between free orbit and kart-follow. Entering
// manual mode reconciles the spherical coordinates from the current
// Cartesian pose so the camera does not pop.
func (c *ChaseCamera) SetManualControl(enabled bool) {
	if enabled == c.manual {
		return
	}
	c.manual = enabled
	if enabled {
		c.reconcileFromPosition()
	}
}

// reconcileFromPosition rebuilds theta/phi/distance from wherever the
// camera currently sits relative to its target.
func (c *ChaseCamera) reconcileFromPosition() {
	offset := rl.Vector3Subtract(c.Position, c.Target)
	dist := rl.Vector3Length(offset)
	if dist < 1e-4 {
		return
	}
	c.Distance = clampf(dist, c.cfg.MinDistance, c.cfg.MaxDistance)
	c.Theta = float32(math.Atan2(float64(offset.X), float64(offset.Z)))
	c.Phi = clampf(float32(math.Acos(float64(offset.Y/dist))), c.cfg.MinPolarAngle, c.cfg.MaxPolarAngle)
	c.targetTheta = c.Theta
	c.targetPhi = c.Phi
	c.targetDistance = c.Distance
}

// Follow recomputes the spherical targets from the kart's motion. Only the
// targets move here; smoothing happens in Update.
func (c *ChaseCamera) Follow(pos, vel rl.Vector3, yaw float32, reversing bool, maxSpeed float32) {
	if c.manual {
		return
	}
	c.reversing = reversing

	horizVel := rl.Vector3{X: vel.X, Y: 0, Z: vel.Z}
	speed := rl.Vector3Length(horizVel)
	if maxSpeed <= 0 {
		maxSpeed = 1
	}
	speedRatio := clampf(speed/maxSpeed, 0, 1)

	facing := rl.Vector3{
		X: float32(math.Sin(float64(yaw))),
		Y: 0,
		Z: float32(math.Cos(float64(yaw))),
	}
	if reversing {
		facing = rl.Vector3Scale(facing, -1)
	}

	// Distance pulls back with speed on a gentler-than-linear curve.
	dynDistance := c.cfg.NearDistance +
		(c.cfg.FarDistance-c.cfg.NearDistance)*float32(math.Pow(float64(speedRatio), 0.6))

	// Focus point: ahead along the travel direction when moving, along
	// the facing direction when nearly stationary.
	var ahead rl.Vector3
	if speed > followMoveSpeed {
		dir := rl.Vector3Scale(horizVel, 1/speed)
		reach := speed * c.cfg.LookAheadFactor
		if reach > c.cfg.LookAheadMax {
			reach = c.cfg.LookAheadMax
		}
		ahead = rl.Vector3Scale(dir, reach)
	} else {
		ahead = rl.Vector3Scale(facing, c.cfg.IdleLookAhead)
	}

	// The camera settles lower as speed rises.
	heightOffset := c.cfg.BaseHeight - c.cfg.HeightDrop*speedRatio

	focus := rl.Vector3Add(pos, ahead)
	focus.Y += heightOffset * 0.25
	c.Target = focus

	desired := rl.Vector3Subtract(pos, rl.Vector3Scale(facing, dynDistance))
	desired.Y += heightOffset

	offset := rl.Vector3Subtract(desired, focus)
	dist := rl.Vector3Length(offset)
	if dist < 1e-4 {
		return
	}

	theta := float32(math.Atan2(float64(offset.X), float64(offset.Z)))
	phi := float32(math.Acos(float64(clampf(offset.Y/dist, -1, 1))))

	// Swing constraint: keep the azimuth near the angle directly opposite
	// the movement direction so fast steering cannot whip the camera
	// around. Reversing flips the optimal angle itself, so the clamp is
	// lifted there to let the camera swing through the transition.
	if speed > followMoveSpeed && !reversing {
		moveDir := rl.Vector3Scale(horizVel, 1/speed)
		optimal := float32(math.Atan2(float64(-moveDir.X), float64(-moveDir.Z)))
		deviation := wrapAngle(theta - optimal)
		deviation = clampf(deviation, -c.cfg.MaxSwing, c.cfg.MaxSwing)
		theta = optimal + deviation
	}

	c.targetTheta = theta
	c.targetPhi = clampf(phi, c.cfg.MinPolarAngle, c.cfg.MaxPolarAngle)
	c.targetDistance = dynDistance
	c.targetFOV = c.fovForDistance(dynDistance)
}

// HandleManualInput applies pointer drag and wheel zoom to the targets.
// Only called while manual control is enabled; kart-follow mode keeps
// pointer input disabled by skipping it.
func (c *ChaseCamera) HandleManualInput() {
	if !c.manual {
		return
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		c.targetTheta -= delta.X * c.cfg.OrbitSensitivity
		c.targetPhi = clampf(c.targetPhi-delta.Y*c.cfg.OrbitSensitivity,
			c.cfg.MinPolarAngle, c.cfg.MaxPolarAngle)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.targetDistance = clampf(c.targetDistance-wheel*c.cfg.ZoomSensitivity,
			c.cfg.MinDistance, c.cfg.MaxDistance)
		c.targetFOV = c.fovForDistance(c.targetDistance)
	}
}

// Update smooths the spherical coordinates toward their targets and
// recomputes the world position. The azimuth always takes the shortest
// arc; smoothing is more aggressive while reversing so the camera keeps
// up with the flipped optimal angle.
func (c *ChaseCamera) Update(dt float32, obstacles Raycaster) {
	tRate := float32(thetaRate)
	if c.reversing {
		tRate = thetaRateReverse
	}

	c.Theta += wrapAngle(c.targetTheta-c.Theta) * smoothStep(tRate, dt)
	c.Theta = wrapAngle(c.Theta)
	c.Phi += (c.targetPhi - c.Phi) * smoothStep(phiRate, dt)
	c.Phi = clampf(c.Phi, c.cfg.MinPolarAngle, c.cfg.MaxPolarAngle)
	c.Distance += (c.targetDistance - c.Distance) * smoothStep(distanceRate, dt)
	c.fov += (c.targetFOV - c.fov) * smoothStep(fovRate, dt)

	c.recomputePosition()

	if c.manual && obstacles != nil {
		c.avoidObstacles(obstacles)
	}
}

// recomputePosition converts the smoothed spherical coordinates into the
// Cartesian camera position around the target.
func (c *ChaseCamera) recomputePosition() {
	sinPhi := float32(math.Sin(float64(c.Phi)))
	c.Position = rl.Vector3Add(c.Target, rl.Vector3{
		X: c.Distance * sinPhi * float32(math.Sin(float64(c.Theta))),
		Y: c.Distance * float32(math.Cos(float64(c.Phi))),
		Z: c.Distance * sinPhi * float32(math.Cos(float64(c.Theta))),
	})
}

// avoidObstacles pulls the camera in front of any geometry between the
// target and the desired position so it never clips through walls.
func (c *ChaseCamera) avoidObstacles(obstacles Raycaster) {
	toCamera := rl.Vector3Subtract(c.Position, c.Target)
	dist := rl.Vector3Length(toCamera)
	if dist < 1e-4 {
		return
	}
	dir := rl.Vector3Scale(toCamera, 1/dist)
	if hit, ok := obstacles.Raycast(c.Target, dir, dist); ok {
		pulled := hit.Distance * 0.9
		if pulled < c.cfg.MinDistance {
			pulled = c.cfg.MinDistance
		}
		c.Position = rl.Vector3Add(c.Target, rl.Vector3Scale(dir, pulled))
	}
}

// fovForDistance remaps the camera distance onto the configured field of
// view range. Swapping FOVNear/FOVFar in the config inverts the mapping.
func (c *ChaseCamera) fovForDistance(distance float32) float32 {
	span := c.cfg.MaxDistance - c.cfg.MinDistance
	if span <= 0 {
		return c.cfg.FOVNear
	}
	t := clampf((distance-c.cfg.MinDistance)/span, 0, 1)
	return c.cfg.FOVNear + (c.cfg.FOVFar-c.cfg.FOVNear)*t
}

// Camera3D produces the raylib camera for the current render tick.
func (c *ChaseCamera) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.fov,
		Projection: rl.CameraPerspective,
	}
}

// wrapAngle normalizes an angle into (-pi, pi], so interpolation between
// two azimuths always travels the shorter arc.
func wrapAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// smoothStep converts a per-second rate into a frame interpolation factor,
// capped at 1 so large frame times cannot overshoot.
func smoothStep(rate, dt float32) float32 {
	s := rate * dt
	if s > 1 {
		return 1
	}
	return s
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
