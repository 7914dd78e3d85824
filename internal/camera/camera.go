package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target   rl.Vector3
	Yaw      float32
	Pitch    float32
	Distance float32
	Fovy     float32

	LookSpeed   float32 // degrees per pixel of mouse drag
	ZoomSpeed   float32 // distance per wheel notch
	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Yaw:         -135.0,
		Pitch:       45.0,
		Distance:    25.0,
		Fovy:        60.0,
		LookSpeed:   0.3,
		ZoomSpeed:   1.5,
		MinDistance: 3.0,
		MaxDistance: 80.0,
	}
}

// HandleInput orbits while the right mouse button is held and zooms with the wheel.
func (c *OrbitCamera) HandleInput() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		c.Orbit(d.X*c.LookSpeed, d.Y*c.LookSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(-wheel * c.ZoomSpeed)
	}
}

// Orbit rotates around the target. Pitch stays within (-89, 89) degrees.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = min(max(c.Pitch+dPitch, -89), 89)
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = min(max(c.Distance+delta, c.MinDistance), c.MaxDistance)
}

// Position is the eye position implied by yaw, pitch and distance.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	offset := rl.Vector3{
		X: float32(math.Cos(pitchRad) * math.Cos(yawRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Cos(pitchRad) * math.Sin(yawRad)),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

// Forward is the unit view direction projected on the XZ plane.
func (c *OrbitCamera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: -float32(math.Cos(yawRad)), Z: -float32(math.Sin(yawRad))}
}

// Right is the unit right direction on the XZ plane.
func (c *OrbitCamera) Right() rl.Vector3 {
	f := c.Forward()
	return rl.Vector3{X: -f.Z, Z: f.X}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
