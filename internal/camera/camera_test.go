package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOrbitClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Orbit(10, 500)
	assert.Equal(t, float32(89), c.Pitch)
	assert.Equal(t, float32(-125), c.Yaw)

	c.Orbit(0, -1000)
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestZoomClamps(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(-100)
	assert.Equal(t, c.MinDistance, c.Distance)
	c.Zoom(1000)
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestPositionKeepsDistance(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2, Z: 3})
	c.Yaw, c.Pitch, c.Distance = 0, 0, 10

	pos := c.Position()
	assert.InDelta(t, 11, pos.X, 1e-4)
	assert.InDelta(t, 2, pos.Y, 1e-4)
	assert.InDelta(t, 3, pos.Z, 1e-4)
	assert.InDelta(t, 10, rl.Vector3Distance(pos, c.Target), 1e-4)
}

func TestForwardPointsAtTarget(t *testing.T) {
	c := New(rl.Vector3{})
	c.Yaw = 0

	assert.InDelta(t, -1, c.Forward().X, 1e-6)
	assert.InDelta(t, 0, rl.Vector3DotProduct(c.Forward(), c.Right()), 1e-6)
	assert.InDelta(t, 1, rl.Vector3Length(c.Right()), 1e-6)

	cam := c.GetRaylibCamera()
	assert.Equal(t, c.Target, cam.Target)
	assert.Equal(t, c.Fovy, cam.Fovy)
}
