package components

import (
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody moves its object kinematically. Overlaps never push it; they
// are reported to reaction callbacks only.
type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Damping         float32    // fraction of velocity lost per second, 0 keeps it
	Frozen          bool
}

func NewRigidbody(velocity rl.Vector3) *Rigidbody {
	return &Rigidbody{Velocity: velocity}
}

func (r *Rigidbody) Update(deltaTime float32) {
	if r.Frozen {
		return
	}
	t := &r.GetGameObject().Transform
	t.Position = rl.Vector3Add(t.Position, rl.Vector3Scale(r.Velocity, deltaTime))
	t.Rotation = rl.Vector3Add(t.Rotation, rl.Vector3Scale(r.AngularVelocity, deltaTime))

	if r.Damping > 0 {
		keep := max(1-r.Damping*deltaTime, 0)
		r.Velocity = rl.Vector3Scale(r.Velocity, keep)
		r.AngularVelocity = rl.Vector3Scale(r.AngularVelocity, keep)
	}
}

// Stop zeroes both velocities.
func (r *Rigidbody) Stop() {
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
}
