package game

import (
	"collide3d/internal/collision"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Enemy patrols between two points and loses health to bullets.
type Enemy struct {
	characterBase

	Health int
	Speed  float32
	From   rl.Vector3
	To     rl.Vector3

	// OnKilled fires once, when health reaches zero.
	OnKilled engine.Event

	returning bool
}

var _ collision.Character = (*Enemy)(nil)

func NewEnemy(health int, speed float32, from, to rl.Vector3) *Enemy {
	return &Enemy{
		characterBase: newCharacterBase(),
		Health:        health,
		Speed:         speed,
		From:          from,
		To:            to,
	}
}

func (e *Enemy) Start() { e.register(e) }

func (e *Enemy) Update(deltaTime float32) {
	if e.Speed <= 0 {
		return
	}
	target := e.To
	if e.returning {
		target = e.From
	}

	t := &e.GetGameObject().Transform
	toTarget := rl.Vector3Subtract(target, t.Position)
	dist := rl.Vector3Length(toTarget)
	step := e.Speed * deltaTime
	if dist <= step {
		t.Position = target
		e.returning = !e.returning
		return
	}
	t.Position = rl.Vector3Add(t.Position, rl.Vector3Scale(toTarget, step/dist))
}

func (e *Enemy) OnDestroy() { e.release(e) }

func (e *Enemy) OnCollisionAction(other collision.Character) {
	b, ok := other.(*Bullet)
	if !ok || e.Dead() {
		return
	}
	e.Health = max(e.Health-b.Damage, 0)
	if e.Health == 0 {
		e.OnKilled.Invoke()
		e.destroy(e)
	}
}

func (e *Enemy) Dead() bool { return e.Health <= 0 }

// Returning reports whether the enemy is heading back to From.
func (e *Enemy) Returning() bool { return e.returning }
