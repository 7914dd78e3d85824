package game

import (
	"collide3d/internal/collision"
	"collide3d/internal/components"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const BulletRadius = 0.15

// Bullet is spent by the first enemy or level object it touches and
// expires after Lifetime seconds otherwise.
type Bullet struct {
	characterBase

	Damage   int
	Lifetime float32

	age   float32
	spent bool
}

var _ collision.Character = (*Bullet)(nil)

func NewBullet(damage int, lifetime float32) *Bullet {
	return &Bullet{
		characterBase: newCharacterBase(),
		Damage:        damage,
		Lifetime:      lifetime,
	}
}

// NewBulletObject assembles a bullet game object with its rigidbody, collider
// and behaviour. The rigidbody comes first so the collider sees the moved
// position in the same frame.
func NewBulletObject(name string, origin, direction rl.Vector3, speed, lifetime float32, damage int) (*engine.GameObject, *Bullet) {
	g := engine.NewGameObject(name)
	g.Tags = []string{"bullet"}
	g.Transform.Position = origin

	g.AddComponent(components.NewRigidbody(rl.Vector3Scale(rl.Vector3Normalize(direction), speed)))
	g.AddComponent(components.NewSphereCollider(BulletRadius, collision.LayerBullet))
	bullet := NewBullet(damage, lifetime)
	g.AddComponent(bullet)
	return g, bullet
}

func (b *Bullet) Start() { b.register(b) }

func (b *Bullet) Update(deltaTime float32) {
	b.age += deltaTime
	if b.age >= b.Lifetime {
		b.expire()
	}
}

func (b *Bullet) OnDestroy() { b.release(b) }

func (b *Bullet) OnCollisionAction(other collision.Character) {
	switch other.(type) {
	case *Enemy, *LevelObject:
		b.expire()
	}
}

func (b *Bullet) expire() {
	if b.spent {
		return
	}
	b.spent = true
	b.destroy(b)
}

// Spent reports whether the bullet has hit something or expired.
func (b *Bullet) Spent() bool { return b.spent }
