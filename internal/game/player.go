package game

import (
	"fmt"

	"collide3d/internal/collision"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultInvulnerability = 1.0 // seconds after a hit during which enemies do no damage
	muzzleOffset           = 0.8
)

// Player is driven by Move and Fire; the demo feeds them from input.
type Player struct {
	characterBase

	Health          int
	MaxHealth       int
	Speed           float32
	Invulnerability float32

	// Move is the desired direction on the XZ plane for the next Update.
	Move rl.Vector3

	// BulletSpeed, BulletLifetime and BulletDamage configure Fire.
	BulletSpeed    float32
	BulletLifetime float32
	BulletDamage   int

	OnDamaged engine.EventWithArg[int]
	OnDeath   engine.Event

	invulnerable float32
	contacts     int
	shots        int
}

var _ collision.Character = (*Player)(nil)

func NewPlayer(health int, speed float32) *Player {
	return &Player{
		characterBase:   newCharacterBase(),
		Health:          health,
		MaxHealth:       health,
		Speed:           speed,
		Invulnerability: DefaultInvulnerability,
		BulletSpeed:     20,
		BulletLifetime:  2,
		BulletDamage:    1,
	}
}

func (p *Player) Start() { p.register(p) }

func (p *Player) Update(deltaTime float32) {
	p.invulnerable = max(p.invulnerable-deltaTime, 0)
	if p.Dead() {
		return
	}

	dir := rl.Vector3{X: p.Move.X, Z: p.Move.Z}
	if dir != (rl.Vector3{}) {
		dir = rl.Vector3Normalize(dir)
		t := &p.GetGameObject().Transform
		t.Position = rl.Vector3Add(t.Position, rl.Vector3Scale(dir, p.Speed*deltaTime))
	}
}

func (p *Player) OnDestroy() { p.release(p) }

func (p *Player) OnCollisionAction(other collision.Character) {
	switch other.(type) {
	case *Enemy:
		p.takeHit(1)
	case *LevelObject:
		p.contacts++
	}
}

func (p *Player) takeHit(damage int) {
	if p.Dead() || p.invulnerable > 0 {
		return
	}
	p.Health = max(p.Health-damage, 0)
	p.invulnerable = p.Invulnerability
	p.OnDamaged.Invoke(p.Health)
	if p.Health == 0 {
		p.OnDeath.Invoke()
	}
}

func (p *Player) Dead() bool { return p.Health <= 0 }

// Invulnerable reports whether the player is inside its post-hit window.
func (p *Player) Invulnerable() bool { return p.invulnerable > 0 }

// Contacts counts character-level overlaps with level objects.
func (p *Player) Contacts() int { return p.contacts }

// Fire spawns a bullet travelling along direction from just in front of the
// player. It returns nil when the player is dead, direction is zero or the
// player is not in a world.
func (p *Player) Fire(direction rl.Vector3) *Bullet {
	world := p.World()
	if world == nil || p.Dead() || direction == (rl.Vector3{}) {
		return nil
	}
	dir := rl.Vector3Normalize(direction)
	origin := rl.Vector3Add(p.GetGameObject().WorldPosition(), rl.Vector3Scale(dir, muzzleOffset))

	p.shots++
	g, bullet := NewBulletObject(fmt.Sprintf("Bullet_%d", p.shots), origin, dir, p.BulletSpeed, p.BulletLifetime, p.BulletDamage)
	world.SpawnObject(g)
	return bullet
}
