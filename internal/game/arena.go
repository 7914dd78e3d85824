package game

import (
	"fmt"
	"math"
	"math/rand"

	"collide3d/internal/collision"
	"collide3d/internal/components"
	"collide3d/internal/config"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	PlayerHalfSize = rl.Vector3{X: 0.4, Y: 0.9, Z: 0.4}
	EnemyRadius    = float32(0.6)
)

// clearing keeps level objects away from the player spawn.
const (
	clearing          = 3
	maxPlacementTries = 64
)

// Arena is the set of characters BuildArena placed.
type Arena struct {
	Player       *Player
	Enemies      []*Enemy
	LevelObjects []*LevelObject
}

func NewPlayerObject(pos rl.Vector3, health int, speed float32) (*engine.GameObject, *Player) {
	g := engine.NewGameObject("Player")
	g.Tags = []string{"player"}
	g.Transform.Position = pos

	player := NewPlayer(health, speed)
	g.AddComponent(player)
	col := components.NewBoxCollider(PlayerHalfSize, collision.LayerPlayer)
	col.Collider.SetColor(rl.SkyBlue)
	g.AddComponent(col)
	return g, player
}

func NewEnemyObject(name string, from, to rl.Vector3, health int, speed float32) (*engine.GameObject, *Enemy) {
	g := engine.NewGameObject(name)
	g.Tags = []string{"enemy"}
	g.Transform.Position = from

	enemy := NewEnemy(health, speed, from, to)
	g.AddComponent(enemy)
	col := components.NewSphereCollider(EnemyRadius, collision.LayerEnemy)
	col.Collider.SetColor(rl.Red)
	g.AddComponent(col)
	return g, enemy
}

// NewLevelObjectObject builds a box obstacle yawed by yaw degrees.
func NewLevelObjectObject(name string, pos, halfSize rl.Vector3, yaw float32) (*engine.GameObject, *LevelObject) {
	g := engine.NewGameObject(name)
	g.Tags = []string{"level"}
	g.Transform.Position = pos
	g.Transform.Rotation = rl.Vector3{Y: yaw}

	obj := NewLevelObject()
	g.AddComponent(obj)
	col := components.NewBoxCollider(halfSize, collision.LayerLevelObject)
	col.Collider.SetColor(rl.Gray)
	g.AddComponent(col)
	return g, obj
}

// BuildArena places a player at the origin, enemies patrolling chords of a
// ring and randomly yawed crates. Placement is deterministic for a seed.
func BuildArena(w engine.WorldAccess, cfg config.ArenaConfig) *Arena {
	rng := rand.New(rand.NewSource(cfg.Seed))
	arena := &Arena{}

	g, player := NewPlayerObject(rl.Vector3{Y: PlayerHalfSize.Y}, cfg.PlayerHealth, cfg.PlayerSpeed)
	player.BulletSpeed = cfg.BulletSpeed
	player.BulletLifetime = cfg.BulletLifetime
	player.BulletDamage = cfg.BulletDamage
	w.SpawnObject(g)
	arena.Player = player

	ring := cfg.Radius * 0.6
	for i := range cfg.Enemies {
		angle := float64(i) * 2 * math.Pi / float64(cfg.Enemies)
		sweep := 0.5 + rng.Float64()*0.5
		from := ringPoint(ring, angle, EnemyRadius)
		to := ringPoint(ring, angle+sweep, EnemyRadius)

		g, enemy := NewEnemyObject(fmt.Sprintf("Enemy_%d", i), from, to, cfg.EnemyHealth, cfg.EnemySpeed)
		w.SpawnObject(g)
		arena.Enemies = append(arena.Enemies, enemy)
	}

	for i := range cfg.LevelObjects {
		half := rl.Vector3{
			X: 0.5 + rng.Float32(),
			Y: 0.5 + rng.Float32(),
			Z: 0.5 + rng.Float32(),
		}
		pos := placeCrate(rng, cfg.Radius, half)
		yaw := rng.Float32() * 90

		g, obj := NewLevelObjectObject(fmt.Sprintf("Crate_%d", i), pos, half, yaw)
		w.SpawnObject(g)
		arena.LevelObjects = append(arena.LevelObjects, obj)
	}

	return arena
}

// placeCrate samples the arena square until the crate clears the spawn. Small
// arenas fall back to the edge of the clearing.
func placeCrate(rng *rand.Rand, radius float32, half rl.Vector3) rl.Vector3 {
	minDist := clearing + float64(rl.Vector3Length(half))
	for range maxPlacementTries {
		x := (rng.Float32()*2 - 1) * radius
		z := (rng.Float32()*2 - 1) * radius
		if math.Hypot(float64(x), float64(z)) > minDist {
			return rl.Vector3{X: x, Y: half.Y, Z: z}
		}
	}
	return ringPoint(float32(minDist), rng.Float64()*2*math.Pi, half.Y)
}

func ringPoint(radius float32, angle float64, y float32) rl.Vector3 {
	return rl.Vector3{
		X: radius * float32(math.Cos(angle)),
		Y: y,
		Z: radius * float32(math.Sin(angle)),
	}
}

// AliveEnemies counts enemies that still have health.
func (a *Arena) AliveEnemies() int {
	n := 0
	for _, e := range a.Enemies {
		if !e.Dead() {
			n++
		}
	}
	return n
}
