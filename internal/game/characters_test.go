package game

import (
	"testing"

	"collide3d/internal/collision"
	"collide3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnEnemy(w *world.World, name string, pos rl.Vector3, health int) *Enemy {
	g, e := NewEnemyObject(name, pos, pos, health, 0)
	w.SpawnObject(g)
	return e
}

func spawnBullet(w *world.World, name string, pos rl.Vector3, lifetime float32) *Bullet {
	g, b := NewBulletObject(name, pos, rl.Vector3{X: 1}, 0, lifetime, 1)
	w.SpawnObject(g)
	return b
}

func TestBulletDamagesEnemyUntilKilled(t *testing.T) {
	w := world.New(world.Options{})
	enemy := spawnEnemy(w, "enemy", rl.Vector3{}, 2)
	killed := 0
	enemy.OnKilled.AddListener(func() { killed++ })

	first := spawnBullet(w, "b1", rl.Vector3{X: 0.3}, 10)
	stats := w.Step(0.016)
	assert.Equal(t, 1, enemy.Health)
	assert.True(t, first.Spent())
	assert.Equal(t, 1, stats.Destroyed)
	assert.Len(t, w.Collisions().Characters(), 1)
	assert.Len(t, w.Collisions().Colliders(), 1)

	spawnBullet(w, "b2", rl.Vector3{X: -0.3}, 10)
	stats = w.Step(0.016)
	assert.True(t, enemy.Dead())
	assert.Equal(t, 1, killed)
	assert.Equal(t, 2, stats.Destroyed)
	assert.Empty(t, w.Scene.GameObjects)
	assert.Empty(t, w.Collisions().Characters())
	assert.Empty(t, w.Collisions().Colliders())
}

func TestBulletIsSpentByFirstEnemy(t *testing.T) {
	w := world.New(world.Options{})
	a := spawnEnemy(w, "a", rl.Vector3{}, 3)
	b := spawnEnemy(w, "b", rl.Vector3{X: 0.5}, 3)
	bullet := spawnBullet(w, "bullet", rl.Vector3{X: 0.2}, 10)

	stats := w.Step(0.016)
	assert.Equal(t, 2, a.Health)
	assert.Equal(t, 3, b.Health, "bullet released before its second pair")
	assert.True(t, bullet.Spent())
	assert.Equal(t, 1, stats.CharacterPairs.Skipped)
}

func TestBulletExpires(t *testing.T) {
	w := world.New(world.Options{})
	bullet := spawnBullet(w, "bullet", rl.Vector3{}, 0.5)

	w.Step(0.3)
	assert.False(t, bullet.Spent())
	assert.True(t, bullet.Registered())

	stats := w.Step(0.3)
	assert.True(t, bullet.Spent())
	assert.False(t, bullet.Registered())
	assert.Equal(t, 1, stats.Destroyed)
	assert.Equal(t, 0, stats.Objects)
}

func TestBulletMovesAlongDirection(t *testing.T) {
	w := world.New(world.Options{})
	g, _ := NewBulletObject("bullet", rl.Vector3{}, rl.Vector3{Z: -2}, 10, 5, 1)
	w.SpawnObject(g)

	w.Step(0.5)
	assert.InDelta(t, -5, g.Transform.Position.Z, 1e-5)
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	w := world.New(world.Options{})
	g, player := NewPlayerObject(rl.Vector3{}, 3, 0)
	w.SpawnObject(g)
	spawnEnemy(w, "enemy", rl.Vector3{X: 0.5}, 3)

	var damaged []int
	player.OnDamaged.AddListener(func(health int) { damaged = append(damaged, health) })

	w.Step(0.1)
	assert.Equal(t, 2, player.Health)
	assert.True(t, player.Invulnerable())

	w.Step(0.1)
	assert.Equal(t, 2, player.Health, "still inside the window")

	w.Step(1)
	assert.Equal(t, 1, player.Health)
	assert.Equal(t, []int{2, 1}, damaged)
}

func TestPlayerDeath(t *testing.T) {
	w := world.New(world.Options{})
	g, player := NewPlayerObject(rl.Vector3{}, 1, 5)
	w.SpawnObject(g)
	spawnEnemy(w, "enemy", rl.Vector3{X: 0.5}, 3)

	deaths := 0
	player.OnDeath.AddListener(func() { deaths++ })

	w.Step(0.1)
	require.True(t, player.Dead())
	assert.Equal(t, 1, deaths)

	player.Move = rl.Vector3{X: 1}
	w.Step(2)
	assert.Equal(t, rl.Vector3{}, g.Transform.Position)
	assert.Equal(t, 1, deaths)
	assert.Nil(t, player.Fire(rl.Vector3{Z: -1}))
}

func TestPlayerMovesOnGround(t *testing.T) {
	w := world.New(world.Options{})
	g, player := NewPlayerObject(rl.Vector3{}, 3, 4)
	w.SpawnObject(g)

	player.Move = rl.Vector3{X: 3, Y: 5}
	w.Step(0.5)
	assert.InDelta(t, 2, g.Transform.Position.X, 1e-5)
	assert.InDelta(t, 0, g.Transform.Position.Y, 1e-5)
}

func TestLevelObjectContacts(t *testing.T) {
	w := world.New(world.Options{})
	g, player := NewPlayerObject(rl.Vector3{}, 3, 0)
	w.SpawnObject(g)

	half := rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	cg, crate := NewLevelObjectObject("crate", rl.Vector3{X: 0.5}, half, 0)
	w.SpawnObject(cg)
	og, other := NewLevelObjectObject("other", rl.Vector3{X: 1.5}, half, 45)
	w.SpawnObject(og)

	stats := w.Step(0.016)
	assert.Equal(t, 1, player.Contacts())
	assert.Equal(t, 1, crate.Contacts())
	assert.Equal(t, 0, other.Contacts())
	assert.Equal(t, 1, stats.CharacterPairs.Filtered, "crates ignore each other")
	assert.Equal(t, 3, player.Health)
}

func TestEnemyPatrolFlipsAtEnds(t *testing.T) {
	w := world.New(world.Options{})
	g, enemy := NewEnemyObject("enemy", rl.Vector3{}, rl.Vector3{X: 2}, 3, 1)
	w.SpawnObject(g)

	w.Step(1)
	assert.InDelta(t, 1, g.Transform.Position.X, 1e-5)
	assert.False(t, enemy.Returning())

	w.Step(1.5)
	assert.Equal(t, rl.Vector3{X: 2}, g.Transform.Position)
	assert.True(t, enemy.Returning())

	w.Step(1)
	assert.InDelta(t, 1, g.Transform.Position.X, 1e-5)

	w.Step(5)
	assert.Equal(t, rl.Vector3{}, g.Transform.Position)
	assert.False(t, enemy.Returning())
}

func TestFireSpawnsBullet(t *testing.T) {
	w := world.New(world.Options{})
	g, player := NewPlayerObject(rl.Vector3{Y: 0.9}, 3, 0)
	w.SpawnObject(g)

	bullet := player.Fire(rl.Vector3{Z: -3})
	require.NotNil(t, bullet)
	bg := bullet.GetGameObject()
	assert.Equal(t, "Bullet_1", bg.Name)
	assert.InDelta(t, -0.8, bg.Transform.Position.Z, 1e-5)
	assert.InDelta(t, 0.9, bg.Transform.Position.Y, 1e-5)
	assert.Equal(t, collision.LayerBullet, bullet.Collider().GetCollisionLayerID())
	assert.Len(t, w.Collisions().Characters(), 2)

	stats := w.Step(0.01)
	assert.Equal(t, 1, stats.CharacterPairs.Filtered, "own shots are ignored")
	assert.Equal(t, 3, player.Health)

	assert.Nil(t, player.Fire(rl.Vector3{}))
}

func TestFireOutsideWorld(t *testing.T) {
	_, player := NewPlayerObject(rl.Vector3{}, 3, 0)
	assert.Nil(t, player.Fire(rl.Vector3{Z: -1}))
}

func TestCharactersHaveDistinctIDs(t *testing.T) {
	a, b := NewEnemy(1, 0, rl.Vector3{}, rl.Vector3{}), NewEnemy(1, 0, rl.Vector3{}, rl.Vector3{})
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Nil(t, a.Collider(), "no game object yet")
}
