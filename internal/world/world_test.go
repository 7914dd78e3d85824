package world

import (
	"testing"

	"collide3d/internal/collision"
	"collide3d/internal/components"
	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingRenderer struct {
	boxes   int
	spheres int
}

func (r *recordingRenderer) DrawBox(physics.OBB, rl.Color)       { r.boxes++ }
func (r *recordingRenderer) DrawSphere(physics.Sphere, rl.Color) { r.spheres++ }

func spawnSphere(w *World, name string, pos rl.Vector3, r float32, layer collision.Layer) (*engine.GameObject, *components.ColliderComponent) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	col := components.NewSphereCollider(r, layer)
	g.AddComponent(col)
	w.SpawnObject(g)
	return g, col
}

func TestStepSweepsAfterUpdate(t *testing.T) {
	w := New(Options{})
	mover, moverCol := spawnSphere(w, "mover", rl.Vector3{X: 5}, 1, collision.LayerEnemy)
	_, _ = spawnSphere(w, "target", rl.Vector3{}, 1, collision.LayerEnemy)

	// The body is added after the collider, so the collider sees each move
	// one frame late.
	body := components.NewRigidbody(rl.Vector3{X: -4})
	mover.AddComponent(body)

	hits := 0
	moverCol.OnHit.AddListener(func(collision.Collider) { hits++ })

	stats := w.Step(1)
	assert.Equal(t, 0, hits, "collider refreshed before the body moved this frame")
	assert.Equal(t, 1, stats.Pairs.PairTests)

	stats = w.Step(0)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, stats.Pairs.Overlaps)
	assert.Equal(t, uint64(2), stats.Frame)
	assert.Equal(t, 2, stats.Colliders)
}

func TestDestroyedDuringSweepIsReleased(t *testing.T) {
	w := New(Options{})
	bullet, bulletCol := spawnSphere(w, "bullet", rl.Vector3{}, 0.2, collision.LayerBullet)
	spawnSphere(w, "enemy", rl.Vector3{X: 0.5}, 1, collision.LayerEnemy)

	bulletCol.OnHit.AddListener(func(collision.Collider) { w.Destroy(bullet) })

	stats := w.Step(0.016)
	assert.Equal(t, 1, stats.Destroyed)
	assert.Equal(t, 1, stats.Objects)
	assert.Len(t, w.Collisions().Colliders(), 1)
	assert.Nil(t, w.Scene.FindByUID(bullet.UID))
}

func TestWorldRaycast(t *testing.T) {
	w := New(Options{})
	near, _ := spawnSphere(w, "near", rl.Vector3{Z: -5}, 1, collision.LayerEnemy)
	spawnSphere(w, "far", rl.Vector3{Z: -10}, 1, collision.LayerEnemy)
	spawnSphere(w, "wall", rl.Vector3{Z: -3}, 1, collision.LayerLevelObject)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, collision.LayerEnemy)
	require.True(t, ok)
	assert.Same(t, near, hit.GameObject)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
	assert.InDelta(t, 1, hit.Normal.Z, 1e-5)

	hit, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, collision.LayerAll)
	require.True(t, ok)
	assert.Equal(t, "wall", hit.GameObject.Name)

	_, ok = w.Raycast(rl.Vector3{}, rl.Vector3{}, 100, collision.LayerAll)
	assert.False(t, ok, "zero direction never hits")

	_, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100, collision.LayerAll)
	assert.False(t, ok)
}

func TestDrawOnlyWhenEnabled(t *testing.T) {
	r := &recordingRenderer{}
	w := New(Options{Renderer: r})

	spawnSphere(w, "s", rl.Vector3{}, 1, collision.LayerEnemy)
	g := engine.NewGameObject("box")
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}, collision.LayerLevelObject))
	w.SpawnObject(g)

	w.Draw()
	assert.Zero(t, r.boxes+r.spheres)

	w.DrawColliders = true
	w.Draw()
	assert.Equal(t, 1, r.boxes)
	assert.Equal(t, 1, r.spheres)
}

func TestReset(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	w := New(Options{Logger: zap.New(core)})
	_, col := spawnSphere(w, "a", rl.Vector3{}, 1, collision.LayerEnemy)
	w.Step(0.016)

	w.Reset()

	assert.Empty(t, w.Scene.GameObjects)
	assert.Empty(t, w.Collisions().Colliders())
	assert.Empty(t, w.Collisions().Characters())
	assert.False(t, col.Registered())
	assert.Zero(t, w.Frame())
	assert.Equal(t, 1, logs.FilterMessage("world reset").Len())

	stats := w.Step(0.016)
	assert.Equal(t, collision.Stats{}, stats.Pairs)
}

func TestCustomLayerRules(t *testing.T) {
	rules := collision.NewLayerRules()
	rules.Ignore(collision.LayerEnemy, collision.LayerEnemy)
	w := New(Options{LayerRules: rules})

	spawnSphere(w, "a", rl.Vector3{}, 1, collision.LayerEnemy)
	spawnSphere(w, "b", rl.Vector3{}, 1, collision.LayerEnemy)

	stats := w.Step(0)
	assert.Equal(t, 1, stats.Pairs.Filtered)
	assert.Zero(t, stats.Pairs.Overlaps)
}

func TestBoxEdgesCoverEveryCornerThreeTimes(t *testing.T) {
	var degree [8]int
	for _, e := range BoxEdges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for i, d := range degree {
		assert.Equal(t, 3, d, "corner %d", i)
	}
}

func TestDescribeHit(t *testing.T) {
	w := New(Options{})
	spawnSphere(w, "target", rl.Vector3{Z: -5}, 1, collision.LayerEnemy)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100, collision.LayerAll)
	require.True(t, ok)

	info := DescribeHit(hit)
	assert.True(t, info.Hit)
	assert.Equal(t, "target", info.Name)
	assert.Equal(t, collision.LayerEnemy, info.Layer)
	assert.InDelta(t, 4, info.Distance, 1e-5)

	assert.Equal(t, "(detached)", DescribeHit(engine.RaycastResult{}).Name)
}
