package world

import (
	"collide3d/internal/collision"
	"collide3d/internal/components"
	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Options struct {
	Logger        *zap.Logger
	LayerRules    *collision.LayerRules
	Renderer      collision.Renderer
	DrawColliders bool
}

// World owns one scene and its collision registry and drives the frame.
type World struct {
	Scene         *engine.Scene
	DrawColliders bool

	logger     *zap.Logger
	collisions *collision.Manager
	renderer   collision.Renderer
	frame      uint64
}

var _ engine.WorldAccess = (*World)(nil)

// FrameStats summarizes one Step.
type FrameStats struct {
	Frame          uint64
	Objects        int
	Colliders      int
	Characters     int
	Pairs          collision.Stats
	CharacterPairs collision.Stats
	Destroyed      int
}

func New(opts Options) *World {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &World{
		Scene:         engine.NewScene("Main"),
		DrawColliders: opts.DrawColliders,
		logger:        logger,
		renderer:      opts.Renderer,
		collisions: collision.NewManager(
			collision.WithLogger(logger.Named("collision")),
			collision.WithLayerRules(opts.LayerRules),
		),
	}
	w.Scene.World = w
	return w
}

func (w *World) Collisions() *collision.Manager { return w.collisions }

func (w *World) ColliderRenderer() collision.Renderer { return w.renderer }

// SpawnObject adds g to the scene and starts it, which registers its colliders.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	g.Start()
}

// Destroy queues g for removal at the end of the current or next Step.
func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.Destroy(g)
}

// Step advances one frame: objects update and their colliders pull the new
// transforms, the collider and character sweeps run, then objects destroyed
// during the frame are released.
func (w *World) Step(deltaTime float32) FrameStats {
	w.frame++
	w.Scene.Update(deltaTime)

	w.collisions.CheckAllCollisions()
	w.collisions.CheckAllCollisionsForGameCharacter()

	destroyed := w.Scene.FlushDestroyed()
	return FrameStats{
		Frame:          w.frame,
		Objects:        len(w.Scene.GameObjects),
		Colliders:      len(w.collisions.Colliders()),
		Characters:     len(w.collisions.Characters()),
		Pairs:          w.collisions.Stats(),
		CharacterPairs: w.collisions.CharacterStats(),
		Destroyed:      destroyed,
	}
}

// Draw outlines every registered collider when collider drawing is on.
func (w *World) Draw() {
	if !w.DrawColliders {
		return
	}
	for _, c := range w.collisions.Colliders() {
		c.DrawCollider()
	}
}

// Raycast casts against every collider whose layer matches mask and maps the
// hit back to its game object.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask collision.Layer) (engine.RaycastResult, bool) {
	ray, err := physics.NewRay(origin, direction, maxDistance)
	if err != nil {
		w.logger.Debug("raycast rejected", zap.Error(err))
		return engine.RaycastResult{}, false
	}
	hit, ok := w.collisions.RayCast(ray, mask)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: components.Owner(hit.Collider),
		Collider:   hit.Collider,
		Point:      hit.Position,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

// Reset empties both registries before dropping the scene objects.
func (w *World) Reset() {
	objects := len(w.Scene.GameObjects)
	w.collisions.ClearCollider()
	w.collisions.ClearGameCharacter()
	w.Scene.Clear()
	w.frame = 0
	w.logger.Info("world reset", zap.Int("objects", objects))
}

// Frame returns the number of steps since creation or the last Reset.
func (w *World) Frame() uint64 { return w.frame }

// RayHitInfo is a display-friendly summary of a raycast hit.
type RayHitInfo struct {
	Hit      bool
	Name     string
	Layer    collision.Layer
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

func DescribeHit(hit engine.RaycastResult) RayHitInfo {
	info := RayHitInfo{
		Hit:      true,
		Name:     "(detached)",
		Point:    hit.Point,
		Normal:   hit.Normal,
		Distance: hit.Distance,
	}
	if hit.GameObject != nil {
		info.Name = hit.GameObject.Name
	}
	if hit.Collider != nil {
		info.Layer = hit.Collider.GetCollisionLayerID()
	}
	return info
}
