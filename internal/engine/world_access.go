package engine

import (
	"collide3d/internal/collision"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastResult holds information about a raycast hit.
type RaycastResult struct {
	GameObject *GameObject
	Collider   collision.Collider
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	Collisions() *collision.Manager
	ColliderRenderer() collision.Renderer
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask collision.Layer) (RaycastResult, bool)
}
