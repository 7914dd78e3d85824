package components

import (
	"collide3d/internal/collision"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColliderComponent attaches a collision volume to its game object. The
// volume follows the object's world transform and stays registered with the
// world's collision manager from Start until OnDestroy.
type ColliderComponent struct {
	engine.BaseComponent
	Collider collision.Collider

	// OnHit fires once per confirmed overlap with the other collider.
	OnHit engine.EventWithArg[collision.Collider]

	manager *collision.Manager
	handle  collision.Handle
}

func NewBoxCollider(halfSize rl.Vector3, layer collision.Layer) *ColliderComponent {
	return &ColliderComponent{Collider: collision.NewBoxCollider(halfSize, layer)}
}

func NewSphereCollider(radius float32, layer collision.Layer) *ColliderComponent {
	return &ColliderComponent{Collider: collision.NewSphereCollider(radius, layer)}
}

func (c *ColliderComponent) Start() {
	g := c.GetGameObject()
	var renderer collision.Renderer
	world := c.World()
	if world != nil {
		renderer = world.ColliderRenderer()
	}

	c.Collider.Initialize(renderer, g)
	c.Collider.SetReaction(func(_, other collision.Collider) {
		c.OnHit.Invoke(other)
	})
	c.Collider.Update(g)

	if world != nil {
		c.manager = world.Collisions()
		c.handle = c.manager.RegisterCollider(c.Collider)
	}
}

func (c *ColliderComponent) Update(deltaTime float32) {
	c.Collider.Update(c.GetGameObject())
}

func (c *ColliderComponent) OnDestroy() {
	if c.manager == nil {
		return
	}
	c.manager.UnregisterCollider(c.Collider)
	c.manager = nil
	c.handle = collision.Handle{}
}

// Registered reports whether the collider is still live in the manager it
// was registered with. A registry clear makes it false.
func (c *ColliderComponent) Registered() bool {
	if c.manager == nil {
		return false
	}
	_, err := c.manager.Resolve(c.handle)
	return err == nil
}

// Owner returns the game object behind a collider, if it is attached to one.
func Owner(c collision.Collider) *engine.GameObject {
	if c == nil {
		return nil
	}
	g, _ := c.Entity().(*engine.GameObject)
	return g
}
