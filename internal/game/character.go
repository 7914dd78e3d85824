package game

import (
	"collide3d/internal/collision"
	"collide3d/internal/components"
	"collide3d/internal/engine"

	"github.com/google/uuid"
)

// characterBase is embedded by every behaviour. It registers the owning
// character with the world's collision manager on Start and releases both
// the character and its collider when the behaviour is done.
type characterBase struct {
	engine.BaseComponent
	id      uuid.UUID
	manager *collision.Manager
}

func newCharacterBase() characterBase {
	return characterBase{id: uuid.New()}
}

func (c *characterBase) ID() uuid.UUID { return c.id }

// Collider returns the volume of the sibling ColliderComponent.
func (c *characterBase) Collider() collision.Collider {
	g := c.GetGameObject()
	if g == nil {
		return nil
	}
	col := engine.GetComponent[*components.ColliderComponent](g)
	if col == nil {
		return nil
	}
	return col.Collider
}

func (c *characterBase) register(self collision.Character) {
	world := c.World()
	if world == nil {
		return
	}
	c.manager = world.Collisions()
	c.manager.RegisterGameCharacter(self)
}

// release unregisters right away. Inside a sweep the manager skips self for
// the remaining pairs.
func (c *characterBase) release(self collision.Character) {
	if c.manager == nil {
		return
	}
	c.manager.UnregisterGameCharacter(self)
	if col := c.Collider(); col != nil {
		c.manager.UnregisterCollider(col)
	}
	c.manager = nil
}

// Registered reports whether the character still takes part in sweeps.
func (c *characterBase) Registered() bool { return c.manager != nil }

func (c *characterBase) destroy(self collision.Character) {
	c.release(self)
	if world := c.World(); world != nil {
		world.Destroy(c.GetGameObject())
	}
}
