package collision

import (
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape tags the closed set of collider variants.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeSphere
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// SpatialEntity is the read-only transform a collider tracks. It is queried
// once per Update and never owned by the collider.
type SpatialEntity interface {
	GetPosition() rl.Vector3
	GetRotation() rl.Matrix
	GetScale() rl.Vector3
}

// Renderer draws collider outlines. Calls are fire-and-forget.
type Renderer interface {
	DrawBox(obb physics.OBB, color rl.Color)
	DrawSphere(sphere physics.Sphere, color rl.Color)
}

// ReactionFunc is called on self when the manager confirms an overlap with other.
type ReactionFunc func(self, other Collider)

// RayCastHit is the result of a ray query. Collider is a lookup reference only.
type RayCastHit struct {
	IsHit    bool
	Position rl.Vector3
	Normal   rl.Vector3
	Distance float32
	Collider Collider
}

// Collider is the capability set shared by every collision volume.
//
// Update must run before any test in the same frame. SetHalfSize is only
// honoured by boxes and SetRadius only by spheres; the other variant ignores
// the call.
type Collider interface {
	Shape() Shape

	Initialize(r Renderer, entity SpatialEntity)
	Update(entity SpatialEntity)
	CheckCollision(other Collider) bool
	Intersects(ray physics.Ray) (RayCastHit, bool)
	DrawCollider()
	OnCollision(other Collider)
	SetReaction(fn ReactionFunc)

	GetWorldPos() rl.Vector3
	GetRadius() float32
	GetOBB() physics.OBB
	SetRadius(radius float32)
	SetHalfSize(halfSize rl.Vector3)
	SetOffset(offset rl.Vector3)

	GetCollisionLayerID() Layer
	SetCollisionLayer(layer Layer)
	Color() rl.Color
	SetColor(c rl.Color)
	Entity() SpatialEntity
	Updated() bool
}

// colliderBase holds the state every variant shares.
type colliderBase struct {
	layer    Layer
	color    rl.Color
	offset   rl.Vector3
	entity   SpatialEntity
	renderer Renderer
	reaction ReactionFunc

	initialized bool
	updated     bool
}

func newColliderBase(layer Layer) colliderBase {
	return colliderBase{layer: layer, color: rl.Green}
}

func (c *colliderBase) bind(r Renderer, entity SpatialEntity) {
	assertf(!c.initialized, "collider initialized twice")
	c.renderer = r
	c.entity = entity
	c.initialized = true
}

// worldCenter applies the offset in the entity's rotated frame.
func (c *colliderBase) worldCenter(entity SpatialEntity) rl.Vector3 {
	pos := entity.GetPosition()
	if c.offset == (rl.Vector3{}) {
		return pos
	}
	return rl.Vector3Add(pos, rl.Vector3Transform(c.offset, entity.GetRotation()))
}

func (c *colliderBase) react(self, other Collider) {
	if c.reaction != nil {
		c.reaction(self, other)
	}
}

func (c *colliderBase) SetReaction(fn ReactionFunc)   { c.reaction = fn }
func (c *colliderBase) SetOffset(offset rl.Vector3)   { c.offset = offset }
func (c *colliderBase) GetCollisionLayerID() Layer    { return c.layer }
func (c *colliderBase) SetCollisionLayer(layer Layer) { c.layer = layer }
func (c *colliderBase) Color() rl.Color               { return c.color }
func (c *colliderBase) SetColor(color rl.Color)       { c.color = color }
func (c *colliderBase) Entity() SpatialEntity         { return c.entity }
func (c *colliderBase) Updated() bool                 { return c.updated }
