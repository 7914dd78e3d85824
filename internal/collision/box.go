package collision

import (
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an oriented box volume. HalfSize is in the entity's local
// units; Update multiplies it by the entity scale.
type BoxCollider struct {
	colliderBase
	halfSize rl.Vector3
	obb      physics.OBB
}

var _ Collider = (*BoxCollider)(nil)

func NewBoxCollider(halfSize rl.Vector3, layer Layer) *BoxCollider {
	return &BoxCollider{
		colliderBase: newColliderBase(layer),
		halfSize:     halfSize,
	}
}

func (b *BoxCollider) Shape() Shape { return ShapeBox }

func (b *BoxCollider) Initialize(r Renderer, entity SpatialEntity) {
	b.bind(r, entity)
}

// Update rebuilds the OBB from the entity's current transform. Axes are
// taken fresh from the rotation matrix every call.
func (b *BoxCollider) Update(entity SpatialEntity) {
	scale := entity.GetScale()
	half := rl.Vector3{
		X: absf(b.halfSize.X * scale.X),
		Y: absf(b.halfSize.Y * scale.Y),
		Z: absf(b.halfSize.Z * scale.Z),
	}
	b.obb = physics.NewOBB(b.worldCenter(entity), half, entity.GetRotation())
	b.updated = true
}

func (b *BoxCollider) CheckCollision(other Collider) bool {
	return testPair(b, other)
}

func (b *BoxCollider) Intersects(ray physics.Ray) (RayCastHit, bool) {
	hit, ok := physics.RayVsOBB(ray, b.obb)
	if !ok {
		return RayCastHit{}, false
	}
	return RayCastHit{
		IsHit:    true,
		Position: hit.Position,
		Normal:   hit.Normal,
		Distance: hit.Distance,
		Collider: b,
	}, true
}

func (b *BoxCollider) DrawCollider() {
	if b.renderer == nil {
		return
	}
	b.renderer.DrawBox(b.obb, b.color)
}

func (b *BoxCollider) OnCollision(other Collider) {
	b.react(b, other)
}

func (b *BoxCollider) GetWorldPos() rl.Vector3 { return b.obb.Center }

// GetOBB returns the world-space box computed by the last Update.
func (b *BoxCollider) GetOBB() physics.OBB { return b.obb }

// GetRadius returns the radius of the sphere circumscribing the box.
func (b *BoxCollider) GetRadius() float32 {
	return rl.Vector3Length(b.obb.HalfSize)
}

// HalfSize returns the unscaled local half-extents.
func (b *BoxCollider) HalfSize() rl.Vector3 { return b.halfSize }

func (b *BoxCollider) SetHalfSize(halfSize rl.Vector3) { b.halfSize = halfSize }

// SetRadius has no effect on a box.
func (b *BoxCollider) SetRadius(float32) {}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
