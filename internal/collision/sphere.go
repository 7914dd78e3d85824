package collision

import (
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SphereCollider is a sphere volume. The radius is not affected by the
// entity scale.
type SphereCollider struct {
	colliderBase
	radius float32
	center rl.Vector3
}

var _ Collider = (*SphereCollider)(nil)

func NewSphereCollider(radius float32, layer Layer) *SphereCollider {
	return &SphereCollider{
		colliderBase: newColliderBase(layer),
		radius:       radius,
	}
}

func (s *SphereCollider) Shape() Shape { return ShapeSphere }

func (s *SphereCollider) Initialize(r Renderer, entity SpatialEntity) {
	s.bind(r, entity)
}

func (s *SphereCollider) Update(entity SpatialEntity) {
	s.center = s.worldCenter(entity)
	s.updated = true
}

func (s *SphereCollider) CheckCollision(other Collider) bool {
	return testPair(s, other)
}

func (s *SphereCollider) Intersects(ray physics.Ray) (RayCastHit, bool) {
	hit, ok := physics.RayVsSphere(ray, s.Sphere())
	if !ok {
		return RayCastHit{}, false
	}
	return RayCastHit{
		IsHit:    true,
		Position: hit.Position,
		Normal:   hit.Normal,
		Distance: hit.Distance,
		Collider: s,
	}, true
}

func (s *SphereCollider) DrawCollider() {
	if s.renderer == nil {
		return
	}
	s.renderer.DrawSphere(s.Sphere(), s.color)
}

func (s *SphereCollider) OnCollision(other Collider) {
	s.react(s, other)
}

// Sphere returns the world-space volume computed by the last Update.
func (s *SphereCollider) Sphere() physics.Sphere {
	return physics.Sphere{Center: s.center, Radius: s.radius}
}

func (s *SphereCollider) GetWorldPos() rl.Vector3 { return s.center }

func (s *SphereCollider) GetRadius() float32 { return s.radius }

// GetOBB returns the axis-aligned cube circumscribing the sphere.
func (s *SphereCollider) GetOBB() physics.OBB {
	return physics.NewAABBasOBB(s.center, rl.Vector3{X: s.radius, Y: s.radius, Z: s.radius})
}

func (s *SphereCollider) SetRadius(radius float32) { s.radius = radius }

// SetHalfSize has no effect on a sphere.
func (s *SphereCollider) SetHalfSize(rl.Vector3) {}
