package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABB returns an empty box ready for Expand.
func NewAABB() AABB {
	var a AABB
	a.Reset()
	return a
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Reset puts the box into the empty state: Min at +Inf and Max at -Inf on every axis.
func (a *AABB) Reset() {
	inf := float32(math.Inf(1))
	a.Min = rl.Vector3{X: inf, Y: inf, Z: inf}
	a.Max = rl.Vector3{X: -inf, Y: -inf, Z: -inf}
}

// Expand grows the box to contain p.
func (a *AABB) Expand(p rl.Vector3) {
	a.Min = rl.Vector3{X: min(a.Min.X, p.X), Y: min(a.Min.Y, p.Y), Z: min(a.Min.Z, p.Z)}
	a.Max = rl.Vector3{X: max(a.Max.X, p.X), Y: max(a.Max.Y, p.Y), Z: max(a.Max.Z, p.Z)}
}

// IsEmpty reports whether no point has been added since the last Reset.
func (a AABB) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

func (a AABB) GetSize() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) GetCenter() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) ContainsPoint(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}
