package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere is a world-space sphere volume.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// SphereVsSphere reports whether two spheres overlap. Touching counts.
func SphereVsSphere(a, b Sphere) bool {
	return rl.Vector3Distance(a.Center, b.Center) <= a.Radius+b.Radius
}

// SphereVsOBB reports whether a sphere overlaps an OBB. The sphere center is
// clamped to the box in the box's local frame and the resulting closest
// point is compared against the radius in world space.
func SphereVsOBB(s Sphere, o OBB) bool {
	closest := o.ClosestPoint(s.Center)
	return rl.Vector3Distance(s.Center, closest) <= s.Radius
}

// OBBVsOBB tests if two OBBs intersect using the Separating Axis Theorem
func OBBVsOBB(a, b OBB) bool {
	// Vector from A's center to B's center
	t := rl.Vector3Subtract(b.Center, a.Center)

	// 15 candidate axes:
	// - 3 face normals from A
	// - 3 face normals from B
	// - 9 cross products of edges (A's edges x B's edges)
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}

	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			// Skip near-zero axes (parallel edges)
			length := rl.Vector3Length(axis)
			if length <= parallelEpsilon {
				continue
			}
			axis = rl.Vector3Scale(axis, 1/length)
			if !overlapOnAxis(a, b, axis, t) {
				return false
			}
		}
	}

	return true
}
