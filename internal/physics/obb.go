package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// parallelEpsilon is the cross-product length below which two edge
// directions are treated as parallel and their SAT axis is skipped.
const parallelEpsilon = 0.0001

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated, unit length)
	HalfSize rl.Vector3    // Half-extents along local axes
}

// EulerMatrix builds a rotation matrix from euler angles in degrees,
// applied in X, Y, Z order.
func EulerMatrix(rotation rl.Vector3) rl.Matrix {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// NewOBB creates an OBB from its center, half-extents and a rotation matrix.
// The axes are the matrix basis vectors, normalized so that scale baked into
// the matrix does not leak into the projection math.
func NewOBB(center, halfSize rl.Vector3, rot rl.Matrix) OBB {
	return OBB{
		Center:   center,
		HalfSize: halfSize,
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
		},
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, halfSize rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: halfSize,
		Axes: [3]rl.Vector3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
	}
}

func (o OBB) halfExtent(i int) float32 {
	switch i {
	case 0:
		return o.HalfSize.X
	case 1:
		return o.HalfSize.Y
	default:
		return o.HalfSize.Z
	}
}

// ToLocal expresses a world-space point in the OBB's local frame.
func (o OBB) ToLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// ToWorld maps a point in the OBB's local frame back to world space.
func (o OBB) ToWorld(local rl.Vector3) rl.Vector3 {
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], local.X))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], local.Y))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], local.Z))
	return result
}

// ClosestPoint returns the point on or inside the OBB nearest to p.
func (o OBB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	local := o.ToLocal(p)
	local.X = clampf(local.X, -o.HalfSize.X, o.HalfSize.X)
	local.Y = clampf(local.Y, -o.HalfSize.Y, o.HalfSize.Y)
	local.Z = clampf(local.Z, -o.HalfSize.Z, o.HalfSize.Z)
	return o.ToWorld(local)
}

// Corners returns the 8 world-space corners. Indices 0-3 are the -Z face,
// 4-7 the +Z face, both wound the same way.
func (o OBB) Corners() [8]rl.Vector3 {
	hx, hy, hz := o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z
	local := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}
	var corners [8]rl.Vector3
	for i, c := range local {
		corners[i] = o.ToWorld(c)
	}
	return corners
}

// BoundingAABB returns the world-space AABB enclosing the OBB.
func (o OBB) BoundingAABB() AABB {
	box := NewAABB()
	for _, c := range o.Corners() {
		box.Expand(c)
	}
	return box
}

// projectedRadius is the half-length of the OBB's shadow on axis.
func (o OBB) projectedRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// overlapOnAxis checks if two OBBs overlap when projected onto a given axis.
// t is the vector between the two centers.
func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	distance := absf(rl.Vector3DotProduct(t, axis))
	return distance <= a.projectedRadius(axis)+b.projectedRadius(axis)
}
