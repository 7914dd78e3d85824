package physics

import (
	"errors"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrZeroDirection    = errors.New("physics: ray direction has zero length")
	ErrNegativeDistance = errors.New("physics: ray distance is negative")
)

// Ray is a query segment. Direction does not have to be unit length;
// every test normalizes it before use. Distance caps how far the ray travels.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
	Distance  float32
}

// NewRay builds a ray with a normalized direction.
func NewRay(origin, direction rl.Vector3, distance float32) (Ray, error) {
	if isZero(direction) {
		return Ray{}, ErrZeroDirection
	}
	if distance < 0 {
		return Ray{}, ErrNegativeDistance
	}
	return Ray{
		Origin:    origin,
		Direction: rl.Vector3Normalize(direction),
		Distance:  distance,
	}, nil
}

// Valid reports whether the ray can be tested at all.
func (r Ray) Valid() bool {
	return !isZero(r.Direction) && r.Distance >= 0
}

// At returns the point t units along the normalized direction.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(rl.Vector3Normalize(r.Direction), t))
}

// RayHit is the geometric part of a ray intersection.
type RayHit struct {
	Position rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RayVsSphere solves |O + tD - C|^2 = r^2 for the smallest t in [0, Distance].
// When the origin is inside the sphere the exit point is reported.
func RayVsSphere(ray Ray, s Sphere) (RayHit, bool) {
	if !ray.Valid() || s.Radius <= 0 {
		return RayHit{}, false
	}
	dir := rl.Vector3Normalize(ray.Direction)

	oc := rl.Vector3Subtract(ray.Origin, s.Center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - c
	if discriminant < 0 {
		return RayHit{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > ray.Distance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(ray.Origin, rl.Vector3Scale(dir, t))
	normal := rl.Vector3Scale(rl.Vector3Subtract(point, s.Center), 1/s.Radius)

	return RayHit{Position: point, Normal: normal, Distance: t}, true
}

// RayVsOBB runs a slab test against the three local axes of the box.
func RayVsOBB(ray Ray, o OBB) (RayHit, bool) {
	if !ray.Valid() {
		return RayHit{}, false
	}
	dir := rl.Vector3Normalize(ray.Direction)
	toCenter := rl.Vector3Subtract(o.Center, ray.Origin)

	tEnter := float32(math.Inf(-1))
	tExit := float32(math.Inf(1))
	var enterNormal, exitNormal rl.Vector3

	for i := 0; i < 3; i++ {
		axis := o.Axes[i]
		h := o.halfExtent(i)
		e := rl.Vector3DotProduct(axis, toCenter)
		f := rl.Vector3DotProduct(axis, dir)

		if f == 0 {
			// Parallel to this slab: must already be between its planes
			if -e-h > 0 || -e+h < 0 {
				return RayHit{}, false
			}
			continue
		}

		t1 := (e - h) / f
		t2 := (e + h) / f
		// n1 is the face the ray crosses at t1
		n1 := rl.Vector3Negate(axis)
		n2 := axis
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tEnter {
			tEnter = t1
			enterNormal = n1
		}
		if t2 < tExit {
			tExit = t2
			exitNormal = n2
		}
		if tEnter > tExit {
			return RayHit{}, false
		}
	}

	if tExit < 0 || tEnter > ray.Distance {
		return RayHit{}, false
	}

	t, normal := tEnter, enterNormal
	if t < 0 {
		t, normal = tExit, exitNormal
	}
	if t > ray.Distance {
		return RayHit{}, false
	}

	point := rl.Vector3Add(ray.Origin, rl.Vector3Scale(dir, t))
	return RayHit{Position: point, Normal: normal, Distance: t}, true
}

func isZero(v rl.Vector3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
