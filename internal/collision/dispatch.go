package collision

import "collide3d/internal/physics"

type pairTest func(a, b Collider) bool

// pairTests is indexed by the shape tags of the two colliders.
var pairTests = [shapeCount][shapeCount]pairTest{
	ShapeBox: {
		ShapeBox:    boxVsBox,
		ShapeSphere: boxVsSphere,
	},
	ShapeSphere: {
		ShapeBox:    sphereVsBox,
		ShapeSphere: sphereVsSphere,
	},
}

func testPair(a, b Collider) bool {
	if a == nil || b == nil {
		return false
	}
	// Shapes outside the table never overlap anything.
	if a.Shape() >= shapeCount || b.Shape() >= shapeCount {
		return false
	}
	return pairTests[a.Shape()][b.Shape()](a, b)
}

func sphereOf(c Collider) physics.Sphere {
	return physics.Sphere{Center: c.GetWorldPos(), Radius: c.GetRadius()}
}

func boxVsBox(a, b Collider) bool {
	return physics.OBBVsOBB(a.GetOBB(), b.GetOBB())
}

func boxVsSphere(a, b Collider) bool {
	return physics.SphereVsOBB(sphereOf(b), a.GetOBB())
}

func sphereVsBox(a, b Collider) bool {
	return physics.SphereVsOBB(sphereOf(a), b.GetOBB())
}

func sphereVsSphere(a, b Collider) bool {
	return physics.SphereVsSphere(sphereOf(a), sphereOf(b))
}
