package world

import (
	"collide3d/internal/collision"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// sphereRings and sphereSlices set the wire sphere tessellation.
const (
	sphereRings  = 8
	sphereSlices = 8
)

// RaylibRenderer draws collider outlines with raylib immediate-mode calls.
// It must be used between rl.BeginMode3D and rl.EndMode3D.
type RaylibRenderer struct{}

var _ collision.Renderer = RaylibRenderer{}

func (RaylibRenderer) DrawBox(obb physics.OBB, color rl.Color) {
	corners := obb.Corners()
	for _, e := range BoxEdges {
		rl.DrawLine3D(corners[e[0]], corners[e[1]], color)
	}
}

func (RaylibRenderer) DrawSphere(s physics.Sphere, color rl.Color) {
	rl.DrawSphereWires(s.Center, s.Radius, sphereRings, sphereSlices, color)
}

// BoxEdges indexes the 12 edges of physics.OBB.Corners.
var BoxEdges = [12][2]int{
	// -Z face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// +Z face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
