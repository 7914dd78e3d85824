// Headless all-pairs benchmark of the collision registry over random
// spheres and boxes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"collide3d/internal/collision"
	"collide3d/internal/logging"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// body is a bare transform; the bench does not need a scene.
type body struct {
	position rl.Vector3
	rotation rl.Matrix
	scale    rl.Vector3
}

func (b *body) GetPosition() rl.Vector3 { return b.position }

func (b *body) GetRotation() rl.Matrix { return b.rotation }

func (b *body) GetScale() rl.Vector3 { return b.scale }

func main() {
	iterations := flag.Int("iterations", 10, "sweeps timed per count")
	seed := flag.Int64("seed", 42, "random seed")
	boxShare := flag.Float64("boxes", 0.5, "fraction of colliders that are boxes")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: "info", Development: true})
	if err != nil {
		panic(fmt.Sprintf("Failed to init logging: %v", err))
	}
	defer logger.Sync()

	testCounts := []int{100, 250, 500, 1000, 2000}
	for _, count := range testCounts {
		benchSweep(logger, count, max(*iterations, 1), *seed, *boxShare)
	}
}

func benchSweep(logger *zap.Logger, count, iterations int, seed int64, boxShare float64) {
	rng := rand.New(rand.NewSource(seed))
	m := collision.NewManager(collision.WithLayerRules(collision.NewLayerRules()))

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0

	for range count {
		b := &body{
			position: rl.Vector3{
				X: rng.Float32()*spawnSize - spawnSize/2,
				Y: rng.Float32()*spawnSize - spawnSize/2,
				Z: rng.Float32()*spawnSize - spawnSize/2,
			},
			rotation: physics.EulerMatrix(rl.Vector3{X: rng.Float32() * 360, Y: rng.Float32() * 360, Z: rng.Float32() * 360}),
			scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		}

		var c collision.Collider
		if rng.Float64() < boxShare {
			c = collision.NewBoxCollider(rl.Vector3{
				X: 0.5 + rng.Float32()*0.5,
				Y: 0.5 + rng.Float32()*0.5,
				Z: 0.5 + rng.Float32()*0.5,
			}, collision.LayerLevelObject)
		} else {
			c = collision.NewSphereCollider(0.5+rng.Float32()*0.5, collision.LayerEnemy)
		}
		c.Initialize(nil, b)
		c.Update(b)
		m.RegisterCollider(c)
	}

	// Warm up
	m.CheckAllCollisions()

	start := time.Now()
	for range iterations {
		m.CheckAllCollisions()
	}
	perSweep := time.Since(start) / time.Duration(iterations)

	stats := m.Stats()
	logger.Info("sweep",
		zap.Int("colliders", count),
		zap.Int("pairTests", stats.PairTests),
		zap.Int("overlaps", stats.Overlaps),
		zap.Duration("perSweep", perSweep.Round(time.Microsecond)),
	)
	fmt.Printf("%5d colliders: %8d pair tests %5d overlaps | %10v per sweep\n",
		count, stats.PairTests, stats.Overlaps, perSweep.Round(time.Microsecond))
}
