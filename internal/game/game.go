package game

import (
	"fmt"
	"time"

	"collide3d/internal/camera"
	"collide3d/internal/collision"
	"collide3d/internal/config"
	"collide3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	shootCooldown = 0.15
	pickDistance  = 200
	panelWidth    = 260
)

var pickLayers = []collision.Layer{
	collision.LayerPlayer,
	collision.LayerEnemy,
	collision.LayerBullet,
	collision.LayerLevelObject,
}

var (
	colorPanel     = rl.NewColor(25, 25, 35, 230)
	colorHighlight = rl.Yellow
)

// Game is the interactive demo: an arena of characters, an orbit camera and
// a debug panel showing what the collision sweeps did.
type Game struct {
	Config *config.Config
	World  *world.World
	Arena  *Arena
	Camera *camera.OrbitCamera

	logger    *zap.Logger
	paused    bool
	timeScale float32
	lastShot  float64
	stats     world.FrameStats

	selected      collision.Collider
	selectedColor rl.Color
	lastHit       world.RayHitInfo
	pickMask      collision.Layer

	// Debug timing (ms)
	stepMs float64
	drawMs float64
}

func New(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	rules, err := cfg.LayerRules()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		Config: cfg,
		World: world.New(world.Options{
			Logger:        logger,
			LayerRules:    rules,
			Renderer:      world.RaylibRenderer{},
			DrawColliders: cfg.Debug.DrawColliders,
		}),
		Camera:    camera.New(rl.Vector3{}),
		logger:    logger,
		timeScale: 1,
		pickMask:  collision.LayerAll,
	}, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "collide3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)

	g.reset()
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) reset() {
	g.World.Reset()
	g.selected = nil
	g.lastHit = world.RayHitInfo{}
	g.Arena = BuildArena(g.World, g.Config.Arena)

	g.Arena.Player.OnDeath.AddListener(func() {
		g.logger.Info("player died", zap.Uint64("frame", g.World.Frame()))
	})
	for _, e := range g.Arena.Enemies {
		e.OnKilled.AddListener(func() {
			g.logger.Info("enemy killed", zap.Stringer("id", e.ID()), zap.Int("alive", g.Arena.AliveEnemies()))
		})
	}
	g.logger.Info("arena built",
		zap.Int("enemies", len(g.Arena.Enemies)),
		zap.Int("levelObjects", len(g.Arena.LevelObjects)),
		zap.Int("colliders", len(g.World.Collisions().Colliders())),
	)
}

func (g *Game) Update() {
	if rl.IsKeyPressed(rl.KeyR) {
		g.reset()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.World.DrawColliders = !g.World.DrawColliders
	}

	g.Camera.HandleInput()
	g.handlePlayerInput()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.GetMouseX() > panelWidth {
		g.pick()
	}

	if !g.paused {
		start := time.Now()
		g.stats = g.World.Step(rl.GetFrameTime() * g.timeScale)
		g.stepMs = float64(time.Since(start).Microseconds()) / 1000.0
	}

	if player := g.Arena.Player; player.GetGameObject() != nil {
		g.Camera.Target = player.GetGameObject().WorldPosition()
	}
}

func (g *Game) handlePlayerInput() {
	player := g.Arena.Player
	forward, right := g.Camera.Forward(), g.Camera.Right()

	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	player.Move = move

	if rl.IsKeyDown(rl.KeySpace) && rl.GetTime()-g.lastShot >= shootCooldown {
		if player.Fire(forward) != nil {
			g.lastShot = rl.GetTime()
		}
	}
}

// pick casts a ray from the mouse and highlights the nearest collider.
func (g *Game) pick() {
	if g.selected != nil {
		g.selected.SetColor(g.selectedColor)
		g.selected = nil
	}

	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.Camera.GetRaylibCamera())
	hit, ok := g.World.Raycast(ray.Position, ray.Direction, pickDistance, g.pickMask)
	if !ok {
		g.lastHit = world.RayHitInfo{}
		return
	}

	g.selected = hit.Collider
	g.selectedColor = hit.Collider.Color()
	hit.Collider.SetColor(colorHighlight)
	g.lastHit = world.DescribeHit(hit)
	g.logger.Debug("ray hit", zap.String("object", g.lastHit.Name), zap.Float32("distance", hit.Distance))
}

func (g *Game) Draw() {
	start := time.Now()
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	rl.DrawGrid(int32(g.Config.Arena.Radius*2), 1)
	g.World.Draw()
	if g.lastHit.Hit {
		rl.DrawSphere(g.lastHit.Point, 0.08, colorHighlight)
		rl.DrawLine3D(g.lastHit.Point, rl.Vector3Add(g.lastHit.Point, g.lastHit.Normal), colorHighlight)
	}
	rl.EndMode3D()

	g.drawUI()
	rl.EndDrawing()
	g.drawMs = float64(time.Since(start).Microseconds()) / 1000.0
}

func (g *Game) drawUI() {
	rl.DrawRectangle(0, 0, panelWidth, int32(rl.GetScreenHeight()), colorPanel)

	y := int32(10)
	line := func(text string, color rl.Color) {
		rl.DrawText(text, 10, y, 16, color)
		y += 20
	}

	rl.DrawFPS(10, y)
	y += 26
	line("WASD move, Space fire", rl.LightGray)
	line("Right drag orbit, wheel zoom", rl.LightGray)
	line("Click pick, R reset, P pause", rl.LightGray)
	y += 6

	player := g.Arena.Player
	line(fmt.Sprintf("Health: %d/%d", player.Health, player.MaxHealth), healthColor(player))
	line(fmt.Sprintf("Enemies: %d/%d", g.Arena.AliveEnemies(), len(g.Arena.Enemies)), rl.RayWhite)
	line(fmt.Sprintf("Crate contacts: %d", player.Contacts()), rl.RayWhite)
	y += 6

	s := g.stats
	line(fmt.Sprintf("Frame %d  objects %d", s.Frame, s.Objects), rl.Green)
	line(fmt.Sprintf("Colliders %d  characters %d", s.Colliders, s.Characters), rl.Green)
	line(fmt.Sprintf("Pairs: %d tested %d filtered", s.Pairs.PairTests, s.Pairs.Filtered), rl.Green)
	line(fmt.Sprintf("Overlaps: %d  char %d", s.Pairs.Overlaps, s.CharacterPairs.Overlaps), rl.Green)
	line(fmt.Sprintf("Step %.2f ms  draw %.2f ms", g.stepMs, g.drawMs), rl.Lime)
	y += 10

	g.World.DrawColliders = gui.CheckBox(rl.Rectangle{X: 10, Y: float32(y), Width: 16, Height: 16}, "Draw colliders", g.World.DrawColliders)
	y += 26
	g.paused = gui.CheckBox(rl.Rectangle{X: 10, Y: float32(y), Width: 16, Height: 16}, "Paused", g.paused)
	y += 26
	g.timeScale = gui.Slider(rl.Rectangle{X: 10, Y: float32(y), Width: 150, Height: 16}, "", fmt.Sprintf("x%.2f", g.timeScale), g.timeScale, 0.1, 2)
	y += 30

	line("Pick layers", rl.LightGray)
	for _, layer := range pickLayers {
		on := gui.CheckBox(rl.Rectangle{X: 10, Y: float32(y), Width: 16, Height: 16}, layer.String(), g.pickMask.Matches(layer))
		if on {
			g.pickMask |= layer
		} else {
			g.pickMask &^= layer
		}
		y += 22
	}
	y += 8

	if g.lastHit.Hit {
		line("Ray hit: "+g.lastHit.Name, colorHighlight)
		line(fmt.Sprintf("  layer %s  dist %.2f", g.lastHit.Layer, g.lastHit.Distance), colorHighlight)
	}
}

func healthColor(p *Player) rl.Color {
	switch {
	case p.Dead():
		return rl.Red
	case p.Invulnerable():
		return rl.Orange
	default:
		return rl.RayWhite
	}
}
