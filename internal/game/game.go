// Package game implements the main game loop and state management.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/assets"
	"github.com/Faultbox/skydrop/internal/config"
	"github.com/Faultbox/skydrop/internal/engine/debug"
	"github.com/Faultbox/skydrop/internal/engine/frame"
	"github.com/Faultbox/skydrop/internal/engine/input"
	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/engine/renderer"
	"github.com/Faultbox/skydrop/internal/engine/scene"
	"github.com/Faultbox/skydrop/internal/engine/shader"
	"github.com/Faultbox/skydrop/internal/engine/window"
	"github.com/Faultbox/skydrop/internal/game/controls"
	"github.com/Faultbox/skydrop/internal/game/stage"
	"github.com/Faultbox/skydrop/internal/game/world"
	"github.com/Faultbox/skydrop/internal/logger"
)

const title = "skydrop"

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	program  *shader.Program
	library  *scene.Library
	frame    *frame.Renderer
	shots    *debug.ScreenshotCapture

	world     *world.World
	mapper    *controls.Mapper
	meshes    stage.Meshes
	drawables []frame.Drawable
}

// New creates a new game instance. Any failure is fatal: shader, model and
// texture errors are returned before the first frame.
func New(cfg *config.Config) (_ *Game, err error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("light", cfg.Lighting.LightKind),
		zap.String("shading", cfg.Lighting.ShadingKind),
	)

	pipeline, err := stage.Pipeline(cfg.Lighting)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:    cfg,
		drawables: make([]frame.Drawable, 0, 8+cfg.Game.Targets),
	}
	defer func() {
		if err != nil {
			g.Close()
		}
	}()

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: renderer.DefaultClearColor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if g.assets, err = newAssets(cfg.Data); err != nil {
		return nil, err
	}

	if g.program, err = loadProgram(g.assets, pipeline); err != nil {
		return nil, err
	}

	g.library, err = scene.LoadLibrary(g.assets, objects(cfg.Data))
	if err != nil {
		return nil, fmt.Errorf("loading models: %w", err)
	}
	g.meshes = stage.Meshes{
		Floor:      g.mesh(config.ObjectFloor),
		Tree:       g.mesh(config.ObjectTree),
		Airship:    g.mesh(config.ObjectAirship),
		Projectile: g.mesh(config.ObjectProjectile),
		Target:     g.mesh(config.ObjectTarget),
	}

	g.frame = frame.NewRenderer(g.program, pipeline, lighting.DefaultMaterial(), cfg.Lighting.Roughness)
	g.frame.SetAspect(g.renderer.Aspect())

	seed := stage.Seed(cfg.Game)
	g.world, err = stage.NewWorld(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	logger.Debug("world seeded", zap.Int64("seed", seed))

	g.mapper = controls.NewMapper(stage.Controls(cfg.Game))
	g.input = input.New()
	g.shots = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, title)

	logger.Info("game initialized successfully", zap.Stringer("pipeline", g.frame.Pipeline()))
	return g, nil
}

// newAssets stacks the embedded shaders, the data dir and the shader override
// dir, in increasing priority.
func newAssets(cfg config.DataConfig) (*assets.Manager, error) {
	m := assets.NewManager()
	m.AddFS("embedded", assets.Shaders())
	if cfg.Dir != "" {
		if err := m.AddDir(cfg.Dir); err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
	}
	if cfg.ShaderDir != "" {
		if err := m.AddDir(cfg.ShaderDir); err != nil {
			return nil, fmt.Errorf("shader dir: %w", err)
		}
	}
	return m, nil
}

func loadProgram(m *assets.Manager, pipeline lighting.Config) (*shader.Program, error) {
	src, err := pipeline.Sources()
	if err != nil {
		return nil, err
	}
	vertex, fragment, err := m.ShaderSources(src)
	if err != nil {
		return nil, err
	}
	return shader.LoadProgram(src, vertex, fragment)
}

// mesh returns the named model, or a nil Mesh so the frame renderer skips it.
func (g *Game) mesh(name string) frame.Mesh {
	if m := g.library.Get(name); m != nil {
		return m
	}
	logger.Warn("object not loaded", zap.String("object", name))
	return nil
}

func objects(cfg config.DataConfig) map[string]scene.Source {
	out := make(map[string]scene.Source, len(cfg.Objects))
	for name, obj := range cfg.Objects {
		out[name] = scene.Source{Mesh: obj.Mesh, Texture: obj.Texture}
	}
	return out
}

// Run starts the main game loop. One iteration is one simulation tick and
// one rendered frame.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		// Handle events
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				logger.Debug("window resized",
					zap.Int("width", event.Width),
					zap.Int("height", event.Height))
				g.renderer.Resize(g.window.DrawableSize())
				g.frame.SetAspect(g.renderer.Aspect())
			}
		}

		intents := g.mapper.Map(g.input)
		if intents.Quit {
			g.running = false
			break
		}
		if !intents.Empty() {
			intents.Apply(g.world)
		}

		// 2. Update game state
		g.update()

		// 3. Render
		g.render()
		if intents.Fired[controls.ActionScreenshot] {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("game loop stopped", zap.Int("score", g.world.Sim.Score()))
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.library != nil {
		g.library.Release()
	}
	if g.program != nil {
		g.program.Delete()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// update advances the world one tick.
func (g *Game) update() {
	ev := g.world.Tick()
	if ev.Hit {
		logger.Debug("target hit",
			zap.Int("x", ev.HitX),
			zap.Int("score", g.world.Sim.Score()))
	}
}

// screenshot saves the frame just drawn. Failures are logged, not fatal.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// render draws the current frame.
func (g *Game) render() {
	// Begin frame
	g.renderer.Begin()

	f := g.world.Frame()
	g.drawables = stage.Layout(g.drawables, f, g.meshes)
	g.frame.Render(f.View, f.Light, g.drawables)

	// End frame
	g.renderer.End()
	g.window.ShowScore(f.Score)
}
