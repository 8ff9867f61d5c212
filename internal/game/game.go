// Package game runs the mind map inside ebiten: it advances the animation
// clock and scroll offset, fetches the memoised graph and draws it with
// additive blending.
package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/mind-map/internal/ambience"
	"github.com/iburimskiy/mind-map/internal/config"
	"github.com/iburimskiy/mind-map/internal/graph"
	"github.com/iburimskiy/mind-map/internal/scene"
)

type Game struct {
	cfg    config.Config
	logger *zap.Logger

	generator *graph.Generator
	pulse     *ambience.Pulse
	camera    *scene.Camera

	// animation inputs
	elapsed float64
	scroll  float64

	// derived every update
	result graph.Result
	frame  scene.Frame
	level  float64

	// flat render buffers, rebuilt when the generator regenerates
	points     []float32
	segments   []float32
	generation int

	// polled once per Update; swapped out in tests
	readInput func() input

	// lazily created on the first Draw, once a graphics context exists
	sprite *ebiten.Image
	lines  *ebiten.Image
}

func New(cfg config.Config, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		cfg:       cfg,
		logger:    logger,
		generator: graph.NewGenerator(logger.Named("graph")),
		pulse:     ambience.NewPulse(cfg.Seed, cfg.Ambience, logger.Named("ambience")),
		camera:    scene.NewCamera(cfg.Motion.FOV, config.WindowWidth, config.WindowHeight),
		readInput: pollInput,
	}
	g.advance(0)
	return g
}

// Start begins the ambience drone, audibly if configured.
func (g *Game) Start() {
	g.pulse.Start(g.cfg.Ambience.Audible)
}

// Close releases the speaker.
func (g *Game) Close() {
	g.pulse.Stop()
}

// input is what Update reads from the host each tick.
type input struct {
	quit   bool
	wheelY float64
}

func pollInput() input {
	_, wheelY := ebiten.Wheel()
	return input{
		quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		wheelY: wheelY,
	}
}

func (g *Game) Update() error {
	in := g.readInput()
	if in.quit {
		return ebiten.Termination
	}

	g.elapsed += 1.0 / config.TPS
	g.advance(in.wheelY)
	return nil
}

// advance applies one tick of input and recomputes the derived frame state.
// Wheel down (negative wheelY) scrolls further into the page.
func (g *Game) advance(wheelY float64) {
	g.scroll = math.Max(0, g.scroll-wheelY*g.cfg.Motion.ScrollStep)
	g.level = g.pulse.Advance(time.Second / config.TPS)
	g.result = g.generator.Result(g.cfg.Graph.Generator(), g.cfg.Seed)
	if gen := g.generator.Generation(); gen != g.generation {
		g.points = scene.Points(g.result)
		g.segments = scene.Segments(g.result)
		g.generation = gen
	}
	g.frame = scene.Animate(g.elapsed, g.scroll, g.cfg.Motion)
	g.camera.LookAt(g.frame.Eye, graph.Vec3{})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawConnections(screen)
	g.drawNodes(screen)

	if g.cfg.Visual.ShowStats {
		g.drawStats(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
