package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mind-map/internal/config"
	"github.com/iburimskiy/mind-map/internal/graph"
	"github.com/iburimskiy/mind-map/internal/scene"
)

const (
	backgroundBand = 8
	// Sprite diameter relative to the node size, leaving room for the halo.
	glowSpread  = 4
	minNodeSize = 1.5
)

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slowly shifting vertical gradient, drawn in bands
	for y := 0; y < config.WindowHeight; y += backgroundBand {
		ratio := float64(y) / float64(config.WindowHeight)
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, backgroundBand, backgroundColor(g.elapsed, ratio), false)
	}
}

// backgroundColor is the gradient colour at elapsed seconds and ratio of the
// way down the screen. Each channel swings around a dark base.
func backgroundColor(elapsed, ratio float64) color.RGBA {
	phase := ratio * math.Pi
	return color.RGBA{
		R: channel(4 + 6*math.Sin(elapsed*0.05+phase)),
		G: channel(6 + 6*math.Cos(elapsed*0.03+phase)),
		B: channel(14 + 10*math.Sin(elapsed*0.07+phase)),
		A: 255,
	}
}

// project rotates the xyz triple at buf[i:] by the frame rotation and
// projects it through the camera.
func (g *Game) project(buf []float32, i int) (scene.Projected, bool) {
	p := graph.Vec3{X: float64(buf[i]), Y: float64(buf[i+1]), Z: float64(buf[i+2])}
	return g.camera.Project(scene.RotateY(p, g.frame.Rotation))
}

func (g *Game) drawConnections(screen *ebiten.Image) {
	if len(g.segments) == 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.lines == nil || g.lines.Bounds().Dx() != w || g.lines.Bounds().Dy() != h {
		g.lines = ebiten.NewImage(w, h)
	}
	g.lines.Clear()

	vis := g.cfg.Visual
	for i, c := range g.result.Connections {
		a, okA := g.project(g.segments, i*6)
		b, okB := g.project(g.segments, i*6+3)
		if !okA || !okB {
			continue
		}

		alpha := edgeAlpha(c.Opacity, vis.LineOpacity, g.cfg.Ambience.PulseDepth, g.level)
		if alpha <= 0 {
			continue
		}
		tint := ringColor(g.result.Nodes[c.FromIndex].Ring, vis.BaseHue)
		lineColor := color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: channel(alpha * 255)}

		vector.StrokeLine(g.lines, a.X, a.Y, b.X, b.Y, float32(vis.LineWidth), lineColor, true)
	}

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(g.lines, op)
}

func (g *Game) drawNodes(screen *ebiten.Image) {
	if len(g.points) == 0 {
		return
	}
	if g.sprite == nil {
		g.sprite = ebiten.NewImage(config.SpriteSize, config.SpriteSize)
		g.sprite.WritePixels(glowPixels(config.SpriteSize))
	}

	vis := g.cfg.Visual
	half := float64(config.SpriteSize) / 2
	for i, n := range g.result.Nodes {
		p, ok := g.project(g.points, i*3)
		if !ok {
			continue
		}

		size := math.Max(vis.NodeSize*glowSpread*float64(p.Scale), minNodeSize)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(size/config.SpriteSize, size/config.SpriteSize)
		op.GeoM.Translate(float64(p.X), float64(p.Y))
		op.ColorScale.ScaleWithColor(ringColor(n.Ring, vis.BaseHue))
		op.ColorScale.ScaleAlpha(float32(vis.NodeOpacity))
		op.Blend = ebiten.BlendLighter
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.sprite, op)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	elapsed := time.Duration(g.elapsed * float64(time.Second))
	status := fmt.Sprintf("nodes %d  edges %d  %s  scroll %.0f  tps %.0f",
		len(g.result.Nodes), len(g.result.Connections), clock(elapsed), g.scroll, ebiten.ActualTPS())
	if g.pulse.Audible() {
		status += "  ambience on"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
