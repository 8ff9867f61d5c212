package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/mind-map/internal/graph"
)

// channel converts a 0-255 intensity to a byte, saturating at both ends.
func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v/255) * 255))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// hsv converts hue in degrees (any range), saturation and value in [0, 1]
// to an opaque colour.
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	sector := h / 60
	chroma := v * s
	second := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))

	// Channel order per 60 degree sector: (chroma, second, 0) rotated.
	var rgb [3]float64
	switch int(sector) {
	case 0:
		rgb = [3]float64{chroma, second, 0}
	case 1:
		rgb = [3]float64{second, chroma, 0}
	case 2:
		rgb = [3]float64{0, chroma, second}
	case 3:
		rgb = [3]float64{0, second, chroma}
	case 4:
		rgb = [3]float64{second, 0, chroma}
	default:
		rgb = [3]float64{chroma, 0, second}
	}

	base := v - chroma
	return color.RGBA{
		R: channel((rgb[0] + base) * 255),
		G: channel((rgb[1] + base) * 255),
		B: channel((rgb[2] + base) * 255),
		A: 255,
	}
}

// clock renders elapsed time as MM:SS for the stats overlay.
func clock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ringColor tints each ring a little further round the hue wheel from base,
// and a little dimmer towards the outside.
func ringColor(ring graph.Ring, baseHue float64) color.RGBA {
	return hsv(baseHue+float64(ring)*35, 0.55, 1-float64(ring)*0.15)
}

// edgeAlpha combines an edge's own opacity with the shared line opacity and
// the ambience level.
func edgeAlpha(opacity, shared, pulseDepth, level float64) float64 {
	return clamp01(opacity * shared * (1 + pulseDepth*level))
}
