package scene

import (
	"math"

	"github.com/iburimskiy/mind-map/internal/config"
	"github.com/iburimskiy/mind-map/internal/graph"
)

// Frame is the animation state for one rendered frame.
type Frame struct {
	// Rotation of the whole graph around the Y axis, in radians.
	Rotation float64
	Eye      graph.Vec3
}

// Animate derives the frame state from elapsed seconds and the current
// scroll offset. Neither input is modified; a negative scroll is treated
// as zero.
func Animate(elapsed, scroll float64, m config.Motion) Frame {
	scroll = math.Max(scroll, 0)
	pull := 1 + scroll*m.ScrollFactor
	sway := elapsed * m.OrbitSpeed

	return Frame{
		Rotation: elapsed * m.RotationSpeed,
		Eye: graph.Vec3{
			X: math.Sin(sway) * m.OrbitRadius,
			Y: m.CameraHeight * pull,
			Z: m.CameraDistance*pull + math.Cos(sway)*m.OrbitRadius,
		},
	}
}

// RotateY rotates p around the Y axis by angle radians.
func RotateY(p graph.Vec3, angle float64) graph.Vec3 {
	s, c := math.Sincos(angle)
	return graph.Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}
