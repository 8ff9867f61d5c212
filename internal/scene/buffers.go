// Package scene turns a generated graph into what the renderer consumes:
// flat coordinate buffers, the per-frame animation state and a perspective
// camera.
package scene

import "github.com/iburimskiy/mind-map/internal/graph"

// Points returns one xyz triple per node, in node order.
func Points(res graph.Result) []float32 {
	out := make([]float32, 0, len(res.Nodes)*3)
	for _, n := range res.Nodes {
		out = appendVec(out, n.Position)
	}
	return out
}

// Segments returns two xyz triples per connection, From then To, suitable
// for line-segment rendering.
func Segments(res graph.Result) []float32 {
	out := make([]float32, 0, len(res.Connections)*6)
	for _, c := range res.Connections {
		out = appendVec(out, c.From)
		out = appendVec(out, c.To)
	}
	return out
}

func appendVec(dst []float32, v graph.Vec3) []float32 {
	return append(dst, float32(v.X), float32(v.Y), float32(v.Z))
}
