package graph

import "math"

// PopulateRing appends count nodes placed around the Y axis to dst. Each
// node consumes one draw for its angle and then whatever radius and height
// consume, in that order.
func PopulateRing(dst []Node, src Source, ring Ring, count int, radius, height func() float64) []Node {
	for i := 0; i < count; i++ {
		angle := src.Next() * 2 * math.Pi
		r := radius()
		h := height()
		dst = append(dst, Node{
			Position: Vec3{X: math.Cos(angle) * r, Y: h, Z: math.Sin(angle) * r},
			Ring:     ring,
		})
	}
	return dst
}

// span returns a function drawing uniformly from [lo, lo+width).
func span(src Source, lo, width float64) func() float64 {
	return func() float64 { return lo + src.Next()*width }
}

// centered returns a function drawing uniformly from [-extent/2, extent/2).
func centered(src Source, extent float64) func() float64 {
	return func() float64 { return (src.Next() - 0.5) * extent }
}

// populateRings lays out the central, middle and outer rings in that order.
// The order is part of the output: all rings share src.
func populateRings(src Source, cfg Config) []Node {
	nodes := make([]Node, 0, cfg.TotalNodes())
	nodes = PopulateRing(nodes, src, RingCentral, cfg.CentralNodes, span(src, 0.5, 1.5), centered(src, 2))
	nodes = PopulateRing(nodes, src, RingMiddle, cfg.MiddleNodes, span(src, 3, 2), centered(src, 2))
	nodes = PopulateRing(nodes, src, RingOuter, cfg.OuterNodes, span(src, 5, 4), centered(src, 6))
	return nodes
}
