package graph

import "math"

// Vec3 is a point in scene space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// PlanarRadius is the distance from the Y axis.
func (v Vec3) PlanarRadius() float64 {
	return math.Hypot(v.X, v.Z)
}

// Ring identifies which of the concentric rings a node was placed on.
type Ring int

const (
	RingCentral Ring = iota
	RingMiddle
	RingOuter
)

func (r Ring) String() string {
	switch r {
	case RingCentral:
		return "central"
	case RingMiddle:
		return "middle"
	case RingOuter:
		return "outer"
	default:
		return "unknown"
	}
}

type Node struct {
	Position Vec3
	Ring     Ring
}

// Connection holds copies of both endpoint positions, so it stays valid
// independent of the node slice it was built from.
type Connection struct {
	From, To Vec3
	// Indices of the endpoints in Result.Nodes, From < To.
	FromIndex, ToIndex int
	Opacity            float64
}

// Result is everything one generation run produces.
type Result struct {
	Nodes       []Node
	Connections []Connection
}

// Config is the fixed parameter set the generator consumes.
type Config struct {
	CentralNodes          int
	MiddleNodes           int
	OuterNodes            int
	ConnectionDistance    float64
	ConnectionProbability float64
}

// TotalNodes is the number of nodes Generate will emit for c.
func (c Config) TotalNodes() int {
	return max(c.CentralNodes, 0) + max(c.MiddleNodes, 0) + max(c.OuterNodes, 0)
}
