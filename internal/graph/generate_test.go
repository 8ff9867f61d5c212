package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	CentralNodes:          20,
	MiddleNodes:           40,
	OuterNodes:            60,
	ConnectionDistance:    2.5,
	ConnectionProbability: 0.4,
}

// constSource always returns the same draw.
type constSource float64

func (c constSource) Next() float64 { return float64(c) }

// countingSource wraps another source and counts draws.
type countingSource struct {
	src   Source
	draws int
}

func (c *countingSource) Next() float64 {
	c.draws++
	return c.src.Next()
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(testConfig, 42)
	b := Generate(testConfig, 42)

	require.NotEmpty(t, a.Connections)
	assert.Equal(t, a, b)
}

func TestGenerate_SeedChangesOutput(t *testing.T) {
	a := Generate(testConfig, 42)
	b := Generate(testConfig, 43)
	assert.NotEqual(t, a.Nodes, b.Nodes)
}

func TestGenerate_NodeCount(t *testing.T) {
	res := Generate(testConfig, 1)
	assert.Len(t, res.Nodes, testConfig.CentralNodes+testConfig.MiddleNodes+testConfig.OuterNodes)
	assert.Equal(t, testConfig.TotalNodes(), len(res.Nodes))
}

func TestGenerate_RingOrderAndContainment(t *testing.T) {
	const eps = 1e-9
	bounds := map[Ring]struct{ rMin, rMax, hMin, hMax float64 }{
		RingCentral: {0.5, 2.0, -1, 1},
		RingMiddle:  {3.0, 5.0, -1, 1},
		RingOuter:   {5.0, 9.0, -3, 3},
	}

	res := Generate(testConfig, 42)
	for i, n := range res.Nodes {
		var want Ring
		switch {
		case i < testConfig.CentralNodes:
			want = RingCentral
		case i < testConfig.CentralNodes+testConfig.MiddleNodes:
			want = RingMiddle
		default:
			want = RingOuter
		}
		require.Equal(t, want, n.Ring, "node %d", i)

		b := bounds[n.Ring]
		r := n.Position.PlanarRadius()
		assert.GreaterOrEqual(t, r, b.rMin-eps, "node %d radius", i)
		assert.Less(t, r, b.rMax+eps, "node %d radius", i)
		assert.GreaterOrEqual(t, n.Position.Y, b.hMin, "node %d height", i)
		assert.Less(t, n.Position.Y, b.hMax, "node %d height", i)
	}
}

func TestGenerate_ConnectionInvariants(t *testing.T) {
	res := Generate(testConfig, 42)
	require.NotEmpty(t, res.Connections)

	seen := map[[2]int]bool{}
	for _, c := range res.Connections {
		assert.Less(t, c.FromIndex, c.ToIndex, "self or reversed pair")

		key := [2]int{c.FromIndex, c.ToIndex}
		assert.False(t, seen[key], "duplicate pair %v", key)
		seen[key] = true

		assert.Equal(t, res.Nodes[c.FromIndex].Position, c.From)
		assert.Equal(t, res.Nodes[c.ToIndex].Position, c.To)

		assert.Less(t, c.From.Distance(c.To), testConfig.ConnectionDistance)
		assert.GreaterOrEqual(t, c.Opacity, 0.2)
		assert.LessOrEqual(t, c.Opacity, 1.0)
	}
}

func TestGenerate_SingleNode(t *testing.T) {
	res := Generate(Config{CentralNodes: 1, ConnectionDistance: 2.5, ConnectionProbability: 0.4}, 42)
	assert.Len(t, res.Nodes, 1)
	assert.Empty(t, res.Connections)
}

func TestGenerate_Degenerate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		seed      float64
		wantNodes int
	}{
		{"nan seed", testConfig, math.NaN(), 0},
		{"inf seed", testConfig, math.Inf(1), 0},
		{"negative counts", Config{CentralNodes: -5, MiddleNodes: -1, OuterNodes: -10, ConnectionDistance: 2}, 1, 0},
		{"negative ring skipped", Config{CentralNodes: 3, MiddleNodes: -1, OuterNodes: 2}, 1, 5},
		{"zero distance", Config{CentralNodes: 10, ConnectionDistance: 0}, 1, 10},
		{"nan distance", Config{CentralNodes: 10, ConnectionDistance: math.NaN()}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Generate(tt.cfg, tt.seed)
			assert.Len(t, res.Nodes, tt.wantNodes)
			assert.Empty(t, res.Connections)
		})
	}
}

func TestGenerate_FirstNodeFromGoldenDraws(t *testing.T) {
	res := Generate(Config{CentralNodes: 1}, 1)
	require.Len(t, res.Nodes, 1)

	// Draws as variables so the arithmetic happens in float64, as it does
	// at runtime, rather than in exact constant arithmetic.
	draws := []float64{0.2511917009602195, 0.5453317901234568, 0.34230109739368997}
	angle := draws[0] * 2 * math.Pi
	radius := 0.5 + draws[1]*1.5
	height := (draws[2] - 0.5) * 2

	assert.Equal(t, Vec3{X: math.Cos(angle) * radius, Y: height, Z: math.Sin(angle) * radius}, res.Nodes[0].Position)
}

func TestPopulateRing_DrawOrder(t *testing.T) {
	src := &countingSource{src: NewSequence(3)}
	var calls []string
	radius := func() float64 { calls = append(calls, "r"); return 1 + src.Next() }
	height := func() float64 { calls = append(calls, "h"); return src.Next() }

	nodes := PopulateRing(nil, src, RingMiddle, 2, radius, height)

	assert.Len(t, nodes, 2)
	assert.Equal(t, []string{"r", "h", "r", "h"}, calls)
	assert.Equal(t, 6, src.draws)
}

func TestPopulateRing_NonPositiveCount(t *testing.T) {
	src := &countingSource{src: NewSequence(3)}
	nodes := PopulateRing(nil, src, RingOuter, -3, src.Next, src.Next)
	assert.Empty(t, nodes)
	assert.Zero(t, src.draws)
}

func TestSelectConnections_DrawsForEveryPair(t *testing.T) {
	nodes := []Node{
		{Position: Vec3{0, 0, 0}},
		{Position: Vec3{100, 0, 0}},
		{Position: Vec3{0, 100, 0}},
		{Position: Vec3{0, 0, 0.5}},
	}
	src := &countingSource{src: constSource(0.9)}

	conns := SelectConnections(nodes, src, 1, 0.5)

	assert.Equal(t, 6, src.draws)
	require.Len(t, conns, 1)
	assert.Equal(t, 0, conns[0].FromIndex)
	assert.Equal(t, 3, conns[0].ToIndex)
	assert.InDelta(t, 0.5, conns[0].Opacity, 1e-12)
}

func TestSelectConnections_ProbabilityIsRejectionThreshold(t *testing.T) {
	nodes := []Node{{Position: Vec3{}}, {Position: Vec3{X: 0.1}}}

	assert.Len(t, SelectConnections(nodes, constSource(0.6), 1, 0.5), 1)
	assert.Empty(t, SelectConnections(nodes, constSource(0.5), 1, 0.5), "draw must strictly exceed the threshold")
	assert.Empty(t, SelectConnections(nodes, constSource(0.4), 1, 0.5))
}

func TestSelectConnections_IdenticalPositions(t *testing.T) {
	p := Vec3{X: 1, Y: 2, Z: 3}
	nodes := []Node{{Position: p}, {Position: p}}

	conns := SelectConnections(nodes, constSource(0.99), 2.5, 0.4)

	require.Len(t, conns, 1)
	assert.Equal(t, 1.0, conns[0].Opacity)
}

func TestSelectConnections_OpacityFloor(t *testing.T) {
	nodes := []Node{{Position: Vec3{}}, {Position: Vec3{X: 0.95}}}

	conns := SelectConnections(nodes, constSource(0.99), 1, 0)

	require.Len(t, conns, 1)
	assert.Equal(t, 0.2, conns[0].Opacity)
}

func TestSelectConnections_DistanceIsStrict(t *testing.T) {
	nodes := []Node{{Position: Vec3{}}, {Position: Vec3{X: 1}}}
	assert.Empty(t, SelectConnections(nodes, constSource(0.99), 1, 0))
}
