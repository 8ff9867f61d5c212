// Package graph generates the seeded point cloud and connection set drawn
// by the mind map.
//
// Generation is a pure function of a Config and a seed: nodes are laid out
// on three concentric rings and then joined by a single pass over all node
// pairs, all from one linear congruential sequence. Identical inputs always
// produce bit-identical output.
package graph

import "math"

// Generate builds the node rings and their connections for cfg and seed.
// Degenerate input (a non-finite seed, non-positive ring counts, a
// non-positive connection distance) produces an empty or partial result,
// never an error.
func Generate(cfg Config, seed float64) Result {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		return Result{}
	}

	seq := NewSequence(seed)
	nodes := populateRings(seq, cfg)
	return Result{
		Nodes:       nodes,
		Connections: SelectConnections(nodes, seq, cfg.ConnectionDistance, cfg.ConnectionProbability),
	}
}
