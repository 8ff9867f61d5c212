package graph

import "math"

// minOpacity is the floor applied to every connection's opacity.
const minOpacity = 0.2

// SelectConnections visits every unordered pair of nodes once, i < j, and
// keeps the pairs closer than distance whose draw exceeds probability.
//
// A draw is taken for every visited pair whether or not it is kept, so the
// sequence position after this call depends only on len(nodes). Note that
// probability is a rejection threshold: raising it yields fewer edges.
func SelectConnections(nodes []Node, src Source, distance, probability float64) []Connection {
	if !(distance > 0) || math.IsInf(distance, 1) {
		return nil
	}

	var conns []Connection
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			d := nodes[i].Position.Distance(nodes[j].Position)
			draw := src.Next()
			if d < distance && draw > probability {
				conns = append(conns, Connection{
					From:      nodes[i].Position,
					To:        nodes[j].Position,
					FromIndex: i,
					ToIndex:   j,
					Opacity:   math.Max(minOpacity, 1-d/distance),
				})
			}
		}
	}
	return conns
}
