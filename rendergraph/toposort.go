package rendergraph

import (
	"fmt"

	"github.com/arcrender/vgeo/core"
)

// kahnSort computes a topological order of g's vertices by repeated
// removal of zero-in-degree nodes, per the compile phase's algorithm:
// seed a FIFO with every zero-in-degree vertex, pop, append, decrement
// each successor's in-degree, and enqueue it on reaching zero. If the
// resulting order is shorter than the vertex count, the graph has a
// cycle.
func kahnSort(g *core.Graph) ([]string, error) {
	vertices := g.Vertices()
	indegree := make(map[string]int, len(vertices))
	for _, v := range vertices {
		in, _, _, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("rendergraph: reading degree of %q: %w", v, err)
		}
		indegree[v] = in
	}

	queue := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if indegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(vertices))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("rendergraph: reading neighbors of %q: %w", id, err)
		}
		for _, succ := range neighbors {
			indegree[succ]--
			if indegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) != len(vertices) {
		return nil, ErrCycleDetected
	}
	return order, nil
}
