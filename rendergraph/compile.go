package rendergraph

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/arcrender/vgeo/core"
)

// Compile topologically orders each cohort, remaps pass indices and
// adjacency to match, allocates one command list per pass (graphics
// queue for Graphics passes, compute queue for Compute), invokes each
// pass's Compile, and computes its async_type bitmask.
func (g *Graph) Compile(dev Device, cache *ResourceCache) error {
	if err := g.compileCohort(&g.precompute, g.precomputeAdj, dev, cache); err != nil {
		return fmt.Errorf("rendergraph: compiling precompute cohort: %w", err)
	}
	if err := g.compileCohort(&g.main, g.mainAdj, dev, cache); err != nil {
		return fmt.Errorf("rendergraph: compiling main cohort: %w", err)
	}
	g.compiled = true
	return nil
}

func (g *Graph) compileCohort(passes *[]*registeredPass, adj *core.Graph, dev Device, cache *ResourceCache) error {
	stats := adj.Stats()
	g.log.WithFields(logrus.Fields{
		"component": "rendergraph",
		"passes":    stats.VertexCount,
		"edges":     stats.EdgeCount,
	}).Debug("compiling pass cohort")

	order, err := kahnSort(adj)
	if err != nil {
		return err
	}

	reordered := make([]*registeredPass, len(order))
	oldIndexByID := make(map[string]int, len(*passes))
	for i, rp := range *passes {
		oldIndexByID[rp.id] = i
	}
	for newIdx, oldID := range order {
		reordered[newIdx] = (*passes)[oldIndexByID[oldID]]
	}

	// Rebuild adjacency so vertex IDs equal the new, topologically sorted
	// index, and reassign each pass's id to match.
	newAdj := core.NewGraph(core.WithDirected(true))
	for i := range reordered {
		if err := newAdj.AddVertex(strconv.Itoa(i)); err != nil {
			return err
		}
	}
	for newIdx, oldID := range order {
		neighbors, err := adj.NeighborIDs(oldID)
		if err != nil {
			return fmt.Errorf("reading neighbors of %q: %w", oldID, err)
		}
		for _, oldSucc := range neighbors {
			succIdx := indexOf(order, oldSucc)
			if _, err := newAdj.AddEdge(strconv.Itoa(newIdx), strconv.Itoa(succIdx), 0); err != nil {
				return err
			}
		}
	}

	for newIdx, rp := range reordered {
		rp.id = strconv.Itoa(newIdx)
		rp.cmdList = dev.NewCommandList(rp.passType.Queue())
		if err := rp.pass.Compile(dev, cache); err != nil {
			return fmt.Errorf("pass %d compile: %w", newIdx, err)
		}
	}

	for newIdx, rp := range reordered {
		rp.async = computeAsyncType(newAdj, rp, reordered, newIdx)
	}

	*passes = reordered
	if adj == g.precomputeAdj {
		g.precomputeAdj = newAdj
	} else {
		g.mainAdj = newAdj
	}
	return nil
}

func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

// computeAsyncType sets Wait iff any predecessor runs on a different
// queue, Signal iff any successor runs on a different queue.
func computeAsyncType(adj *core.Graph, rp *registeredPass, all []*registeredPass, idx int) AsyncType {
	var t AsyncType

	for i, other := range all {
		if i == idx {
			continue
		}
		hasEdgeOtherToRP := adj.HasEdge(other.id, rp.id)
		hasEdgeRPToOther := adj.HasEdge(rp.id, other.id)
		if hasEdgeOtherToRP && other.passType.Queue() != rp.passType.Queue() {
			t |= AsyncWait
		}
		if hasEdgeRPToOther && other.passType.Queue() != rp.passType.Queue() {
			t |= AsyncSignal
		}
	}
	return t
}
