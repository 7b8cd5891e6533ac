package vtexture

import (
	"github.com/arcrender/vgeo/gridgraph"
)

// ResidencyGrid renders the atlas's occupancy as a Height-major grid of 1s
// (resident page) and 0s (sentinel slot), suitable for gridgraph's
// land/water connectivity analysis.
func (a *PhysicalAtlas) ResidencyGrid() [][]int {
	grid := make([][]int, a.resolutionSlots)
	for y := range grid {
		grid[y] = make([]int, a.resolutionSlots)
	}
	for _, k := range a.cache.Keys() {
		key := k.(PageKey)
		if key&sentinelKeyBase != 0 {
			continue
		}
		v, ok := a.cache.Peek(key)
		if !ok {
			continue
		}
		coord := v.(Coord)
		grid[coord.Y][coord.X] = 1
	}
	return grid
}

// ResidentIslands groups the atlas's resident slots into 4-connected
// contiguous regions, a fragmentation diagnostic: a physically scattered
// residency pattern (many small islands) signals a defrag pass would
// reduce the streaming working set's cache-line spread, whereas a single
// large island means residency is already compact.
func (a *PhysicalAtlas) ResidentIslands() ([][]gridgraph.Cell, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(a.ResidencyGrid(), opts)
	if err != nil {
		return nil, err
	}
	return gg.ConnectedComponents()[1], nil
}

// BridgeIslands computes the minimal-cost path of atlas slots from island
// src to island dst (its end cells lie in the islands) and its cost: the
// number of currently-empty slots on it that would have to become resident
// to merge the two islands — the concrete defragmentation action
// ResidentIslands' fragmentation count motivates. No code in this package
// calls it; the caller chooses which two islands to pass.
func (a *PhysicalAtlas) BridgeIslands(src, dst []gridgraph.Cell) ([]gridgraph.Cell, int, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(a.ResidencyGrid(), opts)
	if err != nil {
		return nil, 0, err
	}
	return gg.ExpandIsland(src, dst)
}
