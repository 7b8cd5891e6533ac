package clusterpart

import (
	"errors"
	"fmt"
	"sort"
)

// Adjacency is a weighted undirected graph: adj[node][neighbor] = weight.
// Entries need not be symmetric on input; when accumulating connection
// weight Bisect adds the weights stored in both directions, so an edge
// listed both ways counts with both entries.
type Adjacency map[string]map[string]int64

// Range is a half-open [Start, End) span of positions into NodeOrder.
type Range struct {
	Start, End int
}

// ErrInvalidBounds indicates min > max or max <= 0.
var ErrInvalidBounds = errors.New("clusterpart: invalid min/max part size bounds")

// ErrEmptyGraph indicates an adjacency map with no nodes.
var ErrEmptyGraph = errors.New("clusterpart: adjacency graph has no nodes")

// Bisect recursively splits adj into contiguous parts of at most max nodes,
// keeping inter-part edge weight low via greedy region growing at each
// split. min is only checked against max (ErrInvalidBounds); parts are not
// grown to reach it, so a part can hold fewer than min nodes (130 nodes
// with max 128 split into two parts of 65). It returns the node order (each part a contiguous span),
// a node→position map, and the part ranges in NodeOrder.
func Bisect(adj Adjacency, min, max int) (nodeOrder []string, nodeMap map[string]int, partRanges []Range, err error) {
	if max <= 0 || min > max {
		return nil, nil, nil, ErrInvalidBounds
	}
	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return nil, nil, nil, ErrEmptyGraph
	}
	sort.Strings(nodes)

	parts := splitRecursive(nodes, adj, max)

	nodeOrder = make([]string, 0, len(nodes))
	nodeMap = make(map[string]int, len(nodes))
	partRanges = make([]Range, 0, len(parts))
	for _, part := range parts {
		start := len(nodeOrder)
		for _, n := range part {
			nodeMap[n] = len(nodeOrder)
			nodeOrder = append(nodeOrder, n)
		}
		partRanges = append(partRanges, Range{Start: start, End: len(nodeOrder)})
	}
	if len(nodeOrder) != len(nodes) {
		return nil, nil, nil, fmt.Errorf("clusterpart: reordered %d nodes, expected %d", len(nodeOrder), len(nodes))
	}
	return nodeOrder, nodeMap, partRanges, nil
}

// splitRecursive returns a slice of parts, each a slice of node IDs, with
// every part's size in [1, max]. It first computes how many leaf parts an
// evenly-sized split would need (ceil(len/max)) and divides that count,
// not the node list, in half at each step — so an exactly-divisible input
// (e.g. 384 nodes, max 128) yields exactly 3 equal parts rather than
// whatever a naive repeated 50/50 split would produce. Bisection does not
// enforce min: any split can yield parts below it (130 nodes with max 128
// become two parts of 65), and an input of at most max nodes is returned
// as a single part whatever its size.
func splitRecursive(nodes []string, adj Adjacency, max int) [][]string {
	if len(nodes) <= max {
		return [][]string{nodes}
	}
	parts := (len(nodes) + max - 1) / max
	leftParts := parts / 2
	if leftParts < 1 {
		leftParts = 1
	}
	leftSize := leftParts * len(nodes) / parts
	if leftSize < 1 {
		leftSize = 1
	}
	if leftSize > len(nodes)-1 {
		leftSize = len(nodes) - 1
	}

	left, right := growBisect(nodes, adj, leftSize)
	return append(splitRecursive(left, adj, max), splitRecursive(right, adj, max)...)
}

// growBisect splits nodes into a region of exactly leftSize nodes and the
// remainder, by greedy region growing from two seeds: region A repeatedly
// claims the unassigned node with the strongest total edge weight into it
// until it holds leftSize nodes, then region B claims the remaining nodes
// the same way. Ties break on node ID for determinism.
func growBisect(nodes []string, adj Adjacency, leftSize int) (left, right []string) {
	seedA, seedB := pickSeeds(nodes, adj)

	regionA := map[string]bool{seedA: true}
	regionB := map[string]bool{seedB: true}
	unassigned := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n != seedA && n != seedB {
			unassigned[n] = true
		}
	}

	target := leftSize
	for len(unassigned) > 0 {
		region := regionA
		if len(regionA) >= target {
			region = regionB
		}

		best, bestWeight := "", int64(-1)
		for n := range unassigned {
			w := connectionWeight(n, region, adj)
			if w > bestWeight || (w == bestWeight && (best == "" || n < best)) {
				best, bestWeight = n, w
			}
		}
		region[best] = true
		delete(unassigned, best)
	}

	for _, n := range nodes {
		if regionA[n] {
			left = append(left, n)
		} else {
			right = append(right, n)
		}
	}
	return left, right
}

func connectionWeight(node string, region map[string]bool, adj Adjacency) int64 {
	var total int64
	for neighbor, w := range adj[node] {
		if region[neighbor] {
			total += w
		}
	}
	for member := range region {
		if w, ok := adj[member][node]; ok {
			total += w
		}
	}
	return total
}

// pickSeeds takes the first node as one bisection seed and, as the other,
// the node with the least edge weight to that first node (ties to the
// smaller ID). nodes is already sorted, so the result is deterministic for
// a given adjacency.
func pickSeeds(nodes []string, adj Adjacency) (a, b string) {
	a = nodes[0]
	b, bestWeight := "", int64(1)<<62
	for _, n := range nodes[1:] {
		w := connectionWeight(n, map[string]bool{a: true}, adj)
		if w < bestWeight || (w == bestWeight && (b == "" || n < b)) {
			b, bestWeight = n, w
		}
	}
	if b == "" {
		b = nodes[1%len(nodes)]
	}
	return a, b
}
