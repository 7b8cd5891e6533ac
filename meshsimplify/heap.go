package meshsimplify

import "container/heap"

// heapNode pairs an edge-list index with its current collapse error.
type heapNode struct {
	edgeIdx int
	err     float64
}

// edgeHeap is a binary min-heap over heapNode.err, built on container/heap,
// carrying a parallel index side array (index[edgeIdx] is that edge's slot
// in nodes, or -1 if absent). Swap/Push/Pop keep the side array consistent,
// which turns heap.Remove/heap.Fix into O(log n) operations addressed by
// edge index rather than by heap slot: the "heap with mutable keys" shape a
// collapsing mesh needs, since one vertex merge invalidates an arbitrary
// scatter of edges elsewhere in the heap, not just the one just popped.
type edgeHeap struct {
	nodes []heapNode
	index []int
}

func newEdgeHeap(numEdges int) *edgeHeap {
	idx := make([]int, numEdges)
	for i := range idx {
		idx[i] = -1
	}
	return &edgeHeap{index: idx}
}

func (h edgeHeap) Len() int           { return len(h.nodes) }
func (h edgeHeap) Less(i, j int) bool { return h.nodes[i].err < h.nodes[j].err }
func (h *edgeHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.index[h.nodes[i].edgeIdx] = i
	h.index[h.nodes[j].edgeIdx] = j
}

func (h *edgeHeap) Push(x interface{}) {
	n := x.(heapNode)
	h.index[n.edgeIdx] = len(h.nodes)
	h.nodes = append(h.nodes, n)
}

func (h *edgeHeap) Pop() interface{} {
	old := h.nodes
	n := len(old)
	item := old[n-1]
	h.nodes = old[:n-1]
	h.index[item.edgeIdx] = -1
	return item
}

// insert pushes edgeIdx with err. edgeIdx must be within the index side
// array (see newEdgeHeap) and must not already hold a node.
func (h *edgeHeap) insert(edgeIdx int, err float64) {
	heap.Push(h, heapNode{edgeIdx: edgeIdx, err: err})
}

func (h *edgeHeap) popMin() (edgeIdx int, err float64, ok bool) {
	if h.Len() == 0 {
		return 0, 0, false
	}
	n := heap.Pop(h).(heapNode)
	return n.edgeIdx, n.err, true
}

// remove deletes edgeIdx's node if it currently holds one; a no-op otherwise.
func (h *edgeHeap) remove(edgeIdx int) {
	if edgeIdx < 0 || edgeIdx >= len(h.index) {
		return
	}
	pos := h.index[edgeIdx]
	if pos < 0 {
		return
	}
	heap.Remove(h, pos)
}

// valid reports whether edgeIdx currently holds a live heap entry.
func (h *edgeHeap) valid(edgeIdx int) bool {
	return edgeIdx >= 0 && edgeIdx < len(h.index) && h.index[edgeIdx] >= 0
}
