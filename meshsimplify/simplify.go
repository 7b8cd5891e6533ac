package meshsimplify

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arcrender/vgeo/quadric"
	"github.com/arcrender/vgeo/spatialhash"
)

type edgeRec struct {
	v0, v1 uint32
}

type simplifier struct {
	verts       []Vertex
	indices     []uint32
	triRemoved  []bool
	triSurf     []quadric.Surface
	locked      []bool
	registered  []bool
	vertexTbl   *spatialhash.Table
	edges       []edgeRec
	edgeAlive   []bool
	edgeOfPair  map[[2]uint32]int
	vertexEdges map[uint32][]int
	pq          *edgeHeap
	maxError    float64
}

func newSimplifier(mesh *Mesh, locked PositionSet, opts Options) *simplifier {
	s := &simplifier{
		verts:      append([]Vertex(nil), mesh.Vertices...),
		indices:    append([]uint32(nil), mesh.Indices...),
		triRemoved: make([]bool, len(mesh.Indices)/3),
		triSurf:    make([]quadric.Surface, len(mesh.Indices)/3),
		locked:     make([]bool, len(mesh.Vertices)),
		registered: make([]bool, len(mesh.Vertices)),
		vertexTbl:  spatialhash.NewTable(),
	}
	for i, v := range s.verts {
		if locked != nil && locked.contains(v.Position) {
			s.locked[i] = true
		}
	}
	return s
}

// Simplify reduces mesh to at most target triangles in place, minimizing
// cumulative quadric error, and reports the maximum collapse error seen.
func Simplify(mesh *Mesh, target int, locked PositionSet, opts Options) (Result, error) {
	if target < 0 {
		return Result{}, ErrNegativeTarget
	}
	if len(mesh.Indices) == 0 {
		return Result{}, ErrEmptyMesh
	}
	log := opts.logger()

	s := newSimplifier(mesh, locked, opts)
	for t := range s.triRemoved {
		s.fixTriangle(t)
	}

	if s.liveTriangleCount() <= target {
		return s.compact(mesh, target)
	}

	s.buildEdges()
	s.pq = s.pushAllEdges()

	threshold := opts.threshold()
	for s.pq.Len() > 0 && s.liveTriangleCount() > target {
		idx, errVal, ok := s.pq.popMin()
		if !ok {
			break
		}
		if errVal >= threshold {
			log.WithFields(map[string]interface{}{
				"component": "meshsimplify",
				"error":     errVal,
			}).Debug("stopping: excessive collapse error")
			break
		}

		mergeErr := s.evaluate(idx, true)
		if mergeErr > s.maxError {
			s.maxError = mergeErr
		}
	}

	return s.compact(mesh, target)
}

func (s *simplifier) pushAllEdges() *edgeHeap {
	h := newEdgeHeap(len(s.edges))
	for idx := range s.edges {
		if !s.edgeAlive[idx] {
			continue
		}
		h.insert(idx, s.evaluate(idx, false))
	}
	return h
}

func (s *simplifier) liveTriangleCount() int {
	n := 0
	for _, removed := range s.triRemoved {
		if !removed {
			n++
		}
	}
	return n
}

// fixTriangle coalesces triangle t's vertices to their lowest-indexed
// position-coincident match, recomputes its quadric, and removes it if it
// is now degenerate or a duplicate of an earlier triangle.
func (s *simplifier) fixTriangle(t int) {
	if s.triRemoved[t] {
		return
	}
	base := t * 3
	i0 := s.coalesce(s.indices[base])
	i1 := s.coalesce(s.indices[base+1])
	i2 := s.coalesce(s.indices[base+2])
	if i0 == i1 || i1 == i2 || i0 == i2 {
		s.removeTriangle(t)
		return
	}
	s.indices[base], s.indices[base+1], s.indices[base+2] = i0, i1, i2
	s.triSurf[t] = quadric.FromTriangle(s.verts[i0].Position, s.verts[i1].Position, s.verts[i2].Position)

	if s.hasEarlierDuplicate(t, i0, i1, i2) {
		s.removeTriangle(t)
	}
}

func (s *simplifier) coalesce(i uint32) uint32 {
	pos := s.verts[i].Position
	h := hashVec3(pos)
	for _, candidate := range s.vertexTbl.Iter(h) {
		if candidate < i && s.verts[candidate].Position == pos {
			return candidate
		}
	}
	if !s.registered[i] {
		s.vertexTbl.Insert(h, i)
		s.registered[i] = true
	}
	return i
}

func (s *simplifier) hasEarlierDuplicate(self int, i0, i1, i2 uint32) bool {
	key := sortedTriple(i0, i1, i2)
	for t := range s.triRemoved {
		if t == self || s.triRemoved[t] {
			continue
		}
		base := t * 3
		if sortedTriple(s.indices[base], s.indices[base+1], s.indices[base+2]) == key {
			return t < self
		}
	}
	return false
}

func sortedTriple(a, b, c uint32) [3]uint32 {
	arr := [3]uint32{a, b, c}
	sort.Slice(arr[:], func(i, j int) bool { return arr[i] < arr[j] })
	return arr
}

func (s *simplifier) removeTriangle(t int) {
	s.triRemoved[t] = true
}

// buildEdges populates the edge list and its lookup indexes once, from the
// initial (post-fixTriangle) triangle set. From here on, a collapse never
// creates a genuinely new edge: it only renames, drops (degenerate or
// duplicate), or re-scores the edges this pass already enumerated.
func (s *simplifier) buildEdges() {
	s.edges = s.edges[:0]
	s.edgeAlive = s.edgeAlive[:0]
	s.edgeOfPair = make(map[[2]uint32]int)
	s.vertexEdges = make(map[uint32][]int)
	for t := range s.triRemoved {
		if s.triRemoved[t] {
			continue
		}
		base := t * 3
		tri := [3]uint32{s.indices[base], s.indices[base+1], s.indices[base+2]}
		for k := 0; k < 3; k++ {
			s.addEdge(tri[k], tri[(k+1)%3])
		}
	}
}

func (s *simplifier) addEdge(a, b uint32) int {
	key := normalizedKey(a, b)
	if idx, ok := s.edgeOfPair[key]; ok {
		return idx
	}
	idx := len(s.edges)
	s.edges = append(s.edges, edgeRec{v0: key[0], v1: key[1]})
	s.edgeAlive = append(s.edgeAlive, true)
	s.edgeOfPair[key] = idx
	s.vertexEdges[key[0]] = append(s.vertexEdges[key[0]], idx)
	s.vertexEdges[key[1]] = append(s.vertexEdges[key[1]], idx)
	return idx
}

func normalizedKey(a, b uint32) [2]uint32 {
	if a > b {
		a, b = b, a
	}
	return [2]uint32{a, b}
}

func renameEndpoint(v, from, to uint32) uint32 {
	if v == from {
		return to
	}
	return v
}

// refreshEdges is called after applyMerge has folded other into survivor. It
// retires the collapsed edge, then removes every edge still touching either
// endpoint from the heap, renames its endpoints, drops it if the rename made
// it degenerate (both endpoints now survivor) or a duplicate of an edge that
// already occupies the renamed pair, and otherwise re-inserts it into the
// heap with a freshly evaluated error.
func (s *simplifier) refreshEdges(survivor, other uint32, collapsedIdx int) {
	s.edgeAlive[collapsedIdx] = false
	delete(s.edgeOfPair, normalizedKey(s.edges[collapsedIdx].v0, s.edges[collapsedIdx].v1))

	touched := append(append([]int{}, s.vertexEdges[survivor]...), s.vertexEdges[other]...)
	seen := make(map[int]bool, len(touched))
	for _, idx := range touched {
		if idx == collapsedIdx || seen[idx] || !s.edgeAlive[idx] {
			continue
		}
		seen[idx] = true

		e := s.edges[idx]
		delete(s.edgeOfPair, normalizedKey(e.v0, e.v1))
		s.pq.remove(idx)

		v0 := renameEndpoint(e.v0, other, survivor)
		v1 := renameEndpoint(e.v1, other, survivor)
		if v0 == v1 {
			s.edgeAlive[idx] = false
			continue
		}
		key := normalizedKey(v0, v1)
		if existing, ok := s.edgeOfPair[key]; ok && existing != idx {
			s.edgeAlive[idx] = false
			continue
		}

		s.edges[idx] = edgeRec{v0: key[0], v1: key[1]}
		s.edgeOfPair[key] = idx
		s.vertexEdges[survivor] = append(s.vertexEdges[survivor], idx)
		s.pq.insert(idx, s.evaluate(idx, false))
	}
}

func (s *simplifier) adjacentTriangles(p0, p1 uint32) []int {
	var out []int
	for t := range s.triRemoved {
		if s.triRemoved[t] {
			continue
		}
		base := t * 3
		i0, i1, i2 := s.indices[base], s.indices[base+1], s.indices[base+2]
		if i0 == p0 || i1 == p0 || i2 == p0 || i0 == p1 || i1 == p1 || i2 == p1 {
			out = append(out, t)
		}
	}
	return out
}

// evaluate computes the cost of collapsing edge idx, applying
// locked-endpoint handling, the high-valency penalty, and the
// quadric-minimizer-with-midpoint-fallback position choice. When doMerge is
// true it also performs the collapse.
func (s *simplifier) evaluate(idx int, doMerge bool) float64 {
	e := s.edges[idx]
	p0, p1 := e.v0, e.v1
	adj := s.adjacentTriangles(p0, p1)
	if len(adj) == 0 {
		return 0
	}

	var merged quadric.Surface
	for _, t := range adj {
		merged = quadric.Merge(merged, s.triSurf[t])
	}

	penalty := 0.0
	if len(adj) > highValencyThreshold {
		penalty = 0.5 * float64(len(adj)-highValencyThreshold)
	}

	lockedAny := s.locked[p0] || s.locked[p1]
	bothLocked := s.locked[p0] && s.locked[p1]

	var target mgl64.Vec3
	bonus := 0.0
	switch {
	case bothLocked:
		target = s.verts[p0].Position.Add(s.verts[p1].Position).Mul(0.5)
		bonus = bothLockedPenalty
	case s.locked[p0]:
		target = s.verts[p0].Position
	case s.locked[p1]:
		target = s.verts[p1].Position
	default:
		mid := s.verts[p0].Position.Add(s.verts[p1].Position).Mul(0.5)
		if m, ok := merged.Minimizer(); ok {
			edgeLen := s.verts[p0].Position.Sub(s.verts[p1].Position).Len()
			if m.Sub(mid).Len() > 2*edgeLen {
				target = mid
			} else {
				target = m
			}
		} else {
			target = mid
		}
	}

	errVal := penalty + bonus + merged.DistanceToSurface(target)

	if doMerge {
		s.applyMerge(idx, adj, target, lockedAny)
	}

	return errVal
}

func (s *simplifier) applyMerge(idx int, adj []int, target mgl64.Vec3, locked bool) {
	e := s.edges[idx]
	survivor, other := e.v0, e.v1
	if other < survivor {
		survivor, other = other, survivor
	}

	s.verts[survivor].Position = target
	if n := s.verts[survivor].Normal.Add(s.verts[other].Normal); n.Len() > 1e-12 {
		s.verts[survivor].Normal = n.Normalize()
	}
	s.verts[survivor].Tangent = s.verts[survivor].Tangent.Add(s.verts[other].Tangent)
	s.verts[survivor].UV = s.verts[survivor].UV.Add(s.verts[other].UV).Mul(0.5)
	s.locked[survivor] = locked

	for t := range s.triRemoved {
		if s.triRemoved[t] {
			continue
		}
		base := t * 3
		for k := 0; k < 3; k++ {
			if s.indices[base+k] == other {
				s.indices[base+k] = survivor
			}
		}
	}

	for _, t := range adj {
		s.fixTriangle(t)
	}

	s.refreshEdges(survivor, other, idx)
}

func (s *simplifier) compact(mesh *Mesh, target int) (Result, error) {
	refCount := make([]int32, len(s.verts))
	for t := range s.triRemoved {
		if s.triRemoved[t] {
			continue
		}
		base := t * 3
		refCount[s.indices[base]]++
		refCount[s.indices[base+1]]++
		refCount[s.indices[base+2]]++
	}

	remap := make([]int32, len(s.verts))
	newVerts := make([]Vertex, 0, len(s.verts))
	for i, v := range s.verts {
		if refCount[i] > 0 {
			remap[i] = int32(len(newVerts))
			newVerts = append(newVerts, v)
		} else {
			remap[i] = -1
		}
	}

	newIndices := make([]uint32, 0, len(s.indices))
	live := 0
	for t := range s.triRemoved {
		if s.triRemoved[t] {
			continue
		}
		base := t * 3
		i0, i1, i2 := s.indices[base], s.indices[base+1], s.indices[base+2]
		n0, n1, n2 := remap[i0], remap[i1], remap[i2]
		if n0 < 0 || n1 < 0 || n2 < 0 || n0 == n1 || n1 == n2 || n0 == n2 {
			return Result{}, fmt.Errorf("%w: triangle %d", ErrCompactMismatch, t)
		}
		newIndices = append(newIndices, uint32(n0), uint32(n1), uint32(n2))
		live++
	}
	if live != len(newIndices)/3 {
		return Result{}, ErrCompactMismatch
	}

	mesh.Vertices = newVerts
	mesh.Indices = newIndices

	return Result{RemainingTriangles: live, MaxError: s.maxError, Ok: true}, nil
}
