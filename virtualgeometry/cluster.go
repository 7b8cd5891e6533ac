package virtualgeometry

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arcrender/vgeo/clusterpart"
	"github.com/arcrender/vgeo/meshsimplify"
)

// clusterTriangles partitions mesh's triangles into clusters of at most
// clusterMaxTriangles triangles (clusterMinTriangles is not enforced) via the
// triangle-adjacency graph, per spec.md §4.2's cluster_triangles. When
// boundaryLocked is non-nil, a half-edge whose both endpoints lie in it is
// additionally marked external regardless of the partitioner's verdict —
// used when re-clustering a just-simplified parent group, where such
// edges were the group's original locked boundary.
func clusterTriangles(mesh Mesh, boundaryLocked meshsimplify.PositionSet) ([]Cluster, error) {
	triCount := len(mesh.Indices) / 3
	if triCount == 0 {
		return nil, ErrEmptySubmesh
	}

	adjacency, heIndex := buildTriangleAdjacency(mesh.Indices)
	partAdj := make(clusterpart.Adjacency, len(adjacency))
	for t, neighbors := range adjacency {
		m := make(map[string]int64, len(neighbors))
		for n, w := range neighbors {
			m[strconv.Itoa(n)] = w
		}
		partAdj[strconv.Itoa(t)] = m
	}

	_, nodeMap, partRanges, err := clusterpart.Bisect(partAdj, clusterMinTriangles, clusterMaxTriangles)
	if err != nil {
		return nil, fmt.Errorf("virtualgeometry: cluster_triangles: %w", err)
	}

	partOf := make([]int, triCount)
	for triStr, pos := range nodeMap {
		t, _ := strconv.Atoi(triStr)
		for partIdx, r := range partRanges {
			if pos >= r.Start && pos < r.End {
				partOf[t] = partIdx
				break
			}
		}
	}

	// Recover, per part, the ordered list of triangle indices (order
	// within the part follows clusterpart's NodeOrder, i.e. ascending
	// position within its range).
	triByPart := make([][]int, len(partRanges))
	posOfTri := make(map[int]int, triCount)
	for triStr, pos := range nodeMap {
		t, _ := strconv.Atoi(triStr)
		posOfTri[t] = pos
	}
	for t := 0; t < triCount; t++ {
		p := partOf[t]
		triByPart[p] = append(triByPart[p], t)
	}
	for _, tris := range triByPart {
		sortByPos(tris, posOfTri)
	}

	clusters := make([]Cluster, 0, len(triByPart))
	for _, tris := range triByPart {
		if len(tris) == 0 {
			continue
		}
		clusters = append(clusters, buildOneCluster(mesh, tris, partOf, heIndex, boundaryLocked))
	}
	return clusters, nil
}

func sortByPos(tris []int, posOf map[int]int) {
	for i := 1; i < len(tris); i++ {
		for j := i; j > 0 && posOf[tris[j-1]] > posOf[tris[j]]; j-- {
			tris[j-1], tris[j] = tris[j], tris[j-1]
		}
	}
}

func buildOneCluster(mesh Mesh, tris []int, partOf []int, heIndex map[halfEdgeKey][]halfEdgeRef, boundaryLocked meshsimplify.PositionSet) Cluster {
	localOf := make(map[uint32]uint32, len(tris)*3)
	c := Cluster{
		Vertices: make([]Vertex, 0, len(tris)*3),
		Indices:  make([]uint32, 0, len(tris)*3),
	}

	localIndex := func(global uint32) uint32 {
		if li, ok := localOf[global]; ok {
			return li
		}
		li := uint32(len(c.Vertices))
		localOf[global] = li
		c.Vertices = append(c.Vertices, mesh.Vertices[global])
		return li
	}

	for _, t := range tris {
		base := t * 3
		for k := 0; k < 3; k++ {
			c.Indices = append(c.Indices, localIndex(mesh.Indices[base+k]))
		}
	}

	for localTriPos, t := range tris {
		base := t * 3
		for k := 0; k < 3; k++ {
			a, b := mesh.Indices[base+k], mesh.Indices[base+(k+1)%3]
			opps := opposites(heIndex, a, b)
			external := len(opps) == 0 // true boundary half-edge, no opposite anywhere
			for _, opp := range opps {
				if opp.tri != t && partOf[opp.tri] != partOf[t] {
					external = true
				}
			}
			if !external && boundaryLocked != nil &&
				boundaryLocked.Contains(mesh.Vertices[a].Position) &&
				boundaryLocked.Contains(mesh.Vertices[b].Position) {
				external = true
			}
			if external {
				c.ExternalEdges = append(c.ExternalEdges, localTriPos*3+k)
			}
		}
	}

	sphere := boundingSphere(toVec3Slice(c.Vertices))
	c.BoundingSphere = sphere
	c.LODBoundingSphere = sphere
	return c
}

func toVec3Slice(verts []Vertex) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(verts))
	for i, v := range verts {
		out[i] = v.Position
	}
	return out
}
