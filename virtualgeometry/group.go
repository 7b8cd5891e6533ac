package virtualgeometry

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arcrender/vgeo/clusterpart"
	"github.com/arcrender/vgeo/spatialhash"
)

type posPairKey struct {
	from, to spatialhash.Key
}

type registryEntry struct {
	clusterIdx int
	edgeOffset int
	fromKey    spatialhash.Key
	toKey      spatialhash.Key
}

// buildClusterGroups groups level L's clusters (indexed locally within
// level) into cluster groups of at most groupMaxClusters clusters
// (groupMinClusters is not enforced), via a cluster-adjacency graph derived from matching external
// half-edges across clusters. Cluster.GroupID is set on each input cluster
// (as a group index local to this call's output). Each group's
// BoundingSphere is set to the merge of its clusters' LOD bounding
// spheres; ParentLODError is left zero for the caller to fill during
// buildParentClusters.
func buildClusterGroups(level int, clusters []Cluster) ([]ClusterGroup, error) {
	if len(clusters) == 0 {
		return nil, ErrZeroClusters
	}
	if len(clusters) == 1 {
		clusters[0].GroupID = 0
		return []ClusterGroup{{
			MipLevel:         level,
			ClusterIndices:   []int{0},
			ExternalBoundary: boundaryOf(clusters, 0),
			BoundingSphere:   clusters[0].LODBoundingSphere,
		}}, nil
	}

	registry := make([]registryEntry, 0)
	for ci, c := range clusters {
		for _, off := range c.ExternalEdges {
			triBase := (off / 3) * 3
			k := off % 3
			i0 := c.Indices[triBase+k]
			i1 := c.Indices[triBase+(k+1)%3]
			registry = append(registry, registryEntry{
				clusterIdx: ci,
				edgeOffset: off,
				fromKey:    hashPos(c.Vertices[i0].Position),
				toKey:      hashPos(c.Vertices[i1].Position),
			})
		}
	}

	byKey := make(map[posPairKey][]int, len(registry))
	for i, e := range registry {
		byKey[posPairKey{from: e.fromKey, to: e.toKey}] = append(byKey[posPairKey{from: e.fromKey, to: e.toKey}], i)
	}

	adjacency := make(clusterpart.Adjacency, len(clusters))
	for i := range clusters {
		adjacency[strconv.Itoa(i)] = map[string]int64{}
	}
	for _, e := range registry {
		mates := byKey[posPairKey{from: e.toKey, to: e.fromKey}]
		for _, mi := range mates {
			mate := registry[mi]
			if mate.clusterIdx == e.clusterIdx {
				continue
			}
			adjacency[strconv.Itoa(e.clusterIdx)][strconv.Itoa(mate.clusterIdx)]++
		}
	}

	_, nodeMap, partRanges, err := clusterpart.Bisect(adjacency, groupMinClusters, groupMaxClusters)
	if err != nil {
		return nil, fmt.Errorf("virtualgeometry: build_cluster_groups: %w", err)
	}

	partOf := make([]int, len(clusters))
	for ciStr, pos := range nodeMap {
		ci, _ := strconv.Atoi(ciStr)
		for pi, r := range partRanges {
			if pos >= r.Start && pos < r.End {
				partOf[ci] = pi
				break
			}
		}
	}

	groups := make([]ClusterGroup, len(partRanges))
	for pi := range partRanges {
		groups[pi] = ClusterGroup{MipLevel: level}
	}
	for ci := range clusters {
		pi := partOf[ci]
		clusters[ci].GroupID = pi
		groups[pi].ClusterIndices = append(groups[pi].ClusterIndices, ci)
	}

	for _, e := range registry {
		mates := byKey[posPairKey{from: e.toKey, to: e.fromKey}]
		groupExternal := len(mates) == 0
		for _, mi := range mates {
			mate := registry[mi]
			if partOf[mate.clusterIdx] != partOf[e.clusterIdx] {
				groupExternal = true
			}
		}
		if groupExternal {
			pi := partOf[e.clusterIdx]
			groups[pi].ExternalBoundary = append(groups[pi].ExternalBoundary, BoundaryEdge{
				ClusterIndex: e.clusterIdx,
				EdgeOffset:   e.edgeOffset,
			})
		}
	}

	for pi := range groups {
		sphere := Sphere{}
		for _, ci := range groups[pi].ClusterIndices {
			sphere = mergeSpheres(sphere, clusters[ci].LODBoundingSphere)
		}
		groups[pi].BoundingSphere = sphere
	}

	if len(groups) == 0 {
		return nil, ErrZeroGroups
	}
	return groups, nil
}

func boundaryOf(clusters []Cluster, ci int) []BoundaryEdge {
	out := make([]BoundaryEdge, len(clusters[ci].ExternalEdges))
	for i, off := range clusters[ci].ExternalEdges {
		out[i] = BoundaryEdge{ClusterIndex: ci, EdgeOffset: off}
	}
	return out
}

func hashPos(p mgl64.Vec3) spatialhash.Key {
	return spatialhash.HashPosition(float32(p[0]), float32(p[1]), float32(p[2]))
}
