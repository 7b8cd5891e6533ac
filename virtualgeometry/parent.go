package virtualgeometry

import (
	"fmt"
	"math"

	"github.com/arcrender/vgeo/meshsimplify"
)

// buildParentClusters implements spec.md §4.2's build_parent_clusters:
// concatenate a group's child clusters into one mesh, simplify it with the
// group's external boundary locked, and re-cluster the result to seed the
// next mip level. It mutates group in place (BoundingSphere,
// ParentLODError) and returns the newly produced clusters.
func buildParentClusters(group *ClusterGroup, levelClusters []Cluster, opts Options) ([]Cluster, error) {
	childCount := len(group.ClusterIndices)
	if childCount == 0 {
		return nil, ErrZeroClusters
	}

	merged := Mesh{}
	offsets := make([]uint32, childCount)
	maxChildError := 0.0
	for i, ci := range group.ClusterIndices {
		offsets[i] = uint32(len(merged.Vertices))
		child := levelClusters[ci]
		merged.Vertices = append(merged.Vertices, child.Vertices...)
		if child.LODError > maxChildError {
			maxChildError = child.LODError
		}
	}
	for i, ci := range group.ClusterIndices {
		child := levelClusters[ci]
		for _, idx := range child.Indices {
			merged.Indices = append(merged.Indices, idx+offsets[i])
		}
	}

	bounds := Sphere{}
	for _, ci := range group.ClusterIndices {
		bounds = mergeSpheres(bounds, levelClusters[ci].LODBoundingSphere)
	}
	group.BoundingSphere = bounds
	group.ParentLODError = maxChildError

	locked := meshsimplify.NewPositionSet()
	for _, ci := range group.ClusterIndices {
		child := levelClusters[ci]
		for _, off := range boundaryOffsetsFor(group.ExternalBoundary, ci) {
			triBase := (off / 3) * 3
			k := off % 3
			i0 := child.Indices[triBase+k]
			i1 := child.Indices[triBase+(k+1)%3]
			locked.Lock(child.Vertices[i0].Position)
			locked.Lock(child.Vertices[i1].Position)
		}
	}

	target := (clusterMaxTriangles - 2) * (childCount / 2)
	if target < 1 {
		target = 1
	}
	result, err := meshsimplify.Simplify(&merged, target, locked, opts.simplifyOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSimplifierGroup, err)
	}
	group.ParentLODError = math.Max(group.ParentLODError, math.Sqrt(math.Max(result.MaxError, 0)))

	newClusters, err := clusterTriangles(merged, locked)
	if err != nil {
		return nil, fmt.Errorf("virtualgeometry: re-cluster parent group: %w", err)
	}
	for i := range newClusters {
		newClusters[i].MipLevel = group.MipLevel + 1
		newClusters[i].LODError = group.ParentLODError
		newClusters[i].LODBoundingSphere = group.BoundingSphere
	}
	return newClusters, nil
}

func boundaryOffsetsFor(boundary []BoundaryEdge, clusterIdx int) []int {
	var out []int
	for _, b := range boundary {
		if b.ClusterIndex == clusterIdx {
			out = append(out, b.EdgeOffset)
		}
	}
	return out
}
