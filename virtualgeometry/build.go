package virtualgeometry

import "fmt"

// BuildSubmesh builds the cluster/cluster-group DAG for one input mesh, per
// spec.md §4.2's top-level loop: cluster the source triangles, group the
// clusters, simplify each group into parent clusters, and repeat on the
// new level until a level holds a single cluster.
func BuildSubmesh(mesh Mesh, opts Options) (*Submesh, error) {
	if len(mesh.Indices) == 0 {
		return nil, ErrEmptySubmesh
	}
	log := opts.logger()

	level0, err := clusterTriangles(mesh, nil)
	if err != nil {
		return nil, fmt.Errorf("virtualgeometry: level 0 clustering: %w", err)
	}

	var allClusters []Cluster
	var allGroups []ClusterGroup
	currentClusters := level0
	currentOffset := 0
	allClusters = append(allClusters, level0...)

	level := 0
	for len(currentClusters) > 1 {
		groups, err := buildClusterGroups(level, currentClusters)
		if err != nil {
			return nil, fmt.Errorf("virtualgeometry: build_cluster_groups level %d: %w", level, err)
		}

		// currentClusters' GroupID fields were set in place by
		// buildClusterGroups; reflect them back into allClusters, whose
		// backing slots for this level start at currentOffset.
		for i := range currentClusters {
			allClusters[currentOffset+i].GroupID = currentClusters[i].GroupID
		}

		var nextLevel []Cluster
		for gi := range groups {
			parents, err := buildParentClusters(&groups[gi], currentClusters, opts)
			if err != nil {
				return nil, fmt.Errorf("virtualgeometry: build_parent_clusters level %d group %d: %w", level, gi, err)
			}
			nextLevel = append(nextLevel, parents...)

			groups[gi].ClusterIndices = offsetIndices(groups[gi].ClusterIndices, currentOffset)
			for bi := range groups[gi].ExternalBoundary {
				groups[gi].ExternalBoundary[bi].ClusterIndex += currentOffset
			}
		}

		if len(nextLevel) == 0 {
			return nil, ErrZeroClusters
		}

		allGroups = append(allGroups, groups...)
		log.WithFields(map[string]interface{}{
			"component":    "virtualgeometry",
			"level":        level,
			"clusters":     len(currentClusters),
			"groups":       len(groups),
			"nextClusters": len(nextLevel),
		}).Debug("built LOD level")

		currentOffset = len(allClusters)
		allClusters = append(allClusters, nextLevel...)
		currentClusters = nextLevel
		level++
	}

	return &Submesh{
		Clusters:      allClusters,
		ClusterGroups: allGroups,
		MipLevels:     level + 1,
	}, nil
}

func offsetIndices(indices []int, offset int) []int {
	out := make([]int, len(indices))
	for i, v := range indices {
		out[i] = v + offset
	}
	return out
}
