// Package virtualgeometry builds, for each input submesh, a DAG of mesh
// clusters grouped into cluster groups across discrete LOD levels: level 0
// clusters exactly cover the source triangles, and each subsequent level's
// clusters approximate the union of their children at progressively lower
// triangle counts, terminating once a level holds a single cluster.
//
// BuildSubmesh drives the pipeline: partition triangles into clusters
// (clusterpart.Bisect over a triangle-adjacency graph), group clusters
// (the same partitioner over a cluster-adjacency graph derived from
// cluster-external half-edges), simplify each group's concatenated
// geometry with locked group-boundary positions (meshsimplify.Simplify),
// and re-cluster the result to seed the next level.
package virtualgeometry
