package virtualgeometry

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/arcrender/vgeo/meshsimplify"
)

// Vertex and Mesh reuse meshsimplify's attribute layout: the builder feeds
// concatenated cluster-group geometry straight into meshsimplify.Simplify,
// so there is no value in a parallel, incompatible vertex type.
type Vertex = meshsimplify.Vertex
type Mesh = meshsimplify.Mesh

const (
	clusterMaxTriangles = 128
	clusterMinTriangles = clusterMaxTriangles - 4
	groupMaxClusters    = 32
	groupMinClusters    = groupMaxClusters - 4
)

// ClusterMaxTriangles and GroupMaxClusters are exported so a cache layer
// keying a build by (cluster_size, group_size) uses the same values the
// builder itself clusters and groups by, instead of repeating the constants.
const (
	ClusterMaxTriangles = clusterMaxTriangles
	GroupMaxClusters    = groupMaxClusters
)

// Sentinel errors for virtualgeometry operations.
var (
	ErrEmptySubmesh    = errors.New("virtualgeometry: submesh has no triangles")
	ErrZeroClusters    = errors.New("virtualgeometry: level produced zero clusters without terminating")
	ErrZeroGroups      = errors.New("virtualgeometry: level produced zero groups with more than one cluster")
	ErrSimplifierGroup = errors.New("virtualgeometry: simplifier failed building a parent cluster")
)

// Sphere is a bounding sphere: all points of interest lie within Radius of
// Center (up to the approximation error of the enclosing-sphere heuristic
// used to compute it).
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Cluster is a bounded unit of mesh LOD streaming: at most 128 triangles,
// its own vertex array, and the set of index offsets whose opposite
// half-edge lies outside the cluster.
type Cluster struct {
	Vertices          []Vertex
	Indices           []uint32
	ExternalEdges     []int
	GroupID           int
	MipLevel          int
	LODError          float64
	BoundingSphere    Sphere
	LODBoundingSphere Sphere
}

// BoundaryEdge identifies one cluster-level external half-edge by the
// cluster that owns it and the index offset into that cluster's Indices.
type BoundaryEdge struct {
	ClusterIndex int
	EdgeOffset   int
}

// ClusterGroup is the simplification unit for the next LOD: at most 32
// clusters sharing a mip level, plus the boundary that must stay locked
// when the group is simplified into its parent clusters.
type ClusterGroup struct {
	MipLevel         int
	ClusterIndices   []int
	ExternalBoundary []BoundaryEdge
	BoundingSphere   Sphere
	ParentLODError   float64
}

// Submesh is the output DAG: a flat cluster array, a flat cluster-group
// array, and the observed mip level count. Parent/child relations are
// implicit through ClusterGroup.ClusterIndices and Cluster.GroupID.
type Submesh struct {
	Clusters      []Cluster
	ClusterGroups []ClusterGroup
	MipLevels     int
}

// Options tunes a BuildSubmesh call.
type Options struct {
	// SimplifierExcessiveError is forwarded to meshsimplify.Options for
	// every parent-cluster simplification pass. Zero selects
	// meshsimplify's own default.
	SimplifierExcessiveError float64
	// Logger receives diagnostic events. Nil selects logrus.StandardLogger().
	Logger *logrus.Logger
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) simplifyOptions() meshsimplify.Options {
	return meshsimplify.Options{
		ExcessiveErrorThreshold: o.SimplifierExcessiveError,
		Logger:                  o.Logger,
	}
}
