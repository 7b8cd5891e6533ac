package enginecache

import (
	"errors"
	"fmt"
	"io"

	"github.com/arcrender/vgeo/virtualgeometry"
)

// ErrStaleCache indicates a cache file's header parameters no longer
// match the caller's current configuration and must be regenerated.
var ErrStaleCache = errors.New("enginecache: cache header does not match current configuration")

// WriteMeshLOD writes the mesh-LOD cache format: u32 cluster_size, u32
// group_size, u64 submesh_count, then per submesh its clusters and
// cluster groups.
func WriteMeshLOD(w io.Writer, clusterSize, groupSize uint32, submeshes []*virtualgeometry.Submesh) error {
	if err := writeU32(w, clusterSize); err != nil {
		return err
	}
	if err := writeU32(w, groupSize); err != nil {
		return err
	}
	if err := writeU64(w, uint64(len(submeshes))); err != nil {
		return err
	}
	for i, sm := range submeshes {
		if err := writeSubmesh(w, sm); err != nil {
			return fmt.Errorf("enginecache: writing submesh %d: %w", i, err)
		}
	}
	return nil
}

// ReadMeshLOD reads the mesh-LOD cache format, returning ErrStaleCache if
// the header's cluster_size/group_size differ from wantClusterSize/
// wantGroupSize.
func ReadMeshLOD(r io.Reader, wantClusterSize, wantGroupSize uint32) ([]*virtualgeometry.Submesh, error) {
	clusterSize, err := readU32(r)
	if err != nil {
		return nil, err
	}
	groupSize, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if clusterSize != wantClusterSize || groupSize != wantGroupSize {
		return nil, ErrStaleCache
	}

	submeshCount, err := readU64(r)
	if err != nil {
		return nil, err
	}
	submeshes := make([]*virtualgeometry.Submesh, submeshCount)
	for i := range submeshes {
		sm, err := readSubmesh(r)
		if err != nil {
			return nil, fmt.Errorf("enginecache: reading submesh %d: %w", i, err)
		}
		submeshes[i] = sm
	}
	return submeshes, nil
}

func writeSubmesh(w io.Writer, sm *virtualgeometry.Submesh) error {
	if err := writeU32(w, uint32(sm.MipLevels)); err != nil {
		return err
	}
	if err := writeU64(w, uint64(len(sm.Clusters))); err != nil {
		return err
	}
	if err := writeU64(w, uint64(len(sm.ClusterGroups))); err != nil {
		return err
	}
	for i := range sm.Clusters {
		if err := writeCluster(w, &sm.Clusters[i]); err != nil {
			return fmt.Errorf("cluster %d: %w", i, err)
		}
	}
	for i := range sm.ClusterGroups {
		if err := writeClusterGroup(w, &sm.ClusterGroups[i]); err != nil {
			return fmt.Errorf("cluster group %d: %w", i, err)
		}
	}
	return nil
}

func readSubmesh(r io.Reader) (*virtualgeometry.Submesh, error) {
	mipLevels, err := readU32(r)
	if err != nil {
		return nil, err
	}
	clusterCount, err := readU64(r)
	if err != nil {
		return nil, err
	}
	groupCount, err := readU64(r)
	if err != nil {
		return nil, err
	}

	sm := &virtualgeometry.Submesh{
		MipLevels:     int(mipLevels),
		Clusters:      make([]virtualgeometry.Cluster, clusterCount),
		ClusterGroups: make([]virtualgeometry.ClusterGroup, groupCount),
	}
	for i := range sm.Clusters {
		c, err := readCluster(r)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		sm.Clusters[i] = c
	}
	for i := range sm.ClusterGroups {
		g, err := readClusterGroup(r)
		if err != nil {
			return nil, fmt.Errorf("cluster group %d: %w", i, err)
		}
		sm.ClusterGroups[i] = g
	}
	return sm, nil
}

func writeCluster(w io.Writer, c *virtualgeometry.Cluster) error {
	if err := writeU64(w, uint64(len(c.Vertices))); err != nil {
		return err
	}
	for _, v := range c.Vertices {
		if err := writeVec3(w, v.Position); err != nil {
			return err
		}
		if err := writeVec3(w, v.Normal); err != nil {
			return err
		}
		if err := writeVec4(w, v.Tangent); err != nil {
			return err
		}
		if err := writeVec2(w, v.UV); err != nil {
			return err
		}
	}

	if err := writeU64(w, uint64(len(c.Indices))); err != nil {
		return err
	}
	for _, idx := range c.Indices {
		if err := writeU32(w, idx); err != nil {
			return err
		}
	}

	if err := writeU64(w, uint64(len(c.ExternalEdges))); err != nil {
		return err
	}
	for _, e := range c.ExternalEdges {
		if err := writeU32(w, uint32(e)); err != nil {
			return err
		}
	}

	if err := writeU32(w, uint32(c.GroupID)); err != nil {
		return err
	}
	if err := writeU32(w, uint32(c.MipLevel)); err != nil {
		return err
	}
	if err := writeF32(w, c.LODError); err != nil {
		return err
	}
	if err := writeSphere(w, c.BoundingSphere); err != nil {
		return err
	}
	return writeSphere(w, c.LODBoundingSphere)
}

func readCluster(r io.Reader) (virtualgeometry.Cluster, error) {
	var c virtualgeometry.Cluster

	vertCount, err := readU64(r)
	if err != nil {
		return c, err
	}
	c.Vertices = make([]virtualgeometry.Vertex, vertCount)
	for i := range c.Vertices {
		pos, err := readVec3(r)
		if err != nil {
			return c, err
		}
		normal, err := readVec3(r)
		if err != nil {
			return c, err
		}
		tangent, err := readVec4(r)
		if err != nil {
			return c, err
		}
		uv, err := readVec2(r)
		if err != nil {
			return c, err
		}
		c.Vertices[i] = virtualgeometry.Vertex{Position: pos, Normal: normal, Tangent: tangent, UV: uv}
	}

	idxCount, err := readU64(r)
	if err != nil {
		return c, err
	}
	c.Indices = make([]uint32, idxCount)
	for i := range c.Indices {
		v, err := readU32(r)
		if err != nil {
			return c, err
		}
		c.Indices[i] = v
	}

	extCount, err := readU64(r)
	if err != nil {
		return c, err
	}
	c.ExternalEdges = make([]int, extCount)
	for i := range c.ExternalEdges {
		v, err := readU32(r)
		if err != nil {
			return c, err
		}
		c.ExternalEdges[i] = int(v)
	}

	groupID, err := readU32(r)
	if err != nil {
		return c, err
	}
	c.GroupID = int(groupID)

	mipLevel, err := readU32(r)
	if err != nil {
		return c, err
	}
	c.MipLevel = int(mipLevel)

	c.LODError, err = readF32(r)
	if err != nil {
		return c, err
	}
	c.BoundingSphere, err = readSphere(r)
	if err != nil {
		return c, err
	}
	c.LODBoundingSphere, err = readSphere(r)
	return c, err
}

func writeClusterGroup(w io.Writer, g *virtualgeometry.ClusterGroup) error {
	if err := writeU32(w, uint32(g.MipLevel)); err != nil {
		return err
	}

	if err := writeU64(w, uint64(len(g.ClusterIndices))); err != nil {
		return err
	}
	for _, idx := range g.ClusterIndices {
		if err := writeU32(w, uint32(idx)); err != nil {
			return err
		}
	}

	if err := writeU64(w, uint64(len(g.ExternalBoundary))); err != nil {
		return err
	}
	for _, be := range g.ExternalBoundary {
		if err := writeU32(w, uint32(be.ClusterIndex)); err != nil {
			return err
		}
		if err := writeU32(w, uint32(be.EdgeOffset)); err != nil {
			return err
		}
	}

	if err := writeSphere(w, g.BoundingSphere); err != nil {
		return err
	}
	return writeF32(w, g.ParentLODError)
}

func readClusterGroup(r io.Reader) (virtualgeometry.ClusterGroup, error) {
	var g virtualgeometry.ClusterGroup

	mipLevel, err := readU32(r)
	if err != nil {
		return g, err
	}
	g.MipLevel = int(mipLevel)

	idxCount, err := readU64(r)
	if err != nil {
		return g, err
	}
	g.ClusterIndices = make([]int, idxCount)
	for i := range g.ClusterIndices {
		v, err := readU32(r)
		if err != nil {
			return g, err
		}
		g.ClusterIndices[i] = int(v)
	}

	boundaryCount, err := readU64(r)
	if err != nil {
		return g, err
	}
	g.ExternalBoundary = make([]virtualgeometry.BoundaryEdge, boundaryCount)
	for i := range g.ExternalBoundary {
		ci, err := readU32(r)
		if err != nil {
			return g, err
		}
		off, err := readU32(r)
		if err != nil {
			return g, err
		}
		g.ExternalBoundary[i] = virtualgeometry.BoundaryEdge{ClusterIndex: int(ci), EdgeOffset: int(off)}
	}

	g.BoundingSphere, err = readSphere(r)
	if err != nil {
		return g, err
	}
	g.ParentLODError, err = readF32(r)
	return g, err
}

func writeSphere(w io.Writer, s virtualgeometry.Sphere) error {
	if err := writeVec3(w, s.Center); err != nil {
		return err
	}
	return writeF32(w, s.Radius)
}

func readSphere(r io.Reader) (virtualgeometry.Sphere, error) {
	center, err := readVec3(r)
	if err != nil {
		return virtualgeometry.Sphere{}, err
	}
	radius, err := readF32(r)
	if err != nil {
		return virtualgeometry.Sphere{}, err
	}
	return virtualgeometry.Sphere{Center: center, Radius: radius}, nil
}
