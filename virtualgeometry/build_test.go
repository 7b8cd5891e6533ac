package virtualgeometry_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcrender/vgeo/virtualgeometry"
)

// flatGrid builds a cols x rows grid of quads, each split into two
// triangles, as one connected manifold patch of 2*cols*rows triangles.
func flatGrid(cols, rows int) virtualgeometry.Mesh {
	var mesh virtualgeometry.Mesh
	vertexAt := func(x, y int) uint32 {
		return uint32(y*(cols+1) + x)
	}
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			mesh.Vertices = append(mesh.Vertices, virtualgeometry.Vertex{
				Position: mgl64.Vec3{float64(x), float64(y), 0},
				Normal:   mgl64.Vec3{0, 0, 1},
			})
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			a := vertexAt(x, y)
			b := vertexAt(x+1, y)
			c := vertexAt(x+1, y+1)
			d := vertexAt(x, y+1)
			mesh.Indices = append(mesh.Indices, a, b, c, a, c, d)
		}
	}
	return mesh
}

func TestBuildSubmesh_384TrianglesThreeClustersOneGroup(t *testing.T) {
	mesh := flatGrid(16, 12) // 16*12 quads * 2 = 384 triangles
	require.Len(t, mesh.Indices, 384*3)

	submesh, err := virtualgeometry.BuildSubmesh(mesh, virtualgeometry.Options{})
	require.NoError(t, err)

	var level0 []virtualgeometry.Cluster
	for _, c := range submesh.Clusters {
		if c.MipLevel == 0 {
			level0 = append(level0, c)
		}
	}
	assert.Len(t, level0, 3)
	for _, c := range level0 {
		assert.LessOrEqual(t, len(c.Indices)/3, 128)
	}

	var level0Groups []virtualgeometry.ClusterGroup
	for _, g := range submesh.ClusterGroups {
		if g.MipLevel == 0 {
			level0Groups = append(level0Groups, g)
		}
	}
	require.Len(t, level0Groups, 1)
	assert.Len(t, level0Groups[0].ClusterIndices, 3)

	var level1 []virtualgeometry.Cluster
	for _, c := range submesh.Clusters {
		if c.MipLevel == 1 {
			level1 = append(level1, c)
		}
	}
	require.Len(t, level1, 1)
	assert.LessOrEqual(t, len(level1[0].Indices)/3, 190)

	assert.Equal(t, 2, submesh.MipLevels)
}

func TestBuildSubmesh_SmallMeshIsSingleClusterNoGrouping(t *testing.T) {
	mesh := flatGrid(2, 2) // 8 triangles, well under the 124 cluster floor
	submesh, err := virtualgeometry.BuildSubmesh(mesh, virtualgeometry.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, submesh.MipLevels)
	assert.Len(t, submesh.Clusters, 1)
	assert.Empty(t, submesh.ClusterGroups)
}

func TestBuildSubmesh_EmptyMeshErrors(t *testing.T) {
	_, err := virtualgeometry.BuildSubmesh(virtualgeometry.Mesh{}, virtualgeometry.Options{})
	assert.ErrorIs(t, err, virtualgeometry.ErrEmptySubmesh)
}
