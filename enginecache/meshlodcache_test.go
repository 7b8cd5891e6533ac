package enginecache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcrender/vgeo/enginecache"
	"github.com/arcrender/vgeo/virtualgeometry"
)

func flatQuad() virtualgeometry.Mesh {
	return virtualgeometry.Mesh{
		Vertices: []virtualgeometry.Vertex{
			{Position: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{0, 0, 1}},
			{Position: mgl64.Vec3{1, 0, 0}, Normal: mgl64.Vec3{0, 0, 1}},
			{Position: mgl64.Vec3{1, 1, 0}, Normal: mgl64.Vec3{0, 0, 1}},
			{Position: mgl64.Vec3{0, 1, 0}, Normal: mgl64.Vec3{0, 0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestLoadOrBuildMeshLOD_MissThenHit(t *testing.T) {
	dir := t.TempDir()
	meshes := []virtualgeometry.Mesh{flatQuad()}

	built, err := enginecache.LoadOrBuildMeshLOD(dir, "prop_crate", meshes, virtualgeometry.Options{}, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, built)

	cachePath := filepath.Join(dir, "prop_crate.vm")
	require.FileExists(t, cachePath)

	cached, err := enginecache.LoadOrBuildMeshLOD(dir, "prop_crate", meshes, virtualgeometry.Options{}, 0, nil)
	require.NoError(t, err)
	require.Len(t, cached, len(built))
	assert.Equal(t, built[0].MipLevels, cached[0].MipLevels)
	assert.Equal(t, len(built[0].Clusters), len(cached[0].Clusters))
}

func TestLoadOrBuildMeshLOD_StaleHeaderRebuilds(t *testing.T) {
	dir := t.TempDir()
	meshes := []virtualgeometry.Mesh{flatQuad()}
	cachePath := filepath.Join(dir, "prop_crate.vm")

	f, err := os.Create(cachePath)
	require.NoError(t, err)
	require.NoError(t, enginecache.WriteMeshLOD(f, virtualgeometry.ClusterMaxTriangles/2, virtualgeometry.GroupMaxClusters, nil))
	require.NoError(t, f.Close())

	rebuilt, err := enginecache.LoadOrBuildMeshLOD(dir, "prop_crate", meshes, virtualgeometry.Options{}, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rebuilt)
}
