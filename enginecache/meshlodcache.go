package enginecache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/arcrender/vgeo/virtualgeometry"
)

// LoadOrBuildMeshLOD returns modelName's cluster/cluster-group DAG, loading
// it from dir's mesh-LOD cache (assets/cache/virtual_mesh/<name>.vm) when a
// file keyed by the current (cluster_size, group_size) exists, and otherwise
// building it with virtualgeometry.BuildSubmeshes and writing a fresh cache
// file before returning — spec.md §4.2's "Caching" requirement: a parameter
// mismatch (ErrStaleCache) forces the rebuild rather than failing the call.
func LoadOrBuildMeshLOD(dir, modelName string, meshes []virtualgeometry.Mesh, opts virtualgeometry.Options, workerPoolSize int, log *logrus.Logger) ([]*virtualgeometry.Submesh, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	fields := map[string]interface{}{"component": "enginecache", "model": modelName}
	path := meshLODCachePath(dir, modelName)

	if submeshes, hit := tryLoadMeshLOD(path, log, fields); hit {
		return submeshes, nil
	}

	submeshes, err := virtualgeometry.BuildSubmeshes(meshes, opts, workerPoolSize)
	if err != nil {
		return nil, err
	}

	if err := saveMeshLOD(dir, path, submeshes); err != nil {
		return nil, err
	}
	return submeshes, nil
}

func tryLoadMeshLOD(path string, log *logrus.Logger, fields map[string]interface{}) ([]*virtualgeometry.Submesh, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	submeshes, err := ReadMeshLOD(f, virtualgeometry.ClusterMaxTriangles, virtualgeometry.GroupMaxClusters)
	if err != nil {
		if errors.Is(err, ErrStaleCache) {
			log.WithFields(fields).Debug("mesh LOD cache stale, rebuilding")
		} else {
			log.WithFields(fields).WithError(err).Warn("mesh LOD cache unreadable, rebuilding")
		}
		return nil, false
	}

	log.WithFields(fields).Debug("mesh LOD cache hit")
	return submeshes, true
}

func saveMeshLOD(dir, path string, submeshes []*virtualgeometry.Submesh) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("enginecache: creating mesh LOD cache dir %q: %w", dir, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("enginecache: creating mesh LOD cache %q: %w", path, err)
	}
	defer f.Close()

	if err := WriteMeshLOD(f, virtualgeometry.ClusterMaxTriangles, virtualgeometry.GroupMaxClusters, submeshes); err != nil {
		return fmt.Errorf("enginecache: writing mesh LOD cache %q: %w", path, err)
	}
	return nil
}

func meshLODCachePath(dir, modelName string) string {
	return filepath.Join(dir, modelName+".vm")
}
