package virtualgeometry

import (
	"golang.org/x/sync/errgroup"
)

// BuildSubmeshes runs BuildSubmesh over meshes concurrently, bounded by
// workerPoolSize in-flight builds at a time (engineconfig.WorkerPoolSize
// feeds this). Results preserve the input order. A failed build does not
// stop the others: every build still runs, and once all have finished the
// first error is returned with nil results.
func BuildSubmeshes(meshes []Mesh, opts Options, workerPoolSize int) ([]*Submesh, error) {
	results := make([]*Submesh, len(meshes))

	var g errgroup.Group
	if workerPoolSize > 0 {
		g.SetLimit(workerPoolSize)
	}

	for i := range meshes {
		i := i
		g.Go(func() error {
			sm, err := BuildSubmesh(meshes[i], opts)
			if err != nil {
				return err
			}
			results[i] = sm
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
