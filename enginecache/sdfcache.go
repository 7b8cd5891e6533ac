package enginecache

import (
	"fmt"
	"io"
)

// SDFSubmesh is one submesh's signed-distance-field cache payload: an
// axis-aligned bounding box and a row-major resolution³ sample grid.
type SDFSubmesh struct {
	AABBMin, AABBMax [3]float64
	Samples          []float32 // len == resolution*resolution*resolution
}

// WriteSDF writes the SDF cache format: u32 sdf_resolution, then per
// submesh an AABB (6 floats) and resolution³ float32 samples.
func WriteSDF(w io.Writer, resolution uint32, submeshes []SDFSubmesh) error {
	if err := writeU32(w, resolution); err != nil {
		return err
	}
	want := int(resolution) * int(resolution) * int(resolution)
	for i, sm := range submeshes {
		if len(sm.Samples) != want {
			return fmt.Errorf("enginecache: submesh %d has %d samples, want %d", i, len(sm.Samples), want)
		}
		if err := writeFloats(w, sm.AABBMin[0], sm.AABBMin[1], sm.AABBMin[2],
			sm.AABBMax[0], sm.AABBMax[1], sm.AABBMax[2]); err != nil {
			return err
		}
		for _, s := range sm.Samples {
			if err := writeF32(w, float64(s)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadSDF reads the SDF cache format for submeshCount submeshes, returning
// ErrStaleCache if the header's sdf_resolution differs from wantResolution.
func ReadSDF(r io.Reader, wantResolution uint32, submeshCount int) ([]SDFSubmesh, error) {
	resolution, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if resolution != wantResolution {
		return nil, ErrStaleCache
	}

	n := int(resolution) * int(resolution) * int(resolution)
	out := make([]SDFSubmesh, submeshCount)
	for i := range out {
		mins, err := readFloats(r, 3)
		if err != nil {
			return nil, err
		}
		maxs, err := readFloats(r, 3)
		if err != nil {
			return nil, err
		}
		out[i].AABBMin = [3]float64{mins[0], mins[1], mins[2]}
		out[i].AABBMax = [3]float64{maxs[0], maxs[1], maxs[2]}

		out[i].Samples = make([]float32, n)
		for j := range out[i].Samples {
			v, err := readF32(r)
			if err != nil {
				return nil, err
			}
			out[i].Samples[j] = float32(v)
		}
	}
	return out, nil
}
