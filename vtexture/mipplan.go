package vtexture

import "math/bits"

// MipStep describes one 2x2-filter downsample pass: read mip Src, write
// mip Src+1.
type MipStep struct {
	Src int
}

// MipPlan is the ordered sequence of downsample passes needed to build a
// full mip chain for one newly loaded source texture.
type MipPlan struct {
	Levels int
	Steps  []MipStep
}

// PlanMips computes the mip chain for a source texture of mip0Size pixels
// down to pageSize, per levels = log2(mip0Size/pageSize) + 1.
func PlanMips(mip0Size, pageSize int) MipPlan {
	if mip0Size <= pageSize || pageSize <= 0 {
		return MipPlan{Levels: 1}
	}
	ratio := mip0Size / pageSize
	levels := bits.Len(uint(ratio)) // log2(ratio)+1, ratio is a power of two by convention
	plan := MipPlan{Levels: levels, Steps: make([]MipStep, 0, levels-1)}
	for i := 0; i < levels-1; i++ {
		plan.Steps = append(plan.Steps, MipStep{Src: i})
	}
	return plan
}
