package rendergraph

import "fmt"

// RunPrecompute opens, executes, and closes every precompute pass's
// command list, submits them to the graphics queue as one batch, waits
// device-idle, and calls FinishPass on each. Passes are then excluded
// from future RunPrecompute calls unless flagged Immediate, in which
// case their command list resubmits every call.
func (g *Graph) RunPrecompute(dev Device, cache *ResourceCache) error {
	if !g.compiled {
		return ErrNotCompiled
	}

	var batch []*CommandList
	var active []*registeredPass
	for _, rp := range g.precompute {
		if rp.excluded {
			continue
		}
		if err := rp.cmdList.Open(); err != nil {
			return fmt.Errorf("rendergraph: precompute pass %s open: %w", rp.id, err)
		}
		if err := rp.pass.Execute(rp.cmdList, cache); err != nil {
			return fmt.Errorf("rendergraph: precompute pass %s execute: %w", rp.id, err)
		}
		if err := rp.cmdList.Close(); err != nil {
			return fmt.Errorf("rendergraph: precompute pass %s close: %w", rp.id, err)
		}
		batch = append(batch, rp.cmdList)
		active = append(active, rp)
	}

	if len(batch) == 0 {
		return nil
	}

	fence, err := dev.Submit(QueueGraphics, batch)
	if err != nil {
		return fmt.Errorf("rendergraph: precompute submit: %w", err)
	}
	if fence == NoFenceValue {
		return ErrNoFenceValue
	}

	if err := dev.WaitIdle(); err != nil {
		return fmt.Errorf("rendergraph: precompute wait idle: %w", err)
	}

	for _, rp := range active {
		if err := rp.pass.FinishPass(cache); err != nil {
			return fmt.Errorf("rendergraph: precompute pass %s finish: %w", rp.id, err)
		}
		if !rp.immediate {
			rp.excluded = true
		} else {
			rp.cmdList = dev.NewCommandList(rp.passType.Queue())
		}
	}
	return nil
}
