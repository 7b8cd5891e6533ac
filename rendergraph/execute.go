package rendergraph

import "fmt"

// Execute runs one main frame: records every main-cohort pass's command
// list in topological order, batching consecutive same-queue lists and
// inserting cross-queue fence waits/signals where async_type demands
// them, then waits device-idle, collects garbage, invokes presentFunc,
// and advances the cache's frame counter.
//
// Batch-submission walk: accumulate command lists into a per-queue
// batch as passes are visited. Before adding a pass with AsyncWait, if
// the other queue has a recorded signal fence, make this pass's queue
// wait on that fence. After adding a pass with AsyncSignal, flush and
// submit the current batch for that pass's queue, recording the returned
// fence as the value the other queue's next wait will reference. Lists
// still batched at end-of-frame are submitted on their own queues:
// graphics lists on the graphics queue, then compute lists on the compute
// queue; compute lists are never moved onto the graphics queue.
func (g *Graph) Execute(dev Device, cache *ResourceCache, presentFunc func() error) error {
	if !g.compiled {
		return ErrNotCompiled
	}

	batches := map[Queue][]*CommandList{}

	flush := func(q Queue) error {
		lists := batches[q]
		if len(lists) == 0 {
			return nil
		}
		fence, err := dev.Submit(q, lists)
		if err != nil {
			return fmt.Errorf("rendergraph: submit on queue %d: %w", q, err)
		}
		if fence == NoFenceValue {
			return ErrNoFenceValue
		}
		g.lastSignal[q] = fence
		batches[q] = nil
		return nil
	}

	otherQueue := func(q Queue) Queue {
		if q == QueueGraphics {
			return QueueCompute
		}
		return QueueGraphics
	}

	for _, rp := range g.main {
		q := rp.passType.Queue()

		if rp.async&AsyncWait != 0 {
			signaler := otherQueue(q)
			if v, ok := g.lastSignal[signaler]; ok {
				if err := dev.QueueWaitForCmdlist(q, signaler, v); err != nil {
					return fmt.Errorf("rendergraph: cross-queue wait for pass %s: %w", rp.id, err)
				}
			}
		}

		if err := rp.cmdList.Open(); err != nil {
			return fmt.Errorf("rendergraph: pass %s open: %w", rp.id, err)
		}
		if err := rp.pass.Execute(rp.cmdList, cache); err != nil {
			return fmt.Errorf("rendergraph: pass %s execute: %w", rp.id, err)
		}
		if err := rp.cmdList.Close(); err != nil {
			return fmt.Errorf("rendergraph: pass %s close: %w", rp.id, err)
		}
		batches[q] = append(batches[q], rp.cmdList)

		if rp.async&AsyncSignal != 0 {
			if err := flush(q); err != nil {
				return err
			}
		}
	}

	if err := flush(QueueGraphics); err != nil {
		return err
	}
	if err := flush(QueueCompute); err != nil {
		return err
	}

	for _, rp := range g.main {
		if err := rp.pass.FinishPass(cache); err != nil {
			return fmt.Errorf("rendergraph: pass %s finish: %w", rp.id, err)
		}
		rp.cmdList = dev.NewCommandList(rp.passType.Queue())
	}

	if err := dev.WaitIdle(); err != nil {
		return fmt.Errorf("rendergraph: wait idle: %w", err)
	}
	dev.CollectGarbage()

	if err := presentFunc(); err != nil {
		return fmt.Errorf("rendergraph: present: %w", err)
	}

	cache.incrementFrame()
	return nil
}
