package rendergraph_test

import (
	"github.com/arcrender/vgeo/rendergraph"
)

// fakeDevice is a minimal in-memory rendergraph.Device for exercising the
// graph's compile/precompute/execute control flow without a real GPU.
type fakeDevice struct {
	nextFence   map[rendergraph.Queue]rendergraph.FenceValue
	submits     []submitRecord
	waits       []waitRecord
	idleCalls   int
	gcCalls     int
	failSubmit  bool
	sentinelOut bool
}

type submitRecord struct {
	queue rendergraph.Queue
	n     int
}

type waitRecord struct {
	waiter, signaler rendergraph.Queue
	value            rendergraph.FenceValue
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{nextFence: map[rendergraph.Queue]rendergraph.FenceValue{}}
}

func (d *fakeDevice) NewCommandList(q rendergraph.Queue) *rendergraph.CommandList {
	return &rendergraph.CommandList{Queue: q}
}

func (d *fakeDevice) Submit(q rendergraph.Queue, lists []*rendergraph.CommandList) (rendergraph.FenceValue, error) {
	d.submits = append(d.submits, submitRecord{queue: q, n: len(lists)})
	if d.failSubmit {
		return 0, assertErr("submit failed")
	}
	if d.sentinelOut {
		return rendergraph.NoFenceValue, nil
	}
	d.nextFence[q]++
	return d.nextFence[q], nil
}

func (d *fakeDevice) QueueWaitForCmdlist(waiter, signaler rendergraph.Queue, value rendergraph.FenceValue) error {
	d.waits = append(d.waits, waitRecord{waiter: waiter, signaler: signaler, value: value})
	return nil
}

func (d *fakeDevice) WaitIdle() error {
	d.idleCalls++
	return nil
}

func (d *fakeDevice) CollectGarbage() {
	d.gcCalls++
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

func assertErr(msg string) error { return simpleErr(msg) }
