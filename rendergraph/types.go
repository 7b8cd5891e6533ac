package rendergraph

import "errors"

// PassType names the GPU queue discipline a pass requires.
type PassType int

const (
	Graphics PassType = iota
	Compute
)

func (t PassType) valid() bool { return t == Graphics || t == Compute }

// Queue returns the logical queue a pass of this type submits on.
func (t PassType) Queue() Queue {
	if t == Compute {
		return QueueCompute
	}
	return QueueGraphics
}

// Queue is one of the two logical GPU queues.
type Queue int

const (
	QueueGraphics Queue = iota
	QueueCompute
)

// Phase separates passes that run once (or, for immediate passes, on every
// RunPrecompute call) ahead of the main frame from the ones that run every
// frame in order.
type Phase int

const (
	PhaseMain Phase = iota
	PhasePrecompute
)

// AsyncType is an OR-able bitmask: Wait is set when a pass has a
// predecessor on a different queue, Signal when it has a successor on a
// different queue. A pass can carry both bits at once; there is no
// separate combined constant for that state.
type AsyncType uint8

const (
	AsyncNone   AsyncType = 0
	AsyncWait   AsyncType = 1 << 0
	AsyncSignal AsyncType = 1 << 1
)

// FenceValue is a monotonic per-queue submission counter.
type FenceValue uint64

// NoFenceValue is the sentinel a Device.Submit returns on failure; the
// render graph treats receiving it as fatal.
const NoFenceValue = FenceValue(^uint64(0))

// Sentinel errors for rendergraph operations.
var (
	ErrInvalidPassType = errors.New("rendergraph: pass type is neither Graphics nor Compute")
	ErrCycleDetected   = errors.New("rendergraph: pass dependency graph has a cycle")
	ErrNoFenceValue    = errors.New("rendergraph: submit returned the no-fence-value sentinel")
	ErrNotCompiled     = errors.New("rendergraph: graph has not been compiled")
	ErrUnknownPass     = errors.New("rendergraph: pass handle does not belong to this graph")
)

// Pass is a node in the render graph: one compile-time resource-setup
// step and one execute-time command-recording step.
type Pass interface {
	// Kind reports this pass's queue discipline and registration cohort.
	Kind() (PassType, Phase)
	// Compile runs once per render-graph compile, before any frame
	// executes. Passes that produce persistent resources collect them
	// into cache under well-known names.
	Compile(dev Device, cache *ResourceCache) error
	// Execute records this pass's commands into cmdList.
	Execute(cmdList *CommandList, cache *ResourceCache) error
	// FinishPass runs after every frame's (or precompute's) submission;
	// it may free transient per-pass CPU buffers.
	FinishPass(cache *ResourceCache) error
}

// ImmediatePass is implemented by precompute passes that resubmit their
// command list on every RunPrecompute call instead of running once;
// Execute does not run them.
type ImmediatePass interface {
	Immediate() bool
}
