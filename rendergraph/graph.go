package rendergraph

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/arcrender/vgeo/core"
)

// Graph owns the precompute and main-frame pass cohorts, each its own
// directed core.Graph of precede/succeed dependencies, and the
// cross-queue fence bookkeeping the execute phase needs.
type Graph struct {
	precompute    []*registeredPass
	main          []*registeredPass
	precomputeAdj *core.Graph
	mainAdj       *core.Graph
	compiled      bool
	lastSignal    map[Queue]FenceValue
	log           *logrus.Logger
}

// NewGraph builds an empty render graph.
func NewGraph(log *logrus.Logger) *Graph {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Graph{
		precomputeAdj: core.NewGraph(core.WithDirected(true)),
		mainAdj:       core.NewGraph(core.WithDirected(true)),
		lastSignal:    make(map[Queue]FenceValue),
		log:           log,
	}
}

// MainAsyncType returns the compiled async-type bitmask of the main-cohort
// pass at topological position idx.
func (g *Graph) MainAsyncType(idx int) AsyncType {
	if idx < 0 || idx >= len(g.main) {
		return AsyncNone
	}
	return g.main[idx].async
}

// PrecomputeCount reports how many passes are registered in the
// precompute cohort, regardless of whether they have since been
// excluded after running once.
func (g *Graph) PrecomputeCount() int {
	return len(g.precompute)
}

func (g *Graph) adjacencyFor(phase Phase) *core.Graph {
	if phase == PhasePrecompute {
		return g.precomputeAdj
	}
	return g.mainAdj
}

func (g *Graph) cohortFor(phase Phase) []*registeredPass {
	if phase == PhasePrecompute {
		return g.precompute
	}
	return g.main
}

// AddPass registers p, giving it a stable index within its cohort
// (precompute vs. main-frame, per Kind's Phase), and returns a handle
// for declaring precede/succeed edges.
func (g *Graph) AddPass(p Pass) (*PassHandle, error) {
	passType, phase := p.Kind()
	if !passType.valid() {
		return nil, ErrInvalidPassType
	}

	rp := &registeredPass{pass: p, phase: phase, passType: passType}
	if ip, ok := p.(ImmediatePass); ok {
		rp.immediate = ip.Immediate()
	}

	adj := g.adjacencyFor(phase)
	switch phase {
	case PhasePrecompute:
		rp.id = strconv.Itoa(len(g.precompute))
		g.precompute = append(g.precompute, rp)
	default:
		rp.id = strconv.Itoa(len(g.main))
		g.main = append(g.main, rp)
	}
	if err := adj.AddVertex(rp.id); err != nil {
		return nil, err
	}
	g.compiled = false
	return &PassHandle{g: g, rp: rp}, nil
}
