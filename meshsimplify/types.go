package meshsimplify

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/arcrender/vgeo/spatialhash"
)

// Sentinel errors for meshsimplify operations.
var (
	// ErrCompactMismatch indicates the post-collapse compaction pass found a
	// triangle referencing a removed or degenerate vertex. Fatal per the
	// invariant that compaction's recount must always agree with itself.
	ErrCompactMismatch = errors.New("meshsimplify: compacted vertex/triangle count mismatch")

	// ErrEmptyMesh indicates the input mesh has no triangles to simplify.
	ErrEmptyMesh = errors.New("meshsimplify: mesh has no triangles")

	// ErrNegativeTarget indicates a negative target triangle count.
	ErrNegativeTarget = errors.New("meshsimplify: target triangle count must be >= 0")
)

// defaultExcessiveErrorThreshold is the empirically-chosen point at which
// the simplifier gives up rather than keep collapsing at ruinous cost.
// Exposed via Options so callers can tune it for their geometric scale.
const defaultExcessiveErrorThreshold = 1e6

// bothLockedPenalty is added to the collapse error whenever both endpoints
// of an edge are locked and the edge is forced to its midpoint.
const bothLockedPenalty = 1e8

// highValencyThreshold is the adjacent-triangle count past which a
// per-extra-triangle penalty discourages collapsing hub vertices.
const highValencyThreshold = 24

// Vertex is one mesh attribute record.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Tangent  mgl64.Vec4
	UV       mgl64.Vec2
}

// Mesh is a mutable triangle-list mesh: Indices must have a length that is
// a multiple of 3, and every value must be < len(Vertices).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Result reports the outcome of a Simplify call.
type Result struct {
	RemainingTriangles int
	MaxError           float64
	Ok                 bool
}

// PositionSet is the set of vertex positions that Simplify must not move.
// Membership is by spatial hash, so any vertex bit-identical (after -0.0
// normalization) to a locked position is treated as locked, regardless of
// which index first registered it.
type PositionSet map[spatialhash.Key]struct{}

// NewPositionSet returns an empty PositionSet.
func NewPositionSet() PositionSet {
	return make(PositionSet)
}

// Lock marks pos as immovable.
func (s PositionSet) Lock(pos mgl64.Vec3) {
	s[hashVec3(pos)] = struct{}{}
}

func (s PositionSet) contains(pos mgl64.Vec3) bool {
	_, ok := s[hashVec3(pos)]
	return ok
}

// Contains reports whether pos (by position, not index identity) is locked.
func (s PositionSet) Contains(pos mgl64.Vec3) bool {
	return s.contains(pos)
}

func hashVec3(p mgl64.Vec3) spatialhash.Key {
	return spatialhash.HashPosition(float32(p.X()), float32(p.Y()), float32(p.Z()))
}

// Options tunes a Simplify call.
type Options struct {
	// ExcessiveErrorThreshold stops the collapse loop once the cheapest
	// remaining edge exceeds this cost. Zero selects defaultExcessiveErrorThreshold.
	ExcessiveErrorThreshold float64
	// Logger receives diagnostic events. Nil selects logrus.StandardLogger().
	Logger *logrus.Logger
}

func (o Options) threshold() float64 {
	if o.ExcessiveErrorThreshold > 0 {
		return o.ExcessiveErrorThreshold
	}
	return defaultExcessiveErrorThreshold
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
