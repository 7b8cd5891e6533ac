package vtexture

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for vtexture operations.
var (
	ErrAtlasCapacity   = errors.New("vtexture: atlas resolution must be a positive multiple of page size")
	ErrTileMappingFail = errors.New("vtexture: tile-mapping update failed")
)

// SourceType names one of the material surface slots a geometry's source
// textures are organized into.
type SourceType int

const (
	SourceBaseColor SourceType = iota
	SourceNormal
	SourcePBR
	SourceEmissive
	sourceTypeCount
)

// SentinelFeedback is the "all-1s" feedback-pixel value meaning "no page
// request this frame."
const SentinelFeedback = ^uint32(0)

// PageKey uniquely identifies a virtual page: geometry, page coordinate,
// and mip level packed into one comparable value.
type PageKey uint64

// sentinelKeyBase marks atlas slots that hold no real page yet; it is
// chosen from the top of the key space so it can never collide with a
// real (geometryID<<32|coordMip) key built from ordinary asset IDs.
const sentinelKeyBase = PageKey(1) << 63

func sentinelKey(slot int) PageKey {
	return sentinelKeyBase | PageKey(slot)
}

// NewPageKey packs a geometry ID and a coordinate+mip word into one key.
func NewPageKey(geometryID uint32, coordMip uint32) PageKey {
	return PageKey(uint64(geometryID)<<32 | uint64(coordMip))
}

// PackCoordMip packs a 2D page coordinate and mip level into one 32-bit word.
func PackCoordMip(pageX, pageY uint32, mip uint8) uint32 {
	return uint32(mip)<<24 | (pageY&0xFFF)<<12 | (pageX & 0xFFF)
}

// UnpackCoordMip is PackCoordMip's inverse.
func UnpackCoordMip(coordMip uint32) (pageX, pageY uint32, mip uint8) {
	return coordMip & 0xFFF, (coordMip >> 12) & 0xFFF, uint8(coordMip >> 24)
}

// Coord is a physical-atlas slot coordinate, in slot units (multiply by
// PageSize for pixel units).
type Coord struct {
	X, Y int
}

// FeedbackEntry is one decoded GPU feedback-buffer sample.
type FeedbackEntry struct {
	PixelIndex int
	GeometryID uint32
	CoordMip   uint32
}

// IsSentinel reports whether this entry encodes "no request."
func (f FeedbackEntry) IsSentinel() bool {
	return f.CoordMip == SentinelFeedback
}

// CopyRegion describes one tile upload the external GPU layer must
// perform: copy SourceType's mip-indexed region of a geometry's source
// texture into the physical atlas at Dst*PageSize.
type CopyRegion struct {
	Source     SourceType
	GeometryID uint32
	SrcPageX   uint32
	SrcPageY   uint32
	SrcMip     uint8
	Dst        Coord
}

// TickStats summarizes one Manager.Tick call.
type TickStats struct {
	Hits           int
	Loads          int
	Evictions      int
	UnknownSkipped int
	SentinelCount  int
}

func defaultLogger(l *logrus.Logger) *logrus.Logger {
	if l != nil {
		return l
	}
	return logrus.StandardLogger()
}
