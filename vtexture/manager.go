package vtexture

import (
	"github.com/sirupsen/logrus"
)

// ManagerOptions configures a Manager's atlases and indirection table.
type ManagerOptions struct {
	AtlasResolutionSlots  int
	ShadowResolutionSlots int
	PageSize              int
	ScreenWidth           int
	ScreenHeight          int
	Logger                *logrus.Logger
}

// Manager owns the physical atlas, its shadow-page counterpart, and the
// indirection table, and drives the per-frame residency loop.
type Manager struct {
	atlas       *PhysicalAtlas
	shadowAtlas *PhysicalAtlas
	indirection *IndirectionTable
	resident    map[PageKey]Coord
	log         *logrus.Logger
}

// NewManager builds a Manager per opts.
func NewManager(opts ManagerOptions) (*Manager, error) {
	atlas, err := NewPhysicalAtlas(opts.AtlasResolutionSlots, opts.PageSize)
	if err != nil {
		return nil, err
	}
	shadow, err := NewPhysicalAtlas(opts.ShadowResolutionSlots, opts.PageSize)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		atlas:       atlas,
		shadowAtlas: shadow,
		indirection: NewIndirectionTable(opts.ScreenWidth, opts.ScreenHeight),
		resident:    make(map[PageKey]Coord),
		log:         defaultLogger(opts.Logger),
	}
	atlas.SetEvictHook(func(evicted PageKey, _ Coord) {
		delete(m.resident, evicted)
	})
	return m, nil
}

// KnownGeometry reports whether a page request names a geometry the
// manager has source textures for. Callers supply this as lookup since
// the manager itself is agnostic to asset storage.
type KnownGeometry func(geometryID uint32) bool

// Tick resolves one frame's feedback entries against the physical atlas,
// producing the tile-copy regions the GPU layer must execute and
// refreshing the indirection table. knownGeometry filters entries whose
// geometry_id the caller cannot resolve a source texture for.
func (m *Manager) Tick(feedback []FeedbackEntry, knownGeometry KnownGeometry) (TickStats, []CopyRegion, error) {
	var stats TickStats
	var copies []CopyRegion

	m.indirection.Reset()

	for _, f := range feedback {
		if f.IsSentinel() {
			stats.SentinelCount++
			continue
		}
		if knownGeometry != nil && !knownGeometry(f.GeometryID) {
			stats.UnknownSkipped++
			continue
		}

		key := NewPageKey(f.GeometryID, f.CoordMip)
		if coord, ok := m.atlas.CheckLoaded(key); ok {
			stats.Hits++
			m.indirection.Set(f.PixelIndex, coord)
			continue
		}

		coord, evictedKey, ok := m.atlas.GetNewPosition()
		if !ok {
			return stats, nil, ErrTileMappingFail
		}
		delete(m.resident, evictedKey)
		if evictedKey&sentinelKeyBase == 0 {
			stats.Evictions++
		}

		m.atlas.Add(key, coord)
		m.resident[key] = coord
		stats.Loads++

		pageX, pageY, mip := UnpackCoordMip(f.CoordMip)
		for src := SourceBaseColor; src < sourceTypeCount; src++ {
			copies = append(copies, CopyRegion{
				Source:     src,
				GeometryID: f.GeometryID,
				SrcPageX:   pageX,
				SrcPageY:   pageY,
				SrcMip:     mip,
				Dst:        coord,
			})
		}

		m.indirection.Set(f.PixelIndex, coord)
	}

	m.log.WithFields(logrus.Fields{
		"component": "vtexture",
		"hits":      stats.Hits,
		"loads":     stats.Loads,
		"evictions": stats.Evictions,
		"unknown":   stats.UnknownSkipped,
		"sentinel":  stats.SentinelCount,
	}).Debug("vtexture tick")

	return stats, copies, nil
}

// Resident reports the physical coordinate of key, if currently cached,
// without affecting LRU order.
func (m *Manager) Resident(key PageKey) (Coord, bool) {
	c, ok := m.resident[key]
	return c, ok
}

// Indirection exposes the manager's indirection table for GPU upload.
func (m *Manager) Indirection() *IndirectionTable { return m.indirection }
