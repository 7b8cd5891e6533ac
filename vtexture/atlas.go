package vtexture

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// PhysicalAtlas is a fixed-capacity grid of page slots with LRU
// replacement keyed by virtual page key, backed by
// hashicorp/golang-lru's simplelru.LRU. Every slot holds exactly one
// entry at all times — real or sentinel — so the atlas is always full,
// per spec.
type PhysicalAtlas struct {
	resolutionSlots int
	pageSize        int
	cache           *lru.LRU
	onEvict         func(evicted PageKey, coord Coord)
}

// NewPhysicalAtlas builds an atlas of resolutionSlots x resolutionSlots
// page slots (each pageSize x pageSize pixels), seeded with distinct
// sentinel keys so CheckLoaded on any real key starts false and the
// atlas's slot count never changes.
func NewPhysicalAtlas(resolutionSlots, pageSize int) (*PhysicalAtlas, error) {
	if resolutionSlots <= 0 || pageSize <= 0 {
		return nil, ErrAtlasCapacity
	}
	a := &PhysicalAtlas{resolutionSlots: resolutionSlots, pageSize: pageSize}

	cache, err := lru.NewLRU(resolutionSlots*resolutionSlots, func(key interface{}, value interface{}) {
		if a.onEvict != nil {
			a.onEvict(key.(PageKey), value.(Coord))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("vtexture: building physical atlas: %w", err)
	}
	a.cache = cache

	slot := 0
	for y := 0; y < resolutionSlots; y++ {
		for x := 0; x < resolutionSlots; x++ {
			a.cache.Add(sentinelKey(slot), Coord{X: x, Y: y})
			slot++
		}
	}
	return a, nil
}

// PageSize returns the pixel size of one page slot.
func (a *PhysicalAtlas) PageSize() int { return a.pageSize }

// ResidentCount returns the number of slots holding a non-sentinel key.
func (a *PhysicalAtlas) ResidentCount() int {
	n := 0
	for _, k := range a.cache.Keys() {
		if k.(PageKey)&sentinelKeyBase == 0 {
			n++
		}
	}
	return n
}

// Capacity returns the total slot count (resolutionSlots^2).
func (a *PhysicalAtlas) Capacity() int {
	return a.resolutionSlots * a.resolutionSlots
}

// CheckLoaded reports whether key is resident, bumping it to MRU on hit.
func (a *PhysicalAtlas) CheckLoaded(key PageKey) (Coord, bool) {
	v, ok := a.cache.Get(key)
	if !ok {
		return Coord{}, false
	}
	return v.(Coord), true
}

// GetNewPosition evicts the LRU slot and returns its coordinate and the
// virtual key that previously occupied it (sentinel if the slot was never
// used). The caller must immediately Add the new page's key at that
// coordinate to keep the atlas full.
func (a *PhysicalAtlas) GetNewPosition() (Coord, PageKey, bool) {
	k, v, ok := a.cache.RemoveOldest()
	if !ok {
		return Coord{}, 0, false
	}
	return v.(Coord), k.(PageKey), true
}

// Add sets key as MRU at coord, refilling the slot GetNewPosition freed.
func (a *PhysicalAtlas) Add(key PageKey, coord Coord) {
	a.cache.Add(key, coord)
}

// SetEvictHook installs a callback fired whenever the LRU naturally
// evicts an entry (including via GetNewPosition's RemoveOldest call).
func (a *PhysicalAtlas) SetEvictHook(f func(evicted PageKey, coord Coord)) {
	a.onEvict = f
}
