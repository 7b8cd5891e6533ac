// Package vtexture implements the virtual-texture residency manager: a
// GPU-feedback-driven page cache that binds PAGE_SIZE x PAGE_SIZE tiles of
// mip-chained source textures into a fixed physical atlas plus an
// indirection table.
//
// Manager.Tick runs the five-step per-frame loop: resolve each feedback
// entry to a virtual page key, consult the physical atlas (LRU hit or
// evict-and-load), accumulate per-source-type copy regions, rebuild the
// indirection table, and return the tick's stats and copy regions (the
// table itself is read through Manager.Indirection). PhysicalAtlas is backed
// by hashicorp/golang-lru's simplelru, matching the fixed-capacity,
// evict-callback residency model the manager's contract describes.
package vtexture
