// Package meshsimplify reduces a triangle mesh to a target triangle count
// via quadric-error edge collapse, honoring caller-supplied locked
// positions that must not move.
//
// Simplify mutates its Mesh argument in place and reports the maximum
// collapse error observed. Internally it maintains, per triangle, a
// quadric.Surface; per edge, a collapse-error heap; and a position-keyed
// spatialhash.Table used to weld coincident vertices. A vertex's adjacent
// triangles are found by scanning the triangle list.
//
// virtualgeometry calls Simplify once per cluster group, on the group's
// concatenated child geometry, to produce the next LOD,
// locking every group-external boundary position first so parent clusters
// stay seamless against their siblings.
package meshsimplify
