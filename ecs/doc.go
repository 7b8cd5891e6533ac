// Package ecs implements the sparse-set entity/component/world store the
// render graph and scene systems read from: per component type, a dense
// slice of values plus a sparse EntityID -> dense-index map, so tuple
// iteration over several component types is a handful of nested
// sparse-set membership checks rather than a dynamic lookup per entity.
//
// Events are dispatched through a small typed bus: Subscribe[T] and
// Publish[T] key a map of handler slices by reflect.Type, so a
// World.Publish call only invokes handlers registered for that exact
// event type.
package ecs
