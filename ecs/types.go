package ecs

import "errors"

// EntityID identifies one entity. The zero value is never issued by
// World.CreateEntity, so it is safe to use as a "no entity" sentinel.
type EntityID uint32

// ErrEntityDead indicates a component operation targeted a destroyed
// (or never-created) entity.
var ErrEntityDead = errors.New("ecs: entity is not alive")
