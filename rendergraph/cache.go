package rendergraph

import "sync"

// ResourceCache holds persistent resources and raw constant pointers
// passes publish during compile, shared read access across passes for
// the render graph's lifetime. It does not clone anything it is given;
// callers guarantee backing storage outlives the graph.
type ResourceCache struct {
	mu         sync.RWMutex
	resources  map[string]interface{}
	constants  map[string]interface{}
	frameIndex uint64
}

// NewResourceCache builds an empty cache.
func NewResourceCache() *ResourceCache {
	return &ResourceCache{
		resources: make(map[string]interface{}),
		constants: make(map[string]interface{}),
	}
}

// Collect publishes a persistent resource under name.
func (c *ResourceCache) Collect(name string, resource interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources[name] = resource
}

// Require looks up a persistent resource published by an earlier pass.
func (c *ResourceCache) Require(name string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.resources[name]
	return v, ok
}

// CollectConstants publishes a raw constant-data pointer under name.
func (c *ResourceCache) CollectConstants(name string, ptr interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constants[name] = ptr
}

// RequireConstants looks up a constant-data pointer published earlier.
func (c *ResourceCache) RequireConstants(name string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.constants[name]
	return v, ok
}

// FrameIndex returns the current frame counter.
func (c *ResourceCache) FrameIndex() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frameIndex
}

// incrementFrame advances the frame counter at the end of Execute.
func (c *ResourceCache) incrementFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frameIndex++
}
