package rendergraph

// Reset clears queued fence values, each pass's async-type, and cached
// command lists, without touching persistent resources in the
// ResourceCache. Call on explicit teardown or swapchain rebuild, then
// Compile again before the next RunPrecompute/Execute.
func (g *Graph) Reset() {
	g.lastSignal = make(map[Queue]FenceValue)
	for _, rp := range g.precompute {
		rp.async = AsyncNone
		rp.cmdList = nil
	}
	for _, rp := range g.main {
		rp.async = AsyncNone
		rp.cmdList = nil
	}
	g.compiled = false
}
