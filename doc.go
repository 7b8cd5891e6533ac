// Package vgeo is the core of a real-time virtual-geometry and
// virtual-texture streaming pipeline for a 3D rendering engine.
//
// It packages four subsystems that together turn a raw triangle mesh and
// its material textures into GPU-ready, streamable working sets, plus the
// render-graph scheduler that drives the GPU queues that consume them:
//
//	meshsimplify/    — quadric-error edge-collapse mesh simplification
//	virtualgeometry/ — recursive cluster/cluster-group DAG builder (Nanite-style LOD)
//	vtexture/        — GPU-feedback-driven virtual texture page residency manager
//	rendergraph/     — pass DAG compiler/scheduler across graphics + compute queues
//
// Supporting packages:
//
//	quadric/      — QuadricSurface plane-error accumulator
//	spatialhash/  — position-keyed multimaps used to weld coincident vertices
//	clusterpart/  — balanced graph bisection used to carve mesh/cluster graphs
//	ecs/          — sparse-set entity/component/world store read by render passes
//	enginecache/  — binary (de)serialization of the on-disk LOD/SDF/surface caches
//	engineconfig/ — TOML-backed tunables for the engine
//
// and the graph primitives they are built on:
//
//	core/      — thread-safe weighted Graph used for adjacency and pass-dependency DAGs
//	gridgraph/ — 2D grid connectivity analysis behind the physical texture atlas's fragmentation diagnostics
//
// None of these packages talk to a GPU directly. They operate on plain Go
// slices and maps and hand back serializable results; wiring them to an
// actual device, command list, or window is left to the embedding
// application, exactly as the specification draws the scope line.
package vgeo
