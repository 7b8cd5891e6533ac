// Package enginecache (de)serializes the engine's three persisted cache
// file formats using encoding/binary in little-endian, fixed-width
// fields — no library in the retrieved pack offers a general
// custom-binary-layout codec, so this is a from-scratch, standard-library
// implementation (see DESIGN.md).
//
// MeshLOD handles the mesh-LOD cluster/cluster-group cache
// (assets/cache/virtual_mesh/<name>.vm), regenerated when the caller's
// cluster/group size caps no longer match the header. SDF handles the
// signed-distance-field cache (assets/sdf/<name>.sdf). Surface handles
// the surface-cache cache (assets/SurfaceCache/<name>.sc). Shader exposes
// only the mtime-based staleness check and the length-prefixed
// read/write framing for compiled shader binaries
// (assets/ShaderCache/<name>_<entry>_DEBUG.bin) — compilation itself is
// out of scope.
package enginecache
