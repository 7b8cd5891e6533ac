package engineconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Sentinel errors for engineconfig operations.
var (
	ErrClusterBounds    = errors.New("engineconfig: cluster triangle bounds invalid")
	ErrGroupBounds      = errors.New("engineconfig: cluster-group bounds invalid")
	ErrPageSizeNotPow2  = errors.New("engineconfig: PAGE_SIZE must be a power of two")
	ErrAtlasNotMultiple = errors.New("engineconfig: atlas resolution must be a multiple of PAGE_SIZE")
	ErrWorkerPoolSize   = errors.New("engineconfig: worker pool size must be positive")
	ErrSimplifierError  = errors.New("engineconfig: simplifier excessive-error threshold must be positive")
)

// Config holds the tunables that govern the virtual geometry builder,
// virtual texture manager, worker pool sizing, cache locations, and
// logging for one engine run.
type Config struct {
	// ClusterMaxTriangles / ClusterMinTriangles bound a MeshCluster's
	// triangle count (spec.md: up to 128).
	ClusterMaxTriangles int `toml:"cluster_max_triangles"`
	ClusterMinTriangles int `toml:"cluster_min_triangles"`

	// GroupMaxClusters / GroupMinClusters bound a ClusterGroup's cluster
	// count (spec.md: up to 32).
	GroupMaxClusters int `toml:"group_max_clusters"`
	GroupMinClusters int `toml:"group_min_clusters"`

	// SimplifierExcessiveError is the mesh simplifier's early-exit error
	// threshold, exposed as a tunable per spec.md §9's open question
	// rather than hardcoded.
	SimplifierExcessiveError float64 `toml:"simplifier_excessive_error"`

	// PageSize is the virtual-texture page edge length in pixels; must
	// be a power of two.
	PageSize int `toml:"page_size"`

	// AtlasResolutionSlots / ShadowAtlasResolutionSlots are the physical
	// and shadow atlases' side length in PAGE_SIZE-pixel slots.
	AtlasResolutionSlots       int `toml:"atlas_resolution_slots"`
	ShadowAtlasResolutionSlots int `toml:"shadow_atlas_resolution_slots"`

	// ClientWidth / ClientHeight are the compile-time window resolution
	// spec.md §6 describes.
	ClientWidth  int `toml:"client_width"`
	ClientHeight int `toml:"client_height"`

	// WorkerPoolSize bounds the fan-out pool used for per-mesh material
	// import, per-submesh simplifier work, and feedback-buffer scans.
	WorkerPoolSize int `toml:"worker_pool_size"`

	// CacheRoot is the root directory under which
	// assets/cache/virtual_mesh, assets/sdf, assets/SurfaceCache, and
	// assets/ShaderCache are resolved.
	CacheRoot string `toml:"cache_root"`

	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
	// LogFormat selects "text" or "json" logrus formatting.
	LogFormat string `toml:"log_format"`
}

// Default returns the engine's built-in tunables, used when no config
// file is present and as the base Load merges a TOML file's values onto.
func Default() Config {
	return Config{
		ClusterMaxTriangles:        128,
		ClusterMinTriangles:        124,
		GroupMaxClusters:           32,
		GroupMinClusters:           28,
		SimplifierExcessiveError:   1e6,
		PageSize:                   128,
		AtlasResolutionSlots:       64,
		ShadowAtlasResolutionSlots: 32,
		ClientWidth:                1920,
		ClientHeight:               1080,
		WorkerPoolSize:             8,
		CacheRoot:                  "assets",
		LogLevel:                   "info",
		LogFormat:                  "text",
	}
}

// Load reads path as TOML onto the engine's Default, then validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("engineconfig: decoding %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg as TOML to path, creating or truncating it.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("engineconfig: encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("engineconfig: writing %s: %w", path, err)
	}
	return nil
}

// Validate fatal-checks every bound the rest of the engine assumes.
func (c *Config) Validate() error {
	if c.ClusterMinTriangles <= 0 || c.ClusterMinTriangles > c.ClusterMaxTriangles {
		return ErrClusterBounds
	}
	if c.GroupMinClusters <= 0 || c.GroupMinClusters > c.GroupMaxClusters {
		return ErrGroupBounds
	}
	if c.PageSize <= 0 || c.PageSize&(c.PageSize-1) != 0 {
		return ErrPageSizeNotPow2
	}
	if c.AtlasResolutionSlots <= 0 || c.ShadowAtlasResolutionSlots <= 0 {
		return ErrAtlasNotMultiple
	}
	if c.WorkerPoolSize <= 0 {
		return ErrWorkerPoolSize
	}
	if c.SimplifierExcessiveError <= 0 {
		return ErrSimplifierError
	}
	return nil
}

