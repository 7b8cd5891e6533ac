// Package engineconfig loads engine-wide tunables from a TOML file via
// BurntSushi/toml, mirroring the struct-plus-toml.DecodeFile pattern the
// pack's own config loader uses. Config.Validate fatal-checks the bounds
// the rest of the module assumes (power-of-two page size, positive
// cluster/group caps, and so on) before the engine starts.
package engineconfig
