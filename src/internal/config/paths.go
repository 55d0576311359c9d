// Package config resolves the installation prefix and registry layout for nodeman
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// PrefixEnvVar overrides the installation prefix when set.
const PrefixEnvVar = "NODEMAN_PREFIX"

// Names of registry-internal files.
const (
	// PrevFileName holds the version that was active before the last activation.
	PrevFileName = ".prev"
	// ConfigFileName records the install-time configuration hint inside a version directory.
	ConfigFileName = ".config"
)

// Paths holds the resolved filesystem layout for one nodeman invocation.
type Paths struct {
	Prefix   string // Installation prefix the active version is deployed into (e.g. /usr/local)
	Registry string // Registry root holding one directory per installed version
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the resolved default paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = initPaths()
	})
	return defaultPaths
}

func initPaths() *Paths {
	prefix := getPrefix()
	return &Paths{
		Prefix:   prefix,
		Registry: filepath.Join(prefix, "nodeman"),
	}
}

// getPrefix returns the installation prefix, honoring NODEMAN_PREFIX.
func getPrefix() string {
	if prefix := os.Getenv(PrefixEnvVar); prefix != "" {
		return prefix
	}
	return "/usr/local"
}

// VersionDir returns the registry directory for a specific version.
func (p *Paths) VersionDir(version string) string {
	return filepath.Join(p.Registry, version)
}

// ConfigFile returns the path to a version's install-time config hint.
func (p *Paths) ConfigFile(version string) string {
	return filepath.Join(p.Registry, version, ConfigFileName)
}

// PrevFile returns the path to the previous-version record.
func (p *Paths) PrevFile() string {
	return filepath.Join(p.Registry, PrevFileName)
}

// ActiveBinary returns the path the deployed runtime binary resolves to.
func (p *Paths) ActiveBinary() string {
	return filepath.Join(p.Prefix, "bin", "node")
}

// EnsureRegistry creates the registry root if it does not exist yet.
func (p *Paths) EnsureRegistry() error {
	return os.MkdirAll(p.Registry, 0755)
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
