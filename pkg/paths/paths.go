// Package paths provides centralized path handling for igno.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvIgnoCacheDir overrides the XDG cache directory for igno
	EnvIgnoCacheDir = "IGNO_CACHE_DIR"

	// EnvIgnoConfigDir overrides the XDG config directory for igno
	EnvIgnoConfigDir = "IGNO_CONFIG_DIR"
)

// Default directories and files
const (
	// IgnoDirName is the directory name for igno-specific files
	IgnoDirName = "igno"

	// CacheFileName is the name of the cached type list file
	CacheFileName = "types.json"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// Paths provides centralized path management for igno
type Paths interface {
	CacheDir() string
	ConfigDir() string
	CacheFilePath() string
	ConfigFilePath() string
}

type paths struct {
	xdgCache  string
	xdgConfig string
}

// New creates a new Paths instance, respecting environment overrides
// before falling back to the XDG base directories.
func New() Paths {
	p := &paths{}

	if cacheDir := os.Getenv(EnvIgnoCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, IgnoDirName)
	}

	if configDir := os.Getenv(EnvIgnoConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, IgnoDirName)
	}

	return p
}

// CacheDir returns the directory holding igno's cache files
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// ConfigDir returns the directory holding igno's configuration
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheFilePath returns the path to the cached type list
func (p *paths) CacheFilePath() string {
	return filepath.Join(p.xdgCache, CacheFileName)
}

// ConfigFilePath returns the path to the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
