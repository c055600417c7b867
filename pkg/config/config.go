// Package config loads igno's optional user configuration file.
// Every field is a default that command-line flags can override.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/logging"
)

// Config represents the options read from config.toml
type Config struct {
	// Output is the default destination file for fetched templates
	Output string `toml:"output"`

	// CacheTTLMinutes is the default freshness window for the type list cache
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`

	// TypesURL overrides the directory listing endpoint
	TypesURL string `toml:"types_url"`

	// RawBaseURL overrides the raw template content base URL
	RawBaseURL string `toml:"raw_base_url"`
}

// Load reads the configuration file at configPath. A missing file is not
// an error and yields a zero-value Config; a file that exists but does
// not parse is a fatal configuration error.
func Load(configPath string) (Config, error) {
	log := logging.GetLogger("config")

	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", configPath).Msg("No config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfig, "failed to read config file %s", configPath)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfig, "failed to parse config file %s", configPath)
	}

	log.Debug().Str("path", configPath).Msg("Config loaded")
	return cfg, nil
}
