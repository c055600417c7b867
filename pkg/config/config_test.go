package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/igno/pkg/config"
	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err, "missing config file should not be an error")
	assert.Equal(t, config.Config{}, cfg)
}

func TestLoad_ParsesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
output = "ignore.txt"
cache_ttl_minutes = 60
types_url = "https://example.com/contents"
raw_base_url = "https://example.com/raw/"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "ignore.txt", cfg.Output)
	assert.Equal(t, 60, cfg.CacheTTLMinutes)
	assert.Equal(t, "https://example.com/contents", cfg.TypesURL)
	assert.Equal(t, "https://example.com/raw/", cfg.RawBaseURL)
}

func TestLoad_MalformedFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("output = [unclosed"), 0644))

	_, err := config.Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig), "parse failure should carry the config error code")
}
