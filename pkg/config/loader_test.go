package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "https://open.tan.fr/ewp", cfg.Upstream.Endpoint)
	assert.Equal(t, 10, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 60, cfg.Directory.RefreshMinutes)
	assert.Equal(t, 2, cfg.Display.DefaultLimit)
	assert.Equal(t, 10, cfg.Display.MaxLimit)
	assert.Len(t, cfg.Directory.PopularStops, 14)
	assert.Equal(t, "COMM", cfg.Directory.PopularStops[0])
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9090"
defaultStop: COMM
upstream:
  endpoint: "https://example.com/ewp"
  timeoutSeconds: 5
directory:
  refreshMinutes: 30
  popularStops: [COMM, BOFA]
display:
  defaultLimit: 3
  maxLimit: 8
  maxSearchResults: 100
  maxTerminusDisplay: 12
`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "COMM", cfg.DefaultStop)
	assert.Equal(t, "https://example.com/ewp", cfg.Upstream.Endpoint)
	assert.Equal(t, 5, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Directory.RefreshMinutes)
	assert.Equal(t, []string{"COMM", "BOFA"}, cfg.Directory.PopularStops)
	assert.Equal(t, 8, cfg.Display.MaxLimit)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("NAOLAMETRIC_STOP_CODE", "GSNO")
	t.Setenv("NAOLAMETRIC_UPSTREAM_TIMEOUT", "3")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Listen)
	assert.Equal(t, "GSNO", cfg.DefaultStop)
	assert.Equal(t, 3, cfg.Upstream.TimeoutSeconds)
}

func TestLoadListenEnvBeatsPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("NAOLAMETRIC_LISTEN", "127.0.0.1:4000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", cfg.Listen)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
upstream:
  endpoint: "not a url"
`), 0o644))

	_, err := Load(path)

	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
}
