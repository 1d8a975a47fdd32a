package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/navkit/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
server:
  address: "${NAVROUTER_TEST_ADDR:-127.0.0.1:9000}"
  readTimeout: 2s
logging:
  level: debug
  format: console
routes:
  - pattern: /movies/:id/
    view: movie
    meta:
      title: Movie
  - pattern: /search/
    view: search
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultName, cfg.Server.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultLogOutput, cfg.Logging.Output)
	assert.Equal(t, DefaultNamespace, cfg.Metrics.Namespace)

	assert.Equal(t, []router.Descriptor{
		{Pattern: "/movies/:id/", View: "movie", Meta: map[string]string{"title": "Movie"}},
		{Pattern: "/search/", View: "search"},
	}, cfg.Routes)
}

func TestParseEnvSubstitution(t *testing.T) {
	t.Setenv("NAVROUTER_TEST_ADDR", ":7070")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("NAVROUTER_TEST_VIEW", "movie")

	assert.Equal(t, "view: movie", substituteEnvVars("view: ${NAVROUTER_TEST_VIEW}"))
	assert.Equal(t, "view: ", substituteEnvVars("view: ${NAVROUTER_TEST_UNSET}"))
	assert.Equal(t, "view: x", substituteEnvVars("view: ${NAVROUTER_TEST_UNSET:-x}"))
	assert.Equal(t, "cost: $5", substituteEnvVars("cost: $$5"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{"no routes", "server:\n  address: \":80\"\n", ErrNoRoutes.Error()},
		{"empty pattern", "routes:\n  - view: movie\n", "pattern is required"},
		{"bad format", "logging:\n  format: xml\nroutes:\n  - pattern: /\n", "invalid log format"},
		{"bad output", "logging:\n  output: file\nroutes:\n  - pattern: /\n", "invalid log output"},
		{"bad yaml", "routes: [", "failed to parse YAML"},
		{"bad timeout", "server:\n  readTimeout: -1s\nroutes:\n  - pattern: /\n", "timeouts"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navrouter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Routes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "search", cfg.Routes[1].View)
}
