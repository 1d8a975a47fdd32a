package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navkit/router"
)

const testConfig = `
routes:
  - pattern: /movies/:id/
    view: movie
  - pattern: /search/
    view: search
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "navrouter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestMatchCmd(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := execute("match", "--config", path, "/Movies/42?lang=en")
	require.NoError(t, err)

	var result struct {
		Pattern     string            `json:"pattern"`
		View        string            `json:"view"`
		Params      map[string]string `json:"params"`
		QueryString string            `json:"queryString"`
		Query       map[string]any    `json:"query"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "/movies/:id/", result.Pattern)
	assert.Equal(t, "movie", result.View)
	assert.Equal(t, map[string]string{"id": "42"}, result.Params)
	assert.Equal(t, "lang=en", result.QueryString)
	assert.Equal(t, map[string]any{"lang": "en"}, result.Query)
}

func TestMatchCmdSeparateQuery(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := execute("match", "-c", path, "search", "?debug")
	require.NoError(t, err)
	assert.Contains(t, out, `"debug": true`)
}

func TestMatchCmdNotFound(t *testing.T) {
	path := writeConfig(t, testConfig)

	_, err := execute("match", "--config", path, "/actors/1/")
	assert.ErrorIs(t, err, router.ErrNotFound)
}

func TestMatchCmdInvalidRoutes(t *testing.T) {
	path := writeConfig(t, "routes:\n  - pattern: /{foo}{bar}\n")

	_, err := execute("match", "--config", path, "/")
	assert.ErrorIs(t, err, router.ErrInvalidRoutes)
}

func TestMatchCmdMissingConfig(t *testing.T) {
	_, err := execute("match", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "/")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, out, "navrouter dev")
}
