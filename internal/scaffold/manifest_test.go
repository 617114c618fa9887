package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "name": "rootstock-dapp",
  "version": "9.9.9",
  "scripts": {
    "compile": "hardhat compile"
  },
  "engines": {
    "node": ">=18"
  },
  "dependencies": {
    "a": "1.0"
  }
}
`

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMergeManifestOverlaysIdentity(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, sampleManifest)

	require.NoError(t, MergeManifest(dir, "foo", map[string]string{"b": "2.0"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var manifest struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Private      bool              `json:"private"`
		Scripts      map[string]string `json:"scripts"`
		Engines      map[string]string `json:"engines"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(raw, &manifest))

	assert.Equal(t, "foo", manifest.Name)
	assert.Equal(t, "0.1.0", manifest.Version)
	assert.True(t, manifest.Private)
	assert.Equal(t, map[string]string{"a": "1.0", "b": "2.0"}, manifest.Dependencies)

	// Fields the template author put there survive untouched.
	assert.Equal(t, "hardhat compile", manifest.Scripts["compile"])
	assert.Equal(t, ">=18", manifest.Engines["node"])
}

func TestMergeManifestCallerWinsOnCollision(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	require.NoError(t, MergeManifest(dir, "foo", map[string]string{"a": "3.0"}))

	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	var manifest struct {
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, map[string]string{"a": "3.0"}, manifest.Dependencies)
}

func TestMergeManifestPreservesKeyOrder(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	require.NoError(t, MergeManifest(dir, "foo", nil))

	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	content := string(raw)

	// Original top-level order: name, version, scripts, engines,
	// dependencies; private is new and appended last.
	order := []string{`"name"`, `"version"`, `"scripts"`, `"engines"`, `"dependencies"`, `"private"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(content, key)
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
}

func TestMergeManifestNoopWhenMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, MergeManifest(dir, "foo", map[string]string{"b": "2.0"}))
	assert.NoFileExists(t, filepath.Join(dir, "package.json"))
}
