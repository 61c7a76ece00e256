package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "efitest.dev/pkg/efitest/internal/model"
)

func TestYAMLManifestStore_SaveAndLoad(t *testing.T) {
	store := NewManifestStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "manifest.yaml"))

	manifest := m.Manifest{
		Version: m.ManifestVersion,
		Output:  "gen",
		Targets: []m.ManifestTarget{
			{
				Source: "tests/a.c",
				Hash:   "deadbeef",
				Header: "gen/a.h",
				Tests:  []m.ManifestTest{{Name: "test_x", Line: 3, Function: "__a_test_x"}},
			},
		},
	}

	require.NoError(t, store.SaveManifest(path, manifest))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "function: __a_test_x")
	assert.Contains(t, string(data), "version: 1")

	loaded, err := store.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded)
}

func TestYAMLManifestStore_LoadErrors(t *testing.T) {
	store := NewManifestStore()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadManifest(m.Path(filepath.Join(dir, "missing.yaml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("targets: [\n"), 0o644))

		_, err := store.LoadManifest(m.Path(path))
		require.Error(t, err)
	})

	t.Run("newer version", func(t *testing.T) {
		path := filepath.Join(dir, "future.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: 99\n"), 0o644))

		_, err := store.LoadManifest(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version 99")
	})
}
