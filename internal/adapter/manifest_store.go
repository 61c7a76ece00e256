package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "efitest.dev/pkg/efitest/internal/model"
)

// ManifestStore persists the record of a discovery run.
type ManifestStore interface {
	SaveManifest(path m.Path, manifest m.Manifest) error
	LoadManifest(path m.Path) (m.Manifest, error)
}

// YAMLManifestStore stores manifests as YAML documents.
type YAMLManifestStore struct{}

// NewManifestStore creates a YAML-backed ManifestStore.
func NewManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// SaveManifest writes manifest to path, creating parent directories as needed.
func (s *YAMLManifestStore) SaveManifest(path m.Path, manifest m.Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// LoadManifest reads a manifest written by SaveManifest. Manifests from a
// newer schema version are rejected.
func (s *YAMLManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	// #nosec G304 - the manifest path is chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if manifest.Version > m.ManifestVersion {
		return m.Manifest{}, fmt.Errorf("manifest %s has unsupported version %d", path, manifest.Version)
	}

	return manifest, nil
}
