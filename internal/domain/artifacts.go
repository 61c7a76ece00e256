package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	m "efitest.dev/pkg/efitest/internal/model"
)

const diffContextLines = 3

func (w *workflow) writeArtifacts(out m.Path, artifacts []m.Artifact) ([]m.Path, error) {
	if err := w.MkdirAll(out); err != nil {
		slog.Error("Failed to create output directory", "path", out, "error", err)
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	written := make([]m.Path, 0, len(artifacts))

	for _, artifact := range artifacts {
		if err := w.replaceFile(artifact); err != nil {
			return written, err
		}

		written = append(written, artifact.Path)
	}

	return written, nil
}

// replaceFile deletes any existing file at the artifact path before writing.
func (w *workflow) replaceFile(artifact m.Artifact) error {
	if err := w.Remove(artifact.Path); err != nil {
		slog.Error("Failed to remove previous artifact", "path", artifact.Path, "error", err)
		return fmt.Errorf("remove %s: %w", artifact.Path, err)
	}

	if err := w.WriteFile(artifact.Path, artifact.Content, artifactPerm); err != nil {
		slog.Error("Failed to write artifact", "path", artifact.Path, "error", err)
		return fmt.Errorf("write %s: %w", artifact.Path, err)
	}

	slog.Debug("Wrote artifact", "path", artifact.Path, "bytes", len(artifact.Content))

	return nil
}

// checkArtifacts compares rendered artifacts with the files on disk and
// returns the paths that differ. Nothing is written.
func (w *workflow) checkArtifacts(ctx context.Context, artifacts []m.Artifact) ([]m.Path, error) {
	var stale []m.Path

	for _, artifact := range artifacts {
		current, err := w.ReadFile(artifact.Path)
		missing := errors.Is(err, fs.ErrNotExist)

		if err != nil && !missing {
			slog.Error("Failed to read artifact", "path", artifact.Path, "error", err)
			return nil, fmt.Errorf("read %s: %w", artifact.Path, err)
		}

		if !missing && bytes.Equal(current, artifact.Content) {
			continue
		}

		diff, err := unifiedDiff(artifact.Path, current, artifact.Content)
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", artifact.Path, err)
		}

		slog.Info("Stale artifact", "path", artifact.Path, "missing", missing)
		w.DisplayStaleArtifact(ctx, artifact.Path, diff)

		stale = append(stale, artifact.Path)
	}

	return stale, nil
}

func unifiedDiff(path m.Path, current, generated []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: string(path),
		ToFile:   string(path) + " (generated)",
		Context:  diffContextLines,
	})
}
