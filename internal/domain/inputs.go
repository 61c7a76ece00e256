package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"efitest.dev/pkg/efitest/internal/domain/codegen"
	"efitest.dev/pkg/efitest/internal/domain/discovery"
	m "efitest.dev/pkg/efitest/internal/model"
)

const (
	// SourceExtension selects the files picked up from directory inputs.
	SourceExtension = ".c"

	recursiveSuffix = "/..."
)

// expandInputs resolves the user-supplied inputs into the ordered list of
// files to scan. A directory contributes its *.c files; a "dir/..." pattern
// also descends into subdirectories. Missing inputs are reported and skipped.
func (w *workflow) expandInputs(ctx context.Context, inputs []m.Path) ([]m.Path, error) {
	var files []m.Path

	seen := make(map[string]struct{})
	add := func(path m.Path) {
		key := filepath.Clean(string(path))
		if _, ok := seen[key]; ok {
			return
		}

		seen[key] = struct{}{}
		files = append(files, path)
	}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root, recursive := splitRecursive(input)

		info, err := w.FileInfo(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("Input does not exist, skipping", "path", input)
				w.DisplayFileSkipped(ctx, input)

				continue
			}

			slog.Error("Failed to stat input", "path", input, "error", err)

			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		sources, err := w.collectSources(root, recursive)
		if err != nil {
			return nil, err
		}

		for _, source := range sources {
			add(source)
		}
	}

	return files, nil
}

func splitRecursive(input m.Path) (m.Path, bool) {
	path := string(input)
	if path == "..." {
		return ".", true
	}

	if !strings.HasSuffix(path, recursiveSuffix) {
		return input, false
	}

	root := strings.TrimSuffix(path, recursiveSuffix)
	if root == "" {
		root = "/"
	}

	return m.Path(root), true
}

func (w *workflow) collectSources(root m.Path, recursive bool) ([]m.Path, error) {
	var sources []m.Path

	err := w.Walk(root, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != SourceExtension {
			return nil
		}

		sources = append(sources, m.Path(path))

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk input directory", "path", root, "error", err)
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return sources, nil
}

// scanFiles reads and scans files with at most parallel workers. Results are
// stored by input index so the order never depends on scheduling.
func (w *workflow) scanFiles(ctx context.Context, out m.Path, files []m.Path, parallel int) ([]codegen.Unit, error) {
	units := make([]codegen.Unit, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(parallel, 1))

	for index, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			src, err := w.ReadFile(file)
			if err != nil {
				slog.Error("Failed to read source", "path", file, "error", err)
				return fmt.Errorf("read %s: %w", file, err)
			}

			tests, err := discovery.DiscoverTests(file, src)
			if err != nil {
				return err
			}

			slog.Debug("Scanned source", "path", file, "tests", len(tests))

			units[index] = codegen.Unit{
				Target: m.Target{
					SourcePath: file,
					HeaderPath: codegen.HeaderPath(out, file),
					Tests:      tests,
				},
				Source: src,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}
