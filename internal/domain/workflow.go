// Package domain composes the discovery, generation and injection pipelines
// on top of the filesystem adapters and the UI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"efitest.dev/pkg/efitest/internal/adapter"
	"efitest.dev/pkg/efitest/internal/controller"
	"efitest.dev/pkg/efitest/internal/domain/codegen"
	"efitest.dev/pkg/efitest/internal/domain/macros"
	"efitest.dev/pkg/efitest/internal/highlight"
	m "efitest.dev/pkg/efitest/internal/model"
)

const artifactPerm os.FileMode = 0o644

var (
	// ErrStaleArtifacts is returned in check mode when a generated file on
	// disk differs from what would be generated now.
	ErrStaleArtifacts = errors.New("generated artifacts are out of date")
	// ErrMissingInput reports an input the injector cannot run without.
	ErrMissingInput = errors.New("does not exist")
	// ErrOverwriteInput reports an artifact that would replace one of the
	// files it was generated from.
	ErrOverwriteInput = errors.New("artifact would overwrite its input")
)

// DiscoverArgs contains the arguments for a discovery run.
type DiscoverArgs struct {
	Out      m.Path
	Files    []m.Path
	Parallel int
	Check    bool
	Manifest m.Path
}

// DiscoverSummary describes a finished discovery run.
type DiscoverSummary struct {
	Targets []m.Target
	Tests   int
	Elapsed time.Duration
	Written []m.Path
	Stale   []m.Path
}

// InjectArgs contains the arguments for a script injection.
type InjectArgs struct {
	Source m.Path
	In     m.Path
	Out    m.Path
	Check  bool
}

// InjectSummary describes a finished injection.
type InjectSummary struct {
	Entries int
	Elapsed time.Duration
	Stale   bool
}

// ListArgs contains the arguments for listing discovered tests.
type ListArgs struct {
	Files    []m.Path
	Parallel int
	Manifest m.Path
}

// ViewArgs contains the arguments for showing a highlighted source file.
type ViewArgs struct {
	Path m.Path
	From int
	To   int
}

// Workflow defines the operations exposed by the command line.
type Workflow interface {
	Discover(ctx context.Context, args DiscoverArgs) (DiscoverSummary, error)
	Inject(ctx context.Context, args InjectArgs) (InjectSummary, error)
	List(ctx context.Context, args ListArgs) ([]m.Target, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		UI:              ui,
	}
}

// Discover scans every input for test declarations and generates the
// headers, translation units and init unit into args.Out. Every artifact is
// rendered before the first one is written, so a failing run leaves the
// output directory untouched.
func (w *workflow) Discover(ctx context.Context, args DiscoverArgs) (DiscoverSummary, error) {
	start := time.Now()

	slog.Info("Starting discovery", "out", args.Out, "inputs", len(args.Files), "parallel", args.Parallel)

	files, err := w.expandInputs(ctx, args.Files)
	if err != nil {
		return DiscoverSummary{}, err
	}

	units, err := w.scanFiles(ctx, args.Out, files, args.Parallel)
	if err != nil {
		return DiscoverSummary{}, fmt.Errorf("discover tests: %w", err)
	}

	targets := unitTargets(units)
	w.reportTests(ctx, targets)

	summary := DiscoverSummary{
		Targets: targets,
		Tests:   m.TestCount(targets),
		Elapsed: time.Since(start),
	}
	w.DisplayDiscoverySummary(ctx, summary.Tests, summary.Elapsed)

	artifacts, err := codegen.RenderAll(args.Out, units)
	if err != nil {
		slog.Error("Failed to render artifacts", "error", err)
		return summary, fmt.Errorf("render artifacts: %w", err)
	}

	if err := guardInputs(files, artifacts); err != nil {
		slog.Error("Refusing to write artifacts", "error", err)
		return summary, err
	}

	if args.Check {
		summary.Stale, err = w.checkArtifacts(ctx, artifacts)
		if err != nil {
			return summary, err
		}

		if len(summary.Stale) > 0 {
			return summary, fmt.Errorf("%w: %d file(s)", ErrStaleArtifacts, len(summary.Stale))
		}

		return summary, nil
	}

	summary.Written, err = w.writeArtifacts(args.Out, artifacts)
	if err != nil {
		return summary, err
	}

	if args.Manifest != "" {
		if err := w.saveManifest(args.Manifest, args.Out, units); err != nil {
			return summary, err
		}
	}

	slog.Info("Discovery finished", "targets", len(targets), "tests", summary.Tests, "artifacts", len(summary.Written))

	return summary, nil
}

// Inject harvests the efitest_* macros of args.Source and writes a copy of
// args.In with their CMake-native renderings appended to args.Out.
func (w *workflow) Inject(ctx context.Context, args InjectArgs) (InjectSummary, error) {
	start := time.Now()

	if err := w.requireFile("source", args.Source); err != nil {
		return InjectSummary{}, err
	}

	if err := w.requireFile("input", args.In); err != nil {
		return InjectSummary{}, err
	}

	script, err := w.ReadFile(args.Source)
	if err != nil {
		slog.Error("Failed to read build script", "path", args.Source, "error", err)
		return InjectSummary{}, fmt.Errorf("read source: %w", err)
	}

	invocations, err := macros.Parse(args.Source, script)
	if err != nil {
		slog.Error("Failed to parse build script", "path", args.Source, "error", err)
		return InjectSummary{}, fmt.Errorf("parse source: %w", err)
	}

	for _, invocation := range invocations {
		w.DisplayMacroTransformed(ctx, invocation)
	}

	input, err := w.ReadFile(args.In)
	if err != nil {
		slog.Error("Failed to read input file", "path", args.In, "error", err)
		return InjectSummary{}, fmt.Errorf("read input: %w", err)
	}

	artifact := codegen.RenderScript(args.Out, input, invocations)
	if err := guardInputs([]m.Path{args.Source, args.In}, []m.Artifact{artifact}); err != nil {
		return InjectSummary{}, err
	}

	summary := InjectSummary{Entries: len(invocations)}

	if args.Check {
		stale, err := w.checkArtifacts(ctx, []m.Artifact{artifact})
		if err != nil {
			return summary, err
		}

		summary.Stale = len(stale) > 0
		summary.Elapsed = time.Since(start)

		if summary.Stale {
			return summary, fmt.Errorf("%w: %s", ErrStaleArtifacts, args.Out)
		}

		return summary, nil
	}

	if dir := filepath.Dir(string(args.Out)); dir != "." {
		if err := w.MkdirAll(m.Path(dir)); err != nil {
			return summary, fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := w.replaceFile(artifact); err != nil {
		return summary, err
	}

	summary.Elapsed = time.Since(start)
	w.DisplayInjectionSummary(ctx, summary.Entries, summary.Elapsed)

	return summary, nil
}

// List discovers tests without generating anything, or reads them back from
// a manifest written by an earlier discovery.
func (w *workflow) List(ctx context.Context, args ListArgs) ([]m.Target, error) {
	var targets []m.Target

	if args.Manifest != "" {
		manifest, err := w.LoadManifest(args.Manifest)
		if err != nil {
			slog.Error("Failed to load manifest", "path", args.Manifest, "error", err)
			return nil, fmt.Errorf("load manifest: %w", err)
		}

		targets = manifest.TargetList()
	} else {
		files, err := w.expandInputs(ctx, args.Files)
		if err != nil {
			return nil, err
		}

		units, err := w.scanFiles(ctx, "", files, args.Parallel)
		if err != nil {
			return nil, fmt.Errorf("discover tests: %w", err)
		}

		targets = unitTargets(units)
	}

	if err := w.DisplayTargets(ctx, targets); err != nil {
		return targets, fmt.Errorf("display: %w", err)
	}

	return targets, nil
}

// View shows a syntax highlighted listing of a source file.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	src, err := w.ReadFile(args.Path)
	if err != nil {
		slog.Error("Failed to read file", "path", args.Path, "error", err)
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	listing := highlight.Render(string(src), highlight.Options{
		From:   args.From,
		To:     args.To,
		Styles: highlight.DefaultStyles(),
	})

	return w.DisplayListing(ctx, string(args.Path), listing)
}

func (w *workflow) reportTests(ctx context.Context, targets []m.Target) {
	for _, target := range targets {
		for _, test := range target.Tests {
			w.DisplayTestFound(ctx, target.SourcePath, test)
		}
	}
}

func (w *workflow) requireFile(label string, path m.Path) error {
	exists, err := w.Exists(path)
	if err != nil {
		return fmt.Errorf("stat %s file: %w", label, err)
	}

	if !exists {
		slog.Error("Missing file", "kind", label, "path", path)
		return fmt.Errorf("%s file %s %w", label, path, ErrMissingInput)
	}

	return nil
}

func (w *workflow) saveManifest(path, out m.Path, units []codegen.Unit) error {
	manifest := m.Manifest{Version: m.ManifestVersion, Output: out}

	for _, unit := range units {
		hash, err := w.HashFile(unit.Target.SourcePath)
		if err != nil {
			return fmt.Errorf("hash %s: %w", unit.Target.SourcePath, err)
		}

		entry := m.ManifestTarget{
			Source: unit.Target.SourcePath,
			Hash:   hash,
			Header: unit.Target.HeaderPath,
		}

		for _, test := range unit.Target.Tests {
			entry.Tests = append(entry.Tests, m.ManifestTest{
				Name:     test.Name,
				Line:     test.LineNumber,
				Function: codegen.FunctionName(unit.Target, test),
			})
		}

		manifest.Targets = append(manifest.Targets, entry)
	}

	if err := w.SaveManifest(path, manifest); err != nil {
		slog.Error("Failed to save manifest", "path", path, "error", err)
		return fmt.Errorf("save manifest: %w", err)
	}

	return nil
}

func unitTargets(units []codegen.Unit) []m.Target {
	targets := make([]m.Target, 0, len(units))
	for _, unit := range units {
		targets = append(targets, unit.Target)
	}

	return targets
}

// guardInputs fails when an artifact path names one of the inputs.
func guardInputs(inputs []m.Path, artifacts []m.Artifact) error {
	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		seen[cleanPath(input)] = struct{}{}
	}

	for _, artifact := range artifacts {
		if _, ok := seen[cleanPath(artifact.Path)]; ok {
			return fmt.Errorf("%w: %s", ErrOverwriteInput, artifact.Path)
		}
	}

	return nil
}

func cleanPath(path m.Path) string {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return filepath.Clean(string(path))
	}

	return abs
}
