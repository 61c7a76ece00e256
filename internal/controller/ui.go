// Package controller provides the output adapters that report discovery and
// injection progress to the user.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	m "efitest.dev/pkg/efitest/internal/model"
)

// LogPrefix starts every progress line printed by the CLI.
const LogPrefix = "-- "

// UI defines the interface for reporting workflow progress.
// Implementations can use different output methods (plain text, pager, etc).
type UI interface {
	DisplayTestFound(ctx context.Context, path m.Path, test m.Test)
	DisplayFileSkipped(ctx context.Context, path m.Path)
	DisplayDiscoverySummary(ctx context.Context, tests int, elapsed time.Duration)
	DisplayMacroTransformed(ctx context.Context, invocation m.Invocation)
	DisplayInjectionSummary(ctx context.Context, entries int, elapsed time.Duration)
	DisplayStaleArtifact(ctx context.Context, path m.Path, diff string)
	DisplayTargets(ctx context.Context, targets []m.Target) error
	DisplayListing(ctx context.Context, title string, listing string) error
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
