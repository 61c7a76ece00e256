package controller

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "efitest.dev/pkg/efitest/internal/model"
)

// SimpleUI implements UI by printing to the command's output writer.
type SimpleUI struct {
	cmd   *cobra.Command
	pager bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewUI creates the UI for cmd. Listings are paged interactively when the
// output is a terminal.
func NewUI(cmd *cobra.Command, tty bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, pager: tty}
}

// DisplayTestFound reports one discovered test.
func (s *SimpleUI) DisplayTestFound(ctx context.Context, path m.Path, test m.Test) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logf("Found test '%s' in %s", test.Name, path)
}

// DisplayFileSkipped reports an input file that does not exist.
func (s *SimpleUI) DisplayFileSkipped(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logf("File %s does not exist, skipping", path)
}

// DisplayDiscoverySummary prints the total number of discovered tests.
func (s *SimpleUI) DisplayDiscoverySummary(ctx context.Context, tests int, elapsed time.Duration) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logf("Discovered %d tests in %dms", tests, elapsed.Milliseconds())
}

// DisplayMacroTransformed reports one recognized build-script macro.
func (s *SimpleUI) DisplayMacroTransformed(ctx context.Context, invocation m.Invocation) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Transforming macro of type '%s'\n", invocation.Kind.Name())
}

// DisplayInjectionSummary prints the number of injected entries.
func (s *SimpleUI) DisplayInjectionSummary(ctx context.Context, entries int, elapsed time.Duration) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Injected %d entries in %dms\n", entries, elapsed.Milliseconds())
}

// DisplayStaleArtifact prints the diff between a generated file on disk and
// the freshly rendered one.
func (s *SimpleUI) DisplayStaleArtifact(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logf("%s is out of date", path)

	if diff != "" {
		s.printf("%s", diff)
	}
}

// DisplayTargets prints a table of targets and their tests.
func (s *SimpleUI) DisplayTargets(ctx context.Context, targets []m.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderTargetsTable(targets))

	return nil
}

func renderTargetsTable(targets []m.Target) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Test", "Line"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoMergeCells(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	testsCount := 0

	for _, target := range targets {
		file := filepath.Base(string(target.SourcePath))
		if len(target.Tests) == 0 {
			table.Append([]string{file, "-", ""})
			continue
		}

		for _, test := range target.Tests {
			table.Append([]string{file, test.Name, strconv.Itoa(test.LineNumber)})

			testsCount++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(targets)),
		fmt.Sprintf("Tests %d", testsCount),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayListing shows a rendered source listing, paged when interactive.
func (s *SimpleUI) DisplayListing(ctx context.Context, title string, listing string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.pager {
		return runPager(ctx, s.cmd.InOrStdin(), s.cmd.OutOrStdout(), title, listing)
	}

	s.printf("%s", listing)

	return nil
}

func (s *SimpleUI) logf(format string, args ...interface{}) {
	s.printf(LogPrefix+format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
