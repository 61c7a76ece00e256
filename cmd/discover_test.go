package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"efitest.dev/pkg/efitest/internal/adapter"
	"efitest.dev/pkg/efitest/internal/controller"
	"efitest.dev/pkg/efitest/internal/domain"
	domainmocks "efitest.dev/pkg/efitest/internal/domain/mocks"
	m "efitest.dev/pkg/efitest/internal/model"
)

func newDiscoverTestCmd(t *testing.T, wf domain.Workflow) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newDiscoverCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = wf
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, out
}

func TestDiscoverCmd_FirstPositionalIsOutputDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newDiscoverTestCmd(t, mockWorkflow)

	mockWorkflow.On("Discover", mock.Anything, mock.MatchedBy(func(args domain.DiscoverArgs) bool {
		return args.Out == m.Path("build") &&
			assert.ObjectsAreEqual([]m.Path{"a.c", "b.c"}, args.Files) &&
			args.Parallel == 1 &&
			!args.Check &&
			args.Manifest == ""
	})).Return(domain.DiscoverSummary{}, nil)

	cmd.SetArgs([]string{"discover", "build", "a.c", "b.c"})
	require.NoError(t, cmd.Execute())
}

func TestDiscoverCmd_OutFlagTakesPrecedence(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newDiscoverTestCmd(t, mockWorkflow)

	mockWorkflow.On("Discover", mock.Anything, mock.MatchedBy(func(args domain.DiscoverArgs) bool {
		return args.Out == m.Path("gen") &&
			assert.ObjectsAreEqual([]m.Path{"a.c", "b.c", "c.c"}, args.Files)
	})).Return(domain.DiscoverSummary{}, nil)

	cmd.SetArgs([]string{"discover", "-o", "gen", "-f", "a.c,b.c", "c.c"})
	require.NoError(t, cmd.Execute())
}

func TestDiscoverCmd_PassesThroughOptions(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newDiscoverTestCmd(t, mockWorkflow)

	mockWorkflow.On("Discover", mock.Anything, mock.MatchedBy(func(args domain.DiscoverArgs) bool {
		return args.Out == m.Path("gen") &&
			args.Parallel == 4 &&
			args.Check &&
			args.Manifest == m.Path("tests.yaml")
	})).Return(domain.DiscoverSummary{}, nil)

	cmd.SetArgs([]string{"discover", "gen", "a.c", "--parallel", "4", "--check", "--manifest", "tests.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestDiscoverCmd_MissingOutputDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newDiscoverTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"discover"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	mockWorkflow.AssertNotCalled(t, "Discover", mock.Anything, mock.Anything)
}

func TestDiscoverCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newDiscoverTestCmd(t, mockWorkflow)

	failure := errors.New("discover tests: unterminated test name")
	mockWorkflow.On("Discover", mock.Anything, mock.Anything).Return(domain.DiscoverSummary{}, failure)

	cmd.SetArgs([]string{"discover", "gen", "a.c"})
	err := cmd.Execute()

	require.ErrorIs(t, err, failure)
}

func TestDiscoverCmd_Version(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, out := newDiscoverTestCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"discover", "-v"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "EFITEST Discoverer 1.0.0\n", out.String())
}

func TestDiscoverCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "math.c")
	require.NoError(t, os.WriteFile(src, []byte("ETEST_DEFINE_TEST(adds) {\n}\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newDiscoverCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewManifestStore(),
		controller.NewSimpleUI(cmd),
	)
	t.Cleanup(func() { workflow = originalWorkflow })

	gen := filepath.Join(dir, "gen")
	missing := filepath.Join(dir, "missing.c")
	cmd.SetArgs([]string{"discover", gen, src, missing})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "-- File "+missing+" does not exist, skipping\n")
	assert.Contains(t, out.String(), "-- Found test 'adds' in "+src+"\n")
	assert.Contains(t, out.String(), "-- Discovered 1 tests in ")

	assert.FileExists(t, filepath.Join(gen, "init.c"))
	assert.FileExists(t, filepath.Join(gen, "math.h"))
}
