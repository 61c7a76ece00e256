// Package cmd provides the root command and CLI setup for efitest.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"efitest.dev/pkg/efitest/internal/adapter"
	"efitest.dev/pkg/efitest/internal/controller"
	"efitest.dev/pkg/efitest/internal/domain"
	m "efitest.dev/pkg/efitest/internal/model"
)

// toolVersion is reported by the version command and the -v flags.
const toolVersion = "1.0.0"

// invalidArgumentsHint is printed for any command line that cannot be parsed.
const invalidArgumentsHint = "Could not parse arguments, try -h to get help"

// ErrInvalidArguments reports a command line that could not be parsed.
var ErrInvalidArguments = errors.New("invalid arguments")

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var workflow domain.Workflow
var ui controller.UI

// verboseFlag enables debug logging.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewManifestStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		manifestStore,
		ui,
	)
}

const inputPatternsHelp = `Inputs may be files or directories:
  - tests/a.c      a single source file
  - tests          every *.c file directly inside tests
  - tests/...      every *.c file below tests, recursively`

const rootLongDescription = `efitest generates the glue that runs C unit tests inside UEFI firmware.

It discovers tests declared with ETEST_DEFINE_TEST, generates a header and a
trampoline-augmented copy of every source plus an init.c that runs them all,
and injects efitest_* build-script macros into the generated test build.`

const discoverLongDescription = `Discover ETEST_DEFINE_TEST declarations and generate the test glue.

The first positional argument is the output directory unless --out is given;
every other argument is an input.

` + inputPatternsHelp

const listLongDescription = `List discovered tests without generating anything.

` + inputPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "efitest",
		Short:         "Test discovery and build injection for EFITEST",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	})

	return cmd
}

// newRootCmd returns a fresh root command with its persistent flags, for
// wiring subcommands in isolation.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// positionalArgs wraps a cobra argument validator so its failures are
// reported like flag errors.
func positionalArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}

		return nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	slog.Error("Command failed", "error", err)

	if errors.Is(err, ErrInvalidArguments) {
		_, _ = fmt.Fprintln(w, invalidArgumentsHint)
		return
	}

	_, _ = fmt.Fprintln(w, err)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
