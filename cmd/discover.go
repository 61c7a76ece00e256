package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"efitest.dev/pkg/efitest/internal/domain"
	m "efitest.dev/pkg/efitest/internal/model"
)

var discoverOutFlag string
var discoverFilesFlag []string
var discoverParallelFlag int
var discoverCheckFlag bool
var discoverManifestFlag string

// discoverCmd represents the discover command.
var discoverCmd = newDiscoverCmd()

func newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "discover [out] [files...]",
		Short:   "Discover tests and generate headers, trampolines and init.c",
		Long:    discoverLongDescription,
		Version: toolVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, files, err := discoverInputs(cmd, args)
			if err != nil {
				return err
			}

			_, err = workflow.Discover(cmd.Context(), domain.DiscoverArgs{
				Out:      out,
				Files:    files,
				Parallel: viper.GetInt(parallelConfigKey),
				Check:    discoverCheckFlag,
				Manifest: m.Path(viper.GetString(manifestConfigKey)),
			})

			return err
		},
	}

	cmd.SetVersionTemplate("EFITEST Discoverer {{.Version}}\n")
	configureDiscoverFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func configureDiscoverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&discoverOutFlag, outFlagName, "o", viper.GetString(outputConfigKey), "output directory for generated files")
	bindFlagToConfig(cmd.Flags().Lookup(outFlagName), outputConfigKey)

	cmd.Flags().StringSliceVarP(&discoverFilesFlag, filesFlagName, "f", nil, "input source files (repeatable or comma separated)")

	cmd.Flags().IntVarP(&discoverParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files scanned concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&discoverCheckFlag, checkFlagName, false, "report out-of-date generated files instead of writing them")

	cmd.Flags().StringVar(&discoverManifestFlag, manifestFlagName, viper.GetString(manifestConfigKey), "write a YAML manifest of the discovered tests")
	bindFlagToConfig(cmd.Flags().Lookup(manifestFlagName), manifestConfigKey)
}

// discoverInputs splits the command line into the output directory and the
// input files. The first positional argument names the output directory
// unless --out was given explicitly.
func discoverInputs(cmd *cobra.Command, args []string) (m.Path, []m.Path, error) {
	out := viper.GetString(outputConfigKey)

	if !cmd.Flags().Changed(outFlagName) && len(args) > 0 {
		out = args[0]
		args = args[1:]
	}

	if out == "" {
		return "", nil, fmt.Errorf("%w: no output directory given", ErrInvalidArguments)
	}

	files := parsePaths(discoverFilesFlag)
	files = append(files, parsePaths(args)...)

	return m.Path(out), files, nil
}
