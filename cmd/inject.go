package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"efitest.dev/pkg/efitest/internal/domain"
	m "efitest.dev/pkg/efitest/internal/model"
)

var injectSourceFlag string
var injectInFlag string
var injectOutFlag string
var injectCheckFlag bool

// injectCmd represents the inject command.
var injectCmd = newInjectCmd()

func newInjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject [in] [out]",
		Short: "Inject efitest_* build-script macros into a copied script",
		Long: `Read the efitest_* macros of the --source build script, copy the --in file
to --out and append the CMake-native form of every macro.`,
		Version: toolVersion,
		Args:    positionalArgs(cobra.MaximumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			injectArgs, err := injectInputs(cmd, args)
			if err != nil {
				return err
			}

			_, err = workflow.Inject(cmd.Context(), injectArgs)

			return err
		},
	}

	cmd.SetVersionTemplate("EFITEST Script Injector {{.Version}}\n")
	configureInjectFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(injectCmd)
}

func configureInjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&injectSourceFlag, sourceFlagName, "s", viper.GetString(injectSourceKey), "build script to harvest efitest_* macros from")
	bindFlagToConfig(cmd.Flags().Lookup(sourceFlagName), injectSourceKey)

	cmd.Flags().StringVarP(&injectInFlag, inFlagName, "i", viper.GetString(injectInKey), "input file copied into the output")
	bindFlagToConfig(cmd.Flags().Lookup(inFlagName), injectInKey)

	cmd.Flags().StringVarP(&injectOutFlag, outFlagName, "o", viper.GetString(injectOutKey), "output file")
	bindFlagToConfig(cmd.Flags().Lookup(outFlagName), injectOutKey)

	cmd.Flags().BoolVar(&injectCheckFlag, checkFlagName, false, "report an out-of-date output instead of writing it")
}

// injectInputs resolves --in and --out, falling back to the positional
// arguments in that order.
func injectInputs(cmd *cobra.Command, args []string) (domain.InjectArgs, error) {
	in := viper.GetString(injectInKey)
	out := viper.GetString(injectOutKey)

	if !cmd.Flags().Changed(inFlagName) && len(args) > 0 {
		in = args[0]
		args = args[1:]
	}

	if !cmd.Flags().Changed(outFlagName) && len(args) > 0 {
		out = args[0]
		args = args[1:]
	}

	if len(args) > 0 {
		return domain.InjectArgs{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidArguments, args[0])
	}

	injectArgs := domain.InjectArgs{
		Source: m.Path(viper.GetString(injectSourceKey)),
		In:     m.Path(in),
		Out:    m.Path(out),
		Check:  injectCheckFlag,
	}

	required := []struct {
		flag  string
		value m.Path
	}{
		{sourceFlagName, injectArgs.Source},
		{inFlagName, injectArgs.In},
		{outFlagName, injectArgs.Out},
	}

	for _, r := range required {
		if r.value == "" {
			return domain.InjectArgs{}, fmt.Errorf("%w: --%s is required", ErrInvalidArguments, r.flag)
		}
	}

	return injectArgs, nil
}
