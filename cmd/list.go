package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"efitest.dev/pkg/efitest/internal/domain"
	m "efitest.dev/pkg/efitest/internal/model"
)

var listManifestFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List discovered tests",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.List(cmd.Context(), domain.ListArgs{
				Files:    parsePaths(args),
				Parallel: viper.GetInt(parallelConfigKey),
				Manifest: m.Path(listManifestFlag),
			})

			return err
		},
	}

	cmd.Flags().StringVar(&listManifestFlag, manifestFlagName, "", "read the tests from a manifest written by discover --manifest")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
