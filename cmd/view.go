package cmd

import (
	"github.com/spf13/cobra"

	"efitest.dev/pkg/efitest/internal/domain"
	m "efitest.dev/pkg/efitest/internal/model"
)

var viewFromFlag int
var viewToFlag int

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show a syntax highlighted source file",
		Long:  "Show a C source file with syntax highlighting and line numbers, paged on a terminal.",
		Args:  positionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Path: m.Path(args[0]),
				From: viewFromFlag,
				To:   viewToFlag,
			})
		},
	}

	cmd.Flags().IntVar(&viewFromFlag, fromFlagName, 0, "first line to show")
	cmd.Flags().IntVar(&viewToFlag, toFlagName, 0, "last line to show (0 for end of file)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
