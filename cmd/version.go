package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the tool versions and the Go version used to build this binary.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("EFITEST Discoverer", toolVersion)
			cmd.Println("EFITEST Script Injector", toolVersion)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("build version: unknown")
				return
			}

			cmd.Println("build version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
