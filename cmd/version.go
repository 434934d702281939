package cmd

import (
	"fmt"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of amejson",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "amejson v%s\n", version.Version)
		fmt.Fprintf(out, "Built %s from %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
