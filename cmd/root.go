package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "shipr",
	Short:        "shipr builds and stages the gh-stats Lambda release archives",
	Long:         "shipr compiles the api and job functions, dry-run checks that both are deployable, and stages the packaged archives for upload",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shipr: run 'shipr release' to build and stage, or 'shipr --help' for all commands")
	},
}

// Execute executes the root command and returns its error so the caller can
// decide the process exit code.
func Execute() error {
	return rootCmd.Execute()
}
