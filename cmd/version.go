package cmd

import (
	"fmt"

	"github.com/nvalkov/shipr/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shipr %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
