package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvalkov/shipr/internal/config"
	"github.com/nvalkov/shipr/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Describe the configured build targets",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		buildRoot, err := config.BuildRoot()
		if err != nil {
			return err
		}
		destDir, err := config.DestDir()
		if err != nil {
			return err
		}
		for _, t := range target.All() {
			fmt.Printf("%s:\n", t.Name)
			fmt.Printf("  architecture: %s\n", target.Architecture)
			fmt.Printf("  profile:      %s\n", target.Profile)
			fmt.Printf("  build output: %s\n", t.ArchivePath(buildRoot))
			fmt.Printf("  staged at:    %s\n", t.DestPath(destDir, config.Project))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
