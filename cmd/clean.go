package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvalkov/shipr/internal/archive"
	"github.com/nvalkov/shipr/internal/config"
	"github.com/nvalkov/shipr/internal/target"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove previously staged archives",
	Long:  "Remove the staged gh-stats archives from the destination directory. Archives that are already absent are skipped.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		destDir, err := config.DestDir()
		if err != nil {
			return err
		}
		for _, t := range target.All() {
			p := t.DestPath(destDir, config.Project)
			_, statErr := os.Stat(p)
			if err := archive.RemoveStale(p); err != nil {
				return err
			}
			if errors.Is(statErr, fs.ErrNotExist) {
				fmt.Printf("absent  %s\n", p)
			} else {
				fmt.Printf("removed %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
