package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nvalkov/shipr/internal/archive"
	"github.com/nvalkov/shipr/internal/config"
	"github.com/nvalkov/shipr/internal/target"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true)
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the staged archives and their digests",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		destDir, err := config.DestDir()
		if err != nil {
			return err
		}
		fmt.Println(headerStyle.Render(config.Project + " staged archives"))
		for _, t := range target.All() {
			p := t.DestPath(destDir, config.Project)
			info, err := archive.Inspect(p)
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("%s  %s\n", nameStyle.Render(t.Name), missingStyle.Render("not staged (expected: "+p+")"))
				continue
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s  %s  %s  sha256:%s\n",
				nameStyle.Render(t.Name),
				info.Path,
				humanize.Bytes(uint64(info.Size)),
				info.ModTime.Format("2006-01-02 15:04:05"),
				info.SHA256[:12])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
