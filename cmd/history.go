package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nvalkov/shipr/internal/db"
	"github.com/nvalkov/shipr/internal/history"
	"github.com/nvalkov/shipr/internal/pipeline"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded release runs",
	Long:  "List recorded release runs, most recent first (run ID, time, duration, outcome, staged artifacts)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := history.NewRepository(dbConn)
		runs, err := r.ListRuns(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return nil
		}
		for _, run := range runs {
			outcome := okStyle.Render(run.Status)
			if run.Status != string(pipeline.StatusSuccess) {
				outcome = failStyle.Render(run.Status)
				if run.FailedStep.Valid {
					outcome += " at " + run.FailedStep.String
				}
			}
			fmt.Printf("%s  %s  %s  %s\n",
				run.ID[:8],
				run.StartedAt.Local().Format("2006-01-02 15:04:05"),
				run.Duration().Round(time.Millisecond),
				outcome)
			for _, a := range run.Artifacts {
				fmt.Printf("         %s  %s  sha256:%s\n", a.Target, humanize.Bytes(uint64(a.SizeBytes)), a.SHA256[:12])
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
