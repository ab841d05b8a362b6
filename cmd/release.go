package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvalkov/shipr/internal/config"
	"github.com/nvalkov/shipr/internal/db"
	"github.com/nvalkov/shipr/internal/executor"
	"github.com/nvalkov/shipr/internal/history"
	"github.com/nvalkov/shipr/internal/pipeline"
	"github.com/nvalkov/shipr/internal/toolchain"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Compile, validate, and stage both function archives",
	Long:  "Compile both functions for arm64 in release mode, remove previously staged archives, dry-run check each function is deployable, then stage the fresh archives",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dry, _ := cmd.Flags().GetBool("dry-run")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noRecord, _ := cmd.Flags().GetBool("no-record")

		runner := executor.New(dry, verbose)
		return runRelease(cmd.Context(), runner, dry, !noRecord && !dry, os.Stdout, os.Stderr)
	},
}

// runRelease wires the pipeline from the ambient configuration and runs it.
// The Runner is injected so tests can substitute a fake toolchain.
func runRelease(ctx context.Context, runner executor.Runner, dry, record bool, stdout, stderr io.Writer) error {
	buildRoot, err := config.BuildRoot()
	if err != nil {
		return err
	}
	destDir, err := config.DestDir()
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		Tool:      &toolchain.Cargo{Runner: runner, Tool: config.BuildTool()},
		BuildRoot: buildRoot,
		DestDir:   destDir,
		Project:   config.Project,
		DryRun:    dry,
		Stdout:    stdout,
		Stderr:    stderr,
	}

	res, runErr := p.Run(ctx)
	if record {
		if recErr := recordRun(res); recErr != nil {
			if runErr != nil {
				// the pipeline failure is the error worth surfacing
				fmt.Fprintf(stderr, "warning: failed to record run: %v\n", recErr)
			} else {
				runErr = recErr
			}
		}
	}
	if runErr != nil {
		return runErr
	}

	for _, a := range res.Artifacts {
		fmt.Fprintf(stdout, "staged %s (%d bytes, sha256 %s)\n", a.Path, a.Size, a.SHA256)
	}
	fmt.Fprintf(stdout, "release %s in %s\n", res.Status, res.Finished.Sub(res.Started).Round(time.Millisecond))
	return nil
}

func recordRun(res *pipeline.Result) error {
	conn, err := db.InitDB()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	return history.NewRepository(conn).RecordRun(res)
}

func init() {
	releaseCmd.Flags().Bool("dry-run", false, "Print external commands and skip file mutations")
	releaseCmd.Flags().Bool("verbose", false, "Verbose output (prints dry-run messages)")
	releaseCmd.Flags().Bool("no-record", false, "Do not record this run in the history database")
	rootCmd.AddCommand(releaseCmd)
}
