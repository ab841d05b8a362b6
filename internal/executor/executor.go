// Package executor provides external process execution functionality.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Runner is an interface for executing external commands. It allows tests to
// inject fake implementations without running real processes.
type Runner interface {
	Execute(ctx context.Context, name string, args []string, cwd string, stdout io.Writer, stderr io.Writer) error
}

// Executor runs external commands, optionally in dry-run mode.
type Executor struct {
	DryRun  bool
	Verbose bool
}

// New returns a Runner backed by the real Executor implementation.
func New(dry, verbose bool) Runner {
	return &Executor{DryRun: dry, Verbose: verbose}
}

// SplitCommand splits a command string into an executable and its leading
// arguments, respecting quoted tokens (so a tool override like
// `"/opt/my tools/cargo" lambda` splits correctly).
func SplitCommand(s string) (string, []string, error) {
	toks, err := shellquote.Split(s)
	if err != nil {
		// Fall back to simple whitespace splitting if the splitter fails.
		toks = strings.Fields(s)
	}
	if len(toks) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}
	return toks[0], toks[1:], nil
}

// Execute runs the named executable with args. stdout and stderr are written
// to the provided writers after the process exits. If cwd is non-empty, the
// command runs in that directory.
func (e *Executor) Execute(ctx context.Context, name string, args []string, cwd string, stdout io.Writer, stderr io.Writer) error {
	if e.DryRun {
		if e.Verbose {
			_, _ = fmt.Fprintf(stdout, "dry-run: %s %s\n", name, strings.Join(args, " "))
		}
		return nil
	}

	// Validate the executable up front to avoid opaque exec errors.
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("executable not found in PATH: %s", name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	var bout, berr bytes.Buffer
	cmd.Stdout = &bout
	cmd.Stderr = &berr
	runErr := cmd.Run()

	_, _ = stdout.Write(bout.Bytes())
	_, _ = stderr.Write(berr.Bytes())

	if runErr != nil {
		return wrapExecutionError(runErr, &bout, &berr, name, args)
	}
	return nil
}

func wrapExecutionError(err error, bout, berr *bytes.Buffer, name string, args []string) error {
	outStr := strings.TrimSpace(bout.String())
	errStr := strings.TrimSpace(berr.String())
	if outStr != "" || errStr != "" {
		return fmt.Errorf("command failed: %w (cmd=%s args=%q stdout=%q stderr=%q)", err, name, args, outStr, errStr)
	}
	return fmt.Errorf("command failed: %w (cmd=%s args=%q)", err, name, args)
}
