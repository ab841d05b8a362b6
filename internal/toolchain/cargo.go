// Package toolchain wraps the cargo-lambda invocations the pipeline needs.
package toolchain

import (
	"context"
	"io"

	"github.com/nvalkov/shipr/internal/executor"
	"github.com/nvalkov/shipr/internal/target"
)

// Cargo invokes cargo-lambda through a Runner. Tool is the command prefix,
// split shell-style (default "cargo lambda"); Dir is the workspace the
// toolchain runs in ("" for the current directory).
type Cargo struct {
	Runner executor.Runner
	Tool   string
	Dir    string
}

func (c *Cargo) tool() (string, []string, error) {
	t := c.Tool
	if t == "" {
		t = "cargo lambda"
	}
	return executor.SplitCommand(t)
}

// Build compiles every function in the workspace for the fixed architecture
// and profile, producing one packaged archive per target under the build
// root. A failure in either target fails the whole invocation.
func (c *Cargo) Build(ctx context.Context, stdout, stderr io.Writer) error {
	name, args, err := c.tool()
	if err != nil {
		return err
	}
	args = append(args, "build", "--"+target.Profile, "--"+target.Architecture, "--output-format", "zip")
	return c.Runner.Execute(ctx, name, args, c.Dir, stdout, stderr)
}

// ValidateDeploy runs a non-destructive deploy check for a single target.
// Nothing is uploaded; the toolchain only confirms the packaged archive is
// deployable.
func (c *Cargo) ValidateDeploy(ctx context.Context, t target.Target, stdout, stderr io.Writer) error {
	name, args, err := c.tool()
	if err != nil {
		return err
	}
	args = append(args, "deploy", "--dry", t.Name)
	return c.Runner.Execute(ctx, name, args, c.Dir, stdout, stderr)
}
