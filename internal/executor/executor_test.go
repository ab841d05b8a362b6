package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestExecuteEcho(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	var errb bytes.Buffer
	e := &Executor{}
	if err := e.Execute(ctx, "echo", []string{"hello"}, "", &out, &errb); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "hello") {
		t.Fatalf("expected 'hello' in stdout, got: %q", out.String())
	}
}

func TestExecuteFail(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	var errb bytes.Buffer
	e := &Executor{}
	err := e.Execute(ctx, "sh", []string{"-c", "exit 3"}, "", &out, &errb)
	if err == nil {
		t.Fatalf("expected error for failing command")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError in chain, got: %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.ExitCode())
	}
}

func TestExecuteMissingExecutable(t *testing.T) {
	ctx := context.Background()
	var out, errb bytes.Buffer
	e := &Executor{}
	err := e.Execute(ctx, "shipr-no-such-tool", nil, "", &out, &errb)
	if err == nil {
		t.Fatalf("expected error for missing executable")
	}
	if !strings.Contains(err.Error(), "not found in PATH") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDryRun(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	var errb bytes.Buffer
	e := &Executor{DryRun: true, Verbose: true}
	if err := e.Execute(ctx, "shipr-no-such-tool", []string{"build"}, "", &out, &errb); err != nil {
		t.Fatalf("dry-run should not error: %v", err)
	}
	if !strings.Contains(out.String(), "dry-run:") {
		t.Fatalf("expected dry-run message, got: %q", out.String())
	}
}

func TestDryRunQuietPrintsNothing(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	e := &Executor{DryRun: true}
	if err := e.Execute(ctx, "echo", []string{"hi"}, "", &out, &out); err != nil {
		t.Fatalf("dry-run should not error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got: %q", out.String())
	}
}

func TestExecuteErrorIncludesStderr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out, errb bytes.Buffer
	e := &Executor{}
	err := e.Execute(ctx, "sh", []string{"-c", "echo boom >&2; exit 1"}, "", &out, &errb)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected stderr in error message, got: %v", err)
	}
	if !strings.Contains(errb.String(), "boom") {
		t.Fatalf("expected stderr passthrough, got: %q", errb.String())
	}
}

func TestSplitCommand(t *testing.T) {
	name, args, err := SplitCommand("cargo lambda")
	if err != nil {
		t.Fatalf("SplitCommand: %v", err)
	}
	if name != "cargo" || len(args) != 1 || args[0] != "lambda" {
		t.Fatalf("unexpected split: %q %q", name, args)
	}
}

func TestSplitCommandQuoted(t *testing.T) {
	name, args, err := SplitCommand(`"/opt/my tools/cargo" lambda`)
	if err != nil {
		t.Fatalf("SplitCommand: %v", err)
	}
	if name != "/opt/my tools/cargo" || len(args) != 1 {
		t.Fatalf("unexpected split: %q %q", name, args)
	}
}

func TestSplitCommandEmpty(t *testing.T) {
	if _, _, err := SplitCommand("   "); err == nil {
		t.Fatalf("expected error for empty command")
	}
}
