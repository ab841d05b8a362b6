package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/nvalkov/shipr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// a failed external tool decides the exit code when it has one
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
