package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvalkov/shipr/internal/config"
)

// setupTempEnv points every configurable path at a fresh temp directory.
func setupTempEnv(t *testing.T) (buildRoot, destDir string) {
	t.Helper()
	buildRoot = filepath.Join(t.TempDir(), "target", "lambda")
	destDir = t.TempDir()
	_ = os.Setenv(config.EnvShiprBuildRoot, buildRoot)
	_ = os.Setenv(config.EnvShiprDestDir, destDir)
	_ = os.Setenv(config.EnvShiprDB, filepath.Join(t.TempDir(), "shipr.db"))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvShiprBuildRoot)
		_ = os.Unsetenv(config.EnvShiprDestDir)
		_ = os.Unsetenv(config.EnvShiprDB)
	})
	return buildRoot, destDir
}

func captureOutput(f func()) (string, string) {
	oldOut := os.Stdout
	oldErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	outC := make(chan string)
	errC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outC <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errC <- buf.String()
	}()

	f()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr
	return <-outC, <-errC
}
