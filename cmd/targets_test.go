package cmd

import (
	"strings"
	"testing"
)

func TestTargetsDescribesBoth(t *testing.T) {
	buildRoot, destDir := setupTempEnv(t)

	var runErr error
	out, _ := captureOutput(func() {
		runErr = targetsCmd.RunE(targetsCmd, nil)
	})
	if runErr != nil {
		t.Fatalf("targets: %v", runErr)
	}
	for _, want := range []string{"api:", "job:", "arm64", "release", buildRoot, destDir} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got: %q", want, out)
		}
	}
}
