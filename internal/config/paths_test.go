package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv(EnvShiprHome, tmp)
	defer func() { _ = os.Unsetenv(EnvShiprHome) }()

	d, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.db")
	_ = os.Setenv(EnvShiprDB, tmp)
	defer func() { _ = os.Unsetenv(EnvShiprDB) }()

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestDBPathUnderDataDir(t *testing.T) {
	_ = os.Unsetenv(EnvShiprDB)
	tmp := t.TempDir()
	_ = os.Setenv(EnvShiprHome, tmp)
	defer func() { _ = os.Unsetenv(EnvShiprHome) }()

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != filepath.Join(tmp, "shipr.db") {
		t.Fatalf("unexpected db path: %s", p)
	}
}

func TestBuildRootEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv(EnvShiprBuildRoot, tmp)
	defer func() { _ = os.Unsetenv(EnvShiprBuildRoot) }()

	d, err := BuildRoot()
	if err != nil {
		t.Fatalf("BuildRoot(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestBuildRootDefaultUnderCwd(t *testing.T) {
	_ = os.Unsetenv(EnvShiprBuildRoot)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	d, err := BuildRoot()
	if err != nil {
		t.Fatalf("BuildRoot(): %v", err)
	}
	if d != filepath.Join(wd, "target", "lambda") {
		t.Fatalf("unexpected build root: %s", d)
	}
}

func TestDestDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv(EnvShiprDestDir, tmp)
	defer func() { _ = os.Unsetenv(EnvShiprDestDir) }()

	d, err := DestDir()
	if err != nil {
		t.Fatalf("DestDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestBuildToolDefaultAndOverride(t *testing.T) {
	_ = os.Unsetenv(EnvShiprBuildTool)
	if got := BuildTool(); got != "cargo lambda" {
		t.Fatalf("unexpected default build tool: %q", got)
	}
	_ = os.Setenv(EnvShiprBuildTool, "cargo-lambda")
	defer func() { _ = os.Unsetenv(EnvShiprBuildTool) }()
	if got := BuildTool(); got != "cargo-lambda" {
		t.Fatalf("override not honored: %q", got)
	}
}
