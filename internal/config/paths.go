package config

import (
	"os"
	"path/filepath"
)

// Project is the name the staged archives are published under.
const Project = "gh-stats"

// Environment overrides. These exist for tests and unusual setups; normal
// invocations rely on the defaults below and read no configuration file.
const (
	EnvShiprHome      = "SHIPR_HOME"
	EnvShiprDB        = "SHIPR_DB"
	EnvShiprBuildRoot = "SHIPR_BUILD_ROOT"
	EnvShiprDestDir   = "SHIPR_DEST_DIR"
	EnvShiprBuildTool = "SHIPR_BUILD_TOOL"
)

// DataDir returns the directory used to store shipr data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvShiprHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".shipr"), nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvShiprDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "shipr.db"), nil
}

// BuildRoot returns the directory the build toolchain writes packaged
// archives into. cargo-lambda places them under target/lambda in the
// working directory.
func BuildRoot() (string, error) {
	if d := os.Getenv(EnvShiprBuildRoot); d != "" {
		return d, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, "target", "lambda"), nil
}

// DestDir returns the directory staged archives are copied into.
func DestDir() (string, error) {
	if d := os.Getenv(EnvShiprDestDir); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads"), nil
}

// BuildTool returns the command used to invoke the build toolchain. The
// default is cargo with its lambda subcommand; SHIPR_BUILD_TOOL may override
// it with a full command string (split shell-style by the caller).
func BuildTool() string {
	if t := os.Getenv(EnvShiprBuildTool); t != "" {
		return t
	}
	return "cargo lambda"
}
