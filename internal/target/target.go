// Package target defines the build targets the release pipeline packages.
package target

import (
	"fmt"
	"path/filepath"
)

// Architecture the functions are compiled for.
const Architecture = "arm64"

// Profile is the build profile used for release packaging.
const Profile = "release"

// archiveFile is the file name cargo-lambda gives every packaged function.
const archiveFile = "bootstrap.zip"

// Target is one named build artifact produced by the pipeline.
type Target struct {
	Name string
}

// The two functions this project ships.
var (
	API = Target{Name: "api"}
	Job = Target{Name: "job"}
)

// All returns the targets in their canonical order.
func All() []Target {
	return []Target{API, Job}
}

// ArchivePath returns the path of the toolchain-produced archive for t
// under the given build root.
func (t Target) ArchivePath(buildRoot string) string {
	return filepath.Join(buildRoot, t.Name, archiveFile)
}

// DestPath returns the path the staged copy of t's archive is published at.
func (t Target) DestPath(destDir, project string) string {
	return filepath.Join(destDir, fmt.Sprintf("%s-%s.zip", project, t.Name))
}

func (t Target) String() string {
	return t.Name
}
