package pipeline

import (
	"fmt"

	"github.com/nvalkov/shipr/internal/target"
)

// CompileError reports a build-toolchain failure. Either target failing to
// compile fails the single build invocation that covers both.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string { return fmt.Sprintf("compile: %v", e.Err) }
func (e *CompileError) Unwrap() error { return e.Err }

// ValidationError reports a failed dry-run deploy check for one target.
type ValidationError struct {
	Target target.Target
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate %s: %v", e.Target, e.Err)
}
func (e *ValidationError) Unwrap() error { return e.Err }

// IOError reports a failed archive removal or copy. A missing stale archive
// is not an IOError; removal treats absence as success.
type IOError struct {
	Op     string
	Target target.Target
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}
func (e *IOError) Unwrap() error { return e.Err }
