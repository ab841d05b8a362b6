// Package pipeline implements the release sequence: compile both targets,
// drop stale staged archives, dry-run validate each target, then stage the
// fresh archives at their published paths.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/nvalkov/shipr/internal/archive"
	"github.com/nvalkov/shipr/internal/target"
)

// BuildTool is the slice of the toolchain the pipeline drives.
type BuildTool interface {
	Build(ctx context.Context, stdout, stderr io.Writer) error
	ValidateDeploy(ctx context.Context, t target.Target, stdout, stderr io.Writer) error
}

// Status is the outcome of a run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Artifact is one staged archive produced by a successful run.
type Artifact struct {
	Target target.Target
	Path   string
	Size   int64
	SHA256 string
}

// Result records one run of the pipeline.
type Result struct {
	ID         uuid.UUID
	Started    time.Time
	Finished   time.Time
	Status     Status
	FailedStep string
	Artifacts  []Artifact
}

// Pipeline runs the release steps in a fixed order with fail-fast
// semantics: any step error aborts the run, nothing is retried and nothing
// already done is rolled back.
type Pipeline struct {
	Tool      BuildTool
	BuildRoot string
	DestDir   string
	Project   string

	// DryRun skips file mutations; the Tool is expected to be dry as well.
	DryRun bool

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the full sequence. The returned Result is non-nil even on
// failure so the run can be recorded; the error is the failing step's.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res := &Result{ID: uuid.New(), Started: time.Now(), Status: StatusFailed}
	err := p.run(ctx, res)
	res.Finished = time.Now()
	if err != nil {
		return res, err
	}
	res.Status = StatusSuccess
	res.FailedStep = ""
	return res, nil
}

// The ordering below is deliberate: both stale archives go before either
// validation, so a validation failure leaves both old archives removed and
// neither replaced. Reordering changes the failure modes callers rely on.
func (p *Pipeline) run(ctx context.Context, res *Result) error {
	res.FailedStep = "compile"
	p.step("compile %s and %s (%s, %s)", target.API, target.Job, target.Architecture, target.Profile)
	if err := p.Tool.Build(ctx, p.Stdout, p.Stderr); err != nil {
		return &CompileError{Err: err}
	}

	for _, t := range []target.Target{target.API, target.Job} {
		res.FailedStep = "remove-stale " + t.Name
		p.step("remove stale %s", p.destPath(t))
		if err := p.removeStale(t); err != nil {
			return err
		}
	}

	for _, t := range []target.Target{target.Job, target.API} {
		res.FailedStep = "validate " + t.Name
		p.step("validate %s (dry-run deploy)", t)
		if err := p.Tool.ValidateDeploy(ctx, t, p.Stdout, p.Stderr); err != nil {
			return &ValidationError{Target: t, Err: err}
		}
	}

	for _, t := range []target.Target{target.API, target.Job} {
		res.FailedStep = "stage " + t.Name
		p.step("stage %s -> %s", t.ArchivePath(p.BuildRoot), p.destPath(t))
		if err := p.stage(t, res); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) removeStale(t target.Target) error {
	if p.DryRun {
		return nil
	}
	if err := archive.RemoveStale(p.destPath(t)); err != nil {
		return &IOError{Op: "remove-stale", Target: t, Err: err}
	}
	return nil
}

func (p *Pipeline) stage(t target.Target, res *Result) error {
	if p.DryRun {
		return nil
	}
	dst := p.destPath(t)
	if err := archive.Stage(t.ArchivePath(p.BuildRoot), dst); err != nil {
		return &IOError{Op: "stage", Target: t, Err: err}
	}
	info, err := archive.Inspect(dst)
	if err != nil {
		return &IOError{Op: "inspect", Target: t, Err: err}
	}
	res.Artifacts = append(res.Artifacts, Artifact{
		Target: t,
		Path:   dst,
		Size:   info.Size,
		SHA256: info.SHA256,
	})
	return nil
}

func (p *Pipeline) destPath(t target.Target) string {
	return t.DestPath(p.DestDir, p.Project)
}

func (p *Pipeline) step(format string, args ...any) {
	if p.Stdout != nil {
		_, _ = fmt.Fprintf(p.Stdout, "-> "+format+"\n", args...)
	}
}
