// Package history provides the run ledger stored alongside the tool's data.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nvalkov/shipr/internal/pipeline"
)

// Run is one recorded pipeline run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string
	FailedStep sql.NullString
	Artifacts  []Artifact
}

// Duration is the wall-clock time the run took.
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Artifact is one staged archive belonging to a run.
type Artifact struct {
	ID        int64
	RunID     string
	Target    string
	Path      string
	SizeBytes int64
	SHA256    string
}

// Repository provides persistence for runs and their artifacts.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// RecordRun persists a finished pipeline run and its staged artifacts in a
// single transaction.
func (r *Repository) RecordRun(res *pipeline.Result) error {
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	var failedStep any
	if res.FailedStep != "" {
		failedStep = res.FailedStep
	}
	_, err = trx.Exec(`INSERT INTO runs (id, started_at, finished_at, status, failed_step)
			VALUES (?, ?, ?, ?, ?)`,
		res.ID.String(),
		res.Started.UTC().Format(time.RFC3339Nano),
		res.Finished.UTC().Format(time.RFC3339Nano),
		string(res.Status),
		failedStep)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, a := range res.Artifacts {
		_, err = trx.Exec(`INSERT INTO artifacts (run_id, target, path, size_bytes, sha256)
				VALUES (?, ?, ?, ?, ?)`,
			res.ID.String(), a.Target.Name, a.Path, a.Size, a.SHA256)
		if err != nil {
			return fmt.Errorf("insert artifact: %w", err)
		}
	}
	return trx.Commit()
}

// ListRuns returns up to limit runs, most recent first, with their
// artifacts attached. limit <= 0 means no limit.
func (r *Repository) ListRuns(limit int) ([]Run, error) {
	q := `SELECT id, started_at, finished_at, status, failed_step FROM runs ORDER BY started_at DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished string
		if err := rows.Scan(&run.ID, &started, &finished, &run.Status, &run.FailedStep); err != nil {
			return nil, err
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range runs {
		if runs[i].Artifacts, err = r.listArtifacts(runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (r *Repository) listArtifacts(runID string) ([]Artifact, error) {
	rows, err := r.db.Query(`SELECT id, run_id, target, path, size_bytes, sha256
			FROM artifacts WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query artifacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.ID, &a.RunID, &a.Target, &a.Path, &a.SizeBytes, &a.SHA256); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// LastSuccess returns the most recent successful run, or nil if none exists.
func (r *Repository) LastSuccess() (*Run, error) {
	runs, err := r.ListRuns(0)
	if err != nil {
		return nil, err
	}
	for i := range runs {
		if runs[i].Status == string(pipeline.StatusSuccess) {
			return &runs[i], nil
		}
	}
	return nil, nil
}
