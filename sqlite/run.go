package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/seosheet"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seosheet.RunService = (*RunService)(nil)

// RunService implements seosheet.RunService using SQLite.
type RunService struct {
	db  *DB
	now func() time.Time
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db, now: time.Now}
}

// CreateRun creates a new run.
func (s *RunService) CreateRun(ctx context.Context, run *seosheet.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = s.now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, sheet_id, started_at)
		VALUES (?, ?, ?)
	`, run.ID, run.SheetID, formatTime(run.StartedAt))

	return err
}

// RecordOutcome stores one row outcome. The generated body is kept only as
// a hash.
func (s *RunService) RecordOutcome(ctx context.Context, runID string, outcome seosheet.Outcome) error {
	if err := s.requireRun(ctx, runID); err != nil {
		return err
	}

	var title, bodyHash string
	if outcome.Result != nil {
		title = outcome.Result.MetaTitle
		bodyHash = hashContent(outcome.Result.BodyContent)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, run_id, row_number, url, status, reason, meta_title, body_hash, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), runID, outcome.Row.Number, outcome.Row.URL, string(outcome.Status),
		outcome.Reason, title, bodyHash, formatTime(s.now()))

	return err
}

// FinishRun records the finish time and summary of a run.
func (s *RunService) FinishRun(ctx context.Context, runID string, summary string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, summary = ? WHERE id = ?
	`, formatTime(s.now()), summary, runID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return seosheet.Errorf(seosheet.ENOTFOUND, "run not found")
	}
	return nil
}

// FindRuns returns runs newest first.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*seosheet.Run, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT id, sheet_id, started_at, finished_at, summary
		FROM runs
		ORDER BY started_at DESC, rowid DESC`)

	var args []any
	appendPagination(&query, &args, limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*seosheet.Run, 0)
	for rows.Next() {
		var run seosheet.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &run.SheetID, &startedAt, &finishedAt, &run.Summary); err != nil {
			return nil, err
		}
		if run.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseTime(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindEntries returns the outcomes of a run in row order.
func (s *RunService) FindEntries(ctx context.Context, runID string) ([]*seosheet.Entry, error) {
	if err := s.requireRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, row_number, url, status, reason, meta_title, body_hash, recorded_at
		FROM entries
		WHERE run_id = ?
		ORDER BY row_number ASC, recorded_at ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*seosheet.Entry, 0)
	for rows.Next() {
		var e seosheet.Entry
		var status, recordedAt string
		if err := rows.Scan(&e.ID, &e.RunID, &e.RowNumber, &e.URL, &status, &e.Reason,
			&e.MetaTitle, &e.BodyHash, &recordedAt); err != nil {
			return nil, err
		}
		e.Status = seosheet.Status(status)
		if e.RecordedAt, err = parseTime(recordedAt, "recorded_at"); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (s *RunService) requireRun(ctx context.Context, runID string) error {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs WHERE id = ?`, runID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return seosheet.Errorf(seosheet.ENOTFOUND, "run not found")
	}
	return err
}
