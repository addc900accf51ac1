package seosheet

import (
	"context"
	"time"
)

// Run is a journaled pass over a spreadsheet.
type Run struct {
	ID         string    `json:"id"`
	SheetID    string    `json:"sheetId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Summary    string    `json:"summary"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SheetID == "" {
		return Errorf(EINVALID, "run sheet ID required")
	}
	return nil
}

// Entry is a journaled row outcome.
type Entry struct {
	ID         string    `json:"id"`
	RunID      string    `json:"runId"`
	RowNumber  int       `json:"rowNumber"`
	URL        string    `json:"url"`
	Status     Status    `json:"status"`
	Reason     string    `json:"reason"`
	MetaTitle  string    `json:"metaTitle"`
	BodyHash   string    `json:"bodyHash"`
	RecordedAt time.Time `json:"recordedAt"`
}

// RunJournal records the progress of a run. A journal is optional: the
// spreadsheet itself stays the source of truth.
type RunJournal interface {
	// CreateRun assigns an ID and start time to run and stores it.
	CreateRun(ctx context.Context, run *Run) error

	// RecordOutcome appends a row outcome to the run.
	// Returns ENOTFOUND if the run does not exist.
	RecordOutcome(ctx context.Context, runID string, outcome Outcome) error

	// FinishRun marks the run finished with the given summary.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, runID string, summary string) error
}

// RunService represents a service for reading and writing the run journal.
type RunService interface {
	RunJournal

	// FindRuns returns the most recent runs first. A limit of 0 returns all.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)

	// FindEntries returns the outcomes of a run in row order.
	FindEntries(ctx context.Context, runID string) ([]*Entry, error)
}
