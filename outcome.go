package seosheet

import (
	"fmt"
	"time"
)

// Status is the terminal state reached by a row.
type Status string

// Row states. Every visited row ends in exactly one of these.
const (
	StatusPersisted    Status = "persisted"
	StatusSkipped      Status = "skipped"
	StatusNoContent    Status = "no_content"
	StatusNoGeneration Status = "no_generation"
	StatusWriteFailed  Status = "write_failed"
)

// Statuses lists every row status in report order.
var Statuses = []Status{
	StatusPersisted,
	StatusSkipped,
	StatusNoContent,
	StatusNoGeneration,
	StatusWriteFailed,
}

// Outcome records what happened to one row.
type Outcome struct {
	Row    Row
	Status Status

	// Reason explains non-persisted outcomes. Empty on success.
	Reason string

	// Result holds the parsed content for rows that reached the write step.
	Result *ParsedResult
}

// ProgressFunc is called after each row is visited.
type ProgressFunc func(Outcome)

// RunReport summarizes one pass over a spreadsheet.
type RunReport struct {
	RunID      string
	SheetID    string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome

	// SentinelErr is set when the final status marker could not be written.
	SentinelErr error
}

// Count returns the number of rows that ended in status.
func (r *RunReport) Count(status Status) int {
	var n int
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Summary formats the per-status counts on one line.
func (r *RunReport) Summary() string {
	s := fmt.Sprintf("rows=%d", len(r.Outcomes))
	for _, status := range Statuses {
		s += fmt.Sprintf(" %s=%d", status, r.Count(status))
	}
	return s
}
