package mock

import (
	"context"

	"github.com/fwojciec/seosheet"
)

var _ seosheet.RunService = (*RunService)(nil)

// RunService is a mock implementation of seosheet.RunService.
type RunService struct {
	CreateRunFn     func(ctx context.Context, run *seosheet.Run) error
	RecordOutcomeFn func(ctx context.Context, runID string, outcome seosheet.Outcome) error
	FinishRunFn     func(ctx context.Context, runID string, summary string) error
	FindRunsFn      func(ctx context.Context, limit int) ([]*seosheet.Run, error)
	FindEntriesFn   func(ctx context.Context, runID string) ([]*seosheet.Entry, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *seosheet.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) RecordOutcome(ctx context.Context, runID string, outcome seosheet.Outcome) error {
	return s.RecordOutcomeFn(ctx, runID, outcome)
}

func (s *RunService) FinishRun(ctx context.Context, runID string, summary string) error {
	return s.FinishRunFn(ctx, runID, summary)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*seosheet.Run, error) {
	return s.FindRunsFn(ctx, limit)
}

func (s *RunService) FindEntries(ctx context.Context, runID string) ([]*seosheet.Entry, error) {
	return s.FindEntriesFn(ctx, runID)
}
