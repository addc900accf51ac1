package pipeline

import (
	"context"

	"github.com/fwojciec/seosheet"
)

// startRun opens a journal run and returns its ID, or "" when no journal
// is configured or the run could not be created.
func (p *Pipeline) startRun(ctx context.Context, sheetID string) string {
	if p.journal == nil {
		return ""
	}
	run := &seosheet.Run{SheetID: sheetID}
	if err := p.journal.CreateRun(ctx, run); err != nil {
		p.logger.Warn("journal unavailable, continuing without it", "err", err)
		return ""
	}
	return run.ID
}

func (p *Pipeline) record(ctx context.Context, runID string, outcome seosheet.Outcome) {
	if p.journal == nil || runID == "" {
		return
	}
	if err := p.journal.RecordOutcome(ctx, runID, outcome); err != nil {
		p.logger.Warn("journal record failed", "row", outcome.Row.Number, "err", err)
	}
}

func (p *Pipeline) finishRun(ctx context.Context, report *seosheet.RunReport) {
	if p.journal == nil || report.RunID == "" {
		return
	}
	if err := p.journal.FinishRun(ctx, report.RunID, report.Summary()); err != nil {
		p.logger.Warn("journal finish failed", "run", report.RunID, "err", err)
	}
}
