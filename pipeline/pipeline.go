// Package pipeline drives the per-row regeneration job: scrape, prompt,
// generate, parse and persist, one row at a time.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/seosheet"
)

// Pipeline processes every data row of a sheet sequentially. Failures are
// isolated per row: a row that cannot be fetched, generated or written is
// logged and the run moves on.
type Pipeline struct {
	fetcher     seosheet.PageFetcher
	generator   seosheet.ContentGenerator
	journal     seosheet.RunJournal
	instruction string
	marker      string
	logger      *slog.Logger
	progress    seosheet.ProgressFunc
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithJournal records each run and row outcome in j.
func WithJournal(j seosheet.RunJournal) Option {
	return func(p *Pipeline) {
		p.journal = j
	}
}

// WithInstruction sets the base system instruction.
// Defaults to seosheet.DefaultInstruction.
func WithInstruction(instruction string) Option {
	return func(p *Pipeline) {
		p.instruction = instruction
	}
}

// WithSentinelMarker sets the text written to the sentinel cell after a run.
// Defaults to seosheet.DefaultSentinelMarker.
func WithSentinelMarker(marker string) Option {
	return func(p *Pipeline) {
		p.marker = marker
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithProgress registers a callback invoked after each row is visited.
func WithProgress(fn seosheet.ProgressFunc) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// New creates a Pipeline over the given fetcher and generator.
func New(fetcher seosheet.PageFetcher, generator seosheet.ContentGenerator, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:     fetcher,
		generator:   generator,
		instruction: seosheet.DefaultInstruction,
		marker:      seosheet.DefaultSentinelMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run makes a single pass over sheet. The first line is treated as a header
// and skipped. Once every row has been visited the sentinel marker is
// written, whatever the individual outcomes were.
//
// Only a failure to read the sheet is returned as an error; row-level and
// sentinel failures are logged and reported in the RunReport.
func (p *Pipeline) Run(ctx context.Context, sheetID string, sheet seosheet.Sheet) (*seosheet.RunReport, error) {
	lines, err := sheet.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	report := &seosheet.RunReport{
		SheetID:   sheetID,
		StartedAt: time.Now().UTC(),
	}
	report.RunID = p.startRun(ctx, sheetID)

	var data [][]string
	if len(lines) > 1 {
		data = lines[1:]
	}

	for i, cells := range data {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("run interrupted", "remaining", len(data)-i, "err", err)
			break
		}

		row := seosheet.ReadRow(i+1, cells)
		outcome := p.processRow(ctx, sheet, row)
		report.Outcomes = append(report.Outcomes, outcome)
		p.record(ctx, report.RunID, outcome)

		if p.progress != nil {
			p.progress(outcome)
		}
	}

	// The marker is written even when the run was interrupted.
	sctx := context.WithoutCancel(ctx)
	if err := sheet.WriteCellAt(sctx, seosheet.SentinelCell, p.marker); err != nil {
		p.logger.Error("sentinel update failed", "cell", seosheet.SentinelCell, "err", err)
		report.SentinelErr = err
	} else {
		p.logger.Info("sentinel updated", "cell", seosheet.SentinelCell)
	}

	report.FinishedAt = time.Now().UTC()
	p.finishRun(sctx, report)
	p.logger.Info("run complete",
		"summary", report.Summary(),
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	return report, ctx.Err()
}

// processRow walks one row through fetch, generate, parse and persist.
// Both black-box calls happen before the first cell of the row is written.
func (p *Pipeline) processRow(ctx context.Context, sheet seosheet.Sheet, row seosheet.Row) seosheet.Outcome {
	out := seosheet.Outcome{Row: row}
	log := p.logger.With("row", row.Number)

	if row.URL == "" {
		log.Info("row skipped: no URL")
		out.Status = seosheet.StatusSkipped
		out.Reason = "no URL"
		return out
	}

	log.Info("processing row", "url", row.URL)

	scraped, err := p.fetcher.Fetch(ctx, row.URL)
	if err != nil || scraped == "" {
		log.Warn("no content scraped", "url", row.URL, "err", err)
		out.Status = seosheet.StatusNoContent
		out.Reason = reason(err, "empty page content")
		return out
	}

	prompt := seosheet.BuildPrompt(p.instruction, row.Keywords)
	generated, err := p.generator.Generate(ctx, prompt, scraped, row.ProvidedContent)
	if err != nil || generated == "" {
		log.Warn("no content generated", "err", err)
		out.Status = seosheet.StatusNoGeneration
		out.Reason = reason(err, "empty generation")
		return out
	}

	result := seosheet.ParseContent(generated)
	out.Result = &result

	if err := p.persist(ctx, sheet, row, result); err != nil {
		log.Error("row update failed", "err", err)
		out.Status = seosheet.StatusWriteFailed
		out.Reason = err.Error()
		return out
	}

	log.Info("row updated")
	out.Status = seosheet.StatusPersisted
	return out
}

// persist writes the three output cells in column order and stops at the
// first failure.
func (p *Pipeline) persist(ctx context.Context, sheet seosheet.Sheet, row seosheet.Row, r seosheet.ParsedResult) error {
	cells := []struct {
		column int
		value  string
	}{
		{seosheet.ColumnMetaTitle, r.MetaTitle},
		{seosheet.ColumnMetaDescription, r.MetaDescription},
		{seosheet.ColumnBody, r.BodyContent},
	}
	for _, c := range cells {
		if err := sheet.WriteCell(ctx, row.Number, c.column, c.value); err != nil {
			return fmt.Errorf("writing row %d column %d: %w", row.Number, c.column, err)
		}
	}
	return nil
}

func reason(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
