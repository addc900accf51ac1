package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seosheet"
)

// Ensure LoggingGenerator implements seosheet.ContentGenerator.
var _ seosheet.ContentGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a ContentGenerator with debug logging.
type LoggingGenerator struct {
	next   seosheet.ContentGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next seosheet.ContentGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate logs input and output sizes and delegates to the wrapped generator.
func (g *LoggingGenerator) Generate(ctx context.Context, systemPrompt, contentA, contentB string) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Debug("generate",
			"prompt", systemPrompt,
			"input_chars", len(contentA)+len(contentB),
			"output_chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, systemPrompt, contentA, contentB)
}
