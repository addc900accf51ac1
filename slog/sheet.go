package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seosheet"
)

var (
	_ seosheet.SheetStore = (*LoggingSheetStore)(nil)
	_ seosheet.Sheet      = (*LoggingSheet)(nil)
)

// LoggingSheetStore wraps a SheetStore so every opened Sheet logs its I/O.
type LoggingSheetStore struct {
	next   seosheet.SheetStore
	logger *slog.Logger
}

// NewLoggingSheetStore creates a new LoggingSheetStore.
func NewLoggingSheetStore(next seosheet.SheetStore, logger *slog.Logger) *LoggingSheetStore {
	return &LoggingSheetStore{next: next, logger: logger}
}

// OpenSheet logs the open and wraps the returned Sheet.
func (s *LoggingSheetStore) OpenSheet(ctx context.Context, id string) (seosheet.Sheet, error) {
	begin := time.Now()
	sheet, err := s.next.OpenSheet(ctx, id)
	s.logger.Debug("open sheet",
		"sheet", id,
		"duration", time.Since(begin),
		"err", err,
	)
	if err != nil {
		return nil, err
	}
	return NewLoggingSheet(sheet, s.logger), nil
}

// LoggingSheet wraps a Sheet with debug logging.
type LoggingSheet struct {
	next   seosheet.Sheet
	logger *slog.Logger
}

// NewLoggingSheet creates a new LoggingSheet.
func NewLoggingSheet(next seosheet.Sheet, logger *slog.Logger) *LoggingSheet {
	return &LoggingSheet{next: next, logger: logger}
}

// Rows logs the number of rows read.
func (s *LoggingSheet) Rows(ctx context.Context) (rows [][]string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read rows",
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rows(ctx)
}

// WriteCell logs the target cell.
func (s *LoggingSheet) WriteCell(ctx context.Context, row, column int, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("write cell",
			"row", row,
			"column", column,
			"chars", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteCell(ctx, row, column, value)
}

// WriteCellAt logs the target cell.
func (s *LoggingSheet) WriteCellAt(ctx context.Context, cell string, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("write cell",
			"cell", cell,
			"chars", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteCellAt(ctx, cell, value)
}

// Close delegates to the wrapped sheet.
func (s *LoggingSheet) Close() error {
	return s.next.Close()
}
