package mock

import (
	"context"

	"github.com/fwojciec/seosheet"
)

var _ seosheet.SheetStore = (*SheetStore)(nil)

// SheetStore is a mock implementation of seosheet.SheetStore.
type SheetStore struct {
	OpenSheetFn func(ctx context.Context, id string) (seosheet.Sheet, error)
}

func (s *SheetStore) OpenSheet(ctx context.Context, id string) (seosheet.Sheet, error) {
	return s.OpenSheetFn(ctx, id)
}

var _ seosheet.Sheet = (*Sheet)(nil)

// Sheet is a mock implementation of seosheet.Sheet.
type Sheet struct {
	RowsFn        func(ctx context.Context) ([][]string, error)
	WriteCellFn   func(ctx context.Context, row, column int, value string) error
	WriteCellAtFn func(ctx context.Context, cell string, value string) error
	CloseFn       func() error
}

func (s *Sheet) Rows(ctx context.Context) ([][]string, error) {
	return s.RowsFn(ctx)
}

func (s *Sheet) WriteCell(ctx context.Context, row, column int, value string) error {
	return s.WriteCellFn(ctx, row, column, value)
}

func (s *Sheet) WriteCellAt(ctx context.Context, cell string, value string) error {
	return s.WriteCellAtFn(ctx, cell, value)
}

func (s *Sheet) Close() error {
	return s.CloseFn()
}
