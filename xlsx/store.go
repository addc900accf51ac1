// Package xlsx implements seosheet.SheetStore over a local .xlsx workbook.
package xlsx

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/fwojciec/seosheet"
	"github.com/xuri/excelize/v2"
)

var (
	_ seosheet.SheetStore = (*Store)(nil)
	_ seosheet.Sheet      = (*Sheet)(nil)
)

// Store opens workbooks from the local filesystem. The sheet ID passed to
// OpenSheet is the workbook path.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// OpenSheet opens the workbook at path and selects its first worksheet.
func (s *Store) OpenSheet(ctx context.Context, path string) (seosheet.Sheet, error) {
	if path == "" {
		return nil, seosheet.Errorf(seosheet.EINVALID, "workbook path required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, seosheet.Errorf(seosheet.ENOTFOUND, "workbook %q not found", path)
		}
		return nil, seosheet.Errorf(seosheet.EINVALID, "opening workbook %q: %v", path, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, seosheet.Errorf(seosheet.ENOTFOUND, "workbook %q has no worksheets", path)
	}

	return &Sheet{file: f, name: sheets[0]}, nil
}

// Sheet is the first worksheet of an open workbook. Every write is saved to
// disk before returning so a later failure cannot lose earlier rows.
type Sheet struct {
	mu   sync.Mutex
	file *excelize.File
	name string
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Rows returns every row of the worksheet as strings.
func (s *Sheet) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(s.name)
	if err != nil {
		return nil, seosheet.Errorf(seosheet.EINTERNAL, "reading rows: %v", err)
	}
	return rows, nil
}

// WriteCell writes value at the 1-based row and column.
func (s *Sheet) WriteCell(ctx context.Context, row, column int, value string) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return seosheet.Errorf(seosheet.EINVALID, "invalid cell (%d, %d): %v", row, column, err)
	}
	return s.WriteCellAt(ctx, cell, value)
}

// WriteCellAt writes value to an A1-notation cell and saves the workbook.
func (s *Sheet) WriteCellAt(ctx context.Context, cell string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
		return seosheet.Errorf(seosheet.EINVALID, "invalid cell %q", cell)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.file.SetCellValue(s.name, cell, value); err != nil {
		return seosheet.Errorf(seosheet.EINTERNAL, "writing %s: %v", cell, err)
	}
	if err := s.file.Save(); err != nil {
		return seosheet.Errorf(seosheet.EUNAVAILABLE, "saving workbook: %v", err)
	}
	return nil
}

// Close releases the workbook.
func (s *Sheet) Close() error {
	return s.file.Close()
}
