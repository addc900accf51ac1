package seosheet

import "context"

// SheetStore opens spreadsheets by identifier.
type SheetStore interface {
	// OpenSheet returns the first worksheet of the spreadsheet identified by id.
	// Returns EUNAUTHORIZED if access is denied and ENOTFOUND if the
	// spreadsheet does not exist.
	OpenSheet(ctx context.Context, id string) (Sheet, error)
}

// Sheet is an open worksheet. It is used from a single goroutine.
type Sheet interface {
	// Rows returns every line of the worksheet, header included.
	// Trailing empty cells may be omitted from a line.
	Rows(ctx context.Context) ([][]string, error)

	// WriteCell writes value to the 1-based row and column.
	WriteCell(ctx context.Context, row, column int, value string) error

	// WriteCellAt writes value to a cell in A1 notation.
	WriteCellAt(ctx context.Context, cell string, value string) error

	// Close releases the sheet. Implementations flush pending writes.
	Close() error
}
