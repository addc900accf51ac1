package seosheet

import "strings"

// Spreadsheet columns, 1-based. Columns A-C are read, D-F are written.
const (
	ColumnURL             = 1
	ColumnContent         = 2
	ColumnKeywords        = 3
	ColumnMetaTitle       = 4
	ColumnMetaDescription = 5
	ColumnBody            = 6
)

// SentinelCell is overwritten with the run-status marker at the end of every run.
const SentinelCell = "A1"

// DefaultSentinelMarker is the marker written to SentinelCell after a run.
const DefaultSentinelMarker = "✅ GitHub Workflow Ran Successfully!"

// Row is one data line of the spreadsheet. It only lives for the duration
// of a single pipeline iteration.
type Row struct {
	// Index is the 1-based position among data rows (header excluded).
	Index int

	// Number is the 1-based sheet row the data came from, used for writes.
	Number int

	URL             string
	ProvidedContent string
	Keywords        string
}

// ReadRow builds the Row at data position index from the raw cells of a
// sheet line. Missing cells read as empty strings and every value is
// stripped of surrounding whitespace.
func ReadRow(index int, cells []string) Row {
	return Row{
		Index:           index,
		Number:          index + 1,
		URL:             cell(cells, ColumnURL),
		ProvidedContent: cell(cells, ColumnContent),
		Keywords:        cell(cells, ColumnKeywords),
	}
}

func cell(cells []string, column int) string {
	if len(cells) < column {
		return ""
	}
	return strings.TrimSpace(cells[column-1])
}
