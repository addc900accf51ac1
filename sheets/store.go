// Package sheets implements seosheet.SheetStore over the Google Sheets API.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/seosheet"
	"github.com/xuri/excelize/v2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Scopes are the OAuth scopes requested for the service account.
var Scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/drive",
}

var (
	_ seosheet.SheetStore = (*Store)(nil)
	_ seosheet.Sheet      = (*Sheet)(nil)
)

// Store opens spreadsheets by key.
type Store struct {
	svc *sheets.Service
}

// NewStore creates a Store authenticated with a service-account JSON blob.
// Extra options are appended after the credentials.
func NewStore(ctx context.Context, credentialsJSON string, opts ...option.ClientOption) (*Store, error) {
	creds, err := Credentials(ctx, credentialsJSON)
	if err != nil {
		return nil, err
	}
	return NewStoreWithOptions(ctx, append([]option.ClientOption{option.WithCredentials(creds)}, opts...)...)
}

// NewStoreWithOptions creates a Store from raw client options.
func NewStoreWithOptions(ctx context.Context, opts ...option.ClientOption) (*Store, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, seosheet.Errorf(seosheet.EUNAUTHORIZED, "creating sheets client: %v", err)
	}
	return &Store{svc: svc}, nil
}

// Credentials parses a service-account JSON blob into OAuth credentials.
func Credentials(ctx context.Context, credentialsJSON string) (*google.Credentials, error) {
	if strings.TrimSpace(credentialsJSON) == "" {
		return nil, seosheet.Errorf(seosheet.EUNAUTHORIZED, "google credentials required")
	}
	creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), Scopes...)
	if err != nil {
		return nil, seosheet.Errorf(seosheet.EUNAUTHORIZED, "invalid google credentials: %v", err)
	}
	return creds, nil
}

// OpenSheet opens the spreadsheet with the given key and selects its first
// worksheet.
func (s *Store) OpenSheet(ctx context.Context, id string) (seosheet.Sheet, error) {
	if id == "" {
		return nil, seosheet.Errorf(seosheet.EINVALID, "sheet ID required")
	}

	ss, err := s.svc.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, "opening spreadsheet %q", id)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return nil, seosheet.Errorf(seosheet.ENOTFOUND, "spreadsheet %q has no worksheets", id)
	}

	return &Sheet{
		svc:   s.svc,
		id:    id,
		title: ss.Sheets[0].Properties.Title,
	}, nil
}

// Sheet is the first worksheet of a spreadsheet.
type Sheet struct {
	svc   *sheets.Service
	id    string
	title string
}

// Title returns the worksheet title.
func (s *Sheet) Title() string {
	return s.title
}

// Rows returns every populated row of the worksheet. Trailing empty cells
// are omitted by the API, so rows may be shorter than the header.
func (s *Sheet) Rows(ctx context.Context) ([][]string, error) {
	res, err := s.svc.Spreadsheets.Values.Get(s.id, QuoteTitle(s.title)).Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, "reading rows")
	}

	rows := make([][]string, len(res.Values))
	for i, row := range res.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
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

// WriteCellAt writes value to an A1-notation cell as raw text.
func (s *Sheet) WriteCellAt(ctx context.Context, cell string, value string) error {
	vr := &sheets.ValueRange{Values: [][]any{{value}}}
	_, err := s.svc.Spreadsheets.Values.Update(s.id, CellRange(s.title, cell), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return apiError(err, "writing %s", cell)
	}
	return nil
}

// Close is a no-op; the API client holds no per-sheet resources.
func (s *Sheet) Close() error {
	return nil
}

// QuoteTitle returns a worksheet title quoted for A1 notation.
func QuoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// CellRange returns the A1 range addressing cell on the titled worksheet.
func CellRange(title, cell string) string {
	return QuoteTitle(title) + "!" + cell
}

func apiError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return seosheet.Errorf(seosheet.EUNAUTHORIZED, "%s: %s", msg, gerr.Message)
		case http.StatusNotFound:
			return seosheet.Errorf(seosheet.ENOTFOUND, "%s: %s", msg, gerr.Message)
		case http.StatusBadRequest:
			return seosheet.Errorf(seosheet.EINVALID, "%s: %s", msg, gerr.Message)
		case http.StatusTooManyRequests:
			return seosheet.Errorf(seosheet.EUNAVAILABLE, "%s: %s", msg, gerr.Message)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
