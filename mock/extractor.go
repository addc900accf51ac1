package mock

import "github.com/fwojciec/seosheet"

var _ seosheet.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of seosheet.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *TextExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
