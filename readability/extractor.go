// Package readability extracts article text with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/seosheet"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements seosheet.TextExtractor at compile time.
var _ seosheet.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article text.
// Unlike the default body extractor it also drops sidebars, related links
// and other low-density blocks.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", seosheet.Errorf(seosheet.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
