// Package trafilatura extracts main page text with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/seosheet"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements seosheet.TextExtractor at compile time.
var _ seosheet.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", seosheet.Errorf(seosheet.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
