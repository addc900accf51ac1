// Package htmltomarkdown renders the cleaned page body as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/goquery"
)

// Ensure Extractor implements seosheet.TextExtractor at compile time.
var _ seosheet.TextExtractor = (*Extractor)(nil)

// Extractor removes boilerplate from the body and converts what remains to
// Markdown, keeping headings and lists visible to the model.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract returns the cleaned body as Markdown.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", seosheet.Errorf(seosheet.EINVALID, "empty HTML input")
	}

	body, err := goquery.CleanBody(rawHTML)
	if err != nil {
		return "", err
	}
	if body == nil {
		return "", nil
	}

	inner, err := body.Html()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(inner) == "" {
		return "", nil
	}

	md, err := e.conv.ConvertString(inner)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(md), nil
}
