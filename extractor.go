package seosheet

// Extractor names accepted by configuration.
const (
	ExtractorText        = "text"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
	ExtractorMarkdown    = "markdown"
)

// TextExtractor turns rendered HTML into the text handed to the generator.
type TextExtractor interface {
	// Extract returns the visible text of the page body. A document with no
	// body content returns an empty string and a nil error.
	Extract(html string) (string, error)
}
