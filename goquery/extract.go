// Package goquery extracts visible page text with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seosheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BoilerplateSelector matches the elements removed before text extraction.
const BoilerplateSelector = "header, footer, script, nav"

// Ensure Extractor implements seosheet.TextExtractor at compile time.
var _ seosheet.TextExtractor = (*Extractor)(nil)

// Extractor returns the visible body text of an HTML page with header,
// footer, script and navigation elements removed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the trimmed body text, one block per line.
// A document without body content returns an empty string.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	body, err := CleanBody(rawHTML)
	if err != nil {
		return "", err
	}
	if body == nil {
		return "", nil
	}
	return VisibleText(body), nil
}

// CleanBody parses rawHTML and returns its body with boilerplate removed.
// Returns nil if the document has no body element.
func CleanBody(rawHTML string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, seosheet.Errorf(seosheet.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, nil
	}
	body.Find(BoilerplateSelector).Remove()
	return body, nil
}

// VisibleText renders the text of sel with block elements on their own
// lines. Whitespace runs collapse to one space and blank lines are dropped.
func VisibleText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// blockElements start and end a line of text.
var blockElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Br:         true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Tr:         true,
	atom.Ul:         true,
}

// invisibleElements never contribute text.
var invisibleElements = map[atom.Atom]bool{
	atom.Noscript: true,
	atom.Style:    true,
	atom.Template: true,
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if invisibleElements[n.DataAtom] {
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte('\n')
	}
}
