package seosheet

import "strings"

// DefaultInstruction is the base system instruction sent for every row.
const DefaultInstruction = "Generate SEO content"

// ParsedResult is generated content split into its three output fields.
type ParsedResult struct {
	MetaTitle       string
	MetaDescription string
	BodyContent     string
}

// ParseContent splits generated text positionally: the first line is the
// meta title, the second the meta description and the remaining lines the
// body. Every line is trimmed; missing fields are empty. The split is purely
// positional, so a one-line response yields a title and nothing else.
func ParseContent(text string) ParsedResult {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var r ParsedResult
	if len(lines) > 0 {
		r.MetaTitle = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		r.MetaDescription = strings.TrimSpace(lines[1])
	}
	if len(lines) > 2 {
		body := make([]string, 0, len(lines)-2)
		for _, line := range lines[2:] {
			body = append(body, strings.TrimSpace(line))
		}
		r.BodyContent = strings.Join(body, "\n")
	}
	return r
}

// BuildPrompt returns the system instruction for a row. Keywords, when
// present, are appended as an extra clause.
func BuildPrompt(instruction, keywords string) string {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return instruction
	}
	return instruction + " Use the following keywords: " + keywords + "."
}

// UserMessage labels the scraped and provided content for the model.
func UserMessage(contentA, contentB string) string {
	return "Content A: " + contentA + "\nContent B: " + contentB
}
