package seosheet

import "context"

// DefaultMaxTokens bounds the size of a generated response.
const DefaultMaxTokens = 1000

// ContentGenerator produces marketing copy with a language model.
type ContentGenerator interface {
	// Generate sends systemPrompt as the system message and the two contents,
	// labeled by UserMessage, as the user message. It returns the text of the
	// first completion.
	Generate(ctx context.Context, systemPrompt, contentA, contentB string) (string, error)
}
