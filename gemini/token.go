package gemini

import (
	"context"

	"github.com/fwojciec/seosheet"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ seosheet.TokenCounter = (*TokenCounter)(nil)

// TokenCounter sizes scraped page text with the local Gemini tokenizer, so
// the "fetch" command can report how much of the prompt a page would use
// without calling the API.
type TokenCounter struct {
	model string
	local *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model. An empty model selects
// DefaultModel. Unsupported models are EINVALID.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	local, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, seosheet.Errorf(seosheet.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{model: model, local: local}, nil
}

// Model returns the model whose vocabulary is used.
func (c *TokenCounter) Model() string {
	return c.model
}

// CountTokens returns the token count of text sent as a user turn.
func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	res, err := c.local.CountTokens(contents, nil)
	if err != nil {
		return 0, seosheet.Errorf(seosheet.EINTERNAL, "counting tokens: %v", err)
	}
	return int(res.TotalTokens), nil
}
