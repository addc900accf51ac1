// Package gemini generates SEO copy and counts tokens with Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/seosheet"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements seosheet.ContentGenerator at compile time.
var _ seosheet.ContentGenerator = (*Generator)(nil)

// Generator implements seosheet.ContentGenerator using Google Gemini.
type Generator struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel
// and a non-positive maxTokens selects seosheet.DefaultMaxTokens.
func NewGenerator(client *genai.Client, model string, maxTokens int) *Generator {
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = seosheet.DefaultMaxTokens
	}
	return &Generator{client: client, model: model, maxTokens: maxTokens}
}

// Generate sends the system prompt as a system instruction and both content
// blocks as a single user turn.
func (g *Generator) Generate(ctx context.Context, systemPrompt, contentA, contentB string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model,
		BuildContents(contentA, contentB),
		BuildConfig(systemPrompt, g.maxTokens),
	)
	if err != nil {
		return "", seosheet.Errorf(seosheet.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", seosheet.Errorf(seosheet.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for one row.
func BuildConfig(systemPrompt string, maxTokens int) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		MaxOutputTokens: int32(maxTokens),
	}
}

// BuildContents returns the user turn carrying both content blocks.
func BuildContents(contentA, contentB string) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(seosheet.UserMessage(contentA, contentB), genai.RoleUser),
	}
}
