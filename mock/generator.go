package mock

import (
	"context"

	"github.com/fwojciec/seosheet"
)

var _ seosheet.ContentGenerator = (*ContentGenerator)(nil)

// ContentGenerator is a mock implementation of seosheet.ContentGenerator.
type ContentGenerator struct {
	GenerateFn func(ctx context.Context, systemPrompt, contentA, contentB string) (string, error)
}

func (g *ContentGenerator) Generate(ctx context.Context, systemPrompt, contentA, contentB string) (string, error) {
	return g.GenerateFn(ctx, systemPrompt, contentA, contentB)
}
