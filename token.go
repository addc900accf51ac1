package seosheet

import "context"

// TokenCounter estimates how many model tokens a piece of scraped text uses.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
