// Package openai generates SEO copy with the OpenAI chat completions API.
package openai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/seosheet"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gpt-4"
)

// Ensure Generator implements seosheet.ContentGenerator at compile time.
var _ seosheet.ContentGenerator = (*Generator)(nil)

// Generator implements seosheet.ContentGenerator against any
// OpenAI-compatible chat completions endpoint.
type Generator struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel sets the chat model.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

// WithBaseURL points the client at another OpenAI-compatible API.
func WithBaseURL(url string) Option {
	return func(g *Generator) {
		g.client.SetBaseURL(strings.TrimRight(url, "/"))
	}
}

// NewGenerator creates a Generator authenticated with apiKey.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	client := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)

	g := &Generator{
		client:    client,
		model:     DefaultModel,
		maxTokens: seosheet.DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (g *Generator) request(systemPrompt, contentA, contentB string) chatRequest {
	return chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: seosheet.UserMessage(contentA, contentB)},
		},
		MaxTokens: g.maxTokens,
	}
}

// Generate sends one chat completion request and returns the first choice.
func (g *Generator) Generate(ctx context.Context, systemPrompt, contentA, contentB string) (string, error) {
	var (
		out     chatResponse
		failure chatErrorResponse
	)
	res, err := g.client.R().
		SetContext(ctx).
		SetBody(g.request(systemPrompt, contentA, contentB)).
		SetResult(&out).
		SetError(&failure).
		Post("/chat/completions")
	if err != nil {
		return "", seosheet.Errorf(seosheet.EUNAVAILABLE, "openai request failed: %v", err)
	}
	if res.IsError() {
		return "", classify(res.StatusCode(), failure.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", seosheet.Errorf(seosheet.EINTERNAL, "openai returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func classify(status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return seosheet.Errorf(seosheet.EUNAUTHORIZED, "openai: %s", msg)
	case status == http.StatusTooManyRequests || status >= 500:
		return seosheet.Errorf(seosheet.EUNAVAILABLE, "openai returned %d: %s", status, msg)
	case status == http.StatusNotFound:
		return seosheet.Errorf(seosheet.ENOTFOUND, "openai: %s", msg)
	default:
		return seosheet.Errorf(seosheet.EINVALID, "openai returned %d: %s", status, msg)
	}
}
