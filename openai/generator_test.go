package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newServer(t *testing.T, status int, body string, got *capturedRequest, auth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("sends system and user messages and returns first choice", func(t *testing.T) {
		t.Parallel()

		// Given
		var got capturedRequest
		var auth string
		srv := newServer(t, http.StatusOK,
			`{"choices":[{"message":{"role":"assistant","content":"  Title\nDesc\nBody  "}}]}`,
			&got, &auth)
		g := openai.NewGenerator("sk-test", openai.WithBaseURL(srv.URL+"/"))

		// When
		text, err := g.Generate(context.Background(), "Generate SEO content", "page text", "extra")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "  Title\nDesc\nBody  ", text, "completion is returned verbatim")
		assert.Equal(t, "Bearer sk-test", auth)
		assert.Equal(t, openai.DefaultModel, got.Model)
		assert.Equal(t, seosheet.DefaultMaxTokens, got.MaxTokens)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, "Generate SEO content", got.Messages[0].Content)
		assert.Equal(t, "user", got.Messages[1].Role)
		assert.Equal(t, "Content A: page text\nContent B: extra", got.Messages[1].Content)
	})

	t.Run("honors model and max tokens options", func(t *testing.T) {
		t.Parallel()

		var got capturedRequest
		srv := newServer(t, http.StatusOK, `{"choices":[{"message":{"content":"x"}}]}`, &got, nil)
		g := openai.NewGenerator("k",
			openai.WithBaseURL(srv.URL),
			openai.WithModel("gpt-4o-mini"),
			openai.WithMaxTokens(256),
		)

		_, err := g.Generate(context.Background(), "p", "a", "b")

		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", got.Model)
		assert.Equal(t, 256, got.MaxTokens)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, http.StatusOK, `{"choices":[]}`, nil, nil)
		g := openai.NewGenerator("k", openai.WithBaseURL(srv.URL))

		_, err := g.Generate(context.Background(), "p", "a", "b")

		require.Error(t, err)
		assert.Equal(t, seosheet.EINTERNAL, seosheet.ErrorCode(err))
	})

	t.Run("maps status codes to error codes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			status int
			code   string
		}{
			{http.StatusUnauthorized, seosheet.EUNAUTHORIZED},
			{http.StatusForbidden, seosheet.EUNAUTHORIZED},
			{http.StatusTooManyRequests, seosheet.EUNAVAILABLE},
			{http.StatusBadGateway, seosheet.EUNAVAILABLE},
			{http.StatusNotFound, seosheet.ENOTFOUND},
			{http.StatusBadRequest, seosheet.EINVALID},
		}

		for _, tt := range tests {
			t.Run(http.StatusText(tt.status), func(t *testing.T) {
				t.Parallel()

				srv := newServer(t, tt.status, `{"error":{"message":"nope","type":"x"}}`, nil, nil)
				g := openai.NewGenerator("k", openai.WithBaseURL(srv.URL))

				_, err := g.Generate(context.Background(), "p", "a", "b")

				require.Error(t, err)
				assert.Equal(t, tt.code, seosheet.ErrorCode(err))
				assert.Contains(t, seosheet.ErrorMessage(err), "nope")
			})
		}
	})

	t.Run("unreachable server is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		g := openai.NewGenerator("k", openai.WithBaseURL(url))

		_, err := g.Generate(context.Background(), "p", "a", "b")

		require.Error(t, err)
		assert.Equal(t, seosheet.EUNAVAILABLE, seosheet.ErrorCode(err))
	})
}
