package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/config"
	"github.com/fwojciec/seosheet/gemini"
	"github.com/fwojciec/seosheet/goquery"
	"github.com/fwojciec/seosheet/htmltomarkdown"
	"github.com/fwojciec/seosheet/openai"
	"github.com/fwojciec/seosheet/ratelimit"
	"github.com/fwojciec/seosheet/readability"
	"github.com/fwojciec/seosheet/rod"
	"github.com/fwojciec/seosheet/sheets"
	seoslog "github.com/fwojciec/seosheet/slog"
	"github.com/fwojciec/seosheet/sqlite"
	"github.com/fwojciec/seosheet/trafilatura"
	"github.com/fwojciec/seosheet/xlsx"
	"google.golang.org/genai"
)

func (m *Main) wireRun(ctx context.Context, deps *Dependencies) error {
	cfg := deps.Config

	store := m.Store
	if store == nil {
		if err := cfg.ValidateBackend(); err != nil {
			return err
		}
		s, err := newStore(ctx, cfg)
		if err != nil {
			return err
		}
		store = s
	}

	generator := m.Generator
	if generator == nil {
		if err := cfg.Generator.Validate(); err != nil {
			return err
		}
		g, err := newGenerator(ctx, cfg.Generator)
		if err != nil {
			return err
		}
		generator = g
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		f, err := newFetcher(cfg.Fetch, deps.Logger)
		if err != nil {
			return err
		}
		fetcher = f
	}

	deps.Store = seoslog.NewLoggingSheetStore(store, deps.Logger)
	deps.Generator = seoslog.NewLoggingGenerator(generator, deps.Logger)
	deps.Fetcher = seoslog.NewLoggingPageFetcher(fetcher, deps.Logger)

	return m.wireJournal(deps, false)
}

func (m *Main) wireFetch(ctx context.Context, deps *Dependencies, tokens bool) error {
	fetcher := m.Fetcher
	if fetcher == nil {
		f, err := newFetcher(deps.Config.Fetch, deps.Logger)
		if err != nil {
			return err
		}
		fetcher = f
	}
	deps.Fetcher = seoslog.NewLoggingPageFetcher(fetcher, deps.Logger)

	if tokens {
		deps.Tokens = m.Tokens
		if deps.Tokens == nil {
			tc, err := gemini.NewTokenCounter("")
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.Tokens = tc
		}
	}
	return nil
}

// wireJournal opens the run journal when one is configured. required makes
// a missing journal path an error.
func (m *Main) wireJournal(deps *Dependencies, required bool) error {
	if m.Runs != nil {
		deps.Runs = m.Runs
		return nil
	}
	path := deps.Config.JournalPath
	if path == "" {
		if required {
			return seosheet.Errorf(seosheet.EINVALID, "journal path required (--journal or SEOSHEET_JOURNAL)")
		}
		return nil
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open journal at %q: %w", path, err)
	}
	deps.Runs = sqlite.NewRunService(m.DB)
	return nil
}

func newStore(ctx context.Context, cfg *config.Config) (seosheet.SheetStore, error) {
	switch cfg.Backend {
	case config.BackendXLSX:
		return xlsx.NewStore(), nil
	default:
		return sheets.NewStore(ctx, cfg.GoogleCredentialsJSON)
	}
}

func newGenerator(ctx context.Context, cfg config.GeneratorConfig) (seosheet.ContentGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, seosheet.Errorf(seosheet.EUNAUTHORIZED, "failed to connect to Gemini API: %v", err)
		}
		return gemini.NewGenerator(client, cfg.Model, cfg.MaxTokens), nil
	default:
		opts := []openai.Option{
			openai.WithMaxTokens(cfg.MaxTokens),
			openai.WithBaseURL(cfg.BaseURL),
		}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		return openai.NewGenerator(cfg.OpenAIAPIKey, opts...), nil
	}
}

func newFetcher(cfg config.FetchConfig, logger *slog.Logger) (*rod.Fetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []rod.Option{
		rod.WithBodyTimeout(cfg.BodyTimeout.Std()),
		rod.WithSettleDelay(cfg.SettleDelay.Std()),
		rod.WithLogger(logger),
		rod.WithLaunchFunc(rod.Launcher(rod.LaunchConfig{
			Bin:       cfg.BrowserBin,
			Stealth:   cfg.Stealth,
			NoSandbox: cfg.NoSandbox,
		})),
	}
	if cfg.HostRPS > 0 {
		opts = append(opts, rod.WithLimiter(ratelimit.NewHostLimiter(cfg.HostRPS)))
	}
	return rod.NewFetcher(newExtractor(cfg.Extractor), opts...), nil
}

func newExtractor(name string) seosheet.TextExtractor {
	switch name {
	case seosheet.ExtractorReadability:
		return readability.NewExtractor()
	case seosheet.ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	case seosheet.ExtractorMarkdown:
		return htmltomarkdown.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}
