// Package rod renders pages in headless Chrome using go-rod.
package rod

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/seosheet"
)

const (
	// DefaultBodyTimeout bounds the wait for the body element to appear.
	DefaultBodyTimeout = 10 * time.Second

	// DefaultSettleDelay is the pause after the body appears so deferred
	// rendering can finish.
	DefaultSettleDelay = 2 * time.Second
)

// Ensure Fetcher implements seosheet.PageFetcher at compile time.
var _ seosheet.PageFetcher = (*Fetcher)(nil)

// Fetcher renders each URL in its own browser session and returns the
// visible body text. Sessions are never reused across fetches.
type Fetcher struct {
	extractor   seosheet.TextExtractor
	launch      LaunchFunc
	limiter     seosheet.HostLimiter
	logger      *slog.Logger
	bodyTimeout time.Duration
	settleDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBodyTimeout sets how long to wait for the body element.
func WithBodyTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.bodyTimeout = d
	}
}

// WithSettleDelay sets the pause between the body appearing and reading HTML.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithLaunchFunc replaces the function that starts browser sessions.
func WithLaunchFunc(fn LaunchFunc) Option {
	return func(f *Fetcher) {
		f.launch = fn
	}
}

// WithLimiter paces fetches per host.
func WithLimiter(l seosheet.HostLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithLogger sets the logger used for teardown and empty-page warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher that turns rendered HTML into text with
// extractor. Without WithLaunchFunc it starts a default headless Chrome.
func NewFetcher(extractor seosheet.TextExtractor, opts ...Option) *Fetcher {
	f := &Fetcher{
		extractor:   extractor,
		launch:      Launcher(LaunchConfig{}),
		bodyTimeout: DefaultBodyTimeout,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	return f
}

// Fetch launches a session, renders rawURL and returns its visible text.
// The session is torn down on every path, including errors.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", seosheet.Errorf(seosheet.EINVALID, "invalid URL %q", rawURL)
		}
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	sess, err := f.launch(ctx)
	if err != nil {
		return "", seosheet.Errorf(seosheet.EUNAVAILABLE, "browser unavailable: %v", err)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			f.logger.Warn("browser teardown failed", "url", rawURL, "err", cerr)
		}
	}()

	if err := sess.Navigate(rawURL); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", rawURL, err)
	}
	if err := sess.WaitBody(f.bodyTimeout); err != nil {
		return "", fmt.Errorf("waiting for body: %w", err)
	}
	if err := settle(ctx, f.settleDelay); err != nil {
		return "", err
	}

	html, err := sess.HTML()
	if err != nil {
		return "", fmt.Errorf("reading page HTML: %w", err)
	}

	text, err := f.extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	if text == "" {
		f.logger.Warn("no body content found", "url", rawURL)
	}
	return text, nil
}

func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
