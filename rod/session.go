package rod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Session is one isolated browser instance holding a single page.
// A Session is used for exactly one fetch and then closed.
type Session interface {
	// Navigate loads url in the session's page.
	Navigate(url string) error
	// WaitBody blocks until the document body element exists or timeout elapses.
	WaitBody(timeout time.Duration) error
	// HTML returns the serialized document.
	HTML() (string, error)
	// Close tears down the page, the browser and its process.
	Close() error
}

// LaunchFunc starts a new Session.
type LaunchFunc func(ctx context.Context) (Session, error)

// LaunchConfig configures the Chrome process started for each fetch.
type LaunchConfig struct {
	// Bin is the browser executable. Empty lets rod find or download one.
	Bin string
	// Stealth injects evasions for common headless-browser detection.
	Stealth bool
	// NoSandbox disables Chrome's sandbox (needed in most containers).
	NoSandbox bool
}

// Launcher returns a LaunchFunc that starts a fresh headless Chrome for
// every session.
func Launcher(cfg LaunchConfig) LaunchFunc {
	return func(ctx context.Context) (Session, error) {
		l := launcher.New().
			Context(ctx).
			Set("disable-gpu").
			Set("disable-dev-shm-usage").
			Set("disable-background-timer-throttling").
			Set("disable-renderer-backgrounding").
			NoSandbox(cfg.NoSandbox).
			Leakless(true).
			Headless(true)
		if cfg.Bin != "" {
			l = l.Bin(cfg.Bin)
		}

		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launching browser: %w", err)
		}

		browser := rod.New().ControlURL(u).Context(ctx)
		if err := browser.Connect(); err != nil {
			l.Kill()
			l.Cleanup()
			return nil, fmt.Errorf("connecting to browser: %w", err)
		}

		var page *rod.Page
		if cfg.Stealth {
			page, err = stealth.Page(browser)
		} else {
			page, err = browser.Page(proto.TargetCreateTarget{})
		}
		if err != nil {
			_ = browser.Close()
			l.Kill()
			l.Cleanup()
			return nil, fmt.Errorf("opening page: %w", err)
		}

		return &browserSession{
			launcher: l,
			browser:  browser,
			page:     page.Context(ctx),
		}, nil
	}
}

type browserSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

func (s *browserSession) Navigate(url string) error {
	return s.page.Navigate(url)
}

func (s *browserSession) WaitBody(timeout time.Duration) error {
	_, err := s.page.Timeout(timeout).Element("body")
	return err
}

func (s *browserSession) HTML() (string, error) {
	return s.page.HTML()
}

func (s *browserSession) Close() error {
	pageErr := s.page.Close()
	browserErr := s.browser.Close()
	s.launcher.Kill()
	s.launcher.Cleanup()
	return errors.Join(pageErr, browserErr)
}
