package seosheet

import "context"

// PageFetcher retrieves the visible text of a web page.
// Implementations render the page in a browser so JavaScript-built content
// is included.
type PageFetcher interface {
	// Fetch navigates to the URL, waits for the page to render and returns
	// its visible body text with navigation, header, footer and script
	// content removed. A page without body content returns an empty string
	// and a nil error.
	Fetch(ctx context.Context, url string) (text string, err error)
}

// HostLimiter paces requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, host string) error
}
