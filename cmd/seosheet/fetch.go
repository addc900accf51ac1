package main

import (
	"fmt"

	"github.com/fwojciec/seosheet"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	text, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		if seosheet.ErrorCode(err) == seosheet.EUNAVAILABLE {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		}
		return err
	}
	if text == "" {
		fmt.Fprintln(deps.Stderr, "No body content found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, text)

	if deps.Tokens != nil {
		n, err := deps.Tokens.CountTokens(deps.Ctx, text)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "%s, %s\n", formatBytes(len(text)), formatTokens(n))
	}
	return nil
}
