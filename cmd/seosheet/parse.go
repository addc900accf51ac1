package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/seosheet"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	result := seosheet.ParseContent(string(data))
	fmt.Fprintf(deps.Stdout, "Meta Title: %s\n", result.MetaTitle)
	fmt.Fprintf(deps.Stdout, "Meta Description: %s\n", result.MetaDescription)
	fmt.Fprintf(deps.Stdout, "Body:\n%s\n", result.BodyContent)
	return nil
}
