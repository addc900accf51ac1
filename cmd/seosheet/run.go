package main

import (
	"fmt"

	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/pipeline"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	key := cfg.SheetKey()

	sheet, err := deps.Store.OpenSheet(deps.Ctx, key)
	if err != nil {
		return err
	}
	defer sheet.Close()

	opts := []pipeline.Option{
		pipeline.WithInstruction(cfg.Instruction),
		pipeline.WithSentinelMarker(cfg.SentinelMarker),
		pipeline.WithLogger(deps.Logger),
	}
	if deps.Runs != nil {
		opts = append(opts, pipeline.WithJournal(deps.Runs))
	}
	if c.Progress {
		opts = append(opts, pipeline.WithProgress(func(o seosheet.Outcome) {
			fmt.Fprintf(deps.Stdout, "row %d  %-13s  %s\n", o.Row.Number, o.Status, o.Row.URL)
		}))
	}

	report, err := pipeline.New(deps.Fetcher, deps.Generator, opts...).Run(deps.Ctx, key, sheet)
	if report != nil {
		fmt.Fprintln(deps.Stdout, report.Summary())
		if report.RunID != "" {
			fmt.Fprintf(deps.Stdout, "run %s\n", report.RunID)
		}
	}
	if err != nil {
		return err
	}
	if report.SentinelErr != nil {
		return seosheet.Errorf(seosheet.EUNAVAILABLE, "sentinel cell not updated: %v", report.SentinelErr)
	}
	return nil
}
