package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.RunID != "" {
		return c.showRun(deps)
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'seosheet run --journal PATH' to record one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"Run", "Sheet", "Started", "Duration", "Summary"})
	for _, r := range runs {
		duration := "running"
		if !r.FinishedAt.IsZero() {
			duration = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		t.AppendRow(table.Row{r.ID, r.SheetID, r.StartedAt.Local().Format(time.DateTime), duration, r.Summary})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

func (c *HistoryCmd) showRun(deps *Dependencies) error {
	entries, err := deps.Runs.FindEntries(deps.Ctx, c.RunID)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"Row", "URL", "Status", "Title", "Reason"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.RowNumber, truncateURL(e.URL, maxURLWidth), string(e.Status), e.MetaTitle, e.Reason})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
