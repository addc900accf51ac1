package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *config.Config
	Logger    *slog.Logger
	Store     seosheet.SheetStore
	Fetcher   seosheet.PageFetcher
	Generator seosheet.ContentGenerator
	Runs      seosheet.RunService
	Tokens    seosheet.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" help:"json5 config file; a .local sibling is merged over it"`

	Run     RunCmd     `cmd:"" help:"Regenerate SEO copy for every row of the sheet"`
	Fetch   FetchCmd   `cmd:"" help:"Render one page and print its visible text"`
	Parse   ParseCmd   `cmd:"" help:"Split generated text from stdin into title, description and body"`
	History HistoryCmd `cmd:"" help:"Show journaled runs"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Sheet     string `help:"Google spreadsheet key (overrides SHEET_ID)"`
	Workbook  string `type:"path" help:"Local .xlsx workbook; selects the xlsx backend"`
	Generator string `help:"Generator provider (openai, gemini)"`
	Journal   string `type:"path" help:"SQLite run journal path"`
	Progress  bool   `help:"Print one line per row as it finishes"`
}

func (c *RunCmd) apply(cfg *config.Config) {
	if c.Sheet != "" {
		cfg.SheetID = c.Sheet
		cfg.Backend = config.BackendSheets
	}
	if c.Workbook != "" {
		cfg.WorkbookPath = c.Workbook
		cfg.Backend = config.BackendXLSX
	}
	if c.Generator != "" {
		cfg.Generator.Provider = c.Generator
	}
	if c.Journal != "" {
		cfg.JournalPath = c.Journal
	}
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Extractor string `help:"Text extractor (text, readability, trafilatura, markdown)"`
	Stealth   bool   `help:"Inject headless-detection evasions"`
	Tokens    bool   `help:"Also print the Gemini token count of the text"`
}

func (c *FetchCmd) apply(cfg *config.Config) {
	if c.Extractor != "" {
		cfg.Fetch.Extractor = c.Extractor
	}
	if c.Stealth {
		cfg.Fetch.Stealth = true
	}
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Journal string `type:"path" help:"SQLite run journal path"`
	Limit   int    `short:"n" default:"20" help:"Maximum runs to show (0 for all)"`
	RunID   string `name:"run" help:"Show the row outcomes of one run"`
}

func (c *HistoryCmd) apply(cfg *config.Config) {
	if c.Journal != "" {
		cfg.JournalPath = c.Journal
	}
}
