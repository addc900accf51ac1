package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/config"
	"github.com/fwojciec/seosheet/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin feeds the parse command. Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database backing the run journal, when one is configured.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil fields are wired from config.
	Store     seosheet.SheetStore
	Fetcher   seosheet.PageFetcher
	Generator seosheet.ContentGenerator
	Runs      seosheet.RunService
	Tokens    seosheet.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run parses args and executes the selected command. A failure is printed to
// stderr once, here, and returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
	}
	return err
}

// errorText prefers the human-readable message of application errors.
func errorText(err error) string {
	var e *seosheet.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seosheet"),
		kong.Description("Regenerate SEO copy for every page listed in a spreadsheet."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seosheet --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	deps.Config = cfg
	deps.Logger = config.NewLogger(cfg.Log, stderr)

	defer m.Close()

	switch strings.Fields(kongCtx.Command())[0] {
	case "run":
		cli.Run.apply(cfg)
		if err := m.wireRun(ctx, deps); err != nil {
			return err
		}
	case "fetch":
		cli.Fetch.apply(cfg)
		if err := m.wireFetch(ctx, deps, cli.Fetch.Tokens); err != nil {
			return err
		}
	case "history":
		cli.History.apply(cfg)
		if err := m.wireJournal(deps, true); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}
