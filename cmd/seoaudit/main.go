// Command seoaudit analyzes blog articles for SEO issues and tracks the
// human approve/reject decision for each improvement suggestion.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seoaudit"
	"github.com/fwojciec/seoaudit/audit"
	"github.com/fwojciec/seoaudit/fs"
	"github.com/fwojciec/seoaudit/goquery"
	seohttp "github.com/fwojciec/seoaudit/http"
	seoslog "github.com/fwojciec/seoaudit/slog"
	"github.com/fwojciec/seoaudit/text"
	"github.com/fwojciec/seoaudit/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ResultsDir is where audit records are stored. Set before calling
	// Run() to override the default.
	ResultsDir string

	// Fetcher retrieves article HTML. Overridable for end-to-end tests.
	Fetcher seoaudit.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ResultsDir: defaultResultsDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seoaudit"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seoaudit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load config file, then apply flag overrides.
	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.BaseDomain != "" {
		cfg.BaseDomain = cli.BaseDomain
	}
	if cli.MinWords >= 0 {
		cfg.MinWords = cli.MinWords
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	resultsDir := m.ResultsDir
	if cli.ResultsDir != "" {
		resultsDir = cli.ResultsDir
	}

	var store seoaudit.ResultStore = fs.NewResultStore(resultsDir)
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = seohttp.NewFetcher()
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		store = seoslog.NewLoggingResultStore(store, logger)
		fetcher = seoslog.NewLoggingFetcher(fetcher, logger)
	}

	deps.Store = store
	deps.Loader = fs.NewLoader()
	deps.Runner = &audit.Runner{
		Normalizer:  goquery.NewNormalizer(),
		Tokenizer:   text.NewTokenizer(),
		Fetcher:     fetcher,
		Store:       store,
		Config:      cfg,
		Concurrency: cli.Concurrency,
	}

	return kongCtx.Run(deps)
}

func defaultResultsDir() string {
	if path := os.Getenv("SEOAUDIT_RESULTS"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "results"
	}
	return filepath.Join(home, ".seoaudit", "results")
}
