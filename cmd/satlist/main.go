package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/satlist/satlist"
	"github.com/satlist/satlist/flysat"
	satlistgoquery "github.com/satlist/satlist/goquery"
	satlisthttp "github.com/satlist/satlist/http"
	"github.com/satlist/satlist/lyngsat"
	"github.com/satlist/satlist/scan"
	satlistslog "github.com/satlist/satlist/slog"
	satlisttoml "github.com/satlist/satlist/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used by all commands. Replaced in end-to-end tests.
	Fetcher satlist.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
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
		kong.Name("satlist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'satlist --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := satlisttoml.Load(configPath(cli.Config))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	deps.Config = cfg

	level := parseLevel(cfg.Logging.Level)
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Fetcher == nil {
		opts := []satlisthttp.Option{
			satlisthttp.WithTimeout(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second),
		}
		if cfg.HTTP.UserAgent != "" {
			opts = append(opts, satlisthttp.WithUserAgent(cfg.HTTP.UserAgent))
		}
		m.Fetcher = satlistslog.NewLoggingFetcher(satlisthttp.NewFetcher(opts...), deps.Logger)
	}
	deps.Fetcher = m.Fetcher
	deps.Detector = satlistgoquery.NewDetector()

	deps.NewScanner = func(src satlist.Source, concurrency int) *scan.Scanner {
		if concurrency <= 0 {
			concurrency = cfg.Scan.Concurrency
		}
		return &scan.Scanner{
			Source:      src,
			Fetcher:     deps.Fetcher,
			Extractor:   extractorFor(src),
			Separator:   cfg.Scan.Separator,
			Concurrency: concurrency,
			Logger:      deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

// extractorFor selects the provider implementation at construction
// time; provider quirks never branch through shared code paths.
func extractorFor(src satlist.Source) satlist.TableExtractor {
	if src == satlist.LyngSat {
		return lyngsat.New()
	}
	return flysat.New()
}

func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	if path := os.Getenv("SATLIST_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "satlist.toml"
	}
	return filepath.Join(home, ".satlist", "satlist.toml")
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
