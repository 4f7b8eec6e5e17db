package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
	"github.com/fwojciec/catalog/goquery"
	cataloghttp "github.com/fwojciec/catalog/http"
	catalogslog "github.com/fwojciec/catalog/slog"
	"github.com/fwojciec/catalog/yaml"
	"github.com/google/uuid"
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
	// Profiles holds the built-in profiles and any loaded with
	// --profile-file.
	Profiles *goquery.Registry

	// Services for end-to-end testing.
	Source  catalog.Source
	Fetcher catalog.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Profiles: goquery.NewDefaultRegistry(),
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
		kong.Name("catalog"),
		kong.Description("Browse manga listing sites from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'catalog --help' to see available commands")
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

	logger := newLogger(stderr, cli.Debug)
	deps.Logger = logger
	deps.JSON = cli.JSON

	if cli.ProfileFile != "" {
		p, err := yaml.LoadProfile(cli.ProfileFile, m.Profiles)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
			return err
		}
		if err := m.Profiles.Register(*p); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
			return err
		}
		cli.Profile = p.Name
	}
	deps.Profiles = catalogslog.NewLoggingRegistry(m.Profiles, logger)
	deps.ProfileName = cli.Profile

	switch name := commandName(kongCtx.Command()); {
	case needsSource(name):
		if m.Source != nil {
			deps.Source = m.Source
			break
		}
		profile, err := deps.Profiles.Get(cli.Profile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
			fmt.Fprintln(stderr, "Hint: Run 'catalog profiles' to see available profiles")
			return err
		}

		fetcher := newFetcher(cli, profile.BaseURL, logger)
		defer fetcher.Close()

		src := crawl.NewSource(*profile, fetcher, goquery.NewExtractor(profile.Selectors))
		deps.Source = catalogslog.NewLoggingSource(src, logger)

	case name == "detect":
		deps.Detector = goquery.NewDetector()
		if m.Fetcher != nil {
			deps.Fetcher = m.Fetcher
			break
		}
		fetcher := newFetcher(cli, "", logger)
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the transport stack: a rate-limited HTTP fetcher, logged
// per attempt, retried on transient failures.
func newFetcher(cli *CLI, referer string, logger *slog.Logger) catalog.Fetcher {
	opts := []cataloghttp.Option{
		cataloghttp.WithTimeout(cli.Timeout),
		cataloghttp.WithLimiter(crawl.NewIntervalLimiter(cli.Rate)),
	}
	if referer != "" {
		opts = append(opts, cataloghttp.WithReferer(referer))
	}
	if cli.UserAgent != "" {
		opts = append(opts, cataloghttp.WithUserAgent(cli.UserAgent))
	}
	if cli.Cloudflare {
		opts = append(opts, cataloghttp.WithCloudflareBypass())
	}

	var fetcher catalog.Fetcher = cataloghttp.NewFetcher(opts...)
	fetcher = catalogslog.NewLoggingFetcher(fetcher, logger)
	return crawl.NewRetryFetcher(fetcher, func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	})
}

// newLogger returns a text logger tagged with a fresh run id. Only warnings
// are shown unless debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

// commandName returns the top-level command of a kong command path such as
// "profile dump <name>".
func commandName(command string) string {
	name, _, _ := strings.Cut(command, " ")
	return name
}

// needsSource reports whether the command browses the selected profile's site.
func needsSource(name string) bool {
	switch name {
	case "popular", "latest", "search", "detail", "chapters", "pages", "image", "walk":
		return true
	}
	return false
}
