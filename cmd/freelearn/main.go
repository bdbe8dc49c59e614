package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/freelearn"
	"github.com/fwojciec/freelearn/bluemonday"
	"github.com/fwojciec/freelearn/gemini"
	"github.com/fwojciec/freelearn/goquery"
	"github.com/fwojciec/freelearn/htmltomarkdown"
	flhttp "github.com/fwojciec/freelearn/http"
	"github.com/fwojciec/freelearn/openai"
	"github.com/fwojciec/freelearn/pipeline"
	"github.com/fwojciec/freelearn/rod"
	"github.com/fwojciec/freelearn/simulate"
	flslog "github.com/fwojciec/freelearn/slog"
	"github.com/fwojciec/freelearn/smtp"
	"github.com/fwojciec/freelearn/template"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
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
	// EnvFile is loaded into the environment before flags are parsed.
	// Variables already set take precedence. Empty disables loading.
	EnvFile string

	// RetryDelays overrides the fetch backoff. Nil uses the default.
	RetryDelays []time.Duration

	// Mailer replaces SMTP delivery for end-to-end testing.
	Mailer freelearn.Mailer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("freelearn"),
		kong.Description("Mail today's PacktPub Free Learning book with a short label summary"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAML),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cli.LogLevel()}))
	runID := uuid.NewString()

	fetcher, err := m.newFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	classifier, err := newClassifier(ctx, cli)
	if err != nil {
		return err
	}

	builder := &pipeline.Builder{
		Extractor:  goquery.NewExtractor(),
		Classifier: flslog.NewLoggingClassifier(classifier, logger),
		Renderer:   template.NewRenderer(),
		Converter:  htmltomarkdown.NewConverter(),
		Logger:     logger,
	}
	if cli.Sanitize {
		builder.Sanitizer = bluemonday.NewSanitizer()
	}

	runner := &pipeline.Runner{
		Fetcher:     flslog.NewLoggingFetcher(fetcher, logger),
		Locator:     goquery.NewLocator(),
		Builder:     builder,
		URL:         cli.URL,
		From:        cli.Username,
		To:          cli.To,
		DryRun:      cli.DryRun,
		RunID:       runID,
		RetryDelays: m.RetryDelays,
		Logger:      logger,
	}
	if !cli.DryRun {
		runner.Mailer = flslog.NewLoggingMailer(m.newMailer(cli), logger)
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if cli.DryRun {
		fmt.Fprintln(stdout, report.HTML)
	}
	return nil
}

func (m *Main) newFetcher(cli *CLI) (freelearn.Fetcher, error) {
	if cli.Render {
		return rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithWaitSelector(goquery.DefaultOuterSelector),
			rod.WithWaitTimeout(cli.Timeout/3),
		)
	}
	return flhttp.NewFetcher(flhttp.WithTimeout(cli.Timeout)), nil
}

func (m *Main) newMailer(cli *CLI) freelearn.Mailer {
	if m.Mailer != nil {
		return m.Mailer
	}
	return smtp.NewMailer(cli.Username, cli.Password,
		smtp.WithHost(cli.SMTPHost),
		smtp.WithPort(cli.SMTPPort),
	)
}

func newClassifier(ctx context.Context, cli *CLI) (freelearn.Classifier, error) {
	switch cli.Classifier {
	case ClassifierOpenAI:
		client := openai.NewClient(cli.OpenAIKey, cli.OpenAIBaseURL)
		return openai.NewClassifier(client, cli.OpenAIModel), nil
	case ClassifierGemini:
		client, err := gemini.NewClient(ctx, cli.GeminiKey, cli.GeminiBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewClassifier(client, cli.GeminiModel), nil
	case ClassifierSimulate:
		return simulate.Classifier{}, nil
	default:
		return simulate.Disabled{}, nil
	}
}

// loadEnv loads variables from path without overriding the environment.
// A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
