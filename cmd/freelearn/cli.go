package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
)

// Classifier names accepted by --classifier.
const (
	ClassifierOpenAI   = "openai"
	ClassifierGemini   = "gemini"
	ClassifierSimulate = "simulate"
	ClassifierNone     = "none"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `short:"c" help:"Load defaults from a YAML file"`

	URL     string        `default:"https://www.packtpub.com/free-learning" help:"Free Learning page URL"`
	Render  bool          `help:"Fetch with headless Chrome instead of plain HTTP"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout"`

	To       string `name:"to" env:"RECIPIENT_EMAIL" help:"Report recipient"`
	Username string `name:"gmail-username" env:"GMAIL_USERNAME" help:"SMTP username, also used as sender"`
	Password string `name:"gmail-app-password" env:"GMAIL_APP_PASSWORD" help:"SMTP password"`
	SMTPHost string `name:"smtp-host" default:"smtp.gmail.com" help:"SMTP server host"`
	SMTPPort int    `name:"smtp-port" default:"465" help:"SMTP server port (465 for implicit TLS, otherwise STARTTLS)"`

	Classifier    string `enum:"openai,gemini,simulate,none" default:"openai" help:"Label classifier (${enum})"`
	OpenAIKey     string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIModel   string `name:"openai-model" env:"OPENAI_MODEL" default:"gpt-4o-mini" help:"OpenAI chat model"`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`
	GeminiKey     string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiModel   string `name:"gemini-model" default:"gemini-2.5-flash" help:"Gemini model"`
	GeminiBaseURL string `name:"gemini-base-url" hidden:""`

	Sanitize bool `help:"Strip active content from the product snippet"`
	DryRun   bool `short:"n" help:"Write the report to stdout instead of sending it"`
	Verbose  bool `short:"v" help:"Enable debug logging"`
}

// Validate checks that the options needed by the selected classifier and
// by mail delivery are present.
func (c *CLI) Validate() error {
	switch c.Classifier {
	case ClassifierOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set. Set it or use --classifier=simulate")
		}
	case ClassifierGemini:
		if c.GeminiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
	}

	if c.DryRun {
		return nil
	}
	switch {
	case c.Username == "":
		return fmt.Errorf("GMAIL_USERNAME not set")
	case c.Password == "":
		return fmt.Errorf("GMAIL_APP_PASSWORD not set")
	case c.To == "":
		return fmt.Errorf("RECIPIENT_EMAIL not set")
	}
	return nil
}

// LogLevel returns the minimum level for the run logger.
func (c *CLI) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
