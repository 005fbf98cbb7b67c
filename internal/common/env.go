package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dtnitsch/chat-word-frequency/models"
	"github.com/dtnitsch/chat-word-frequency/pkg/analytics"
	"github.com/dtnitsch/chat-word-frequency/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Env bundles what every command needs: configuration, logging, file access
// and the tokenizer. Out receives the user-facing messages.
type Env struct {
	Config    models.Config
	Logger    *slog.Logger
	Storage   *storage.Storage
	Analytics *analytics.Analytics
	Out       io.Writer
}

// NewEnv loads the config file named by --config and applies the
// --input, --threshold and --top overrides of the running command.
func NewEnv(c *cli.Context) (*Env, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Int("threshold")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}

	return BuildEnv(cfg, NewLogger(os.Stderr, c.Bool("quiet"), c.Bool("verbose")), out), nil
}

// BuildEnv assembles an Env from an already validated config.
func BuildEnv(cfg models.Config, logger *slog.Logger, out io.Writer) *Env {
	return &Env{
		Config:    cfg,
		Logger:    logger,
		Storage:   &storage.Storage{},
		Analytics: &analytics.Analytics{},
		Out:       out,
	}
}

// StringFlag returns the flag value when it was given, otherwise fallback.
func StringFlag(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}

// LoadCorpus reads and decodes the chat corpus.
func (e *Env) LoadCorpus(path string) (*models.Corpus, error) {
	data, err := e.Storage.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", path, err)
	}
	corpus, err := models.ParseCorpus(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", path, err)
	}
	e.Logger.Debug("Corpus loaded", "path", path, "categories", len(corpus.Categories), "chats", len(corpus.Chats))
	return corpus, nil
}

// WriteReport saves a report, overwriting any previous content.
func (e *Env) WriteReport(path string, data []byte) error {
	if err := e.Storage.SaveFile(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	attrs := []any{"path", path, "sha256", ContentHash(data)}
	if stats, err := e.Storage.GetFileStats(path); err == nil {
		attrs = append(attrs, "size_bytes", stats.SizeBytes)
	}
	e.Logger.Info("Report written", attrs...)
	return nil
}
