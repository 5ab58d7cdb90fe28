package ai

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the extraction boundary client.
type Config struct {
	APIKey          string        // empty means the boundary is not configured
	BaseURL         string        // default https://api.openai.com/v1
	Model           string        // e.g. "gpt-4o-mini"
	Temperature     float32       // kept low for deterministic output
	MaxOutputTokens int           // bounded output budget
	Timeout         time.Duration // http client timeout
}

// Client calls a chat-completions endpoint with the report document attached
// inline and a schema-constrained prompt.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 8192
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Configured reports whether an extraction credential is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}
