// Package notify delivers summaries to a Slack-compatible incoming webhook.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// deliverTimeout bounds a single webhook delivery.
const deliverTimeout = 20 * time.Second

// message is the webhook payload.
type message struct {
	Text string `json:"text"`
}

// Config holds notifier configuration.
type Config struct {
	// URL is the incoming-webhook endpoint. Empty means notifications are
	// not configured; Send becomes a silent no-op.
	URL string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Slack posts text messages to an incoming-webhook URL.
type Slack struct {
	url    string
	http   *resty.Client
	logger *slog.Logger
}

// NewSlack creates a webhook notifier.
func NewSlack(cfg Config) *Slack {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Slack{
		url:    cfg.URL,
		http:   resty.New().SetTimeout(deliverTimeout),
		logger: logger,
	}
}

// Send posts the text to the webhook. With no URL configured this is a
// silent no-op. A failed delivery is returned as an error and is fatal for
// the run; the summary has already been printed by then, so operators keep
// visibility either way.
func (s *Slack) Send(ctx context.Context, text string) error {
	if s.url == "" {
		s.logger.Debug("no webhook configured, skipping notification")
		return nil
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(message{Text: text}).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}

	s.logger.Debug("notification delivered", "bytes", len(text))
	return nil
}
