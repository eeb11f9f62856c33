package sheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production Smartsheet API endpoint.
const DefaultBaseURL = "https://api.smartsheet.com/2.0"

// fetchTimeout bounds a single sheet retrieval.
const fetchTimeout = 30 * time.Second

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("smartsheet API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("smartsheet API returned status %d: %s", e.StatusCode, e.Body)
}

// Config holds client configuration.
type Config struct {
	// Token is the Smartsheet API access token.
	Token string
	// BaseURL overrides the production endpoint (used in tests).
	BaseURL string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Client fetches sheets from the Smartsheet REST API.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a Smartsheet client. Requests carry the bearer token and
// are bounded by a 30s timeout; no retries are attempted.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(fetchTimeout)

	return &Client{http: httpClient, logger: logger}
}

// FetchSheet retrieves a sheet with its full column list and all rows.
// A transport failure or non-2xx response is returned as an error; an empty
// sheet is not.
func (c *Client) FetchSheet(ctx context.Context, sheetID string) (*Document, error) {
	var doc Document

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&doc).
		Get("/sheets/" + url.PathEscape(sheetID))
	if err != nil {
		return nil, fmt.Errorf("fetching sheet %s: %w", sheetID, err)
	}
	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
		}
	}

	c.logger.Debug("fetched sheet",
		"sheet_id", sheetID,
		"columns", len(doc.Columns),
		"rows", len(doc.Rows))

	return &doc, nil
}
