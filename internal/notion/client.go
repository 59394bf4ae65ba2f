// Package notion is a minimal client for the Notion database query API.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/edgard/studybot/internal/config"
)

// maxErrorBody caps how much of an error response is kept for logging.
const maxErrorBody = 4096

// APIError is returned when the API answers with a non-success status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api returned status %d: %s", e.StatusCode, e.Body)
}

// Client queries Notion databases with a static integration token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	version    string
	logger     *slog.Logger
}

// NewClient creates a client from the Notion section of the configuration.
// The token is not checked here; an invalid token surfaces as an APIError.
func NewClient(cfg config.NotionConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		version:    cfg.Version,
		logger:     logger.With("component", "notion_client"),
	}
}

// QueryDatabase runs a single query request and returns one page of results.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q Query) (*QueryResponse, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion query request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Notion query finished",
		"database_id", databaseID,
		"status_code", resp.StatusCode,
		"duration", time.Since(startTime))

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return &out, nil
}

// QueryAll runs the query and follows pagination cursors until every
// matching page has been collected.
func (c *Client) QueryAll(ctx context.Context, databaseID string, q Query) ([]Page, error) {
	var pages []Page
	for {
		resp, err := c.QueryDatabase(ctx, databaseID, q)
		if err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		c.logger.DebugContext(ctx, "Following query cursor", "database_id", databaseID, "fetched", len(pages))
		q.StartCursor = resp.NextCursor
	}
}
