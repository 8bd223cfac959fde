//go:generate mockgen -source=client.go -destination=client_mock.go -package=client
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"trailview/internal/app/errors"
	"trailview/internal/app/logs"
	"trailview/internal/app/settings"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

// API paths on the trailer manager server
const (
	logsPath     = "/api/v1/logs/"
	settingsPath = "/api/v1/settings/"
	statsPath    = "/api/v1/settings/stats"

	apiKeyHeader = "X-API-KEY"
)

// Client fetches logs, settings and statistics from the server
type Client interface {
	logs.Source
	GetSettings(ctx context.Context) (settings.Settings, error)
	GetStats(ctx context.Context) (settings.ServerStats, error)
}

// httpClient implements the Client interface over the server's REST API
type httpClient struct {
	baseURL string
	apiKey  string
	limit   int
	http    *http.Client
	log     logger.Logger
}

// NewClient creates a new Client for the configured server
func NewClient(cfg *config.Config, log logger.Logger) Client {
	return &httpClient{
		baseURL: cfg.Server.URL,
		apiKey:  cfg.Server.APIKey,
		limit:   cfg.Logs.Limit,
		http: &http.Client{
			Timeout: cfg.Server.Timeout,
		},
		log: log.WithComponent("CLIENT"),
	}
}

// GetLogs fetches the current log list, newest first
func (c *httpClient) GetLogs(ctx context.Context) ([]logs.Record, error) {
	query := url.Values{"limit": []string{strconv.Itoa(c.limit)}}

	var records []logs.Record
	if err := c.get(ctx, logsPath, query, &records); err != nil {
		return nil, err
	}

	c.log.Debug().Int("count", len(records)).Msg("Fetched logs")

	return records, nil
}

// GetSettings fetches the server settings
func (c *httpClient) GetSettings(ctx context.Context) (settings.Settings, error) {
	var s settings.Settings
	if err := c.get(ctx, settingsPath, nil, &s); err != nil {
		return settings.Settings{}, err
	}

	return s, nil
}

// GetStats fetches the server statistics
func (c *httpClient) GetStats(ctx context.Context) (settings.ServerStats, error) {
	var s settings.ServerStats
	if err := c.get(ctx, statsPath, nil, &s); err != nil {
		return settings.ServerStats{}, err
	}

	return s, nil
}

// get performs a GET request and decodes the JSON response into out
func (c *httpClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s", errors.ErrUnexpectedStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidResponseBody, err)
	}

	return nil
}
