// Package postgrest stores projects and tracking rows in a hosted table API
// speaking the PostgREST dialect (/rest/v1/<table>?col=eq.value).
package postgrest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coinwave/coinwave/internal/repository"
	"github.com/imroc/req/v3"
)

const restPrefix = "/rest/v1/"

// Config configures the table API client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client issues table queries against the remote store. It does not retry.
type Client struct {
	http   *req.Client
	logger *slog.Logger
}

// apiError is the error body returned by the table API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *apiError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewClient builds a client from cfg. logger may be nil.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: store url is required", repository.ErrInvalidInput)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := req.C().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetCommonHeader("Accept", "application/json").
		SetUserAgent("coinwave")
	if cfg.APIKey != "" {
		c.SetCommonHeader("apikey", cfg.APIKey).SetCommonBearerAuthToken(cfg.APIKey)
	}

	return &Client{http: c, logger: logger}, nil
}

func (c *Client) request(ctx context.Context) *req.Request {
	return c.http.R().SetContext(ctx)
}

// check maps a completed response to a repository error.
func (c *Client) check(resp *req.Response, err error, table string) error {
	if err != nil {
		if c.logger != nil {
			c.logger.Error("table api request failed", "table", table, "error", err)
		}
		return fmt.Errorf("%w: %s: %v", repository.ErrUnavailable, table, err)
	}
	if !resp.IsErrorState() {
		return nil
	}

	var apiErr *apiError
	if e, ok := resp.ErrorResult().(*apiError); ok && e != nil && e.Message != "" {
		apiErr = e
	} else {
		apiErr = &apiError{Message: strings.TrimSpace(resp.String())}
	}
	if c.logger != nil {
		c.logger.Warn("table api error", "table", table, "status", resp.StatusCode, "code", apiErr.Code, "message", apiErr.Message)
	}

	switch {
	case resp.StatusCode == http.StatusConflict && apiErr.Code == "23503":
		return errors.Join(repository.ErrForeignKeyViolation, apiErr)
	case resp.StatusCode == http.StatusConflict || apiErr.Code == "23505":
		return errors.Join(repository.ErrConflict, apiErr)
	case resp.StatusCode == http.StatusNotFound:
		return errors.Join(repository.ErrNotFound, apiErr)
	case resp.StatusCode == http.StatusBadRequest:
		return errors.Join(repository.ErrInvalidInput, apiErr)
	default:
		return fmt.Errorf("%w: %s returned %d: %v", repository.ErrUnavailable, table, resp.StatusCode, apiErr)
	}
}

func eq(v string) string {
	return "eq." + v
}
