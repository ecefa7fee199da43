// Package apiclient is the JSON HTTP client for the clinic backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	defaultTimeout = 15 * time.Second
	maxMessageLen  = 300
)

// Observer receives one call per backend request. status is the HTTP code, or
// "error" when no response arrived.
type Observer interface {
	ObserveBackend(operation, status string, elapsed time.Duration)
}

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	Token    string
	Observer Observer
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	observer   Observer
	logger     *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Client {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      opts.Token,
		observer:   opts.Observer,
		logger:     logger,
	}
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// AsAPIError unwraps err into an *APIError when there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) Get(ctx context.Context, operation, path string, out interface{}) error {
	return c.DoJSON(ctx, operation, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, operation, path string, body, out interface{}) error {
	return c.DoJSON(ctx, operation, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, operation, path string, body, out interface{}) error {
	return c.DoJSON(ctx, operation, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, operation, path string) error {
	return c.DoJSON(ctx, operation, http.MethodDelete, path, nil, nil)
}

func (c *Client) DoJSON(ctx context.Context, operation, method, path string, body, out interface{}) error {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "error", started)
		c.logger.Error("backend request failed",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()
	c.observe(operation, strconv.Itoa(resp.StatusCode), started)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody),
			Body:       truncate(string(respBody)),
		}
		c.logFailure(operation, method, path, apiErr)
		return apiErr
	}

	if len(bytes.TrimSpace(respBody)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) observe(operation, status string, started time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveBackend(operation, status, time.Since(started))
}

// logFailure keeps expected odontogram 404s out of the error log.
func (c *Client) logFailure(operation, method, path string, apiErr *APIError) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", apiErr.StatusCode),
		zap.String("body", apiErr.Body),
	}

	if apiErr.StatusCode == http.StatusNotFound && strings.Contains(path, "/odontogram") {
		c.logger.Debug("odontogram not found", fields...)
		return
	}
	c.logger.Error("backend non-2xx response", fields...)
}

func extractMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			switch {
			case payload.Message != "":
				return payload.Message
			case payload.Error != "":
				return payload.Error
			case payload.Detail != "":
				return payload.Detail
			}
		}
		return ""
	}

	if bytes.HasPrefix(trimmed, []byte("<")) {
		return ""
	}
	return truncate(string(trimmed))
}

// truncate caps s at maxMessageLen bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	cut := maxMessageLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
