package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"jira_term/internal/logger"
)

// DefaultTimeout bounds every request. There are no retries: one call
// is exactly one network attempt.
const DefaultTimeout = 10 * time.Second

// apiClient carries everything both dialects share: the configuration
// snapshot, the versioned path prefix and the transport primitive.
type apiClient struct {
	cfg     Config
	apiBase string // "/rest/api/3" or "/rest/api/2"
	http    *http.Client
	timeout time.Duration
	log     *zap.Logger
}

func newAPIClient(cfg Config, apiBase string) apiClient {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return apiClient{
		cfg:     cfg,
		apiBase: apiBase,
		http:    &http.Client{},
		timeout: DefaultTimeout,
		log:     logger.GetLogger(),
	}
}

// do executes one authenticated request against a path relative to the
// versioned API root and decodes a 2xx JSON body into out. Non-2xx
// responses become an *APIError carrying the raw body text; an expired
// deadline becomes ErrTimeout; other transport failures pass through
// unclassified.
func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.cfg.BaseURL + c.apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Credentials are re-read from the snapshot on every call rather
	// than cached as a prebuilt header.
	req.SetBasicAuth(c.cfg.Username, c.cfg.Secret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("jira request", zap.String("method", method), zap.String("url", u))

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}

func (c *apiClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *apiClient) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *apiClient) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}
