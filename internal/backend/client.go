// Package backend is the typed REST client for the commerce backend, which
// owns catalog, order, review and account data. Every authenticated call
// attaches the stored credential as a bearer header; the backend re-validates
// it on each request.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/config"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/observability"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/token"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// maxErrorBody caps how much of an upstream error body is read.
const maxErrorBody = 64 * 1024

// Client calls the commerce backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     token.Store
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewClient builds a backend client. metrics may be nil.
func NewClient(cfg config.BackendConfig, tokens token.Store, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		tokens:     tokens,
		logger:     logger,
		metrics:    metrics,
	}
}

// doJSON sends a JSON request and decodes a JSON response into out (when
// out is non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.attachBearer(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(method, metricPath(path), 0, time.Since(start))
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	c.metrics.RecordUpstream(method, metricPath(path), resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.upstreamError(method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

// metricPath drops the query string so filter variants share one counter.
func metricPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// attachBearer is a pure read of the token store; it never mutates session
// state, and a missing credential simply means no header.
func (c *Client) attachBearer(req *http.Request) {
	tok, err := c.tokens.Load()
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}

// upstreamError surfaces the backend's {message} when it supplies one.
// A 401 here does not touch the session: the credential stands until
// explicit expiry or logout.
func (c *Client) upstreamError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &payload)

	if c.logger != nil {
		c.logger.Warn("backend request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
	}
	return apperrors.NewUpstreamError(resp.StatusCode, payload.Message)
}
