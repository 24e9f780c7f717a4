// Package gateway provides the HTTP facade over the remote analysis service.
// It owns the bearer token, request dispatch, uniform error extraction, and
// the busy tracker consumed by interactive frontends.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client is the API gateway over the remote document-analysis service.
// The bearer token is single-valued client-wide state: concurrent calls
// observe whichever token was current when their headers were built.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	busy    *BusyTracker

	mu    sync.RWMutex
	token string
}

// New creates a gateway client rooted at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("system", "gateway"),
		busy:    &BusyTracker{},
	}
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer token, or "" when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Busy exposes the reference-counted busy tracker. It reports activity
// across overlapping calls without the first completion hiding the rest.
func (c *Client) Busy() *BusyTracker {
	return c.busy
}

// request performs one HTTP exchange. contentType is empty for multipart
// bodies, where the writer supplies the boundary header itself. out receives
// the decoded JSON response when non-nil.
func (c *Client) request(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	c.busy.Begin()
	defer c.busy.End()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeAPIError(resp)
		c.logger.Debug("api error", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, path, err)
	}

	return nil
}

// requestJSON sends payload as a JSON body. A nil payload sends no body,
// keeping the JSON content-type header the service expects.
func (c *Client) requestJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	return c.request(ctx, method, path, body, "application/json", out)
}

// requestMultipart sends data as the named file in a multipart form body.
func (c *Client) requestMultipart(ctx context.Context, method, path, filename, contentType string, data []byte, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	return c.request(ctx, method, path, &buf, writer.FormDataContentType(), out)
}
