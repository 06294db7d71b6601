// Package api is a thin typed wrapper over the HardenedIoT REST backend.
// Every call is independent: no retries, no caching, no deduplication of
// in-flight requests. Failures surface as *FetchError for non-2xx responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HeaderSource supplies the headers attached to every request. The session
// store implements it: JSON content type always, bearer authorization only
// while a credential is stored.
type HeaderSource interface {
	AuthHeaders() map[string]string
}

type plainHeaders struct{}

func (plainHeaders) AuthHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

type Client struct {
	baseURL string
	headers HeaderSource
	http    *http.Client
}

// NewClient builds a client for the given backend origin. A nil headers
// source sends unauthenticated JSON requests.
func NewClient(baseURL string, headers HeaderSource) *Client {
	if headers == nil {
		headers = plainHeaders{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchError is a non-2xx backend response for a given resource operation.
type FetchError struct {
	Resource string
	Op       string
	Status   int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to %s %s: HTTP %d", e.Op, e.Resource, e.Status)
}

// do issues one request and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any, resource, op string) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", op, resource, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, resource, err)
	}
	for k, v := range c.headers.AuthHeaders() {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &FetchError{Resource: resource, Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", op, resource, err)
	}
	return nil
}
