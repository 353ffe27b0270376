// Package rest carries the HTTP plumbing shared by the downstream resource
// clients: request execution, JSON decoding, ETag handling, and translation
// of remote status codes into the order domain's typed error set.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

const defaultTimeout = 5 * time.Second

// Client issues JSON requests against one downstream service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client rooted at baseURL with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("downstream base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// GetJSON fetches path and decodes the response body into out. It returns
// the response ETag, when the service provides one, for later conditional
// writes.
func (c *Client) GetJSON(ctx context.Context, path string, out any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

// PutJSON sends body to path. A non-empty ifMatch makes the write
// conditional on the resource version; a lost condition surfaces as
// ports.ErrVersionConflict.
func (c *Client) PutJSON(ctx context.Context, path string, body any, ifMatch string, out any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if ifMatch != "" {
		req.Header.Set("If-Match", ifMatch)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return "", statusError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return "", fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
		}
	}
	return resp.Header.Get("ETag"), nil
}

// remoteError mirrors the error body shape the downstream services emit.
type remoteError struct {
	Message string `json:"message"`
}

// statusError folds a remote failure into the typed error set. A 404 means
// the resource is absent; a 412 means a conditional write lost; everything
// else is conservatively a rejected request.
func statusError(resp *http.Response) error {
	msg := remoteMessage(resp)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ports.ErrResourceNotFound, msg)
	case http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %s", ports.ErrVersionConflict, msg)
	default:
		return fmt.Errorf("%w: %s", ports.ErrResourceRejected, msg)
	}
}

func remoteMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var remote remoteError
		if json.Unmarshal(body, &remote) == nil && strings.TrimSpace(remote.Message) != "" {
			return remote.Message
		}
	}
	return resp.Status
}
