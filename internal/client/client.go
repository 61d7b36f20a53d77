// Package client is a typed HTTP client for the inventory API. It is what
// cmd/stockctl and the console UI talk to.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"inventory/internal/dto"
)

// Error is a non-2xx answer from the API.
type Error struct {
	Status int
	Detail string
	Fields map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Detail, e.Status)
	}
	parts := make([]string, 0, len(e.Fields))
	for f, tag := range e.Fields {
		parts = append(parts, f+": "+tag)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Detail, strings.Join(parts, ", "), e.Status)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsOutOfStock reports whether err is the API's out-of-stock rejection.
func IsOutOfStock(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		apiErr.Status == http.StatusBadRequest &&
		strings.Contains(apiErr.Detail, "out of stock")
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API at baseURL. timeout bounds every call
// in addition to whatever deadline the caller's context carries.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// send performs the request and turns a non-2xx status into *Error. The
// caller owns the body of a successful response.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: marshal body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: create request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &Error{Status: resp.StatusCode}
	var envelope struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Detail != "" {
		apiErr.Detail = envelope.Detail
		apiErr.Fields = envelope.Fields
	} else {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}
	return nil, apiErr
}

func (c *Client) write(ctx context.Context, method, path string, body interface{}) (string, error) {
	var msg dto.MessageResponse
	if err := c.do(ctx, method, path, body, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func idPath(base string, id int64) string { return fmt.Sprintf("%s/%d", base, id) }
