// Package client is a typed client for the Accadex REST API plus the local
// state a front end keeps between calls: the session file and the per-persona
// chat board.
package client

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
)

const DefaultBaseURL = "http://localhost:5001"

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

// WithHTTPClient replaces the default client (60s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken authenticates every request with a bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: time.Minute},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetToken changes the bearer token for later requests.
func (c *Client) SetToken(token string) { c.token = token }

// APIError is a non-2xx reply. Msg and Errors come from the {"msg","errors"}
// body when the server sent one.
type APIError struct {
	StatusCode int
	Msg        string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("accadex: status %d", e.StatusCode)
	}
	if len(e.Errors) > 0 {
		parts := make([]string, 0, len(e.Errors))
		for f, m := range e.Errors {
			parts = append(parts, f+" "+m)
		}
		return fmt.Sprintf("accadex: %s (%s)", e.Msg, strings.Join(parts, "; "))
	}
	return "accadex: " + e.Msg
}

// StatusCode returns the HTTP status of an *APIError, or 0.
func StatusCode(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var m struct {
			Msg    string            `json:"msg"`
			Errors map[string]string `json:"errors"`
		}
		if json.Unmarshal(raw, &m) == nil {
			apiErr.Msg, apiErr.Errors = m.Msg, m.Errors
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	return nil
}
