// Package apiclient is a small JSON client for the black hole API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"blackhole/internal/blackhole"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	headers    http.Header
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New creates a client for the API rooted at baseURL. Requests are sent
// once; there are no retries and no timeout beyond the caller's context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "blackhole-apiclient/1",
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Get issues GET {baseURL}{path} and decodes a JSON response into out.
// A successful non-JSON response leaves out untouched.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON ("{}" when nil) and decodes a JSON response
// into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	if body == nil {
		body = struct{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	for key, values := range c.headers {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(text),
		}
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

type HealthResponse struct {
	Status string `json:"status"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

// Ping calls GET /ping and returns the raw JSON object.
func (c *Client) Ping(ctx context.Context) (map[string]any, error) {
	var res map[string]any
	if err := c.Get(ctx, "/ping", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var res HealthResponse
	err := c.Get(ctx, "/health", &res)
	return res, err
}

func (c *Client) Version(ctx context.Context) (VersionResponse, error) {
	var res VersionResponse
	err := c.Get(ctx, "/version", &res)
	return res, err
}

// ListBlackHoles calls GET /api/v1/blackholes. Zero limit or offset are
// left to the server defaults.
func (c *Client) ListBlackHoles(ctx context.Context, limit, offset int) ([]blackhole.BlackHole, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/api/v1/blackholes"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res []blackhole.BlackHole
	if err := c.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetBlackHole(ctx context.Context, id int64) (blackhole.BlackHole, error) {
	var res blackhole.BlackHole
	err := c.Get(ctx, "/api/v1/blackholes/"+strconv.FormatInt(id, 10), &res)
	return res, err
}

func (c *Client) CreateBlackHole(ctx context.Context, in blackhole.CreateInput) (blackhole.BlackHole, error) {
	var res blackhole.BlackHole
	err := c.Post(ctx, "/api/v1/blackholes", in, &res)
	return res, err
}
