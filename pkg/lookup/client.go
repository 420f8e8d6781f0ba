// Package lookup implements depselect.Lookup against the storage endpoint
// that lists the boxes of a warehouse:
//
//	GET /storage/ajax/get-boxes/?warehouse_id=<id>
//	200 {"boxes": [{"id": ..., "label": "...", "disabled": false}, ...]}
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-depselect/pkg/depselect"
)

const (
	DefaultPath  = "/storage/ajax/get-boxes/"
	DefaultParam = "warehouse_id"
)

// ErrMalformedBody reports a 2xx response whose body is not the expected
// JSON document.
var ErrMalformedBody = errors.New("lookup: malformed response body")

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lookup: unexpected status %d from %s", e.Code, e.URL)
}

func (e *StatusError) StatusCode() int { return e.Code }

type response struct {
	Boxes *[]depselect.Box `json:"boxes"`
}

// Client fetches box lists over HTTP.
type Client struct {
	baseURL    string
	path       string
	param      string
	headers    http.Header
	httpClient *http.Client
}

var _ depselect.Lookup = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport. Defaults to http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithPath overrides the endpoint path.
func WithPath(path string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			c.path = trimmed
		}
	}
}

// WithParam overrides the query parameter that carries the source value.
func WithParam(name string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			c.param = trimmed
		}
	}
}

// WithHeader adds a request header, e.g. a session cookie or CSRF token.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if strings.TrimSpace(key) == "" {
			return
		}
		c.headers.Add(key, value)
	}
}

// New builds a client for the endpoint rooted at baseURL. An empty baseURL
// issues origin-relative requests, which is what a browser build wants.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		path:       DefaultPath,
		param:      DefaultParam,
		headers:    http.Header{},
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// URL returns the request URL for sourceValue, query-encoded.
func (c *Client) URL(sourceValue string) (string, error) {
	path := c.path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("lookup: parse url: %w", err)
	}
	q := reqURL.Query()
	q.Set(c.param, sourceValue)
	reqURL.RawQuery = q.Encode()
	return reqURL.String(), nil
}

// Lookup implements depselect.Lookup.
func (c *Client) Lookup(ctx context.Context, sourceValue string) ([]depselect.Box, error) {
	target, err := c.URL(sourceValue)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup: request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup: do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, URL: target}
	}

	var payload response
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedBody)
	}
	if payload.Boxes == nil {
		return nil, fmt.Errorf("%w: missing boxes", ErrMalformedBody)
	}
	return *payload.Boxes, nil
}
