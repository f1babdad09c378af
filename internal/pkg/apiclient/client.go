// internal/pkg/apiclient/client.go
package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/your-org/storefront/internal/pkg/format"
)

// Client fetches JSON documents from the store API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetJSON performs a GET against the given logical path and decodes the JSON
// response body into out. The path is normalized before use; a path that is
// itself an absolute URL is requested as-is, bypassing the base URL.
//
// Failures are classified: *APIError for non-2xx statuses, *ParseError for an
// undecodable body, *NetworkError for transport failures. A single attempt is
// made per call; retry policy belongs to the caller.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	requestURL := format.NormalizePath(path)
	if u, err := url.Parse(requestURL); err != nil || u.Scheme == "" || u.Host == "" {
		requestURL = c.baseURL + requestURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(res.StatusCode)
		}
		return &APIError{Status: res.StatusCode, Message: message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{Err: err}
	}

	return nil
}
