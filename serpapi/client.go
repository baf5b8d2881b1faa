// Package serpapi is a thin client for the serpapi.com search API,
// shared by the flight search and the web-search tool.
package serpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	_defaultBaseURL = "https://serpapi.com/search.json"
	_defaultTimeout = 30 * time.Second
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the default http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    _defaultBaseURL,
		httpClient: &http.Client{Timeout: _defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search issues a GET with the given engine parameters plus the api
// key and decodes the JSON response into resp.
func (c *Client) Search(ctx context.Context, params url.Values, resp interface{}) error {
	params = cloneValues(params)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build search request")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "search request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "read search response")
	}
	if res.StatusCode != http.StatusOK {
		return errors.Errorf("search returned status %d: %s", res.StatusCode, string(body))
	}
	if resp == nil {
		return nil
	}
	if err := json.Unmarshal(body, resp); err != nil {
		return errors.Wrap(err, "decode search response")
	}
	return nil
}

func cloneValues(params url.Values) url.Values {
	cloned := make(url.Values, len(params))
	for k, vs := range params {
		cloned[k] = append([]string(nil), vs...)
	}
	return cloned
}
