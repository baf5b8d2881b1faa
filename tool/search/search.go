package search

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/voyagerlab/tripplanner/serpapi"
	"github.com/voyagerlab/tripplanner/tool"
)

const (
	_defaultTopK = 6

	_maxRetries = 3
	_baseDelay  = 1 * time.Second
)

// Tool searches the web through SerpAPI's Google engine and formats
// the organic results for inclusion in an agent prompt.
type Tool struct {
	TopK   int
	client *serpapi.Client
}

var _ tool.Tool = (*Tool)(nil)

type Result struct {
	Title   string `mapstructure:"title"`
	Link    string `mapstructure:"link"`
	Snippet string `mapstructure:"snippet"`
}

func New(client *serpapi.Client, opts ...Option) (*Tool, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.TopK <= 0 {
		options.TopK = _defaultTopK
	}
	if client == nil {
		return nil, errors.New("search: nil serpapi client")
	}
	return &Tool{
		TopK:   options.TopK,
		client: client,
	}, nil
}

func (t *Tool) Name() string {
	return "GoogleSearch"
}

func (t *Tool) Description() string {
	return `A wrapper around Google Search.
Useful for looking up current information about a destination.
Input is the plain-text query to search for.`
}

// Call runs the search with exponential backoff. Search is advisory
// reference material, so after the final attempt it degrades to a
// fixed notice instead of failing the caller.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	query := strings.TrimSpace(input)
	if query == "" {
		return "query is required", nil
	}

	var ret string
	var searchErr error
	for i := 0; i < _maxRetries; i++ {
		ret, searchErr = t.search(ctx, query)
		if searchErr == nil {
			return ret, nil
		}
		if i < _maxRetries-1 {
			delay := _baseDelay * time.Duration(math.Pow(2, float64(i)))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "No search results available.", nil
}

func (t *Tool) search(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)

	var raw map[string]interface{}
	if err := t.client.Search(ctx, params, &raw); err != nil {
		return "", err
	}

	var results []Result
	if organic, ok := raw["organic_results"]; ok {
		if err := mapstructure.Decode(organic, &results); err != nil {
			return "", errors.Wrap(err, "decode organic results")
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q.", query), nil
	}
	if len(results) > t.TopK {
		results = results[:t.TopK]
	}

	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n%s\n%s\n\n", i+1, r.Title, r.Link, r.Snippet)
	}
	return strings.TrimSpace(b.String()), nil
}
