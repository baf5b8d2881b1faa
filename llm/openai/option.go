package openai

import (
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
)

type options struct {
	token        string
	model        string
	baseURL      string
	organization string
	apiType      goopenai.APIType
	apiVersion   string
	httpClient   *http.Client
}

type Option func(*options)

// WithToken passes the OpenAI API token to the client.
func WithToken(token string) Option {
	return func(opts *options) {
		opts.token = token
	}
}

// WithModel passes the model name to the client.
func WithModel(model string) Option {
	return func(opts *options) {
		opts.model = model
	}
}

// WithBaseURL passes the OpenAI-compatible base url to the client.
func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.baseURL = baseURL
	}
}

// WithOrganization passes the OpenAI organization to the client.
func WithOrganization(organization string) Option {
	return func(opts *options) {
		opts.organization = organization
	}
}

// WithAPIType passes the api type to the client.
func WithAPIType(apiType goopenai.APIType) Option {
	return func(opts *options) {
		opts.apiType = apiType
	}
}

// WithAPIVersion passes the api version to the client, required for Azure.
func WithAPIVersion(apiVersion string) Option {
	return func(opts *options) {
		opts.apiVersion = apiVersion
	}
}

// WithHTTPClient replaces the default http client.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = client
	}
}
