package openai

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/voyagerlab/tripplanner/llm"
)

type LLM struct {
	client *goopenai.Client
	model  string
}

var (
	_ llm.LLM = (*LLM)(nil)

	_defaultModel       = "gpt-4o"
	_defaultHTTPTimeout = 30 * time.Second
)

// newClient creates an instance of the internal client.
func newClient(opt *options) (*goopenai.Client, error) {
	if len(opt.token) == 0 {
		return nil, errors.New("missing the OpenAI API key, set it in the OPENAI_API_KEY environment variable")
	}

	config := goopenai.DefaultConfig(opt.token)
	if opt.apiType == goopenai.APITypeAzure {
		config = goopenai.DefaultAzureConfig(opt.token, opt.baseURL)
	}
	if opt.baseURL != "" {
		config.BaseURL = opt.baseURL
	}
	config.OrgID = opt.organization

	if opt.httpClient != nil {
		config.HTTPClient = opt.httpClient
	}
	if opt.apiVersion != "" {
		config.APIVersion = opt.apiVersion
	}

	return goopenai.NewClientWithConfig(config), nil
}

// New returns a new OpenAI-compatible LLM.
func New(opts ...Option) (*LLM, error) {
	option := &options{
		apiType:    goopenai.APITypeOpenAI,
		httpClient: &http.Client{Timeout: _defaultHTTPTimeout},
		model:      _defaultModel,
	}

	for _, opt := range opts {
		opt(option)
	}
	c, err := newClient(option)
	if err != nil {
		return nil, err
	}
	return &LLM{
		client: c,
		model:  option.model,
	}, nil
}

// GenerateContent implements the llm.LLM interface.
func (l *LLM) GenerateContent(ctx context.Context, messages []llm.Message, options ...llm.GenerateOption) (*llm.Generation, error) {
	opts := llm.DefaultGenerateOptions()
	for _, opt := range options {
		opt(opts)
	}

	msgs := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, mc := range messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{
			Role:    string(mc.Role),
			Name:    mc.Name,
			Content: mc.Content,
		})
	}
	req := goopenai.ChatCompletionRequest{
		Model:               l.model,
		Messages:            msgs,
		Stop:                opts.StopWords,
		Temperature:         opts.Temperature,
		TopP:                opts.TopP,
		MaxCompletionTokens: opts.MaxTokens,
	}
	if opts.JSONMode {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{Type: "json_object"}
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	return &llm.Generation{
		Content:    choice.Message.Content,
		Role:       choice.Message.Role,
		StopReason: string(choice.FinishReason),
		Usage: &llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Generate implements the llm.LLM interface.
func (l *LLM) Generate(ctx context.Context, prompt string, options ...llm.GenerateOption) (*llm.Generation, error) {
	return l.GenerateContent(ctx,
		[]llm.Message{llm.NewUserMessage("", prompt)}, options...)
}
