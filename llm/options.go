package llm

type GenerateOptions struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
	StopWords   []string
	JSONMode    bool
}

type GenerateOption func(*GenerateOptions)

func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		Temperature: 0.7,
	}
}

func WithTemperature(temperature float32) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temperature
	}
}

func WithTopP(topP float32) GenerateOption {
	return func(o *GenerateOptions) {
		o.TopP = topP
	}
}

func WithMaxTokens(maxTokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = maxTokens
	}
}

func WithStopWords(stopWords []string) GenerateOption {
	return func(o *GenerateOptions) {
		o.StopWords = stopWords
	}
}

func WithJSONMode(jsonMode bool) GenerateOption {
	return func(o *GenerateOptions) {
		o.JSONMode = jsonMode
	}
}
