package search

// Options represents the configuration options for the search tool.
type Options struct {
	// TopK is how many organic results are kept.
	TopK int
}

// Option is a function that configures Options.
type Option func(*Options)

// WithTopK sets the number of results to keep.
func WithTopK(topK int) Option {
	return func(o *Options) {
		o.TopK = topK
	}
}
