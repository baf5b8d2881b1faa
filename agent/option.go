package agent

import (
	"github.com/voyagerlab/tripplanner/llm"
	"github.com/voyagerlab/tripplanner/tool"
)

const _defaultPlaceholder = "No content generated due to error."

type Options struct {
	Name         string
	Desc         string
	Instructions func() []string
	Placeholder  string

	LLM   llm.LLM
	Tools []tool.Tool
}

type Option func(*Options)

func WithName(name string) Option {
	return func(opt *Options) {
		opt.Name = name
	}
}

func WithDesc(desc string) Option {
	return func(opt *Options) {
		opt.Desc = desc
	}
}

// WithInstructions sets the agent's fixed instruction set, one line
// per entry.
func WithInstructions(instructions ...string) Option {
	return func(opt *Options) {
		opt.Instructions = func() []string { return instructions }
	}
}

// WithInstructionsFunc sets an instruction set that is re-evaluated on
// every run, for lines that depend on the current time.
func WithInstructionsFunc(fn func() []string) Option {
	return func(opt *Options) {
		opt.Instructions = fn
	}
}

// WithPlaceholder sets the prose substituted when a run fails.
func WithPlaceholder(placeholder string) Option {
	return func(opt *Options) {
		opt.Placeholder = placeholder
	}
}

func WithLLM(l llm.LLM) Option {
	return func(opt *Options) {
		opt.LLM = l
	}
}

func WithTools(tools []tool.Tool) Option {
	return func(opt *Options) {
		opt.Tools = tools
	}
}
