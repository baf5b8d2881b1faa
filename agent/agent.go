package agent

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/voyagerlab/tripplanner/llm"
	"github.com/voyagerlab/tripplanner/tool"
)

// Common errors
var (
	ErrMissingName = errors.New("agent name is required")
	ErrMissingLLM  = errors.New("agent llm is required")
)

// Agent is a scripted text-generation capability: a fixed identity and
// instruction set applied to one per-request prompt. It never fails
// outward; a broken run yields a Failed result with placeholder prose.
type Agent struct {
	name         string
	desc         string
	instructions func() []string
	placeholder  string

	llm   llm.LLM
	tools []tool.Tool
}

func New(opts ...Option) (*Agent, error) {
	options := &Options{
		Placeholder: _defaultPlaceholder,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.Name == "" {
		return nil, ErrMissingName
	}
	if options.LLM == nil {
		return nil, ErrMissingLLM
	}

	return &Agent{
		name:         options.Name,
		desc:         options.Desc,
		instructions: options.Instructions,
		placeholder:  options.Placeholder,
		llm:          options.LLM,
		tools:        options.Tools,
	}, nil
}

func (a *Agent) Name() string {
	return a.name
}

// Run generates prose for the prompt under the agent's instructions.
func (a *Agent) Run(ctx context.Context, prompt string, opts ...llm.GenerateOption) Result {
	return a.run(ctx, prompt, "", opts...)
}

// RunWithReference first calls each of the agent's tools once with
// toolInput and appends their output to the prompt as reference
// information, then generates. Tool failures only lose the reference
// block; the generation still happens.
func (a *Agent) RunWithReference(ctx context.Context, prompt, toolInput string, opts ...llm.GenerateOption) Result {
	return a.run(ctx, prompt, toolInput, opts...)
}

func (a *Agent) run(ctx context.Context, prompt, toolInput string, opts ...llm.GenerateOption) Result {
	if reference := a.gatherReference(ctx, toolInput); reference != "" {
		prompt += "\n\nReference information:\n" + reference
	}

	messages := make([]llm.Message, 0, 2)
	if a.instructions != nil {
		if lines := a.instructions(); len(lines) > 0 {
			messages = append(messages,
				llm.NewSystemMessage("", strings.Join(lines, "\n")))
		}
	}
	messages = append(messages, llm.NewUserMessage("", prompt))

	gen, err := a.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return Failed(a.placeholder, errors.Wrapf(err, "%s agent run", a.name))
	}
	if gen.Content == "" {
		return Failed(a.placeholder, errors.Errorf("%s agent returned empty content", a.name))
	}
	return Success(gen.Content)
}

func (a *Agent) gatherReference(ctx context.Context, toolInput string) string {
	if toolInput == "" || len(a.tools) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range a.tools {
		out, err := t.Call(ctx, toolInput)
		if err != nil || out == "" {
			continue
		}
		b.WriteString(out)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
