package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagerlab/tripplanner/llm"
	"github.com/voyagerlab/tripplanner/tool"
)

// fakeLLM records the messages it was called with and serves a
// scripted generation.
type fakeLLM struct {
	content  string
	err      error
	calls    int
	messages []llm.Message
}

func (f *fakeLLM) GenerateContent(_ context.Context, messages []llm.Message, _ ...llm.GenerateOption) (*llm.Generation, error) {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Generation{Content: f.content}, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (*llm.Generation, error) {
	return f.GenerateContent(ctx, []llm.Message{llm.NewUserMessage("", prompt)}, opts...)
}

type fakeTool struct {
	output string
	err    error
	input  string
}

func (f *fakeTool) Name() string        { return "FakeTool" }
func (f *fakeTool) Description() string { return "a fake tool" }
func (f *fakeTool) Call(_ context.Context, input string) (string, error) {
	f.input = input
	return f.output, f.err
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(WithLLM(&fakeLLM{}))
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = New(WithName("Researcher"))
	assert.ErrorIs(t, err, ErrMissingLLM)
}

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	model := &fakeLLM{content: "Delhi has excellent museums."}
	a, err := New(
		WithName("Researcher"),
		WithInstructions("Identify the travel destination specified by the user."),
		WithLLM(model),
	)
	require.NoError(t, err)

	result := a.Run(context.Background(), "Research Delhi.")
	assert.True(t, result.OK())
	assert.Equal(t, "Delhi has excellent museums.", result.Content)

	require.Len(t, model.messages, 2)
	assert.Equal(t, llm.RoleSystem, model.messages[0].Role)
	assert.Equal(t, llm.RoleUser, model.messages[1].Role)
	assert.Equal(t, "Research Delhi.", model.messages[1].Content)
}

func TestRunReevaluatesInstructionsPerRun(t *testing.T) {
	t.Parallel()

	model := &fakeLLM{content: "ok"}
	runs := 0
	a, err := New(
		WithName("Researcher"),
		WithLLM(model),
		WithInstructionsFunc(func() []string {
			runs++
			return []string{fmt.Sprintf("Current system time: run %d.", runs)}
		}),
	)
	require.NoError(t, err)

	a.Run(context.Background(), "first")
	assert.Equal(t, "Current system time: run 1.", model.messages[0].Content)

	a.Run(context.Background(), "second")
	assert.Equal(t, "Current system time: run 2.", model.messages[0].Content)
}

func TestRunFailureSubstitutesPlaceholder(t *testing.T) {
	t.Parallel()

	a, err := New(
		WithName("Researcher"),
		WithPlaceholder("No research results due to error."),
		WithLLM(&fakeLLM{err: errors.New("model unavailable")}),
	)
	require.NoError(t, err)

	result := a.Run(context.Background(), "Research Delhi.")
	assert.False(t, result.OK())
	assert.Equal(t, "No research results due to error.", result.Content)
	assert.Contains(t, result.Err.Error(), "Researcher agent run")
}

func TestRunEmptyContentIsFailure(t *testing.T) {
	t.Parallel()

	a, err := New(
		WithName("Planner"),
		WithLLM(&fakeLLM{content: ""}),
	)
	require.NoError(t, err)

	result := a.Run(context.Background(), "Plan a trip.")
	assert.False(t, result.OK())
	assert.Equal(t, _defaultPlaceholder, result.Content)
}

func TestRunWithReferenceInlinesToolOutput(t *testing.T) {
	t.Parallel()

	model := &fakeLLM{content: "ok"}
	ft := &fakeTool{output: "1. Top sights in Delhi"}
	a, err := New(
		WithName("Researcher"),
		WithLLM(model),
		WithTools([]tool.Tool{ft}),
	)
	require.NoError(t, err)

	result := a.RunWithReference(context.Background(), "Research Delhi.", "attractions in Delhi")
	assert.True(t, result.OK())
	assert.Equal(t, "attractions in Delhi", ft.input)

	prompt := model.messages[len(model.messages)-1].Content
	assert.Contains(t, prompt, "Research Delhi.")
	assert.Contains(t, prompt, "Reference information:")
	assert.Contains(t, prompt, "Top sights in Delhi")
}

func TestRunWithReferenceToolFailureStillGenerates(t *testing.T) {
	t.Parallel()

	model := &fakeLLM{content: "ok"}
	a, err := New(
		WithName("Researcher"),
		WithLLM(model),
		WithTools([]tool.Tool{&fakeTool{err: errors.New("search down")}}),
	)
	require.NoError(t, err)

	result := a.RunWithReference(context.Background(), "Research Delhi.", "attractions")
	assert.True(t, result.OK())

	prompt := model.messages[len(model.messages)-1].Content
	assert.NotContains(t, prompt, "Reference information:")
}
