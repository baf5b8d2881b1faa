package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagerlab/tripplanner/llm"
)

func TestNewRequiresToken(t *testing.T) {
	t.Parallel()

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing the OpenAI API key")
}

func newFakeAPI(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	ts := newFakeAPI(t, `{
		"choices":[{"message":{"role":"assistant","content":"Delhi is lovely in winter."},"finish_reason":"stop"}],
		"usage":{"prompt_tokens":12,"completion_tokens":7,"total_tokens":19}
	}`)

	client, err := New(
		WithToken("test-token"),
		WithModel("test-model"),
		WithBaseURL(ts.URL+"/v1"))
	require.NoError(t, err)

	gen, err := client.Generate(context.Background(), "Describe Delhi.")
	require.NoError(t, err)
	assert.Equal(t, "Delhi is lovely in winter.", gen.Content)
	assert.Equal(t, "stop", gen.StopReason)
	assert.Equal(t, 19, gen.Usage.TotalTokens)
}

func TestGenerateContentNoChoices(t *testing.T) {
	t.Parallel()

	ts := newFakeAPI(t, `{"choices":[]}`)

	client, err := New(
		WithToken("test-token"),
		WithBaseURL(ts.URL+"/v1"))
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(),
		[]llm.Message{llm.NewUserMessage("", "hello")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
