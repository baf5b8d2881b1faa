package llm

import "context"

// LLM is the interface every language-model driver implements.
type LLM interface {
	// GenerateContent runs a chat completion over messages.
	GenerateContent(ctx context.Context, messages []Message, options ...GenerateOption) (*Generation, error)
	// Generate is a convenience wrapper for a single user prompt.
	Generate(ctx context.Context, prompt string, options ...GenerateOption) (*Generation, error)
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Name    string
	Content string
}

func NewSystemMessage(name, content string) Message {
	return Message{Role: RoleSystem, Name: name, Content: content}
}

func NewUserMessage(name, content string) Message {
	return Message{Role: RoleUser, Name: name, Content: content}
}

func NewAssistantMessage(name, content string) Message {
	return Message{Role: RoleAssistant, Name: name, Content: content}
}

// Generation is the result of one model call.
type Generation struct {
	Content    string
	Role       string
	StopReason string
	Usage      *Usage
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
