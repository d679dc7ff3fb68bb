package api

import "encoding/json"

// Role represents the sender of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
	RoleDeveloper Role = "developer"
)

// ChatMessage is a single message in a chat completion exchange.
type ChatMessage struct {
	Role    Role        `json:"role"`
	Content ChatContent `json:"content"`
}

// SystemMessage creates a system message with plain string content.
func SystemMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: TextContent(text)}
}

// UserMessage creates a user message with plain string content.
func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: TextContent(text)}
}

// AssistantMessage creates an assistant message with plain string content.
func AssistantMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: TextContent(text)}
}

// UserMultimodalMessage creates a user message with array content. Item
// ordering and count are not validated client-side; server limits apply.
func UserMultimodalMessage(items ...ContentItem) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: PartsContent(items...)}
}

// Usage holds token usage statistics. The server guarantees that
// TotalTokens equals PromptTokens plus CompletionTokens; the client
// trusts rather than recomputes it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FinishReason explains why the model stopped generating tokens.
type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonContentFilter FinishReason = "content_filter"
	FinishReasonToolCalls     FinishReason = "tool_calls"
)

// StreamOptions configures streaming responses.
type StreamOptions struct {
	IncludeUsage *bool `json:"include_usage,omitempty"`
}

// ChatCompletionRequest is the OpenAI-compatible chat completions request.
// The agent applies its own model configuration when Model is empty.
type ChatCompletionRequest struct {
	Model               string          `json:"model,omitempty"`
	Messages            []ChatMessage   `json:"messages"`
	MaxCompletionTokens *int            `json:"max_completion_tokens,omitempty"`
	Temperature         *float64        `json:"temperature,omitempty"`
	TopP                *float64        `json:"top_p,omitempty"`
	N                   *int            `json:"n,omitempty"`
	Stream              bool            `json:"stream,omitempty"`
	StreamOptions       *StreamOptions  `json:"stream_options,omitempty"`
	Stop                []string        `json:"stop,omitempty"`
	PresencePenalty     *float64        `json:"presence_penalty,omitempty"`
	FrequencyPenalty    *float64        `json:"frequency_penalty,omitempty"`
	ResponseFormat      json.RawMessage `json:"response_format,omitempty"`
	Tools               json.RawMessage `json:"tools,omitempty"`
	ToolChoice          json.RawMessage `json:"tool_choice,omitempty"`
	User                string          `json:"user,omitempty"`
}

// ChatCompletionChoice is one generated completion.
type ChatCompletionChoice struct {
	Index        int          `json:"index"`
	Message      ChatMessage  `json:"message"`
	FinishReason FinishReason `json:"finish_reason"`
}

// ChatCompletionResponse is the chat completions result.
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   Usage                  `json:"usage"`
}

// AgentCallRequest is the simple single-turn agent call.
type AgentCallRequest struct {
	Message         string   `json:"message,omitempty"`
	ParentMessageID string   `json:"parent_message_id,omitempty"`
	FileIDs         []string `json:"file_ids,omitempty"`
}

// AgentCallResponse is the agent's reply to a simple call.
type AgentCallResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// Model describes one model available to an agent.
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelsResponse lists the models available to an agent.
type ModelsResponse struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// TextCompletionRequest is the legacy text completions request.
//
// Deprecated: use ChatCompletionRequest with the chat completions
// endpoint. The legacy endpoint remains fully functional.
type TextCompletionRequest struct {
	Prompt           string   `json:"prompt"`
	Model            string   `json:"model,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	N                *int     `json:"n,omitempty"`
	Stream           bool     `json:"stream,omitempty"`
	Logprobs         *int     `json:"logprobs,omitempty"`
	Echo             bool     `json:"echo,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	BestOf           *int     `json:"best_of,omitempty"`
	User             string   `json:"user,omitempty"`
}

// TextCompletionLogprobs holds log probability details for a legacy
// completion choice.
type TextCompletionLogprobs struct {
	Tokens        []string        `json:"tokens"`
	TokenLogprobs []float64       `json:"token_logprobs"`
	TopLogprobs   json.RawMessage `json:"top_logprobs"`
	TextOffset    []int           `json:"text_offset"`
}

// TextCompletionChoice is one generated legacy completion.
type TextCompletionChoice struct {
	Text         string                  `json:"text"`
	Index        int                     `json:"index"`
	Logprobs     *TextCompletionLogprobs `json:"logprobs,omitempty"`
	FinishReason string                  `json:"finish_reason"`
}

// TextCompletionResponse is the legacy text completions result.
type TextCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []TextCompletionChoice `json:"choices"`
	Usage   Usage                  `json:"usage"`
}
