package twcai

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/timeweb-cloud/twcai-go/pkg/api"
)

// agentPath builds an agent-scoped API path.
func agentPath(agentAccessID, suffix string) string {
	return "/api/v1/cloud-ai/agents/" + url.PathEscape(agentAccessID) + suffix
}

// CallAgent sends a simple single-turn message to an agent.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/call
func (c *Client) CallAgent(ctx context.Context, agentAccessID string, req api.AgentCallRequest) (*api.AgentCallResponse, error) {
	var out api.AgentCallResponse
	if err := c.do(ctx, "call_agent", http.MethodPost, agentPath(agentAccessID, "/call"), true, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatCompletions performs an OpenAI-compatible chat completion.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/chat/completions
func (c *Client) ChatCompletions(ctx context.Context, agentAccessID string, req api.ChatCompletionRequest) (*api.ChatCompletionResponse, error) {
	var out api.ChatCompletionResponse
	if err := c.do(ctx, "chat_completions", http.MethodPost, agentPath(agentAccessID, "/v1/chat/completions"), true, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextCompletions performs a legacy text completion. It dispatches
// identically to the non-deprecated operations.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/completions
//
// Deprecated: use ChatCompletions.
func (c *Client) TextCompletions(ctx context.Context, agentAccessID string, req api.TextCompletionRequest) (*api.TextCompletionResponse, error) {
	var out api.TextCompletionResponse
	if err := c.do(ctx, "text_completions", http.MethodPost, agentPath(agentAccessID, "/v1/completions"), true, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListModels lists the models available to an agent.
//
// GET /api/v1/cloud-ai/agents/{agent_access_id}/v1/models
func (c *Client) ListModels(ctx context.Context, agentAccessID string) (*api.ModelsResponse, error) {
	var out api.ModelsResponse
	if err := c.do(ctx, "list_models", http.MethodGet, agentPath(agentAccessID, "/v1/models"), true, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmbedCodeOptions configures the widget embed-code request.
type EmbedCodeOptions struct {
	// Collapsed selects the initial widget state. Nil omits the parameter.
	Collapsed *bool
	// Referer and Origin identify the embedding page. The endpoint skips
	// bearer authentication and authorizes against these headers instead.
	Referer string
	Origin  string
}

// EmbedCode fetches the widget embed JavaScript as plain text.
//
// GET /api/v1/cloud-ai/agents/{agent_access_id}/embed.js
func (c *Client) EmbedCode(ctx context.Context, agentAccessID string, opts EmbedCodeOptions) (string, error) {
	query := url.Values{}
	if opts.Collapsed != nil {
		query.Set("collapsed", strconv.FormatBool(*opts.Collapsed))
	}

	headers := map[string]string{}
	if opts.Referer != "" {
		headers["Referer"] = opts.Referer
	}
	if opts.Origin != "" {
		headers["Origin"] = opts.Origin
	}

	return c.doText(ctx, "get_embed_code", http.MethodGet, agentPath(agentAccessID, "/embed.js"), headers, query)
}
