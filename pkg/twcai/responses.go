package twcai

import (
	"context"
	"net/http"
	"net/url"

	"github.com/timeweb-cloud/twcai-go/pkg/api"
)

func responsePath(agentAccessID, responseID, suffix string) string {
	return agentPath(agentAccessID, "/v1/responses/"+url.PathEscape(responseID)+suffix)
}

// CreateResponse creates a response.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/responses
func (c *Client) CreateResponse(ctx context.Context, agentAccessID string, req api.CreateResponseRequest) (*api.Response, error) {
	var out api.Response
	if err := c.do(ctx, "create_response", http.MethodPost, agentPath(agentAccessID, "/v1/responses"), true, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResponse retrieves a response.
//
// GET /api/v1/cloud-ai/agents/{agent_access_id}/v1/responses/{response_id}
func (c *Client) GetResponse(ctx context.Context, agentAccessID, responseID string, query *api.GetResponseQuery) (*api.Response, error) {
	var values url.Values
	if query != nil {
		values = query.Values()
	}

	var out api.Response
	if err := c.do(ctx, "get_response", http.MethodGet, responsePath(agentAccessID, responseID, ""), true, values, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteResponse deletes a response. The server answers 204 with no
// body on success.
//
// DELETE /api/v1/cloud-ai/agents/{agent_access_id}/v1/responses/{response_id}
func (c *Client) DeleteResponse(ctx context.Context, agentAccessID, responseID string) error {
	return c.do(ctx, "delete_response", http.MethodDelete, responsePath(agentAccessID, responseID, ""), true, nil, nil, nil)
}

// CancelResponse cancels a response. Valid only while the response is
// not in a terminal state; state legality is server-authoritative.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/responses/{response_id}/cancel
func (c *Client) CancelResponse(ctx context.Context, agentAccessID, responseID string) (*api.Response, error) {
	var out api.Response
	if err := c.do(ctx, "cancel_response", http.MethodPost, responsePath(agentAccessID, responseID, "/cancel"), true, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
