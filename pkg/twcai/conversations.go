package twcai

import (
	"context"
	"net/http"
	"net/url"

	"github.com/timeweb-cloud/twcai-go/pkg/api"
)

func conversationPath(agentAccessID, conversationID, suffix string) string {
	return agentPath(agentAccessID, "/v1/conversations/"+url.PathEscape(conversationID)+suffix)
}

// CreateConversation creates a conversation, optionally seeded with
// initial items. The response is the conversation object only; seeded
// items are not echoed back.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations
func (c *Client) CreateConversation(ctx context.Context, agentAccessID string, req api.CreateConversationRequest) (*api.Conversation, error) {
	var out api.Conversation
	if err := c.do(ctx, "create_conversation", http.MethodPost, agentPath(agentAccessID, "/v1/conversations"), true, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConversation retrieves a conversation.
//
// GET /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}
func (c *Client) GetConversation(ctx context.Context, agentAccessID, conversationID string) (*api.Conversation, error) {
	var out api.Conversation
	if err := c.do(ctx, "get_conversation", http.MethodGet, conversationPath(agentAccessID, conversationID, ""), true, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConversation replaces a conversation's metadata. Metadata
// replacement is the only mutation a conversation supports.
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}
func (c *Client) UpdateConversation(ctx context.Context, agentAccessID, conversationID string, req api.UpdateConversationRequest) (*api.Conversation, error) {
	var out api.Conversation
	if err := c.do(ctx, "update_conversation", http.MethodPost, conversationPath(agentAccessID, conversationID, ""), true, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation deletes a conversation and returns the deletion
// confirmation. Whether double-deletion errors is server-defined.
//
// DELETE /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}
func (c *Client) DeleteConversation(ctx context.Context, agentAccessID, conversationID string) (*api.ConversationDeleted, error) {
	var out api.ConversationDeleted
	if err := c.do(ctx, "delete_conversation", http.MethodDelete, conversationPath(agentAccessID, conversationID, ""), true, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListItems lists items in a conversation. Pagination is caller-driven:
// when the returned HasMore is true, re-invoke with query.After set to
// the returned LastID.
//
// GET /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}/items
func (c *Client) ListItems(ctx context.Context, agentAccessID, conversationID string, query *api.ListItemsQuery) (*api.ItemList, error) {
	var values url.Values
	if query != nil {
		values = query.Values()
	}

	var out api.ItemList
	if err := c.do(ctx, "list_items", http.MethodGet, conversationPath(agentAccessID, conversationID, "/items"), true, values, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateItems adds items to a conversation (up to 20 per call,
// server-enforced).
//
// POST /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}/items
func (c *Client) CreateItems(ctx context.Context, agentAccessID, conversationID string, req api.CreateItemsRequest, query *api.CreateItemsQuery) (*api.ItemList, error) {
	var values url.Values
	if query != nil {
		values = query.Values()
	}

	var out api.ItemList
	if err := c.do(ctx, "create_items", http.MethodPost, conversationPath(agentAccessID, conversationID, "/items"), true, values, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetItem retrieves a single conversation item.
//
// GET /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}/items/{item_id}
func (c *Client) GetItem(ctx context.Context, agentAccessID, conversationID, itemID string, query *api.GetItemQuery) (*api.ConversationItem, error) {
	var values url.Values
	if query != nil {
		values = query.Values()
	}

	var out api.ConversationItem
	if err := c.do(ctx, "get_item", http.MethodGet, conversationPath(agentAccessID, conversationID, "/items/"+url.PathEscape(itemID)), true, values, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem deletes a conversation item and returns the parent
// conversation.
//
// DELETE /api/v1/cloud-ai/agents/{agent_access_id}/v1/conversations/{conversation_id}/items/{item_id}
func (c *Client) DeleteItem(ctx context.Context, agentAccessID, conversationID, itemID string) (*api.Conversation, error) {
	var out api.Conversation
	if err := c.do(ctx, "delete_item", http.MethodDelete, conversationPath(agentAccessID, conversationID, "/items/"+url.PathEscape(itemID)), true, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
