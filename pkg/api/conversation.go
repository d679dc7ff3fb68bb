package api

import (
	"net/url"
	"strconv"
)

// Content types on the conversation items wire contract. Items use the
// narrower {type, text} content shape, not the multimodal ContentItem.
const (
	ItemContentInputText  = "input_text"
	ItemContentOutputText = "output_text"
)

// Item type and status values for conversation items.
const (
	ItemTypeMessage     = "message"
	ItemStatusCompleted = "completed"
)

// Sort orders for list queries. Ascending is the server default.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ItemContent is one content part of a conversation item.
type ItemContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ConversationItem is a persisted message within a conversation. Items
// are immutable once created; the only mutation is deletion.
type ConversationItem struct {
	Type    string        `json:"type"`
	ID      string        `json:"id"`
	Status  string        `json:"status"`
	Role    string        `json:"role"`
	Content []ItemContent `json:"content"`
}

// ItemParam describes an item to create, used both for initial
// conversation items and for the create-items call.
type ItemParam struct {
	Type    string        `json:"type"`
	Role    string        `json:"role"`
	Content []ItemContent `json:"content"`
}

// TextItemParam builds a message item with a single input_text part.
func TextItemParam(role Role, text string) ItemParam {
	return ItemParam{
		Type:    ItemTypeMessage,
		Role:    string(role),
		Content: []ItemContent{{Type: ItemContentInputText, Text: text}},
	}
}

// Conversation is a persisted conversation. Metadata is an opaque
// key-value map; the protocol caps it at 16 entries server-side, which
// the client does not enforce.
type Conversation struct {
	ID        string            `json:"id"`
	Object    string            `json:"object"`
	CreatedAt int64             `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ConversationDeleted confirms a conversation deletion.
type ConversationDeleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// CreateConversationRequest creates a conversation, optionally seeding
// initial context items (up to 20, server-enforced).
type CreateConversationRequest struct {
	Items    []ItemParam       `json:"items,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// UpdateConversationRequest replaces a conversation's metadata.
type UpdateConversationRequest struct {
	Metadata map[string]string `json:"metadata"`
}

// CreateItemsRequest adds items to an existing conversation.
type CreateItemsRequest struct {
	Items []ItemParam `json:"items"`
}

// ItemList is a page of conversation items. HasMore signals the caller
// should re-invoke the listing with After set to LastID.
type ItemList struct {
	Object  string             `json:"object"`
	Data    []ConversationItem `json:"data"`
	FirstID string             `json:"first_id"`
	LastID  string             `json:"last_id"`
	HasMore bool               `json:"has_more"`
}

// ListItemsQuery holds pagination parameters for listing items.
type ListItemsQuery struct {
	After   string   // item ID to list items after
	Include []string // additional output data to include
	Limit   int      // 1-100, server default 20
	Order   string   // OrderAsc or OrderDesc
}

// Values encodes the query as URL parameters. Zero-valued fields are
// omitted; an empty query yields an empty Values.
func (q ListItemsQuery) Values() url.Values {
	v := url.Values{}
	if q.After != "" {
		v.Set("after", q.After)
	}
	for _, inc := range q.Include {
		v.Add("include", inc)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	return v
}

// GetItemQuery holds parameters for retrieving a single item.
type GetItemQuery struct {
	Include []string
}

// Values encodes the query as URL parameters.
func (q GetItemQuery) Values() url.Values {
	v := url.Values{}
	for _, inc := range q.Include {
		v.Add("include", inc)
	}
	return v
}

// CreateItemsQuery holds parameters for the create-items call.
type CreateItemsQuery struct {
	Include []string
}

// Values encodes the query as URL parameters.
func (q CreateItemsQuery) Values() url.Values {
	v := url.Values{}
	for _, inc := range q.Include {
		v.Add("include", inc)
	}
	return v
}
