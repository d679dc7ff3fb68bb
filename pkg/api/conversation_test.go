package api

import (
	"encoding/json"
	"testing"
)

func TestTextItemParam(t *testing.T) {
	item := TextItemParam(RoleUser, "What's the weather like?")
	want := ItemParam{
		Type: ItemTypeMessage,
		Role: "user",
		Content: []ItemContent{
			{Type: ItemContentInputText, Text: "What's the weather like?"},
		},
	}
	assertDeepEqual(t, item, want)

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	wantJSON := `{"type":"message","role":"user","content":[{"type":"input_text","text":"What's the weather like?"}]}`
	if string(data) != wantJSON {
		t.Errorf("item = %s, want %s", data, wantJSON)
	}
}

func TestListItemsQueryValues(t *testing.T) {
	tests := []struct {
		name  string
		query ListItemsQuery
		want  string
	}{
		{"empty", ListItemsQuery{}, ""},
		{"limit only", ListItemsQuery{Limit: 10}, "limit=10"},
		{"zero limit omitted", ListItemsQuery{Order: OrderDesc}, "order=desc"},
		{
			"all fields",
			ListItemsQuery{After: "msg_1", Limit: 50, Order: OrderAsc},
			"after=msg_1&limit=50&order=asc",
		},
		{
			"repeated include",
			ListItemsQuery{Include: []string{"a", "b"}},
			"include=a&include=b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Values().Encode(); got != tt.want {
				t.Errorf("Values().Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryEncodingDeterministic(t *testing.T) {
	q := ListItemsQuery{After: "msg_9", Limit: 20, Order: OrderAsc, Include: []string{"x"}}
	first := q.Values().Encode()
	for i := 0; i < 10; i++ {
		if got := q.Values().Encode(); got != first {
			t.Fatalf("encode run %d = %q, want %q", i, got, first)
		}
	}
}

func TestGetItemQueryValues(t *testing.T) {
	if got := (GetItemQuery{}).Values().Encode(); got != "" {
		t.Errorf("empty query = %q, want empty", got)
	}
	got := GetItemQuery{Include: []string{"a", "b"}}.Values().Encode()
	if got != "include=a&include=b" {
		t.Errorf("include query = %q", got)
	}
}

func TestConversationRoundTrip(t *testing.T) {
	conv := Conversation{
		ID:        "conv_abc123",
		Object:    "conversation",
		CreatedAt: 1700000000,
		Metadata:  map[string]string{"topic": "demo"},
	}
	assertDeepEqual(t, roundTrip(t, conv), conv)
}

func TestItemListDecode(t *testing.T) {
	payload := `{
		"object": "list",
		"data": [
			{
				"type": "message",
				"id": "msg_1",
				"status": "completed",
				"role": "user",
				"content": [{"type": "input_text", "text": "hello"}]
			},
			{
				"type": "message",
				"id": "msg_2",
				"status": "completed",
				"role": "assistant",
				"content": [{"type": "output_text", "text": "hi there"}]
			}
		],
		"first_id": "msg_1",
		"last_id": "msg_2",
		"has_more": false
	}`

	var list ItemList
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if list.Object != "list" {
		t.Errorf("object = %q", list.Object)
	}
	if len(list.Data) != 2 {
		t.Fatalf("data = %d items, want 2", len(list.Data))
	}
	if list.Data[1].Content[0].Type != ItemContentOutputText {
		t.Errorf("second item content type = %q", list.Data[1].Content[0].Type)
	}
	if list.FirstID != "msg_1" || list.LastID != "msg_2" || list.HasMore {
		t.Errorf("cursor fields = %q %q %v", list.FirstID, list.LastID, list.HasMore)
	}
}

func TestConversationDeletedDecode(t *testing.T) {
	var deleted ConversationDeleted
	err := json.Unmarshal([]byte(`{"id":"conv_1","object":"conversation.deleted","deleted":true}`), &deleted)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !deleted.Deleted || deleted.ID != "conv_1" {
		t.Errorf("deleted = %+v", deleted)
	}
}
