package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Response status values. State legality is server-authoritative; the
// client does not enforce a state machine.
const (
	ResponseStatusQueued     = "queued"
	ResponseStatusInProgress = "in_progress"
	ResponseStatusCompleted  = "completed"
	ResponseStatusFailed     = "failed"
	ResponseStatusIncomplete = "incomplete"
	ResponseStatusCancelled  = "cancelled"
)

// ResponseInput is the input for a response: either simple text or an
// array of raw message objects.
type ResponseInput struct {
	Text     string
	Messages []json.RawMessage
}

// TextInput creates simple text input.
func TextInput(text string) ResponseInput {
	return ResponseInput{Text: text}
}

// MessagesInput creates message-array input.
func MessagesInput(messages ...json.RawMessage) ResponseInput {
	if messages == nil {
		messages = []json.RawMessage{}
	}
	return ResponseInput{Messages: messages}
}

// MarshalJSON encodes the populated variant: a bare string or an array.
func (in ResponseInput) MarshalJSON() ([]byte, error) {
	if in.Messages != nil {
		return json.Marshal(in.Messages)
	}
	return json.Marshal(in.Text)
}

// UnmarshalJSON peeks at the JSON shape to choose the variant.
func (in *ResponseInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty response input")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*in = ResponseInput{Text: s}
		return nil
	case '[':
		var messages []json.RawMessage
		if err := json.Unmarshal(trimmed, &messages); err != nil {
			return err
		}
		if messages == nil {
			messages = []json.RawMessage{}
		}
		*in = ResponseInput{Messages: messages}
		return nil
	}

	return fmt.Errorf("response input must be a string or an array")
}

// CreateResponseRequest creates a response. Fields the agent configures
// itself (such as Model) are accepted but may be ignored server-side.
type CreateResponseRequest struct {
	Model              string            `json:"model,omitempty"`
	Instructions       string            `json:"instructions,omitempty"`
	Input              *ResponseInput    `json:"input,omitempty"`
	MaxOutputTokens    *int              `json:"max_output_tokens,omitempty"`
	Temperature        *float64          `json:"temperature,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	Tools              json.RawMessage   `json:"tools,omitempty"`
	Stream             *bool             `json:"stream,omitempty"`
	StreamOptions      json.RawMessage   `json:"stream_options,omitempty"`
	Background         *bool             `json:"background,omitempty"`
	Text               json.RawMessage   `json:"text,omitempty"`
	ToolChoice         json.RawMessage   `json:"tool_choice,omitempty"`
	ParallelToolCalls  *bool             `json:"parallel_tool_calls,omitempty"`
	MaxToolCalls       *int              `json:"max_tool_calls,omitempty"`
	PreviousResponseID string            `json:"previous_response_id,omitempty"`
	Conversation       json.RawMessage   `json:"conversation,omitempty"`
	Include            []string          `json:"include,omitempty"`
	Store              *bool             `json:"store,omitempty"`
	TopP               *float64          `json:"top_p,omitempty"`
	TopLogprobs        *int              `json:"top_logprobs,omitempty"`
	Truncation         string            `json:"truncation,omitempty"`
	ServiceTier        string            `json:"service_tier,omitempty"`
	SafetyIdentifier   string            `json:"safety_identifier,omitempty"`
	PromptCacheKey     string            `json:"prompt_cache_key,omitempty"`
	Prompt             json.RawMessage   `json:"prompt,omitempty"`
	Reasoning          json.RawMessage   `json:"reasoning,omitempty"`

	// Deprecated: use SafetyIdentifier or PromptCacheKey.
	User string `json:"user,omitempty"`
}

// Response is a responses-API object. Fields not modeled explicitly are
// preserved verbatim in Extra, so an encode/decode round trip loses
// nothing the server sent.
type Response struct {
	ID        string
	Object    string
	CreatedAt int64
	Model     string
	Status    string
	Usage     *Usage

	// Extra holds unmodeled fields keyed by their wire name.
	Extra map[string]json.RawMessage
}

// responseFields are the wire names modeled as named fields.
var responseFields = []string{"id", "object", "created_at", "model", "status", "usage"}

// MarshalJSON merges the named fields over the extension bag.
func (r Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Extra)+len(responseFields))
	for k, v := range r.Extra {
		out[k] = v
	}

	set := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		out[key] = data
		return nil
	}

	if err := set("id", r.ID); err != nil {
		return nil, err
	}
	if err := set("object", r.Object); err != nil {
		return nil, err
	}
	if err := set("created_at", r.CreatedAt); err != nil {
		return nil, err
	}
	if err := set("model", r.Model); err != nil {
		return nil, err
	}
	if err := set("status", r.Status); err != nil {
		return nil, err
	}
	if r.Usage != nil {
		if err := set("usage", r.Usage); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON extracts the named fields and keeps everything else
// verbatim in Extra.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	take := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		return nil
	}

	*r = Response{}
	if err := take("id", &r.ID); err != nil {
		return err
	}
	if err := take("object", &r.Object); err != nil {
		return err
	}
	if err := take("created_at", &r.CreatedAt); err != nil {
		return err
	}
	if err := take("model", &r.Model); err != nil {
		return err
	}
	if err := take("status", &r.Status); err != nil {
		return err
	}
	if _, ok := raw["usage"]; ok {
		r.Usage = &Usage{}
		if err := take("usage", r.Usage); err != nil {
			return err
		}
	}

	for _, key := range responseFields {
		delete(raw, key)
	}
	if len(raw) > 0 {
		r.Extra = raw
	}

	return nil
}

// GetResponseQuery holds parameters for retrieving a response.
type GetResponseQuery struct {
	Include            []string
	IncludeObfuscation *bool
	StartingAfter      *int
	Stream             *bool
}

// Values encodes the query as URL parameters.
func (q GetResponseQuery) Values() url.Values {
	v := url.Values{}
	for _, inc := range q.Include {
		v.Add("include", inc)
	}
	if q.IncludeObfuscation != nil {
		v.Set("include_obfuscation", strconv.FormatBool(*q.IncludeObfuscation))
	}
	if q.StartingAfter != nil {
		v.Set("starting_after", strconv.Itoa(*q.StartingAfter))
	}
	if q.Stream != nil {
		v.Set("stream", strconv.FormatBool(*q.Stream))
	}
	return v
}
