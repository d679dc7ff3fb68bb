package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Content type discriminants for multimodal message content.
const (
	ContentTypeText       = "text"
	ContentTypeImageURL   = "image_url"
	ContentTypeInputAudio = "input_audio"
	ContentTypeFile       = "file"
	ContentTypeRefusal    = "refusal"
)

// Image detail levels.
const (
	ImageDetailLow  = "low"
	ImageDetailHigh = "high"
	ImageDetailAuto = "auto"
)

// AudioFormat identifies the encoding of input audio data.
type AudioFormat string

const (
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatM4A  AudioFormat = "m4a"
	AudioFormatOGG  AudioFormat = "ogg"
	AudioFormatFLAC AudioFormat = "flac"
	AudioFormatWebM AudioFormat = "webm"
)

// ImageURL points at an image to include in a message.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// InputAudio carries base64-encoded audio data and its format.
type InputAudio struct {
	Data   string      `json:"data"`
	Format AudioFormat `json:"format"`
}

// ContentItem is one element of multimodal message content. Type selects
// the variant; exactly the payload field matching Type is populated.
type ContentItem struct {
	Type       string
	Text       string
	ImageURL   *ImageURL
	InputAudio *InputAudio
	File       json.RawMessage
	Refusal    string
}

// TextItem creates a text content item.
func TextItem(text string) ContentItem {
	return ContentItem{Type: ContentTypeText, Text: text}
}

// ImageItem creates an image content item. Detail may be empty.
func ImageItem(url, detail string) ContentItem {
	return ContentItem{Type: ContentTypeImageURL, ImageURL: &ImageURL{URL: url, Detail: detail}}
}

// AudioItem creates an input audio content item from base64 data.
func AudioItem(data string, format AudioFormat) ContentItem {
	return ContentItem{Type: ContentTypeInputAudio, InputAudio: &InputAudio{Data: data, Format: format}}
}

// FileItem creates a file content item from an opaque file reference.
func FileItem(file json.RawMessage) ContentItem {
	return ContentItem{Type: ContentTypeFile, File: file}
}

// RefusalItem creates a refusal content item.
func RefusalItem(message string) ContentItem {
	return ContentItem{Type: ContentTypeRefusal, Refusal: message}
}

// contentItemWire is the flat wire shape shared by all variants. Pointer
// fields distinguish "absent" from zero values so decoding can reject a
// payload that lacks its discriminant's required field.
type contentItemWire struct {
	Type       string          `json:"type"`
	Text       *string         `json:"text,omitempty"`
	ImageURL   *ImageURL       `json:"image_url,omitempty"`
	InputAudio *InputAudio     `json:"input_audio,omitempty"`
	File       json.RawMessage `json:"file,omitempty"`
	Refusal    *string         `json:"refusal,omitempty"`
}

// MarshalJSON serializes the item to the wire format. The discriminant is
// always emitted; an unknown Type is an error.
func (ci ContentItem) MarshalJSON() ([]byte, error) {
	w := contentItemWire{Type: ci.Type}

	switch ci.Type {
	case ContentTypeText:
		w.Text = &ci.Text
	case ContentTypeImageURL:
		if ci.ImageURL == nil {
			return nil, fmt.Errorf("image_url content item has no image_url payload")
		}
		w.ImageURL = ci.ImageURL
	case ContentTypeInputAudio:
		if ci.InputAudio == nil {
			return nil, fmt.Errorf("input_audio content item has no input_audio payload")
		}
		w.InputAudio = ci.InputAudio
	case ContentTypeFile:
		if len(ci.File) == 0 {
			return nil, fmt.Errorf("file content item has no file payload")
		}
		w.File = ci.File
	case ContentTypeRefusal:
		w.Refusal = &ci.Refusal
	default:
		return nil, fmt.Errorf("unknown content item type %q", ci.Type)
	}

	return json.Marshal(w)
}

// UnmarshalJSON deserializes a content item, dispatching on the "type"
// discriminant. Unknown discriminants and variants missing their required
// payload field are rejected.
func (ci *ContentItem) UnmarshalJSON(data []byte) error {
	var w contentItemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Type {
	case ContentTypeText:
		if w.Text == nil {
			return fmt.Errorf("text content item missing \"text\" field")
		}
		*ci = ContentItem{Type: w.Type, Text: *w.Text}
	case ContentTypeImageURL:
		if w.ImageURL == nil {
			return fmt.Errorf("image_url content item missing \"image_url\" field")
		}
		*ci = ContentItem{Type: w.Type, ImageURL: w.ImageURL}
	case ContentTypeInputAudio:
		if w.InputAudio == nil {
			return fmt.Errorf("input_audio content item missing \"input_audio\" field")
		}
		*ci = ContentItem{Type: w.Type, InputAudio: w.InputAudio}
	case ContentTypeFile:
		if len(w.File) == 0 {
			return fmt.Errorf("file content item missing \"file\" field")
		}
		*ci = ContentItem{Type: w.Type, File: w.File}
	case ContentTypeRefusal:
		if w.Refusal == nil {
			return fmt.Errorf("refusal content item missing \"refusal\" field")
		}
		*ci = ContentItem{Type: w.Type, Refusal: *w.Refusal}
	case "":
		return fmt.Errorf("content item missing \"type\" discriminant")
	default:
		return fmt.Errorf("unknown content item type %q", w.Type)
	}

	return nil
}

// ChatContent is message content on the wire: either a bare JSON string
// or an array of content items. The encoded shape depends on which
// variant is populated, not on an explicit field: a non-nil Parts slice
// always encodes as an array, even with a single element, and is never
// unwrapped to a bare string.
type ChatContent struct {
	Text  string
	Parts []ContentItem
}

// TextContent creates string-variant content.
func TextContent(text string) ChatContent {
	return ChatContent{Text: text}
}

// PartsContent creates array-variant content.
func PartsContent(items ...ContentItem) ChatContent {
	if items == nil {
		items = []ContentItem{}
	}
	return ChatContent{Parts: items}
}

// IsText reports whether the string variant is populated.
func (c ChatContent) IsText() bool { return c.Parts == nil }

// MarshalJSON encodes the string variant as a bare string and the array
// variant as a sequence of per-item encodings.
func (c ChatContent) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON peeks at the JSON shape to choose the variant before
// parsing. A JSON null decodes to the zero value: OpenAI-compatible
// backends send "content": null on assistant messages that only carry
// tool calls.
func (c *ChatContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty message content")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = ChatContent{Text: s}
		return nil
	case '[':
		var parts []ContentItem
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return err
		}
		if parts == nil {
			parts = []ContentItem{}
		}
		*c = ChatContent{Parts: parts}
		return nil
	case 'n':
		if string(trimmed) == "null" {
			*c = ChatContent{}
			return nil
		}
	}

	return fmt.Errorf("message content must be a string or an array")
}
