package api

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// roundTrip marshals v to JSON, then unmarshals back into a new value of
// the same type and returns it. It fails the test on any error.
func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got T
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v\nJSON: %s", err, data)
	}
	return got
}

// assertDeepEqual fails the test if got and want are not deeply equal.
func assertDeepEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestContentItemRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		item ContentItem
	}{
		{"text", TextItem("What's in this image?")},
		{"text/empty", TextItem("")},
		{"image with detail", ImageItem("https://example.com/image.jpg", ImageDetailAuto)},
		{"image without detail", ImageItem("https://example.com/image.jpg", "")},
		{"audio", AudioItem("UklGRg==", AudioFormatWAV)},
		{"file", FileItem(json.RawMessage(`{"file_id":"file-123"}`))},
		{"refusal", RefusalItem("I can't help with that.")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.item)
			assertDeepEqual(t, got, tt.item)
		})
	}
}

func TestContentItemWireShape(t *testing.T) {
	tests := []struct {
		name string
		item ContentItem
		want string
	}{
		{"text", TextItem("hi"), `{"type":"text","text":"hi"}`},
		{
			"image",
			ImageItem("https://example.com/a.png", ImageDetailHigh),
			`{"type":"image_url","image_url":{"url":"https://example.com/a.png","detail":"high"}}`,
		},
		{
			"audio",
			AudioItem("AAAA", AudioFormatMP3),
			`{"type":"input_audio","input_audio":{"data":"AAAA","format":"mp3"}}`,
		},
		{"refusal", RefusalItem("no"), `{"type":"refusal","refusal":"no"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("wire shape = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestContentItemDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown discriminant", `{"type":"video_url","video_url":{"url":"x"}}`},
		{"missing discriminant", `{"text":"hi"}`},
		{"text without text field", `{"type":"text"}`},
		{"image without payload", `{"type":"image_url"}`},
		{"audio without payload", `{"type":"input_audio"}`},
		{"file without payload", `{"type":"file"}`},
		{"refusal without payload", `{"type":"refusal"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item ContentItem
			if err := json.Unmarshal([]byte(tt.json), &item); err == nil {
				t.Errorf("decoded %s without error to %+v", tt.json, item)
			}
		})
	}
}

func TestContentItemMarshalUnknownType(t *testing.T) {
	if _, err := json.Marshal(ContentItem{Type: "video_url"}); err == nil {
		t.Error("marshaling an unknown content type did not fail")
	}
}

func TestChatContentRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content ChatContent
	}{
		{"string", TextContent("Hello, world!")},
		{"empty string", TextContent("")},
		{"array", PartsContent(TextItem("look"), ImageItem("https://example.com/a.png", ""))},
		{"single-element array", PartsContent(TextItem("alone"))},
		{"empty array", PartsContent()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.content)
			assertDeepEqual(t, got, tt.content)

			// Encode stability through the wire shape.
			first, _ := json.Marshal(tt.content)
			second, _ := json.Marshal(got)
			if string(first) != string(second) {
				t.Errorf("encode(decode(encode(x))) = %s, want %s", second, first)
			}
		})
	}
}

func TestChatContentStringEncodesBare(t *testing.T) {
	data, err := json.Marshal(TextContent("plain"))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"plain"` {
		t.Errorf("string content = %s, want a bare string", data)
	}
}

// A single-element array encodes as a one-element array, never unwrapped
// to a bare string.
func TestChatContentSingleElementStaysArray(t *testing.T) {
	data, err := json.Marshal(PartsContent(TextItem("alone")))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.HasPrefix(string(data), "[") {
		t.Errorf("single-element content = %s, want an array", data)
	}
}

func TestChatContentDecodeShapes(t *testing.T) {
	var c ChatContent
	if err := json.Unmarshal([]byte(`"hi"`), &c); err != nil {
		t.Fatalf("string decode: %v", err)
	}
	if !c.IsText() || c.Text != "hi" {
		t.Errorf("string decode = %+v", c)
	}

	if err := json.Unmarshal([]byte(`[{"type":"text","text":"hi"}]`), &c); err != nil {
		t.Fatalf("array decode: %v", err)
	}
	if c.IsText() || len(c.Parts) != 1 {
		t.Errorf("array decode = %+v", c)
	}

	// Assistant messages carry content: null next to tool calls.
	if err := json.Unmarshal([]byte(`null`), &c); err != nil {
		t.Fatalf("null decode: %v", err)
	}
	if !c.IsText() || c.Text != "" {
		t.Errorf("null decode = %+v", c)
	}

	if err := json.Unmarshal([]byte(`42`), &c); err == nil {
		t.Error("number decoded as content without error")
	}
	if err := json.Unmarshal([]byte(`{"text":"hi"}`), &c); err == nil {
		t.Error("object decoded as content without error")
	}
}
