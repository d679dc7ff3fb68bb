package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorInterface(t *testing.T) {
	var _ error = &Error{}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"with status",
			&Error{Kind: ErrorKindServer, Status: 502, Message: "bad gateway"},
			"server_error: bad gateway (HTTP 502)",
		},
		{
			"without status",
			&Error{Kind: ErrorKindConfiguration, Message: "API token is required"},
			"configuration: API token is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		message     string
		wantKind    ErrorKind
		wantMessage string
	}{
		{"401 ignores body for kind", 401, "anything", ErrorKindUnauthorized, "anything"},
		{"401 default", 401, "", ErrorKindUnauthorized, "Authentication failed - invalid or expired token"},
		{"403", 403, "", ErrorKindForbidden, "Access forbidden - domain not whitelisted or agent suspended"},
		{"404 default", 404, "", ErrorKindNotFound, "Resource not found"},
		{"404 with body", 404, "no such conversation", ErrorKindNotFound, "no such conversation"},
		{"500 with body", 500, "boom", ErrorKindServer, "boom"},
		{"503 default", 503, "", ErrorKindServer, "Internal server error"},
		{"400 default", 400, "", ErrorKindInvalidRequest, "Bad request"},
		{"402 default", 402, "", ErrorKindInvalidRequest, "Bad request"},
		{"418 unmapped 4xx", 418, "teapot", ErrorKindInvalidRequest, "teapot"},
		{"429 unmapped 4xx", 429, "", ErrorKindInvalidRequest, "Bad request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStatus(tt.status, tt.message)
			if got.Kind != tt.wantKind {
				t.Errorf("FromStatus(%d).Kind = %q, want %q", tt.status, got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("FromStatus(%d).Message = %q, want %q", tt.status, got.Message, tt.wantMessage)
			}
			if got.Status != tt.status {
				t.Errorf("FromStatus(%d).Status = %d", tt.status, got.Status)
			}
		})
	}
}

// FromStatus is a pure function of (status, message): calling it twice
// with the same inputs always yields the same kind and message.
func TestFromStatusDeterministic(t *testing.T) {
	for _, status := range []int{400, 401, 402, 403, 404, 422, 500, 503, 599} {
		a := FromStatus(status, "msg")
		b := FromStatus(status, "msg")
		if a.Kind != b.Kind || a.Message != b.Message {
			t.Errorf("FromStatus(%d) not deterministic: %v vs %v", status, a, b)
		}
	}
}

func TestConstructorsAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	transport := NewTransportError(cause)
	if transport.Kind != ErrorKindTransport {
		t.Errorf("transport kind = %q", transport.Kind)
	}
	if !errors.Is(transport, cause) {
		t.Error("transport error does not unwrap to its cause")
	}

	decode := NewDecodeError(cause)
	if decode.Kind != ErrorKindDecode {
		t.Errorf("decode kind = %q", decode.Kind)
	}

	cfg := NewConfigurationError("missing token")
	if cfg.Kind != ErrorKindConfiguration || cfg.Message != "missing token" {
		t.Errorf("configuration error = %v", cfg)
	}

	cancelled := NewCancelledError()
	if cancelled.Kind != ErrorKindCancelled {
		t.Errorf("cancelled kind = %q", cancelled.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", FromStatus(404, ""))
	if !IsKind(err, ErrorKindNotFound) {
		t.Error("IsKind did not match a wrapped not_found error")
	}
	if IsKind(err, ErrorKindServer) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(fmt.Errorf("plain"), ErrorKindNotFound) {
		t.Error("IsKind matched a non-api error")
	}
}
