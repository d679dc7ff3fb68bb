package twcai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timeweb-cloud/twcai-go/pkg/api"
	"github.com/timeweb-cloud/twcai-go/pkg/debug"
)

// Headers attached by the dispatcher.
const (
	headerProxySource = "X-Proxy-Source"
	headerRequestID   = "X-Request-ID"

	// proxySource identifies this client on every request, authenticated
	// or not.
	proxySource = "twcai-go"
)

// Error response bodies are read up to this cap when extracting a message.
const errorBodyLimit = 4096

// do performs one API request: build URL and query string, attach
// headers, send, and decode the typed response or classify the error.
// A nil out drains the body and accepts any 2xx, including 204.
func (c *Client) do(ctx context.Context, operation, method, path string, authed bool, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return api.NewDecodeError(fmt.Errorf("marshal request body: %w", err))
		}
		debug.Trace("wire", "request body", "operation", operation, "body", string(data))
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.send(req, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classify(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return api.NewDecodeError(fmt.Errorf("decode response body: %w", err))
	}
	return nil
}

// doText performs a request whose success body is plain text rather than
// JSON (the embed-code endpoint). Extra headers replace authentication.
func (c *Client) doText(ctx context.Context, operation, method, path string, headers map[string]string, query url.Values) (string, error) {
	req, err := c.newRequest(ctx, method, path, query, nil)
	if err != nil {
		return "", err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.send(req, operation)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.classify(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", api.NewDecodeError(fmt.Errorf("read response body: %w", err))
	}
	return string(data), nil
}

// newRequest builds the full request URL from the base address, path,
// and query. An empty query mapping appends no "?"; a non-empty one is
// encoded with sorted keys, so the result is deterministic.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, api.NewConfigurationError("build request: " + err.Error())
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerProxySource, proxySource)
	req.Header.Set(headerRequestID, uuid.NewString())

	return req, nil
}

// send is the single suspension point: request construction before it
// and decoding after it are synchronous. Pure transport failures, where
// no status was received, surface as transport errors.
func (c *Client) send(req *http.Request, operation string) (*http.Response, error) {
	debug.Log("http", "sending request",
		"operation", operation, "method", req.Method, "url", req.URL.String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Debug("request failed",
			"operation", operation, "method", req.Method, "url", req.URL.String(),
			"duration", duration, "error", err)
		c.observe(operation, "error", duration)
		return nil, api.NewTransportError(err)
	}

	c.logger.Debug("request completed",
		"operation", operation, "method", req.Method, "url", req.URL.String(),
		"status", resp.StatusCode, "duration", duration)
	c.observe(operation, statusClass(resp.StatusCode), duration)
	return resp, nil
}

// classify turns a non-2xx response into a typed error. The body is read
// best-effort as raw text for the error message; read failures degrade
// to the per-kind default message, never to a second error.
func (c *Client) classify(resp *http.Response) error {
	message := ""
	if data, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit)); err == nil {
		message = strings.TrimSpace(string(data))
	}
	return api.FromStatus(resp.StatusCode, message)
}

func (c *Client) observe(operation, status string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.Observe(operation, status, duration)
	}
}

func statusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
