// Package api defines the wire types and error taxonomy for the Timeweb
// Cloud AI agent API. It covers the OpenAI-compatible chat completions,
// conversations, and responses resource families plus the agent-specific
// call and embed endpoints.
//
// All types in this package are value types with no shared mutable state.
// Content unions (ContentItem, ChatContent, ResponseInput) carry custom
// JSON marshaling that reproduces the wire protocol exactly: a tagged
// union encodes its discriminant in the "type" field, and ChatContent
// encodes as either a bare JSON string or an array depending on which
// variant is populated.
package api
