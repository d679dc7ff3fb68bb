// Package twcai is the HTTP client for the Timeweb Cloud AI agent API.
//
// A Client is immutable after construction and safe for concurrent use;
// in-flight requests share one underlying http.Client. Every operation
// takes a context and performs exactly one request with no internal
// retries: failures surface as *api.Error values the caller branches on.
//
//	client, err := twcai.New(token)
//	if err != nil {
//		return err
//	}
//	resp, err := client.ChatCompletions(ctx, agentID, api.ChatCompletionRequest{
//		Messages: []api.ChatMessage{api.UserMessage("Hello!")},
//	})
package twcai
