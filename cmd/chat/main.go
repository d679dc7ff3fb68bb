// Command chat sends a single chat completion to an agent and prints
// the reply.
//
// Configuration comes from twcai.yaml / environment variables (see
// pkg/config); a .env file in the working directory is honored.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/timeweb-cloud/twcai-go/pkg/api"
	"github.com/timeweb-cloud/twcai-go/pkg/config"
	"github.com/timeweb-cloud/twcai-go/pkg/debug"
)

func main() {
	_ = godotenv.Load()
	debug.Init("", "")

	cfg, err := config.Load(os.Getenv("TWCAI_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.AgentID == "" {
		fmt.Fprintln(os.Stderr, "agent_id (or TWCAI_AGENT_ID) is required")
		os.Exit(1)
	}

	client, err := cfg.Client()
	if err != nil {
		fmt.Fprintln(os.Stderr, "client:", err)
		os.Exit(1)
	}

	prompt := "What is the capital of France?"
	if len(os.Args) > 1 {
		prompt = os.Args[1]
	}

	temperature := 0.7
	maxTokens := 150
	req := api.ChatCompletionRequest{
		Messages: []api.ChatMessage{
			api.SystemMessage("You are a helpful assistant."),
			api.UserMessage(prompt),
		},
		Temperature:         &temperature,
		MaxCompletionTokens: &maxTokens,
	}

	resp, err := client.ChatCompletions(context.Background(), cfg.AgentID, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chat completion:", err)
		os.Exit(1)
	}

	for _, choice := range resp.Choices {
		if choice.Message.Content.IsText() {
			fmt.Println("Assistant:", choice.Message.Content.Text)
		}
	}
	fmt.Printf("Usage: %d tokens\n", resp.Usage.TotalTokens)
}
