// Command conversation walks a conversation through its full lifecycle:
// create with an initial item, list items, add items, replace metadata,
// and delete.
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

	ctx := context.Background()

	conversation, err := client.CreateConversation(ctx, cfg.AgentID, api.CreateConversationRequest{
		Items: []api.ItemParam{
			api.TextItemParam(api.RoleUser, "Hello, let's discuss Go programming."),
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "create conversation:", err)
		os.Exit(1)
	}
	fmt.Println("Created conversation:", conversation.ID)

	items, err := client.ListItems(ctx, cfg.AgentID, conversation.ID, &api.ListItemsQuery{Limit: 10})
	if err != nil {
		fmt.Fprintln(os.Stderr, "list items:", err)
		os.Exit(1)
	}
	fmt.Println("Items in conversation:", len(items.Data))

	added, err := client.CreateItems(ctx, cfg.AgentID, conversation.ID, api.CreateItemsRequest{
		Items: []api.ItemParam{
			api.TextItemParam(api.RoleUser, "What are the benefits of goroutines?"),
		},
	}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create items:", err)
		os.Exit(1)
	}
	fmt.Println("Added items:", len(added.Data))

	updated, err := client.UpdateConversation(ctx, cfg.AgentID, conversation.ID, api.UpdateConversationRequest{
		Metadata: map[string]string{
			"topic":  "go-concurrency",
			"status": "active",
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "update conversation:", err)
		os.Exit(1)
	}
	fmt.Println("Updated conversation metadata:", updated.Metadata)

	deleted, err := client.DeleteConversation(ctx, cfg.AgentID, conversation.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "delete conversation:", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted conversation: %s (success: %t)\n", deleted.ID, deleted.Deleted)
}
