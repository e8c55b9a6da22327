package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the shared Pub/Sub client that carries image job events.
// The client library itself reads PUBSUB_EMULATOR_HOST; it is only resolved
// here so the startup log says where events go.
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID" default:"ai-studio-local"`
	EmulatorHost string      `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	client       *pubsubV2.Client
}

// Initialize creates the client unless one was injected and registers it.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client for project %q: %w", i.ProjectID, err)
		}
		i.client = client
	}

	if i.EmulatorHost != "" && i.EmulatorHost != "-" {
		i.Logger.Printf("InitClient: image job events go to the Pub/Sub emulator at %s (project %s)", i.EmulatorHost, i.ProjectID)
	} else {
		i.Logger.Printf("InitClient: image job events go to Pub/Sub project %s", i.ProjectID)
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close releases the client connection.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
