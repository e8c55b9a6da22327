package pubsub

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestInitClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	server := pstest.NewServer()
	defer server.Close() //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	assert.NoError(t, err)
	ctx := context.Background()
	client, err := pubsubV2.NewClient(
		ctx,
		"test-project",
		option.WithGRPCConn(conn),
	)
	assert.NoError(t, err)

	var logs bytes.Buffer
	init := &InitClient{
		Logger:       log.New(&logs, "", 0),
		ProjectID:    "test-project",
		EmulatorHost: server.Addr,
		client:       client,
	}

	_, err = init.Initialize(ctx)
	assert.NoError(t, err)
	assert.Contains(t, logs.String(), "Pub/Sub emulator at "+server.Addr)

	resolved, err := depend.Resolve[*pubsubV2.Client]()
	assert.NoError(t, err)
	assert.Same(t, client, resolved)

	init.Close()
}

func TestInitClient_Close_WithoutClient(t *testing.T) {
	init := &InitClient{Logger: log.New(io.Discard, "", 0)}
	assert.NotPanics(t, init.Close)
}
