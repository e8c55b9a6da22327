package telemetry

import (
	"context"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		ServiceName:     "ai-studio-test",
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	assert.Nil(t, init.tp)
	assert.Nil(t, init.mp)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0)}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	require.NoError(t, err)
	assert.NotNil(t, client.Transport)
	assert.Zero(t, client.Timeout)
}
