//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/app"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/common"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080/api/v1"

func TestMain(m *testing.M) {
	studioApp := app.NewStudioApp(
		&initEnvVars{
			envVars: map[string]string{
				"HTTP_PORT":            "8080",
				"DB_USER":              "studio",
				"DB_PASS":              "studio",
				"DB_HOST":              "localhost",
				"DB_PORT":              "5432",
				"DB_NAME":              "ai_studio",
				"PUBSUB_EMULATOR_HOST": "localhost:8681",
				"PUBSUB_PROJECT_ID":    projectID,
				"IMAGE_EVENTS_TOPIC":   eventsTopic,
				"IMAGE_POLL_INTERVAL":  "100ms",
			},
		},
		&InitDockerCompose{},
		&initFakeGateway{},
		&initEventsTopic{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := studioApp.RunAsync(cancelCtx)

	err := studioApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("AI Studio app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("AI Studio app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("AI Studio app shutdown with error: %v", err)
		} else {
			log.Printf("AI Studio app shut down gracefully")
		}
	}

	os.Exit(code)
}

func TestStudioApp_Models(t *testing.T) {
	var resp gen.ModelCatalogueResp
	status := doJSON(t, http.MethodGet, "/models", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "deepseek-ai/DeepSeek-V3.2", resp.Defaults.Chat)
	require.NotEmpty(t, resp.Series)
}

func TestStudioApp_ChatSession(t *testing.T) {
	var session gen.Session
	t.Run("create-session", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, "/sessions", gen.CreateSessionJSONRequestBody{
			Kind:  gen.Chat,
			Title: common.Ptr("Integration chat"),
		}, &session)
		require.Equal(t, http.StatusCreated, status)
	})

	t.Run("stream-chat", func(t *testing.T) {
		body, err := json.Marshal(gen.StreamChatJSONRequestBody{
			Model:          common.Ptr("Qwen/Qwen3-235B-A22B-Thinking-2507"),
			Messages:       []gen.ChatMessage{{Role: gen.User, Content: "say hello"}},
			EnableThinking: common.Ptr(true),
			SessionId:      &session.Id,
		})
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, baseURL+"/chat", bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer it-key")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		stream, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "{\"r\":\"thinking\"}\n{\"c\":\"Hello\"}\n{\"c\":\" world\"}\n", string(stream))
	})

	t.Run("exchange-recorded", func(t *testing.T) {
		var detail gen.SessionDetailResp
		status := doJSON(t, http.MethodGet, "/sessions/"+session.Id.String(), nil, &detail)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, detail.Messages)
		require.Len(t, *detail.Messages, 2)
		assert.Equal(t, gen.User, (*detail.Messages)[0].Role)
		assert.Equal(t, gen.Assistant, (*detail.Messages)[1].Role)
		assert.Equal(t, "Hello world", (*detail.Messages)[1].Content)
		assert.Equal(t, common.Ptr("thinking"), (*detail.Messages)[1].Reasoning)
	})

	t.Run("delete-session", func(t *testing.T) {
		status := doJSON(t, http.MethodDelete, "/sessions/"+session.Id.String(), nil, nil)
		require.Equal(t, http.StatusNoContent, status)

		status = doJSON(t, http.MethodGet, "/sessions/"+session.Id.String(), nil, nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestStudioApp_ImageGeneration(t *testing.T) {
	var submitted gen.ImageGenerationResp
	t.Run("submit", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, "/images/generations", gen.SubmitImageGenerationJSONRequestBody{
			Prompt: "a lighthouse at night",
			Size:   common.Ptr("1328x1328"),
		}, &submitted)
		require.Equal(t, http.StatusAccepted, status)
		require.Equal(t, "it-task-1", submitted.TaskId)
	})

	t.Run("gallery-filled-after-success", func(t *testing.T) {
		require.Eventually(t, func() bool {
			var images gen.GeneratedImageListResp
			status := doJSON(t, http.MethodGet, "/sessions/"+submitted.SessionId.String()+"/images", nil, &images)
			return status == http.StatusOK && len(images.Images) == 1
		}, 30*time.Second, 200*time.Millisecond)
	})

	t.Run("event-published", func(t *testing.T) {
		client, err := pubsubV2.NewClient(t.Context(), projectID)
		require.NoError(t, err)
		defer client.Close() //nolint:errcheck

		ctx, cancel := context.WithTimeout(t.Context(), 30*time.Second)
		defer cancel()

		var event domain.ImageJobEvent
		err = client.Subscriber(eventsSubsName).Receive(ctx, func(_ context.Context, msg *pubsubV2.Message) {
			msg.Ack()
			if json.Unmarshal(msg.Data, &event) == nil && event.JobID == submitted.TaskId {
				cancel()
			}
		})
		require.NoError(t, err)
		assert.Equal(t, domain.EventType_IMAGE_JOB_SUCCEEDED, event.Type)
		assert.Equal(t, []string{"https://images.example/it-task-1.png"}, event.ImageURLs)
	})
}

func doJSON(t *testing.T, method, path string, in, out any) int {
	t.Helper()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, baseURL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer it-key")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
