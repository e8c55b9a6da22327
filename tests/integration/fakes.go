//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

const (
	projectID      = "ai-studio-local"
	eventsTopic    = "image-jobs"
	eventsSubsName = "image-jobs-it"
)

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}

// initFakeGateway serves the gateway endpoints the studio calls and points
// INFERENCE_BASE_URL at itself.
type initFakeGateway struct {
	server *httptest.Server

	mu          sync.Mutex
	taskQueries map[string]int
}

func (i *initFakeGateway) Initialize(ctx context.Context) (context.Context, error) {
	i.taskQueries = map[string]int{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer it-key" {
			http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range []string{
			`data: {"choices":[{"delta":{"reasoning_content":"thinking"}}]}`,
			`data: {"choices":[{"delta":{"content":"Hello"}}]}`,
			`data: {"choices":[{"delta":{"content":" world"}}]}`,
			`data: [DONE]`,
		} {
			fmt.Fprintf(w, "%s\n\n", line) //nolint:errcheck
			w.(http.Flusher).Flush()
		}
	})
	mux.HandleFunc("POST /v1/images/generations", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-ModelScope-Async-Mode") != "true" {
			http.Error(w, "sync mode not supported", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"task_id": "it-task-1"}) //nolint:errcheck
	})
	mux.HandleFunc("GET /v1/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		i.mu.Lock()
		i.taskQueries[id]++
		n := i.taskQueries[id]
		i.mu.Unlock()

		resp := map[string]any{"task_status": "RUNNING"}
		if n >= 2 {
			resp = map[string]any{
				"task_status":   "SUCCEED",
				"output_images": []string{"https://images.example/" + id + ".png"},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	})

	i.server = httptest.NewServer(mux)
	os.Setenv("INFERENCE_BASE_URL", i.server.URL) //nolint:errcheck
	return ctx, nil
}

func (i *initFakeGateway) Close() {
	if i.server != nil {
		i.server.Close()
	}
	os.Unsetenv("INFERENCE_BASE_URL") //nolint:errcheck
}

// initEventsTopic creates the image events topic and a test subscription on the emulator.
type initEventsTopic struct{}

func (i initEventsTopic) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, projectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	topicName := "projects/" + projectID + "/topics/" + eventsTopic
	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && !strings.Contains(err.Error(), "AlreadyExists") {
		return ctx, err
	}
	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + projectID + "/subscriptions/" + eventsSubsName,
		Topic: topicName,
	})
	if err != nil && !strings.Contains(err.Error(), "AlreadyExists") {
		return ctx, err
	}
	return ctx, nil
}
