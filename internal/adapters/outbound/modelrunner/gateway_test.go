package modelrunner

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferenceGateway_StreamChat(t *testing.T) {
	chunks := []StreamChunk{
		{Choices: []StreamChunkChoice{{Delta: StreamChunkDelta{ReasoningContent: "plan"}}}},
		{Choices: []StreamChunkChoice{{Delta: StreamChunkDelta{Content: "done"}}}},
	}

	var gotBody ChatRequest
	srv := createStreamingServer(t, chunks, func(r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	})

	gateway := NewInferenceGateway(newTestClient(srv))

	var got []domain.StreamIncrement
	err := gateway.StreamChat(t.Context(), "k", domain.LLMChatRequest{
		Kind:            domain.ChatKind_Chat,
		Model:           "deepseek-ai/DeepSeek-V3.2",
		Messages:        []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
		EnableReasoning: true,
		Mechanism:       domain.ReasoningMechanism_TemplateArgument,
	}, func(inc domain.StreamIncrement) error {
		got = append(got, inc)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.StreamIncrement{
		domain.ReasoningIncrement("plan"),
		domain.AnswerIncrement("done"),
	}, got)
	assert.True(t, gotBody.Stream)
	assert.Nil(t, gotBody.EnableThinking)
	require.NotNil(t, gotBody.ChatTemplateKwargs)
	assert.True(t, gotBody.ChatTemplateKwargs.EnableThinking)
}

func TestInferenceGateway_SubmitImage(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(b, &gotBody))
		_, _ = w.Write([]byte(`{"task_id":"task-9"}`))
	}))
	defer srv.Close()

	gateway := NewInferenceGateway(newTestClient(srv))

	job, err := gateway.SubmitImage(t.Context(), "k", domain.ImageParams{
		Model:  "Qwen/Qwen-Image",
		Prompt: "a fox",
		Loras: []domain.LoraWeight{
			{Repo: "user/a", Weight: 0.5},
			{Repo: "user/b", Weight: 0.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ImageJob{ID: "task-9", Status: domain.ImageTaskStatus_Running}, job)
	assert.Equal(t, "1024x1024", gotBody["size"])
	assert.Equal(t, map[string]any{"user/a": 0.5, "user/b": 0.5}, gotBody["loras"])
}

func TestInferenceGateway_GetImageTask(t *testing.T) {
	tests := map[string]struct {
		status   int
		body     string
		expected domain.ImageJob
		wantErr  bool
	}{
		"pending": {
			status:   http.StatusOK,
			body:     `{"task_status":"PENDING"}`,
			expected: domain.ImageJob{ID: "task-1", Status: domain.ImageTaskStatus_Running},
		},
		"succeeded": {
			status: http.StatusOK,
			body:   `{"task_status":"SUCCEED","output_images":["https://img/1.png"]}`,
			expected: domain.ImageJob{
				ID:         "task-1",
				Status:     domain.ImageTaskStatus_Succeeded,
				ResultURLs: []string{"https://img/1.png"},
			},
		},
		"failed-drops-images": {
			status:   http.StatusOK,
			body:     `{"task_status":"FAILED","output_images":["https://img/partial.png"]}`,
			expected: domain.ImageJob{ID: "task-1", Status: domain.ImageTaskStatus_Failed},
		},
		"upstream-error": {
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/tasks/task-1", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			job, err := NewInferenceGateway(newTestClient(srv)).GetImageTask(t.Context(), "k", "task-1")
			if tt.wantErr {
				var upErr *domain.UpstreamHTTPErr
				assert.ErrorAs(t, err, &upErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, job)
		})
	}
}

func TestToImageTaskStatus(t *testing.T) {
	tests := map[string]domain.ImageTaskStatus{
		"SUCCEED":    domain.ImageTaskStatus_Succeeded,
		"succeeded":  domain.ImageTaskStatus_Succeeded,
		"FAILED":     domain.ImageTaskStatus_Failed,
		"RUNNING":    domain.ImageTaskStatus_Running,
		"PROCESSING": domain.ImageTaskStatus_Running,
		"":           domain.ImageTaskStatus_Running,
	}
	for status, expected := range tests {
		assert.Equal(t, expected, toImageTaskStatus(status), status)
	}
}

func TestInitInferenceGateway_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitInferenceGateway{
		HttpClient:      http.DefaultClient,
		Logger:          log.New(io.Discard, "", 0),
		BaseURL:         "http://localhost:0",
		SubmitRetryWait: time.Millisecond,
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	gateway, err := depend.Resolve[domain.InferenceGateway]()
	assert.NoError(t, err)
	assert.NotNil(t, gateway)
}
