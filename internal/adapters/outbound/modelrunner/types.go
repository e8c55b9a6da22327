package modelrunner

import "encoding/json"

// ChatRequest is an OpenAI-compatible chat completions request extended with
// the reasoning toggles understood by the inference gateway.
type ChatRequest struct {
	Model              string              `json:"model"`
	Messages           []ChatMessage       `json:"messages"`
	Stream             bool                `json:"stream"`
	MaxTokens          *int                `json:"max_tokens,omitempty"`
	EnableThinking     *bool               `json:"enable_thinking,omitempty"`
	ChatTemplateKwargs *ChatTemplateKwargs `json:"chat_template_kwargs,omitempty"`
}

// ChatTemplateKwargs is the nested configuration object passed to the model chat template.
type ChatTemplateKwargs struct {
	EnableThinking bool  `json:"enable_thinking"`
	ClearThinking  *bool `json:"clear_thinking,omitempty"`
}

// ChatMessage is an OpenAI-compatible message. Content is either a plain
// string or a list of ContentPart for multimodal messages.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL references an image by URL or data URI.
type ImageURL struct {
	URL string `json:"url"`
}

// StreamChunk represents one server-sent event payload of a streaming completion
type StreamChunk struct {
	ID      string              `json:"id"`
	Object  string              `json:"object"`
	Created int64               `json:"created"`
	Model   string              `json:"model"`
	Choices []StreamChunkChoice `json:"choices"`
}

// StreamChunkChoice represents a choice in a streaming chunk
type StreamChunkChoice struct {
	Index        int              `json:"index"`
	FinishReason *string          `json:"finish_reason"`
	Delta        StreamChunkDelta `json:"delta"`
}

// StreamChunkDelta carries the incremental reasoning and answer text
type StreamChunkDelta struct {
	Role             *string `json:"role,omitempty"`
	Content          string  `json:"content,omitempty"`
	ReasoningContent string  `json:"reasoning_content,omitempty"`
}

// ImageGenerationRequest submits an asynchronous image generation job
type ImageGenerationRequest struct {
	Model          string    `json:"model"`
	Prompt         string    `json:"prompt"`
	N              int       `json:"n"`
	Size           string    `json:"size"`
	NegativePrompt string    `json:"negative_prompt,omitempty"`
	Steps          *int      `json:"steps,omitempty"`
	Guidance       *float64  `json:"guidance,omitempty"`
	Seed           *int64    `json:"seed,omitempty"`
	Loras          *LoraSpec `json:"loras,omitempty"`
}

// LoraSpec is either a single repository applied at full weight or a
// repository to weight map.
type LoraSpec struct {
	Repo    string
	Weights map[string]float64
}

// MarshalJSON encodes a single repository as a bare string and otherwise a map.
func (l LoraSpec) MarshalJSON() ([]byte, error) {
	if l.Repo != "" {
		return json.Marshal(l.Repo)
	}
	return json.Marshal(l.Weights)
}

// UnmarshalJSON accepts both encodings.
func (l *LoraSpec) UnmarshalJSON(data []byte) error {
	var repo string
	if err := json.Unmarshal(data, &repo); err == nil {
		l.Repo = repo
		l.Weights = nil
		return nil
	}
	l.Repo = ""
	return json.Unmarshal(data, &l.Weights)
}

// ImageGenerationResponse is the submission acknowledgement
type ImageGenerationResponse struct {
	TaskID string `json:"task_id"`
}

// Upstream task states
const (
	TaskStatusSucceed = "SUCCEED"
	TaskStatusFailed  = "FAILED"
)

// TaskStatusResponse is the status of an image generation job
type TaskStatusResponse struct {
	TaskID       string   `json:"task_id"`
	TaskStatus   string   `json:"task_status"`
	OutputImages []string `json:"output_images"`
}
