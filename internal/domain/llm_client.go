package domain

import "context"

// InferenceGateway defines the interface for talking to the remote inference gateway.
// The credential is an opaque bearer token forwarded verbatim on every call.
type InferenceGateway interface {
	// StreamChat sends a streaming chat completion and calls onIncrement for every
	// reasoning or answer increment in arrival order. Increments already delivered
	// stay valid when an error is returned mid-stream.
	StreamChat(ctx context.Context, credential string, req LLMChatRequest, onIncrement StreamIncrementCallback) error

	// SubmitImage submits an asynchronous image generation job with bounded retries.
	SubmitImage(ctx context.Context, credential string, params ImageParams) (ImageJob, error)

	// GetImageTask issues a single status query for a submitted job.
	GetImageTask(ctx context.Context, credential string, jobID string) (ImageJob, error)
}
