// Package modelrunner provides a client for an OpenAI-compatible inference
// gateway that serves streamed chat completions and asynchronous image jobs.
//
// Chat streams carry the non-standard "reasoning_content" delta next to
// "content"; both are surfaced as separate increments.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	headerAsyncMode = "X-ModelScope-Async-Mode"
	headerTaskType  = "X-ModelScope-Task-Type"

	taskTypeImageGeneration = "image_generation"
)

// APIClient is a thin client for the inference gateway HTTP API
type APIClient struct {
	baseURL   string
	http      *http.Client
	submitter SubmissionRetrier
}

// NewAPIClient creates a new client. Image submissions go through submitter,
// everything else through httpClient directly.
func NewAPIClient(baseURL string, httpClient *http.Client, submitter SubmissionRetrier) APIClient {
	return APIClient{
		baseURL:   baseURL,
		http:      httpClient,
		submitter: submitter,
	}
}

// ChatStream posts a streaming completion request and transcodes the response
// body into increments. It returns when the upstream closes the stream.
func (c APIClient) ChatStream(ctx context.Context, apiKey string, req ChatRequest, onIncrement domain.StreamIncrementCallback) error {
	req.Stream = true

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := c.newRequest(ctx, http.MethodPost, "/v1/chat/completions", apiKey, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return domain.NewTransportErr(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return domain.NewUpstreamHTTPErr(resp.StatusCode, string(b))
	}

	return Transcode(resp.Body, onIncrement)
}

// SubmitImage submits an asynchronous image generation job and returns its task id.
func (c APIClient) SubmitImage(ctx context.Context, apiKey string, req ImageGenerationRequest) (string, error) {
	if apiKey == "" {
		return "", domain.NewMissingCredentialErr()
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	endpoint, err := url.JoinPath(c.baseURL, "/v1/images/generations")
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	rreq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	setCommonHeaders(rreq.Header, apiKey)
	rreq.Header.Set(headerAsyncMode, "true")

	resp, err := c.submitter.Do(rreq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewSubmissionErr(1, domain.NewTransportErr(err))
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		// rejected, not retried: the caller gets the gateway status as is
		return "", domain.NewUpstreamHTTPErr(resp.StatusCode, string(respBody))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewSubmissionErr(1, domain.NewUpstreamHTTPErr(resp.StatusCode, string(respBody)))
	}

	var out ImageGenerationResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", domain.NewSubmissionErr(1, domain.NewProtocolViolationErr(fmt.Sprintf("invalid submission response: %v", err)))
	}
	if out.TaskID == "" {
		return "", domain.NewSubmissionErr(1, domain.NewProtocolViolationErr("no task_id in submission response"))
	}
	return out.TaskID, nil
}

// TaskStatus queries the status of an image generation job once.
func (c APIClient) TaskStatus(ctx context.Context, apiKey string, taskID string) (*TaskStatusResponse, error) {
	if taskID == "" {
		return nil, domain.NewValidationErr("task id is required")
	}
	httpReq, err := c.newRequest(ctx, http.MethodGet, "/v1/tasks/"+url.PathEscape(taskID), apiKey, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(headerTaskType, taskTypeImageGeneration)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewTransportErr(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportErr(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewUpstreamHTTPErr(resp.StatusCode, string(respBody))
	}

	var out TaskStatusResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, domain.NewProtocolViolationErr(fmt.Sprintf("invalid task status response: %v", err))
	}
	return &out, nil
}

func (c APIClient) newRequest(ctx context.Context, method, path, apiKey string, body io.Reader) (*http.Request, error) {
	if apiKey == "" {
		return nil, domain.NewMissingCredentialErr()
	}
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setCommonHeaders(req.Header, apiKey)
	return req, nil
}

func setCommonHeaders(h http.Header, apiKey string) {
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Bearer "+apiKey)
}
