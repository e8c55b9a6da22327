package usecases

import (
	"context"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ImageTaskRequest asks the background tracker to follow a submitted job.
type ImageTaskRequest struct {
	Credential string
	JobID      string
	SessionID  uuid.UUID
	Params     domain.ImageParams
}

// ImageTaskQueue hands submitted jobs over to the background tracker.
type ImageTaskQueue chan ImageTaskRequest

// ImageTaskRegistry keeps the cancel function of every job being tracked.
type ImageTaskRegistry struct {
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// NewImageTaskRegistry creates an empty registry.
func NewImageTaskRegistry() *ImageTaskRegistry {
	return &ImageTaskRegistry{cancels: make(map[string]context.CancelFunc)}
}

// Add registers cancel for jobID. It returns false if the job is already tracked.
func (r *ImageTaskRegistry) Add(jobID string, cancel context.CancelFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cancels[jobID]; ok {
		return false
	}
	r.cancels[jobID] = cancel
	return true
}

// Remove forgets jobID without cancelling it.
func (r *ImageTaskRegistry) Remove(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cancels, jobID)
}

// Cancel cancels the tracking of jobID and reports whether it was tracked.
func (r *ImageTaskRegistry) Cancel(jobID string) bool {
	r.mu.Lock()
	cancel, ok := r.cancels[jobID]
	delete(r.cancels, jobID)
	r.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// CancelAll cancels every tracked job.
func (r *ImageTaskRegistry) CancelAll() {
	r.mu.Lock()
	cancels := r.cancels
	r.cancels = make(map[string]context.CancelFunc)
	r.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// Len returns the number of tracked jobs.
func (r *ImageTaskRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cancels)
}

// InitImageTaskQueue registers the image task queue and registry.
type InitImageTaskQueue struct {
	QueueSize int `config:"IMAGE_TASK_QUEUE_SIZE" default:"100"`
}

// Initialize registers the queue and registry in the dependency container
func (i InitImageTaskQueue) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(make(ImageTaskQueue, i.QueueSize))
	depend.Register(NewImageTaskRegistry())
	return ctx, nil
}
