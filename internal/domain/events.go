package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_IMAGE_JOB_SUCCEEDED represents the event when an image job produced its images.
	EventType_IMAGE_JOB_SUCCEEDED EventType = "IMAGE_JOB.SUCCEEDED"
	// EventType_IMAGE_JOB_FAILED represents the event when the remote image job failed.
	EventType_IMAGE_JOB_FAILED EventType = "IMAGE_JOB.FAILED"
)

// ImageJobEvent is published once a tracked image job reaches a terminal state.
type ImageJobEvent struct {
	Type       EventType `json:"type"`
	JobID      string    `json:"job_id"`
	SessionID  uuid.UUID `json:"session_id"`
	Model      string    `json:"model"`
	ImageURLs  []string  `json:"image_urls,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishImageJobEvent(ctx context.Context, event ImageJobEvent) error
}
