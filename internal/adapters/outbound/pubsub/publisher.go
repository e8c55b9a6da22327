package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	Client *pubsubV2.Client
	Topic  string
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client, topic string) PubSubEventPublisher {
	return PubSubEventPublisher{Client: client, Topic: topic}
}

// PublishImageJobEvent publishes the terminal state of an image job as JSON
// to the configured topic.
func (p PubSubEventPublisher) PublishImageJobEvent(ctx context.Context, event domain.ImageJobEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("job_id", event.JobID),
			attribute.String("event_type", string(event.Type)),
			attribute.String("topic", p.Topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return fmt.Errorf("failed to encode image job event: %w", err)
	}

	result := p.Client.Publisher(p.Topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"job_id":     event.JobID,
			"session_id": event.SessionID.String(),
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitPublisher initializes the EventPublisher implementation
type InitPublisher struct {
	Client *pubsubV2.Client `resolve:""`
	Topic  string           `config:"IMAGE_EVENTS_TOPIC" default:"image-jobs"`
}

// Initialize registers the PubSubEventPublisher as the implementation of EventPublisher
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewPubSubEventPublisher(i.Client, i.Topic))
	return ctx, nil
}
