package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// TrackImageTask defines the interface for the TrackImageTask use case
type TrackImageTask interface {
	// Execute polls the job to completion, stores the generated image in its
	// session and publishes the outcome.
	Execute(ctx context.Context, req ImageTaskRequest) (PollOutcome, error)
}

// TrackImageTaskImpl is the implementation of the TrackImageTask use case
type TrackImageTaskImpl struct {
	poller       PollImageTask
	sessionRepo  domain.SessionRepository
	publisher    domain.EventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewTrackImageTaskImpl creates a new instance of TrackImageTaskImpl
func NewTrackImageTaskImpl(
	poller PollImageTask,
	sessionRepo domain.SessionRepository,
	publisher domain.EventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) TrackImageTaskImpl {
	return TrackImageTaskImpl{
		poller:       poller,
		sessionRepo:  sessionRepo,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute implements TrackImageTask. Cancelled jobs store and publish nothing.
func (uc TrackImageTaskImpl) Execute(ctx context.Context, req ImageTaskRequest) (PollOutcome, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	outcome, err := uc.poller.Poll(spanCtx, req.Credential, req.JobID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return outcome, err
	}

	switch outcome.State {
	case PollState_Succeeded:
		err = uc.succeeded(spanCtx, req, outcome)
	case PollState_Failed:
		err = uc.publish(spanCtx, domain.ImageJobEvent{
			Type:       domain.EventType_IMAGE_JOB_FAILED,
			JobID:      req.JobID,
			SessionID:  req.SessionID,
			Model:      req.Params.Model,
			OccurredAt: uc.timeProvider.Now(),
		})
	default:
		uc.logger.Printf("TrackImageTask: job %s ended in state %s", req.JobID, outcome.State)
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return outcome, err
	}
	return outcome, nil
}

func (uc TrackImageTaskImpl) succeeded(ctx context.Context, req ImageTaskRequest, outcome PollOutcome) error {
	now := uc.timeProvider.Now()
	job := domain.ImageJob{ID: req.JobID, Status: domain.ImageTaskStatus_Succeeded, ResultURLs: outcome.ResultURLs}
	record, err := domain.NewGeneratedImageRecord(req.SessionID, job, req.Params, now)
	if err != nil {
		return err
	}
	if err := uc.sessionRepo.AppendImage(ctx, record); err != nil {
		return err
	}
	return uc.publish(ctx, domain.ImageJobEvent{
		Type:       domain.EventType_IMAGE_JOB_SUCCEEDED,
		JobID:      req.JobID,
		SessionID:  req.SessionID,
		Model:      req.Params.Model,
		ImageURLs:  outcome.ResultURLs,
		OccurredAt: now,
	})
}

func (uc TrackImageTaskImpl) publish(ctx context.Context, event domain.ImageJobEvent) error {
	return uc.publisher.PublishImageJobEvent(ctx, event)
}

// InitTrackImageTask is the initializer for the TrackImageTask use case
type InitTrackImageTask struct {
	Poller       PollImageTask              `resolve:""`
	SessionRepo  domain.SessionRepository   `resolve:""`
	Publisher    domain.EventPublisher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the TrackImageTask use case in the dependency container
func (i InitTrackImageTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TrackImageTask](NewTrackImageTaskImpl(i.Poller, i.SessionRepo, i.Publisher, i.TimeProvider, i.Logger))
	return ctx, nil
}
