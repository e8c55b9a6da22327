package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultPollInterval is the pause between two status queries of a job.
const DefaultPollInterval = 3 * time.Second

// PollState is the state of a poller.
type PollState string

const (
	PollState_Idle      PollState = "idle"
	PollState_Polling   PollState = "polling"
	PollState_Succeeded PollState = "succeeded"
	PollState_Failed    PollState = "failed"
	PollState_Cancelled PollState = "cancelled"
)

// PollOutcome is the final result of polling one job.
type PollOutcome struct {
	JobID      string
	State      PollState
	ResultURLs []string
	Queries    int
}

// PollImageTask defines the interface for the PollImageTask use case
type PollImageTask interface {
	// Poll queries the job every interval until it succeeds, fails or ctx is
	// cancelled. A cancelled poll ends in PollState_Cancelled with no result.
	Poll(ctx context.Context, credential, jobID string) (PollOutcome, error)
}

// PollImageTaskImpl is the implementation of the PollImageTask use case.
// Queries for one job never overlap: each one completes before the next
// tick is read. Query errors are logged and the next tick is awaited.
type PollImageTaskImpl struct {
	gateway  domain.InferenceGateway
	interval time.Duration
	logger   *log.Logger
}

// NewPollImageTaskImpl creates a new instance of PollImageTaskImpl
func NewPollImageTaskImpl(gateway domain.InferenceGateway, interval time.Duration, logger *log.Logger) PollImageTaskImpl {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return PollImageTaskImpl{
		gateway:  gateway,
		interval: interval,
		logger:   logger,
	}
}

// Poll implements PollImageTask.
func (uc PollImageTaskImpl) Poll(ctx context.Context, credential, jobID string) (PollOutcome, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	outcome, err := uc.poll(spanCtx, credential, jobID)
	span.SetAttributes(
		attribute.String("image.task_id", jobID),
		attribute.String("poll.state", string(outcome.State)),
		attribute.Int("poll.queries", outcome.Queries),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return outcome, err
	}
	RecordImageJobFinished(spanCtx, outcome.State)
	return outcome, nil
}

func (uc PollImageTaskImpl) poll(ctx context.Context, credential, jobID string) (PollOutcome, error) {
	outcome := PollOutcome{JobID: jobID, State: PollState_Idle}
	if credential == "" {
		return outcome, domain.NewMissingCredentialErr()
	}
	if jobID == "" {
		return outcome, domain.NewValidationErr("job id is required")
	}

	outcome.State = PollState_Polling
	ticker := time.NewTicker(uc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			outcome.State = PollState_Cancelled
			return outcome, nil
		case <-ticker.C:
		}

		job, err := uc.gateway.GetImageTask(ctx, credential, jobID)
		outcome.Queries++
		RecordImageTaskQuery(ctx, err)
		if err != nil {
			if ctx.Err() != nil {
				outcome.State = PollState_Cancelled
				return outcome, nil
			}
			uc.logger.Printf("PollImageTask: status query for job %s failed: %v", jobID, err)
			continue
		}

		switch job.Status {
		case domain.ImageTaskStatus_Succeeded:
			outcome.State = PollState_Succeeded
			outcome.ResultURLs = job.ResultURLs
			return outcome, nil
		case domain.ImageTaskStatus_Failed:
			outcome.State = PollState_Failed
			return outcome, nil
		}
	}
}

// InitPollImageTask is the initializer for the PollImageTask use case
type InitPollImageTask struct {
	Gateway  domain.InferenceGateway `resolve:""`
	Logger   *log.Logger             `resolve:""`
	Interval time.Duration           `config:"IMAGE_POLL_INTERVAL" default:"3s"`
}

// Initialize registers the PollImageTask use case in the dependency container
func (i InitPollImageTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PollImageTask](NewPollImageTaskImpl(i.Gateway, i.Interval, i.Logger))
	return ctx, nil
}
