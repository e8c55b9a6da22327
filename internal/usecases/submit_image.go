package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// SubmitImageInput is the caller request for an image generation job.
// Without a SessionID a new image session titled after the prompt is created.
type SubmitImageInput struct {
	Params    domain.ImageParams
	SessionID *uuid.UUID
}

// SubmitImageResult identifies the accepted job and the session that will
// receive the generated image.
type SubmitImageResult struct {
	Job       domain.ImageJob
	SessionID uuid.UUID
}

// SubmitImageGeneration defines the interface for the SubmitImageGeneration use case
type SubmitImageGeneration interface {
	Execute(ctx context.Context, credential string, input SubmitImageInput) (SubmitImageResult, error)
}

// SubmitImageGenerationImpl is the implementation of the SubmitImageGeneration use case
type SubmitImageGenerationImpl struct {
	gateway     domain.InferenceGateway
	catalogue   domain.ModelCatalogue
	sessionRepo domain.SessionRepository
	queue       ImageTaskQueue
}

// NewSubmitImageGenerationImpl creates a new instance of SubmitImageGenerationImpl
func NewSubmitImageGenerationImpl(
	gateway domain.InferenceGateway,
	catalogue domain.ModelCatalogue,
	sessionRepo domain.SessionRepository,
	queue ImageTaskQueue,
) SubmitImageGenerationImpl {
	return SubmitImageGenerationImpl{
		gateway:     gateway,
		catalogue:   catalogue,
		sessionRepo: sessionRepo,
		queue:       queue,
	}
}

// Execute validates the parameters, submits the job and hands it over to
// the background tracker.
func (uc SubmitImageGenerationImpl) Execute(ctx context.Context, credential string, input SubmitImageInput) (SubmitImageResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := uc.execute(spanCtx, credential, input)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SubmitImageResult{}, err
	}
	span.SetAttributes(
		attribute.String("image.task_id", result.Job.ID),
		attribute.String("session.id", result.SessionID.String()),
	)
	return result, nil
}

func (uc SubmitImageGenerationImpl) execute(ctx context.Context, credential string, input SubmitImageInput) (SubmitImageResult, error) {
	if credential == "" {
		return SubmitImageResult{}, domain.NewMissingCredentialErr()
	}

	params := input.Params
	if params.Model == "" {
		params.Model = uc.catalogue.Defaults.Image
	}
	if params.Size == "" {
		params.Size = domain.DefaultImageSize
	}
	if err := params.Validate(); err != nil {
		return SubmitImageResult{}, err
	}
	params.Loras = params.ActiveLoras()
	if err := domain.ValidateLoraWeights(params.Loras); err != nil {
		return SubmitImageResult{}, err
	}

	if input.SessionID != nil {
		_, found, err := uc.sessionRepo.GetSession(ctx, *input.SessionID)
		if err != nil {
			return SubmitImageResult{}, err
		}
		if !found {
			return SubmitImageResult{}, domain.NewNotFoundErr(fmt.Sprintf("session %s not found", input.SessionID))
		}
	}

	job, err := uc.gateway.SubmitImage(ctx, credential, params)
	RecordImageSubmission(ctx, err)
	if err != nil {
		return SubmitImageResult{}, err
	}

	var sessionID uuid.UUID
	if input.SessionID != nil {
		sessionID = *input.SessionID
	} else {
		session, err := uc.sessionRepo.CreateSession(ctx, domain.SessionKind_Image, domain.SessionTitleFrom(params.Prompt))
		if err != nil {
			return SubmitImageResult{}, err
		}
		sessionID = session.ID
	}

	req := ImageTaskRequest{
		Credential: credential,
		JobID:      job.ID,
		SessionID:  sessionID,
		Params:     params,
	}
	select {
	case uc.queue <- req:
	case <-ctx.Done():
		return SubmitImageResult{}, ctx.Err()
	}

	return SubmitImageResult{Job: job, SessionID: sessionID}, nil
}

// InitSubmitImageGeneration is the initializer for the SubmitImageGeneration use case
type InitSubmitImageGeneration struct {
	Gateway     domain.InferenceGateway  `resolve:""`
	Catalogue   domain.ModelCatalogue    `resolve:""`
	SessionRepo domain.SessionRepository `resolve:""`
	Queue       ImageTaskQueue           `resolve:""`
}

// Initialize registers the SubmitImageGeneration use case in the dependency container
func (i InitSubmitImageGeneration) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SubmitImageGeneration](NewSubmitImageGenerationImpl(i.Gateway, i.Catalogue, i.SessionRepo, i.Queue))
	return ctx, nil
}
