package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// StreamVisionInput is the caller request for a vision completion.
// Images are attached to messages; an empty Model selects the catalogue default.
type StreamVisionInput struct {
	Model    string
	Messages []domain.LLMChatMessage
}

// StreamVision defines the interface for the StreamVision use case
type StreamVision interface {
	// Execute streams the completion as pre-formatted markdown text.
	Execute(ctx context.Context, credential string, input StreamVisionInput, onText func(text string) error, opts ...StreamOption) error
}

// StreamVisionImpl is the implementation of the StreamVision use case.
// Reasoning is always requested from vision models.
type StreamVisionImpl struct {
	gateway      domain.InferenceGateway
	catalogue    domain.ModelCatalogue
	sessionRepo  domain.SessionRepository
	timeProvider domain.CurrentTimeProvider
}

// NewStreamVisionImpl creates a new instance of StreamVisionImpl
func NewStreamVisionImpl(
	gateway domain.InferenceGateway,
	catalogue domain.ModelCatalogue,
	sessionRepo domain.SessionRepository,
	timeProvider domain.CurrentTimeProvider,
) StreamVisionImpl {
	return StreamVisionImpl{
		gateway:      gateway,
		catalogue:    catalogue,
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
	}
}

// Execute implements StreamVision.
func (uc StreamVisionImpl) Execute(ctx context.Context, credential string, input StreamVisionInput, onText func(text string) error, opts ...StreamOption) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := uc.execute(spanCtx, credential, input, onText, newStreamParams(opts))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (uc StreamVisionImpl) execute(ctx context.Context, credential string, input StreamVisionInput, onText func(text string) error, params StreamParams) error {
	if credential == "" {
		return domain.NewMissingCredentialErr()
	}

	model := input.Model
	if model == "" {
		model = uc.catalogue.Defaults.Vision
	}
	req := domain.LLMChatRequest{
		Kind:            domain.ChatKind_Vision,
		Model:           model,
		Messages:        input.Messages,
		EnableReasoning: true,
		Mechanism:       uc.catalogue.Resolve(model),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	recorder, err := newExchangeRecorder(ctx, uc.sessionRepo, uc.timeProvider, params.SessionID)
	if err != nil {
		return err
	}

	var transcript domain.StreamTranscript
	md := NewReasoningMarkdown(onText)
	err = uc.gateway.StreamChat(ctx, credential, req, func(inc domain.StreamIncrement) error {
		RecordStreamIncrement(ctx, string(domain.ChatKind_Vision), inc)
		transcript.Apply(inc)
		return md.Write(inc)
	})
	if err != nil {
		return err
	}

	return recorder.record(ctx, lastUserMessage(input.Messages), transcript.Answer(), transcript.Reasoning())
}

// InitStreamVision is the initializer for the StreamVision use case
type InitStreamVision struct {
	Gateway      domain.InferenceGateway    `resolve:""`
	Catalogue    domain.ModelCatalogue      `resolve:""`
	SessionRepo  domain.SessionRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the StreamVision use case in the dependency container
func (i InitStreamVision) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamVision](NewStreamVisionImpl(i.Gateway, i.Catalogue, i.SessionRepo, i.TimeProvider))
	return ctx, nil
}
