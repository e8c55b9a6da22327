package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// StreamParams holds optional parameters for the streaming use cases.
type StreamParams struct {
	SessionID *uuid.UUID
}

// StreamOption defines a functional option for configuring StreamParams.
type StreamOption func(*StreamParams)

// WithSessionID appends the exchange to the given session once the stream completes.
func WithSessionID(sessionID uuid.UUID) StreamOption {
	return func(params *StreamParams) {
		params.SessionID = &sessionID
	}
}

func newStreamParams(opts []StreamOption) StreamParams {
	var p StreamParams
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// StreamChatInput is the caller request for a chat completion.
// An empty Model selects the catalogue default.
type StreamChatInput struct {
	Model          string
	Messages       []domain.LLMChatMessage
	EnableThinking bool
}

// StreamChat defines the interface for the StreamChat use case
type StreamChat interface {
	// Execute streams reasoning and answer increments to onIncrement in arrival order.
	Execute(ctx context.Context, credential string, input StreamChatInput, onIncrement domain.StreamIncrementCallback, opts ...StreamOption) error
}

// StreamChatImpl is the implementation of the StreamChat use case
type StreamChatImpl struct {
	gateway      domain.InferenceGateway
	catalogue    domain.ModelCatalogue
	sessionRepo  domain.SessionRepository
	timeProvider domain.CurrentTimeProvider
}

// NewStreamChatImpl creates a new instance of StreamChatImpl
func NewStreamChatImpl(
	gateway domain.InferenceGateway,
	catalogue domain.ModelCatalogue,
	sessionRepo domain.SessionRepository,
	timeProvider domain.CurrentTimeProvider,
) StreamChatImpl {
	return StreamChatImpl{
		gateway:      gateway,
		catalogue:    catalogue,
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
	}
}

// Execute resolves how reasoning is requested for the model, streams the
// completion and, when a session is given, records the exchange.
func (uc StreamChatImpl) Execute(ctx context.Context, credential string, input StreamChatInput, onIncrement domain.StreamIncrementCallback, opts ...StreamOption) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := uc.execute(spanCtx, credential, input, onIncrement, newStreamParams(opts))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (uc StreamChatImpl) execute(ctx context.Context, credential string, input StreamChatInput, onIncrement domain.StreamIncrementCallback, params StreamParams) error {
	if credential == "" {
		return domain.NewMissingCredentialErr()
	}

	model := input.Model
	if model == "" {
		model = uc.catalogue.Defaults.Chat
	}
	req := domain.LLMChatRequest{
		Kind:            domain.ChatKind_Chat,
		Model:           model,
		Messages:        input.Messages,
		EnableReasoning: uc.catalogue.ReasoningEnabled(model, input.EnableThinking),
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
	err = uc.gateway.StreamChat(ctx, credential, req, func(inc domain.StreamIncrement) error {
		RecordStreamIncrement(ctx, string(domain.ChatKind_Chat), inc)
		transcript.Apply(inc)
		return onIncrement(inc)
	})
	if err != nil {
		return err
	}

	return recorder.record(ctx, lastUserMessage(input.Messages), transcript.Answer(), transcript.Reasoning())
}

// InitStreamChat is the initializer for the StreamChat use case
type InitStreamChat struct {
	Gateway      domain.InferenceGateway    `resolve:""`
	Catalogue    domain.ModelCatalogue      `resolve:""`
	SessionRepo  domain.SessionRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the StreamChat use case in the dependency container
func (i InitStreamChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamChat](NewStreamChatImpl(i.Gateway, i.Catalogue, i.SessionRepo, i.TimeProvider))
	return ctx, nil
}
