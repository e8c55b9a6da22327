package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func streamIncrements(incs ...domain.StreamIncrement) func(context.Context, string, domain.LLMChatRequest, domain.StreamIncrementCallback) error {
	return func(_ context.Context, _ string, _ domain.LLMChatRequest, onIncrement domain.StreamIncrementCallback) error {
		for _, inc := range incs {
			if err := onIncrement(inc); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestStreamChatImpl_Execute(t *testing.T) {
	catalogue := domain.DefaultModelCatalogue()
	sessionID := uuid.New()
	userMsg := domain.LLMChatMessage{Role: domain.ChatRole_User, Content: "hello"}

	tests := map[string]struct {
		credential        string
		input             StreamChatInput
		opts              []StreamOption
		setExpectations   func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider)
		expectedIncrement []domain.StreamIncrement
		expectedErr       func(t *testing.T, err error)
	}{
		"default-model-with-thinking": {
			credential: "k",
			input:      StreamChatInput{Messages: []domain.LLMChatMessage{userMsg}, EnableThinking: true},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {
				gw.EXPECT().
					StreamChat(mock.Anything, "k", domain.LLMChatRequest{
						Kind:            domain.ChatKind_Chat,
						Model:           "deepseek-ai/DeepSeek-V3.2",
						Messages:        []domain.LLMChatMessage{userMsg},
						EnableReasoning: true,
						Mechanism:       domain.ReasoningMechanism_NativeFlag,
					}, mock.Anything).
					RunAndReturn(streamIncrements(
						domain.ReasoningIncrement("think"),
						domain.AnswerIncrement("Hi"),
					)).
					Once()
			},
			expectedIncrement: []domain.StreamIncrement{
				domain.ReasoningIncrement("think"),
				domain.AnswerIncrement("Hi"),
			},
		},
		"switch-by-id-instruct-ignores-flag": {
			credential: "k",
			input: StreamChatInput{
				Model:          "Qwen/Qwen3-235B-A22B-Instruct-2507",
				Messages:       []domain.LLMChatMessage{userMsg},
				EnableThinking: true,
			},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {
				gw.EXPECT().
					StreamChat(mock.Anything, "k", mock.MatchedBy(func(req domain.LLMChatRequest) bool {
						return !req.EnableReasoning && req.Mechanism == domain.ReasoningMechanism_None
					}), mock.Anything).
					RunAndReturn(streamIncrements(domain.AnswerIncrement("ok"))).
					Once()
			},
			expectedIncrement: []domain.StreamIncrement{domain.AnswerIncrement("ok")},
		},
		"template-argument-family": {
			credential: "k",
			input: StreamChatInput{
				Model:          "XiaomiMiMo/MiMo-V2-Flash",
				Messages:       []domain.LLMChatMessage{userMsg},
				EnableThinking: true,
			},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {
				gw.EXPECT().
					StreamChat(mock.Anything, "k", mock.MatchedBy(func(req domain.LLMChatRequest) bool {
						return req.EnableReasoning && req.Mechanism == domain.ReasoningMechanism_TemplateArgument
					}), mock.Anything).
					Return(nil).
					Once()
			},
		},
		"records-exchange-in-session": {
			credential: "k",
			input:      StreamChatInput{Messages: []domain.LLMChatMessage{userMsg}},
			opts:       []StreamOption{WithSessionID(sessionID)},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {
				repo.EXPECT().
					GetSession(mock.Anything, sessionID).
					Return(domain.Session{ID: sessionID, Kind: domain.SessionKind_Chat}, true, nil).
					Once()
				gw.EXPECT().
					StreamChat(mock.Anything, "k", mock.Anything, mock.Anything).
					RunAndReturn(streamIncrements(
						domain.ReasoningIncrement("a"),
						domain.ReasoningIncrement("b"),
						domain.AnswerIncrement("c"),
					)).
					Once()
				tp.EXPECT().Now().Return(fixedNow).Once()
				repo.EXPECT().
					AppendMessages(mock.Anything, sessionID, mock.MatchedBy(func(msgs []domain.SessionMessage) bool {
						return len(msgs) == 2 &&
							msgs[0].Role == domain.ChatRole_User && msgs[0].Content == "hello" &&
							msgs[1].Role == domain.ChatRole_Assistant && msgs[1].Content == "c" &&
							msgs[1].Reasoning == "ab" && msgs[1].CreatedAt.Equal(fixedNow)
					})).
					Return(nil).
					Once()
			},
			expectedIncrement: []domain.StreamIncrement{
				domain.ReasoningIncrement("a"),
				domain.ReasoningIncrement("b"),
				domain.AnswerIncrement("c"),
			},
		},
		"missing-credential": {
			input:           StreamChatInput{Messages: []domain.LLMChatMessage{userMsg}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {},
			expectedErr: func(t *testing.T, err error) {
				var credErr *domain.MissingCredentialErr
				assert.ErrorAs(t, err, &credErr)
			},
		},
		"empty-messages": {
			credential:      "k",
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {},
			expectedErr: func(t *testing.T, err error) {
				var valErr *domain.ValidationErr
				assert.ErrorAs(t, err, &valErr)
			},
		},
		"unknown-session": {
			credential: "k",
			input:      StreamChatInput{Messages: []domain.LLMChatMessage{userMsg}},
			opts:       []StreamOption{WithSessionID(sessionID)},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {
				repo.EXPECT().GetSession(mock.Anything, sessionID).Return(domain.Session{}, false, nil).Once()
			},
			expectedErr: func(t *testing.T, err error) {
				var nfErr *domain.NotFoundErr
				assert.ErrorAs(t, err, &nfErr)
			},
		},
		"upstream-error": {
			credential: "k",
			input:      StreamChatInput{Messages: []domain.LLMChatMessage{userMsg}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository, tp *domain.MockCurrentTimeProvider) {
				gw.EXPECT().
					StreamChat(mock.Anything, "k", mock.Anything, mock.Anything).
					Return(domain.NewUpstreamHTTPErr(401, "unauthorized")).
					Once()
			},
			expectedErr: func(t *testing.T, err error) {
				var upErr *domain.UpstreamHTTPErr
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, 401, upErr.StatusCode)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gw := domain.NewMockInferenceGateway(t)
			repo := domain.NewMockSessionRepository(t)
			tp := domain.NewMockCurrentTimeProvider(t)
			tt.setExpectations(gw, repo, tp)

			uc := NewStreamChatImpl(gw, catalogue, repo, tp)

			var got []domain.StreamIncrement
			err := uc.Execute(t.Context(), tt.credential, tt.input, func(inc domain.StreamIncrement) error {
				got = append(got, inc)
				return nil
			}, tt.opts...)

			if tt.expectedErr != nil {
				tt.expectedErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIncrement, got)
		})
	}
}

func TestStreamChatImpl_Execute_CallbackErrorAbortsWithoutRecording(t *testing.T) {
	sessionID := uuid.New()
	gw := domain.NewMockInferenceGateway(t)
	repo := domain.NewMockSessionRepository(t)
	tp := domain.NewMockCurrentTimeProvider(t)

	repo.EXPECT().GetSession(mock.Anything, sessionID).Return(domain.Session{ID: sessionID}, true, nil).Once()
	gw.EXPECT().
		StreamChat(mock.Anything, "k", mock.Anything, mock.Anything).
		RunAndReturn(streamIncrements(domain.AnswerIncrement("a"), domain.AnswerIncrement("b"))).
		Once()

	gone := errors.New("client disconnected")
	uc := NewStreamChatImpl(gw, domain.DefaultModelCatalogue(), repo, tp)
	err := uc.Execute(t.Context(), "k", StreamChatInput{
		Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
	}, func(domain.StreamIncrement) error {
		return gone
	}, WithSessionID(sessionID))

	assert.ErrorIs(t, err, gone)
}

func TestInitStreamChat_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	isc := InitStreamChat{Catalogue: domain.DefaultModelCatalogue()}
	_, err := isc.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[StreamChat]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
