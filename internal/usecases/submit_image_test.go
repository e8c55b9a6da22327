package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/common"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitImageGenerationImpl_Execute(t *testing.T) {
	sessionID := uuid.New()
	newSessionID := uuid.New()
	submitted := domain.ImageJob{ID: "task-1", Status: domain.ImageTaskStatus_Running}

	lorasWith := func(weights ...float64) []domain.LoraWeight {
		loras := make([]domain.LoraWeight, len(weights))
		for i, w := range weights {
			loras[i] = domain.LoraWeight{Repo: "user/lora-" + string(rune('a'+i)), Weight: w}
		}
		return loras
	}

	tests := map[string]struct {
		credential      string
		input           SubmitImageInput
		setExpectations func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository)
		expectedResult  SubmitImageResult
		expectedQueued  *ImageTaskRequest
		expectedErr     func(t *testing.T, err error)
	}{
		"new-session-with-defaults": {
			credential: "k",
			input:      SubmitImageInput{Params: domain.ImageParams{Prompt: "a red fox in the snow at dawn, cinematic lighting"}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {
				gw.EXPECT().
					SubmitImage(mock.Anything, "k", domain.ImageParams{
						Model:  "Qwen/Qwen-Image",
						Prompt: "a red fox in the snow at dawn, cinematic lighting",
						Size:   "1024x1024",
					}).
					Return(submitted, nil).
					Once()
				repo.EXPECT().
					CreateSession(mock.Anything, domain.SessionKind_Image, "a red fox in the snow at dawn,").
					Return(domain.Session{ID: newSessionID, Kind: domain.SessionKind_Image}, nil).
					Once()
			},
			expectedResult: SubmitImageResult{Job: submitted, SessionID: newSessionID},
			expectedQueued: &ImageTaskRequest{
				Credential: "k",
				JobID:      "task-1",
				SessionID:  newSessionID,
				Params: domain.ImageParams{
					Model:  "Qwen/Qwen-Image",
					Prompt: "a red fox in the snow at dawn, cinematic lighting",
					Size:   "1024x1024",
				},
			},
		},
		"existing-session-and-loras-sum-0.97": {
			credential: "k",
			input: SubmitImageInput{
				SessionID: &sessionID,
				Params: domain.ImageParams{
					Model:  "black-forest-labs/FLUX.1-Krea-dev",
					Prompt: "fox",
					Size:   "928x1664",
					Steps:  common.Ptr(30),
					Loras:  append(lorasWith(0.5, 0.47), domain.LoraWeight{Repo: "  ", Weight: 0.2}),
				},
			},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {
				repo.EXPECT().
					GetSession(mock.Anything, sessionID).
					Return(domain.Session{ID: sessionID, Kind: domain.SessionKind_Image}, true, nil).
					Once()
				gw.EXPECT().
					SubmitImage(mock.Anything, "k", mock.MatchedBy(func(p domain.ImageParams) bool {
						return len(p.Loras) == 2 && p.Size == "928x1664"
					})).
					Return(submitted, nil).
					Once()
			},
			expectedResult: SubmitImageResult{Job: submitted, SessionID: sessionID},
		},
		"loras-sum-1.03-accepted": {
			credential: "k",
			input: SubmitImageInput{
				SessionID: &sessionID,
				Params:    domain.ImageParams{Prompt: "fox", Loras: lorasWith(0.53, 0.5)},
			},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {
				repo.EXPECT().
					GetSession(mock.Anything, sessionID).
					Return(domain.Session{ID: sessionID, Kind: domain.SessionKind_Image}, true, nil).
					Once()
				gw.EXPECT().
					SubmitImage(mock.Anything, "k", mock.Anything).
					Return(submitted, nil).
					Once()
			},
			expectedResult: SubmitImageResult{Job: submitted, SessionID: sessionID},
		},
		"loras-sum-0.80-rejected-before-network": {
			credential:      "k",
			input:           SubmitImageInput{Params: domain.ImageParams{Prompt: "fox", Loras: lorasWith(0.4, 0.4)}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {},
			expectedErr: func(t *testing.T, err error) {
				var valErr *domain.ValidationErr
				assert.ErrorAs(t, err, &valErr)
			},
		},
		"empty-prompt": {
			credential:      "k",
			input:           SubmitImageInput{Params: domain.ImageParams{Prompt: "   "}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {},
			expectedErr: func(t *testing.T, err error) {
				assert.Equal(t, domain.NewValidationErr("prompt cannot be empty"), err)
			},
		},
		"missing-credential": {
			input:           SubmitImageInput{Params: domain.ImageParams{Prompt: "fox"}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {},
			expectedErr: func(t *testing.T, err error) {
				assert.Equal(t, domain.NewMissingCredentialErr(), err)
			},
		},
		"unknown-session": {
			credential: "k",
			input:      SubmitImageInput{SessionID: &sessionID, Params: domain.ImageParams{Prompt: "fox"}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {
				repo.EXPECT().
					GetSession(mock.Anything, sessionID).
					Return(domain.Session{}, false, nil).
					Once()
			},
			expectedErr: func(t *testing.T, err error) {
				var nfErr *domain.NotFoundErr
				assert.ErrorAs(t, err, &nfErr)
			},
		},
		"submission-exhausted-creates-no-session": {
			credential: "k",
			input:      SubmitImageInput{Params: domain.ImageParams{Prompt: "fox"}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {
				gw.EXPECT().
					SubmitImage(mock.Anything, "k", mock.Anything).
					Return(domain.ImageJob{}, domain.NewSubmissionErr(3, domain.NewUpstreamHTTPErr(503, "busy"))).
					Once()
			},
			expectedErr: func(t *testing.T, err error) {
				var subErr *domain.SubmissionErr
				require.ErrorAs(t, err, &subErr)
				assert.Equal(t, 3, subErr.Attempts)
			},
		},
		"session-creation-error": {
			credential: "k",
			input:      SubmitImageInput{Params: domain.ImageParams{Prompt: "fox"}},
			setExpectations: func(gw *domain.MockInferenceGateway, repo *domain.MockSessionRepository) {
				gw.EXPECT().
					SubmitImage(mock.Anything, "k", mock.Anything).
					Return(submitted, nil).
					Once()
				repo.EXPECT().
					CreateSession(mock.Anything, domain.SessionKind_Image, "fox").
					Return(domain.Session{}, errors.New("db down")).
					Once()
			},
			expectedErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "db down")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gw := domain.NewMockInferenceGateway(t)
			repo := domain.NewMockSessionRepository(t)
			tt.setExpectations(gw, repo)

			queue := make(ImageTaskQueue, 1)
			uc := NewSubmitImageGenerationImpl(gw, domain.DefaultModelCatalogue(), repo, queue)

			got, err := uc.Execute(context.Background(), tt.credential, tt.input)
			if tt.expectedErr != nil {
				tt.expectedErr(t, err)
				assert.Empty(t, queue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, got)

			require.Len(t, queue, 1)
			queued := <-queue
			if tt.expectedQueued != nil {
				assert.Equal(t, *tt.expectedQueued, queued)
			}
			assert.Equal(t, got.Job.ID, queued.JobID)
			assert.Equal(t, got.SessionID, queued.SessionID)
		})
	}
}

func TestSubmitImageGenerationImpl_Execute_BlockedQueueHonoursContext(t *testing.T) {
	gw := domain.NewMockInferenceGateway(t)
	repo := domain.NewMockSessionRepository(t)
	sessionID := uuid.New()

	repo.EXPECT().
		GetSession(mock.Anything, sessionID).
		Return(domain.Session{ID: sessionID, Kind: domain.SessionKind_Image}, true, nil).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gw.EXPECT().
		SubmitImage(mock.Anything, "k", mock.Anything).
		RunAndReturn(func(context.Context, string, domain.ImageParams) (domain.ImageJob, error) {
			cancel()
			return domain.ImageJob{ID: "task-1", Status: domain.ImageTaskStatus_Running}, nil
		}).
		Once()

	uc := NewSubmitImageGenerationImpl(gw, domain.DefaultModelCatalogue(), repo, make(ImageTaskQueue))
	_, err := uc.Execute(ctx, "k", SubmitImageInput{SessionID: &sessionID, Params: domain.ImageParams{Prompt: "fox"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitSubmitImageGeneration_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitSubmitImageGeneration{
		Gateway:     domain.NewMockInferenceGateway(t),
		Catalogue:   domain.DefaultModelCatalogue(),
		SessionRepo: domain.NewMockSessionRepository(t),
		Queue:       make(ImageTaskQueue, 1),
	}
	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[SubmitImageGeneration]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
