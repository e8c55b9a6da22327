package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testPollInterval = 5 * time.Millisecond

func statusSequence(t *testing.T, gw *domain.MockInferenceGateway, jobID string, steps ...any) {
	t.Helper()
	for _, step := range steps {
		switch s := step.(type) {
		case domain.ImageTaskStatus:
			job := domain.ImageJob{ID: jobID, Status: s}
			if s == domain.ImageTaskStatus_Succeeded {
				job.ResultURLs = []string{"https://img/" + jobID + ".png"}
			}
			gw.EXPECT().GetImageTask(mock.Anything, "k", jobID).Return(job, nil).Once()
		case error:
			gw.EXPECT().GetImageTask(mock.Anything, "k", jobID).Return(domain.ImageJob{}, s).Once()
		default:
			t.Fatalf("unsupported step %T", step)
		}
	}
}

func TestPollImageTaskImpl_Poll(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := map[string]struct {
		credential      string
		jobID           string
		steps           []any
		expectedOutcome PollOutcome
		expectedErr     error
	}{
		"running-running-succeeded": {
			credential: "k",
			jobID:      "job-1",
			steps: []any{
				domain.ImageTaskStatus_Running,
				domain.ImageTaskStatus_Running,
				domain.ImageTaskStatus_Succeeded,
			},
			expectedOutcome: PollOutcome{
				JobID:      "job-1",
				State:      PollState_Succeeded,
				ResultURLs: []string{"https://img/job-1.png"},
				Queries:    3,
			},
		},
		"running-failed": {
			credential: "k",
			jobID:      "job-2",
			steps: []any{
				domain.ImageTaskStatus_Running,
				domain.ImageTaskStatus_Failed,
			},
			expectedOutcome: PollOutcome{JobID: "job-2", State: PollState_Failed, Queries: 2},
		},
		"query-error-is-skipped": {
			credential: "k",
			jobID:      "job-3",
			steps: []any{
				domain.NewTransportErr(errors.New("connection reset")),
				domain.ImageTaskStatus_Succeeded,
			},
			expectedOutcome: PollOutcome{
				JobID:      "job-3",
				State:      PollState_Succeeded,
				ResultURLs: []string{"https://img/job-3.png"},
				Queries:    2,
			},
		},
		"missing-credential": {
			jobID:           "job-4",
			expectedOutcome: PollOutcome{JobID: "job-4", State: PollState_Idle},
			expectedErr:     domain.NewMissingCredentialErr(),
		},
		"missing-job-id": {
			credential:      "k",
			expectedOutcome: PollOutcome{State: PollState_Idle},
			expectedErr:     domain.NewValidationErr("job id is required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gw := domain.NewMockInferenceGateway(t)
			statusSequence(t, gw, tt.jobID, tt.steps...)

			uc := NewPollImageTaskImpl(gw, testPollInterval, log.New(io.Discard, "", 0))
			outcome, err := uc.Poll(context.Background(), tt.credential, tt.jobID)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedOutcome, outcome)
		})
	}
}

func TestPollImageTaskImpl_Poll_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	gw := domain.NewMockInferenceGateway(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queried := make(chan struct{}, 1)
	gw.EXPECT().
		GetImageTask(mock.Anything, "k", "job-1").
		RunAndReturn(func(context.Context, string, string) (domain.ImageJob, error) {
			select {
			case queried <- struct{}{}:
			default:
			}
			return domain.ImageJob{ID: "job-1", Status: domain.ImageTaskStatus_Running}, nil
		}).
		Maybe()

	uc := NewPollImageTaskImpl(gw, testPollInterval, log.New(io.Discard, "", 0))

	done := make(chan PollOutcome, 1)
	go func() {
		outcome, err := uc.Poll(ctx, "k", "job-1")
		assert.NoError(t, err)
		done <- outcome
	}()

	<-queried
	cancel()

	select {
	case outcome := <-done:
		assert.Equal(t, PollState_Cancelled, outcome.State)
		assert.Empty(t, outcome.ResultURLs)
		assert.GreaterOrEqual(t, outcome.Queries, 1)
	case <-time.After(time.Second):
		t.Fatal("poll did not stop after cancellation")
	}
}

func TestPollImageTaskImpl_Poll_CancelledDuringQuery(t *testing.T) {
	gw := domain.NewMockInferenceGateway(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gw.EXPECT().
		GetImageTask(mock.Anything, "k", "job-1").
		RunAndReturn(func(context.Context, string, string) (domain.ImageJob, error) {
			cancel()
			return domain.ImageJob{}, context.Canceled
		}).
		Once()

	uc := NewPollImageTaskImpl(gw, testPollInterval, log.New(io.Discard, "", 0))
	outcome, err := uc.Poll(ctx, "k", "job-1")
	require.NoError(t, err)
	assert.Equal(t, PollOutcome{JobID: "job-1", State: PollState_Cancelled, Queries: 1}, outcome)
}

func TestNewPollImageTaskImpl_DefaultInterval(t *testing.T) {
	uc := NewPollImageTaskImpl(domain.NewMockInferenceGateway(t), 0, log.New(io.Discard, "", 0))
	assert.Equal(t, DefaultPollInterval, uc.interval)
}

func TestInitPollImageTask_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitPollImageTask{
		Gateway:  domain.NewMockInferenceGateway(t),
		Logger:   log.New(io.Discard, "", 0),
		Interval: time.Second,
	}
	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[PollImageTask]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
