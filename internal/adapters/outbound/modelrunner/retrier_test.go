package modelrunner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceServer answers with the given status codes in order, repeating the last one.
func sequenceServer(t *testing.T, statuses []int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(hits.Add(1))
		status := statuses[min(n, len(statuses))-1]
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestSubmissionRetrier_Do(t *testing.T) {
	tests := map[string]struct {
		statuses       []int
		expectAttempts int32
		expectStatus   int
		expectErr      func(t *testing.T, err error)
	}{
		"server-errors-then-success": {
			statuses:       []int{500, 500, 200},
			expectAttempts: 3,
			expectStatus:   200,
		},
		"client-error-is-not-retried": {
			statuses:       []int{400},
			expectAttempts: 1,
			expectStatus:   400,
		},
		"success-first-time": {
			statuses:       []int{201},
			expectAttempts: 1,
			expectStatus:   201,
		},
		"server-errors-exhaust-attempts": {
			statuses:       []int{500, 502, 503},
			expectAttempts: 3,
			expectErr: func(t *testing.T, err error) {
				var subErr *domain.SubmissionErr
				require.ErrorAs(t, err, &subErr)
				assert.Equal(t, 3, subErr.Attempts)
				var upErr *domain.UpstreamHTTPErr
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, 503, upErr.StatusCode)
				assert.Equal(t, "boom", upErr.Body)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv, hits := sequenceServer(t, tt.statuses, "boom")
			retrier := NewSubmissionRetrier(srv.Client(), time.Millisecond, nil)

			req, err := retryablehttp.NewRequestWithContext(t.Context(), http.MethodPost, srv.URL, []byte(`{}`))
			require.NoError(t, err)

			resp, err := retrier.Do(req)
			assert.Equal(t, tt.expectAttempts, hits.Load())
			if tt.expectErr != nil {
				assert.Nil(t, resp)
				tt.expectErr(t, err)
				return
			}
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tt.expectStatus, resp.StatusCode)
		})
	}
}

func TestSubmissionRetrier_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	retrier := NewSubmissionRetrier(http.DefaultClient, time.Millisecond, nil)
	req, err := retryablehttp.NewRequestWithContext(t.Context(), http.MethodPost, url, []byte(`{}`))
	require.NoError(t, err)

	resp, err := retrier.Do(req)
	assert.Nil(t, resp)

	var subErr *domain.SubmissionErr
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmitMaxAttempts, subErr.Attempts)
	var transportErr *domain.TransportErr
	assert.ErrorAs(t, err, &transportErr)
}

func TestSubmissionRetrier_WaitsBetweenAttempts(t *testing.T) {
	srv, hits := sequenceServer(t, []int{500, 500, 200}, "")
	wait := 20 * time.Millisecond
	retrier := NewSubmissionRetrier(srv.Client(), wait, nil)

	req, err := retryablehttp.NewRequestWithContext(t.Context(), http.MethodPost, srv.URL, []byte(`{}`))
	require.NoError(t, err)

	start := time.Now()
	resp, err := retrier.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, int32(3), hits.Load())
	assert.GreaterOrEqual(t, time.Since(start), 2*wait)
}

func TestSubmissionRetrier_ContextCancelledDuringWait(t *testing.T) {
	srv, hits := sequenceServer(t, []int{500}, "")
	retrier := NewSubmissionRetrier(srv.Client(), time.Hour, nil)

	ctx, cancel := context.WithCancel(t.Context())
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, srv.URL, []byte(`{}`))
	require.NoError(t, err)

	go func() {
		for hits.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	_, err = retrier.Do(req)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), hits.Load())
}
