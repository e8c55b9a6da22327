package modelrunner

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	// SubmitMaxAttempts is the total number of image submission attempts.
	SubmitMaxAttempts = 3
	// DefaultSubmitRetryWait is the fixed pause between submission attempts.
	DefaultSubmitRetryWait = time.Second
)

// SubmissionRetrier sends image submissions with a bounded number of
// attempts. Network failures and 5xx responses are retried after a constant
// wait; 2xx and 4xx responses end the loop at once.
type SubmissionRetrier struct {
	client *retryablehttp.Client
}

// NewSubmissionRetrier creates a retrier on top of httpClient.
func NewSubmissionRetrier(httpClient *http.Client, wait time.Duration, logger *log.Logger) SubmissionRetrier {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.RetryMax = SubmitMaxAttempts - 1
	rc.RetryWaitMin = wait
	rc.RetryWaitMax = wait
	rc.Backoff = constantBackoff
	rc.CheckRetry = submissionRetryPolicy
	rc.ErrorHandler = submissionErrorHandler
	rc.Logger = nil
	if logger != nil {
		rc.Logger = logger
	}
	return SubmissionRetrier{client: rc}
}

// Do sends req. On return without error the response status is 2xx or 4xx.
// Exhausted retries yield a domain.SubmissionErr holding the last cause.
func (s SubmissionRetrier) Do(req *retryablehttp.Request) (*http.Response, error) {
	return s.client.Do(req)
}

func constantBackoff(minWait, _ time.Duration, _ int, _ *http.Response) time.Duration {
	return minWait
}

func submissionRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	return resp.StatusCode >= http.StatusInternalServerError, nil
}

func submissionErrorHandler(resp *http.Response, err error, numTries int) (*http.Response, error) {
	if err != nil {
		if resp != nil {
			resp.Body.Close() //nolint:errcheck
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, domain.NewSubmissionErr(numTries, domain.NewTransportErr(err))
	}

	defer resp.Body.Close() //nolint:errcheck
	body, _ := io.ReadAll(resp.Body)
	return nil, domain.NewSubmissionErr(numTries, domain.NewUpstreamHTTPErr(resp.StatusCode, string(body)))
}
