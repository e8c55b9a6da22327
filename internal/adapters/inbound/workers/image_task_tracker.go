package workers

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/usecases"
)

// ImageTaskTracker consumes submitted image jobs and follows each one on its
// own goroutine until it finishes, is cancelled, or the worker stops.
type ImageTaskTracker struct {
	Queue               usecases.ImageTaskQueue     `resolve:""`
	Registry            *usecases.ImageTaskRegistry `resolve:""`
	TrackImageTask      usecases.TrackImageTask     `resolve:""`
	Logger              *log.Logger                 `resolve:""`
	workerExecutionChan chan usecases.PollOutcome
	duplicateJobChan    chan string
}

// Run starts consuming the image task queue. On shutdown every tracked job is
// cancelled and Run waits for their goroutines to exit.
func (w ImageTaskTracker) Run(ctx context.Context) error {
	w.Logger.Println("ImageTaskTracker: running...")

	var wg sync.WaitGroup
	defer func() {
		w.Registry.CancelAll()
		wg.Wait()
		w.Logger.Println("ImageTaskTracker: stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-w.Queue:
			// both cases may be ready at once; never start a job after shutdown
			if ctx.Err() != nil {
				return nil
			}
			jobCtx, cancel := context.WithCancel(ctx)
			if !w.Registry.Add(req.JobID, cancel) {
				cancel()
				w.Logger.Printf("ImageTaskTracker: job %s is already tracked", req.JobID)
				if w.duplicateJobChan != nil {
					w.duplicateJobChan <- req.JobID
				}
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer w.Registry.Remove(req.JobID)
				defer cancel()
				w.track(jobCtx, req)
			}()
		}
	}
}

func (w ImageTaskTracker) track(ctx context.Context, req usecases.ImageTaskRequest) {
	outcome, err := w.TrackImageTask.Execute(ctx, req)
	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		w.Logger.Printf("ImageTaskTracker: job %s: %v", req.JobID, err)
	default:
		w.Logger.Printf("ImageTaskTracker: job %s finished as %s after %d queries", req.JobID, outcome.State, outcome.Queries)
	}

	if w.workerExecutionChan != nil {
		w.workerExecutionChan <- outcome
	}
}
