package workers

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont"
	"github.com/stretchr/testify/assert"
)

// run starts the runnable and returns a cancel function and done channel.
func run(
	t *testing.T,
	ctx context.Context,
	runnable symbiont.Runnable,
) (context.CancelFunc, chan struct{}) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	doneChan := make(chan struct{}, 1)

	go func() {
		err := runnable.Run(runCtx)
		assert.NoError(t, err)
		doneChan <- struct{}{}
	}()

	return cancel, doneChan
}

// waitRunnableStop waits until the runnable goroutine exits.
func waitRunnableStop(t *testing.T, doneChan chan struct{}) {
	t.Helper()

	select {
	case <-doneChan:
	case <-time.After(1 * time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitForSignals collects the expected number of values from signalChan or fails on timeout.
func waitForSignals[T any](t *testing.T, signalChan chan T, expected int, timeout time.Duration) []T {
	t.Helper()

	received := make([]T, 0, expected)
	for len(received) < expected {
		select {
		case v := <-signalChan:
			received = append(received, v)
		case <-time.After(timeout):
			t.Fatalf("timeout waiting for signals; got %d, expected %d", len(received), expected)
		}
	}
	return received
}
