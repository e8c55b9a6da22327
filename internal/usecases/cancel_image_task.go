package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CancelImageTask defines the interface for the CancelImageTask use case
type CancelImageTask interface {
	// Execute stops tracking a job. The remote job itself keeps running.
	Execute(ctx context.Context, jobID string) error
}

// CancelImageTaskImpl is the implementation of the CancelImageTask use case
type CancelImageTaskImpl struct {
	registry *ImageTaskRegistry
}

// NewCancelImageTaskImpl creates a new instance of CancelImageTaskImpl
func NewCancelImageTaskImpl(registry *ImageTaskRegistry) CancelImageTaskImpl {
	return CancelImageTaskImpl{registry: registry}
}

// Execute implements CancelImageTask.
func (uc CancelImageTaskImpl) Execute(ctx context.Context, jobID string) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	var err error
	if !uc.registry.Cancel(jobID) {
		err = domain.NewNotFoundErr(fmt.Sprintf("image task %s is not being tracked", jobID))
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitCancelImageTask is the initializer for the CancelImageTask use case
type InitCancelImageTask struct {
	Registry *ImageTaskRegistry `resolve:""`
}

// Initialize registers the CancelImageTask use case in the dependency container
func (i InitCancelImageTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CancelImageTask](NewCancelImageTaskImpl(i.Registry))
	return ctx, nil
}
