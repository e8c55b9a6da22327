package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelImageTaskImpl_Execute(t *testing.T) {
	registry := NewImageTaskRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.True(t, registry.Add("job-1", cancel))

	uc := NewCancelImageTaskImpl(registry)

	require.NoError(t, uc.Execute(context.Background(), "job-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	err := uc.Execute(context.Background(), "job-1")
	assert.Equal(t, domain.NewNotFoundErr("image task job-1 is not being tracked"), err)
}

func TestInitCancelImageTask_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitCancelImageTask{Registry: NewImageTaskRegistry()}.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[CancelImageTask]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
