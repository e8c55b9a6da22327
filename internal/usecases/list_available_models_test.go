package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAvailableModelsImpl_Query(t *testing.T) {
	catalogue := domain.DefaultModelCatalogue()
	uc := NewListAvailableModelsImpl(catalogue)

	got, err := uc.Query(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalogue, got)
	assert.Equal(t, "deepseek-ai/DeepSeek-V3.2", got.Defaults.Chat)
	assert.NotEmpty(t, got.Series)
}

func TestInitListAvailableModels_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitListAvailableModels{Catalogue: domain.DefaultModelCatalogue()}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[ListAvailableModels]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
