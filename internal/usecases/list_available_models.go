package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// ListAvailableModels defines the use case for listing the model catalogue
type ListAvailableModels interface {
	Query(ctx context.Context) (domain.ModelCatalogue, error)
}

// ListAvailableModelsImpl implements the ListAvailableModels use case
type ListAvailableModelsImpl struct {
	catalogue domain.ModelCatalogue
}

// NewListAvailableModelsImpl creates a new ListAvailableModelsImpl instance
func NewListAvailableModelsImpl(catalogue domain.ModelCatalogue) *ListAvailableModelsImpl {
	return &ListAvailableModelsImpl{catalogue: catalogue}
}

// Query returns the model series with their default models
func (uc ListAvailableModelsImpl) Query(ctx context.Context) (domain.ModelCatalogue, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(attribute.Int("catalogue.series", len(uc.catalogue.Series)))
	return uc.catalogue, nil
}

// InitListAvailableModels is the initializer for the ListAvailableModels use case
type InitListAvailableModels struct {
	Catalogue domain.ModelCatalogue `resolve:""`
}

// Initialize registers the ListAvailableModels use case in the dependency container
func (i InitListAvailableModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAvailableModels](NewListAvailableModelsImpl(i.Catalogue))
	return ctx, nil
}
