package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// embeddedCatalogue selects the catalogue compiled into the binary.
const embeddedCatalogue = "-"

// InitModelCatalogue loads the model catalogue and registers it in the dependency container.
// The embedded catalogue is used unless MODEL_CATALOGUE_PATH points at a YAML file.
type InitModelCatalogue struct {
	Logger *log.Logger `resolve:""`
	Path   string      `config:"MODEL_CATALOGUE_PATH" default:"-"`
}

// Initialize loads and validates the catalogue.
func (i InitModelCatalogue) Initialize(ctx context.Context) (context.Context, error) {
	if i.Path == "" || i.Path == embeddedCatalogue {
		depend.Register(domain.DefaultModelCatalogue())
		return ctx, nil
	}

	data, err := os.ReadFile(i.Path)
	if err != nil {
		return ctx, fmt.Errorf("read model catalogue: %w", err)
	}
	catalogue, err := domain.LoadModelCatalogue(data)
	if err != nil {
		return ctx, err
	}
	i.Logger.Printf("InitModelCatalogue: loaded %d model series from %s", len(catalogue.Series), i.Path)

	depend.Register(catalogue)
	return ctx, nil
}
