package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/usecases"
)

// NewStudioApp creates and returns a new instance of the AI Studio application.
func NewStudioApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitModelCatalogue{},
			&postgres.InitDB{},
			&postgres.InitSessionRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitInferenceGateway{},

			&usecases.InitImageTaskQueue{},
			&usecases.InitPollImageTask{},
			&usecases.InitTrackImageTask{},
			&usecases.InitManageSessions{},
			&usecases.InitStreamChat{},
			&usecases.InitStreamVision{},
			&usecases.InitSubmitImageGeneration{},
			&usecases.InitGetImageTask{},
			&usecases.InitCancelImageTask{},
			&usecases.InitListAvailableModels{},
		).
		Host(
			&http.StudioServer{},
			&workers.ImageTaskTracker{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
