package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/usecases"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*StudioServer)(nil)

// StudioServer is the REST API HTTP server for the AI studio.
type StudioServer struct {
	Port                   int                            `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger                    `resolve:""`
	StreamChatUseCase      usecases.StreamChat            `resolve:""`
	StreamVisionUseCase    usecases.StreamVision          `resolve:""`
	SubmitImageUseCase     usecases.SubmitImageGeneration `resolve:""`
	GetImageTaskUseCase    usecases.GetImageTask          `resolve:""`
	CancelImageTaskUseCase usecases.CancelImageTask       `resolve:""`
	ListModelsUseCase      usecases.ListAvailableModels   `resolve:""`
	ManageSessionsUseCase  usecases.ManageSessions        `resolve:""`
}

// Run starts the HTTP server for the StudioServer.
func (api StudioServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", HealthHandler)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("ai-studio-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondError(w, domain.NewValidationErr(err.Error()))
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("StudioServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("StudioServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("StudioServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the StudioServer is ready by performing a health check.
func (api StudioServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// HealthHandler reports that the server is accepting requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
