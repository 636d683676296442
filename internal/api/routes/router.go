package routes

import (
	"net/http"

	"github.com/propie/recommendation-engine/internal/api/handlers"
	"github.com/propie/recommendation-engine/internal/api/middleware"
	"github.com/propie/recommendation-engine/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	recommendationHandler *handlers.RecommendationHandler
	interactionHandler    *handlers.InteractionHandler
	modelHandler          *handlers.ModelHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	recommendationHandler *handlers.RecommendationHandler,
	interactionHandler *handlers.InteractionHandler,
	modelHandler *handlers.ModelHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		recommendationHandler: recommendationHandler,
		interactionHandler:    interactionHandler,
		modelHandler:          modelHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Recommendation endpoints
	r.mux.HandleFunc("POST /api/recommendations", r.recommendationHandler.GenerateRecommendations)

	// Interaction endpoints
	r.mux.HandleFunc("POST /api/interactions", r.interactionHandler.RecordInteraction)
	r.mux.HandleFunc("GET /api/users/{id}/insights", r.interactionHandler.GetUserInsights)

	// Model endpoints
	r.mux.HandleFunc("POST /api/model/retrain", r.modelHandler.TriggerRetrain)
	r.mux.HandleFunc("GET /api/model/insights", r.modelHandler.GetModelInsights)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// CORS wraps everything so preflight requests never reach the mux
	handler = middleware.CORSMiddleware(handler)

	return handler
}
