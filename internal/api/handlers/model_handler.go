package handlers

import (
	"net/http"

	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/infrastructure/observability"
)

// ModelHandler exposes predictor maintenance endpoints.
type ModelHandler struct {
	service *services.InteractionService
	metrics *observability.Metrics
}

// NewModelHandler creates a new model handler.
func NewModelHandler(service *services.InteractionService, metrics *observability.Metrics) *ModelHandler {
	return &ModelHandler{service: service, metrics: metrics}
}

// TriggerRetrain handles POST /api/model/retrain
func (h *ModelHandler) TriggerRetrain(w http.ResponseWriter, r *http.Request) {
	retrained, err := h.service.Retrain(r.Context())
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}
	if retrained && h.metrics != nil {
		h.metrics.RetrainCount.Add(r.Context(), 1)
	}

	if !retrained {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"retrained": false,
			"reason":    "not enough rated interactions",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"retrained": true,
	})
}

// GetModelInsights handles GET /api/model/insights
func (h *ModelHandler) GetModelInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.service.ModelInsights(r.Context())
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, insights)
}
