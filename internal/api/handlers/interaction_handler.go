package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// InteractionHandler handles interaction recording and user insights.
type InteractionHandler struct {
	service *services.InteractionService
}

// NewInteractionHandler creates a new interaction handler.
func NewInteractionHandler(service *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{service: service}
}

type interactionRequest struct {
	UserID          string                        `json:"userId"`
	PropertyID      string                        `json:"propertyId"`
	InteractionType string                        `json:"interactionType"`
	Feedback        *entities.InteractionFeedback `json:"feedback"`
}

// RecordInteraction handles POST /api/interactions
func (h *InteractionHandler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var payload interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := h.service.Record(r.Context(), payload.UserID, payload.PropertyID,
		entities.InteractionType(payload.InteractionType), payload.Feedback)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"status": "recorded",
	})
}

// GetUserInsights handles GET /api/users/{id}/insights
func (h *InteractionHandler) GetUserInsights(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user id is required")
		return
	}

	insights, err := h.service.UserInsights(r.Context(), userID)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, insights)
}
