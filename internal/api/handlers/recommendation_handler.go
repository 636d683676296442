package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
	"github.com/propie/recommendation-engine/internal/infrastructure/observability"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

const maxCandidatesPerRequest = 500

// RecommendationHandler handles recommendation requests.
type RecommendationHandler struct {
	service    *services.RecommendationService
	properties repositories.PropertyRepository
	metrics    *observability.Metrics
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(service *services.RecommendationService, properties repositories.PropertyRepository, metrics *observability.Metrics) *RecommendationHandler {
	return &RecommendationHandler{
		service:    service,
		properties: properties,
		metrics:    metrics,
	}
}

type recommendationRequest struct {
	UserProfile entities.UserPreferenceProfile `json:"userProfile"`
	Candidates  []entities.PropertyRecord      `json:"candidates"`
	Filter      *candidateFilter               `json:"filter"`
	Limit       int                            `json:"limit"`
	// IncludeReasons defaults to true when omitted.
	IncludeReasons *bool `json:"includeReasons"`
}

type candidateFilter struct {
	Region       string  `json:"region"`
	PropertyType string  `json:"propertyType"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	MinBedrooms  int     `json:"minBedrooms"`
	Limit        int     `json:"limit"`
}

// GenerateRecommendations handles POST /api/recommendations
func (h *RecommendationHandler) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	var payload recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if len(payload.Candidates) > maxCandidatesPerRequest {
		respondWithError(w, http.StatusBadRequest, "too many candidates in a single request")
		return
	}

	candidates := payload.Candidates
	if len(candidates) == 0 {
		if h.properties == nil {
			respondWithError(w, http.StatusBadRequest, "no candidates provided and no property index is configured")
			return
		}
		found, err := h.properties.Search(r.Context(), searchFilter(payload.Filter))
		if err != nil {
			respondWithError(w, http.StatusBadGateway, "candidate retrieval failed")
			return
		}
		candidates = found
	}

	opts := services.DefaultGenerateOptions()
	if payload.Limit > 0 {
		opts.Limit = payload.Limit
	}
	if payload.IncludeReasons != nil {
		opts.IncludeReasons = *payload.IncludeReasons
	}

	result, err := h.service.GenerateRecommendations(r.Context(), payload.UserProfile, candidates, opts)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	if h.metrics != nil {
		observability.RecordScoringMetric(r.Context(), h.metrics, len(result.Recommendations), len(result.Excluded))
	}

	respondWithJSON(w, http.StatusOK, result)
}

func searchFilter(f *candidateFilter) repositories.PropertySearchFilter {
	if f == nil {
		return repositories.PropertySearchFilter{}
	}
	return repositories.PropertySearchFilter{
		Region:       f.Region,
		PropertyType: entities.PropertyType(f.PropertyType),
		MinPrice:     f.MinPrice,
		MaxPrice:     f.MaxPrice,
		MinBedrooms:  f.MinBedrooms,
		Limit:        f.Limit,
	}
}

func statusForError(err error) int {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			return http.StatusNotFound
		case apperrors.ErrorTypeValidation:
			return http.StatusBadRequest
		case apperrors.ErrorTypeExternal:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
