package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propie/recommendation-engine/internal/api/handlers"
	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
)

type stubPropertyRepo struct {
	results    []entities.PropertyRecord
	err        error
	lastFilter repositories.PropertySearchFilter
}

func (s *stubPropertyRepo) Index(ctx context.Context, properties []entities.PropertyRecord) error {
	return nil
}

func (s *stubPropertyRepo) Search(ctx context.Context, filter repositories.PropertySearchFilter) ([]entities.PropertyRecord, error) {
	s.lastFilter = filter
	return s.results, s.err
}

func (s *stubPropertyRepo) GetByID(ctx context.Context, propertyID string) (*entities.PropertyRecord, error) {
	for i := range s.results {
		if s.results[i].PropertyID == propertyID {
			return &s.results[i], nil
		}
	}
	return nil, nil
}

func postRecommendations(t *testing.T, handler *handlers.RecommendationHandler, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/recommendations", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.GenerateRecommendations(w, req)
	return w
}

func TestRecommendationHandler_Generate_Success(t *testing.T) {
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), nil, nil)

	w := postRecommendations(t, handler, map[string]any{
		"userProfile": handlerProfile(),
		"candidates": []entities.PropertyRecord{
			handlerProperty("prop-a", 300_000),
			handlerProperty("prop-b", 600_000),
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Recommendations []struct {
			PropertyID string `json:"propertyId"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Len(t, response.Recommendations, 2)
	assert.Equal(t, "prop-a", response.Recommendations[0].PropertyID)
}

func TestRecommendationHandler_Generate_InvalidPayload(t *testing.T) {
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), nil, nil)

	req := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.GenerateRecommendations(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationHandler_Generate_InvalidProfile(t *testing.T) {
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), nil, nil)

	w := postRecommendations(t, handler, map[string]any{
		"userProfile": entities.UserPreferenceProfile{},
		"candidates":  []entities.PropertyRecord{handlerProperty("prop-a", 300_000)},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationHandler_Generate_TooManyCandidates(t *testing.T) {
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), nil, nil)

	w := postRecommendations(t, handler, map[string]any{
		"userProfile": handlerProfile(),
		"candidates":  make([]entities.PropertyRecord, 501),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationHandler_Generate_NoCandidatesNoIndex(t *testing.T) {
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), nil, nil)

	w := postRecommendations(t, handler, map[string]any{
		"userProfile": handlerProfile(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationHandler_Generate_FetchesCandidatesFromIndex(t *testing.T) {
	repo := &stubPropertyRepo{results: []entities.PropertyRecord{
		handlerProperty("indexed-1", 280_000),
	}}
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), repo, nil)

	w := postRecommendations(t, handler, map[string]any{
		"userProfile": handlerProfile(),
		"filter": map[string]any{
			"region":   "Dublin",
			"maxPrice": 400_000,
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dublin", repo.lastFilter.Region)
	assert.Equal(t, 400_000.0, repo.lastFilter.MaxPrice)

	var response struct {
		Recommendations []struct {
			PropertyID string `json:"propertyId"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Len(t, response.Recommendations, 1)
	assert.Equal(t, "indexed-1", response.Recommendations[0].PropertyID)
}

func TestRecommendationHandler_Generate_LimitApplied(t *testing.T) {
	handler := handlers.NewRecommendationHandler(newRecommendationService(t), nil, nil)

	candidates := make([]entities.PropertyRecord, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		candidates = append(candidates, handlerProperty("prop-"+id, 300_000))
	}

	w := postRecommendations(t, handler, map[string]any{
		"userProfile": handlerProfile(),
		"candidates":  candidates,
		"limit":       3,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Len(t, response.Recommendations, 3)
}
