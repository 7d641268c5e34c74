package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"destfinder/internal/models/request_models"
	"destfinder/internal/models/response_models"
	"destfinder/internal/services"
	"destfinder/pkg/utils"
)

type stubSession struct {
	rec *response_models.Recommendation
	err error
}

func (s *stubSession) Submit(ctx context.Context, prefs request_models.TravelerPreferences) (*response_models.Recommendation, error) {
	return s.rec, s.err
}

func (s *stubSession) Current() (*response_models.Recommendation, error) {
	if s.rec == nil {
		return nil, utils.ErrNoRecommendation
	}
	return s.rec, nil
}

func (s *stubSession) Snapshot() response_models.SessionSnapshot {
	return response_models.SessionSnapshot{State: "collecting"}
}

func (s *stubSession) Reset() { s.rec = nil }

func testRecommendation() *response_models.Recommendation {
	return &response_models.Recommendation{
		Destination:         "Paris, France",
		MatchScore:          "9/10",
		WhyPerfect:          []string{"Rich in history"},
		Coordinates:         [2]float64{48.8566, 2.3522},
		ItineraryHighlights: []string{"Day 1: Eiffel Tower"},
		LocalSecret:         "Hidden garden",
		Warning:             "Pickpockets common",
	}
}

func setupRouter(session services.SessionServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewRecommendationController(session, services.NewExportService())

	r := gin.New()
	r.POST("/api/recommendations", controller.SubmitHandler)
	r.GET("/api/recommendations/current/marker", controller.MarkerHandler)
	r.GET("/api/recommendations/current/record", controller.RecordHandler)
	return r
}

func TestSubmitHandler_Success(t *testing.T) {
	router := setupRouter(&stubSession{rec: testRecommendation()})

	body := `{
		"traveler_type": "Solo",
		"duration_days": 7,
		"budget": "Comfort",
		"continent": "Europe",
		"season": "Summer",
		"destination_type": "Beaches",
		"interests": ["Food & Street Eats", "Local Culture"]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestSubmitHandler_MalformedBody(t *testing.T) {
	router := setupRouter(&stubSession{rec: testRecommendation()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitHandler_RuntimeFailuresCollapseToRetryNotice(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"service unavailable", utils.ErrServiceUnavailable, http.StatusBadGateway},
		{"malformed response", utils.ErrMalformedResponse, http.StatusBadGateway},
		{"schema violation", utils.ErrSchemaViolation, http.StatusBadGateway},
		{"configuration missing", utils.ErrConfigurationMissing, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubSession{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(`{"traveler_type":"Solo"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			var resp utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, utils.RetryNotice, resp.Message)
		})
	}
}

func TestMarkerHandler_NoRecommendationYet(t *testing.T) {
	router := setupRouter(&stubSession{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/current/marker", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordHandler_ServesCanonicalJSON(t *testing.T) {
	router := setupRouter(&stubSession{rec: testRecommendation()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/current/record", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "travel_plan.json")

	var rec response_models.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, *testRecommendation(), rec)
}
