package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mlaranja/fuelpulse/internal/domain/dto"
	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns stats so the handler returns 200
	svc := &mockStatsService{overview: &models.RollingStats{TotalSpend: 2150, TotalDistanceKm: 50}}
	h := NewHandler(svc)
	r := NewRouter(h)

	// Hit the overview route through the router created by NewRouter
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?from=2025-06-01&to=2025-06-30", nil)
	req.Header.Set("X-User-ID", "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	// Ensure JSON body has the stats fields
	var out dto.OverviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.TotalSpend != 2150 || out.TotalDistanceKm != 50 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockStatsService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
