package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mlaranja/fuelpulse/internal/analytics"
	"github.com/mlaranja/fuelpulse/internal/domain/dto"
	"github.com/mlaranja/fuelpulse/internal/domain/models"
	"github.com/mlaranja/fuelpulse/internal/service"
)

type mockStatsService struct {
	overview *models.RollingStats
	brands   []models.BrandGradeAggregate
	series   []models.SeriesPoint
	page     *service.PagedFuelEntries
	err      error

	lastUserID int64
	lastQuery  service.StatsQuery
	lastEntry  service.FuelEntryQuery
}

func (m *mockStatsService) Overview(_ context.Context, userID int64, q service.StatsQuery) (*models.RollingStats, error) {
	m.lastUserID, m.lastQuery = userID, q
	return m.overview, m.err
}

func (m *mockStatsService) BrandComparison(_ context.Context, userID int64, q service.StatsQuery) ([]models.BrandGradeAggregate, error) {
	m.lastUserID, m.lastQuery = userID, q
	return m.brands, m.err
}

func (m *mockStatsService) CostPerLiterSeries(_ context.Context, userID int64, q service.StatsQuery) ([]models.SeriesPoint, error) {
	m.lastUserID, m.lastQuery = userID, q
	return m.series, m.err
}

func (m *mockStatsService) ConsumptionSeries(_ context.Context, userID int64, q service.StatsQuery) ([]models.SeriesPoint, error) {
	m.lastUserID, m.lastQuery = userID, q
	return m.series, m.err
}

func (m *mockStatsService) ListFuelEntries(_ context.Context, userID int64, q service.FuelEntryQuery) (*service.PagedFuelEntries, error) {
	m.lastUserID, m.lastEntry = userID, q
	return m.page, m.err
}

var _ service.StatsService = (*mockStatsService)(nil)

func setupRouterWithMock(s service.StatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	stats := v1.Group("/stats")
	stats.GET("/overview", h.GetOverview)
	stats.GET("/brand-comparison", h.GetBrandComparison)
	stats.GET("/chart/cost-per-liter", h.GetCostPerLiterSeries)
	stats.GET("/chart/consumption", h.GetConsumptionSeries)
	v1.GET("/fuel-entries", h.ListFuelEntries)
	return r
}

func get(r *gin.Engine, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fptr(v float64) *float64 { return &v }

func TestGetOverview_TableDriven(t *testing.T) {
	okStats := &models.RollingStats{
		TotalSpend:      2150,
		TotalDistanceKm: 50,
		AvgCostPerLiter: fptr(103.33),
		From:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:              time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name   string
		svc    *mockStatsService
		query  string
		user   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing user header",
			svc:    &mockStatsService{},
			query:  "/api/v1/stats/overview",
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed user header",
			svc:    &mockStatsService{},
			query:  "/api/v1/stats/overview",
			user:   "abc",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid vehicle id",
			svc:    &mockStatsService{},
			query:  "/api/v1/stats/overview?vehicle_id=0",
			user:   "7",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid date format",
			svc:    &mockStatsService{},
			query:  "/api/v1/stats/overview?from=2025/06/01&to=2025-06-30",
			user:   "7",
			status: http.StatusBadRequest,
		},
		{
			name:   "from without to",
			svc:    &mockStatsService{},
			query:  "/api/v1/stats/overview?from=2025-06-01",
			user:   "7",
			status: http.StatusBadRequest,
		},
		{
			name:   "days out of range",
			svc:    &mockStatsService{},
			query:  "/api/v1/stats/overview?days=0",
			user:   "7",
			status: http.StatusBadRequest,
		},
		{
			name:   "inverted window from engine",
			svc:    &mockStatsService{err: analytics.ErrInvalidWindow},
			query:  "/api/v1/stats/overview?from=2025-06-30&to=2025-06-01",
			user:   "7",
			status: http.StatusBadRequest,
		},
		{
			name:   "no data",
			svc:    &mockStatsService{overview: nil},
			query:  "/api/v1/stats/overview?from=2025-06-01&to=2025-06-30",
			user:   "7",
			status: http.StatusNotFound,
		},
		{
			name:   "internal error",
			svc:    &mockStatsService{err: errors.New("db down")},
			query:  "/api/v1/stats/overview?from=2025-06-01&to=2025-06-30",
			user:   "7",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockStatsService{overview: okStats},
			query:  "/api/v1/stats/overview?from=2025-06-01&to=2025-06-30",
			user:   "7",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.OverviewResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.TotalSpend != 2150 || out.TotalDistanceKm != 50 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.AvgCostPerLiter == nil || *out.AvgCostPerLiter != 103.33 {
					t.Fatalf("unexpected avg cost per liter: %+v", out.AvgCostPerLiter)
				}
				if out.AvgConsumption != nil {
					t.Fatalf("expected null consumption, got %v", *out.AvgConsumption)
				}
				if out.From != "2025-06-01" || out.To != "2025-06-30" {
					t.Fatalf("unexpected window: %s..%s", out.From, out.To)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := get(r, tc.query, tc.user)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body %s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetOverview_ExplicitWindowPassedThrough(t *testing.T) {
	svc := &mockStatsService{overview: &models.RollingStats{}}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/stats/overview?vehicle_id=3&from=2025-06-01&to=2025-06-30", "7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastUserID != 7 || svc.lastQuery.VehicleID != 3 {
		t.Fatalf("scope not forwarded: user=%d query=%+v", svc.lastUserID, svc.lastQuery)
	}
	want := analytics.Window{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	if svc.lastQuery.Window != want {
		t.Fatalf("window not forwarded: %+v", svc.lastQuery.Window)
	}
}

func TestGetOverview_DaysDefaultWindow(t *testing.T) {
	svc := &mockStatsService{overview: &models.RollingStats{}}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/stats/overview", "7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	win := svc.lastQuery.Window
	if got := win.Days(); got != defaultWindowDays {
		t.Fatalf("expected %d day default window, got %d", defaultWindowDays, got)
	}
}

func TestGetBrandComparison(t *testing.T) {
	svc := &mockStatsService{brands: []models.BrandGradeAggregate{
		{Brand: "shell", Grade: "95", FillUpCount: 2, AvgCostPerLiter: fptr(1.89)},
		{Brand: "bp", Grade: "Unknown", FillUpCount: 1},
	}}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/stats/brand-comparison?days=90", "7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out []dto.BrandGradeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 || out[0].Brand != "shell" || out[0].FillUpCount != 2 {
		t.Fatalf("unexpected body: %+v", out)
	}
	if out[1].AvgCostPerLiter != nil {
		t.Fatalf("expected null average for unpriced group")
	}
}

func TestGetSeries(t *testing.T) {
	points := []models.SeriesPoint{
		{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Value: 1.92},
		{Date: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), Value: 1.9},
	}

	for _, path := range []string{
		"/api/v1/stats/chart/cost-per-liter",
		"/api/v1/stats/chart/consumption",
	} {
		t.Run(path, func(t *testing.T) {
			svc := &mockStatsService{series: points}
			r := setupRouterWithMock(svc)

			w := get(r, path+"?days=60", "7")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var out []dto.SeriesPointResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(out) != 2 || out[0].Value != 1.92 {
				t.Fatalf("unexpected body: %+v", out)
			}
		})
	}
}

func TestGetSeries_EmptyIsArray(t *testing.T) {
	svc := &mockStatsService{series: nil}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/stats/chart/cost-per-liter", "7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestListFuelEntries(t *testing.T) {
	rec := models.DerivedRecord{
		Record: models.FuelRecord{
			ID:          42,
			VehicleID:   3,
			Date:        time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			OdometerKm:  48620,
			Brand:       "Shell",
			Liters:      39,
			TotalAmount: 74.1,
		},
		UnitPrice:           fptr(1.9),
		DistanceSinceLastKm: fptr(520),
	}
	svc := &mockStatsService{page: &service.PagedFuelEntries{
		Items:      []models.DerivedRecord{rec},
		TotalCount: 137,
		Page:       2,
		PageSize:   25,
	}}
	r := setupRouterWithMock(svc)

	w := get(r, "/api/v1/fuel-entries?brand=shell&page=2&page_size=25&days=365", "7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if svc.lastEntry.Brand != "shell" || svc.lastEntry.Page != 2 || svc.lastEntry.PageSize != 25 {
		t.Fatalf("query not forwarded: %+v", svc.lastEntry)
	}

	var out dto.PagedFuelEntriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.TotalCount != 137 || out.Page != 2 || len(out.Items) != 1 {
		t.Fatalf("unexpected body: %+v", out)
	}
	item := out.Items[0]
	if item.ID != 42 || item.UnitPrice == nil || *item.UnitPrice != 1.9 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Consumption != nil {
		t.Fatalf("expected null consumption for unpaired record")
	}
}

func TestListFuelEntries_BadPaging(t *testing.T) {
	for _, q := range []string{"page=0", "page=x", "page_size=0", "page_size=x"} {
		t.Run(q, func(t *testing.T) {
			r := setupRouterWithMock(&mockStatsService{})
			w := get(r, "/api/v1/fuel-entries?"+q, "7")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}
