package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mlaranja/fuelpulse/internal/analytics"
	"github.com/mlaranja/fuelpulse/internal/domain/dto"
	"github.com/mlaranja/fuelpulse/internal/service"
)

// Handler provides HTTP handlers for the fuel analytics endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Resolve the caller from the X-User-ID header (set by the gateway)
//   - Delegate to the stats service
//   - Translate results into response DTOs with appropriate status codes
type Handler struct {
	svc service.StatsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.StatsService) *Handler {
	return &Handler{svc: svc}
}

const userIDHeader = "X-User-ID"

// defaultWindowDays matches the UI's default period selector.
const defaultWindowDays = 30

// userID reads the authenticated user from the gateway header. A
// missing or malformed header aborts with 400; authentication itself
// happens upstream.
func (h *Handler) userID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(userIDHeader)
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("missing X-User-ID header", nil))
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid X-User-ID header", err))
		return 0, false
	}
	return id, true
}

// statsQuery parses the shared query parameters:
//   - vehicle_id (optional): restrict to one vehicle.
//   - from / to (YYYY-MM-DD, optional, inclusive): explicit window.
//   - days (optional, default 30): window ending today, used when no
//     explicit dates are given.
//
// An inverted from/to pair is NOT rejected here: the engine owns that
// decision and reports ErrInvalidWindow, which maps to 400 below.
func (h *Handler) statsQuery(c *gin.Context) (service.StatsQuery, bool) {
	var q service.StatsQuery

	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid vehicle_id", err))
			return q, false
		}
		q.VehicleID = id
	}

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" || toRaw != "" {
		if fromRaw == "" || toRaw == "" {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("from and to must be provided together", nil))
			return q, false
		}
		from, err := time.Parse("2006-01-02", fromRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid from date, expected YYYY-MM-DD", err))
			return q, false
		}
		to, err := time.Parse("2006-01-02", toRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid to date, expected YYYY-MM-DD", err))
			return q, false
		}
		q.Window = analytics.Window{From: from, To: to}
		return q, true
	}

	days := defaultWindowDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 3650 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid days, expected 1-3650", err))
			return q, false
		}
		days = n
	}
	q.Window = service.WindowFromDays(days, time.Now())
	return q, true
}

// fail maps service errors onto status codes: the engine's invalid
// window is a caller mistake, everything else is a 500.
func fail(c *gin.Context, err error) {
	if errors.Is(err, analytics.ErrInvalidWindow) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute stats", err))
}

// GetOverview handles GET /api/v1/stats/overview requests.
//
// GetOverview godoc
// @Summary      Rolling window KPIs
// @Description  Total spend/distance and averages across the selected window
// @Tags         stats
// @Produce      json
// @Param        X-User-ID   header    int     true   "Authenticated user"
// @Param        vehicle_id  query     int     false  "Restrict to one vehicle"
// @Param        from        query     string  false  "Window start (YYYY-MM-DD)"
// @Param        to          query     string  false  "Window end (YYYY-MM-DD)"
// @Param        days        query     int     false  "Window length ending today (default 30)"
// @Success      200         {object}  dto.OverviewResponse   "Success"
// @Failure      400         {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse      "No data in window"
// @Failure      500         {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/stats/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	q, ok := h.statsQuery(c)
	if !ok {
		return
	}

	stats, err := h.svc.Overview(c.Request.Context(), userID, q)
	if err != nil {
		fail(c, err)
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data in range", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewOverviewResponse(stats))
}

// GetBrandComparison handles GET /api/v1/stats/brand-comparison.
//
// GetBrandComparison godoc
// @Summary      Brand/grade comparison
// @Description  Fill-up counts and averages grouped by normalized brand and grade
// @Tags         stats
// @Produce      json
// @Param        X-User-ID   header    int     true   "Authenticated user"
// @Param        vehicle_id  query     int     false  "Restrict to one vehicle"
// @Param        from        query     string  false  "Window start (YYYY-MM-DD)"
// @Param        to          query     string  false  "Window end (YYYY-MM-DD)"
// @Param        days        query     int     false  "Window length ending today (default 30)"
// @Success      200         {array}   dto.BrandGradeResponse "Success"
// @Failure      400         {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/stats/brand-comparison [get]
func (h *Handler) GetBrandComparison(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	q, ok := h.statsQuery(c)
	if !ok {
		return
	}

	aggs, err := h.svc.BrandComparison(c.Request.Context(), userID, q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBrandGradeResponses(aggs))
}

// GetCostPerLiterSeries handles GET /api/v1/stats/chart/cost-per-liter.
//
// GetCostPerLiterSeries godoc
// @Summary      Cost per liter over time
// @Tags         stats
// @Produce      json
// @Param        X-User-ID   header    int     true   "Authenticated user"
// @Param        vehicle_id  query     int     false  "Restrict to one vehicle"
// @Param        days        query     int     false  "Window length ending today (default 30)"
// @Success      200         {array}   dto.SeriesPointResponse "Success"
// @Failure      400         {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/stats/chart/cost-per-liter [get]
func (h *Handler) GetCostPerLiterSeries(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	q, ok := h.statsQuery(c)
	if !ok {
		return
	}

	points, err := h.svc.CostPerLiterSeries(c.Request.Context(), userID, q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSeriesResponse(points))
}

// GetConsumptionSeries handles GET /api/v1/stats/chart/consumption.
//
// GetConsumptionSeries godoc
// @Summary      Consumption over time
// @Tags         stats
// @Produce      json
// @Param        X-User-ID   header    int     true   "Authenticated user"
// @Param        vehicle_id  query     int     false  "Restrict to one vehicle"
// @Param        days        query     int     false  "Window length ending today (default 30)"
// @Success      200         {array}   dto.SeriesPointResponse "Success"
// @Failure      400         {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/stats/chart/consumption [get]
func (h *Handler) GetConsumptionSeries(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	q, ok := h.statsQuery(c)
	if !ok {
		return
	}

	points, err := h.svc.ConsumptionSeries(c.Request.Context(), userID, q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSeriesResponse(points))
}

// ListFuelEntries handles GET /api/v1/fuel-entries.
//
// ListFuelEntries godoc
// @Summary      List fill-ups with derived metrics
// @Tags         fuel-entries
// @Produce      json
// @Param        X-User-ID   header    int     true   "Authenticated user"
// @Param        vehicle_id  query     int     false  "Restrict to one vehicle"
// @Param        brand       query     string  false  "Brand filter (normalized)"
// @Param        grade       query     string  false  "Grade filter (normalized)"
// @Param        from        query     string  false  "Window start (YYYY-MM-DD)"
// @Param        to          query     string  false  "Window end (YYYY-MM-DD)"
// @Param        days        query     int     false  "Window length ending today (default 30)"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        page_size   query     int     false  "Page size (default 25, max 200)"
// @Success      200         {object}  dto.PagedFuelEntriesResponse "Success"
// @Failure      400         {object}  dto.ErrorResponse            "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse            "Internal Error"
// @Router       /api/v1/fuel-entries [get]
func (h *Handler) ListFuelEntries(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	base, ok := h.statsQuery(c)
	if !ok {
		return
	}

	q := service.FuelEntryQuery{
		VehicleID: base.VehicleID,
		Window:    base.Window,
		Brand:     c.Query("brand"),
		Grade:     c.Query("grade"),
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid page", err))
			return
		}
		q.Page = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid page_size", err))
			return
		}
		q.PageSize = n
	}

	page, err := h.svc.ListFuelEntries(c.Request.Context(), userID, q)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]dto.FuelEntryResponse, 0, len(page.Items))
	for _, d := range page.Items {
		items = append(items, dto.NewFuelEntryResponse(d))
	}
	c.JSON(http.StatusOK, dto.PagedFuelEntriesResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	})
}
