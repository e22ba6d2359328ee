package dto

import (
	"time"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// OverviewResponse is the JSON shape of GET /api/v1/stats/overview.
//
// The averages are pointers on purpose: null in the JSON means "no data
// in this window", which the UI renders differently from 0.
//
// swagger:model OverviewResponse
type OverviewResponse struct {
	TotalSpend      float64  `json:"total_spend" example:"2150.00"`
	TotalDistanceKm float64  `json:"total_distance_km" example:"50"`
	AvgCostPerLiter *float64 `json:"avg_cost_per_liter" example:"103.33"`
	AvgConsumption  *float64 `json:"avg_consumption_l_per_100km" example:"10.0"`
	AvgCostPerKm    *float64 `json:"avg_cost_per_km" example:"11.00"`
	AvgDistPerDay   *float64 `json:"avg_distance_per_day" example:"5.56"`
	From            string   `json:"from" example:"2025-06-01"`
	To              string   `json:"to" example:"2025-06-30"`
}

// NewOverviewResponse maps the engine's RollingStats onto the wire shape.
func NewOverviewResponse(s *models.RollingStats) OverviewResponse {
	return OverviewResponse{
		TotalSpend:      s.TotalSpend,
		TotalDistanceKm: s.TotalDistanceKm,
		AvgCostPerLiter: s.AvgCostPerLiter,
		AvgConsumption:  s.AvgConsumptionLPer100Km,
		AvgCostPerKm:    s.AvgCostPerKm,
		AvgDistPerDay:   s.AvgDistancePerDay,
		From:            s.From.Format("2006-01-02"),
		To:              s.To.Format("2006-01-02"),
	}
}

// BrandGradeResponse is one row of GET /api/v1/stats/brand-comparison.
//
// swagger:model BrandGradeResponse
type BrandGradeResponse struct {
	Brand           string   `json:"brand" example:"shell"`
	Grade           string   `json:"grade" example:"95"`
	FillUpCount     int      `json:"fill_up_count" example:"12"`
	AvgCostPerLiter *float64 `json:"avg_cost_per_liter" example:"1.89"`
	AvgConsumption  *float64 `json:"avg_consumption_l_per_100km" example:"7.4"`
}

// NewBrandGradeResponses converts the aggregate list, preserving order.
func NewBrandGradeResponses(aggs []models.BrandGradeAggregate) []BrandGradeResponse {
	out := make([]BrandGradeResponse, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, BrandGradeResponse{
			Brand:           a.Brand,
			Grade:           a.Grade,
			FillUpCount:     a.FillUpCount,
			AvgCostPerLiter: a.AvgCostPerLiter,
			AvgConsumption:  a.AvgConsumptionLPer100Km,
		})
	}
	return out
}

// SeriesPointResponse is one chart point in the series endpoints.
//
// swagger:model SeriesPointResponse
type SeriesPointResponse struct {
	Date  time.Time `json:"date" example:"2025-06-02T00:00:00Z"`
	Value float64   `json:"value" example:"1.92"`
}

// NewSeriesResponse converts engine series points, preserving order.
func NewSeriesResponse(points []models.SeriesPoint) []SeriesPointResponse {
	out := make([]SeriesPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPointResponse{Date: p.Date, Value: p.Value})
	}
	return out
}
