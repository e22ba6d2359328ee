package dto

import (
	"time"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// FuelEntryResponse is one fill-up in GET /api/v1/fuel-entries,
// including the derived fields computed by the analytics engine. The
// derived fields are null for records without a valid predecessor.
//
// swagger:model FuelEntryResponse
type FuelEntryResponse struct {
	ID          int64     `json:"id" example:"42"`
	VehicleID   int64     `json:"vehicle_id" example:"3"`
	Date        time.Time `json:"date"`
	OdometerKm  float64   `json:"odometer_km" example:"48150"`
	Station     string    `json:"station,omitempty" example:"Shell Centraal"`
	Brand       string    `json:"brand,omitempty" example:"shell"`
	Grade       string    `json:"grade,omitempty" example:"95"`
	Liters      float64   `json:"liters" example:"41.2"`
	TotalAmount float64   `json:"total_amount" example:"78.90"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	DistanceSinceLastKm *float64 `json:"distance_since_last_km"`
	UnitPrice           *float64 `json:"unit_price"`
	Consumption         *float64 `json:"consumption_l_per_100km"`
	CostPerKm           *float64 `json:"cost_per_km"`
}

// NewFuelEntryResponse maps a derived record onto the wire shape.
func NewFuelEntryResponse(d models.DerivedRecord) FuelEntryResponse {
	r := d.Record
	return FuelEntryResponse{
		ID:          r.ID,
		VehicleID:   r.VehicleID,
		Date:        r.Date,
		OdometerKm:  r.OdometerKm,
		Station:     r.Station,
		Brand:       r.Brand,
		Grade:       r.Grade,
		Liters:      r.Liters,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,

		DistanceSinceLastKm: d.DistanceSinceLastKm,
		UnitPrice:           d.UnitPrice,
		Consumption:         d.ConsumptionLPer100Km,
		CostPerKm:           d.CostPerKm,
	}
}

// PagedFuelEntriesResponse wraps a page of fill-ups.
//
// swagger:model PagedFuelEntriesResponse
type PagedFuelEntriesResponse struct {
	Items      []FuelEntryResponse `json:"items"`
	TotalCount int                 `json:"total_count" example:"137"`
	Page       int                 `json:"page" example:"1"`
	PageSize   int                 `json:"page_size" example:"25"`
}
