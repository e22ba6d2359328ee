package models

import "time"

// FuelRecord represents one fill-up event for a vehicle, as stored in
// the fuel_entries table. All quantities are canonical units: kilometers
// for odometer readings, liters for volume, and a single currency for
// amounts. Display conversion happens outside this service.
//
// Brand and Grade are free-text labels; blank values are treated as
// "Unknown" when grouping.
type FuelRecord struct {
	ID          int64
	UserID      int64
	VehicleID   int64
	Date        time.Time
	OdometerKm  float64
	Station     string
	Brand       string
	Grade       string
	Liters      float64
	TotalAmount float64
	Notes       string
	SourceFile  string
	CreatedAt   time.Time
}
