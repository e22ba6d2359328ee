package models

import "time"

// RollingStats is the window-level KPI set for a user's fill-ups.
//
// TotalSpend and TotalDistanceKm are sums and may legitimately be zero.
// The averages are nil when no record in the window was eligible for
// them (e.g. no two consecutive fill-ups with increasing odometer), so
// callers can tell "no data" apart from "zero".
type RollingStats struct {
	TotalSpend      float64
	TotalDistanceKm float64

	AvgCostPerLiter         *float64
	AvgConsumptionLPer100Km *float64
	AvgCostPerKm            *float64
	AvgDistancePerDay       *float64

	From time.Time
	To   time.Time
}

// BrandGradeAggregate compares fill-ups grouped by normalized
// (brand, grade). FillUpCount counts every record in the group; the
// averages follow the same nil-on-no-data rule as RollingStats.
type BrandGradeAggregate struct {
	Brand string
	Grade string

	FillUpCount             int
	AvgCostPerLiter         *float64
	AvgConsumptionLPer100Km *float64
}

// SeriesPoint is one chart point. Multiple points may share a date.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}
