package analytics

import (
	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// RollingStats reduces the window-scoped derived set into one KPI
// block. A window with zero matching records yields (nil, nil): the
// caller decides how to present "no data in range", which is not the
// same thing as a zero total.
func RollingStats(derived []models.DerivedRecord, w Window, vehicleID int64) (*models.RollingStats, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	scoped := FilterWindow(derived, w, vehicleID)
	if len(scoped) == 0 {
		return nil, nil
	}

	stats := models.RollingStats{From: w.From, To: w.To}

	var unitPrices, consumptions, costsPerKm mean
	for _, d := range scoped {
		stats.TotalSpend += d.Record.TotalAmount
		if d.DistanceSinceLastKm != nil {
			stats.TotalDistanceKm += *d.DistanceSinceLastKm
		}
		unitPrices.add(d.UnitPrice)
		consumptions.add(d.ConsumptionLPer100Km)
		costsPerKm.add(d.CostPerKm)
	}

	stats.TotalSpend = round2(stats.TotalSpend)
	stats.AvgCostPerLiter = unitPrices.value(round2)
	stats.AvgConsumptionLPer100Km = consumptions.value(round1)
	stats.AvgCostPerKm = costsPerKm.value(round2)

	// Distance per day is only meaningful once at least one valid
	// fill-up pairing exists; until then it is "no data", not 0 km/day.
	if stats.TotalDistanceKm > 0 {
		perDay := round2(stats.TotalDistanceKm / float64(w.Days()))
		stats.AvgDistancePerDay = &perDay
	}

	return &stats, nil
}

// mean accumulates optional values and distinguishes "no eligible
// values" (nil result) from a genuine zero mean.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.n++
}

func (m *mean) value(round func(float64) float64) *float64 {
	if m.n == 0 {
		return nil
	}
	v := round(m.sum / float64(m.n))
	return &v
}
