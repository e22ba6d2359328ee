package analytics

import (
	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// CostPerLiterSeries projects the window-scoped derived set into chart
// points (date, unit price), ascending by date. Records without a unit
// price are skipped; points sharing a date are kept as-is.
func CostPerLiterSeries(derived []models.DerivedRecord, w Window, vehicleID int64) ([]models.SeriesPoint, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	scoped := FilterWindow(derived, w, vehicleID)

	out := make([]models.SeriesPoint, 0, len(scoped))
	for _, d := range scoped {
		if d.UnitPrice == nil {
			continue
		}
		out = append(out, models.SeriesPoint{Date: d.Record.Date, Value: *d.UnitPrice})
	}
	return out, nil
}

// ConsumptionSeries is the consumption counterpart: one point per
// record with a valid fill-up pairing.
func ConsumptionSeries(derived []models.DerivedRecord, w Window, vehicleID int64) ([]models.SeriesPoint, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	scoped := FilterWindow(derived, w, vehicleID)

	out := make([]models.SeriesPoint, 0, len(scoped))
	for _, d := range scoped {
		if d.ConsumptionLPer100Km == nil {
			continue
		}
		out = append(out, models.SeriesPoint{Date: d.Record.Date, Value: *d.ConsumptionLPer100Km})
	}
	return out, nil
}
