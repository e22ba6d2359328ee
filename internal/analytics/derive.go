package analytics

import (
	"sort"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// DeriveVehicle computes the per-fill metrics for one vehicle's
// chronologically ordered sequence.
//
// Unit price needs only the record itself: it is set whenever the volume
// is positive. The distance trio (distance since last fill, consumption
// per 100 km, cost per km) needs a predecessor with a strictly lower
// odometer reading; an equal or decreased reading is a data anomaly that
// suppresses the trio for that record and nothing else. The "previous"
// cursor always advances, so the record after an anomaly compares
// against the anomaly, not against the last valid pairing.
//
// This function never fails: bad inputs surface as nil fields.
func DeriveVehicle(seq []models.FuelRecord) []models.DerivedRecord {
	out := make([]models.DerivedRecord, 0, len(seq))
	var prev *models.FuelRecord

	for i := range seq {
		cur := seq[i]
		d := models.DerivedRecord{Record: cur}

		if cur.Liters > 0 {
			up := round2(cur.TotalAmount / cur.Liters)
			d.UnitPrice = &up
		}

		if prev != nil && cur.OdometerKm > prev.OdometerKm {
			dist := cur.OdometerKm - prev.OdometerKm
			cons := round1(cur.Liters / dist * 100)
			cost := round2(cur.TotalAmount / dist)
			d.DistanceSinceLastKm = &dist
			d.ConsumptionLPer100Km = &cons
			d.CostPerKm = &cost
		}

		prev = &seq[i]
		out = append(out, d)
	}
	return out
}

// Derive runs the full shared pass: sequence every vehicle, derive each
// sequence independently, then flatten into one set ordered by date
// (ties by record ID). All aggregators and the series extractors reduce
// over this one result.
func Derive(records []models.FuelRecord) []models.DerivedRecord {
	groups := SequenceByVehicle(records)

	out := make([]models.DerivedRecord, 0, len(records))
	for _, seq := range groups {
		out = append(out, DeriveVehicle(seq)...)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Record, out[j].Record
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
	return out
}
