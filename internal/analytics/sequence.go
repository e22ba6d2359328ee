package analytics

import (
	"sort"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// SequenceByVehicle partitions records by vehicle and sorts each
// group chronologically. Ties on the date are broken by record ID
// (insertion order), so the output is deterministic no matter how the
// input was ordered. Records are copied, never mutated or dropped.
func SequenceByVehicle(records []models.FuelRecord) map[int64][]models.FuelRecord {
	groups := make(map[int64][]models.FuelRecord)
	for _, r := range records {
		groups[r.VehicleID] = append(groups[r.VehicleID], r)
	}
	for _, seq := range groups {
		sort.Slice(seq, func(i, j int) bool {
			if !seq[i].Date.Equal(seq[j].Date) {
				return seq[i].Date.Before(seq[j].Date)
			}
			return seq[i].ID < seq[j].ID
		})
	}
	return groups
}
