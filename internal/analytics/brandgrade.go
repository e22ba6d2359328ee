package analytics

import (
	"sort"
	"strings"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// UnknownLabel is the sentinel brand/grade for records whose label is
// blank or missing.
const UnknownLabel = "Unknown"

// NormalizeLabel canonicalizes a brand or grade for grouping: trimmed,
// lowercased, with internal whitespace runs collapsed to single spaces.
// "Shell", " shell " and "SHELL" all map to "shell"; a blank label maps
// to UnknownLabel.
func NormalizeLabel(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return UnknownLabel
	}
	return strings.Join(fields, " ")
}

type brandGradeKey struct {
	brand string
	grade string
}

// BrandComparison groups the window-scoped derived set by normalized
// (brand, grade) and reduces each group into its fill-up count and
// averages. Groups are ordered by fill-up count descending, then brand
// and grade ascending, so the output is deterministic.
func BrandComparison(derived []models.DerivedRecord, w Window, vehicleID int64) ([]models.BrandGradeAggregate, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	scoped := FilterWindow(derived, w, vehicleID)

	type group struct {
		count        int
		unitPrices   mean
		consumptions mean
	}
	groups := make(map[brandGradeKey]*group)

	for _, d := range scoped {
		key := brandGradeKey{
			brand: NormalizeLabel(d.Record.Brand),
			grade: NormalizeLabel(d.Record.Grade),
		}
		g := groups[key]
		if g == nil {
			g = &group{}
			groups[key] = g
		}
		g.count++
		g.unitPrices.add(d.UnitPrice)
		g.consumptions.add(d.ConsumptionLPer100Km)
	}

	out := make([]models.BrandGradeAggregate, 0, len(groups))
	for key, g := range groups {
		out = append(out, models.BrandGradeAggregate{
			Brand:                   key.brand,
			Grade:                   key.grade,
			FillUpCount:             g.count,
			AvgCostPerLiter:         g.unitPrices.value(round2),
			AvgConsumptionLPer100Km: g.consumptions.value(round1),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FillUpCount != out[j].FillUpCount {
			return out[i].FillUpCount > out[j].FillUpCount
		}
		if out[i].Brand != out[j].Brand {
			return out[i].Brand < out[j].Brand
		}
		return out[i].Grade < out[j].Grade
	})

	return out, nil
}
