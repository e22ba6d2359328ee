package analytics

import (
	"errors"
	"testing"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

func TestRollingStats_InvalidWindow(t *testing.T) {
	w := Window{From: day(10), To: day(1)}
	if _, err := RollingStats(nil, w, AllVehicles); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("err=%v, want ErrInvalidWindow", err)
	}
}

func TestRollingStats_EmptyWindow(t *testing.T) {
	derived := Derive([]models.FuelRecord{rec(1, 1, day(1), 100, 10, 1000)})
	w := Window{From: day(20), To: day(25)}

	stats, err := RollingStats(derived, w, AllVehicles)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats != nil {
		t.Fatalf("empty window must yield nil, not a zero-filled result: %+v", stats)
	}
}

func TestRollingStats_Totals(t *testing.T) {
	derived := Derive([]models.FuelRecord{
		rec(1, 1, day(1), 100, 10, 1000),
		rec(2, 1, day(3), 150, 5, 550),
		rec(3, 1, day(5), 140, 6, 600), // backwards: spends count, distance doesn't
	})
	w := Window{From: day(1), To: day(10)}

	stats, err := RollingStats(derived, w, AllVehicles)
	if err != nil || stats == nil {
		t.Fatalf("stats=%v err=%v", stats, err)
	}
	if stats.TotalSpend != 2150 {
		t.Fatalf("total spend=%v, want 2150 (unconditional sum)", stats.TotalSpend)
	}
	if stats.TotalDistanceKm != 50 {
		t.Fatalf("total distance=%v, want 50 (valid pairings only)", stats.TotalDistanceKm)
	}
	// Averages over [100, 110, 100] and the single valid pairing.
	if got := fval(t, stats.AvgCostPerLiter); got != round2((100.0+110+100)/3) {
		t.Fatalf("avg cost/L=%v", got)
	}
	if got := fval(t, stats.AvgConsumptionLPer100Km); got != 10.0 {
		t.Fatalf("avg consumption=%v, want 10.0", got)
	}
	if got := fval(t, stats.AvgCostPerKm); got != 11.0 {
		t.Fatalf("avg cost/km=%v, want 11.0", got)
	}
	// 9 whole days in [day 1, day 10]: 50 km / 9.
	if got := fval(t, stats.AvgDistancePerDay); got != round2(50.0/9) {
		t.Fatalf("avg distance/day=%v, want %v", got, round2(50.0/9))
	}
}

func TestRollingStats_NoValidPairings(t *testing.T) {
	// One record per vehicle: spends exist, every distance metric is
	// "no data".
	derived := Derive([]models.FuelRecord{
		rec(1, 1, day(1), 100, 10, 1000),
		rec(2, 2, day(2), 500, 20, 2000),
	})
	w := Window{From: day(1), To: day(5)}

	stats, err := RollingStats(derived, w, AllVehicles)
	if err != nil || stats == nil {
		t.Fatalf("stats=%v err=%v", stats, err)
	}
	if stats.TotalSpend != 3000 || stats.TotalDistanceKm != 0 {
		t.Fatalf("totals=%v/%v", stats.TotalSpend, stats.TotalDistanceKm)
	}
	if stats.AvgConsumptionLPer100Km != nil || stats.AvgCostPerKm != nil || stats.AvgDistancePerDay != nil {
		t.Fatalf("distance-based averages must be nil without pairings: %+v", stats)
	}
	if stats.AvgCostPerLiter == nil {
		t.Fatalf("cost per liter is self-contained and must be present")
	}
}

func TestRollingStats_InclusiveBounds(t *testing.T) {
	derived := Derive([]models.FuelRecord{
		rec(1, 1, day(1), 100, 10, 1000),
		rec(2, 1, day(10), 150, 5, 550),
	})
	w := Window{From: day(1), To: day(10)}

	stats, err := RollingStats(derived, w, AllVehicles)
	if err != nil || stats == nil {
		t.Fatalf("stats=%v err=%v", stats, err)
	}
	if stats.TotalSpend != 1550 {
		t.Fatalf("records dated exactly on from/to must count, spend=%v", stats.TotalSpend)
	}
}

func TestRollingStats_SameDayWindow(t *testing.T) {
	derived := Derive([]models.FuelRecord{
		rec(1, 1, day(1), 100, 10, 1000),
		rec(2, 1, day(1), 150, 5, 550),
	})
	w := Window{From: day(1), To: day(1)}

	stats, err := RollingStats(derived, w, AllVehicles)
	if err != nil || stats == nil {
		t.Fatalf("stats=%v err=%v", stats, err)
	}
	// Day count floors to 1: 50 km / 1 day.
	if got := fval(t, stats.AvgDistancePerDay); got != 50 {
		t.Fatalf("avg distance/day=%v, want 50", got)
	}
}

func TestRollingStats_VehicleFilter(t *testing.T) {
	derived := Derive([]models.FuelRecord{
		rec(1, 1, day(1), 100, 10, 1000),
		rec(2, 2, day(2), 500, 20, 2000),
	})
	w := Window{From: day(1), To: day(5)}

	stats, err := RollingStats(derived, w, 2)
	if err != nil || stats == nil {
		t.Fatalf("stats=%v err=%v", stats, err)
	}
	if stats.TotalSpend != 2000 {
		t.Fatalf("vehicle filter leaked: spend=%v", stats.TotalSpend)
	}

	all, err := RollingStats(derived, w, AllVehicles)
	if err != nil || all == nil || all.TotalSpend != 3000 {
		t.Fatalf("AllVehicles must keep everything: %+v err=%v", all, err)
	}
}
