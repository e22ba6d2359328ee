package analytics

import (
	"errors"
	"time"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// ErrInvalidWindow is returned when a window's From date falls after its
// To date. This is the one input the engine rejects outright instead of
// degrading to nil fields.
var ErrInvalidWindow = errors.New("invalid window: from is after to")

// Window is an inclusive date range at day granularity. A record dated
// anywhere on the From or To day is inside the window.
type Window struct {
	From time.Time
	To   time.Time
}

// Validate reports ErrInvalidWindow when From is after To, comparing at
// day granularity so a same-day window is valid.
func (w Window) Validate() error {
	if dateOnly(w.From).After(dateOnly(w.To)) {
		return ErrInvalidWindow
	}
	return nil
}

// Days returns the number of whole days spanned by the window, floored
// to at least 1 so same-day windows never divide by zero.
func (w Window) Days() int {
	d := int(dateOnly(w.To).Sub(dateOnly(w.From)).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// Contains reports whether t falls inside the window, inclusive on both
// ends at day granularity.
func (w Window) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(dateOnly(w.From)) && !d.After(dateOnly(w.To))
}

// AllVehicles is the vehicle filter value meaning "no filter".
const AllVehicles int64 = 0

// FilterWindow keeps the derived records dated inside the window and,
// when vehicleID is not AllVehicles, belonging to that vehicle. The
// store is expected to have filtered already; this re-filter makes the
// engine independent of how precisely it did.
func FilterWindow(derived []models.DerivedRecord, w Window, vehicleID int64) []models.DerivedRecord {
	out := make([]models.DerivedRecord, 0, len(derived))
	for _, d := range derived {
		if vehicleID != AllVehicles && d.Record.VehicleID != vehicleID {
			continue
		}
		if !w.Contains(d.Record.Date) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
