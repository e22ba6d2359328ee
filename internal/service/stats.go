package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mlaranja/fuelpulse/internal/analytics"
	"github.com/mlaranja/fuelpulse/internal/domain/models"
	"github.com/mlaranja/fuelpulse/internal/storage"
)

// StatsQuery scopes an analytics request: an inclusive date window and
// an optional vehicle (analytics.AllVehicles means every vehicle the
// user owns).
type StatsQuery struct {
	VehicleID int64
	Window    analytics.Window
}

// FuelEntryQuery scopes the fill-up listing. Brand and Grade are
// matched after normalization, so "Shell" finds " shell " records.
type FuelEntryQuery struct {
	VehicleID int64
	Window    analytics.Window
	Brand     string
	Grade     string
	Page      int
	PageSize  int
}

// PagedFuelEntries is one page of fill-ups with their derived metrics.
type PagedFuelEntries struct {
	Items      []models.DerivedRecord
	TotalCount int
	Page       int
	PageSize   int
}

// StatsService defines the analytics operations exposed over HTTP.
// Every call fetches a fresh snapshot from the store, derives metrics
// once, and reduces; no state survives between calls.
type StatsService interface {
	Overview(ctx context.Context, userID int64, q StatsQuery) (*models.RollingStats, error)
	BrandComparison(ctx context.Context, userID int64, q StatsQuery) ([]models.BrandGradeAggregate, error)
	CostPerLiterSeries(ctx context.Context, userID int64, q StatsQuery) ([]models.SeriesPoint, error)
	ConsumptionSeries(ctx context.Context, userID int64, q StatsQuery) ([]models.SeriesPoint, error)
	ListFuelEntries(ctx context.Context, userID int64, q FuelEntryQuery) (*PagedFuelEntries, error)
}

type statsService struct {
	repo storage.FuelRepository
}

func NewStatsService(repo storage.FuelRepository) StatsService {
	return &statsService{repo: repo}
}

// fetchDerived validates the window, pulls the user's records from the
// store (pushing the filters down as a hint) and runs the shared
// derivation pass. The engine re-filters the window afterwards, so a
// store that ignores the date hint still produces correct results.
func (s *statsService) fetchDerived(userID int64, q StatsQuery) ([]models.DerivedRecord, error) {
	if err := q.Window.Validate(); err != nil {
		return nil, err
	}

	from, to := q.Window.From, q.Window.To
	records, err := s.repo.ListFuelRecords(userID, q.VehicleID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list fuel records: %w", err)
	}
	return analytics.Derive(records), nil
}

func (s *statsService) Overview(_ context.Context, userID int64, q StatsQuery) (*models.RollingStats, error) {
	derived, err := s.fetchDerived(userID, q)
	if err != nil {
		return nil, err
	}
	return analytics.RollingStats(derived, q.Window, q.VehicleID)
}

func (s *statsService) BrandComparison(_ context.Context, userID int64, q StatsQuery) ([]models.BrandGradeAggregate, error) {
	derived, err := s.fetchDerived(userID, q)
	if err != nil {
		return nil, err
	}
	return analytics.BrandComparison(derived, q.Window, q.VehicleID)
}

func (s *statsService) CostPerLiterSeries(_ context.Context, userID int64, q StatsQuery) ([]models.SeriesPoint, error) {
	derived, err := s.fetchDerived(userID, q)
	if err != nil {
		return nil, err
	}
	return analytics.CostPerLiterSeries(derived, q.Window, q.VehicleID)
}

func (s *statsService) ConsumptionSeries(_ context.Context, userID int64, q StatsQuery) ([]models.SeriesPoint, error) {
	derived, err := s.fetchDerived(userID, q)
	if err != nil {
		return nil, err
	}
	return analytics.ConsumptionSeries(derived, q.Window, q.VehicleID)
}

// ListFuelEntries pages through the window-scoped derived set, newest
// first, optionally narrowed to a normalized brand/grade. Derived
// metrics are computed before pagination so a page boundary never
// breaks a fill-up pairing.
func (s *statsService) ListFuelEntries(_ context.Context, userID int64, q FuelEntryQuery) (*PagedFuelEntries, error) {
	if err := q.Window.Validate(); err != nil {
		return nil, err
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 200 {
		q.PageSize = 25
	}

	from, to := q.Window.From, q.Window.To
	records, err := s.repo.ListFuelRecords(userID, q.VehicleID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list fuel records: %w", err)
	}

	derived := analytics.FilterWindow(analytics.Derive(records), q.Window, q.VehicleID)

	var brand, grade string
	if q.Brand != "" {
		brand = analytics.NormalizeLabel(q.Brand)
	}
	if q.Grade != "" {
		grade = analytics.NormalizeLabel(q.Grade)
	}

	filtered := derived[:0:0]
	for _, d := range derived {
		if brand != "" && analytics.NormalizeLabel(d.Record.Brand) != brand {
			continue
		}
		if grade != "" && analytics.NormalizeLabel(d.Record.Grade) != grade {
			continue
		}
		filtered = append(filtered, d)
	}

	// Listing reads newest first, unlike the chronological derivation.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].Record, filtered[j].Record
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})

	total := len(filtered)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return &PagedFuelEntries{
		Items:      filtered[start:end],
		TotalCount: total,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}, nil
}

// WindowFromDays builds the default window used when the API caller
// passes days=N instead of explicit dates: N days back, ending today.
func WindowFromDays(days int, now time.Time) analytics.Window {
	if days < 1 {
		days = 1
	}
	to := now.UTC()
	return analytics.Window{From: to.AddDate(0, 0, -days), To: to}
}
