package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mlaranja/fuelpulse/internal/domain/models"
	"github.com/mlaranja/fuelpulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for fill-up CSV
// exports. If the header doesn't match EXACTLY (order + count), the
// import must fail.
var expectedHeaders = []string{
	"user_id",
	"vehicle_id",
	"date",
	"odometer_km",
	"station",
	"brand",
	"grade",
	"liters",
	"total_amount",
	"notes",
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// It fails on:
//   - header not matching expected order/length
//   - malformed required cells (ids, date, numbers)
//   - unrecoverable I/O errors
//
// It tolerates:
//   - empty label cells (station, brand, grade, notes)
func parseAndPersistFile(ctx context.Context, path string, repo storage.FuelRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we check lengths explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	source := filepath.Base(path)

	// Parse rows streaming; flush batches to DB.
	buf := make([]models.FuelRecord, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertFuelRecordsBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		// Enforce structure: exactly 10 columns. If not, fail the entire import.
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		fr, err := recordToFuelRecord(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		fr.SourceFile = source

		buf = append(buf, fr)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	// Final flush
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToFuelRecord converts a single CSV record (already validated
// length==10) into a models.FuelRecord. Identity and numeric columns
// are STRICT; label columns tolerate empty cells.
//
// Column order:
//
//	0 user_id      → UserID (int64, required)
//	1 vehicle_id   → VehicleID (int64, required)
//	2 date         → Date (DATE, "2006-01-02", required)
//	3 odometer_km  → OdometerKm (float, comma→dot, empty→0)
//	4 station      → Station (string, may be empty)
//	5 brand        → Brand (string, may be empty)
//	6 grade        → Grade (string, may be empty)
//	7 liters       → Liters (float, comma→dot, empty→0)
//	8 total_amount → TotalAmount (float, comma→dot, empty→0)
//	9 notes        → Notes (string, may be empty)
//
// Zero liters or amounts are loaded as-is: the analytics engine treats
// them as anomalies and nulls the affected derived fields, which is
// preferable to rejecting a whole file over one odd row.
func recordToFuelRecord(rec []string) (models.FuelRecord, error) {
	var fr models.FuelRecord

	// user_id (0) (required)
	userID, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil || userID <= 0 {
		return fr, fmt.Errorf("invalid user_id %q", rec[0])
	}
	fr.UserID = userID

	// vehicle_id (1) (required)
	vehicleID, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
	if err != nil || vehicleID <= 0 {
		return fr, fmt.Errorf("invalid vehicle_id %q", rec[1])
	}
	fr.VehicleID = vehicleID

	// date (2) (required)
	d, err := time.Parse("2006-01-02", strings.TrimSpace(rec[2]))
	if err != nil {
		return fr, fmt.Errorf("invalid date: %v", err)
	}
	fr.Date = d

	// odometer_km (3), may be empty
	if v, err := parseCell(rec[3]); err != nil {
		return fr, fmt.Errorf("invalid odometer_km: %v", err)
	} else if v < 0 {
		return fr, fmt.Errorf("negative odometer_km %q", rec[3])
	} else {
		fr.OdometerKm = v
	}

	// labels (4..6): keep as-is, the engine normalizes for grouping
	fr.Station = strings.TrimSpace(rec[4])
	fr.Brand = strings.TrimSpace(rec[5])
	fr.Grade = strings.TrimSpace(rec[6])

	// liters (7), may be empty
	if v, err := parseCell(rec[7]); err != nil {
		return fr, fmt.Errorf("invalid liters: %v", err)
	} else {
		fr.Liters = v
	}

	// total_amount (8), may be empty
	if v, err := parseCell(rec[8]); err != nil {
		return fr, fmt.Errorf("invalid total_amount: %v", err)
	} else {
		fr.TotalAmount = v
	}

	// notes (9)
	fr.Notes = strings.TrimSpace(rec[9])

	return fr, nil
}

// parseCell parses a decimal cell, tolerating an empty value (→ 0) and
// a comma decimal separator.
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
