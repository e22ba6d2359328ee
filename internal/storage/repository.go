package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

// FuelRepository defines the DB contract the analytics service depends
// on. Vehicle ownership is enforced here (rows are scoped by user_id);
// precise window filtering is not guaranteed, so the engine re-filters.
type FuelRepository interface {
	ListFuelRecords(userID int64, vehicleID int64, from *time.Time, to *time.Time) ([]models.FuelRecord, error)
	InsertFuelRecordsBatch(records []models.FuelRecord) error
	HasImportForFile(filename string) (bool, error)
	UpsertImportLog(filename string, rowCount int) error
	DeleteFuelRecordsBySource(filename string) error
}

type fuelRepository struct {
	db *sql.DB
}

func NewFuelRepository(db *sql.DB) FuelRepository {
	return &fuelRepository{db: db}
}

// ListFuelRecords returns a user's fill-ups, optionally narrowed by
// vehicle and date range, ordered by date then id so downstream
// sequencing is deterministic.
func (r *fuelRepository) ListFuelRecords(userID int64, vehicleID int64, from *time.Time, to *time.Time) ([]models.FuelRecord, error) {
	// Build dynamic conditions. $1 is always user_id; subsequent
	// placeholders depend on which filters are present.
	conditions := "user_id = $1"
	args := []interface{}{userID}

	if vehicleID != 0 {
		conditions += fmt.Sprintf(" AND vehicle_id = $%d", len(args)+1)
		args = append(args, vehicleID)
	}
	if from != nil {
		conditions += fmt.Sprintf(" AND date >= $%d", len(args)+1)
		args = append(args, *from)
	}
	if to != nil {
		conditions += fmt.Sprintf(" AND date <= $%d", len(args)+1)
		args = append(args, *to)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, vehicle_id, date, odometer_km, station, brand, grade,
		       liters, total_amount, notes, source_file, created_at
		FROM fuel_entries
		WHERE %s
		ORDER BY date, id
	`, conditions)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.FuelRecord
	for rows.Next() {
		var rec models.FuelRecord
		var station, brand, grade, notes, sourceFile sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.VehicleID,
			&rec.Date,
			&rec.OdometerKm,
			&station,
			&brand,
			&grade,
			&rec.Liters,
			&rec.TotalAmount,
			&notes,
			&sourceFile,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Station = station.String
		rec.Brand = brand.String
		rec.Grade = grade.String
		rec.Notes = notes.String
		rec.SourceFile = sourceFile.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertFuelRecordsBatch inserts multiple fill-ups in a single
// transaction using COPY.
func (r *fuelRepository) InsertFuelRecordsBatch(records []models.FuelRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"fuel_entries",
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
		"source_file",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// helper to map empty strings to NULL (nil)
	toNullString := func(s string) interface{} {
		if s == "" {
			return nil
		}
		return s
	}

	for _, rec := range records {
		if _, err := stmt.Exec(
			rec.UserID,
			rec.VehicleID,
			rec.Date,
			rec.OdometerKm,
			toNullString(rec.Station),
			toNullString(rec.Brand),
			toNullString(rec.Grade),
			rec.Liters,
			rec.TotalAmount,
			toNullString(rec.Notes),
			toNullString(rec.SourceFile),
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasImportForFile checks if an import was already recorded for a file.
func (r *fuelRepository) HasImportForFile(filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertImportLog records (or updates) an import entry for a file.
func (r *fuelRepository) UpsertImportLog(filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count   = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}

// DeleteFuelRecordsBySource removes all fill-ups loaded from a file,
// used when an import is forced to rerun.
func (r *fuelRepository) DeleteFuelRecordsBySource(filename string) error {
	_, err := r.db.Exec(`DELETE FROM fuel_entries WHERE source_file = $1`, filename)
	return err
}
