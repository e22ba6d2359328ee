package storage

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mlaranja/fuelpulse/internal/domain/models"
)

func newMockRepo(t *testing.T) (*fuelRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &fuelRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func entryColumns() []string {
	return []string{
		"id", "user_id", "vehicle_id", "date", "odometer_km", "station",
		"brand", "grade", "liters", "total_amount", "notes", "source_file",
		"created_at",
	}
}

func TestListFuelRecords_SQLMock(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		vehicleID int64
		from      *time.Time
		to        *time.Time
		wantArgs  []interface{}
	}{
		{name: "user only", vehicleID: 0, wantArgs: []interface{}{int64(7)}},
		{name: "with vehicle", vehicleID: 3, wantArgs: []interface{}{int64(7), int64(3)}},
		{name: "with range", vehicleID: 0, from: &day, to: &day2, wantArgs: []interface{}{int64(7), day, day2}},
		{name: "vehicle and range", vehicleID: 3, from: &day, to: &day2, wantArgs: []interface{}{int64(7), int64(3), day, day2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			rows := sqlmock.NewRows(entryColumns()).
				AddRow(int64(1), int64(7), int64(3), day, 48100.0, "Shell Centraal", "shell", "95", 41.2, 78.9, nil, nil, day).
				AddRow(int64(2), int64(7), int64(3), day2, 48620.0, nil, nil, nil, 39.0, 74.1, "long trip", "may.csv", day2)

			driverArgs := make([]driver.Value, 0, len(tc.wantArgs))
			for _, a := range tc.wantArgs {
				driverArgs = append(driverArgs, a)
			}
			mock.ExpectQuery(`SELECT id, user_id, vehicle_id, date, odometer_km`).
				WithArgs(driverArgs...).
				WillReturnRows(rows)

			out, err := repo.ListFuelRecords(7, tc.vehicleID, tc.from, tc.to)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(out) != 2 {
				t.Fatalf("len=%d, want 2", len(out))
			}
			if out[0].Brand != "shell" || out[0].Station != "Shell Centraal" {
				t.Fatalf("row 1 mapped badly: %+v", out[0])
			}
			// NULL labels become empty strings.
			if out[1].Brand != "" || out[1].Station != "" || out[1].SourceFile != "may.csv" {
				t.Fatalf("row 2 mapped badly: %+v", out[1])
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations: %v", err)
			}
		})
	}
}

func TestHasImportForFile(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM import_log WHERE filename = \$1\)`).
		WithArgs("may.csv").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.HasImportForFile("may.csv")
	if err != nil || !got {
		t.Fatalf("got=%v err=%v, want true", got, err)
	}
}

func TestUpsertImportLog(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`INSERT INTO import_log`).
		WithArgs("may.csv", 120).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.UpsertImportLog("may.csv", 120); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDeleteFuelRecordsBySource(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`DELETE FROM fuel_entries WHERE source_file = \$1`).
		WithArgs("may.csv").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteFuelRecordsBySource("may.csv"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestInsertFuelRecordsBatch(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	recs := []models.FuelRecord{
		{UserID: 7, VehicleID: 3, Date: day, OdometerKm: 48100, Liters: 41.2, TotalAmount: 78.9, Brand: "shell", SourceFile: "may.csv"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL synchronous_commit = OFF`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(`COPY "fuel_entries"`)
	mock.ExpectExec(`COPY "fuel_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`COPY "fuel_entries"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.InsertFuelRecordsBatch(recs); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
