package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"stadium-finder-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFacilitiesQuery := `
	CREATE TABLE IF NOT EXISTS facilities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type_name TEXT NOT NULL,
		nature TEXT NOT NULL,
		surface TEXT NOT NULL,
		activity TEXT NOT NULL,
		transport TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lon REAL NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_facilities_activity
    ON facilities(activity);
	`

	statements := []string{
		createFacilitiesQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite database with facility data from a CSV export.
// The table is reloaded wholesale so reruns stay idempotent and row ids
// keep following dataset order.
func SeedFromCSV(db *sql.DB, csvPath string) error {
	facilities, err := LoadFacilitiesCSV(csvPath)
	if err != nil {
		return fmt.Errorf("seed facilities: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed facilities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM facilities;`); err != nil {
		return fmt.Errorf("seed facilities: clear table: %w", err)
	}

	query := `
	INSERT INTO facilities (
		name,
		type_name,
		nature,
		surface,
		activity,
		transport,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed facilities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range facilities {
		if err := execFacilityInsert(stmt, f); err != nil {
			return fmt.Errorf("seed facilities: insert row %d (%q): %w", i+1, f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed facilities: commit tx: %w", err)
	}

	return nil
}

func execFacilityInsert(stmt *sql.Stmt, f domain.Facility) error {
	_, err := stmt.Exec(f.Name, f.TypeName, f.Nature, f.Surface, f.Activity, f.Transport, f.Coord.Lat, f.Coord.Lon)
	return err
}
