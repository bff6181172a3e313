package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFacilitiesQuery := `
	CREATE TABLE IF NOT EXISTS facilities (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		type_name TEXT NOT NULL,
		nature TEXT NOT NULL,
		surface TEXT NOT NULL,
		activity TEXT NOT NULL,
		transport TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lon DOUBLE PRECISION NOT NULL
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
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with facility data from a CSV export.
func SeedPostgresFromCSV(ctx context.Context, db *sql.DB, csvPath string) error {
	facilities, err := LoadFacilitiesCSV(csvPath)
	if err != nil {
		return fmt.Errorf("seed facilities: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed facilities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM facilities;`); err != nil {
		return fmt.Errorf("seed facilities: clear table: %w", err)
	}

	query := `
	INSERT INTO facilities (name, type_name, nature, surface, activity, transport, lat, lon)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed facilities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range facilities {
		if _, err := stmt.ExecContext(ctx, f.Name, f.TypeName, f.Nature, f.Surface, f.Activity, f.Transport, f.Coord.Lat, f.Coord.Lon); err != nil {
			return fmt.Errorf("seed facilities: insert row %d (%q): %w", i+1, f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed facilities: commit tx: %w", err)
	}

	return nil
}
