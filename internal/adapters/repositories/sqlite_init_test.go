package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestInitSchemaAndSeedRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if err := SeedFromCSV(db, writeTestCSV(t)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSQLFacilityRepository(db)
	facilities, err := repo.ListFacilities(context.Background())
	if err != nil {
		t.Fatalf("list facilities: %v", err)
	}

	if len(facilities) != 3 {
		t.Fatalf("expected 3 facilities, got %d", len(facilities))
	}
	if facilities[0].Name != "Stade Municipal" {
		t.Fatalf("load order not preserved, first = %q", facilities[0].Name)
	}
	if facilities[0].Coord.Lat == 0 || facilities[0].Coord.Lon == 0 {
		t.Fatalf("coordinates not stored: %+v", facilities[0].Coord)
	}
}

func TestSeedFromCSVIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	csvPath := writeTestCSV(t)
	if err := SeedFromCSV(db, csvPath); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedFromCSV(db, csvPath); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	repo := NewSQLFacilityRepository(db)
	facilities, err := repo.ListFacilities(context.Background())
	if err != nil {
		t.Fatalf("list facilities: %v", err)
	}
	if len(facilities) != 3 {
		t.Fatalf("reseeding duplicated rows: got %d facilities", len(facilities))
	}
}
