package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stadium-finder-service/internal/domain"
)

// SQL-backed implementation of the FacilityRepository port. The query
// uses no driver-specific placeholders, so the same repository serves
// both the SQLite and Postgres schemas.
type SQLFacilityRepository struct{ DB *sql.DB }

func NewSQLFacilityRepository(db *sql.DB) *SQLFacilityRepository {
	return &SQLFacilityRepository{DB: db}
}

// Return all facilities in load order. Ordering by id keeps distance
// ties deterministic across searches.
func (s *SQLFacilityRepository) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	if s.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	query := `
	SELECT
		name,
		type_name,
		nature,
		surface,
		activity,
		transport,
		lat,
		lon
	FROM facilities
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: query facilities table: %w", err)
	}
	defer rows.Close()

	facilities := make([]domain.Facility, 0, 256)
	for rows.Next() {
		var f domain.Facility
		err := rows.Scan(&f.Name, &f.TypeName, &f.Nature, &f.Surface, &f.Activity, &f.Transport, &f.Coord.Lat, &f.Coord.Lon)
		if err != nil {
			return nil, fmt.Errorf("list facilities: scan row: %w", err)
		}
		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list facilities: row iteration: %w", err)
	}

	return facilities, nil
}
