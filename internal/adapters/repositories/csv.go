package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"stadium-finder-service/internal/domain"
)

// Dataset column names, as exported from the national sports equipment
// census.
var facilityColumns = []string{
	"inst_nom",
	"equip_type_name",
	"equip_nature",
	"equip_sol",
	"aps_name",
	"inst_trans_type",
	"equip_coordonnees",
}

// LoadFacilitiesCSV reads the facility dataset from a CSV export.
//
// The equip_coordonnees column holds a combined "lat, lon" pair which is
// split and parsed here. Rows with a missing or malformed coordinate
// pair are discarded (the search core requires every facility to carry
// a valid coordinate); the number of discarded rows is logged.
func LoadFacilitiesCSV(csvPath string) ([]domain.Facility, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("load facilities: open %q: %w", csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("load facilities: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range facilityColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("load facilities: missing column %q in %q", col, csvPath)
		}
	}

	facilities := make([]domain.Facility, 0, 256)
	discarded := 0

	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load facilities: read line %d: %w", line, err)
		}

		field := func(col string) string {
			i := idx[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		coord, err := splitCoordinatePair(field("equip_coordonnees"))
		if err != nil {
			discarded++
			continue
		}

		facilities = append(facilities, domain.Facility{
			Name:      field("inst_nom"),
			TypeName:  field("equip_type_name"),
			Nature:    field("equip_nature"),
			Surface:   field("equip_sol"),
			Activity:  field("aps_name"),
			Transport: field("inst_trans_type"),
			Coord:     coord,
		})
	}

	if discarded > 0 {
		log.Printf("load facilities: discarded %d row(s) with invalid coordinates", discarded)
	}

	return facilities, nil
}

// splitCoordinatePair parses the dataset's combined "lat, lon" cell.
func splitCoordinatePair(s string) (domain.Coordinates, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return domain.Coordinates{}, fmt.Errorf("malformed coordinate pair %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse latitude in %q: %w", s, err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse longitude in %q: %w", s, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
