package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const selectCols = `id, planet, angle, time_utc, time_local, longitude, sign, decan, degree_in_sign, created_at`

// GetTransit returns a single transit record by ID.
func (j *SQLite) GetTransit(id string) (TransitRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+selectCols+`
		FROM transits
		WHERE id = ?`, id)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return TransitRecord{}, fmt.Errorf("transit %q not found", id)
		}
		return TransitRecord{}, err
	}
	return rec, nil
}

// ListTransitsBetween returns records whose UT instant lies in [start, end),
// ordered by time.
func (j *SQLite) ListTransitsBetween(start, end time.Time) ([]TransitRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectCols+`
		FROM transits
		WHERE time_utc >= ? AND time_utc < ?
		ORDER BY time_utc ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListTransitsForPlanet returns all records for one planet, ordered by time.
func (j *SQLite) ListTransitsForPlanet(planet string) ([]TransitRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectCols+`
		FROM transits
		WHERE planet = ?
		ORDER BY time_utc ASC`, planet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows *sql.Rows) ([]TransitRecord, error) {
	var out []TransitRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(scan func(...any) error) (TransitRecord, error) {
	var rec TransitRecord
	var local string

	err := scan(
		&rec.ID,
		&rec.Planet,
		&rec.Angle,
		&rec.TimeUTC,
		&local,
		&rec.Longitude,
		&rec.Sign,
		&rec.Decan,
		&rec.DegreeInSign,
		&rec.CreatedAt,
	)
	if err != nil {
		return TransitRecord{}, err
	}

	rec.TimeLocal, err = time.Parse(time.RFC3339, local)
	if err != nil {
		return TransitRecord{}, fmt.Errorf("parse time_local %q: %w", local, err)
	}
	return rec, nil
}
