package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite stores transit records in a local SQLite database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTransit(r TransitRecord) error {
	// Local time keeps its offset by round-tripping through RFC3339 text.
	_, err := j.db.Exec(`
		INSERT INTO transits
		(id, planet, angle, time_utc, time_local, longitude, sign, decan, degree_in_sign, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Planet, r.Angle, r.TimeUTC, r.TimeLocal.Format(time.RFC3339),
		r.Longitude, r.Sign, r.Decan, r.DegreeInSign, r.CreatedAt,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
