// Package journal persists computed transit events so month scans can be
// reviewed later without recomputing them.
package journal

import (
	"time"

	"github.com/rustyeddy/starwheel/pkg/id"
	"github.com/rustyeddy/starwheel/transit"
)

// TransitRecord is one stored crossing event.
type TransitRecord struct {
	ID           string
	Planet       string
	Angle        string
	TimeUTC      time.Time
	TimeLocal    time.Time
	Longitude    float64
	Sign         string
	Decan        int
	DegreeInSign float64
	CreatedAt    time.Time
}

// FromEvent converts a finder event into a record with a fresh ID.
func FromEvent(e transit.Event) TransitRecord {
	return TransitRecord{
		ID:           id.New(),
		Planet:       e.Body.String(),
		Angle:        e.Angle.String(),
		TimeUTC:      e.TimeUTC,
		TimeLocal:    e.TimeLocal,
		Longitude:    e.Position.Longitude,
		Sign:         e.Position.Sign.String(),
		Decan:        e.Position.Decan,
		DegreeInSign: e.Position.Degree,
		CreatedAt:    time.Now().UTC(),
	}
}

// Journal is the storage interface; SQLite and CSV backends implement it.
type Journal interface {
	RecordTransit(TransitRecord) error
	Close() error
}
