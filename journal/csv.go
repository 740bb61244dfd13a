package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSV writes transit records to a single events file, one row per record.
type CSV struct {
	w *csv.Writer
	f *os.File
}

// NewCSV creates (or truncates) the events file and writes the header
// row. Each scan produces a fresh file.
func NewCSV(eventsPath string) (*CSV, error) {
	f, err := os.Create(eventsPath)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{"id", "planet", "angle", "time_utc", "time_local", "longitude", "sign", "decan", "degree_in_sign", "created_at"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordTransit(r TransitRecord) error {
	j.w.Write([]string{
		r.ID,
		r.Planet,
		r.Angle,
		r.TimeUTC.Format(time.RFC3339),
		r.TimeLocal.Format(time.RFC3339),
		f(r.Longitude),
		r.Sign,
		strconv.Itoa(r.Decan),
		f(r.DegreeInSign),
		r.CreatedAt.Format(time.RFC3339),
	})
	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
