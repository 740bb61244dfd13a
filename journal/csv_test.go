package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	utc := time.Date(2025, 10, 3, 14, 22, 31, 0, time.UTC)
	require.NoError(t, j.RecordTransit(testRecord("T1", utc)))
	require.NoError(t, j.RecordTransit(testRecord("T2", utc.Add(3*time.Hour))))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"id", "planet", "angle", "time_utc", "time_local",
		"longitude", "sign", "decan", "degree_in_sign", "created_at",
	}, rows[0])

	assert.Equal(t, "T1", rows[1][0])
	assert.Equal(t, "Moon", rows[1][1])
	assert.Equal(t, "Ascendant", rows[1][2])
	assert.Equal(t, "2025-10-03T14:22:31Z", rows[1][3])
	assert.Equal(t, "2025-10-03T16:22:31+02:00", rows[1][4])
	assert.Equal(t, "123.456789", rows[1][5])
	assert.Equal(t, "Leo", rows[1][6])
	assert.Equal(t, "1", rows[1][7])

	assert.Equal(t, "T2", rows[2][0])
}

func TestCSVTruncatesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,rows\n1,2\n3,4\n"), 0644))

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// A fresh file holds only the header; earlier contents are gone.
	require.Len(t, rows, 1)
	assert.Equal(t, "id", rows[0][0])
}

func TestCSVCreateFailure(t *testing.T) {
	t.Parallel()

	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "events.csv"))
	assert.Error(t, err)
}
