package transit

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/starwheel/chart"
	"github.com/rustyeddy/starwheel/ephemeris"
)

// linearSource is a synthetic ephemeris with frozen sidereal time, so the
// chart angles stay fixed while the body moves at a constant rate. With
// zero obliquity and zero sidereal time the angles sit at Asc=90, Dsc=270,
// MC=0, IC=180, and crossing times have a closed form the tests can check
// against.
type linearSource struct {
	startJD float64
	lon0    float64 // body longitude at startJD
	rate    float64 // degrees per day
	fail    bool    // inject a failure on every longitude sample
}

var errSynthetic = errors.New("synthetic ephemeris failure")

func (s *linearSource) Longitude(b ephemeris.Body, jd float64) (float64, error) {
	if s.fail {
		return 0, errSynthetic
	}
	return ephemeris.Normalize360(s.lon0 + s.rate*(jd-s.startJD)), nil
}

func (s *linearSource) Obliquity(jd float64) float64 { return 0 }

func (s *linearSource) SiderealTime(jd, geoLon float64) float64 { return 0 }

func juneQuery(step int) Query {
	return Query{
		Year:        2025,
		Month:       time.June,
		Latitude:    41.9,
		Longitude:   12.5,
		Body:        ephemeris.Moon,
		StepMinutes: step,
	}
}

func newJuneSource() *linearSource {
	return &linearSource{
		startJD: ephemeris.JulianDayUT(2025, 6, 1, 0),
		lon0:    10,
		rate:    12,
	}
}

func TestFindMonthAnalyticCrossings(t *testing.T) {
	t.Parallel()

	src := newJuneSource()
	events, err := NewFinder(src).FindMonth(juneQuery(15))
	require.NoError(t, err)

	// Starting at 10° and moving 12°/day, each angle is reached once in
	// June's 30 days: IC(180°) at day 14.1667, Dsc(270°) at day 21.6667,
	// MC(360°) at day 29.1667, after Asc(90°) at day 6.6667.
	require.Len(t, events, 4)

	tests := []struct {
		angle   chart.AngleName
		daysIn  float64
		signLon float64
	}{
		{chart.Ascendant, 80.0 / 12.0, 90},
		{chart.ImumCoeli, 170.0 / 12.0, 180},
		{chart.Descendant, 260.0 / 12.0, 270},
		{chart.Midheaven, 350.0 / 12.0, 0},
	}

	for i, tt := range tests {
		ev := events[i]
		assert.Equal(t, ephemeris.Moon, ev.Body)
		assert.Equal(t, tt.angle, ev.Angle, "event %d", i)

		// Refined to within 30 seconds of the analytic instant.
		wantJD := src.startJD + tt.daysIn
		assert.InDelta(t, wantJD, ev.JulianDay, 31.0/86400.0, "event %d", i)

		// Position is re-sampled at the refined instant, so it sits on the
		// crossed angle to within the tolerance times the motion rate.
		dist := math.Abs(ephemeris.Normalize360(ev.Position.Longitude-tt.signLon+180.0) - 180.0)
		assert.Less(t, dist, 0.01, "event %d", i)
	}
}

func TestFindMonthSortedByTime(t *testing.T) {
	t.Parallel()

	events, err := NewFinder(newJuneSource()).FindMonth(juneQuery(15))
	require.NoError(t, err)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].TimeUTC.Before(events[i].TimeUTC))
	}
}

func TestFindMonthDeterministic(t *testing.T) {
	t.Parallel()

	f := NewFinder(newJuneSource())
	first, err := f.FindMonth(juneQuery(15))
	require.NoError(t, err)
	second, err := f.FindMonth(juneQuery(15))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindMonthStepIndependence(t *testing.T) {
	t.Parallel()

	f := NewFinder(newJuneSource())
	coarse, err := f.FindMonth(juneQuery(60))
	require.NoError(t, err)
	fine, err := f.FindMonth(juneQuery(1))
	require.NoError(t, err)

	require.Equal(t, len(coarse), len(fine))
	for i := range coarse {
		assert.Equal(t, coarse[i].Angle, fine[i].Angle)
		// Both runs refine to the same instant within the tolerance.
		assert.InDelta(t, coarse[i].JulianDay, fine[i].JulianDay, 61.0/86400.0)
	}
}

func TestFindMonthRestrictedAngles(t *testing.T) {
	t.Parallel()

	q := juneQuery(15)
	q.Angles = []chart.AngleName{chart.Ascendant}

	events, err := NewFinder(newJuneSource()).FindMonth(q)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, chart.Ascendant, events[0].Angle)
}

func TestFindMonthLocalTimezone(t *testing.T) {
	t.Parallel()

	q := juneQuery(15)
	q.TZOffsetHours = 5.5

	events, err := NewFinder(newJuneSource()).FindMonth(q)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	for _, ev := range events {
		_, offset := ev.TimeLocal.Zone()
		assert.Equal(t, int(5.5*3600), offset)
		assert.True(t, ev.TimeLocal.Equal(ev.TimeUTC))
	}
}

func TestFindMonthStepValidation(t *testing.T) {
	t.Parallel()

	f := NewFinder(newJuneSource())

	for _, step := range []int{0, -5, 61, 1000} {
		q := juneQuery(step)
		_, err := f.FindMonth(q)
		assert.ErrorIs(t, err, ErrStepOutOfRange, "step %d", step)
	}

	for _, step := range []int{1, 15, 60} {
		q := juneQuery(step)
		_, err := f.FindMonth(q)
		assert.NoError(t, err, "step %d", step)
	}
}

func TestFindMonthMonthValidation(t *testing.T) {
	t.Parallel()

	f := NewFinder(newJuneSource())

	q := juneQuery(15)
	q.Month = 0
	_, err := f.FindMonth(q)
	assert.ErrorIs(t, err, ErrBadMonth)

	q.Month = 13
	_, err = f.FindMonth(q)
	assert.ErrorIs(t, err, ErrBadMonth)
}

func TestFindMonthUnknownBody(t *testing.T) {
	t.Parallel()

	q := juneQuery(15)
	q.Body = ephemeris.Body(42)

	_, err := NewFinder(newJuneSource()).FindMonth(q)
	assert.ErrorIs(t, err, ephemeris.ErrUnknownBody)
}

func TestFindMonthAbortsOnSourceFailure(t *testing.T) {
	t.Parallel()

	src := newJuneSource()
	src.fail = true

	events, err := NewFinder(src).FindMonth(juneQuery(15))
	assert.ErrorIs(t, err, errSynthetic)
	assert.Nil(t, events, "a failed scan must not return partial results")
}

func TestFindMonthPolarLatitude(t *testing.T) {
	t.Parallel()

	// The synthetic source never degenerates, but the real cusp math does;
	// the guard rejects the pole before any sampling happens.
	q := juneQuery(15)
	q.Latitude = 90

	_, err := NewFinder(newJuneSource()).FindMonth(q)
	assert.ErrorIs(t, err, chart.ErrPolarLatitude)
}

func TestSignedDeltaMapping(t *testing.T) {
	t.Parallel()

	// Deltas live in (-180, 180] so crossings show up as sign changes.
	f := NewFinder(&linearSource{
		startJD: 2451545.0,
		lon0:    91,
		rate:    0,
	})
	q := Query{Body: ephemeris.Moon, Latitude: 40, Longitude: 0}

	d, err := f.signedDelta(q, chart.Ascendant, 2451545.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)

	f = NewFinder(&linearSource{startJD: 2451545.0, lon0: 89, rate: 0})
	d, err = f.signedDelta(q, chart.Ascendant, 2451545.0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d, 1e-9)
}

func TestBracketed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b float64
		want bool
	}{
		{-1, 1, true},
		{1, -1, true},
		{0, 5, true},
		{5, 0, true},
		{1, 2, false},
		{-2, -1, false},
		{179, -179, false}, // opposite point wrapping past, not a crossing
		{-179, 179, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bracketed(tt.a, tt.b), "bracketed(%v, %v)", tt.a, tt.b)
	}
}
