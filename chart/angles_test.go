package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/starwheel/ephemeris"
)

func TestComputeAnglesOppositePoints(t *testing.T) {
	t.Parallel()

	eng := ephemeris.New()
	jd := ephemeris.JulianDayUT(2025, 6, 15, 18.5)

	angles, err := ComputeAngles(eng, jd, 41.9028, 12.4964)
	require.NoError(t, err)

	assert.InDelta(t, 180.0, ephemeris.Normalize360(angles.Descendant-angles.Ascendant), 1e-9)
	assert.InDelta(t, 180.0, ephemeris.Normalize360(angles.ImumCoeli-angles.Midheaven), 1e-9)

	for _, lon := range []float64{angles.Ascendant, angles.Descendant, angles.Midheaven, angles.ImumCoeli} {
		assert.GreaterOrEqual(t, lon, 0.0)
		assert.Less(t, lon, 360.0)
	}
}

func TestComputeAnglesDeterministic(t *testing.T) {
	t.Parallel()

	eng := ephemeris.New()
	jd := ephemeris.JulianDayUT(1990, 3, 21, 6.25)

	first, err := ComputeAngles(eng, jd, 55.75, 37.62)
	require.NoError(t, err)
	second, err := ComputeAngles(eng, jd, 55.75, 37.62)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeAnglesPolarLatitude(t *testing.T) {
	t.Parallel()

	eng := ephemeris.New()
	jd := ephemeris.JulianDayUT(2025, 6, 15, 12.0)

	tests := []struct {
		name string
		lat  float64
		ok   bool
	}{
		{"north pole", 90, false},
		{"south pole", -90, false},
		{"beyond pole", 95, false},
		{"just inside limit", 89.9999, true},
		{"arctic circle", 66.5, true},
		{"equator", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAngles(eng, jd, tt.lat, 0)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrPolarLatitude)
			}
		})
	}
}

func TestAnglesMoveWithSiderealTime(t *testing.T) {
	t.Parallel()

	eng := ephemeris.New()
	jd := ephemeris.JulianDayUT(2025, 6, 15, 0.0)

	a1, err := ComputeAngles(eng, jd, 40, 0)
	require.NoError(t, err)
	// Six hours later the whole chart has rotated by roughly a quadrant.
	a2, err := ComputeAngles(eng, jd+0.25, 40, 0)
	require.NoError(t, err)

	moved := ephemeris.Normalize360(a2.Midheaven - a1.Midheaven)
	assert.InDelta(t, 90.0, moved, 15.0)
}

func TestParseAngle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want AngleName
		ok   bool
	}{
		{"Ascendant", Ascendant, true},
		{"ascendant", Ascendant, true},
		{"Midheaven", Midheaven, true},
		{"Imum Coeli", ImumCoeli, true},
		{"imum coeli", ImumCoeli, true},
		{"Descendant", Descendant, true},
		{"MC", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseAngle(tt.in)
		if tt.ok {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, ErrUnknownAngle, tt.in)
		}
	}
}

func TestAnglesLongitude(t *testing.T) {
	t.Parallel()

	a := Angles{Ascendant: 10, Descendant: 190, Midheaven: 280, ImumCoeli: 100}

	for name, want := range map[AngleName]float64{
		Ascendant:  10,
		Descendant: 190,
		Midheaven:  280,
		ImumCoeli:  100,
	} {
		got, err := a.Longitude(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := a.Longitude(AngleName(7))
	assert.ErrorIs(t, err, ErrUnknownAngle)
}
