package chart

import (
	"fmt"

	"github.com/rustyeddy/starwheel/ephemeris"
	"github.com/rustyeddy/starwheel/zodiac"
)

// Input describes a birth (or query) instant in local civil time plus the
// observer location. The UTC offset is in hours and may be fractional.
type Input struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	TZOffsetHours        float64
	Latitude             float64
	Longitude            float64
}

// JulianDayUT converts the local civil time to a Julian Day in Universal
// Time. Pure calendar arithmetic; the offset is subtracted before the
// calendar conversion, matching how birth data is traditionally handled.
func (in Input) JulianDayUT() float64 {
	localHours := float64(in.Hour) + float64(in.Minute)/60.0 + float64(in.Second)/3600.0
	return ephemeris.JulianDayUT(in.Year, in.Month, in.Day, localHours-in.TZOffsetHours)
}

// Chart is a fully computed horoscope: every supported body plus the four
// angles, each classified into sign/decan/degree.
type Chart struct {
	JulianDay float64
	Positions []zodiac.Position
}

// Position returns the classified position of a named point, if present.
func (c Chart) Position(point string) (zodiac.Position, bool) {
	for _, p := range c.Positions {
		if p.Point == point {
			return p, true
		}
	}
	return zodiac.Position{}, false
}

// Compute builds the chart for an input instant and location: ten body
// longitudes from the ephemeris source, then the four angles.
func Compute(src ephemeris.Source, in Input) (Chart, error) {
	jd := in.JulianDayUT()

	c := Chart{JulianDay: jd}

	for _, b := range ephemeris.Bodies {
		lon, err := src.Longitude(b, jd)
		if err != nil {
			return Chart{}, fmt.Errorf("compute %v: %w", b, err)
		}
		c.Positions = append(c.Positions, zodiac.PositionOf(b.String(), lon))
	}

	angles, err := ComputeAngles(src, jd, in.Latitude, in.Longitude)
	if err != nil {
		return Chart{}, err
	}

	for _, a := range AllAngles {
		lon, _ := angles.Longitude(a)
		c.Positions = append(c.Positions, zodiac.PositionOf(a.String(), lon))
	}

	return c, nil
}

// MoonAscending reports whether the Moon sits in the ascending half of
// the chart, i.e. between the Ascendant and the Descendant measured
// forward along the ecliptic.
func (c Chart) MoonAscending() (bool, error) {
	moon, ok := c.Position(ephemeris.Moon.String())
	if !ok {
		return false, fmt.Errorf("chart has no Moon position")
	}
	asc, ok := c.Position(Ascendant.String())
	if !ok {
		return false, fmt.Errorf("chart has no Ascendant position")
	}
	dsc, ok := c.Position(Descendant.String())
	if !ok {
		return false, fmt.Errorf("chart has no Descendant position")
	}

	moonFromAsc := ephemeris.Normalize360(moon.Longitude - asc.Longitude)
	dscFromAsc := ephemeris.Normalize360(dsc.Longitude - asc.Longitude)
	return moonFromAsc < dscFromAsc, nil
}

// LenormandCard returns the Lenormand card keyed by the Moon's sign and
// decan, or "Unknown" when the chart has no Moon.
func (c Chart) LenormandCard() string {
	moon, ok := c.Position(ephemeris.Moon.String())
	if !ok {
		return "Unknown"
	}
	return zodiac.LenormandCard(moon.Sign, moon.Decan)
}
