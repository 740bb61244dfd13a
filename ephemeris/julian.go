package ephemeris

import (
	"math"
	"time"
)

const (
	// j2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UT).
	j2000 = 2451545.0

	// jdUnixEpoch is the Julian Day of 1970-01-01 00:00 UT.
	jdUnixEpoch = 2440587.5
)

// JulianDay converts a time.Time into a Julian Day number in Universal
// Time. The fractional part encodes the time of day.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	return JulianDayUT(year, int(month), day, hour)
}

// JulianDayUT computes the Julian Day for a calendar date and a decimal
// hour-of-day, both already in Universal Time. Standard Meeus calendar
// arithmetic with the Gregorian correction term.
func JulianDayUT(year, month, day int, utHours float64) float64 {
	y := year
	m := month
	if m <= 2 {
		y--
		m += 12
	}

	a := y / 100
	b := 2 - a + a/4

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		utHours/24.0
}

// Time converts a Julian Day (UT) back into a time.Time in UTC, rounded
// to the nearest millisecond to suppress floating-point noise.
func Time(jd float64) time.Time {
	seconds := (jd - jdUnixEpoch) * 86400.0
	ms := int64(math.Round(seconds * 1000.0))
	return time.Unix(ms/1000, (ms%1000)*1e6).UTC()
}
