package ephemeris

import "math"

// solarCoords returns the Sun's geocentric ecliptic longitude (degrees,
// unnormalized) and its distance in astronomical units.
//
// Simplified NOAA / Meeus-style model:
//
//	g = mean anomaly of the Sun
//	q = mean longitude of the Sun
//	L = q + equation of center
func solarCoords(jd float64) (lon, dist float64) {
	d := jd - j2000

	g := Deg2Rad(357.529 + 0.98560028*d)
	q := 280.459 + 0.98564736*d

	lon = q +
		1.915*math.Sin(g) +
		0.020*math.Sin(2*g)

	dist = 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)
	return lon, dist
}
