package ephemeris

import "math"

// moonLongitude returns the Moon's geocentric ecliptic longitude in
// degrees (unnormalized).
//
// Medium-precision truncated Meeus-style series built on the standard
// fundamental arguments:
//
//	L' = mean longitude of the Moon
//	M  = mean anomaly of the Sun
//	Mm = mean anomaly of the Moon
//	D  = mean elongation of the Moon from the Sun
//	F  = argument of latitude of the Moon
func moonLongitude(jd float64) float64 {
	d := jd - j2000

	// Linear coefficients are in deg/day.
	Lprime := Normalize360(218.3164477 + 13.17639648*d)
	M := Normalize360(357.5291092 + 0.98560028*d)
	Mm := Normalize360(134.9633964 + 13.06499295*d)
	D := Normalize360(297.8501921 + 12.19074912*d)
	F := Normalize360(93.2720950 + 13.22935024*d)

	Mr := Deg2Rad(M)
	Mmr := Deg2Rad(Mm)
	Dr := Deg2Rad(D)
	Fr := Deg2Rad(F)

	// λ ≈ L' + 6.289 sin(Mm) + 1.274 sin(2D − Mm)
	//      + 0.658 sin(2D) + 0.214 sin(2Mm) − 0.186 sin(M)
	//      − 0.114 sin(2F)
	return Lprime +
		6.289*math.Sin(Mmr) +
		1.274*math.Sin(2*Dr-Mmr) +
		0.658*math.Sin(2*Dr) +
		0.214*math.Sin(2*Mmr) -
		0.186*math.Sin(Mr) -
		0.114*math.Sin(2*Fr)
}
