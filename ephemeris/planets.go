package ephemeris

import "math"

// elements holds Keplerian mean orbital elements, each modeled as a
// linear function of time: value = base + rate*d, where d is the day
// count since the element epoch (1999-12-31 00:00 UT, jd 2451543.5).
type elements struct {
	n, nRate float64 // longitude of the ascending node (deg)
	i, iRate float64 // inclination to the ecliptic (deg)
	w, wRate float64 // argument of perihelion (deg)
	a, aRate float64 // semi-major axis (AU)
	e, eRate float64 // eccentricity
	m, mRate float64 // mean anomaly (deg)
}

// jdElementEpoch is the epoch the element table below is referred to.
const jdElementEpoch = 2451543.5

// Low-precision mean elements (Schlyter). Pluto uses J2000 osculating
// elements with its mean motion; at Pluto's speed the 1.5-day epoch
// mismatch is far below the model's own error.
var planetElements = map[Body]elements{
	Mercury: {
		n: 48.3313, nRate: 3.24587e-5,
		i: 7.0047, iRate: 5.00e-8,
		w: 29.1241, wRate: 1.01444e-5,
		a: 0.387098,
		e: 0.205635, eRate: 5.59e-10,
		m: 168.6562, mRate: 4.0923344368,
	},
	Venus: {
		n: 76.6799, nRate: 2.46590e-5,
		i: 3.3946, iRate: 2.75e-8,
		w: 54.8910, wRate: 1.38374e-5,
		a: 0.723330,
		e: 0.006773, eRate: -1.302e-9,
		m: 48.0052, mRate: 1.6021302244,
	},
	Mars: {
		n: 49.5574, nRate: 2.11081e-5,
		i: 1.8497, iRate: -1.78e-8,
		w: 286.5016, wRate: 2.92961e-5,
		a: 1.523688,
		e: 0.093405, eRate: 2.516e-9,
		m: 18.6021, mRate: 0.5240207766,
	},
	Jupiter: {
		n: 100.4542, nRate: 2.76854e-5,
		i: 1.3030, iRate: -1.557e-7,
		w: 273.8777, wRate: 1.64505e-5,
		a: 5.20256,
		e: 0.048498, eRate: 4.469e-9,
		m: 19.8950, mRate: 0.0830853001,
	},
	Saturn: {
		n: 113.6634, nRate: 2.38980e-5,
		i: 2.4886, iRate: -1.081e-7,
		w: 339.3939, wRate: 2.97661e-5,
		a: 9.55475,
		e: 0.055546, eRate: -9.499e-9,
		m: 316.9670, mRate: 0.0334442282,
	},
	Uranus: {
		n: 74.0005, nRate: 1.3978e-5,
		i: 0.7733, iRate: 1.9e-8,
		w: 96.6612, wRate: 3.0565e-5,
		a: 19.18171, aRate: -1.55e-8,
		e: 0.047318, eRate: 7.45e-9,
		m: 142.5905, mRate: 0.011725806,
	},
	Neptune: {
		n: 131.7806, nRate: 3.0173e-5,
		i: 1.7700, iRate: -2.55e-7,
		w: 272.8461, wRate: -6.027e-6,
		a: 30.05826, aRate: 3.313e-8,
		e: 0.008606, eRate: 2.15e-9,
		m: 260.2471, mRate: 0.005995147,
	},
	Pluto: {
		n: 110.30347,
		i: 17.14175,
		w: 113.76329,
		a: 39.48169,
		e: 0.248808,
		m: 14.86205, mRate: 0.00396,
	},
}

// planetLongitude returns the geocentric ecliptic longitude (degrees,
// unnormalized) of one of the eight planets: heliocentric position from
// the Keplerian elements, translated to the geocenter using the Sun's
// geocentric position.
func planetLongitude(b Body, jd float64) float64 {
	el := planetElements[b]
	d := jd - jdElementEpoch

	n := Deg2Rad(el.n + el.nRate*d)
	i := Deg2Rad(el.i + el.iRate*d)
	w := Deg2Rad(el.w + el.wRate*d)
	a := el.a + el.aRate*d
	e := el.e + el.eRate*d
	m := Deg2Rad(Normalize360(el.m + el.mRate*d))

	// Eccentric anomaly: first-order seed, then Newton iterations.
	ecc := m + e*math.Sin(m)*(1+e*math.Cos(m))
	for iter := 0; iter < 10; iter++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-8 {
			break
		}
	}

	// Position in the orbital plane.
	xv := a * (math.Cos(ecc) - e)
	yv := a * math.Sqrt(1-e*e) * math.Sin(ecc)
	v := math.Atan2(yv, xv)
	r := math.Sqrt(xv*xv + yv*yv)

	// Heliocentric ecliptic rectangular coordinates.
	vw := v + w
	xh := r * (math.Cos(n)*math.Cos(vw) - math.Sin(n)*math.Sin(vw)*math.Cos(i))
	yh := r * (math.Sin(n)*math.Cos(vw) + math.Cos(n)*math.Sin(vw)*math.Cos(i))

	// Translate to the geocenter via the Sun's geocentric position.
	sunLon, sunR := solarCoords(jd)
	xg := xh + sunR*CosD(sunLon)
	yg := yh + sunR*SinD(sunLon)

	return Rad2Deg(math.Atan2(yg, xg))
}
