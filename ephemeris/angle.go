package ephemeris

import "math"

// Normalize360 reduces any angle to the canonical [0, 360) range. Every
// longitude stored or compared elsewhere in the module goes through this
// first; aspect matching and crossing detection both assume it.
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// SinD returns the sine of an angle given in degrees.
func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

// CosD returns the cosine of an angle given in degrees.
func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// TanD returns the tangent of an angle given in degrees.
func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}
