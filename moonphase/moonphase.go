// Package moonphase derives lunar phase descriptors from the Sun-Moon
// elongation in ecliptic longitude.
package moonphase

import (
	"fmt"
	"math"

	"github.com/rustyeddy/starwheel/ephemeris"
)

// SynodicMonth is the mean interval between successive New Moons, in
// days. The age estimate below uses the mean value with no perturbation
// correction, so it can drift by a fraction of a day from the true cycle;
// that is a documented approximation, not a bug.
const SynodicMonth = 29.530588

// Name is one of the eight named phases, in waxing order from New Moon.
type Name int

const (
	NewMoon Name = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

func (n Name) String() string {
	if n < NewMoon || n > WaningCrescent {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return phaseNames[n]
}

// Phase describes the Moon's phase at one instant.
type Phase struct {
	Name          Name
	Angle         float64 // Sun→Moon elongation in degrees, [0, 360)
	Illuminated   float64 // illuminated fraction, [0, 1]
	AgeDays       float64 // days since the last New Moon, [0, SynodicMonth)
	CycleFraction float64 // Angle / 360
	JulianDay     float64 // set when computed from an instant, else 0
}

// FromLongitudes derives the phase from the Sun's and Moon's ecliptic
// longitudes. The phase angle drives everything: the illuminated
// fraction is the standard photometric (1 − cos θ)/2, the name comes
// from the 45° band whose midpoint the angle is nearest to, and the age
// scales the angle onto the mean synodic month.
func FromLongitudes(sunLon, moonLon float64) Phase {
	angle := ephemeris.Normalize360(moonLon - sunLon)

	frac := angle / 360.0
	illum := (1 - math.Cos(ephemeris.Deg2Rad(angle))) / 2

	idx := int(math.Round(angle/45.0)) % 8

	return Phase{
		Name:          Name(idx),
		Angle:         angle,
		Illuminated:   illum,
		AgeDays:       frac * SynodicMonth,
		CycleFraction: frac,
	}
}

// At computes the phase for a Julian Day (UT) using the given source.
func At(src ephemeris.Source, jd float64) (Phase, error) {
	sunLon, err := src.Longitude(ephemeris.Sun, jd)
	if err != nil {
		return Phase{}, fmt.Errorf("moon phase: %w", err)
	}
	moonLon, err := src.Longitude(ephemeris.Moon, jd)
	if err != nil {
		return Phase{}, fmt.Errorf("moon phase: %w", err)
	}

	p := FromLongitudes(sunLon, moonLon)
	p.JulianDay = jd
	return p, nil
}
