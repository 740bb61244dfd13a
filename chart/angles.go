// Package chart derives the four chart angles (Ascendant, Midheaven,
// Descendant, Imum Coeli) from time and location, and assembles full
// horoscope charts from an ephemeris source.
package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/starwheel/ephemeris"
)

// AngleName identifies one of the four chart angles.
type AngleName int

const (
	Ascendant AngleName = iota
	Descendant
	Midheaven
	ImumCoeli
)

// AllAngles lists the four angles in the order the original chart output
// presents them.
var AllAngles = []AngleName{Ascendant, Descendant, Midheaven, ImumCoeli}

var angleNames = [...]string{"Ascendant", "Descendant", "Midheaven", "Imum Coeli"}

func (a AngleName) String() string {
	if a < Ascendant || a > ImumCoeli {
		return fmt.Sprintf("AngleName(%d)", int(a))
	}
	return angleNames[a]
}

var (
	// ErrUnknownAngle is returned when an angle name is not one of the four.
	ErrUnknownAngle = errors.New("unknown chart angle")

	// ErrPolarLatitude is returned when the Ascendant formula degenerates
	// at or beyond the poles.
	ErrPolarLatitude = errors.New("ascendant is undefined at polar latitude")
)

// ParseAngle converts an angle name (case-insensitive) into an AngleName.
func ParseAngle(name string) (AngleName, error) {
	for i, n := range angleNames {
		if strings.EqualFold(name, n) {
			return AngleName(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAngle, name)
}

// polarLimit is how close to ±90° the latitude may get before tan(lat)
// in the Ascendant formula stops being meaningful.
const polarLimit = 90.0 - 1e-6

// Angles holds the four angle longitudes, each in [0, 360).
type Angles struct {
	Ascendant  float64
	Descendant float64
	Midheaven  float64
	ImumCoeli  float64
}

// Longitude returns the longitude of the named angle.
func (a Angles) Longitude(name AngleName) (float64, error) {
	switch name {
	case Ascendant:
		return a.Ascendant, nil
	case Descendant:
		return a.Descendant, nil
	case Midheaven:
		return a.Midheaven, nil
	case ImumCoeli:
		return a.ImumCoeli, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownAngle, name)
	}
}

// ComputeAngles derives the four chart angles for a UT instant and an
// observer location (latitude north positive, longitude east positive).
//
// Midheaven comes from the local sidereal time and the obliquity of the
// ecliptic; the Ascendant adds the latitude term. Both use atan2 so the
// quadrant falls out correctly without explicit fixups. Descendant and
// Imum Coeli are the opposite points.
func ComputeAngles(src ephemeris.Source, jd, lat, lon float64) (Angles, error) {
	if math.Abs(lat) >= polarLimit {
		return Angles{}, fmt.Errorf("%w: latitude %.4f", ErrPolarLatitude, lat)
	}

	lst := src.SiderealTime(jd, lon)
	eps := src.Obliquity(jd)

	mc := ephemeris.Rad2Deg(math.Atan2(
		ephemeris.SinD(lst),
		ephemeris.CosD(lst)*ephemeris.CosD(eps),
	))

	asc := ephemeris.Rad2Deg(math.Atan2(
		ephemeris.CosD(lst),
		-(ephemeris.SinD(lst)*ephemeris.CosD(eps) + ephemeris.TanD(lat)*ephemeris.SinD(eps)),
	))

	if math.IsNaN(asc) || math.IsNaN(mc) {
		return Angles{}, fmt.Errorf("%w: latitude %.4f", ErrPolarLatitude, lat)
	}

	asc = ephemeris.Normalize360(asc)
	mc = ephemeris.Normalize360(mc)

	return Angles{
		Ascendant:  asc,
		Descendant: ephemeris.Normalize360(asc + 180.0),
		Midheaven:  mc,
		ImumCoeli:  ephemeris.Normalize360(mc + 180.0),
	}, nil
}
