// Package zodiac maps ecliptic longitudes onto the tropical zodiac:
// twelve 30-degree signs, each split into three 10-degree decans.
package zodiac

import (
	"fmt"
	"math"

	"github.com/rustyeddy/starwheel/ephemeris"
)

// Sign is one of the twelve zodiac signs, in ecliptic order from 0° Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Position is a classified point on the ecliptic. Once built it is never
// mutated; each computation produces fresh values.
type Position struct {
	Point     string  // body or angle name, e.g. "Moon" or "Ascendant"
	Sign      Sign    //
	Decan     int     // 1, 2 or 3
	Degree    float64 // degree within the sign, [0, 30)
	Longitude float64 // absolute ecliptic longitude, [0, 360)
}

// Classify reduces a longitude into its sign, decan and degree-in-sign.
// The input may be unnormalized; it is reduced mod 360 first, so the
// degree-in-sign is always strictly below 30.
func Classify(longitude float64) (Sign, int, float64) {
	lon := ephemeris.Normalize360(longitude)
	signIndex := int(lon / 30.0)
	degree := lon - float64(signIndex)*30.0
	decan := int(degree/10.0) + 1
	return Sign(signIndex), decan, degree
}

// PositionOf classifies a longitude and labels it with a point name.
func PositionOf(point string, longitude float64) Position {
	sign, decan, degree := Classify(longitude)
	return Position{
		Point:     point,
		Sign:      sign,
		Decan:     decan,
		Degree:    degree,
		Longitude: ephemeris.Normalize360(longitude),
	}
}

// Finite reports whether a longitude is usable. Classify assumes its
// input is a real angle; callers feeding it raw provider output should
// check first.
func Finite(longitude float64) bool {
	return !math.IsNaN(longitude) && !math.IsInf(longitude, 0)
}
