// Package ephemeris computes geocentric ecliptic longitudes for the Sun,
// Moon and planets, plus the auxiliary quantities (obliquity, local
// sidereal time) needed to derive chart angles.
//
// The models are truncated Meeus-style series for the Sun and Moon and a
// low-precision Keplerian mean-element model for the planets. Accuracy is
// on the order of arcminutes, which is more than enough for sign/decan
// classification and sub-minute transit timing at display precision.
package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Body identifies a celestial body supported by the engine.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// Bodies lists every supported body in traditional chart order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var bodyNames = map[Body]string{
	Sun:     "Sun",
	Moon:    "Moon",
	Mercury: "Mercury",
	Venus:   "Venus",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
	Pluto:   "Pluto",
}

func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

var (
	// ErrUnknownBody is returned when a body name or value is not supported.
	ErrUnknownBody = errors.New("unknown body")

	// ErrNotFinite is returned when a series evaluates to NaN or Inf.
	ErrNotFinite = errors.New("ephemeris result is not finite")
)

// ParseBody converts a body name (case-insensitive) into a Body.
func ParseBody(name string) (Body, error) {
	for b, n := range bodyNames {
		if strings.EqualFold(name, n) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

// Source supplies raw ephemeris quantities to the chart and transit layers.
// All angles are in degrees; jd is a Julian Day in Universal Time.
type Source interface {
	// Longitude returns the body's geocentric ecliptic longitude in [0, 360).
	Longitude(b Body, jd float64) (float64, error)

	// Obliquity returns the mean obliquity of the ecliptic.
	Obliquity(jd float64) float64

	// SiderealTime returns the local sidereal time, in degrees, for an
	// observer at the given geographic longitude (east positive).
	SiderealTime(jd, geoLon float64) float64
}

// Engine is the built-in Source. It is stateless and safe for concurrent
// use; construct one per process and pass it to the consumers that need it.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine {
	return &Engine{}
}

// Longitude implements Source.
func (e *Engine) Longitude(b Body, jd float64) (float64, error) {
	var lon float64
	switch b {
	case Sun:
		lon, _ = solarCoords(jd)
	case Moon:
		lon = moonLongitude(jd)
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		lon = planetLongitude(b, jd)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownBody, b)
	}

	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, fmt.Errorf("%w: %v at jd %.6f", ErrNotFinite, b, jd)
	}
	return Normalize360(lon), nil
}

// Obliquity implements Source using a linear mean-obliquity model. The
// secular rate is about 46.8 arcseconds per century.
func (e *Engine) Obliquity(jd float64) float64 {
	d := jd - j2000
	return 23.4393 - 3.563e-7*d
}

// SiderealTime implements Source. Greenwich mean sidereal time from the
// standard IAU expression, shifted east by the observer's longitude.
func (e *Engine) SiderealTime(jd, geoLon float64) float64 {
	gmst := 280.46061837 + 360.98564736629*(jd-j2000)
	return Normalize360(gmst + geoLon)
}
