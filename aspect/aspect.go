// Package aspect matches pairs of ecliptic longitudes against the
// classical aspect table within an orb tolerance.
package aspect

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/starwheel/ephemeris"
)

// Type is one of the five classical aspects.
type Type int

const (
	Conjunction Type = iota
	Sextile
	Square
	Trine
	Opposition
)

// table holds the defining angle of each aspect, in enum order. The
// entries are spaced further apart than any sane orb, so at most one can
// match a given separation unless the orb is configured absurdly large.
var table = [...]struct {
	t     Type
	angle float64
}{
	{Conjunction, 0},
	{Sextile, 60},
	{Square, 90},
	{Trine, 120},
	{Opposition, 180},
}

var typeNames = [...]string{"Conjunction", "Sextile", "Square", "Trine", "Opposition"}

func (t Type) String() string {
	if t < Conjunction || t > Opposition {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Angle returns the aspect's defining angle in degrees.
func (t Type) Angle() float64 {
	return table[t].angle
}

// DefaultOrb is the orb used when the configuration does not supply one.
const DefaultOrb = 6.0

// ErrOrbNotPositive is returned when the orb tolerance is zero or negative.
var ErrOrbNotPositive = errors.New("orb must be positive")

// Point is a named longitude fed into the matcher.
type Point struct {
	Name      string
	Longitude float64
}

// Aspect is one qualifying pair. Separation is the shortest-arc distance
// between the two longitudes; Orb is its absolute deviation from the
// aspect's defining angle.
type Aspect struct {
	First      string
	Second     string
	Type       Type
	Separation float64
	Orb        float64
}

// Separation returns the shortest-arc angular distance between two
// longitudes, always in [0, 180].
func Separation(a, b float64) float64 {
	diff := math.Abs(ephemeris.Normalize360(a) - ephemeris.Normalize360(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Find enumerates every unordered pair of points and emits at most one
// aspect per pair: the table angle with the smallest orb, ties broken by
// table order. Results come back in pair-enumeration order.
func Find(points []Point, orb float64) ([]Aspect, error) {
	if orb <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrOrbNotPositive, orb)
	}

	var found []Aspect
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			sep := Separation(points[i].Longitude, points[j].Longitude)

			best := -1
			bestOrb := 0.0
			for k, cand := range table {
				used := math.Abs(sep - cand.angle)
				if used > orb {
					continue
				}
				if best < 0 || used < bestOrb {
					best = k
					bestOrb = used
				}
			}

			if best >= 0 {
				found = append(found, Aspect{
					First:      points[i].Name,
					Second:     points[j].Name,
					Type:       table[best].t,
					Separation: sep,
					Orb:        bestOrb,
				})
			}
		}
	}
	return found, nil
}
