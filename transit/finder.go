// Package transit locates the instants during a month at which a body's
// ecliptic longitude crosses one of the four chart angles.
//
// There is no closed form for these times: the angle longitudes move
// non-uniformly with sidereal time (and, for the Ascendant, with the
// latitude trigonometry), so the finder uses the classic coarse-scan
// plus bisection approach. The scan cannot miss a crossing as long as
// the step stays below the minimum plausible gap between consecutive
// crossings for the fastest body; two crossings inside a single step
// window collapse into one detected bracket, a known limitation.
package transit

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rustyeddy/starwheel/chart"
	"github.com/rustyeddy/starwheel/ephemeris"
	"github.com/rustyeddy/starwheel/zodiac"
)

var (
	// ErrStepOutOfRange is returned when the scan step is outside [1, 60] minutes.
	ErrStepOutOfRange = errors.New("step minutes must be between 1 and 60")

	// ErrBadMonth is returned when the month is outside 1..12.
	ErrBadMonth = errors.New("month must be between 1 and 12")
)

const (
	// bisectTol is the bisection stopping width: ~30 seconds of time,
	// expressed in days. At lunar speed that is well below 0.01° of
	// longitude, the display precision.
	bisectTol = 30.0 / 86400.0

	// maxBisect bounds the refinement loop so floating-point edge cases
	// can never hang it. A 60-minute bracket reaches 30 s in 7 halvings.
	maxBisect = 20

	// DefaultStepMinutes is the coarse-scan step used when the caller
	// does not supply one. Conservative for the Moon (~13°/day) against
	// an angle that is roughly stationary over minutes.
	DefaultStepMinutes = 15
)

// Query describes one month's transit search.
type Query struct {
	Year  int
	Month time.Month

	Latitude      float64
	Longitude     float64
	TZOffsetHours float64

	Body        ephemeris.Body
	StepMinutes int

	// Angles restricts the search; empty means all four.
	Angles []chart.AngleName
}

// Event is a single detected crossing. Events carry both the UT instant
// and its fixed-offset local representation, plus the classified
// position of the body at the refined instant.
type Event struct {
	Body      ephemeris.Body
	Angle     chart.AngleName
	TimeUTC   time.Time
	TimeLocal time.Time
	JulianDay float64
	Position  zodiac.Position
}

// Finder runs transit searches against an ephemeris source. It keeps no
// state between invocations; the same query always yields the same events.
type Finder struct {
	eph ephemeris.Source
}

// NewFinder returns a Finder bound to the given source.
func NewFinder(src ephemeris.Source) *Finder {
	return &Finder{eph: src}
}

// FindMonth scans the month and returns every detected crossing, ordered
// by instant. Any ephemeris failure aborts the whole search: a crossing
// list with silent gaps would be worse than no list.
func (f *Finder) FindMonth(q Query) ([]Event, error) {
	if q.StepMinutes < 1 || q.StepMinutes > 60 {
		return nil, fmt.Errorf("%w: got %d", ErrStepOutOfRange, q.StepMinutes)
	}
	if q.Month < time.January || q.Month > time.December {
		return nil, fmt.Errorf("%w: got %d", ErrBadMonth, q.Month)
	}
	if _, err := ephemeris.ParseBody(q.Body.String()); err != nil {
		return nil, err
	}

	angles := q.Angles
	if len(angles) == 0 {
		angles = chart.AllAngles
	}
	for _, a := range angles {
		if _, err := chart.ParseAngle(a.String()); err != nil {
			return nil, err
		}
	}

	// Month boundaries at local midnight, converted to UT for scanning.
	zone := fixedZone(q.TZOffsetHours)
	start := time.Date(q.Year, q.Month, 1, 0, 0, 0, 0, zone)
	end := start.AddDate(0, 1, 0)

	jdStart := ephemeris.JulianDay(start)
	jdEnd := ephemeris.JulianDay(end)
	step := float64(q.StepMinutes) / (24.0 * 60.0)

	var events []Event
	for _, angle := range angles {
		found, err := f.scanAngle(q, angle, jdStart, jdEnd, step, zone)
		if err != nil {
			return nil, fmt.Errorf("%v over %v: %w", q.Body, angle, err)
		}
		events = append(events, found...)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].TimeUTC.Before(events[j].TimeUTC)
	})
	return events, nil
}

// scanAngle walks one (body, angle) pair across the month, bracketing
// sign changes of the signed separation and bisecting each bracket.
func (f *Finder) scanAngle(q Query, angle chart.AngleName, jdStart, jdEnd, step float64, zone *time.Location) ([]Event, error) {
	delta := func(jd float64) (float64, error) {
		return f.signedDelta(q, angle, jd)
	}

	prevJD := jdStart
	prevD, err := delta(prevJD)
	if err != nil {
		return nil, err
	}

	var events []Event
	lastCross := math.Inf(-1)
	for jd := jdStart + step; jd <= jdEnd+1e-9; jd += step {
		d, err := delta(jd)
		if err != nil {
			return nil, err
		}

		if bracketed(prevD, d) {
			crossJD, err := f.bisect(delta, prevJD, jd, prevD)
			if err != nil {
				return nil, err
			}
			// A sample landing exactly on zero brackets twice; keep the
			// first refinement only.
			if crossJD-lastCross > step/2 {
				ev, err := f.eventAt(q, angle, crossJD, zone)
				if err != nil {
					return nil, err
				}
				events = append(events, ev)
				lastCross = crossJD
			}
		}

		prevJD, prevD = jd, d
	}
	return events, nil
}

// signedDelta returns body longitude minus angle longitude, remapped into
// (−180, 180] so a genuine crossing shows up as a sign change near zero
// instead of a jump from 359° to 1°.
func (f *Finder) signedDelta(q Query, angle chart.AngleName, jd float64) (float64, error) {
	bodyLon, err := f.eph.Longitude(q.Body, jd)
	if err != nil {
		return 0, fmt.Errorf("sample at %s: %w", ephemeris.Time(jd).Format(time.RFC3339), err)
	}

	angles, err := chart.ComputeAngles(f.eph, jd, q.Latitude, q.Longitude)
	if err != nil {
		return 0, err
	}
	angleLon, err := angles.Longitude(angle)
	if err != nil {
		return 0, err
	}

	d := ephemeris.Normalize360(bodyLon - angleLon)
	if d > 180 {
		d -= 360
	}
	return d, nil
}

// bracketed reports whether a crossing of zero lies between two
// consecutive samples. A sign change through ±180 is the opposite point
// wrapping past, not a crossing, so jumps wider than a half-circle are
// rejected.
func bracketed(a, b float64) bool {
	if math.Abs(a-b) >= 180 {
		return false
	}
	return a == 0 || b == 0 || (a < 0) != (b < 0)
}

// bisect narrows a bracketed interval until it is at most bisectTol wide
// and returns its midpoint.
func (f *Finder) bisect(delta func(float64) (float64, error), a, b, da float64) (float64, error) {
	for i := 0; i < maxBisect && b-a > bisectTol; i++ {
		mid := a + (b-a)/2
		dm, err := delta(mid)
		if err != nil {
			return 0, err
		}

		if dm == 0 {
			return mid, nil
		}
		if (da < 0) == (dm < 0) {
			a, da = mid, dm
		} else {
			b = mid
		}
	}
	return a + (b-a)/2, nil
}

// eventAt re-evaluates the body at the refined instant and packages the
// result.
func (f *Finder) eventAt(q Query, angle chart.AngleName, jd float64, zone *time.Location) (Event, error) {
	lon, err := f.eph.Longitude(q.Body, jd)
	if err != nil {
		return Event{}, fmt.Errorf("refine at %s: %w", ephemeris.Time(jd).Format(time.RFC3339), err)
	}

	utc := ephemeris.Time(jd)
	return Event{
		Body:      q.Body,
		Angle:     angle,
		TimeUTC:   utc,
		TimeLocal: utc.In(zone),
		JulianDay: jd,
		Position:  zodiac.PositionOf(q.Body.String(), lon),
	}, nil
}

// fixedZone builds a fixed-offset location from a fractional UTC offset
// in hours.
func fixedZone(offsetHours float64) *time.Location {
	sec := int(math.Round(offsetHours * 3600))
	name := fmt.Sprintf("UTC%+03d:%02d", sec/3600, abs(sec%3600)/60)
	return time.FixedZone(name, sec)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
