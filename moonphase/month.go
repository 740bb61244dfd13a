package moonphase

import (
	"fmt"
	"time"

	"github.com/rustyeddy/starwheel/ephemeris"
)

// DayPhase is one calendar day's entry in a monthly phase listing.
type DayPhase struct {
	Date  time.Time // midnight UT of the calendar day
	Phase Phase
}

// Month returns one phase entry per calendar day of the given month,
// each evaluated at 12:00 UT. Daily granularity is deliberate: it is
// good enough for calendar display and sidesteps sub-day timing
// semantics for a monthly listing.
func Month(src ephemeris.Source, year int, month time.Month) ([]DayPhase, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	out := make([]DayPhase, 0, days)
	for day := 1; day <= days; day++ {
		jd := ephemeris.JulianDayUT(year, int(month), day, 12.0)
		p, err := At(src, jd)
		if err != nil {
			return nil, fmt.Errorf("month %04d-%02d day %d: %w", year, month, day, err)
		}
		out = append(out, DayPhase{
			Date:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			Phase: p,
		})
	}
	return out, nil
}
