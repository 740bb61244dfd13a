package server

import (
	"fmt"

	"github.com/rustyeddy/starwheel/ephemeris"
)

// Range validation happens here, before anything reaches the engine. The
// core assumes these invariants hold; only the latitude singularity is
// re-checked inside the cusp calculator because that one is a
// computational property, not an input range.

func validateDate(date []int) (year, month, day int, err error) {
	if len(date) != 3 {
		return 0, 0, 0, fmt.Errorf("date must be an array [year, month, day]")
	}
	year, month, day = date[0], date[1], date[2]
	if year < 1900 || year > 2100 {
		return 0, 0, 0, fmt.Errorf("year must be between 1900 and 2100")
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("day must be between 1 and 31")
	}
	return year, month, day, nil
}

func validateTime(t []int) (hour, minute, second int, err error) {
	if len(t) == 0 {
		return 0, 0, 0, nil
	}
	if len(t) != 3 {
		return 0, 0, 0, fmt.Errorf("time must be an array [hour, minute, second]")
	}
	hour, minute, second = t[0], t[1], t[2]
	if hour < 0 || hour > 23 {
		return 0, 0, 0, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return 0, 0, 0, fmt.Errorf("minute must be between 0 and 59")
	}
	if second < 0 || second > 59 {
		return 0, 0, 0, fmt.Errorf("second must be between 0 and 59")
	}
	return hour, minute, second, nil
}

func validateLocation(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be a number between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be a number between -180 and 180")
	}
	return nil
}

func validateTZOffset(tz float64) error {
	if tz < -12 || tz > 14 {
		return fmt.Errorf("timezone offset must be a number between -12 and 14")
	}
	return nil
}

func (s *Server) validateTransits(req transitsRequest) (ephemeris.Body, error) {
	if req.Year < 1900 || req.Year > 2100 {
		return 0, fmt.Errorf("year must be an integer between 1900 and 2100")
	}
	if req.Month < 1 || req.Month > 12 {
		return 0, fmt.Errorf("month must be an integer between 1 and 12")
	}
	if err := validateLocation(req.Latitude, req.Longitude); err != nil {
		return 0, err
	}
	if err := validateTZOffset(req.TimezoneOffsetHours); err != nil {
		return 0, err
	}
	if req.StepMinutes < 1 || req.StepMinutes > 60 {
		return 0, fmt.Errorf("step minutes must be an integer between 1 and 60")
	}
	body, err := ephemeris.ParseBody(req.Planet)
	if err != nil {
		return 0, fmt.Errorf("planet %q is not supported", req.Planet)
	}
	return body, nil
}
