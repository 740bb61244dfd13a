package server

// Request and response shapes mirror the upstream API contract: dates and
// times arrive as [year, month, day] / [hour, minute, second] arrays and
// every response carries a success flag or an error string.

type birthRequest struct {
	Date                []int   `json:"date"`
	Time                []int   `json:"time"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	TimezoneOffsetHours float64 `json:"timezone_offset_hours"`

	// Orb is only honored by the aspects endpoint.
	Orb *float64 `json:"orb,omitempty"`
}

type moonPhaseRequest struct {
	Date []int `json:"date"`
	Time []int `json:"time"`
}

type transitsRequest struct {
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	TimezoneOffsetHours float64 `json:"timezone_offset_hours"`
	Planet              string  `json:"planet"`
	StepMinutes         int     `json:"step_minutes"`
}

type positionPayload struct {
	Point        string  `json:"point"`
	Sign         string  `json:"sign"`
	Decan        int     `json:"decan"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Longitude    float64 `json:"longitude"`
}

type aspectPayload struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Degrees float64 `json:"degrees"`
	Orb     float64 `json:"orb"`
}

type moonPhasePayload struct {
	PhaseName           string  `json:"phase_name"`
	AgeDays             float64 `json:"age_days"`
	FractionOfCycle     float64 `json:"fraction_of_cycle"`
	IlluminatedFraction float64 `json:"illuminated_fraction"`
	JulianDate          float64 `json:"julian_date"`
}

type transitPayload struct {
	Planet        string  `json:"planet"`
	Angle         string  `json:"angle"`
	DatetimeUTC   string  `json:"datetime_utc"`
	DatetimeLocal string  `json:"datetime_local"`
	Longitude     float64 `json:"longitude"`
	Sign          string  `json:"sign"`
	DegreeInSign  float64 `json:"degree_in_sign"`
	Decan         int     `json:"decan"`
}

type errorResponse struct {
	Error string `json:"error"`
}
