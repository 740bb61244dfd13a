package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rustyeddy/starwheel/aspect"
	"github.com/rustyeddy/starwheel/chart"
	"github.com/rustyeddy/starwheel/moonphase"
	"github.com/rustyeddy/starwheel/transit"
)

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "No JSON data provided")
		return false
	}
	return true
}

// chartFromBirth validates a birth request and computes the full chart.
func (s *Server) chartFromBirth(w http.ResponseWriter, req birthRequest) (chart.Chart, bool) {
	year, month, day, err := validateDate(req.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return chart.Chart{}, false
	}
	hour, minute, second, err := validateTime(req.Time)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return chart.Chart{}, false
	}
	if err := validateLocation(req.Latitude, req.Longitude); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return chart.Chart{}, false
	}
	if err := validateTZOffset(req.TimezoneOffsetHours); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return chart.Chart{}, false
	}

	c, err := chart.Compute(s.eph, chart.Input{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		TZOffsetHours: req.TimezoneOffsetHours,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	})
	if err != nil {
		s.writeCoreError(w, err)
		return chart.Chart{}, false
	}
	return c, true
}

// writeCoreError maps engine failures onto HTTP statuses: singular
// domains are the client's coordinates (422), anything else is ours (500).
func (s *Server) writeCoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, chart.ErrPolarLatitude) {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
}

func positionsPayload(c chart.Chart) []positionPayload {
	out := make([]positionPayload, 0, len(c.Positions))
	for _, p := range c.Positions {
		out = append(out, positionPayload{
			Point:        p.Point,
			Sign:         p.Sign.String(),
			Decan:        p.Decan,
			DegreeInSign: p.Degree,
			Longitude:    p.Longitude,
		})
	}
	return out
}

func (s *Server) handleHoroscope(w http.ResponseWriter, r *http.Request) {
	var req birthRequest
	if !s.decode(w, r, &req) {
		return
	}

	c, ok := s.chartFromBirth(w, req)
	if !ok {
		return
	}

	ascending, err := c.MoonAscending()
	if err != nil {
		s.writeCoreError(w, err)
		return
	}
	trend := "The Moon is in descending phase (from Dsc to Asc)."
	if ascending {
		trend = "The Moon is in ascending phase (from Asc to Dsc)."
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"julian_day":     c.JulianDay,
		"positions":      positionsPayload(c),
		"moon_trend":     trend,
		"lenormand_card": c.LenormandCard(),
	})
}

func (s *Server) handleAspects(w http.ResponseWriter, r *http.Request) {
	var req birthRequest
	if !s.decode(w, r, &req) {
		return
	}

	orb := s.cfg.Aspects.Orb
	if req.Orb != nil {
		orb = *req.Orb
	}

	c, ok := s.chartFromBirth(w, req)
	if !ok {
		return
	}

	points := make([]aspect.Point, 0, len(c.Positions))
	for _, p := range c.Positions {
		points = append(points, aspect.Point{Name: p.Point, Longitude: p.Longitude})
	}

	found, err := aspect.Find(points, orb)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := make([]aspectPayload, 0, len(found))
	for _, a := range found {
		payload = append(payload, aspectPayload{
			Planet1: a.First,
			Planet2: a.Second,
			Aspect:  a.Type.String(),
			Degrees: a.Separation,
			Orb:     a.Orb,
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"aspects": payload,
		"orb":     orb,
	})
}

func (s *Server) handleMoonPhase(w http.ResponseWriter, r *http.Request) {
	var req moonPhaseRequest
	if !s.decode(w, r, &req) {
		return
	}

	year, month, day, err := validateDate(req.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hour, minute, second, err := validateTime(req.Time)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	jd := chart.Input{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
	}.JulianDayUT()

	p, err := moonphase.At(s.eph, jd)
	if err != nil {
		s.writeCoreError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"moon_phase": phasePayload(p),
	})
}

func (s *Server) handleMoonPhaseMonth(w http.ResponseWriter, r *http.Request) {
	var req transitsRequest
	if !s.decode(w, r, &req) {
		return
	}

	if req.Year < 1900 || req.Year > 2100 {
		s.writeError(w, http.StatusBadRequest, "year must be an integer between 1900 and 2100")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		s.writeError(w, http.StatusBadRequest, "month must be an integer between 1 and 12")
		return
	}

	days, err := moonphase.Month(s.eph, req.Year, time.Month(req.Month))
	if err != nil {
		s.writeCoreError(w, err)
		return
	}

	type dayPayload struct {
		Date      string           `json:"date"`
		MoonPhase moonPhasePayload `json:"moon_phase"`
	}
	payload := make([]dayPayload, 0, len(days))
	for _, d := range days {
		payload = append(payload, dayPayload{
			Date:      d.Date.Format("2006-01-02"),
			MoonPhase: phasePayload(d.Phase),
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"days":    payload,
	})
}

func phasePayload(p moonphase.Phase) moonPhasePayload {
	return moonPhasePayload{
		PhaseName:           p.Name.String(),
		AgeDays:             p.AgeDays,
		FractionOfCycle:     p.CycleFraction,
		IlluminatedFraction: p.Illuminated,
		JulianDate:          p.JulianDay,
	}
}

func (s *Server) handleTransits(w http.ResponseWriter, r *http.Request) {
	var req transitsRequest
	if !s.decode(w, r, &req) {
		return
	}

	if req.Planet == "" {
		req.Planet = s.cfg.Transits.Planet
	}
	if req.StepMinutes == 0 {
		req.StepMinutes = s.cfg.Transits.StepMinutes
	}

	body, err := s.validateTransits(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := s.finder.FindMonth(transit.Query{
		Year:          req.Year,
		Month:         time.Month(req.Month),
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		TZOffsetHours: req.TimezoneOffsetHours,
		Body:          body,
		StepMinutes:   req.StepMinutes,
	})
	if err != nil {
		s.writeCoreError(w, err)
		return
	}

	payload := make([]transitPayload, 0, len(events))
	for _, e := range events {
		payload = append(payload, transitPayload{
			Planet:        e.Body.String(),
			Angle:         e.Angle.String(),
			DatetimeUTC:   e.TimeUTC.Format(time.RFC3339),
			DatetimeLocal: e.TimeLocal.Format(time.RFC3339),
			Longitude:     e.Position.Longitude,
			Sign:          e.Position.Sign.String(),
			DegreeInSign:  e.Position.Degree,
			Decan:         e.Position.Decan,
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"transits":       payload,
		"total_transits": len(payload),
		"parameters": map[string]any{
			"year":  req.Year,
			"month": req.Month,
			"location": map[string]any{
				"latitude":              req.Latitude,
				"longitude":             req.Longitude,
				"timezone_offset_hours": req.TimezoneOffsetHours,
			},
			"planet":       req.Planet,
			"step_minutes": req.StepMinutes,
		},
	})
}
