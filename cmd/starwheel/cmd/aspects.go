package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/aspect"
	"github.com/rustyeddy/starwheel/chart"
	"github.com/rustyeddy/starwheel/ephemeris"
)

var aspectsCmd = &cobra.Command{
	Use:   "aspects",
	Short: "List aspects between chart points for a birth instant",
	Long: `Aspects computes the full chart, then matches every pair of points
against the classical aspect table (conjunction, sextile, square, trine,
opposition) within the orb tolerance.

Example:
  starwheel aspects --date 1990-06-15 --time 14:30 --lat 41.9 --lon 12.5 --tz 2 --orb 6`,
	RunE: runAspects,
}

var (
	aDate string
	aTime string
	aLat  float64
	aLon  float64
	aTZ   float64
	aOrb  float64
)

func init() {
	rootCmd.AddCommand(aspectsCmd)

	aspectsCmd.Flags().StringVarP(&aDate, "date", "d", "", "calendar date YYYY-MM-DD (required)")
	aspectsCmd.Flags().StringVarP(&aTime, "time", "t", "00:00:00", "local clock time HH:MM[:SS]")
	aspectsCmd.Flags().Float64Var(&aLat, "lat", 0, "latitude, north positive (required)")
	aspectsCmd.Flags().Float64Var(&aLon, "lon", 0, "longitude, east positive (required)")
	aspectsCmd.Flags().Float64Var(&aTZ, "tz", 0, "UTC offset in hours, fractional allowed")
	aspectsCmd.Flags().Float64Var(&aOrb, "orb", 0, "orb tolerance in degrees (default from config)")

	aspectsCmd.MarkFlagRequired("date")
	aspectsCmd.MarkFlagRequired("lat")
	aspectsCmd.MarkFlagRequired("lon")
}

func runAspects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orb := aOrb
	if orb == 0 {
		orb = cfg.Aspects.Orb
	}

	year, month, day, err := parseDate(aDate)
	if err != nil {
		return err
	}
	hour, minute, second, err := parseClock(aTime)
	if err != nil {
		return err
	}

	c, err := chart.Compute(ephemeris.New(), chart.Input{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		TZOffsetHours: aTZ,
		Latitude:      aLat,
		Longitude:     aLon,
	})
	if err != nil {
		return fmt.Errorf("compute chart: %w", err)
	}

	points := make([]aspect.Point, 0, len(c.Positions))
	for _, p := range c.Positions {
		points = append(points, aspect.Point{Name: p.Point, Longitude: p.Longitude})
	}

	found, err := aspect.Find(points, orb)
	if err != nil {
		return err
	}

	fmt.Printf("Aspects for %s %s (orb %.1f°): %d found\n\n", aDate, aTime, orb, len(found))
	for _, a := range found {
		fmt.Printf("  %-11s %-11s %-12s sep %7.2f°  orb %.2f°\n",
			a.First, a.Second, a.Type, a.Separation, a.Orb)
	}
	return nil
}
