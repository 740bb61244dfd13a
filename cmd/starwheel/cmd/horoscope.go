package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/chart"
	"github.com/rustyeddy/starwheel/ephemeris"
)

var horoscopeCmd = &cobra.Command{
	Use:   "horoscope",
	Short: "Compute chart positions for a birth instant and location",
	Long: `Horoscope computes the ecliptic positions of the ten bodies plus the
four chart angles, classified into sign, decan and degree.

Example:
  starwheel horoscope --date 1990-06-15 --time 14:30:00 --lat 41.9 --lon 12.5 --tz 2`,
	RunE: runHoroscope,
}

var (
	hDate string
	hTime string
	hLat  float64
	hLon  float64
	hTZ   float64
)

func init() {
	rootCmd.AddCommand(horoscopeCmd)

	horoscopeCmd.Flags().StringVarP(&hDate, "date", "d", "", "calendar date YYYY-MM-DD (required)")
	horoscopeCmd.Flags().StringVarP(&hTime, "time", "t", "00:00:00", "local clock time HH:MM[:SS]")
	horoscopeCmd.Flags().Float64Var(&hLat, "lat", 0, "latitude, north positive (required)")
	horoscopeCmd.Flags().Float64Var(&hLon, "lon", 0, "longitude, east positive (required)")
	horoscopeCmd.Flags().Float64Var(&hTZ, "tz", 0, "UTC offset in hours, fractional allowed")

	horoscopeCmd.MarkFlagRequired("date")
	horoscopeCmd.MarkFlagRequired("lat")
	horoscopeCmd.MarkFlagRequired("lon")
}

func runHoroscope(cmd *cobra.Command, args []string) error {
	in, err := birthInput()
	if err != nil {
		return err
	}

	c, err := chart.Compute(ephemeris.New(), in)
	if err != nil {
		return fmt.Errorf("compute chart: %w", err)
	}

	fmt.Printf("Chart for %s %s (UTC%+.2f) at %.4f, %.4f\n\n", hDate, hTime, hTZ, hLat, hLon)
	for _, p := range c.Positions {
		fmt.Printf("  %-11s %-11s decan %d  %6.2f°  (%.4f°)\n",
			p.Point, p.Sign, p.Decan, p.Degree, p.Longitude)
	}

	if asc, err := c.MoonAscending(); err == nil {
		if asc {
			fmt.Println("\nThe Moon is in ascending phase (from Asc to Dsc).")
		} else {
			fmt.Println("\nThe Moon is in descending phase (from Dsc to Asc).")
		}
	}
	fmt.Printf("Lenormand card: %s\n", c.LenormandCard())

	return nil
}

// birthInput assembles a chart.Input from the shared birth flags.
func birthInput() (chart.Input, error) {
	year, month, day, err := parseDate(hDate)
	if err != nil {
		return chart.Input{}, err
	}
	hour, minute, second, err := parseClock(hTime)
	if err != nil {
		return chart.Input{}, err
	}
	return chart.Input{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		TZOffsetHours: hTZ,
		Latitude:      hLat,
		Longitude:     hLon,
	}, nil
}
