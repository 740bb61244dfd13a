package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/chart"
	"github.com/rustyeddy/starwheel/ephemeris"
	"github.com/rustyeddy/starwheel/moonphase"
)

var moonphaseCmd = &cobra.Command{
	Use:   "moonphase",
	Short: "Compute moon phase descriptors",
	Long: `Moonphase reports the phase name, age in days, cycle fraction and
illuminated fraction, either for a single instant or for every day of a
calendar month (evaluated at 12:00 UT).

Examples:
  starwheel moonphase --date 2025-09-05 --time 22:30
  starwheel moonphase --year 2025 --month 9`,
	RunE: runMoonphase,
}

var (
	mpDate  string
	mpTime  string
	mpYear  int
	mpMonth int
)

func init() {
	rootCmd.AddCommand(moonphaseCmd)

	moonphaseCmd.Flags().StringVarP(&mpDate, "date", "d", "", "calendar date YYYY-MM-DD")
	moonphaseCmd.Flags().StringVarP(&mpTime, "time", "t", "00:00:00", "UT clock time HH:MM[:SS]")
	moonphaseCmd.Flags().IntVarP(&mpYear, "year", "y", 0, "year for a monthly listing")
	moonphaseCmd.Flags().IntVarP(&mpMonth, "month", "m", 0, "month (1-12) for a monthly listing")
}

func runMoonphase(cmd *cobra.Command, args []string) error {
	eng := ephemeris.New()

	if mpYear != 0 || mpMonth != 0 {
		if mpYear == 0 || mpMonth < 1 || mpMonth > 12 {
			return fmt.Errorf("monthly listing needs --year and --month (1-12)")
		}

		days, err := moonphase.Month(eng, mpYear, time.Month(mpMonth))
		if err != nil {
			return err
		}

		fmt.Printf("Moon phases for %04d-%02d (%d days)\n\n", mpYear, mpMonth, len(days))
		for _, d := range days {
			fmt.Printf("  %s  %-16s age %5.1f d  illum %5.1f%%\n",
				d.Date.Format("2006-01-02"), d.Phase.Name, d.Phase.AgeDays, d.Phase.Illuminated*100)
		}
		return nil
	}

	if mpDate == "" {
		return fmt.Errorf("either --date or --year/--month is required")
	}

	year, month, day, err := parseDate(mpDate)
	if err != nil {
		return err
	}
	hour, minute, second, err := parseClock(mpTime)
	if err != nil {
		return err
	}

	jd := chart.Input{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
	}.JulianDayUT()

	p, err := moonphase.At(eng, jd)
	if err != nil {
		return err
	}

	fmt.Printf("Moon phase for %s %s UT\n\n", mpDate, mpTime)
	fmt.Printf("  Phase      : %s\n", p.Name)
	fmt.Printf("  Age        : %.2f days\n", p.AgeDays)
	fmt.Printf("  Cycle      : %.1f%%\n", p.CycleFraction*100)
	fmt.Printf("  Illuminated: %.1f%%\n", p.Illuminated*100)
	fmt.Printf("  Julian day : %.5f\n", p.JulianDay)
	return nil
}
