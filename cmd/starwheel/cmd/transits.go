package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/config"
	"github.com/rustyeddy/starwheel/ephemeris"
	"github.com/rustyeddy/starwheel/journal"
	"github.com/rustyeddy/starwheel/transit"
)

var transitsCmd = &cobra.Command{
	Use:   "transits",
	Short: "Scan a month for transits over the chart angles",
	Long: `Transits finds every instant in a month at which a body's longitude
crosses the Ascendant, Descendant, Midheaven or Imum Coeli for the given
location, to sub-minute precision.

Example:
  starwheel transits --year 2025 --month 10 --planet Moon --lat 41.9 --lon 12.5 --tz 2 --record`,
	RunE: runTransits,
}

var (
	trYear   int
	trMonth  int
	trPlanet string
	trStep   int
	trLat    float64
	trLon    float64
	trTZ     float64
	trRecord bool
)

func init() {
	rootCmd.AddCommand(transitsCmd)

	transitsCmd.Flags().IntVarP(&trYear, "year", "y", 0, "year (required)")
	transitsCmd.Flags().IntVarP(&trMonth, "month", "m", 0, "month 1-12 (required)")
	transitsCmd.Flags().StringVarP(&trPlanet, "planet", "p", "", "body to track (default from config)")
	transitsCmd.Flags().IntVarP(&trStep, "step", "s", 0, "coarse-scan step in minutes, 1-60 (default from config)")
	transitsCmd.Flags().Float64Var(&trLat, "lat", 0, "latitude, north positive (required)")
	transitsCmd.Flags().Float64Var(&trLon, "lon", 0, "longitude, east positive (required)")
	transitsCmd.Flags().Float64Var(&trTZ, "tz", 0, "UTC offset in hours, fractional allowed")
	transitsCmd.Flags().BoolVar(&trRecord, "record", false, "write events to the configured journal")

	transitsCmd.MarkFlagRequired("year")
	transitsCmd.MarkFlagRequired("month")
	transitsCmd.MarkFlagRequired("lat")
	transitsCmd.MarkFlagRequired("lon")
}

func runTransits(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	planet := trPlanet
	if planet == "" {
		planet = cfg.Transits.Planet
	}
	step := trStep
	if step == 0 {
		step = cfg.Transits.StepMinutes
	}

	body, err := ephemeris.ParseBody(planet)
	if err != nil {
		return err
	}

	finder := transit.NewFinder(ephemeris.New())
	events, err := finder.FindMonth(transit.Query{
		Year:          trYear,
		Month:         time.Month(trMonth),
		Latitude:      trLat,
		Longitude:     trLon,
		TZOffsetHours: trTZ,
		Body:          body,
		StepMinutes:   step,
	})
	if err != nil {
		return fmt.Errorf("transit scan: %w", err)
	}

	fmt.Printf("Transits of %s for %04d-%02d at %.4f, %.4f: %d found\n\n",
		planet, trYear, trMonth, trLat, trLon, len(events))
	for _, e := range events {
		fmt.Printf("  %s  over %-11s %-11s decan %d  %6.2f°\n",
			e.TimeLocal.Format("2006-01-02 15:04:05 -07:00"),
			e.Angle, e.Position.Sign, e.Position.Decan, e.Position.Degree)
	}

	if trRecord {
		if err := recordEvents(cfg, events); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		fmt.Printf("\nRecorded %d events to the %s journal\n", len(events), cfg.Journal.Type)
	}

	return nil
}

// recordEvents writes a scan's events to the configured journal backend.
func recordEvents(cfg *config.Config, events []transit.Event) error {
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	for _, e := range events {
		if err := j.RecordTransit(journal.FromEvent(e)); err != nil {
			return err
		}
	}
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.EventsFile)
	default:
		return nil, fmt.Errorf("journal type %q not configured", cfg.Journal.Type)
	}
}
