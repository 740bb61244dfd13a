package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/config"
)

var rootCmd = &cobra.Command{
	Use:   "starwheel",
	Short: "An astrological computation engine and API",
	Long: `Starwheel computes horoscope charts, aspects, moon phases and
planetary transits over the four chart angles.

It provides tools for:
  - Full chart positions (ten bodies plus Ascendant, Descendant, Midheaven, Imum Coeli)
  - Aspect matching within a configurable orb
  - Moon phase descriptors, per instant or per calendar month
  - Monthly transit scans with sub-minute crossing times
  - Journaling computed transits to SQLite or CSV
  - Serving everything over a JSON API`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
}

// loadConfig returns the file-backed configuration when --config is set,
// otherwise the defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// parseDate splits "YYYY-MM-DD" into its components.
func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err == nil {
		month, err = strconv.Atoi(parts[1])
	}
	if err == nil {
		day, err = strconv.Atoi(parts[2])
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
	}
	return year, month, day, nil
}

// parseClock splits "HH:MM:SS" (or "HH:MM") into its components.
func parseClock(s string) (hour, minute, second int, err error) {
	if s == "" {
		return 0, 0, 0, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("time must be HH:MM[:SS], got %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err == nil {
		minute, err = strconv.Atoi(parts[1])
	}
	if err == nil && len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("time must be HH:MM[:SS], got %q", s)
	}
	return hour, minute, second, nil
}
