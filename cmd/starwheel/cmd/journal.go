package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/starwheel/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect recorded transit events",
	Long: `Journal lists transit events previously recorded with
"starwheel transits --record" from the SQLite journal.

Example:
  starwheel journal --db ./transits.sqlite --planet Moon`,
	RunE: runJournal,
}

var (
	jDBPath string
	jPlanet string
)

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().StringVarP(&jDBPath, "db", "d", "./transits.sqlite", "path to SQLite journal DB")
	journalCmd.Flags().StringVarP(&jPlanet, "planet", "p", "Moon", "planet to list")
}

func runJournal(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(jDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListTransitsForPlanet(jPlanet)
	if err != nil {
		return fmt.Errorf("list transits: %w", err)
	}

	fmt.Printf("%d recorded transits for %s\n\n", len(recs), jPlanet)
	for _, r := range recs {
		fmt.Printf("  %s  %s  over %-11s %-11s decan %d  %6.2f°\n",
			r.ID, r.TimeLocal.Format("2006-01-02 15:04:05 -07:00"),
			r.Angle, r.Sign, r.Decan, r.DegreeInSign)
	}
	return nil
}
