package cmd

import (
	"fmt"

	"github.com/msto63/unitcal/pkg/calendar"
	"github.com/spf13/cobra"
)

var workdaysHolidays []string

var workdaysCmd = &cobra.Command{
	Use:     "workdays <von> <bis>",
	Aliases: []string{"arbeitstage"},
	Short:   "Zählt Arbeitstage zwischen zwei Daten",
	Long: `Zählt die Arbeitstage (Montag bis Freitag) zwischen zwei Daten,
beide eingeschlossen. Feiertage können mehrfach mit --feiertag
angegeben werden.

Beispiele:
  unitcal workdays 2025-03-03 2025-03-14
  unitcal workdays 2025-12-22 2025-12-31 --feiertag 2025-12-25 --feiertag 2025-12-26`,
	Args: cobra.ExactArgs(2),
	RunE: runWorkdays,
}

func init() {
	rootCmd.AddCommand(workdaysCmd)

	workdaysCmd.Flags().StringSliceVar(&workdaysHolidays, "feiertag", nil, "Feiertag (mehrfach möglich)")
}

func runWorkdays(cmd *cobra.Command, args []string) error {
	from, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := calendar.Parse(args[1])
	if err != nil {
		return err
	}

	holidays := make([]calendar.Date, 0, len(workdaysHolidays))
	for _, h := range workdaysHolidays {
		d, err := calendar.Parse(h)
		if err != nil {
			return err
		}
		holidays = append(holidays, d)
	}

	count, err := calendar.BusinessDaysBetween(from, to, calendar.WithHolidays(holidays...))
	if err != nil {
		return err
	}

	f := app.formatter
	fmt.Fprintf(cmd.OutOrStdout(), "%s - %s: %s Arbeitstage\n",
		f.Date(from), f.Date(to), resultStyle.Render(f.Count(count)))
	return nil
}
