package cmd

import (
	"fmt"

	"github.com/msto63/unitcal/foundation/utils/timex"
	"github.com/msto63/unitcal/pkg/calendar"
	"github.com/spf13/cobra"
)

// clock is replaced in tests
var clock timex.Clock = timex.SystemClock{}

var ageToday string

var ageCmd = &cobra.Command{
	Use:     "age <geburtsdatum>",
	Aliases: []string{"alter"},
	Short:   "Berechnet das Alter zu einem Geburtsdatum",
	Long: `Berechnet das Alter in Jahren, Monaten und Tagen.
Ohne --heute wird das aktuelle Datum verwendet.

Beispiele:
  unitcal age 1990-06-15
  unitcal age 29.02.2000 --heute 28.02.2025`,
	Args: cobra.ExactArgs(1),
	RunE: runAge,
}

func init() {
	rootCmd.AddCommand(ageCmd)

	ageCmd.Flags().StringVar(&ageToday, "heute", "", "Stichtag statt des aktuellen Datums")
}

func runAge(cmd *cobra.Command, args []string) error {
	birth, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}

	today := calendar.Today(clock)
	if ageToday != "" {
		if today, err = calendar.Parse(ageToday); err != nil {
			return err
		}
	}

	age, err := calendar.Age(birth, today)
	if err != nil {
		return err
	}

	f := app.formatter
	out := cmd.OutOrStdout()
	printRow(out, "Geboren", fmt.Sprintf("%s (%s)", f.Date(birth), f.Weekday(birth)))
	printRow(out, "Stichtag", f.Date(today.DateOnly()))
	printRow(out, "Alter", resultStyle.Render(f.Breakdown(age)))
	printRow(out, "Tage", f.Count(int(age.TotalDays)))
	return nil
}
