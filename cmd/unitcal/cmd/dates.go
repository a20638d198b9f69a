package cmd

import (
	"fmt"
	"io"
	"strconv"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
	mdwlog "github.com/msto63/unitcal/foundation/core/log"
	"github.com/msto63/unitcal/pkg/calendar"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:     "diff <datum> <datum>",
	Aliases: []string{"abstand"},
	Short:   "Berechnet den Abstand zwischen zwei Daten",
	Long: `Berechnet den Abstand zwischen zwei Daten oder Zeitpunkten.

Ausgegeben werden die Richtung, die kalendarische Aufteilung in Jahre,
Monate und Tage, die exakte Dauer sowie die Anzahl ganzer Wochen.

Formate: 2025-03-01, 01.03.2025, 20250301, 2025-03-01T12:30:00

Beispiele:
  unitcal diff 2024-01-15 2025-03-01
  unitcal diff 01.01.2025 "2025-01-02 06:00:00"`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

var offsetCmd = &cobra.Command{
	Use:     "offset <datum> <anzahl> <einheit>",
	Aliases: []string{"add", "verschieben"},
	Short:   "Verschiebt ein Datum",
	Long: `Verschiebt ein Datum um Tage, Wochen, Monate oder Jahre.
Fällt das Ergebnis auf einen Tag, den der Zielmonat nicht hat,
wird auf den letzten Tag des Monats gekürzt.

Einheiten: day/tag, week/woche, month/monat, year/jahr (auch d, w, m, y)

Negative Anzahlen nach "--" angeben.

Beispiele:
  unitcal offset 2025-01-31 1 month
  unitcal offset 29.02.2024 1 jahr
  unitcal offset -- 2025-03-01 -10 tage`,
	Args: cobra.ExactArgs(3),
	RunE: runOffset,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(offsetCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := calendar.Parse(args[1])
	if err != nil {
		return err
	}

	diff, err := calendar.DateDifference(a, b)
	if err != nil {
		return err
	}

	f := app.formatter
	out := cmd.OutOrStdout()
	printRow(out, "Von", fmt.Sprintf("%s (%s)", f.Date(a), f.Weekday(a)))
	printRow(out, "Bis", fmt.Sprintf("%s (%s)", f.Date(b), f.Weekday(b)))
	printRow(out, "Richtung", f.Direction(diff))
	printRow(out, "Kalender", resultStyle.Render(f.Breakdown(diff)))
	printRow(out, "Dauer", f.Duration(diff))
	printRow(out, "Wochen", f.Weeks(diff))
	printRow(out, "Stunden", f.Count(int(diff.Abs().TotalHours())))

	app.logger.Debug("difference computed", mdwlog.Fields{"difference": diff.String()})
	return nil
}

func runOffset(cmd *cobra.Command, args []string) error {
	base, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		return mdwerror.Wrap(err, "invalid amount").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.offset").
			WithDetail("amount", args[1])
	}
	unit, err := calendar.ParseUnit(args[2])
	if err != nil {
		return err
	}

	result, err := calendar.OffsetDate(base, amount, unit)
	if err != nil {
		return err
	}

	f := app.formatter
	fmt.Fprintf(cmd.OutOrStdout(), "%s %+d %s = %s (%s)\n",
		f.Date(base), amount, unit, resultStyle.Render(f.Date(result)), f.Weekday(result))

	app.logger.Debug("date offset", mdwlog.Fields{
		"base":   base.String(),
		"amount": amount,
		"unit":   unit.String(),
		"result": result.String(),
	})
	return nil
}

func printRow(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
}
