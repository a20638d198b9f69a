package cmd

import (
	"fmt"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
	mdwlog "github.com/msto63/unitcal/foundation/core/log"
	"github.com/msto63/unitcal/pkg/units"
	"github.com/spf13/cobra"
)

var convertCategory string

var convertCmd = &cobra.Command{
	Use:     "convert <wert> <von> <nach>",
	Aliases: []string{"conv", "umrechnen"},
	Short:   "Rechnet einen Wert zwischen zwei Einheiten um",
	Long: `Rechnet einen Wert von einer Einheit in eine andere derselben
Kategorie um. Die Kategorie wird aus der Quelleinheit abgeleitet,
kann aber mit --category angegeben werden.

Beispiele:
  unitcal convert 100 celsius fahrenheit
  unitcal convert 2,5 km mi
  unitcal convert 1 lb kg --category weight
  unitcal convert -- -40 celsius fahrenheit`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "Kategorie (length, mass, temperature, volume, area, speed)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := parseNumber(args[0])
	if err != nil {
		return mdwerror.Wrap(err, "invalid value").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.convert").
			WithDetail("value", args[0])
	}

	category, err := resolveCategory(args[1])
	if err != nil {
		return err
	}

	from, err := app.table.Quantity(value, args[1], category)
	if err != nil {
		return err
	}
	to, err := app.table.ConvertQuantity(from, args[2])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s = %s\n",
		app.formatter.Quantity(from),
		resultStyle.Render(app.formatter.Quantity(to)))

	if rangeErr := app.table.CheckRange(category, from.Unit.ID, value); rangeErr != nil {
		app.logger.WarnWithErr("value outside physical range", rangeErr, mdwlog.Fields{
			"unit":  from.Unit.ID,
			"value": value,
		})
		fmt.Fprintln(out, warnStyle.Render("Hinweis: Wert liegt unter dem absoluten Nullpunkt"))
	}

	app.logger.Debug("converted", mdwlog.Fields{
		"category": string(category),
		"from":     from.Unit.ID,
		"to":       to.Unit.ID,
	})
	return nil
}

// resolveCategory uses --category when given and otherwise the category
// the source unit belongs to.
func resolveCategory(fromID string) (units.Category, error) {
	if convertCategory != "" {
		return units.ParseCategory(convertCategory)
	}
	return app.table.CategoryOf(fromID)
}
