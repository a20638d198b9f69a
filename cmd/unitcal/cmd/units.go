package cmd

import (
	"fmt"

	"github.com/msto63/unitcal/pkg/units"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:     "units [kategorie]",
	Aliases: []string{"einheiten"},
	Short:   "Listet Kategorien und Einheiten",
	Long: `Listet alle bekannten Einheiten, gruppiert nach Kategorie.
Die Basiseinheit jeder Kategorie ist mit * markiert.

Beispiele:
  unitcal units
  unitcal units temperature`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	categories := app.table.Categories()
	if len(args) == 1 {
		category, err := units.ParseCategory(args[0])
		if err != nil {
			return err
		}
		if _, err := app.table.BaseOf(category); err != nil {
			return err
		}
		categories = []units.Category{category}
	}

	out := cmd.OutOrStdout()
	for i, category := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, headingStyle.Render(string(category)))
		for _, def := range app.table.UnitsOf(category) {
			marker := " "
			if def.IsBase() {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, app.formatter.Unit(def))
		}
	}
	return nil
}
