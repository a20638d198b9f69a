package cmd

import (
	"fmt"

	"github.com/msto63/unitcal/internal/tui/converter"
	"github.com/msto63/unitcal/pkg/units"
	"github.com/spf13/cobra"
)

var tuiCategory string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet den interaktiven Umrechner",
	Long: `Startet den interaktiven Umrechner im Terminal.

Navigation:
  Tab / Shift+Tab  Feld wechseln
  ←/→              Kategorie wechseln (Einheitenfelder)
  ↑/↓              Einheit wählen
  Strg+S           Einheiten tauschen
  Enter            Ergebnis übernehmen
  Esc / Ctrl+C     Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiCategory, "category", "", "Start-Kategorie (default aus Config)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	name := app.cfg.TUI.StartCategory
	if tuiCategory != "" {
		name = tuiCategory
	}
	start, err := units.ParseCategory(name)
	if err != nil {
		return err
	}

	err = converter.Run(converter.Config{
		Table:         app.table,
		Formatter:     app.formatter,
		Logger:        app.logger,
		StartCategory: start,
		StatusTimeout: app.cfg.TUI.StatusTimeout.Duration,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "TUI Fehler: %v\n", err)
		return err
	}
	return nil
}
