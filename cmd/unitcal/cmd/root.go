// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     cmd
// Description: Root command and shared setup of the unitcal CLI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	mdwlog "github.com/msto63/unitcal/foundation/core/log"
	"github.com/msto63/unitcal/internal/present"
	"github.com/msto63/unitcal/pkg/core/config"
	"github.com/msto63/unitcal/pkg/core/logging"
	"github.com/msto63/unitcal/pkg/units"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	locale    string
	precision int
)

// app holds what every subcommand needs once the configuration is loaded
var app struct {
	cfg       *config.Config
	logger    *mdwlog.Logger
	table     *units.Table
	formatter *present.Formatter
}

var rootCmd = &cobra.Command{
	Use:   "unitcal",
	Short: "unitcal - Einheiten- und Kalenderrechner",
	Long: `unitcal rechnet Mengen zwischen Einheiten um und beantwortet
Kalenderfragen.

Funktionen:
  convert   - Wert zwischen zwei Einheiten umrechnen
  units     - Kategorien und Einheiten auflisten
  diff      - Abstand zwischen zwei Daten
  offset    - Datum um Tage, Wochen, Monate oder Jahre verschieben
  age       - Alter zu einem Geburtsdatum
  workdays  - Arbeitstage zwischen zwei Daten
  tui       - Interaktiver Umrechner`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, "Ausführung fehlgeschlagen", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $UNITCAL_CONFIG oder ./configs/unitcal.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Sprache der Ausgabe, z.B. de oder en")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "Maximale Nachkommastellen")
}

// setup loads the configuration and builds logger, unit table and formatter.
// Flags override the configuration file.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("locale") {
		cfg.Display.Locale = locale
	}
	if cmd.Flags().Changed("precision") {
		cfg.Display.Precision = precision
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.FromConfig(cfg)
	logCfg.Output = cmd.ErrOrStderr()
	logger, requestID := logging.NewRequestLogger(logCfg)
	logger = logger.WithField("command", cmd.Name())

	table := units.Builtin()
	if cfg.Units.Definitions != "" {
		table, err = table.LoadFile(cfg.Units.Definitions)
		if err != nil {
			return err
		}
		logger.Debug("unit definitions loaded", mdwlog.Fields{"path": cfg.Units.Definitions})
	}

	formatter, err := present.New(cfg.Display.Locale, cfg.Display.Precision)
	if err != nil {
		return err
	}

	for _, key := range cfg.Undecoded {
		logger.Warn("unknown config key", mdwlog.Fields{"key": key})
	}
	logger.Debug("configuration resolved", mdwlog.Fields{
		"path":       cfg.Path,
		"locale":     cfg.Display.Locale,
		"precision":  cfg.Display.Precision,
		"request_id": requestID,
	})

	app.cfg = cfg
	app.logger = logger
	app.table = table
	app.formatter = formatter
	return nil
}

// parseNumber accepts both "." and "," as decimal separator
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Fehler: %s: %v\n", msg, err)
}
