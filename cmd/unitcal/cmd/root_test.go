package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
	"github.com/msto63/unitcal/foundation/utils/timex"
	"github.com/msto63/unitcal/pkg/calendar"
	"github.com/msto63/unitcal/pkg/units"
)

// execute runs the root command with args in an isolated environment and
// returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("UNITCAL_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	resetFlags(rootCmd)
	workdaysHolidays = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores flag defaults between runs of the shared command tree
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Value.Type() != "stringSlice" {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"temperature", []string{"convert", "100", "celsius", "fahrenheit"}, "100 °C = 212 °F"},
		{"decimal comma", []string{"convert", "2,5", "km", "m"}, "2,5 km = 2.500 m"},
		{"category alias", []string{"convert", "1", "lb", "kg", "--category", "weight", "--locale", "en"}, "1 lb = 0.453592 kg"},
		{"precision flag", []string{"convert", "1", "mi", "km", "--locale", "en", "--precision", "2"}, "1 mi = 1.61 km"},
		{"negative value", []string{"convert", "--", "-40", "celsius", "fahrenheit"}, "-40 °C = -40 °F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	_, _, err := execute(t, "convert", "1", "m", "kg")
	if !units.IsUnknownUnit(err) {
		t.Errorf("cross-category error = %v, want UNKNOWN_UNIT", err)
	}

	_, _, err = execute(t, "convert", "1", "parsec", "m")
	if !units.IsUnknownUnit(err) {
		t.Errorf("unknown source error = %v, want UNKNOWN_UNIT", err)
	}

	_, _, err = execute(t, "convert", "abc", "m", "cm")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("invalid value error = %v, want INVALID_INPUT", err)
	}

	_, _, err = execute(t, "convert", "1", "m", "cm", "--category", "colour")
	if !units.IsUnknownCategory(err) {
		t.Errorf("invalid category error = %v, want UNKNOWN_CATEGORY", err)
	}
}

func TestConvert_BelowAbsoluteZero(t *testing.T) {
	out, errOut, err := execute(t, "convert", "--", "-300", "celsius", "kelvin")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "Hinweis") {
		t.Errorf("output = %q, want range hint", out)
	}
	if !strings.Contains(errOut, "value outside physical range") {
		t.Errorf("log = %q, want warning", errOut)
	}
}

func TestUnits(t *testing.T) {
	out, _, err := execute(t, "units", "temperature")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "* celsius [°C] (Grad Celsius)") {
		t.Errorf("output = %q, want marked base unit", out)
	}
	if strings.Contains(out, "km") {
		t.Error("output contains units of another category")
	}

	out, _, err = execute(t, "units")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, c := range units.Builtin().Categories() {
		if !strings.Contains(out, string(c)) {
			t.Errorf("output misses category %s", c)
		}
	}

	if _, _, err := execute(t, "units", "colour"); !units.IsUnknownCategory(err) {
		t.Errorf("error = %v, want UNKNOWN_CATEGORY", err)
	}
}

func TestDiff(t *testing.T) {
	out, _, err := execute(t, "diff", "2024-01-15", "01.03.2025")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{
		"15.01.2024 (Montag)",
		"später",
		"1 Jahr, 1 Monat, 14 Tage",
		"411 Tage",
		"58 Wochen, 5 Tage",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}

	out, _, err = execute(t, "diff", "2025-03-01", "2024-01-15")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "früher") {
		t.Errorf("reversed output = %q, want direction früher", out)
	}

	if _, _, err := execute(t, "diff", "2025-02-30", "2025-03-01"); !calendar.IsInvalidDate(err) {
		t.Errorf("error = %v, want INVALID_DATE", err)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"month clamps", []string{"offset", "2025-01-31", "1", "month"}, "= 28.02.2025 (Freitag)"},
		{"leap year", []string{"offset", "29.02.2024", "1", "jahr"}, "= 28.02.2025"},
		{"negative days", []string{"offset", "--", "2025-03-01", "-10", "tage"}, "= 19.02.2025"},
		{"weeks", []string{"offset", "2025-03-01", "2", "w"}, "= 15.03.2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}

	if _, _, err := execute(t, "offset", "2025-01-31", "1", "fortnight"); !calendar.IsInvalidDate(err) {
		t.Errorf("error = %v, want INVALID_DATE", err)
	}
	if _, _, err := execute(t, "offset", "2025-01-31", "x", "day"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestAge(t *testing.T) {
	out, _, err := execute(t, "age", "1990-06-15", "--heute", "2025-03-01")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "34 Jahre, 8 Monate, 14 Tage") {
		t.Errorf("output = %q", out)
	}

	saved := clock
	clock = timex.FixedClock{At: time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)}
	t.Cleanup(func() { clock = saved })

	out, _, err = execute(t, "age", "2000-03-01")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "25 Jahre, 0 Monate, 0 Tage") {
		t.Errorf("output = %q", out)
	}

	if _, _, err := execute(t, "age", "2030-01-01"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("future birth error = %v, want INVALID_INPUT", err)
	}
}

func TestWorkdays(t *testing.T) {
	out, _, err := execute(t, "workdays", "2025-12-22", "2025-12-31",
		"--feiertag", "2025-12-25", "--feiertag", "2025-12-26")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "6 Arbeitstage") {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "workdays", "2025-12-22", "2025-12-31")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "8 Arbeitstage") {
		t.Errorf("output without holidays = %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "unitcal 1.0.0") {
		t.Errorf("output = %q", out)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	unitsPath := filepath.Join(dir, "units.yaml")
	yamlData := `units:
  - id: rankine
    name: Rankine
    symbol: °R
    category: temperature
    scale: 5/9
    offset: 491.67
`
	if err := os.WriteFile(unitsPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "unitcal.toml")
	tomlData := `[display]
locale = "en"
precision = 3

[units]
definitions = "` + filepath.ToSlash(unitsPath) + `"
`
	if err := os.WriteFile(cfgPath, []byte(tomlData), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", cfgPath, "convert", "0", "celsius", "rankine")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "0 °C = 491.67 °R") {
		t.Errorf("output = %q", out)
	}

	if _, _, err := execute(t, "--config", filepath.Join(dir, "missing.toml"), "version"); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("missing config error = %v, want CONFIG_ERROR", err)
	}
}

func TestInvalidLocaleFlag(t *testing.T) {
	_, _, err := execute(t, "--locale", "not a locale!", "version")
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("error = %v, want CONFIG_ERROR", err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore Chdir(%q): %v", prev, err)
		}
	})
}
