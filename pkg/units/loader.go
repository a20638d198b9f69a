package units

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
)

// definitionFile is the YAML layout of a unit extension file:
//
//	units:
//	  - id: rankine
//	    name: Rankine
//	    symbol: °R
//	    category: temperature
//	    scale: 5/9
//	    offset: 491.67
type definitionFile struct {
	Units []yamlDefinition `yaml:"units"`
}

type yamlDefinition struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Symbol   string `yaml:"symbol"`
	Category string `yaml:"category"`
	Scale    factor `yaml:"scale"`
	Offset   factor `yaml:"offset"`
}

// factor accepts a plain number or a fraction such as "5/9"
type factor float64

// UnmarshalYAML implements yaml.Unmarshaler
func (f *factor) UnmarshalYAML(value *yaml.Node) error {
	var number float64
	if err := value.Decode(&number); err == nil {
		*f = factor(number)
		return nil
	}

	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("line %d: factor must be a number or fraction", value.Line)
	}

	num, den, ok := strings.Cut(text, "/")
	if !ok {
		return fmt.Errorf("line %d: invalid factor %q", value.Line, text)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid numerator in %q", value.Line, text)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || d == 0 {
		return fmt.Errorf("line %d: invalid denominator in %q", value.Line, text)
	}
	*f = factor(n / d)
	return nil
}

// LoadDefinitions decodes unit definitions from YAML. Omitted scales default
// to 1. The definitions are not validated until they are added to a table.
func LoadDefinitions(r io.Reader) ([]UnitDefinition, error) {
	var file definitionFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, mdwerror.Wrap(err, "failed to decode unit definitions").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("units.LoadDefinitions")
	}

	defs := make([]UnitDefinition, 0, len(file.Units))
	for _, u := range file.Units {
		category, err := ParseCategory(u.Category)
		if err != nil {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("unit %q", u.ID)).
				WithOperation("units.LoadDefinitions")
		}
		scale := float64(u.Scale)
		if scale == 0 {
			scale = 1
		}
		defs = append(defs, UnitDefinition{
			ID:       u.ID,
			Name:     u.Name,
			Symbol:   u.Symbol,
			Category: category,
			Scale:    scale,
			Offset:   float64(u.Offset),
		})
	}
	return defs, nil
}

// LoadFile reads a YAML definition file and returns t extended by its units
func (t *Table) LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open unit definitions").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("units.LoadFile").
			WithDetail("path", path)
	}
	defer f.Close()

	defs, err := LoadDefinitions(f)
	if err != nil {
		return nil, err
	}
	return t.Extend(defs...)
}
