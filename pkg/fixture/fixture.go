// Package fixture loads recorded input/expected-output pairs and compares
// computed outputs against them within tolerance.
//
// Fixtures exist to pin the formula pipeline to the legacy spreadsheet's
// arithmetic: each fixture records a raw input and the subset of outputs
// the spreadsheet produced for it. The comparator checks numeric fields
// within a relative tolerance (0.5% by default, per-field overridable) and
// everything else for exact equality. The fixtures command and the parity
// tests both run through [Compare]; publishing is externally gated on all
// fixtures passing.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/errors"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// DefaultTolerance is the relative tolerance applied to numeric fields
// without a per-field override.
const DefaultTolerance = 0.005

// Fixture is one recorded parity case.
type Fixture struct {
	// Name identifies the case in reports.
	Name string `yaml:"name"`

	// Inputs is the raw input, exactly as an external caller would supply it.
	Inputs map[string]any `yaml:"inputs"`

	// Expected is a partial output: field name (json tag) to expected value.
	Expected map[string]any `yaml:"expected"`

	// Tolerance overrides DefaultTolerance for every field when non-zero.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// FieldTolerance overrides the tolerance for individual fields.
	FieldTolerance map[string]float64 `yaml:"field_tolerance,omitempty"`
}

// RawInput converts the recorded inputs into the schema type.
func (f *Fixture) RawInput() schema.RawInput {
	return schema.RawInput(f.Inputs)
}

// Load reads a YAML fixture file containing a list of fixtures.
func Load(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var fixtures []Fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, fx := range fixtures {
		if fx.Name == "" {
			return nil, fmt.Errorf("%s: fixture %d has no name", path, i)
		}
		if len(fx.Expected) == 0 {
			return nil, fmt.Errorf("%s: fixture %q has no expected outputs", path, fx.Name)
		}
		for name := range fx.Expected {
			if err := errors.ValidateFieldName(name); err != nil {
				return nil, fmt.Errorf("%s: fixture %q: %w", path, fx.Name, err)
			}
		}
		for name := range fx.FieldTolerance {
			if err := errors.ValidateFieldName(name); err != nil {
				return nil, fmt.Errorf("%s: fixture %q: %w", path, fx.Name, err)
			}
		}
	}
	return fixtures, nil
}

// LoadDir loads every *.yaml and *.yml file under dir, sorted by path for
// deterministic ordering.
func LoadDir(dir string) ([]Fixture, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var all []Fixture
	for _, p := range paths {
		fixtures, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, fixtures...)
	}
	return all, nil
}
