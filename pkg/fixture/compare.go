package fixture

import (
	"fmt"
	"math"
	"sort"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// Failure describes one non-conforming field with enough detail to debug a
// parity break.
type Failure struct {
	Field    string  `json:"field"`
	Expected any     `json:"expected"`
	Actual   any     `json:"actual"`
	AbsDiff  float64 `json:"abs_diff"`
	PctDiff  float64 `json:"pct_diff"`
}

func (f Failure) String() string {
	if f.AbsDiff != 0 || f.PctDiff != 0 {
		return fmt.Sprintf("%s: expected %v, got %v (diff %.6g, %.4g%%)", f.Field, f.Expected, f.Actual, f.AbsDiff, f.PctDiff)
	}
	return fmt.Sprintf("%s: expected %v, got %v", f.Field, f.Expected, f.Actual)
}

// Comparison is the result of comparing one output against one fixture.
type Comparison struct {
	Passed   bool      `json:"passed"`
	Failures []Failure `json:"failures,omitempty"`
}

// Compare checks the computed output against a fixture's expected fields.
//
// Numeric fields conform when |actual - expected| <= |expected| * tol,
// where tol is the fixture's per-field tolerance, else its global
// tolerance, else [DefaultTolerance]. Non-numeric fields require exact
// equality. Fields are checked in sorted order so reports are stable.
func Compare(actual *schema.Output, fx *Fixture) Comparison {
	fields := actual.Fields()

	names := make([]string, 0, len(fx.Expected))
	for name := range fx.Expected {
		names = append(names, name)
	}
	sort.Strings(names)

	result := Comparison{Passed: true}
	for _, name := range names {
		expected := fx.Expected[name]
		got, ok := fields[name]
		if !ok {
			result.Failures = append(result.Failures, Failure{Field: name, Expected: expected, Actual: nil})
			continue
		}

		expNum, expIsNum := toFloat(expected)
		gotNum, gotIsNum := toFloat(got)
		if expIsNum && gotIsNum {
			if f, bad := compareNumeric(name, expNum, gotNum, tolerance(fx, name)); bad {
				result.Failures = append(result.Failures, f)
			}
			continue
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", expected) {
			result.Failures = append(result.Failures, Failure{Field: name, Expected: expected, Actual: got})
		}
	}
	result.Passed = len(result.Failures) == 0
	return result
}

// tolerance resolves the effective tolerance for one field.
func tolerance(fx *Fixture, field string) float64 {
	if t, ok := fx.FieldTolerance[field]; ok {
		return t
	}
	if fx.Tolerance > 0 {
		return fx.Tolerance
	}
	return DefaultTolerance
}

func compareNumeric(field string, expected, actual, tol float64) (Failure, bool) {
	diff := math.Abs(actual - expected)
	if diff <= math.Abs(expected)*tol {
		return Failure{}, false
	}
	pct := 0.0
	if expected != 0 {
		pct = diff / math.Abs(expected) * 100
	}
	return Failure{Field: field, Expected: expected, Actual: actual, AbsDiff: diff, PctDiff: pct}, true
}

// toFloat widens any numeric representation that YAML or JSON decoding can
// produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
