// Package validate is the rule engine that classifies a configuration as
// acceptable or not.
//
// [Validate] evaluates structural rules (mode-conditional field presence
// and ranges), cross-field consistency rules, and domain/safety rules
// against the canonical input, the active parameters, and the computed
// output. It returns findings ordered by the fixed rule order, so repeated
// validation of the same triple is byte-identical - no hidden state, no
// call history.
//
// Error findings block success; warnings and info never do. The engine
// itself never aborts a calculation: outputs are computed and returned even
// for configurations that fail validation.
package validate

import (
	"fmt"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/geometry"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// rule is one validation check. Rules append zero or more findings.
type rule func(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding

// rules is the fixed evaluation order: structural, then consistency, then
// domain/safety. Order is part of the contract - findings must come out
// byte-identical across repeated runs.
var rules = []rule{
	ruleRequiredDimensions,
	ruleSpeedModeValue,
	ruleCustomFrameHeight,
	ruleVGuideProfile,
	ruleManualShafts,
	ruleFloorSupportHeights,
	ruleCleatFields,
	ruleLumpSizes,
	ruleAngleVsHeights,
	ruleChainRatio,
	rulePulleyBounds,
	ruleShaftBounds,
	ruleIncline,
	ruleLowProfileCleats,
	ruleTubeStress,
	ruleResidualOil,
}

// Validate runs every rule in order and returns the combined findings.
func Validate(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	var findings []schema.Finding
	for _, r := range rules {
		findings = append(findings, r(in, p, out)...)
	}
	return findings
}

// GeometryFinding converts an invalid derived geometry into the structural
// error finding the caller must surface. Returns nil for valid geometry.
func GeometryFinding(geo geometry.Derived) *schema.Finding {
	if geo.Valid {
		return nil
	}
	return &schema.Finding{
		Field:    schema.KeyGeometryMode,
		Message:  geo.Err,
		Severity: schema.SeverityError,
	}
}

// Partition splits findings into blocking errors and non-blocking
// warnings/info, preserving order within each class.
func Partition(findings []schema.Finding) (errors, warnings []schema.Finding) {
	for _, f := range findings {
		if f.Severity == schema.SeverityError {
			errors = append(errors, f)
		} else {
			warnings = append(warnings, f)
		}
	}
	return errors, warnings
}

func errorf(field, format string, args ...any) schema.Finding {
	return schema.Finding{Field: field, Message: fmt.Sprintf(format, args...), Severity: schema.SeverityError}
}

func warnf(field, format string, args ...any) schema.Finding {
	return schema.Finding{Field: field, Message: fmt.Sprintf(format, args...), Severity: schema.SeverityWarning}
}

func infof(field, format string, args ...any) schema.Finding {
	return schema.Finding{Field: field, Message: fmt.Sprintf(format, args...), Severity: schema.SeverityInfo}
}
