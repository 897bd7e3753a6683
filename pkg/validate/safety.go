package validate

import (
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// Domain and safety rules: absolute engineering limits and incompatible
// option combinations.

func rulePulleyBounds(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	var fs []schema.Finding
	check := func(field string, dia float64) {
		if dia < p.PulleyDiaMin || dia > p.PulleyDiaMax {
			fs = append(fs, errorf(field,
				"pulley diameter %.4g in is outside the supported %.4g-%.4g in range", dia, p.PulleyDiaMin, p.PulleyDiaMax))
		}
	}
	check(schema.KeyDrivePulleyDia, in.DrivePulleyDia)
	check(schema.KeyTailPulleyDia, in.TailPulleyDia)
	return fs
}

func ruleShaftBounds(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	var fs []schema.Finding
	check := func(field string, dia float64) {
		if dia < p.ShaftDiaMin || dia > p.ShaftDiaMax {
			fs = append(fs, errorf(field,
				"shaft diameter %.4g in is outside the supported %.4g-%.4g in range", dia, p.ShaftDiaMin, p.ShaftDiaMax))
		}
	}
	check(schema.KeyDriveShaftDia, out.DriveShaftDia)
	check(schema.KeyTailShaftDia, out.TailShaftDia)
	return fs
}

// ruleIncline enforces the hard incline ceiling and two escalating warning
// thresholds below it.
func ruleIncline(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	angle := out.InclineAngle
	switch {
	case angle > p.MaxIncline:
		return []schema.Finding{errorf(schema.KeyInclineAngle,
			"incline angle %.2f deg exceeds the %.2f deg maximum for sliderbed conveyors", angle, p.MaxIncline)}
	case angle > p.InclineWarnHigh:
		return []schema.Finding{warnf(schema.KeyInclineAngle,
			"incline angle %.2f deg is near the %.2f deg maximum; expect product slippage", angle, p.MaxIncline)}
	case angle > p.InclineWarnLow:
		return []schema.Finding{warnf(schema.KeyInclineAngle,
			"incline angle %.2f deg may cause slippage for smooth or heavy products", angle)}
	}
	return nil
}

// ruleLowProfileCleats: low-profile frames mandate snub rollers, and a
// cleated belt cannot wrap a snub roller.
func ruleLowProfileCleats(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.FrameHeightMode == schema.FrameLowProfile && in.CleatsEnabled {
		return []schema.Finding{errorf(schema.KeyCleatsEnabled,
			"cleated belts are incompatible with the snub rollers a low-profile frame requires")}
	}
	return nil
}

func ruleTubeStress(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if out.TubeStressStatus == schema.TubeStressError {
		return []schema.Finding{errorf(schema.KeyTubeOD, "%s", out.TubeStressMessage)}
	}
	return nil
}

func ruleResidualOil(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.ResidualOil {
		return []schema.Finding{infof(schema.KeyResidualOil,
			"minor residual oil may be present on the belt surface from manufacturing")}
	}
	return nil
}
