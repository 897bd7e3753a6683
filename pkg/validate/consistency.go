package validate

import (
	"math"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/geometry"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// Cross-field consistency rules.

func ruleLumpSizes(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.LumpSmallest == nil || in.LumpLargest == nil {
		return nil
	}
	if *in.LumpSmallest > *in.LumpLargest {
		return []schema.Finding{errorf(schema.KeyLumpSmallest,
			"smallest lump size %.3g exceeds largest lump size %.3g", *in.LumpSmallest, *in.LumpLargest)}
	}
	return nil
}

// ruleAngleVsHeights cross-checks an entered incline angle against the
// angle implied by the top-of-belt heights. A mismatch beyond the tolerance
// is a warning, not an error: the entered angle wins, the heights may
// simply be stale.
func ruleAngleVsHeights(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.GeometryMode == schema.GeometryHorizontalTOB {
		return nil // heights are the source of truth, nothing to compare
	}
	if in.TOBDrive == nil || in.TOBTail == nil || in.HorizontalRun <= 0 {
		return nil
	}
	driveCL := geometry.TOBToCenterline(*in.TOBDrive, in.DrivePulleyDia)
	tailCL := geometry.TOBToCenterline(*in.TOBTail, in.TailPulleyDia)
	implied := math.Atan2(driveCL-tailCL, in.HorizontalRun) * 180 / math.Pi
	if math.Abs(implied-in.InclineAngle) > p.AngleMismatchTol {
		return []schema.Finding{warnf(schema.KeyInclineAngle,
			"entered incline angle %.2f deg differs from the %.2f deg implied by top-of-belt heights", in.InclineAngle, implied)}
	}
	return nil
}

func ruleChainRatio(in schema.CanonicalInput, p schema.Parameters, out schema.Output) []schema.Finding {
	if in.ChainRatio == nil {
		return nil
	}
	if *in.ChainRatio < p.ChainRatioMin || *in.ChainRatio > p.ChainRatioMax {
		return []schema.Finding{warnf(schema.KeyChainRatio,
			"chain ratio %.3g is outside the recommended %.3g-%.3g band", *in.ChainRatio, p.ChainRatioMin, p.ChainRatioMax)}
	}
	return nil
}
